package catalog

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/jward/catalog/internal/store"
	"github.com/sirupsen/logrus/hooks/test"
)

// benchCasinoCount is sized like a listing page's worth of reviews plus
// headroom.
const benchCasinoCount = 200

// newBenchQueryBuilder loads benchCasinoCount casinos, each linked to three
// payment methods and two providers.
func newBenchQueryBuilder(b *testing.B) (*QueryBuilder, []string) {
	b.Helper()
	s, err := store.NewStore(filepath.Join(b.TempDir(), "bench.db"))
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { s.Close() })
	if err := s.Migrate(); err != nil {
		b.Fatal(err)
	}

	batch := store.NewBatch()
	for i := 0; i < 10; i++ {
		batch.AddPaymentMethod(store.PaymentMethod{ID: fmt.Sprintf("pm%d", i), Name: fmt.Sprintf("Method %d", i)})
		batch.AddProvider(store.SoftwareProvider{ID: fmt.Sprintf("sp%d", i), Name: fmt.Sprintf("Provider %d", i)})
	}
	ids := make([]string, benchCasinoCount)
	for i := range ids {
		ids[i] = fmt.Sprintf("casino%03d", i)
		batch.AddCasino(store.Casino{ID: ids[i], Name: fmt.Sprintf("Casino %03d", i)})
		for j := 0; j < 3; j++ {
			batch.LinkPaymentMethod(ids[i], fmt.Sprintf("pm%d", (i+j)%10))
		}
		for j := 0; j < 2; j++ {
			batch.LinkSoftware(ids[i], fmt.Sprintf("sp%d", (i+j)%10))
		}
	}
	if err := s.CommitBatch(batch); err != nil {
		b.Fatal(err)
	}

	log, _ := test.NewNullLogger()
	return newQueryBuilder(s, log), ids
}

func BenchmarkCasinosWithRelations_Batch(b *testing.B) {
	q, ids := newBenchQueryBuilder(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got := q.CasinosWithRelations(ids); len(got) != len(ids) {
			b.Fatalf("got %d casinos", len(got))
		}
	}
}

func BenchmarkCasinosWithRelations_PerCasino(b *testing.B) {
	q, ids := newBenchQueryBuilder(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, id := range ids {
			if q.CasinoWithRelations(id) == nil {
				b.Fatalf("casino %s missing", id)
			}
		}
	}
}

func BenchmarkSearchIndex(b *testing.B) {
	q, ids := newBenchQueryBuilder(b)
	want := len(staticRoutes) + len(ids) + 10
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got := q.SearchIndex(); len(got) != want {
			b.Fatalf("got %d entries, want %d", len(got), want)
		}
	}
}
