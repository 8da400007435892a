// Package loader is the catalog's offline bulk loader. It resets the schema
// and inserts a complete seed in one transaction. It is the only writer in
// the system and must finish before any read traffic starts.
package loader

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jward/catalog/internal/store"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed is a complete catalog as written in a seed file.
type Seed struct {
	Casinos        []store.Casino             `yaml:"casinos"`
	Providers      []store.SoftwareProvider   `yaml:"software_providers"`
	PaymentMethods []store.PaymentMethod      `yaml:"payment_methods"`
	Slots          []store.Slot               `yaml:"slots"`
	SoftwareLinks  []store.CasinoSoftwareLink `yaml:"casino_software"`
	PaymentLinks   []store.CasinoPaymentLink  `yaml:"casino_payment_methods"`
}

// Stats counts what a Load inserted.
type Stats struct {
	Casinos        int
	Providers      int
	PaymentMethods int
	Slots          int
	Links          int
}

// ReadSeed decodes a YAML seed. Unknown fields are rejected so typos in a
// seed file fail loudly instead of loading as NULL.
func ReadSeed(r io.Reader) (*Seed, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var seed Seed
	if err := dec.Decode(&seed); err != nil {
		if errors.Is(err, io.EOF) {
			return &seed, nil
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return &seed, nil
}

// ReadSeedFile reads a YAML seed from path.
func ReadSeedFile(path string) (*Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()
	return ReadSeed(f)
}

// DefaultSeed returns the seed embedded in the binary.
func DefaultSeed() (*Seed, error) {
	return ReadSeed(bytes.NewReader(defaultSeed))
}

// Validate checks what the schema cannot report clearly: empty keys, empty
// display names and duplicate keys. Providers may repeat; the first wins.
func (s *Seed) Validate() error {
	var errs []error
	check := func(kind string, keys, names []string) {
		seen := make(map[string]bool, len(keys))
		for i, k := range keys {
			switch {
			case k == "":
				errs = append(errs, fmt.Errorf("%s #%d: empty key", kind, i+1))
			case names[i] == "":
				errs = append(errs, fmt.Errorf("%s %q: empty name", kind, k))
			case seen[k]:
				errs = append(errs, fmt.Errorf("%s %q: duplicate key", kind, k))
			}
			seen[k] = true
		}
	}

	var keys, names []string
	for _, c := range s.Casinos {
		keys, names = append(keys, c.ID), append(names, c.Name)
	}
	check("casino", keys, names)

	keys, names = nil, nil
	for _, pm := range s.PaymentMethods {
		keys, names = append(keys, pm.ID), append(names, pm.Name)
	}
	check("payment method", keys, names)

	keys, names = nil, nil
	for _, sl := range s.Slots {
		keys, names = append(keys, sl.Slug), append(names, sl.Title)
	}
	check("slot", keys, names)

	for i, p := range s.Providers {
		if p.ID == "" || p.Name == "" {
			errs = append(errs, fmt.Errorf("software provider #%d: empty key or name", i+1))
		}
	}
	return errors.Join(errs...)
}

// Batch converts the seed into a store batch, preserving file order.
func (s *Seed) Batch() *store.Batch {
	b := store.NewBatch()
	for _, p := range s.Providers {
		b.AddProvider(p)
	}
	for _, c := range s.Casinos {
		b.AddCasino(c)
	}
	for _, pm := range s.PaymentMethods {
		b.AddPaymentMethod(pm)
	}
	for _, sl := range s.Slots {
		b.AddSlot(sl)
	}
	for _, l := range s.SoftwareLinks {
		b.LinkSoftware(l.CasinoID, l.ProviderID)
	}
	for _, l := range s.PaymentLinks {
		b.LinkPaymentMethod(l.CasinoID, l.MethodID)
	}
	return b
}

// Load drops and recreates every table in st, then inserts seed in a single
// transaction. On error the tables are left empty.
func Load(st *store.Store, seed *Seed, log logrus.FieldLogger) (Stats, error) {
	if err := seed.Validate(); err != nil {
		return Stats{}, fmt.Errorf("invalid seed: %w", err)
	}
	if err := st.Reset(); err != nil {
		return Stats{}, err
	}
	batch := seed.Batch()
	if err := st.CommitBatch(batch); err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Casinos:        len(batch.Casinos),
		Providers:      len(batch.Providers),
		PaymentMethods: len(batch.PaymentMethods),
		Slots:          len(batch.Slots),
		Links:          len(batch.SoftwareLinks) + len(batch.PaymentLinks),
	}
	log.WithFields(logrus.Fields{
		"casinos":         stats.Casinos,
		"providers":       stats.Providers,
		"payment_methods": stats.PaymentMethods,
		"slots":           stats.Slots,
		"links":           stats.Links,
	}).Info("catalog seeded")
	return stats, nil
}
