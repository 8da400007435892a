package catalog

import (
	"path/filepath"
	"testing"

	"github.com/jward/catalog/internal/loader"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_BothDrivers(t *testing.T) {
	t.Parallel()
	for _, d := range []Driver{DriverCGO, DriverPure} {
		d := d
		t.Run(string(d), func(t *testing.T) {
			t.Parallel()
			log, hook := test.NewNullLogger()
			log.SetLevel(logrus.DebugLevel)

			c, err := New(filepath.Join(t.TempDir(), "catalog.db"), WithDriver(d), WithLogger(log))
			require.NoError(t, err)
			t.Cleanup(func() { c.Close() })

			require.NotNil(t, hook.LastEntry())
			assert.Equal(t, "catalog store opened", hook.LastEntry().Message)
			assert.Same(t, log, c.Logger())

			// A fresh database reads as an empty catalog, not an error.
			q := c.Query()
			assert.Equal(t, []Casino{}, q.AllCasinos())
			assert.Len(t, q.SearchIndex(), len(staticRoutes))

			seed, err := loader.DefaultSeed()
			require.NoError(t, err)
			_, err = loader.Load(c.Store(), seed, log)
			require.NoError(t, err)

			top := c.Query().TopCasinos(1)
			require.Len(t, top, 1)
			assert.Equal(t, "bitstarz", top[0].ID)
		})
	}
}

func TestNew_DefaultLogger(t *testing.T) {
	t.Parallel()
	c, err := New(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	defer c.Close()
	assert.NotNil(t, c.Logger())
}

func TestNew_BadPath(t *testing.T) {
	t.Parallel()
	_, err := New(filepath.Join(t.TempDir(), "missing", "dir", "catalog.db"))
	require.Error(t, err)
}
