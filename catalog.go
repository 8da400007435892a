package catalog

import (
	"fmt"

	"github.com/jward/catalog/internal/store"
	"github.com/sirupsen/logrus"
)

// Catalog owns the process's single store handle and logger. Create one at
// startup, share it, and Close it on shutdown.
type Catalog struct {
	store  *store.Store
	logger *logrus.Logger
	driver store.Driver
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger that fail-soft reads report to. The default is
// logrus.New().
func WithLogger(l *logrus.Logger) Option {
	return func(c *Catalog) {
		c.logger = l
	}
}

// WithDriver selects the SQLite driver (DriverCGO or DriverPure).
func WithDriver(d Driver) Option {
	return func(c *Catalog) {
		c.driver = d
	}
}

// New opens the catalog database at dbPath. Missing tables are created so
// an unloaded database reads as an empty catalog.
func New(dbPath string, opts ...Option) (*Catalog, error) {
	c := &Catalog{driver: store.DriverCGO}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logrus.New()
	}

	s, err := store.NewStore(dbPath, store.WithDriver(c.driver))
	if err != nil {
		return nil, fmt.Errorf("catalog: create store: %w", err)
	}
	if err := s.Migrate(); err != nil {
		s.Close()
		return nil, fmt.Errorf("catalog: migrate: %w", err)
	}
	c.store = s
	c.logger.WithFields(logrus.Fields{"path": dbPath, "driver": c.driver}).Debug("catalog store opened")
	return c, nil
}

// Close releases the Catalog's database resources.
func (c *Catalog) Close() error {
	return c.store.Close()
}

// Store returns the underlying Store for direct access.
func (c *Catalog) Store() *Store {
	return c.store
}

// Logger returns the Catalog's logger.
func (c *Catalog) Logger() *logrus.Logger {
	return c.logger
}

// Query returns a QueryBuilder over the catalog. QueryBuilders are cheap and
// safe for concurrent use.
func (c *Catalog) Query() *QueryBuilder {
	return newQueryBuilder(c.store, c.logger)
}
