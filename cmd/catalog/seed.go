package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jward/catalog"
	"github.com/jward/catalog/internal/loader"
	"github.com/spf13/cobra"
)

var (
	flagSeedFile string
	flagForce    bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the catalog database from a seed file",
	Long:  "Drops and recreates every table, then inserts the seed in a single transaction. Uses the embedded seed unless --seed is given.",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&flagSeedFile, "seed", "", "YAML seed file (default: embedded seed)")
	seedCmd.Flags().BoolVar(&flagForce, "force", false, "replace a database that already has casinos")
}

func runSeed(cmd *cobra.Command, args []string) error {
	start := time.Now()

	seed, err := readSeed()
	if err != nil {
		return err
	}

	dbPath := resolveDBPath(cfg.Database.Path)
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(dbPath), err)
	}

	c, err := catalog.New(dbPath,
		catalog.WithDriver(catalog.Driver(cfg.Database.Driver)),
		catalog.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	defer c.Close()

	if !flagForce {
		existing, err := c.Store().AllCasinos()
		if err != nil {
			return fmt.Errorf("checking existing data: %w", err)
		}
		if len(existing) > 0 {
			return fmt.Errorf("database %s already has %d casinos (use --force to replace)", dbPath, len(existing))
		}
	}

	stats, err := loader.Load(c.Store(), seed, logger)
	if err != nil {
		return fmt.Errorf("seeding: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Seeded %s in %s (%d casinos, %d providers, %d payment methods, %d slots, %d links)\n",
		dbPath, time.Since(start).Round(time.Millisecond),
		stats.Casinos, stats.Providers, stats.PaymentMethods, stats.Slots, stats.Links)
	return nil
}

func readSeed() (*loader.Seed, error) {
	if flagSeedFile == "" {
		return loader.DefaultSeed()
	}
	return loader.ReadSeedFile(flagSeedFile)
}
