package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jward/catalog"
	"github.com/jward/catalog/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	flagDB     string
	flagFormat string
	flagConfig string
)

// Set by the root command's PersistentPreRunE.
var (
	cfg    *config.Config
	logger *logrus.Logger
)

// errorHandled is set by outputError so main() doesn't double-print.
var errorHandled bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errorHandled {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "catalog",
	Short:         "Casino, slot and banking catalog",
	Long:          "Seeds a SQLite casino catalog and serves read-only views of it from the command line or over HTTP.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := validateFormat(flagFormat); err != nil {
			return err
		}
		return setup(cmd)
	},
	// No Run; prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "catalog.db", "database path")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "json", "output format: json|text")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ./config/catalog.yaml if present)")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(queryCmd)
}

// setup loads configuration with cmd's flags bound over it and builds the
// process logger.
func setup(cmd *cobra.Command) error {
	flags := map[string]*pflag.Flag{
		"database.path": cmd.Flags().Lookup("db"),
	}
	if f := cmd.Flags().Lookup("addr"); f != nil {
		flags["server.addr"] = f
	}

	c, err := config.Load(flagConfig, flags)
	if err != nil {
		return err
	}
	l, err := c.Log.NewLogger()
	if err != nil {
		return fmt.Errorf("log config: %w", err)
	}
	cfg, logger = c, l
	return nil
}

// openCatalog opens an existing catalog database. Reads against a database
// that was never seeded are refused rather than silently returning nothing.
func openCatalog() (*catalog.Catalog, error) {
	dbPath := resolveDBPath(cfg.Database.Path)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("database not found: %s (run 'catalog seed' first)", dbPath)
	}
	return catalog.New(dbPath,
		catalog.WithDriver(catalog.Driver(cfg.Database.Driver)),
		catalog.WithLogger(logger),
	)
}

// resolveDBPath returns an absolute database path, resolving relative paths
// against the working directory.
func resolveDBPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
