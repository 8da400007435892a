package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jward/catalog"
	"github.com/spf13/cobra"
)

var flagLimit int

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query the catalog",
	Long:  "Run read-only queries against a seeded catalog. Reads never fail; missing data yields empty results.",
}

func init() {
	topCmd.Flags().IntVar(&flagLimit, "limit", catalog.DefaultCasinoLimit, "number of casinos")

	queryCmd.AddCommand(casinoCmd)
	queryCmd.AddCommand(casinosCmd)
	queryCmd.AddCommand(topCmd)
	queryCmd.AddCommand(providersCmd)
	queryCmd.AddCommand(searchCmd)
}

var casinoCmd = &cobra.Command{
	Use:   "casino <id>",
	Short: "Show one casino with its payment methods and software",
	Args:  cobra.ExactArgs(1),
	RunE: withQuery("casino", func(q *catalog.QueryBuilder, args []string) (any, error) {
		c := q.CasinoWithRelations(args[0])
		if c == nil {
			return nil, fmt.Errorf("casino not found: %s", args[0])
		}
		return *c, nil
	}),
}

var casinosCmd = &cobra.Command{
	Use:   "casinos <id>...",
	Short: "Show several casinos with relations, resolved in one batch",
	Args:  cobra.MinimumNArgs(1),
	RunE: withQuery("casinos", func(q *catalog.QueryBuilder, args []string) (any, error) {
		return q.CasinosWithRelations(args), nil
	}),
}

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "List casinos by payout ratio",
	Args:  cobra.NoArgs,
	RunE: withQuery("top", func(q *catalog.QueryBuilder, args []string) (any, error) {
		if flagLimit < 0 {
			return nil, fmt.Errorf("invalid limit %d: must be non-negative", flagLimit)
		}
		return q.TopCasinos(flagLimit), nil
	}),
}

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List software providers with game counts",
	Args:  cobra.NoArgs,
	RunE: withQuery("providers", func(q *catalog.QueryBuilder, args []string) (any, error) {
		return q.SoftwareProvidersWithCounts(), nil
	}),
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Print the site search index",
	Args:  cobra.NoArgs,
	RunE: withQuery("search", func(q *catalog.QueryBuilder, args []string) (any, error) {
		return q.SearchIndex(), nil
	}),
}

// withQuery opens the catalog, runs fn and writes its result in the selected
// format. Errors are reported through outputError.
func withQuery(command string, fn func(*catalog.QueryBuilder, []string) (any, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c, err := openCatalog()
		if err != nil {
			return outputError(command, err)
		}
		defer c.Close()

		result, err := fn(c.Query(), args)
		if err != nil {
			return outputError(command, err)
		}
		return outputResult(cmd.OutOrStdout(), CLIResult{Command: command, Results: result})
	}
}

// outputResult marshals a CLIResult to w in the selected format.
func outputResult(w io.Writer, result CLIResult) error {
	if flagFormat == "text" {
		return outputResultText(w, result)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// outputError writes an error in the selected format and returns it so RunE
// can propagate it to Cobra. In JSON mode the error is written to stdout as a
// CLIResult envelope. In text mode it goes to stderr.
func outputError(command string, err error) error {
	errorHandled = true
	if flagFormat == "text" {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(CLIResult{Command: command, Error: err.Error()})
	return err
}
