package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jward/catalog"
)

// formatCasinoText prints one casino followed by its relations.
func formatCasinoText(w io.Writer, c catalog.CasinoWithRelations) {
	fmt.Fprintf(w, "%s (%s)\n", c.Name, c.ID)
	fmt.Fprintf(w, "Payout ratio: %s\n", optFloat(c.PayoutRatio, "%.1f%%"))
	if c.BonusOffer != nil {
		fmt.Fprintf(w, "Bonus: %s\n", *c.BonusOffer)
	}
	fmt.Fprintf(w, "Minimum deposit: %.2f\n", catalog.MinDeposit(c.Payments, catalog.DefaultMinDeposit))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Payment Methods:")
	if len(c.Payments) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, p := range c.Payments {
		fmt.Fprintf(w, "  %s (min %s)\n", p.Name, optFloat(p.MinDeposit, "%.2f"))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Software:")
	if len(c.Software) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, s := range c.Software {
		fmt.Fprintf(w, "  %s\n", s.Name)
	}
}

// formatCasinosText formats enriched casinos as aligned columns.
func formatCasinosText(w io.Writer, casinos []catalog.CasinoWithRelations) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPAYOUT\tPAYMENTS\tSOFTWARE")
	for _, c := range casinos {
		payments := make([]string, len(c.Payments))
		for i, p := range c.Payments {
			payments[i] = p.Name
		}
		software := make([]string, len(c.Software))
		for i, s := range c.Software {
			software[i] = s.Name
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Name, optFloat(c.PayoutRatio, "%.1f"),
			strings.Join(payments, ", "), strings.Join(software, ", "))
	}
	tw.Flush()
}

// formatTopText formats ranked casinos as aligned columns.
func formatTopText(w io.Writer, casinos []catalog.Casino) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tID\tNAME\tPAYOUT")
	for i, c := range casinos {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, c.ID, c.Name, optFloat(c.PayoutRatio, "%.1f"))
	}
	tw.Flush()
}

// formatProvidersText formats providers with game counts as aligned columns.
func formatProvidersText(w io.Writer, providers []catalog.ProviderGameCount) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tGAMES")
	for _, p := range providers {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", p.ID, p.Name, p.GameCount)
	}
	tw.Flush()
}

// formatSearchText formats search entries as aligned columns.
func formatSearchText(w io.Writer, entries []catalog.SearchEntry) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tTITLE\tURL")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Type, e.Title, e.URL)
	}
	tw.Flush()
}

// outputResultText dispatches to the appropriate text formatter based on the
// result type.
func outputResultText(w io.Writer, result CLIResult) error {
	switch v := result.Results.(type) {
	case catalog.CasinoWithRelations:
		formatCasinoText(w, v)
	case []catalog.CasinoWithRelations:
		formatCasinosText(w, v)
	case []catalog.Casino:
		formatTopText(w, v)
	case []catalog.ProviderGameCount:
		formatProvidersText(w, v)
	case []catalog.SearchEntry:
		formatSearchText(w, v)
	case nil:
	default:
		return fmt.Errorf("unsupported result type for text format: %T", v)
	}
	return nil
}

func optFloat(v *float64, format string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf(format, *v)
}

// validFormats lists accepted values for --format.
var validFormats = []string{"json", "text"}

// validateFormat checks that the --format flag value is recognized.
func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be %s", format, strings.Join(validFormats, " or "))
}
