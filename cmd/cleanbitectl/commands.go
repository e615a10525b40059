package main

import (
	"encoding/json"
	"html"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"cleanbite/internal/domain/catalog"
	"cleanbite/internal/domain/presentation"
	"cleanbite/internal/usecase"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type filterFlags struct {
	minRating    int
	businessType string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.minRating, "min-rating", 0, "lowest rating to keep (0 keeps all)")
	cmd.Flags().StringVar(&f.businessType, "type", "", "business type to keep")
}

func (f *filterFlags) validate() error {
	if f.minRating < 0 || f.minRating > 5 {
		return errors.Errorf("--min-rating must be between 0 and 5, got %d", f.minRating)
	}

	return nil
}

func (f *filterFlags) query() *usecase.EstablishmentQuery {
	q := &usecase.EstablishmentQuery{}
	if f.minRating > 0 {
		rating := f.minRating
		q.MinRating = &rating
	}
	if f.businessType != "" {
		businessType := f.businessType
		q.BusinessType = &businessType
	}

	return q
}

func newSearchCmd(a *app) *cobra.Command {
	filters := &filterFlags{}
	var limit int

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search establishments by name, type or rating",
		Long: `Filters the dataset by rating and business type, then keeps the
establishments whose name, business type or rating text contains the
query. Addresses are not searched. Queries shorter than two characters
only apply the filters.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := filters.validate(); err != nil {
				return err
			}

			query := filters.query()
			if len(args) == 1 {
				query.Text = args[0]
			}
			query.Limit = limit

			page, err := a.establishments.Search(a.context(cmd), query)
			if err != nil {
				return err
			}

			if a.asJSON {
				return a.writeJSON(page)
			}

			a.printSummaries(page)

			return nil
		},
	}

	filters.register(cmd)
	cmd.Flags().IntVar(&limit, "limit", catalog.MaxRenderedResults, "maximum rows to print (0 prints all)")

	return cmd
}

func newListCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List establishments alphabetically",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			panel, err := a.establishments.Alphabetical(a.context(cmd), limit)
			if err != nil {
				return err
			}

			if a.asJSON {
				return a.writeJSON(panel)
			}

			a.printPanel(panel)

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", catalog.MaxListItems, "maximum rows to print")

	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id|share-link>",
		Short: "Show the inspection detail of one establishment",
		Long: `Prints the detail panel of one establishment. The argument is either
an establishment id or the link encoded in its share code.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.resolveID(args[0])
			if err != nil {
				return err
			}

			detail, err := a.establishments.Detail(a.context(cmd), id)
			if err != nil {
				return err
			}

			if a.asJSON {
				return a.writeJSON(detail)
			}

			a.printDetail(detail)

			return nil
		},
	}
}

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List business types in dataset order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			types, err := a.establishments.BusinessTypes(a.context(cmd))
			if err != nil {
				return err
			}

			if a.asJSON {
				return a.writeJSON(types)
			}

			for _, t := range types {
				a.printf("%s\n", t)
			}

			return nil
		},
	}
}

func newQRCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "qr <id>",
		Short: "Write the share code of an establishment as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			png, err := a.establishments.ShareCode(a.context(cmd), args[0])
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = a.out.Write(png)

				return errors.Wrap(err, "failed to write share code")
			}

			if err := os.WriteFile(output, png, 0o644); err != nil {
				return errors.Wrapf(err, "failed to write %s", output)
			}
			a.printf("wrote %s (%d bytes)\n", output, len(png))

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write (stdout when empty)")

	return cmd
}

// resolveID accepts a plain id or a scanned share link
func (a *app) resolveID(arg string) (string, error) {
	if !strings.Contains(arg, "://") {
		return arg, nil
	}

	return a.share.ParseEstablishmentQR(arg)
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")

	return errors.Wrap(enc.Encode(v), "failed to encode output")
}

func (a *app) printSummaries(page *usecase.EstablishmentPage) {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	defer w.Flush()

	for _, item := range page.Items {
		_, _ = w.Write([]byte(strings.Join([]string{
			item.ID, item.Name, item.BusinessType, item.RatingLabel,
		}, "\t") + "\n"))
	}

	noun := "results"
	if page.Total == 1 {
		noun = "result"
	}
	_, _ = w.Write([]byte(strconv.Itoa(page.Total) + " " + noun + "\n"))
}

func (a *app) printPanel(panel *presentation.ResultsPanel) {
	a.printf("%s (%s)\n", panel.Header, panel.Count)

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	defer w.Flush()

	for _, row := range panel.Rows {
		_, _ = w.Write([]byte(strings.Join([]string{
			row.ID, html.UnescapeString(row.NameHTML), row.BusinessType, row.RatingLabel,
		}, "\t") + "\n"))
	}
}

func (a *app) printDetail(d *presentation.Detail) {
	a.printf("%s\n", d.Name)
	a.printf("  %s\n", d.BusinessType)
	a.printf("  %s: %s\n", d.RatingLabel, d.RatingDescription)
	a.printf("  Address: %s\n", d.Address)
	a.printf("  Inspected: %s\n", d.InspectionDate)
	if d.Scores != nil {
		a.printf("  Hygiene %s  Structural %s  Management %s\n", d.Scores.Hygiene, d.Scores.Structural, d.Scores.Management)
	}
	a.printf("  %s\n", d.Summary)
}
