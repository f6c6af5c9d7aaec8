package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"beer-recipe/core/output"
)

// checkCmd validates BeerXML files without evaluating them
var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "List BeerXML files and whether they decode",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	scan, err := scanPath(cmd.Context(), path)
	if err != nil {
		return err
	}

	type row struct {
		file, recipes, status string
	}
	var rows []row
	for _, doc := range scan.Documents {
		rows = append(rows, row{doc.File, strconv.Itoa(len(doc.Recipes)), "ok"})
	}
	for _, e := range scan.Errors {
		rows = append(rows, row{e.File, "-", e.Message})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].file < rows[j].file })

	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{r.file, r.recipes, r.status})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, output.RenderTable(
		[]string{"File", "Recipes", "Status"},
		cells,
		[]output.Alignment{output.AlignLeft, output.AlignRight, output.AlignLeft},
	))
	for _, w := range scan.Warnings {
		fmt.Fprintf(out, "warning: %s: %s\n", w.File, w.Message)
	}
	fmt.Fprintf(out, "%d files, %d recipes, %d unreadable\n",
		len(scan.Documents)+len(scan.Errors)+len(scan.Warnings), scan.RecipeCount(), len(scan.Errors))

	if scan.HasErrors() {
		return errFailedRecipes
	}
	return nil
}
