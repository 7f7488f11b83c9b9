package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fernlang/fernc/pkg/langitems"
)

type catalogRow struct {
	Slot  int    `json:"slot"`
	Name  string `json:"name"`
	Group string `json:"group"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every known language item",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := make([]catalogRow, 0, langitems.NumLangItems)
		for it := langitems.LangItem(0); it < langitems.NumLangItems; it++ {
			rows = append(rows, catalogRow{
				Slot:  int(it),
				Name:  it.Name(),
				Group: groupOf(it),
			})
		}

		if flagJSON {
			out, err := json.MarshalIndent(rows, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SLOT\tNAME\tGROUP")
		for _, row := range rows {
			fmt.Fprintf(w, "%d\t%s\t%s\n", row.Slot, row.Name, row.Group)
		}
		return w.Flush()
	},
}

func groupOf(it langitems.LangItem) string {
	switch {
	case it <= langitems.SizedTrait:
		return "bound"
	case it <= langitems.OrdTrait:
		return "trait"
	case it <= langitems.StartFn:
		return "fn"
	default:
		return "intrinsic"
	}
}
