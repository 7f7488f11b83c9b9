package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fernlang/fernc/pkg/langitems"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <name>",
	Short: "Resolve a marker name to its catalog slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		it, ok := langitems.LookupItem(name)
		if !ok {
			return fmt.Errorf("unknown language item %q", name)
		}

		row := catalogRow{Slot: int(it), Name: it.Name(), Group: groupOf(it)}
		if flagJSON {
			out, err := json.MarshalIndent(row, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}
		fmt.Printf("%d\t%s\t%s\n", row.Slot, row.Name, row.Group)
		return nil
	},
}
