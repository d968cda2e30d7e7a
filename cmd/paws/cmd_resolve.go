package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// resolveCmd audits the breed identity map: which canonical names resolved
// to an asset key, and which are left without one.
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the breed identity map and any unresolved names",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := buildRuntime(cmd.Context(), logger)
		if err != nil {
			return err
		}

		names := rt.table.Names()
		for _, name := range names {
			if key, ok := rt.identity[name]; ok {
				fmt.Printf("%-40s -> %s\n", name, key)
			}
		}

		unresolved := rt.identity.Unresolved(names)
		if len(unresolved) == 0 {
			fmt.Println("\nall breeds resolved")
			return nil
		}
		fmt.Printf("\n%d unresolved:\n", len(unresolved))
		for _, name := range unresolved {
			fmt.Println("  " + name)
		}
		return nil
	},
}
