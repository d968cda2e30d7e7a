package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pawmatch/internal/dialogue"
	"pawmatch/internal/rank"
)

// matchCmd runs the recommendation pipeline once, without a conversation:
// a preference profile in, ranked explanations out. Useful for checking a
// dataset or tuning the override table.
var matchCmd = &cobra.Command{
	Use:   "match [profile.json]",
	Short: "Rank breeds against a preference profile from a JSON file",
	Long: `Reads a preference profile (the same JSON object the interview
produces) from a file and prints the ranked breeds with explanations.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read profile: %w", err)
		}
		profile, err := dialogue.ParseProfile(string(data))
		if err != nil {
			return err
		}

		rt, err := buildRuntime(cmd.Context(), logger)
		if err != nil {
			return err
		}

		userVec, err := rt.space.EncodeProfile(profile)
		if err != nil {
			return err
		}
		matrix := rt.space.EncodeTable(rt.table)
		ranked := rank.Rank(userVec, rt.table.Names(), matrix, rt.cfg.Match.TopN)

		for _, ex := range rt.composer.Explain(ranked) {
			key, mapped := rt.identity[ex.Breed]
			fmt.Println(ex.Text)
			if mapped {
				fmt.Printf("  (asset key: %s)\n", key)
			} else {
				fmt.Println("  (no asset available)")
			}
		}
		for _, rb := range ranked {
			fmt.Printf("%-40s %.4f\n", rb.Name, rb.Score)
		}
		return nil
	},
}
