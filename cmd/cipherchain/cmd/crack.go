package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/TFMV/cipherchain/pkg/analysis"
)

var crackCmd = &cobra.Command{
	Use:   "crack",
	Short: "Rank Caesar shifts for a ciphertext by letter frequency",
	Long: `Score every possible Caesar shift against English letter frequencies
and print the candidates ranked best first, or apply the best one directly
with --apply. Only the Caesar cipher is crackable this way.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		top, _ := cmd.Flags().GetInt("top")
		if top < 0 {
			return fmt.Errorf("--top must be non-negative, got %d", top)
		}

		inputFile, _ := cmd.Flags().GetString("input")
		raw, _ := cmd.Flags().GetBool("raw")

		text, err := readInput(inputFile, raw)
		if err != nil {
			return err
		}

		candidates, err := analysis.CrackCaesar(text)
		if err != nil {
			return err
		}

		if apply, _ := cmd.Flags().GetBool("apply"); apply {
			best := candidates[0]
			log.Info().
				Int("shift", best.Shift).
				Float64("confidence", best.Confidence).
				Msg("Applying best shift candidate")
			outputFile, _ := cmd.Flags().GetString("output")
			return writeOutput(outputFile, best.Plaintext)
		}

		if top > len(candidates) {
			top = len(candidates)
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"Rank", "Shift", "Confidence", "Preview"})
		for i, c := range candidates[:top] {
			t.AppendRow(table.Row{i + 1, c.Shift, fmt.Sprintf("%.1f%%", c.Confidence*100), c.Preview(40)})
		}
		t.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(crackCmd)

	crackCmd.Flags().StringP("input", "i", "", "ciphertext file (default stdin)")
	crackCmd.Flags().StringP("output", "o", "", "output file for --apply (default stdout)")
	crackCmd.Flags().Int("top", 5, "number of candidates to show")
	crackCmd.Flags().Bool("apply", false, "write the best candidate's plaintext instead of the table")
	crackCmd.Flags().Bool("raw", false, "skip input normalization")
}
