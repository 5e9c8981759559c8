package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/TFMV/cipherchain/pkg/cipher"
)

var ciphersCmd = &cobra.Command{
	Use:   "ciphers",
	Short: "List the supported ciphers",
	Run: func(cmd *cobra.Command, args []string) {
		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"Cipher", "Key Format", "Chunked", "Description"})

		for _, kind := range cipher.Kinds() {
			keyFormat, chunked, desc := kindInfo(kind)
			t.AppendRow(table.Row{kind.String(), keyFormat, chunked, desc})
		}
		t.Render()
	},
}

func kindInfo(kind cipher.Kind) (keyFormat, chunked, desc string) {
	switch kind {
	case cipher.Caesar:
		return "integer shift", "yes", "shift substitution over A-Z"
	case cipher.Playfair:
		return "keyword (letters)", "no", "digraph substitution on a 5x5 key grid"
	case cipher.Vigenere:
		return "keyword (letters)", "no", "repeating-key shift substitution"
	default:
		return "", "", ""
	}
}

func init() {
	rootCmd.AddCommand(ciphersCmd)
}
