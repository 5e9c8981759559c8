package cmd

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/TFMV/cipherchain/pkg/cipher"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a keyword for the Playfair and Vigenere ciphers",
	Long: `Generate an A-Z keyword, either randomly or derived deterministically
from a passphrase. Two parties sharing a passphrase derive the same keyword.
The keyword is printed to stdout and never stored.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		length, _ := cmd.Flags().GetInt("length")
		passphrase, _ := cmd.Flags().GetString("passphrase")

		if prompt, _ := cmd.Flags().GetBool("prompt"); prompt && passphrase == "" {
			fmt.Print("Enter passphrase: ")
			passBytes, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read passphrase: %w", err)
			}
			passphrase = string(passBytes)
			fmt.Println() // New line after hidden input
		}

		var keyword string
		var err error
		if passphrase != "" {
			keyword, err = cipher.DeriveKeyword(passphrase, length)
		} else {
			keyword, err = cipher.RandomKeyword(length)
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), keyword)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keygenCmd)

	keygenCmd.Flags().Int("length", 8, "keyword length")
	keygenCmd.Flags().String("passphrase", "", "derive the keyword from this passphrase instead of randomly")
	keygenCmd.Flags().Bool("prompt", false, "prompt for the passphrase without echo")
}
