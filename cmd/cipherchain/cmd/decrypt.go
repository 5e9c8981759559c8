package cmd

import "github.com/TFMV/cipherchain/pkg/cipher"

var decryptCmd = newTransformCmd(
	cipher.Decrypt,
	"Decrypt text with the requested cipher chain",
	`Decrypt input text with one or more ciphers.

List the ciphers exactly as they were given for encryption; they are applied
in reverse order automatically, so the same command line round-trips:

  cipherchain encrypt --chain "caesar:5,vigenere:LEMON" -i plain.txt -o c.txt
  cipherchain decrypt --chain "caesar:5,vigenere:LEMON" -i c.txt`,
)

func init() {
	rootCmd.AddCommand(decryptCmd)
}
