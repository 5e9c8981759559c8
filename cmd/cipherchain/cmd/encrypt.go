package cmd

import "github.com/TFMV/cipherchain/pkg/cipher"

var encryptCmd = newTransformCmd(
	cipher.Encrypt,
	"Encrypt text with the requested cipher chain",
	`Encrypt input text with one or more ciphers applied in the order given.

Input is normalized first (uppercased, digits spelled out, everything else
dropped) unless --raw is set. Ciphers are paired with keys positionally:

  cipherchain encrypt -c caesar -k 5 -c vigenere -k LEMON -i plain.txt

or with the compact chain syntax:

  cipherchain encrypt --chain "caesar:5,vigenere:LEMON" -i plain.txt`,
)

func init() {
	rootCmd.AddCommand(encryptCmd)
}
