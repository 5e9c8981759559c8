package cmd

import (
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/TFMV/cipherchain/pkg/cipher"
	"github.com/TFMV/cipherchain/pkg/pipeline"
	"github.com/TFMV/cipherchain/pkg/textproc"
)

// newTransformCmd builds the encrypt and decrypt commands. They share flags
// and the runner; only the mode differs.
func newTransformCmd(mode cipher.Mode, short, long string) *cobra.Command {
	c := &cobra.Command{
		Use:   mode.String(),
		Short: short,
		Long:  long,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, mode)
		},
	}

	c.Flags().StringSliceP("cipher", "c", nil, "cipher kind, repeatable (caesar, playfair, vigenere)")
	c.Flags().StringSliceP("key", "k", nil, "key for the matching --cipher, repeatable")
	c.Flags().String("chain", "", `compact chain spec, e.g. "caesar:5,vigenere:LEMON" (overrides --cipher/--key)`)
	c.Flags().StringP("input", "i", "", "input file (default stdin)")
	c.Flags().StringP("output", "o", "", "output file (default stdout)")
	c.Flags().Int("workers", pipeline.DefaultWorkers, "chunk workers for parallelizable ciphers")
	c.Flags().Bool("raw", false, "skip input normalization and feed input verbatim")
	c.Flags().Bool("prompt", false, "prompt for missing keyword-cipher keys without echo")

	return c
}

func runTransform(cmd *cobra.Command, mode cipher.Mode) error {
	chainSpec, _ := cmd.Flags().GetString("chain")
	names, _ := cmd.Flags().GetStringSlice("cipher")
	keys, _ := cmd.Flags().GetStringSlice("key")
	promptMissing, _ := cmd.Flags().GetBool("prompt")

	specs, err := resolveSpecs(chainSpec, names, keys, promptMissing)
	if err != nil {
		return err
	}

	// The whole chain is constructed before any input is read: an invalid
	// key aborts the run with no output written.
	chain, err := cipher.NewChain(specs)
	if err != nil {
		return err
	}

	inputFile, _ := cmd.Flags().GetString("input")
	raw, _ := cmd.Flags().GetBool("raw")
	text, err := readInput(inputFile, raw)
	if err != nil {
		return err
	}

	workers, _ := cmd.Flags().GetInt("workers")
	if !cmd.Flags().Changed("workers") && viper.IsSet("workers") {
		workers = viper.GetInt("workers")
	}

	result, err := pipeline.New(chain, pipeline.WithWorkers(workers)).Run(cmd.Context(), text, mode)
	if err != nil {
		return err
	}

	outputFile, _ := cmd.Flags().GetString("output")
	return writeOutput(outputFile, result)
}

// resolveSpecs turns the flag surface into an ordered list of cipher specs.
// With no cipher flags at all the chain defaults to a single Caesar with the
// null key "0", which passes text through unchanged.
func resolveSpecs(chainSpec string, names, keys []string, promptMissing bool) ([]cipher.Spec, error) {
	if chainSpec != "" {
		return cipher.ParseChainSpec(chainSpec)
	}
	if len(names) == 0 {
		names = []string{cipher.Caesar.String()}
	}
	if len(keys) > len(names) {
		return nil, fmt.Errorf("%d keys given for %d ciphers", len(keys), len(names))
	}

	specs := make([]cipher.Spec, 0, len(names))
	for i, name := range names {
		kind, err := cipher.ParseKind(name)
		if err != nil {
			return nil, err
		}
		var key string
		switch {
		case i < len(keys):
			key = keys[i]
		case kind == cipher.Caesar:
			// Null key: shift 0, no encryption.
			key = "0"
		case promptMissing:
			key, err = promptKey(kind)
			if err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("missing key for cipher %s (use --key or --prompt)", kind)
		}
		specs = append(specs, cipher.Spec{Kind: kind, Key: key})
	}
	return specs, nil
}

func promptKey(kind cipher.Kind) (string, error) {
	fmt.Printf("Enter %s key: ", kind)
	keyBytes, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", fmt.Errorf("failed to read key: %w", err)
	}
	fmt.Println() // New line after hidden input
	return string(keyBytes), nil
}

// readInput reads the whole input from path or stdin, normalized through
// textproc unless raw is set.
func readInput(path string, raw bool) (string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	if raw {
		data, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return string(data), nil
	}
	return textproc.Normalize(r)
}

func writeOutput(path, text string) error {
	if path == "" {
		fmt.Println(text)
		return nil
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
