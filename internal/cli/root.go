// Package cli implements the rangekit command: materialize bounds, test
// membership and draw bounded random values from the command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numrange/sample"
)

// Execute runs rangekit with os.Args and returns the process exit code.
func Execute() int {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rangekit: %v\n", err)
		return 1
	}
	if err := NewRootCommand(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "rangekit: %v\n", err)
		return 1
	}

	return 0
}

// NewRootCommand builds a fresh command tree with cfg as flag defaults.
func NewRootCommand(cfg Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "rangekit",
		Short:         "Expand, test and sample inclusive numeric bounds",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringP("type", "t", cfg.Type, "numeric width: int8, int16, int32, int64, float32, float64")

	root.AddCommand(
		newSeqCommand(),
		newAdmitCommand(),
		newSampleCommand(cfg),
		newStringCommand(cfg),
	)

	return root
}

// widthFlag resolves the --type flag.
func widthFlag(cmd *cobra.Command) (width, error) {
	name, err := cmd.Flags().GetString("type")
	if err != nil {
		return nil, err
	}

	return lookupWidth(name)
}

// samplerFlag builds the Sampler for --seed; 0 seeds from entropy.
func samplerFlag(cmd *cobra.Command) (*sample.Sampler, error) {
	seed, err := cmd.Flags().GetInt64("seed")
	if err != nil {
		return nil, err
	}
	if seed == 0 {
		return sample.New(), nil
	}

	return sample.New(sample.WithSeed(seed)), nil
}
