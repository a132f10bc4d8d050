package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newSeqCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seq START FINAL",
		Short: "Print every value from START to FINAL, --step apart",
		Long: `Print the values of the inclusive bound START..FINAL in enumeration order.
FINAL < START counts down. The step is a magnitude: 0 means 1 and its sign is
ignored. FINAL is omitted when the step does not divide the span.
Use -- before negative arguments.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := widthFlag(cmd)
			if err != nil {
				return err
			}
			step, _ := cmd.Flags().GetString("step")

			return w.seq(cmd.OutOrStdout(), args[0], args[1], step)
		},
	}
	cmd.Flags().StringP("step", "s", "1", "distance between consecutive values")

	return cmd
}

func newAdmitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "admit START FINAL VALUE",
		Short: "Print whether VALUE lies within START..FINAL",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := widthFlag(cmd)
			if err != nil {
				return err
			}

			return w.admit(cmd.OutOrStdout(), args[0], args[1], args[2])
		},
	}
}

func newSampleCommand(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample MIN MAX",
		Short: "Draw --count uniform values from MIN..MAX",
		Long: `Draw uniform values from MIN..MAX. MIN must be at least 0 and MAX at least
MIN. Integer widths include MAX; float widths draw from [MIN, MAX+1).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := widthFlag(cmd)
			if err != nil {
				return err
			}
			count, _ := cmd.Flags().GetInt("count")
			if count < 0 {
				return fmt.Errorf("count: must not be negative, got %d", count)
			}
			s, err := samplerFlag(cmd)
			if err != nil {
				return err
			}

			return w.draw(cmd.OutOrStdout(), s, args[0], args[1], count)
		},
	}
	cmd.Flags().IntP("count", "n", cfg.Count, "number of values to draw")
	cmd.Flags().Int64("seed", cfg.Seed, "seed for reproducible draws (0 = entropy)")

	return cmd
}

func newStringCommand(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "string LENGTH",
		Short: "Print a random alphanumeric string of LENGTH characters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("length: %w", err)
			}
			s, err := samplerFlag(cmd)
			if err != nil {
				return err
			}

			var str string
			if digits, _ := cmd.Flags().GetBool("digits"); digits {
				str, err = s.Digits(length)
			} else {
				str, err = s.String(length)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), str)

			return err
		},
	}
	cmd.Flags().Bool("digits", false, "use only the digits 0-9")
	cmd.Flags().Int64("seed", cfg.Seed, "seed for reproducible strings (0 = entropy)")

	return cmd
}
