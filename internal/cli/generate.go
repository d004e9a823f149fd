package cli

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/unyx/random"
)

// localGenerator builds an in-process generator: seeded when --seed is
// given, the OS entropy source otherwise.
func localGenerator(seed string) (*random.Generator, error) {
	var source random.Source
	var err error

	if seed != "" {
		source, err = random.NewSeededSource([]byte(seed))
	} else {
		source, err = random.NewSystemSource()
	}
	if err != nil {
		return nil, err
	}

	return random.New(random.DefaultConfig(), source)
}

func newBytesCmd() *cobra.Command {
	var (
		seed     string
		count    int
		length   int
		encoding string
	)

	cmd := &cobra.Command{
		Use:   "bytes",
		Short: "Generate random bytes",
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := localGenerator(seed)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			for i := 0; i < count; i++ {
				data, err := gen.Bytes(length)
				if err != nil {
					return err
				}

				var encoded string
				switch encoding {
				case "hex":
					encoded = hex.EncodeToString(data)
				case "base64":
					encoded = base64.StdEncoding.EncodeToString(data)
				default:
					return fmt.Errorf("unknown encoding: %s", encoding)
				}

				out.Print(GenerateResult{Value: encoded, Strength: gen.Strength().String()})
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&seed, "seed", "", "Seed for deterministic output (testing only)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of values to generate")
	cmd.Flags().IntVarP(&length, "length", "l", 32, "Number of bytes")
	cmd.Flags().StringVar(&encoding, "encoding", "hex", "Output encoding: hex, base64")

	return cmd
}

func newIntCmd() *cobra.Command {
	var (
		seed  string
		count int
		min   int64
		max   int64
	)

	cmd := &cobra.Command{
		Use:   "int",
		Short: "Generate a random integer in [min, max]",
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := localGenerator(seed)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			for i := 0; i < count; i++ {
				value, err := gen.Int(min, max)
				if err != nil {
					return err
				}
				out.Print(GenerateResult{
					Value:    strconv.FormatInt(value, 10),
					Strength: gen.Strength().String(),
				})
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&seed, "seed", "", "Seed for deterministic output (testing only)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of values to generate")
	cmd.Flags().Int64Var(&min, "min", 0, "Lower bound (inclusive)")
	cmd.Flags().Int64Var(&max, "max", 100, "Upper bound (inclusive)")

	return cmd
}

func newFloatCmd() *cobra.Command {
	var (
		seed  string
		count int
		min   float64
		max   float64
	)

	cmd := &cobra.Command{
		Use:   "float",
		Short: "Generate a random float in [min, max)",
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := localGenerator(seed)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			for i := 0; i < count; i++ {
				value, err := gen.Float64(min, max)
				if err != nil {
					return err
				}
				out.Print(GenerateResult{
					Value:    strconv.FormatFloat(value, 'g', -1, 64),
					Strength: gen.Strength().String(),
				})
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&seed, "seed", "", "Seed for deterministic output (testing only)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of values to generate")
	cmd.Flags().Float64Var(&min, "min", 0, "Lower bound (inclusive)")
	cmd.Flags().Float64Var(&max, "max", 1, "Upper bound (exclusive)")

	return cmd
}

func newBoolCmd() *cobra.Command {
	var (
		seed  string
		count int
	)

	cmd := &cobra.Command{
		Use:   "bool",
		Short: "Generate a random boolean",
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := localGenerator(seed)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			for i := 0; i < count; i++ {
				value, err := gen.Bool()
				if err != nil {
					return err
				}
				out.Print(GenerateResult{
					Value:    strconv.FormatBool(value),
					Strength: gen.Strength().String(),
				})
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&seed, "seed", "", "Seed for deterministic output (testing only)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of values to generate")

	return cmd
}

func newStringCmd() *cobra.Command {
	var (
		seed   string
		count  int
		length int
		flags  string
	)

	cmd := &cobra.Command{
		Use:   "string",
		Short: "Generate a random string",
		Long: `Generate a random string.

Without --flags the output is dense URL-safe text. With --flags the string
is drawn from the selected alphabet, e.g. --flags upper,numeric or
--flags legible.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := localGenerator(seed)
			if err != nil {
				return err
			}

			var parsed random.Flag
			if flags != "" {
				parsed, err = random.ParseFlags(flags)
				if err != nil {
					return err
				}
			}

			out := NewOutput(cfg.Output)
			for i := 0; i < count; i++ {
				var value string
				if flags == "" {
					value, err = gen.String(length)
				} else {
					value, err = gen.StringFlags(length, parsed)
				}
				if err != nil {
					return err
				}
				out.Print(GenerateResult{Value: value, Strength: gen.Strength().String()})
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&seed, "seed", "", "Seed for deterministic output (testing only)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of values to generate")
	cmd.Flags().IntVarP(&length, "length", "l", 32, "String length")
	cmd.Flags().StringVar(&flags, "flags", "", "Alphabet flags (comma-separated)")

	return cmd
}

func newAlphabetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alphabet <flags>",
		Short: "Resolve alphabet flags to their character set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, err := random.ParseFlags(args[0])
			if err != nil {
				return err
			}

			alphabet, err := random.BuildAlphabet(flags)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(AlphabetResult{
				Flags:    flags.String(),
				Alphabet: string(alphabet),
				Size:     alphabet.Len(),
			})
			return nil
		},
	}

	return cmd
}
