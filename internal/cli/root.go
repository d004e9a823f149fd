package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "rnd",
		Short: "Bounded randomness from rated entropy sources",
		Long: `rnd generates random bytes, integers, floats, booleans, and strings.

Generation commands run the engine in-process against the OS entropy source
(or a seeded source via --seed). The health and token commands talk to a
running randd server.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: RND_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "Token file path (env: RND_TOKEN_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newBytesCmd())
	rootCmd.AddCommand(newIntCmd())
	rootCmd.AddCommand(newFloatCmd())
	rootCmd.AddCommand(newBoolCmd())
	rootCmd.AddCommand(newStringCmd())
	rootCmd.AddCommand(newAlphabetCmd())
	rootCmd.AddCommand(newTokenCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
