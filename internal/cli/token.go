package cli

import (
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage server-issued tokens",
	}

	cmd.AddCommand(newTokenIssueCmd())
	cmd.AddCommand(newTokenGetCmd())
	cmd.AddCommand(newTokenRevokeCmd())

	return cmd
}

func newTokenIssueCmd() *cobra.Command {
	var (
		purpose    string
		length     int
		flags      string
		ttlSeconds int
		save       bool
	)

	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a new token",
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{
				"purpose": purpose,
			}
			if length > 0 {
				body["length"] = length
			}
			if flags != "" {
				body["flags"] = flags
			}
			if ttlSeconds > 0 {
				body["ttl_seconds"] = ttlSeconds
			}

			var result TokenResult
			if err := client.Post("/api/v1/tokens", body, &result); err != nil {
				return err
			}

			// The server never returns the value again; save it now or lose it.
			if save {
				if err := cfg.SaveToken(result.Value); err != nil {
					return err
				}
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&purpose, "purpose", "p", "", "What the token protects (required)")
	cmd.Flags().IntVarP(&length, "length", "l", 0, "Token value length (default 32)")
	cmd.Flags().StringVar(&flags, "flags", "", "Alphabet flags for the value (default legible)")
	cmd.Flags().IntVar(&ttlSeconds, "ttl", 0, "Expiry in seconds (0 = no expiry)")
	cmd.Flags().BoolVar(&save, "save", false, "Save the token value to the token file")
	_ = cmd.MarkFlagRequired("purpose")

	return cmd
}

func newTokenGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Look up a token's metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result TokenResult
			if err := client.Get("/api/v1/tokens/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newTokenRevokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke <id>",
		Short: "Revoke a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/tokens/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(map[string]string{"revoked": args[0]})
			return nil
		},
	}
}
