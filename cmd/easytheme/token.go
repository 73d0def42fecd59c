// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/easytheme/internal/auth"
	"github.com/thatcatcamp/easytheme/internal/config"
)

var tokenNewSecret bool

var tokenCmd = &cobra.Command{
	Use:   "token [subject]",
	Short: "Issue an API token for theme updates",
	Long: `Issue a bearer token allowed to set and clear themes on a running server.
The subject defaults to "cli". With --new-secret, auth.jwt_secret is replaced
first, which invalidates every token issued before.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mustInitConfig()

		if tokenNewSecret {
			secret, err := auth.GenerateSecret()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if err := config.Set("auth.jwt_secret", secret); err != nil {
				fmt.Fprintf(os.Stderr, "Error setting config: %v\n", err)
				os.Exit(1)
			}
			fmt.Fprintln(os.Stderr, "Generated new auth.jwt_secret")
		}

		subject := "cli"
		if len(args) == 1 {
			subject = args[0]
		}

		token, err := auth.GenerateToken(subject)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			if errors.Is(err, auth.ErrInsecureSecret) {
				fmt.Fprintln(os.Stderr, "Hint: rerun with --new-secret or set EASYTHEME_JWT_SECRET")
			}
			os.Exit(1)
		}

		fmt.Println(token)
	},
}

func init() {
	tokenCmd.Flags().BoolVar(&tokenNewSecret, "new-secret", false, "generate a new auth.jwt_secret before issuing")
	rootCmd.AddCommand(tokenCmd)
}
