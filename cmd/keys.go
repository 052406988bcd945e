package main

import (
	"context"
	"fmt"
	"numberbot/internal/config"
	"numberbot/internal/credential"
	"numberbot/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// keysCommand constructs the 'keys' subcommand that reads the validation key
// file and prints how many keys it holds, each one masked.
func keysCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Checks the validation access keys file",
		Run: func(cmd *cobra.Command, args []string) {
			path, _ := cmd.Flags().GetString("file")
			if path == "" {
				path = cfg.Providers.KeysFile
			}

			keys, err := credential.ReadFile(path)
			if err != nil {
				logger.Fatal(context.Background(), "could not read keys", zap.Error(err))
			}

			fmt.Printf("%s: %d keys\n", path, len(keys)) //nolint: forbidigo
			for i, key := range keys {
				fmt.Printf("%3d  %s\n", i, credential.Mask(key)) //nolint: forbidigo
			}
		},
	}

	cmd.Flags().String("file", "", "Keys file (defaults to the configured one)")

	return cmd
}
