package main

import (
	"os"

	"github.com/spf13/cobra"

	"deskhub/internal/interfaces/cli/migrate"
	"deskhub/internal/interfaces/cli/seed"
	"deskhub/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "deskhub",
		Short: "DeskHub - a multi-project helpdesk",
		Long:  `DeskHub is a helpdesk service with anonymous ticket intake, an agent console, and administrative tooling.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
