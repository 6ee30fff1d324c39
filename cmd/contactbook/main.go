package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hmelnych/contactbook/internal/cli"
	"github.com/hmelnych/contactbook/internal/service"
	"github.com/hmelnych/contactbook/internal/storage"
	"github.com/hmelnych/contactbook/internal/storage/memory"
	"github.com/hmelnych/contactbook/internal/storage/sqlite"
	"github.com/hmelnych/contactbook/pkg/logging"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	logging.Setup()

	var (
		backend string
		dbPath  string
	)

	rootCmd := &cobra.Command{
		Use:   "contactbook",
		Short: "Interactive address book with birthday reminders",
		Long: `contactbook is an interactive command-line contact manager.
It stores names, 10-digit phone numbers and DD.MM.YYYY birthdays, and
reports birthdays falling within the next 7 days.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(backend, dbPath)
			if err != nil {
				return fmt.Errorf("open %s store: %w", backend, err)
			}
			defer store.Close()
			slog.Debug("storage initialized", "backend", backend)

			repl := cli.New(service.NewContactService(store), cmd.InOrStdin(), cmd.OutOrStdout())
			return repl.Run(cmd.Context())
		},
	}

	rootCmd.Flags().StringVar(&backend, "backend",
		getEnv("CONTACTS_BACKEND", "memory"), `storage backend: "memory" or "sqlite"`)
	rootCmd.Flags().StringVar(&dbPath, "db",
		getEnv("CONTACTS_DB", sqlite.InMemory), "sqlite database path (sqlite backend only)")

	if err := rootCmd.Execute(); err != nil {
		slog.Error("contactbook failed", "error", err)
		os.Exit(1)
	}
}

func openStore(backend, dbPath string) (storage.Store, error) {
	switch backend {
	case "memory":
		return memory.NewAddressBook(), nil
	case "sqlite":
		return sqlite.New(dbPath)
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}
