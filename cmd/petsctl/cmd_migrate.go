package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	pg "pets-provider/internal/adapters/storage/postgres"
	"pets-provider/internal/contract"
	"pets-provider/internal/platform/style"
)

func newMigrateCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		dsn    string
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Crea las tablas en Postgres (o imprime el DDL con --dry-run)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dryRun {
				fmt.Fprintln(stdout, pg.CreateTableSQL(contract.PetsTable()))
				return nil
			}

			if strings.TrimSpace(dsn) == "" {
				dsn = os.Getenv("DB_DSN")
			}
			if strings.TrimSpace(dsn) == "" {
				fmt.Fprintf(stderr, "%s --dsn or DB_DSN is required\n", style.Error.Render(style.IconFail))
				return errExit
			}

			db, err := pg.Open(dsn)
			if err != nil {
				return fmt.Errorf("open postgres: %w", err)
			}
			defer db.Close()

			if err := pg.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "%s schema up to date\n", style.Success.Render(style.IconPass))
			return nil
		},
	}
	cmd.Flags().StringVar(&dsn, "dsn", "", "DSN de Postgres (env DB_DSN)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Solo imprime el CREATE TABLE de pets")
	return cmd
}
