// petsctl es el cliente de línea de comandos de pets-provider.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pets-provider/internal/platform/style"
)

const defaultServer = "http://localhost:8080"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// errExit indica salida != 0 cuando el comando ya escribió su error en stderr.
var errExit = errors.New("exit")

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errExit) {
			fmt.Fprintf(stderr, "petsctl: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "petsctl",
		Short:         "Cliente de pets-provider (contrato, URIs y contenido)",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	server := os.Getenv("PETS_SERVER")
	if server == "" {
		server = defaultServer
	}
	root.PersistentFlags().String("server", server, "Base URL de la API (env PETS_SERVER)")
	root.PersistentFlags().Duration("timeout", 0, "Timeout por request (default 10s)")
	root.PersistentFlags().String("color", "auto", "Color: always, auto, never")
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		colorMode, _ := cmd.Flags().GetString("color")
		switch colorMode {
		case "always", "auto", "never":
			style.SetColorMode(colorMode)
			return nil
		default:
			return fmt.Errorf("invalid --color value %q: must be always, auto, or never", colorMode)
		}
	}

	root.AddCommand(
		newVersionCmd(stdout),
		newContractCmd(stdout),
		newResolveCmd(stdout, stderr),
		newMigrateCmd(stdout, stderr),
		newQueryCmd(stdout, stderr),
		newInsertCmd(stdout, stderr),
		newDeleteCmd(stdout, stderr),
	)
	return root
}
