package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pets-provider/internal/platform/buildinfo"
)

func newVersionCmd(stdout io.Writer) *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			info := buildinfo.Info()
			if short {
				fmt.Fprintf(stdout, "%s %s (commit: %s, built: %s)\n",
					buildinfo.Application, info.GitVersion, info.GitCommit, info.BuildDate)
				return nil
			}
			fmt.Fprintln(stdout, info.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Una sola línea")
	return cmd
}
