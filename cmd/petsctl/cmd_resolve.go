package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pets-provider/internal/platform/style"
	"pets-provider/internal/provider"
)

func newResolveCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <content-uri>",
		Short: "Resuelve una content URI con el matcher del provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := provider.NewPetsMatcher().Match(args[0])
			if err != nil {
				fmt.Fprintf(stderr, "%s %s: %v\n", style.Error.Render(style.IconFail), args[0], err)
				return errExit
			}

			fmt.Fprintf(stdout, "%s %s\n", style.Success.Render(style.IconPass), m.URI)
			fmt.Fprintf(stdout, "code: %s (%d)\n", m.Code, int(m.Code))
			if m.Code == provider.CodePetID {
				fmt.Fprintf(stdout, "id:   %d\n", m.ID)
			}
			fmt.Fprintf(stdout, "type: %s\n", m.Type())
			return nil
		},
	}
}
