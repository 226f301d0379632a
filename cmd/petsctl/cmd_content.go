package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"pets-provider/internal/contract"
	"pets-provider/internal/platform/httpclient"
	"pets-provider/internal/platform/style"
)

func newQueryCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		sel    selectionFlags
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "query [content-uri]",
		Short: "Consulta filas por content URI (default: la colección pets)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uri := contract.PetsContentURI
			if len(args) == 1 {
				uri = args[0]
			}

			params, err := sel.params()
			if err != nil {
				return err
			}
			c, err := newClient(cmd)
			if err != nil {
				return err
			}

			res, err := c.Query(cmd.Context(), uri, params)
			if err != nil {
				return reportError(stderr, uri, err)
			}

			if asJSON {
				enc := json.NewEncoder(stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}

			tbl := style.NewTable(
				style.Column{Name: contract.ID, Width: 5, Align: style.AlignRight},
				style.Column{Name: contract.ColumnPetName, Width: 16},
				style.Column{Name: contract.ColumnPetBreed, Width: 16},
				style.Column{Name: contract.ColumnPetGender, Width: 8},
				style.Column{Name: contract.ColumnPetWeight, Width: 6, Align: style.AlignRight},
			)
			for _, p := range res.Items {
				tbl.AddRow(
					strconv.FormatInt(p.ID, 10),
					p.Name,
					p.Breed,
					genderName(p.Gender),
					strconv.Itoa(p.Weight),
				)
			}
			fmt.Fprint(stdout, tbl.Render())
			fmt.Fprintln(stdout, style.Dim.Render(fmt.Sprintf("%d row(s) · %s", res.Count, res.Type)))
			return nil
		},
	}
	sel.bind(cmd, true)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Salida JSON")
	return cmd
}

func newInsertCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		name   string
		breed  string
		gender string
		weight int
	)
	cmd := &cobra.Command{
		Use:   "insert",
		Short: "Inserta una mascota en la colección pets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := httpclient.NewPet{Name: name, Breed: breed}

			if gender != "" {
				g, ok := contract.ParseGender(gender)
				if !ok {
					return fmt.Errorf("invalid --gender %q", gender)
				}
				code := int(g)
				in.Gender = &code
			}
			if cmd.Flags().Changed("weight") {
				in.Weight = &weight
			}

			c, err := newClient(cmd)
			if err != nil {
				return err
			}

			pet, err := c.Insert(cmd.Context(), contract.PetsContentURI, in)
			if err != nil {
				return reportError(stderr, contract.PetsContentURI, err)
			}
			fmt.Fprintf(stdout, "%s %s\n", style.Success.Render(style.IconPass), pet.URI)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Nombre (obligatorio)")
	cmd.Flags().StringVar(&breed, "breed", "", "Raza")
	cmd.Flags().StringVar(&gender, "gender", "", "unknown|male|female o 0|1|2")
	cmd.Flags().IntVar(&weight, "weight", 0, "Peso (>= 0)")
	return cmd
}

func newDeleteCmd(stdout, stderr io.Writer) *cobra.Command {
	var sel selectionFlags
	cmd := &cobra.Command{
		Use:   "delete <content-uri>",
		Short: "Borra una fila o las filas de la colección que matchean los filtros",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := sel.params()
			if err != nil {
				return err
			}
			c, err := newClient(cmd)
			if err != nil {
				return err
			}

			n, err := c.Delete(cmd.Context(), args[0], params)
			if err != nil {
				return reportError(stderr, args[0], err)
			}
			fmt.Fprintf(stdout, "%s deleted %d row(s)\n", style.Success.Render(style.IconPass), n)
			return nil
		},
	}
	sel.bind(cmd, false)
	return cmd
}

// reportError escribe el error del servidor en stderr y corta con errExit.
func reportError(stderr io.Writer, uri string, err error) error {
	var he *httpclient.HTTPError
	if errors.As(err, &he) {
		fmt.Fprintf(stderr, "%s %s: %d %s\n", style.Error.Render(style.IconFail), uri, he.StatusCode, he.Body)
		return errExit
	}
	return err
}
