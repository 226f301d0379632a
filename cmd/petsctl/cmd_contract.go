package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"pets-provider/internal/platform/style"
	"pets-provider/internal/provider"
)

func newContractCmd(stdout io.Writer) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Describe el contrato de datos (authority, URIs, columnas, géneros)",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			d := provider.Describe()
			if asJSON {
				enc := json.NewEncoder(stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(d)
			}
			renderContract(stdout, d)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Salida JSON")
	return cmd
}

func renderContract(w io.Writer, d provider.Description) {
	fmt.Fprintf(w, "%s %s\n", style.Bold.Render("authority:"), d.Authority)
	fmt.Fprintf(w, "%s %s\n", style.Bold.Render("base uri: "), d.BaseURI)
	fmt.Fprintf(w, "%s %s\n", style.Bold.Render("content:  "), style.Info.Render(d.ContentURI))
	fmt.Fprintf(w, "%s %s\n", style.Bold.Render("list type:"), d.Types["list"])
	fmt.Fprintf(w, "%s %s\n", style.Bold.Render("item type:"), d.Types["item"])
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s %s\n", style.Bold.Render("table"), d.Table.Name)
	tbl := style.NewTable(
		style.Column{Name: "column", Width: 8},
		style.Column{Name: "type", Width: 8},
		style.Column{Name: "constraints", Width: 24},
	)
	for _, c := range d.Table.Columns {
		tbl.AddRow(c.Name, c.Type, constraints(c))
	}
	fmt.Fprint(w, tbl.Render())
	fmt.Fprintln(w)

	fmt.Fprintln(w, style.Bold.Render("genders"))
	gt := style.NewTable(
		style.Column{Name: "code", Width: 4, Align: style.AlignRight},
		style.Column{Name: "name", Width: 8},
	)
	for _, g := range d.Genders {
		gt.AddRow(strconv.Itoa(g.Code), g.Name)
	}
	fmt.Fprint(w, gt.Render())
}

func constraints(c provider.ColumnDescription) string {
	var parts []string
	if c.PrimaryKey {
		parts = append(parts, "PRIMARY KEY")
	}
	if c.NotNull {
		parts = append(parts, "NOT NULL")
	}
	if c.Default != "" {
		parts = append(parts, "DEFAULT "+c.Default)
	}
	return strings.Join(parts, " ")
}
