package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"pets-provider/internal/contract"
	"pets-provider/internal/platform/buildinfo"
	"pets-provider/internal/platform/httpclient"
)

func newClient(cmd *cobra.Command) (*httpclient.Client, error) {
	server, _ := cmd.Flags().GetString("server")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	c, err := httpclient.NewWithBaseURL(server, timeout)
	if err != nil {
		return nil, fmt.Errorf("--server: %w", err)
	}
	c.UserAgent = "petsctl/" + buildinfo.Info().GitVersion
	return c, nil
}

// selectionFlags son los filtros de colección compartidos por query y delete.
type selectionFlags struct {
	gender string
	breed  string
	sort   string
	order  string
	limit  int
}

func (f *selectionFlags) bind(cmd *cobra.Command, withSort bool) {
	cmd.Flags().StringVar(&f.gender, "gender", "", "unknown|male|female o 0|1|2")
	cmd.Flags().StringVar(&f.breed, "breed", "", "Raza (case-insensitive)")
	if withSort {
		cmd.Flags().StringVar(&f.sort, "sort", "", "Columna de orden ("+contract.ID+" por defecto)")
		cmd.Flags().StringVar(&f.order, "order", "", "asc|desc")
		cmd.Flags().IntVar(&f.limit, "limit", 0, "Máximo de filas")
	}
}

func (f *selectionFlags) params() (httpclient.QueryParams, error) {
	p := httpclient.QueryParams{Breed: f.breed, Sort: f.sort, Order: f.order, Limit: f.limit}
	if f.gender != "" {
		g, ok := contract.ParseGender(f.gender)
		if !ok {
			return httpclient.QueryParams{}, fmt.Errorf("invalid --gender %q", f.gender)
		}
		p.Gender = strconv.Itoa(int(g))
	}
	return p, nil
}

func genderName(code int) string {
	return contract.Gender(code).String()
}
