package provider

import (
	"net/http"

	"pets-provider/internal/contract"
)

type Description struct {
	Authority  string              `json:"authority"`
	BaseURI    string              `json:"base_uri"`
	Path       string              `json:"path"`
	ContentURI string              `json:"content_uri"`
	Types      map[string]string   `json:"types"`
	Table      TableDescription    `json:"table"`
	Genders    []GenderDescription `json:"genders"`
}

type TableDescription struct {
	Name    string              `json:"name"`
	Columns []ColumnDescription `json:"columns"`
}

type ColumnDescription struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	PrimaryKey bool   `json:"primary_key,omitempty"`
	NotNull    bool   `json:"not_null,omitempty"`
	Default    string `json:"default,omitempty"`
}

type GenderDescription struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

// Describe arma la descripción del contrato (la usan /contract y petsctl).
func Describe() Description {
	tbl := contract.PetsTable()

	cols := make([]ColumnDescription, 0, len(tbl.Columns))
	for _, c := range tbl.Columns {
		cols = append(cols, ColumnDescription{
			Name:       c.Name,
			Type:       string(c.Type),
			PrimaryKey: c.PrimaryKey,
			NotNull:    c.NotNull,
			Default:    c.Default,
		})
	}

	genders := make([]GenderDescription, 0, len(contract.Genders()))
	for _, g := range contract.Genders() {
		genders = append(genders, GenderDescription{Code: int(g), Name: g.String()})
	}

	return Description{
		Authority:  contract.ContentAuthority,
		BaseURI:    contract.BaseContentURI,
		Path:       contract.PathPets,
		ContentURI: contract.PetsContentURI,
		Types: map[string]string{
			"list": contract.ContentListType,
			"item": contract.ContentItemType,
		},
		Table:   TableDescription{Name: tbl.Name, Columns: cols},
		Genders: genders,
	}
}

// contractHandler godoc
// @Summary Describir el contrato de datos
// @Description Authority, URIs, tabla pets con sus columnas y códigos de género.
// @Tags contract
// @Produce json
// @Success 200 {object} Description
// @Router /contract [get]
func contractHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, Describe())
	}
}
