package contract

// ColumnType es el tipo declarado de una columna.
type ColumnType string

const (
	TypeInteger ColumnType = "INTEGER"
	TypeText    ColumnType = "TEXT"
)

type Column struct {
	Name       string
	Type       ColumnType
	PrimaryKey bool
	NotNull    bool
	Default    string // literal SQL; vacío = sin default
}

type Table struct {
	Name    string
	Columns []Column
}

// PetsTable devuelve el esquema de la tabla pets.
// Cada llamada arma una copia nueva; el esquema canónico no se puede mutar desde afuera.
func PetsTable() Table {
	return Table{
		Name: TableName,
		Columns: []Column{
			{Name: ID, Type: TypeInteger, PrimaryKey: true, NotNull: true},
			{Name: ColumnPetName, Type: TypeText, NotNull: true},
			{Name: ColumnPetBreed, Type: TypeText},
			{Name: ColumnPetGender, Type: TypeInteger, NotNull: true, Default: "0"},
			{Name: ColumnPetWeight, Type: TypeInteger, NotNull: true, Default: "0"},
		},
	}
}

// ColumnNames devuelve los nombres de columna en orden de declaración.
func (t Table) ColumnNames() []string {
	out := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		out = append(out, c.Name)
	}
	return out
}

func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c.Name == name {
			return true
		}
	}
	return false
}
