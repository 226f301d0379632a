package contract

// Columnas compartidas por todas las tablas del contrato.
const (
	// BaseColumnID es el nombre de la columna identidad (entero, autoasignado, único).
	BaseColumnID = "_id"
)
