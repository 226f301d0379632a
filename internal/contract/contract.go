// Package contract define el contrato de datos de la app de mascotas:
// authority, URIs de contenido, tabla pets, columnas y valores de género.
// Es solo metadata; no hace I/O ni valida escrituras.
package contract

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	// ContentAuthority identifica el origen de datos. Debe coincidir con lo que
	// registre el dispatcher (provider).
	ContentAuthority = "com.example.android.pets"

	Scheme = "content"

	// BaseContentURI es la base de todas las URIs que apuntan a este origen.
	BaseContentURI = Scheme + "://" + ContentAuthority

	// PathPets es el segmento que se agrega a BaseContentURI para la tabla pets.
	// Otros segmentos (ej: "staff") no existen y el provider los rechaza.
	PathPets = "pets"
)

// WithAppendedPath agrega un segmento de path a una URI base.
// El segmento se escapa; no se duplican barras.
func WithAppendedPath(base, segment string) string {
	base = strings.TrimRight(base, "/")
	segment = strings.Trim(segment, "/")
	if segment == "" {
		return base
	}
	return base + "/" + url.PathEscape(segment)
}

// WithAppendedID arma la URI de una fila puntual (…/pets/<id>).
func WithAppendedID(base string, id int64) string {
	return WithAppendedPath(base, strconv.FormatInt(id, 10))
}
