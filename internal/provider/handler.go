package provider

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"pets-provider/internal/contract"
	"pets-provider/internal/domain/pets"
)

const (
	defaultQueryLimit = 100
	maxQueryLimit     = 500
)

// RegisterRoutes expone el provider por HTTP.
// La content URI se arma con el path: /content/{authority}/{path...}
// => content://{authority}/{path...}
func RegisterRoutes(r chi.Router, prov *Provider) {
	r.Get("/contract", contractHandler())
	r.Get("/types", getTypeHandler(prov))

	r.Route("/content/{authority}", func(cr chi.Router) {
		cr.Get("/*", queryHandler(prov))
		cr.Post("/*", insertHandler(prov))
		cr.Patch("/*", updateHandler(prov))
		cr.Delete("/*", deleteHandler(prov))
	})
}

type petRequest struct {
	Name   string           `json:"name"`
	Breed  string           `json:"breed"`
	Gender *contract.Gender `json:"gender"`
	Weight *int             `json:"weight"`
}

type patchRequest struct {
	Name   *string          `json:"name"`
	Breed  *string          `json:"breed"`
	Gender *contract.Gender `json:"gender"`
	Weight *int             `json:"weight"`
}

type petResponse struct {
	ID     int64  `json:"_id"`
	Name   string `json:"name"`
	Breed  string `json:"breed"`
	Gender int    `json:"gender"`
	Weight int    `json:"weight"`
	URI    string `json:"uri"`
}

type queryResponse struct {
	URI   string        `json:"uri"`
	Type  string        `json:"type"`
	Count int           `json:"count"`
	Items []petResponse `json:"items"`
}

type mutationResponse struct {
	URI     string `json:"uri"`
	Updated *int   `json:"updated,omitempty"`
	Deleted *int   `json:"deleted,omitempty"`
}

type typeResponse struct {
	URI  string `json:"uri"`
	Type string `json:"type"`
}

// queryHandler godoc
// @Summary Consultar mascotas por content URI
// @Description Colección (`/content/com.example.android.pets/pets`) o fila (`.../pets/{id}`). En la colección se puede filtrar y ordenar.
// @Tags content
// @Produce json
// @Param authority path string true "Authority (com.example.android.pets)"
// @Param path path string true "Path dentro del provider (pets o pets/{id})"
// @Param gender query string false "unknown|male|female o 0|1|2"
// @Param breed query string false "Raza (case-insensitive)"
// @Param sort query string false "Columna: _id, name, breed, gender, weight"
// @Param order query string false "asc|desc"
// @Param limit query int false "Máximo de filas (1-500). Por defecto 100"
// @Success 200 {object} queryResponse
// @Failure 400 {string} string "parámetros inválidos"
// @Failure 404 {string} string "unknown uri / pet not found"
// @Router /content/{authority}/{path} [get]
func queryHandler(prov *Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uri := contentURI(r)

		sel, err := parseSelection(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		typ, err := prov.GetType(uri)
		if err != nil {
			writeError(w, err)
			return
		}

		items, err := prov.Query(r.Context(), uri, sel)
		if err != nil {
			writeError(w, err)
			return
		}

		out := queryResponse{URI: uri, Type: typ, Count: len(items), Items: make([]petResponse, 0, len(items))}
		for _, p := range items {
			out.Items = append(out.Items, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// insertHandler godoc
// @Summary Insertar mascota
// @Description Solo sobre la colección. name es obligatorio; gender debe ser 0, 1 o 2; weight >= 0.
// @Tags content
// @Accept json
// @Produce json
// @Param authority path string true "Authority (com.example.android.pets)"
// @Param path path string true "pets"
// @Param payload body petRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / reglas de validación"
// @Failure 404 {string} string "unknown uri"
// @Failure 405 {string} string "insert no soportado para la uri"
// @Router /content/{authority}/{path} [post]
func insertHandler(prov *Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uri := contentURI(r)

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req petRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := pets.CreateInput{
			Name:   req.Name,
			Breed:  req.Breed,
			Gender: contract.GenderUnknown,
		}
		if req.Gender != nil {
			in.Gender = *req.Gender
		}
		if req.Weight != nil {
			in.Weight = *req.Weight
		}

		rowURI, err := prov.Insert(r.Context(), uri, in)
		if err != nil {
			writeError(w, err)
			return
		}

		items, err := prov.Query(r.Context(), rowURI, Selection{})
		if err != nil || len(items) != 1 {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Location", rowURI)
		writeJSON(w, http.StatusCreated, toPetResponse(items[0]))
	}
}

// updateHandler godoc
// @Summary Actualizar mascotas
// @Description PATCH sobre una fila o sobre la colección (con los mismos filtros que la consulta). Solo se validan los campos enviados.
// @Tags content
// @Accept json
// @Produce json
// @Param authority path string true "Authority (com.example.android.pets)"
// @Param path path string true "pets o pets/{id}"
// @Param payload body patchRequest true "Campos a modificar"
// @Success 200 {object} mutationResponse
// @Failure 400 {string} string "invalid json / reglas de validación"
// @Failure 404 {string} string "unknown uri"
// @Router /content/{authority}/{path} [patch]
func updateHandler(prov *Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uri := contentURI(r)

		sel, err := parseSelection(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req patchRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		n, err := prov.Update(r.Context(), uri, pets.Patch{
			Name:   req.Name,
			Breed:  req.Breed,
			Gender: req.Gender,
			Weight: req.Weight,
		}, sel)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, mutationResponse{URI: uri, Updated: &n})
	}
}

// deleteHandler godoc
// @Summary Borrar mascotas
// @Description DELETE sobre una fila o sobre la colección (con filtros). Devuelve la cantidad de filas borradas.
// @Tags content
// @Produce json
// @Param authority path string true "Authority (com.example.android.pets)"
// @Param path path string true "pets o pets/{id}"
// @Success 200 {object} mutationResponse
// @Failure 400 {string} string "parámetros inválidos"
// @Failure 404 {string} string "unknown uri"
// @Router /content/{authority}/{path} [delete]
func deleteHandler(prov *Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uri := contentURI(r)

		sel, err := parseSelection(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		n, err := prov.Delete(r.Context(), uri, sel)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, mutationResponse{URI: uri, Deleted: &n})
	}
}

// getTypeHandler godoc
// @Summary Tipo MIME de una content URI
// @Tags content
// @Produce json
// @Param uri query string true "content URI"
// @Success 200 {object} typeResponse
// @Failure 404 {string} string "unknown uri"
// @Router /types [get]
func getTypeHandler(prov *Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uri := strings.TrimSpace(r.URL.Query().Get("uri"))
		typ, err := prov.GetType(uri)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, typeResponse{URI: uri, Type: typ})
	}
}

// contentURI arma content://{authority}/{path...} segmento a segmento
// (WithAppendedPath escapa "/" dentro de un segmento).
func contentURI(r *http.Request) string {
	uri := contract.Scheme + "://" + chi.URLParam(r, "authority")
	for _, seg := range strings.Split(chi.URLParam(r, "*"), "/") {
		uri = contract.WithAppendedPath(uri, seg)
	}
	return uri
}

func parseSelection(r *http.Request) (Selection, error) {
	q := r.URL.Query()
	sel := Selection{
		Breed:  strings.TrimSpace(q.Get("breed")),
		SortBy: strings.TrimSpace(q.Get("sort")),
		Limit:  defaultQueryLimit,
	}

	if v := strings.TrimSpace(q.Get("gender")); v != "" {
		g, ok := contract.ParseGender(v)
		if !ok {
			return Selection{}, errors.New("gender must be one of unknown, male, female")
		}
		sel.Gender = &g
	}

	switch strings.ToLower(strings.TrimSpace(q.Get("order"))) {
	case "", "asc":
	case "desc":
		sel.Desc = true
	default:
		return Selection{}, errors.New("order must be asc or desc")
	}

	if v := strings.TrimSpace(q.Get("limit")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxQueryLimit {
			return Selection{}, fmt.Errorf("limit must be between 1 and %d", maxQueryLimit)
		}
		sel.Limit = n
	}

	return sel, nil
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnknownURI):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrUnsupported):
		http.Error(w, err.Error(), http.StatusMethodNotAllowed)
	case errors.Is(err, pets.ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	case errors.Is(err, pets.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toPetResponse(p pets.Pet) petResponse {
	return petResponse{
		ID:     p.ID,
		Name:   p.Name,
		Breed:  p.Breed,
		Gender: int(p.Gender),
		Weight: p.Weight,
		URI:    p.URI(),
	}
}

// writeJSON está duplicado en cada paquete con handlers (provider/changes)
// para no crear un helper compartido todavía.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
