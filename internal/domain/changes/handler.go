package changes

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/changes", listChangesHandler(svc))
}

type changeResponse struct {
	ID         string    `json:"id"`
	URI        string    `json:"uri"`
	Op         Op        `json:"op"`
	Rows       int       `json:"rows"`
	RecordedAt time.Time `json:"recorded_at"`
}

// listChangesHandler godoc
// @Summary Listar cambios recientes
// @Description Feed de mutaciones del provider (insert/update/delete), más recientes primero.
// @Tags changes
// @Produce json
// @Param uri query string false "Prefijo de content URI (ej: content://com.example.android.pets/pets/1)"
// @Param since query string false "Fecha/hora mínima (RFC3339)"
// @Param limit query int false "Máximo de cambios a devolver (1-200). Por defecto 50"
// @Success 200 {array} changeResponse
// @Failure 400 {string} string "Parámetros de filtro inválidos"
// @Failure 500 {string} string "internal error"
// @Router /changes [get]
func listChangesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		filter := ListFilter{URIPrefix: strings.TrimSpace(q.Get("uri"))}

		if v := strings.TrimSpace(q.Get("since")); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				http.Error(w, "since must be RFC3339", http.StatusBadRequest)
				return
			}
			filter.Since = &t
		}
		if v := strings.TrimSpace(q.Get("limit")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 || n > MaxLimit {
				http.Error(w, "limit must be between 1 and 200", http.StatusBadRequest)
				return
			}
			filter.Limit = n
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]changeResponse, 0, len(items))
		for _, c := range items {
			out = append(out, changeResponse{
				ID:         c.ID,
				URI:        c.URI,
				Op:         c.Op,
				Rows:       c.Rows,
				RecordedAt: c.RecordedAt,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
