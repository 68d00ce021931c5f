package audit

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"venture-hub/internal/access"
	"venture-hub/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, l *Log) {
	r.Get("/startups/{startupID}/access-log", listAccessLogHandler(l))
}

type entryResponse struct {
	ID             string         `json:"id"`
	InvestorUserID string         `json:"investor_user_id"`
	StartupID      string         `json:"startup_id"`
	Section        access.Section `json:"section"`
	AccessedAt     time.Time      `json:"accessed_at"`
	IPAddress      string         `json:"ip_address"`
	UserAgent      string         `json:"user_agent"`
}

// listAccessLogHandler godoc
// @Summary Registro de accesos a datos privados
// @Description Solo el founder. Lecturas de inversionistas sobre las secciones privadas, más recientes primero.
// @Tags access-log
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param startupID path string true "ID de la startup"
// @Param section query string false "financials | people | news | technology"
// @Param limit query int false "Máximo de entradas (default 100, máx. 500)"
// @Success 200 {array} entryResponse
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "startup not found"
// @Router /startups/{startupID}/access-log [get]
func listAccessLogHandler(l *Log) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ac := middleware.GetAuth(r.Context())
		if !ac.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var f Filter
		if raw := strings.TrimSpace(r.URL.Query().Get("section")); raw != "" {
			sec, ok := access.ParseSection(raw)
			if !ok {
				http.Error(w, "invalid section", http.StatusBadRequest)
				return
			}
			f.Section = sec
		}
		if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
				return
			}
			f.Limit = n
		}

		items, err := l.ListByStartup(r.Context(), chi.URLParam(r, "startupID"), ac.UserID, f)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrForbidden):
				http.Error(w, "forbidden", http.StatusForbidden)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "startup not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		out := make([]entryResponse, 0, len(items))
		for _, e := range items {
			out = append(out, entryResponse{
				ID:             e.ID,
				InvestorUserID: e.InvestorUserID,
				StartupID:      e.StartupID,
				Section:        e.Section,
				AccessedAt:     e.AccessedAt,
				IPAddress:      e.IPAddress,
				UserAgent:      e.UserAgent,
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
