package privatedata

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"venture-hub/internal/access"
	"venture-hub/internal/domain/audit"
	"venture-hub/internal/identity"
	"venture-hub/internal/middleware"
	"venture-hub/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const maxPatchBytes = 1 << 20

// Decider es la parte de access.Engine que usan estos handlers.
type Decider interface {
	Decide(ctx context.Context, actor identity.AuthContext, startupID string, section access.Section) access.Decision
	IsOwner(ctx context.Context, actor identity.AuthContext, startupID string) bool
}

// StartupLookup evita importar el paquete startups (rompe ciclos).
type StartupLookup interface {
	FounderOf(ctx context.Context, startupID string) (string, error)
}

type Auditor interface {
	Record(ctx context.Context, in audit.RecordInput) (audit.Entry, error)
}

type Deps struct {
	Store    *Store
	Engine   Decider
	Startups StartupLookup
	Audit    Auditor
	Log      logger.Logger
}

func RegisterRoutes(r chi.Router, d Deps) {
	if d.Log == nil {
		d.Log = logger.Discard()
	}
	d.Log = d.Log.With(map[string]any{"module": "privatedata"})

	r.Route("/startups/{startupID}/private/{section}", func(pr chi.Router) {
		pr.Get("/", getSectionHandler(d))
		pr.Patch("/", patchSectionHandler(d))
	})
}

type sectionResponse struct {
	StartupID string         `json:"startup_id"`
	Section   access.Section `json:"section"`
	Data      Document       `json:"data"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// getSectionHandler godoc
// @Summary Ver sección privada
// @Description Devuelve la sección privada (financials, people, news, technology). El founder siempre puede verla. Un inversionista necesita una solicitud aprobada y vigente; cada lectura suya queda en el access log.
// @Tags private
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param startupID path string true "ID de la startup"
// @Param section path string true "financials | people | news | technology"
// @Success 200 {object} sectionResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "access denied"
// @Failure 404 {string} string "startup not found / section not found"
// @Failure 500 {string} string "internal error"
// @Router /startups/{startupID}/private/{section} [get]
func getSectionHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ac := middleware.GetAuth(r.Context())
		if !ac.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		startupID, section, ok := resolveTarget(w, r, d.Startups)
		if !ok {
			return
		}

		dec := d.Engine.Decide(r.Context(), ac, startupID, section)
		if !dec.Granted {
			// Mismo mensaje para cualquier causa de denegación.
			http.Error(w, "access denied", http.StatusForbidden)
			return
		}

		rec, err := d.Store.GetOrCreate(r.Context(), startupID, section)
		if err != nil {
			d.Log.Error("load private section failed", map[string]any{
				"startup_id": startupID,
				"section":    string(section),
				"error":      err,
			})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		// Sin registro de auditoría no se sirven los datos.
		if !dec.AsOwner {
			if _, err := d.Audit.Record(r.Context(), audit.RecordInput{
				InvestorUserID: ac.UserID,
				StartupID:      startupID,
				Section:        section,
				IPAddress:      clientIP(r),
				UserAgent:      r.UserAgent(),
			}); err != nil {
				d.Log.Error("audit record failed", map[string]any{
					"startup_id": startupID,
					"section":    string(section),
					"user_id":    ac.UserID,
					"error":      err,
				})
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
		}

		writeJSON(w, http.StatusOK, toSectionResponse(rec))
	}
}

// patchSectionHandler godoc
// @Summary Editar sección privada
// @Description Aplica un JSON merge sobre la sección. Solo el founder de la startup. Los campos ausentes no se modifican y las listas se reemplazan completas.
// @Tags private
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param startupID path string true "ID de la startup"
// @Param section path string true "financials | people | news | technology"
// @Param payload body object true "Campos a modificar"
// @Success 200 {object} sectionResponse
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "startup not found / section not found"
// @Router /startups/{startupID}/private/{section} [patch]
func patchSectionHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ac := middleware.GetAuth(r.Context())
		if !ac.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		startupID, section, ok := resolveTarget(w, r, d.Startups)
		if !ok {
			return
		}
		if !d.Engine.IsOwner(r.Context(), ac, startupID) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPatchBytes))
		if err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rec, err := d.Store.Update(r.Context(), startupID, section, body)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				d.Log.Error("update private section failed", map[string]any{
					"startup_id": startupID,
					"section":    string(section),
					"error":      err,
				})
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toSectionResponse(rec))
	}
}

func resolveTarget(w http.ResponseWriter, r *http.Request, startups StartupLookup) (string, access.Section, bool) {
	startupID := chi.URLParam(r, "startupID")
	if _, err := startups.FounderOf(r.Context(), startupID); err != nil {
		http.Error(w, "startup not found", http.StatusNotFound)
		return "", "", false
	}
	section, ok := access.ParseSection(chi.URLParam(r, "section"))
	if !ok {
		http.Error(w, "section not found", http.StatusNotFound)
		return "", "", false
	}
	return startupID, section, true
}

// clientIP asume chimw.RealIP antes en la cadena.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func toSectionResponse(rec Record) sectionResponse {
	return sectionResponse{
		StartupID: rec.StartupID,
		Section:   rec.Section,
		Data:      rec.Document,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
