package startups

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"venture-hub/internal/access"
	"venture-hub/internal/identity"
	"venture-hub/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// VisibilityChecker es la parte de access.Engine que usa la vista de perfil.
type VisibilityChecker interface {
	Visibility(ctx context.Context, actor identity.AuthContext, startupID string) map[access.Section]bool
}

func RegisterRoutes(r chi.Router, svc *Service, engine VisibilityChecker) {
	r.Route("/startups", func(sr chi.Router) {
		sr.Post("/", createStartupHandler(svc))
		sr.Get("/{startupID}", getStartupHandler(svc, engine))
	})
}

type createStartupRequest struct {
	CompanyName string `json:"company_name"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	Stage       string `json:"stage"`
	Website     string `json:"website"`
}

type startupResponse struct {
	ID            string    `json:"id"`
	FounderUserID string    `json:"founder_user_id"`
	CompanyName   string    `json:"company_name"`
	Tagline       string    `json:"tagline"`
	Description   string    `json:"description"`
	Stage         Stage     `json:"stage"`
	Website       string    `json:"website"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type startupProfileResponse struct {
	Startup startupResponse `json:"startup"`
	IsOwner bool            `json:"is_owner"`
	// PrivateAccess indica, por sección, si el usuario actual puede verla.
	PrivateAccess map[access.Section]bool `json:"private_access"`
}

// createStartupHandler godoc
// @Summary Crear startup
// @Description Solo usuarios con perfil founder. Cada founder tiene como máximo una startup.
// @Tags startups
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createStartupRequest true "Datos de la startup"
// @Success 201 {object} startupResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "only founders can create startups"
// @Failure 409 {string} string "founder already has a startup"
// @Router /startups [post]
func createStartupHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ac := middleware.GetAuth(r.Context())
		if !ac.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createStartupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		st, err := svc.Create(r.Context(), ac, CreateInput{
			CompanyName: req.CompanyName,
			Tagline:     req.Tagline,
			Description: req.Description,
			Stage:       Stage(req.Stage),
			Website:     req.Website,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFounder):
				http.Error(w, err.Error(), http.StatusForbidden)
			case errors.Is(err, ErrAlreadyExists):
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toStartupResponse(st))
	}
}

// getStartupHandler godoc
// @Summary Perfil de startup
// @Description Perfil público más el mapa private_access con lo que el usuario actual puede ver.
// @Tags startups
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param startupID path string true "ID de la startup"
// @Success 200 {object} startupProfileResponse
// @Failure 404 {string} string "startup not found"
// @Router /startups/{startupID} [get]
func getStartupHandler(svc *Service, engine VisibilityChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ac := middleware.GetAuth(r.Context())

		st, err := svc.GetByID(r.Context(), chi.URLParam(r, "startupID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "startup not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, startupProfileResponse{
			Startup:       toStartupResponse(st),
			IsOwner:       ac.Authenticated() && st.FounderUserID == ac.UserID,
			PrivateAccess: engine.Visibility(r.Context(), ac, st.ID),
		})
	}
}

func toStartupResponse(s Startup) startupResponse {
	return startupResponse{
		ID:            s.ID,
		FounderUserID: s.FounderUserID,
		CompanyName:   s.CompanyName,
		Tagline:       s.Tagline,
		Description:   s.Description,
		Stage:         s.Stage,
		Website:       s.Website,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
