package profiles

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"venture-hub/internal/identity"
	"venture-hub/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/me/profile", func(pr chi.Router) {
		pr.Put("/", saveProfileHandler(svc))
		pr.Get("/", getProfileHandler(svc))
	})
}

type saveProfileRequest struct {
	UserType    string `json:"user_type"`
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	Location    string `json:"location"`
}

type profileResponse struct {
	UserID      string            `json:"user_id"`
	UserType    identity.UserType `json:"user_type"`
	DisplayName string            `json:"display_name"`
	Bio         string            `json:"bio"`
	Location    string            `json:"location"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// saveProfileHandler godoc
// @Summary Crear o actualizar mi perfil
// @Description user_type (founder, investor, advisor, community) se fija al crear el perfil y no puede cambiarse.
// @Tags profiles
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body saveProfileRequest true "Perfil"
// @Success 200 {object} profileResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 409 {string} string "user_type cannot be changed"
// @Router /me/profile [put]
func saveProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ac := middleware.GetAuth(r.Context())
		if !ac.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req saveProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Save(r.Context(), ac.UserID, SaveInput{
			UserType:    req.UserType,
			DisplayName: req.DisplayName,
			Bio:         req.Bio,
			Location:    req.Location,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrRoleLocked):
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toProfileResponse(p))
	}
}

// getProfileHandler godoc
// @Summary Ver mi perfil
// @Tags profiles
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {object} profileResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "profile not found"
// @Router /me/profile [get]
func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ac := middleware.GetAuth(r.Context())
		if !ac.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.GetByUserID(r.Context(), ac.UserID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "profile not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toProfileResponse(p))
	}
}

func toProfileResponse(p identity.Profile) profileResponse {
	return profileResponse{
		UserID:      p.UserID,
		UserType:    p.UserType,
		DisplayName: p.DisplayName,
		Bio:         p.Bio,
		Location:    p.Location,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
