package accessrequests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"venture-hub/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta el ledger. submitLimit envuelve solo el POST de solicitud (puede ser nil).
func RegisterRoutes(r chi.Router, svc *Service, submitLimit func(http.Handler) http.Handler) {
	if submitLimit == nil {
		submitLimit = func(next http.Handler) http.Handler { return next }
	}

	// Inversionista solicita / founder revisa la bandeja
	r.Route("/startups/{startupID}/access-requests", func(sr chi.Router) {
		sr.With(submitLimit).Post("/", submitHandler(svc))
		sr.Get("/", listByStartupHandler(svc))
	})

	// Acciones por id (founder revisa, ambas partes leen)
	r.Route("/access-requests/{requestID}", func(ar chi.Router) {
		ar.Get("/", getRequestHandler(svc))
		ar.Post("/approve", approveHandler(svc))
		ar.Post("/reject", rejectHandler(svc))
		ar.Post("/revoke", revokeHandler(svc))
	})

	// Inversionista: mis solicitudes
	r.Get("/me/access-requests", listMineHandler(svc))
}

type submitRequest struct {
	Message string `json:"message"`
}

type approveRequest struct {
	ReviewMessage string `json:"review_message"`
	ExpiresAt     string `json:"expires_at"`      // RFC3339 opcional
	ExpiresInDays *int   `json:"expires_in_days"` // alternativa a expires_at
}

type reviewRequest struct {
	ReviewMessage string `json:"review_message"`
}

type requestResponse struct {
	ID             string     `json:"id"`
	InvestorUserID string     `json:"investor_user_id"`
	StartupID      string     `json:"startup_id"`
	Status         Status     `json:"status"`
	Message        string     `json:"message"`
	ReviewedBy     string     `json:"reviewed_by,omitempty"`
	ReviewMessage  string     `json:"review_message,omitempty"`
	RequestedAt    time.Time  `json:"requested_at"`
	ReviewedAt     *time.Time `json:"reviewed_at,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	RevokedAt      *time.Time `json:"revoked_at,omitempty"`
	Active         bool       `json:"active"`
}

type conflictResponse struct {
	Error   string          `json:"error"`
	Request requestResponse `json:"request"`
}

// submitHandler godoc
// @Summary Solicitar acceso a datos privados
// @Description Un inversionista pide acceso a las secciones privadas de una startup. Si ya existía una solicitud rechazada, revocada o vencida, vuelve a pending. Si está pending o tiene acceso vigente responde 409 con la solicitud existente.
// @Tags access-requests
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param startupID path string true "ID de la startup"
// @Param payload body submitRequest true "Mensaje para el founder (máx. 1000 caracteres)"
// @Success 201 {object} requestResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "only investors can request access"
// @Failure 404 {string} string "startup not found"
// @Failure 409 {object} conflictResponse
// @Failure 429 {string} string "too many requests"
// @Router /startups/{startupID}/access-requests [post]
func submitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ac := middleware.GetAuth(r.Context())
		if !ac.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		out, err := svc.Submit(r.Context(), ac, chi.URLParam(r, "startupID"), req.Message)
		if err != nil {
			writeServiceError(w, svc.now(), err, out)
			return
		}
		writeJSON(w, http.StatusCreated, toRequestResponse(out, svc.now()))
	}
}

// listByStartupHandler godoc
// @Summary Bandeja de solicitudes de la startup
// @Description Solo el founder. Filtro opcional por status (lista separada por comas).
// @Tags access-requests
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param startupID path string true "ID de la startup"
// @Param status query string false "pending,approved,rejected,revoked"
// @Success 200 {array} requestResponse
// @Failure 400 {string} string "invalid status"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "startup not found"
// @Router /startups/{startupID}/access-requests [get]
func listByStartupHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ac := middleware.GetAuth(r.Context())
		if !ac.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var statuses []Status
		if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
			for _, part := range strings.Split(raw, ",") {
				st := Status(strings.ToLower(strings.TrimSpace(part)))
				if !st.Valid() {
					http.Error(w, "invalid status", http.StatusBadRequest)
					return
				}
				statuses = append(statuses, st)
			}
		}

		items, err := svc.ListByStartup(r.Context(), chi.URLParam(r, "startupID"), ac.UserID, statuses)
		if err != nil {
			writeServiceError(w, svc.now(), err, Request{})
			return
		}
		writeJSON(w, http.StatusOK, toRequestResponses(items, svc.now()))
	}
}

// listMineHandler godoc
// @Summary Mis solicitudes de acceso
// @Tags access-requests
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} requestResponse
// @Failure 401 {string} string "unauthorized"
// @Router /me/access-requests [get]
func listMineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ac := middleware.GetAuth(r.Context())
		if !ac.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByInvestor(r.Context(), ac.UserID)
		if err != nil {
			writeServiceError(w, svc.now(), err, Request{})
			return
		}
		writeJSON(w, http.StatusOK, toRequestResponses(items, svc.now()))
	}
}

// getRequestHandler godoc
// @Summary Ver una solicitud
// @Description Solo el inversionista o el founder de la startup. Para cualquier otro usuario responde 404.
// @Tags access-requests
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param requestID path string true "ID de la solicitud"
// @Success 200 {object} requestResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "not found"
// @Router /access-requests/{requestID} [get]
func getRequestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ac := middleware.GetAuth(r.Context())
		if !ac.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		out, err := svc.Get(r.Context(), chi.URLParam(r, "requestID"), ac.UserID)
		if err != nil {
			writeServiceError(w, svc.now(), err, Request{})
			return
		}
		writeJSON(w, http.StatusOK, toRequestResponse(out, svc.now()))
	}
}

// approveHandler godoc
// @Summary Aprobar solicitud
// @Description Solo el founder y solo desde pending. Vencimiento opcional con expires_at (RFC3339) o expires_in_days, no ambos.
// @Tags access-requests
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param requestID path string true "ID de la solicitud"
// @Param payload body approveRequest false "Mensaje y vencimiento opcionales"
// @Success 200 {object} requestResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden (también para IDs desconocidos)"
// @Failure 409 {string} string "invalid state"
// @Router /access-requests/{requestID}/approve [post]
func approveHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ac := middleware.GetAuth(r.Context())
		if !ac.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req approveRequest
		if !decodeOptional(w, r, &req) {
			return
		}

		in := ReviewInput{Message: req.ReviewMessage}
		switch {
		case strings.TrimSpace(req.ExpiresAt) != "" && req.ExpiresInDays != nil:
			http.Error(w, "use expires_at or expires_in_days, not both", http.StatusBadRequest)
			return
		case strings.TrimSpace(req.ExpiresAt) != "":
			t, err := time.Parse(time.RFC3339, strings.TrimSpace(req.ExpiresAt))
			if err != nil {
				http.Error(w, "expires_at must be RFC3339", http.StatusBadRequest)
				return
			}
			in.ExpiresAt = &t
		case req.ExpiresInDays != nil:
			if *req.ExpiresInDays <= 0 {
				http.Error(w, "expires_in_days must be > 0", http.StatusBadRequest)
				return
			}
			t := svc.now().Add(time.Duration(*req.ExpiresInDays) * 24 * time.Hour)
			in.ExpiresAt = &t
		}

		out, err := svc.Approve(r.Context(), chi.URLParam(r, "requestID"), ac.UserID, in)
		if err != nil {
			writeServiceError(w, svc.now(), err, Request{})
			return
		}
		writeJSON(w, http.StatusOK, toRequestResponse(out, svc.now()))
	}
}

// rejectHandler godoc
// @Summary Rechazar solicitud
// @Tags access-requests
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param requestID path string true "ID de la solicitud"
// @Param payload body reviewRequest false "Mensaje opcional"
// @Success 200 {object} requestResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden (también para IDs desconocidos)"
// @Failure 409 {string} string "invalid state"
// @Router /access-requests/{requestID}/reject [post]
func rejectHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ac := middleware.GetAuth(r.Context())
		if !ac.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req reviewRequest
		if !decodeOptional(w, r, &req) {
			return
		}

		out, err := svc.Reject(r.Context(), chi.URLParam(r, "requestID"), ac.UserID, req.ReviewMessage)
		if err != nil {
			writeServiceError(w, svc.now(), err, Request{})
			return
		}
		writeJSON(w, http.StatusOK, toRequestResponse(out, svc.now()))
	}
}

// revokeHandler godoc
// @Summary Revocar acceso
// @Description Solo el founder y solo desde approved (vigente o vencido). El corte es inmediato.
// @Tags access-requests
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param requestID path string true "ID de la solicitud"
// @Success 200 {object} requestResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden (también para IDs desconocidos)"
// @Failure 409 {string} string "invalid state"
// @Router /access-requests/{requestID}/revoke [post]
func revokeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ac := middleware.GetAuth(r.Context())
		if !ac.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		out, err := svc.Revoke(r.Context(), chi.URLParam(r, "requestID"), ac.UserID)
		if err != nil {
			writeServiceError(w, svc.now(), err, Request{})
			return
		}
		writeJSON(w, http.StatusOK, toRequestResponse(out, svc.now()))
	}
}

// decodeOptional acepta body vacío, también chunked (ContentLength -1).
func decodeOptional(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil || r.ContentLength == 0 {
		return true
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return true
	}
	if err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return false
	}
	return true
}

func writeServiceError(w http.ResponseWriter, now time.Time, err error, existing Request) {
	switch {
	case errors.Is(err, ErrAlreadyPending), errors.Is(err, ErrAlreadyActive):
		writeJSON(w, http.StatusConflict, conflictResponse{
			Error:   err.Error(),
			Request: toRequestResponse(existing, now),
		})
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotInvestor), errors.Is(err, ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, ErrBadState):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toRequestResponse(r Request, now time.Time) requestResponse {
	return requestResponse{
		ID:             r.ID,
		InvestorUserID: r.InvestorUserID,
		StartupID:      r.StartupID,
		Status:         r.Status,
		Message:        r.Message,
		ReviewedBy:     r.ReviewedBy,
		ReviewMessage:  r.ReviewMessage,
		RequestedAt:    r.RequestedAt,
		ReviewedAt:     r.ReviewedAt,
		ExpiresAt:      r.ExpiresAt,
		RevokedAt:      r.RevokedAt,
		Active:         r.IsActive(now),
	}
}

func toRequestResponses(items []Request, now time.Time) []requestResponse {
	out := make([]requestResponse, 0, len(items))
	for _, r := range items {
		out = append(out, toRequestResponse(r, now))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
