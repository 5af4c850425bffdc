package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"nova_estates/internal/adapters/observability"
	"nova_estates/internal/app"
	"nova_estates/internal/auth"
	"nova_estates/internal/domain"
)

type Handlers struct {
	Q      *app.QueryService
	C      *app.CommandService
	Tokens *auth.Tokens
	Diag   Diagnostics
}

// Diagnostics feeds the /test route; filled in at wire-up time.
type Diagnostics struct {
	HasStore        bool
	DatabaseURLSet  bool
	DatabaseNameSet bool
}

type problem struct {
	Type   string              `json:"type"`
	Title  string              `json:"title"`
	Status int                 `json:"status"`
	Detail string              `json:"detail,omitempty"`
	Errors []domain.FieldError `json:"errors,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/", h.root)
	s.mux.Get("/schema", h.schema)
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/test", h.storeDiagnostic)

	s.mux.Get("/api/properties", h.listProperties)
	s.mux.Get("/api/properties/{id}", h.getProperty)
	s.mux.Get("/api/offers", h.listOffers)
	s.mux.Post("/api/offers", h.createOffer) // buyer-facing, no token
	s.mux.Get("/api/settings", h.getSettings)
	s.mux.Post("/api/admin/seed", h.seedAdmin)
	s.mux.Post("/api/admin/login", h.login)

	// Everything that mutates listings or settings needs a valid admin token.
	s.mux.Group(func(r chi.Router) {
		r.Use(RequireAdmin(h.Tokens))
		r.Post("/api/properties", h.createProperty)
		r.Patch("/api/properties/{id}", h.patchProperty)
		r.Delete("/api/properties/{id}", h.deleteProperty)
		r.Patch("/api/offers/{id}", h.patchOffer)
		r.Patch("/api/settings", h.patchSettings)
	})
}

// ---- JSON helpers ----

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeValidation(w http.ResponseWriter, ve *domain.ValidationError) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	p := problem{
		Type:   "about:blank",
		Title:  "Unprocessable Entity",
		Status: http.StatusUnprocessableEntity,
		Detail: "payload failed validation",
		Errors: ve.Fields,
	}
	if err := json.NewEncoder(w).Encode(p); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return false
	}
	return true
}

// respondError maps service errors onto the error taxonomy.
func respondError(w http.ResponseWriter, err error, notFoundDetail string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeValidation(w, ve)
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", notFoundDetail)
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", "invalid credentials")
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "store operation failed")
	}
}

// ---- misc routes ----

func (h *Handlers) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Property Sale API running"})
}

func (h *Handlers) schema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"collections": []string{"adminuser", "sitesettings", "property", "offer"},
	})
}

// storeDiagnostic never fails: every error is folded into the body.
func (h *Handlers) storeDiagnostic(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"backend":           "running",
		"database":          "not available",
		"database_url":      boolWord(h.Diag.DatabaseURLSet, "set", "not set"),
		"database_name":     boolWord(h.Diag.DatabaseNameSet, "set", "not set"),
		"connection_status": "not connected",
		"collections":       []string{},
	}
	if h.Diag.HasStore {
		names, err := h.Q.CollectionNames(r.Context(), 10)
		if err != nil {
			resp["database"] = "connected but error: " + err.Error()
		} else {
			resp["database"] = "connected"
			resp["connection_status"] = "connected"
			if names == nil {
				names = []string{}
			}
			resp["collections"] = names
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func boolWord(b bool, yes, no string) string {
	if b {
		return yes
	}
	return no
}

// ---- properties ----

func (h *Handlers) listProperties(w http.ResponseWriter, r *http.Request) {
	var featured *bool
	if raw := r.URL.Query().Get("featured"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeValidation(w, &domain.ValidationError{Fields: []domain.FieldError{
				{Field: "featured", Constraint: "boolean"},
			}})
			return
		}
		featured = &v
	}
	out, err := h.Q.ListProperties(r.Context(), featured)
	if err != nil {
		respondError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) createProperty(w http.ResponseWriter, r *http.Request) {
	var p domain.Property
	if !decodeBody(w, r, &p) {
		return
	}
	created, err := h.C.CreateProperty(r.Context(), p)
	if err != nil {
		respondError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (h *Handlers) getProperty(w http.ResponseWriter, r *http.Request) {
	p, err := h.Q.GetProperty(r.Context(), urlParam(r, "id"))
	if err != nil {
		respondError(w, err, "Property not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handlers) patchProperty(w http.ResponseWriter, r *http.Request) {
	var patch domain.PropertyPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	p, err := h.C.PatchProperty(r.Context(), urlParam(r, "id"), patch)
	if err != nil {
		respondError(w, err, "Property not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handlers) deleteProperty(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "id")
	if err := h.C.DeleteProperty(r.Context(), id); err != nil {
		respondError(w, err, "Property not found")
		return
	}
	if claims, ok := AdminClaims(r.Context()); ok {
		log.Info().Str("admin", claims.Email).Str("property", id).Msg("property deleted")
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ---- offers ----

func (h *Handlers) listOffers(w http.ResponseWriter, r *http.Request) {
	var propertyID *string
	if v := r.URL.Query().Get("property_id"); v != "" {
		propertyID = &v
	}
	out, err := h.Q.ListOffers(r.Context(), propertyID)
	if err != nil {
		respondError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) createOffer(w http.ResponseWriter, r *http.Request) {
	var o domain.Offer
	if !decodeBody(w, r, &o) {
		return
	}
	created, err := h.C.CreateOffer(r.Context(), o)
	if err != nil {
		respondError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (h *Handlers) patchOffer(w http.ResponseWriter, r *http.Request) {
	var patch domain.OfferPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	o, err := h.C.PatchOffer(r.Context(), urlParam(r, "id"), patch)
	if err != nil {
		respondError(w, err, "Offer not found")
		return
	}
	writeJSON(w, http.StatusOK, o)
}

// ---- settings ----

func (h *Handlers) getSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.Q.GetSettings(r.Context())
	if err != nil {
		respondError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *Handlers) patchSettings(w http.ResponseWriter, r *http.Request) {
	var patch domain.SettingsPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	s, err := h.C.PatchSettings(r.Context(), patch)
	if err != nil {
		respondError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// ---- admin ----

func (h *Handlers) seedAdmin(w http.ResponseWriter, r *http.Request) {
	res, err := h.C.SeedAdmin(r.Context())
	if err != nil {
		respondError(w, err, "")
		return
	}
	if !res.Created {
		writeJSON(w, http.StatusOK, map[string]string{"status": "exists"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "created",
		"email":    res.Email,
		"password": res.Password,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	res, err := h.C.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			observability.ObserveAuth("login_fail")
		}
		respondError(w, err, "")
		return
	}
	observability.ObserveAuth("login_ok")
	writeJSON(w, http.StatusOK, res)
}

func urlParam(r *http.Request, key string) string { return chi.URLParam(r, key) }
