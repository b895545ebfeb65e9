package fwserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/radupana/featherweight-sub015/internal/auth"
)

// ErrorResponse is the standardized error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// SigninRequest is the body of POST /auth/signin. Any password is
// accepted; this server is a reference backend, not an identity provider.
type SigninRequest struct {
	User           string `json:"user"`
	Password       string `json:"password"`
	InstallationID string `json:"installation_id"`
}

// SigninResponse carries the issued token.
type SigninResponse struct {
	Token          string `json:"token"`
	ExpiresIn      int64  `json:"expires_in"`
	User           string `json:"user"`
	InstallationID string `json:"installation_id"`
}

// Handlers provides the HTTP surface of the document store.
type Handlers struct {
	service *Service
	jwtAuth *JWTAuth
	logger  *slog.Logger
}

// NewHandlers creates the HTTP handlers for a document store service.
func NewHandlers(service *Service, jwtAuth *JWTAuth, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{service: service, jwtAuth: jwtAuth, logger: logger}
}

// Mux returns the routed HTTP handler.
func (h *Handlers) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.HandleHealth)
	mux.HandleFunc("POST /auth/signin", h.HandleSignin)
	mux.HandleFunc("GET /v1/collections/{name}", h.HandleDownload)
	mux.Handle("PUT /v1/collections/{name}", h.jwtAuth.Middleware(http.HandlerFunc(h.HandleUpload)))
	return mux
}

// HandleHealth reports liveness.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// HandleSignin issues a JWT for the given user and installation. A
// missing installation id gets a fresh one, which the client must keep
// for baseline bookkeeping.
func (h *Handlers) HandleSignin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Failed to parse signin request")
		return
	}
	if req.User == "" {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "user required")
		return
	}
	if req.InstallationID == "" {
		req.InstallationID = uuid.New().String()
	}

	const ttl = 24 * time.Hour
	token, err := h.jwtAuth.GenerateToken(req.User, req.InstallationID, ttl)
	if err != nil {
		h.logger.Error("Failed to generate token", "error", err, "user", req.User)
		h.writeError(w, http.StatusInternalServerError, "token_error", "Failed to generate token")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SigninResponse{
		Token:          token,
		ExpiresIn:      int64(ttl.Seconds()),
		User:           req.User,
		InstallationID: req.InstallationID,
	})
	h.logger.Info("Issued sync token", "user", req.User, "installation_id", req.InstallationID)
}

// HandleDownload serves GET /v1/collections/{name}. Global collections
// are public; owner-scoped collections require a token whose subject
// matches the requested owner.
func (h *Handlers) HandleDownload(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	global, registered := IsGlobalCollection(name)
	if !registered {
		h.writeError(w, http.StatusNotFound, "unknown_collection", "Unknown collection: "+name)
		return
	}

	ownerID := r.URL.Query().Get("owner")
	if !global {
		token, err := bearerToken(r)
		if err != nil {
			h.writeError(w, http.StatusUnauthorized, "authentication_failed", err.Error())
			return
		}
		claims, err := h.jwtAuth.ValidateToken(token)
		if err != nil {
			h.writeError(w, http.StatusUnauthorized, "authentication_failed", "invalid token")
			return
		}
		if ownerID == "" {
			ownerID = claims.Subject
		}
		if ownerID != claims.Subject {
			h.writeError(w, http.StatusForbidden, "owner_mismatch", "Token does not match requested owner")
			return
		}
	}

	var since *time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid_request", "since must be RFC3339")
			return
		}
		since = &t
	}

	docs, err := h.service.Download(r.Context(), ownerID, name, since)
	if err != nil {
		h.logger.Error("Download failed", "error", err, "collection", name, "owner", ownerID)
		h.writeError(w, http.StatusInternalServerError, "download_failed", "Failed to download collection")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(docs); err != nil {
		h.logger.Error("Failed to encode download response", "error", err, "collection", name)
	}
}

// HandleUpload serves PUT /v1/collections/{name}. Runs behind the JWT
// middleware; the owner must match the token subject and global
// collections reject uploads.
func (h *Handlers) HandleUpload(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	global, registered := IsGlobalCollection(name)
	if !registered {
		h.writeError(w, http.StatusNotFound, "unknown_collection", "Unknown collection: "+name)
		return
	}
	if global {
		h.writeError(w, http.StatusForbidden, "read_only_collection", "Collection is server-authoritative")
		return
	}

	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "authentication_failed", "missing authenticated user")
		return
	}
	ownerID := r.URL.Query().Get("owner")
	if ownerID == "" {
		ownerID = userID
	}
	if ownerID != userID {
		h.writeError(w, http.StatusForbidden, "owner_mismatch", "Token does not match requested owner")
		return
	}

	var docs []json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&docs); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Failed to parse upload body")
		return
	}

	if err := h.service.Upload(r.Context(), ownerID, name, docs); err != nil {
		h.logger.Error("Upload failed", "error", err, "collection", name, "owner", ownerID)
		h.writeError(w, http.StatusInternalServerError, "upload_failed", "Failed to upload collection")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeError writes a standardized error response
func (h *Handlers) writeError(w http.ResponseWriter, statusCode int, errorCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: errorCode, Message: message})

	h.logger.Debug("HTTP error response",
		"status_code", statusCode,
		"error_code", errorCode,
		"message", message)
}
