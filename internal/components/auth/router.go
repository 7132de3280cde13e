package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/andrasnagy-data/campsite/internal/shared/httputil"
)

type (
	Router struct {
		service *Service
	}
)

func NewRouter(service *Service) chi.Router {
	router := &Router{service: service}
	return router.Routes()
}

func (r *Router) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/register", r.Register)
	router.Post("/token", r.Login)
	return router
}

// Register creates a new user account. No token is issued here; the client
// logs in afterwards.
func (r *Router) Register(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	var body RegisterRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Username == "" || body.Password == "" {
		httputil.WriteError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	if err := r.service.Register(ctx, body.Username, body.Password); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			logger.Debug().Str("username", body.Username).Msg("Registration rejected: username taken")
			httputil.WriteError(w, http.StatusBadRequest, "Username already exists")
			return
		}
		logger.Error().Err(err).Msg("Error registering user")
		httputil.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	logger.Debug().Str("username", body.Username).Msg("User registered")
	httputil.WriteJSON(w, http.StatusOK, httputil.MessageResponse{Message: "User registered successfully"})
}

// Login exchanges form-encoded credentials for a bearer token.
func (r *Router) Login(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	username := req.FormValue("username")
	password := req.FormValue("password")

	logger.Debug().Str("username", username).Msg("Login attempt")

	token, err := r.service.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			logger.Warn().Str("username", username).Msg("Login failed: invalid credentials")
			httputil.WriteError(w, http.StatusUnauthorized, "Incorrect username or password")
			return
		}
		logger.Error().Err(err).Msg("Error logging in")
		httputil.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	logger.Debug().Str("username", username).Msg("Login successful")
	httputil.WriteJSON(w, http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}
