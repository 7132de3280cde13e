package campsite

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/andrasnagy-data/campsite/internal/shared/httputil"
)

type (
	Router struct {
		service servicer
	}
)

// NewRouter mounts the public read endpoints and, behind the auth middleware,
// the mutating endpoints.
func NewRouter(service servicer, authmw func(http.Handler) http.Handler) chi.Router {
	router := &Router{service: service}
	return router.Routes(authmw)
}

func (r *Router) Routes(authmw func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.List)
	router.Get("/{id}", r.GetByID)

	router.Group(func(g chi.Router) {
		g.Use(authmw)
		g.Post("/", r.Create)
		g.Put("/{id}", r.Update)
		g.Delete("/{id}", r.Delete)
	})

	return router
}

func parseID(req *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
}

// List returns all listings matching the optional query filters.
func (r *Router) List(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	query := ListQuery{
		Keyword:    req.URL.Query().Get("keyword"),
		Prefecture: req.URL.Query().Get("prefecture"),
	}

	if pf := req.URL.Query().Get("pet_friendly"); pf != "" {
		petFriendly, err := strconv.ParseBool(pf)
		if err != nil {
			httputil.WriteError(w, http.StatusBadRequest, "Invalid pet_friendly value")
			return
		}
		query.PetFriendly = &petFriendly
	}

	campsites, err := r.service.List(ctx, query)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing campsites")
		httputil.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, campsites)
}

func (r *Router) GetByID(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	id, err := parseID(req)
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "Invalid campsite ID")
		return
	}

	c, err := r.service.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCampsiteNotFound) {
			httputil.WriteError(w, http.StatusNotFound, "Campsite not found")
			return
		}
		logger.Error().Err(err).Int64("id", id).Msg("Error getting campsite")
		httputil.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, c)
}

func (r *Router) Create(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	var body CampsiteIn
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	c, err := r.service.Create(ctx, body)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			httputil.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error().Err(err).Msg("Error creating campsite")
		httputil.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	logger.Debug().Int64("id", c.ID).Msg("Campsite created")
	httputil.WriteJSON(w, http.StatusCreated, c)
}

func (r *Router) Update(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	id, err := parseID(req)
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "Invalid campsite ID")
		return
	}

	var body CampsiteIn
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	c, err := r.service.Update(ctx, id, body)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			httputil.WriteError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrCampsiteNotFound):
			httputil.WriteError(w, http.StatusNotFound, "Campsite not found")
		default:
			logger.Error().Err(err).Int64("id", id).Msg("Error updating campsite")
			httputil.WriteError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, c)
}

func (r *Router) Delete(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	id, err := parseID(req)
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "Invalid campsite ID")
		return
	}

	if err := r.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrCampsiteNotFound) {
			httputil.WriteError(w, http.StatusNotFound, "Campsite not found")
			return
		}
		logger.Error().Err(err).Int64("id", id).Msg("Error deleting campsite")
		httputil.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.MessageResponse{Message: "Deleted"})
}
