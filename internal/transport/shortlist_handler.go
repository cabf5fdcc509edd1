package transport

import (
	"errors"
	"net/http"
	"strconv"

	"catalogo-plus/internal/domain"
	"catalogo-plus/internal/middleware"
	"catalogo-plus/internal/repository"
	"catalogo-plus/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ShortlistRequest represents the add/toggle request payload
type ShortlistRequest struct {
	ProductID int `json:"product_id" validate:"required,gt=0"`
}

// FavoritesResponse represents the favorites list
type FavoritesResponse struct {
	Items []domain.Product `json:"items"`
	Count int              `json:"count"`
}

// ToggleFavoriteResponse reports the outcome of a favorite toggle
type ToggleFavoriteResponse struct {
	Added bool `json:"added"`
	FavoritesResponse
}

// ComparisonResponse represents the comparison list
type ComparisonResponse struct {
	Items []service.ComparedProduct `json:"items"`
	Count int                       `json:"count"`
	Max   int                       `json:"max"`
}

// ShortlistHandler handles HTTP requests for favorites and comparison
type ShortlistHandler struct {
	shortlistService service.ShortlistService
	logger           *zap.Logger
}

// NewShortlistHandler creates a new ShortlistHandler
func NewShortlistHandler(shortlistService service.ShortlistService, logger *zap.Logger) *ShortlistHandler {
	return &ShortlistHandler{
		shortlistService: shortlistService,
		logger:           logger,
	}
}

// RegisterRoutes registers all shortlist routes behind the client id middleware
func (h *ShortlistHandler) RegisterRoutes(r chi.Router, clientMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(clientMiddleware)

		r.Route("/api/favorites", func(r chi.Router) {
			r.Get("/", h.ListFavorites)
			r.Post("/", h.ToggleFavorite)
			r.Delete("/", h.ClearFavorites)
			r.Delete("/{id}", h.RemoveFavorite)
		})

		r.Route("/api/compare", func(r chi.Router) {
			r.Get("/", h.ListComparison)
			r.Post("/", h.AddToComparison)
			r.Delete("/", h.ClearComparison)
			r.Get("/table", h.CompareTable)
			r.Delete("/{id}", h.RemoveFromComparison)
		})

		r.Route("/api/shortlists", func(r chi.Router) {
			r.Get("/", h.Snapshot)
			r.Delete("/", h.ClearAll)
			r.Delete("/{kind}", h.Clear)
		})
	})
}

// ListFavorites returns the client's favorite products
func (h *ShortlistHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	clientID, _ := middleware.GetClientID(r.Context())

	items, err := h.shortlistService.Favorites(r.Context(), clientID)
	if err != nil {
		h.respondWithServiceError(w, err, "failed to load favorites")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, FavoritesResponse{Items: items, Count: len(items)})
}

// ToggleFavorite adds or removes a favorite
func (h *ShortlistHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeShortlistRequest(w, r)
	if !ok {
		return
	}
	clientID, _ := middleware.GetClientID(r.Context())

	added, err := h.shortlistService.ToggleFavorite(r.Context(), clientID, req.ProductID)
	if err != nil {
		h.respondWithServiceError(w, err, "failed to update favorites")
		return
	}

	items, err := h.shortlistService.Favorites(r.Context(), clientID)
	if err != nil {
		h.respondWithServiceError(w, err, "failed to load favorites")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, ToggleFavoriteResponse{
		Added:             added,
		FavoritesResponse: FavoritesResponse{Items: items, Count: len(items)},
	})
}

// RemoveFavorite removes one favorite
func (h *ShortlistHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(w, r)
	if !ok {
		return
	}
	clientID, _ := middleware.GetClientID(r.Context())

	if err := h.shortlistService.RemoveFavorite(r.Context(), clientID, id); err != nil {
		h.respondWithServiceError(w, err, "failed to update favorites")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearFavorites empties the favorites list
func (h *ShortlistHandler) ClearFavorites(w http.ResponseWriter, r *http.Request) {
	clientID, _ := middleware.GetClientID(r.Context())

	if err := h.shortlistService.ClearFavorites(r.Context(), clientID); err != nil {
		h.respondWithServiceError(w, err, "failed to clear favorites")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListComparison returns the products being compared
func (h *ShortlistHandler) ListComparison(w http.ResponseWriter, r *http.Request) {
	clientID, _ := middleware.GetClientID(r.Context())
	h.respondWithComparison(w, r, clientID, http.StatusOK)
}

// AddToComparison adds a product to the comparison
func (h *ShortlistHandler) AddToComparison(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeShortlistRequest(w, r)
	if !ok {
		return
	}
	clientID, _ := middleware.GetClientID(r.Context())

	if err := h.shortlistService.AddToComparison(r.Context(), clientID, req.ProductID); err != nil {
		h.respondWithServiceError(w, err, "failed to update comparison")
		return
	}

	h.respondWithComparison(w, r, clientID, http.StatusCreated)
}

// RemoveFromComparison removes a product from the comparison
func (h *ShortlistHandler) RemoveFromComparison(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(w, r)
	if !ok {
		return
	}
	clientID, _ := middleware.GetClientID(r.Context())

	if err := h.shortlistService.RemoveFromComparison(r.Context(), clientID, id); err != nil {
		h.respondWithServiceError(w, err, "failed to update comparison")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearComparison empties the comparison
func (h *ShortlistHandler) ClearComparison(w http.ResponseWriter, r *http.Request) {
	clientID, _ := middleware.GetClientID(r.Context())

	if err := h.shortlistService.ClearComparison(r.Context(), clientID); err != nil {
		h.respondWithServiceError(w, err, "failed to clear comparison")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CompareTable returns the side-by-side comparison
func (h *ShortlistHandler) CompareTable(w http.ResponseWriter, r *http.Request) {
	clientID, _ := middleware.GetClientID(r.Context())

	table, err := h.shortlistService.CompareTable(r.Context(), clientID)
	if err != nil {
		h.respondWithServiceError(w, err, "failed to build comparison")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, table)
}

// Snapshot returns both shortlists
func (h *ShortlistHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	clientID, _ := middleware.GetClientID(r.Context())

	snap, err := h.shortlistService.Snapshot(r.Context(), clientID)
	if err != nil {
		h.respondWithServiceError(w, err, "failed to load shortlists")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, snap)
}

// Clear empties the named shortlist
func (h *ShortlistHandler) Clear(w http.ResponseWriter, r *http.Request) {
	kind, err := service.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		h.respondWithServiceError(w, err, "failed to clear shortlist")
		return
	}
	clientID, _ := middleware.GetClientID(r.Context())

	if err := h.shortlistService.Clear(r.Context(), clientID, kind); err != nil {
		h.respondWithServiceError(w, err, "failed to clear shortlist")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearAll empties every shortlist
func (h *ShortlistHandler) ClearAll(w http.ResponseWriter, r *http.Request) {
	clientID, _ := middleware.GetClientID(r.Context())

	if err := h.shortlistService.ClearAll(r.Context(), clientID); err != nil {
		h.respondWithServiceError(w, err, "failed to clear shortlists")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ShortlistHandler) respondWithComparison(w http.ResponseWriter, r *http.Request, clientID string, status int) {
	items, err := h.shortlistService.Comparison(r.Context(), clientID)
	if err != nil {
		h.respondWithServiceError(w, err, "failed to load comparison")
		return
	}
	middleware.RespondWithJSON(w, status, ComparisonResponse{
		Items: items,
		Count: len(items),
		Max:   service.MaxComparison,
	})
}

func (h *ShortlistHandler) decodeShortlistRequest(w http.ResponseWriter, r *http.Request) (ShortlistRequest, bool) {
	var req ShortlistRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Shortlist request validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return req, false
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return req, false
	}
	return req, true
}

func (h *ShortlistHandler) respondWithServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
	case errors.Is(err, service.ErrAlreadyInComparison):
		middleware.RespondWithError(w, http.StatusConflict, "product already in comparison")
	case errors.Is(err, service.ErrComparisonFull):
		middleware.RespondWithErrorDetails(w, http.StatusConflict, "comparison is full", map[string]any{
			"max": service.MaxComparison,
		})
	case errors.Is(err, service.ErrNotEnoughToCompare):
		middleware.RespondWithErrorDetails(w, http.StatusUnprocessableEntity, "not enough products to compare", map[string]any{
			"min": service.MinComparison,
		})
	case errors.Is(err, service.ErrUnknownShortlist):
		middleware.RespondWithError(w, http.StatusBadRequest, "unknown shortlist")
	case errors.Is(err, service.ErrInvalidClientID):
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid client id")
	default:
		h.logger.Error(fallback, zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, fallback)
	}
}

func productIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return 0, false
	}
	return id, true
}
