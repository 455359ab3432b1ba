package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/orderfoodonline/catalog/internal/auth"
	"github.com/orderfoodonline/catalog/internal/models"
	"github.com/orderfoodonline/catalog/internal/repository"
	"github.com/orderfoodonline/catalog/internal/service"
)

// FoodHandler handles food-related HTTP requests
type FoodHandler struct {
	service *service.FoodService
	log     *slog.Logger
}

// NewFoodHandler creates a new food handler
func NewFoodHandler(service *service.FoodService, log *slog.Logger) *FoodHandler {
	return &FoodHandler{
		service: service,
		log:     log,
	}
}

// ListFoods handles GET /api/food
func (h *FoodHandler) ListFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.service.ListFoods(r.Context())
	if err != nil {
		h.log.Error("failed to list foods", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, foods, h.log)
}

// GetFood handles GET /api/food/{foodId}
func (h *FoodHandler) GetFood(w http.ResponseWriter, r *http.Request) {
	id, ok := h.foodID(w, r)
	if !ok {
		return
	}

	food, err := h.service.GetFood(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err, id)
		return
	}

	WriteJSON(w, http.StatusOK, food, h.log)
}

// CreateFood handles POST /api/food
func (h *FoodHandler) CreateFood(w http.ResponseWriter, r *http.Request) {
	var req models.FoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode food request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	food, err := h.service.CreateFood(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err, 0)
		return
	}

	WriteJSON(w, http.StatusCreated, food, h.log)
	h.log.Info("food created", "food_id", food.ID, "name", food.Name)
}

// UpdateFood handles PUT /api/food/{foodId}
func (h *FoodHandler) UpdateFood(w http.ResponseWriter, r *http.Request) {
	id, ok := h.foodID(w, r)
	if !ok {
		return
	}

	var req models.FoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode food request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	food, err := h.service.UpdateFood(r.Context(), id, req)
	if err != nil {
		h.writeServiceError(w, err, id)
		return
	}

	WriteJSON(w, http.StatusOK, food, h.log)
	h.log.Info("food updated", "food_id", id)
}

// DeleteFood handles DELETE /api/food/{foodId}
func (h *FoodHandler) DeleteFood(w http.ResponseWriter, r *http.Request) {
	id, ok := h.foodID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteFood(r.Context(), id); err != nil {
		h.writeServiceError(w, err, id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	h.log.Info("food deleted", "food_id", id)
}

// foodID parses the foodId URL parameter.
func (h *FoodHandler) foodID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "foodId")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		h.log.Warn("invalid food ID format", "foodId", raw, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return 0, false
	}
	return uint(id), true
}

func (h *FoodHandler) writeServiceError(w http.ResponseWriter, err error, foodID uint) {
	switch {
	case errors.Is(err, repository.ErrFoodNotFound):
		h.log.Info("food not found", "food_id", foodID)
		WriteError(w, http.StatusNotFound, "Food not found", h.log)
	case errors.Is(err, repository.ErrCategoryNotFound):
		h.log.Info("category not found", "food_id", foodID)
		WriteError(w, http.StatusNotFound, "Category not found", h.log)
	case errors.Is(err, auth.ErrNoAuthenticatedUser):
		WriteError(w, http.StatusUnauthorized, "Authentication required", h.log)
	default:
		h.log.Error("food operation failed", "food_id", foodID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
	}
}
