package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/orderfoodonline/catalog/internal/models"
	"github.com/orderfoodonline/catalog/internal/repository"
	"github.com/orderfoodonline/catalog/internal/service"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	service *service.CategoryService
	log     *slog.Logger
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(service *service.CategoryService, log *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		log:     log,
	}
}

// ListCategories handles GET /api/category
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.log.Error("failed to list categories", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, categories, h.log)
}

// GetCategory handles GET /api/category/{categoryId}
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.categoryID(w, r)
	if !ok {
		return
	}

	category, err := h.service.GetCategory(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, category, h.log)
}

// CreateCategory handles POST /api/category
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode category request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, category, h.log)
	h.log.Info("category created", "category_id", category.ID, "name", category.Name)
}

// UpdateCategory handles PUT /api/category/{categoryId}
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.categoryID(w, r)
	if !ok {
		return
	}

	var req models.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode category request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), id, req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, category, h.log)
}

// DeleteCategory handles DELETE /api/category/{categoryId}
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.categoryID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CategoryHandler) categoryID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "categoryId")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		h.log.Warn("invalid category ID format", "categoryId", raw, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return 0, false
	}
	return uint(id), true
}

func (h *CategoryHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrCategoryNotFound):
		WriteError(w, http.StatusNotFound, "Category not found", h.log)
	case errors.Is(err, service.ErrCategoryExists):
		WriteError(w, http.StatusConflict, "Category already exists", h.log)
	default:
		h.log.Error("category operation failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
	}
}
