// internal/handler/category.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/crmaster/internal/service"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
}

func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	listing, err := h.categoryService.List(r.Context(), actorFrom(r))
	if err != nil {
		handleError(w, r, "Failed to list categories", err)
		return
	}
	respondWithJSON(w, http.StatusOK, listing)
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	detail, err := h.categoryService.Get(r.Context(), actorFrom(r), id)
	if err != nil {
		handleError(w, r, "Failed to get category", err)
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CategoryInput
	if !decodeJSON(w, r, &input) {
		return
	}

	category, err := h.categoryService.Create(r.Context(), actorFrom(r), input)
	if err != nil {
		handleError(w, r, "Failed to create category", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var input service.CategoryInput
	if !decodeJSON(w, r, &input) {
		return
	}

	category, err := h.categoryService.Update(r.Context(), actorFrom(r), id, input)
	if err != nil {
		handleError(w, r, "Failed to update category", err)
		return
	}
	respondWithJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.categoryService.Delete(r.Context(), actorFrom(r), id); err != nil {
		handleError(w, r, "Failed to delete category", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
