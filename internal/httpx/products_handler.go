package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fauzanhilmi/hostel-mart/internal/catalog"
	"github.com/fauzanhilmi/hostel-mart/internal/redisx"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
)

type ProductsHandler struct {
	Store CatalogStore
	Redis *redis.Client
	Log   *slog.Logger
}

func (h *ProductsHandler) Register(r *chi.Mux) {
	r.Get("/products", h.list)
	r.Post("/products", h.create)
	r.Get("/products/{id}", h.get)
	r.Put("/products/{id}", h.update)
	r.Delete("/products/{id}", h.remove)
}

func (h *ProductsHandler) list(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	// best-effort cache of the full response body
	if h.Redis != nil {
		if s, err := h.Redis.Get(ctx, redisx.KeyProductList).Result(); err == nil && s != "" {
			writeRaw(w, http.StatusOK, []byte(s))
			return
		}
	}

	ps, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("list products", "err", err)
		respondErr(w, http.StatusInternalServerError, "Error fetching products")
		return
	}

	body, _ := json.Marshal(dataEnvelope{Success: true, Data: ps})
	if h.Redis != nil {
		_ = h.Redis.Set(ctx, redisx.KeyProductList, body, redisx.TTLProductList).Err()
	}
	writeRaw(w, http.StatusOK, body)
}

func (h *ProductsHandler) get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	p, err := h.Store.Get(ctx, chi.URLParam(r, "id"))
	if errors.Is(err, catalog.ErrNotFound) {
		respondErr(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		h.Log.Error("get product", "err", err)
		respondErr(w, http.StatusInternalServerError, "Error fetching product")
		return
	}
	respondOK(w, http.StatusOK, p)
}

func (h *ProductsHandler) create(w http.ResponseWriter, r *http.Request) {
	var in catalog.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondErr(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	p, err := h.Store.Create(ctx, in)
	var ve *catalog.ValidationError
	if errors.As(err, &ve) {
		respondErr(w, http.StatusBadRequest, ve.Error())
		return
	}
	if err != nil {
		h.Log.Error("create product", "err", err)
		respondErr(w, http.StatusBadRequest, "Error creating product")
		return
	}
	h.invalidateList(ctx)
	respondOK(w, http.StatusCreated, p)
}

func (h *ProductsHandler) update(w http.ResponseWriter, r *http.Request) {
	var up catalog.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&up); err != nil {
		respondErr(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	p, err := h.Store.Update(ctx, chi.URLParam(r, "id"), up)
	var ve *catalog.ValidationError
	switch {
	case errors.As(err, &ve):
		respondErr(w, http.StatusBadRequest, ve.Error())
		return
	case errors.Is(err, catalog.ErrNotFound):
		respondErr(w, http.StatusNotFound, "Product not found")
		return
	case err != nil:
		h.Log.Error("update product", "err", err)
		respondErr(w, http.StatusBadRequest, "Error updating product")
		return
	}
	h.invalidateList(ctx)
	respondOK(w, http.StatusOK, p)
}

func (h *ProductsHandler) remove(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	err := h.Store.Delete(ctx, chi.URLParam(r, "id"))
	if errors.Is(err, catalog.ErrNotFound) {
		respondErr(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		h.Log.Error("delete product", "err", err)
		respondErr(w, http.StatusInternalServerError, "Error deleting product")
		return
	}
	h.invalidateList(ctx)
	respondOK(w, http.StatusOK, struct{}{})
}

func (h *ProductsHandler) invalidateList(ctx context.Context) {
	if h.Redis != nil {
		_ = h.Redis.Del(ctx, redisx.KeyProductList).Err()
	}
}
