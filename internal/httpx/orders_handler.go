package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fauzanhilmi/hostel-mart/internal/notify"
	"github.com/fauzanhilmi/hostel-mart/internal/orders"
	"github.com/go-chi/chi/v5"
)

type OrdersHandler struct {
	Store    OrderStore
	Notifier Publisher
	Log      *slog.Logger
}

type updateOrderReq struct {
	Status string `json:"status"`
}

func (h *OrdersHandler) Register(r *chi.Mux) {
	r.Get("/orders", h.list)
	r.Post("/orders", h.create)
	r.Get("/orders/{id}", h.get)
	r.Put("/orders/{id}", h.updateStatus)
	r.Delete("/orders/{id}", h.remove)
}

func (h *OrdersHandler) create(w http.ResponseWriter, r *http.Request) {
	var in orders.PlaceInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondErr(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	o, err := h.Store.Place(ctx, in)
	if err != nil {
		var (
			ve *orders.ValidationError
			pe *orders.ProductNotFoundError
			ie *orders.InsufficientStockError
		)
		if errors.As(err, &ve) || errors.As(err, &pe) || errors.As(err, &ie) {
			respondErr(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Log.Error("place order", "err", err)
		respondErr(w, http.StatusInternalServerError, "Error creating order")
		return
	}

	// post-commit, best-effort; a failed webhook never undoes the order
	if h.Notifier != nil {
		h.Notifier.Publish(notify.Message{Text: o.Summary(), ID: o.ID})
	}

	h.Log.Info("order placed", "order_id", o.ID, "total_cents", o.TotalCents, "delivery", o.Delivery)
	respondOK(w, http.StatusCreated, o)
}

func (h *OrdersHandler) list(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	os, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("list orders", "err", err)
		respondErr(w, http.StatusInternalServerError, "Error fetching orders")
		return
	}
	respondOK(w, http.StatusOK, os)
}

func (h *OrdersHandler) get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	o, err := h.Store.Get(ctx, chi.URLParam(r, "id"))
	if errors.Is(err, orders.ErrNotFound) {
		respondErr(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		h.Log.Error("get order", "err", err)
		respondErr(w, http.StatusInternalServerError, "Error fetching order")
		return
	}
	respondOK(w, http.StatusOK, o)
}

func (h *OrdersHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErr(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	status, ok := orders.ParseStatus(req.Status)
	if !ok {
		respondErr(w, http.StatusBadRequest, (&orders.StatusError{Value: req.Status}).Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	o, err := h.Store.UpdateStatus(ctx, chi.URLParam(r, "id"), status)
	if errors.Is(err, orders.ErrNotFound) {
		respondErr(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		h.Log.Error("update order", "err", err)
		respondErr(w, http.StatusBadRequest, "Error updating order")
		return
	}
	respondOK(w, http.StatusOK, o)
}

func (h *OrdersHandler) remove(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := chi.URLParam(r, "id")
	err := h.Store.Delete(ctx, id)
	if errors.Is(err, orders.ErrNotFound) {
		respondErr(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		h.Log.Error("delete order", "err", err)
		respondErr(w, http.StatusInternalServerError, "Error deleting order")
		return
	}
	h.Log.Info("order deleted", "order_id", id)
	respondOK(w, http.StatusOK, struct{}{})
}
