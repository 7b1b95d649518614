package httpx

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/fauzanhilmi/hostel-mart/internal/redisx"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
)

type StatusHandler struct {
	Store StatusStore
	Redis *redis.Client
	Log   *slog.Logger
}

type setStatusReq struct {
	Delivering *bool `json:"delivering"`
}

func (h *StatusHandler) Register(r *chi.Mux) {
	r.Get("/delivery-status", h.get)
	r.Post("/delivery-status", h.set)
}

func (h *StatusHandler) get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if h.Redis != nil {
		if s, err := h.Redis.Get(ctx, redisx.KeyDeliveryStatus).Result(); err == nil && s != "" {
			writeRaw(w, http.StatusOK, []byte(s))
			return
		}
	}

	st, err := h.Store.GetOrDefault(ctx)
	if err != nil {
		h.Log.Error("get delivery status", "err", err)
		respondErr(w, http.StatusInternalServerError, "Error fetching status")
		return
	}

	body, _ := json.Marshal(dataEnvelope{Success: true, Data: st})
	if h.Redis != nil {
		_ = h.Redis.Set(ctx, redisx.KeyDeliveryStatus, body, redisx.TTLDeliveryStatus).Err()
	}
	writeRaw(w, http.StatusOK, body)
}

// set upserts the flag. An empty body means delivering=true, which keeps
// the storefront's original enable call working.
func (h *StatusHandler) set(w http.ResponseWriter, r *http.Request) {
	delivering := true
	var req setStatusReq
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil && req.Delivering != nil {
		delivering = *req.Delivering
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	st, err := h.Store.SetDelivering(ctx, delivering)
	if err != nil {
		h.Log.Error("set delivery status", "err", err)
		respondErr(w, http.StatusInternalServerError, "Error updating status")
		return
	}
	if h.Redis != nil {
		_ = h.Redis.Del(ctx, redisx.KeyDeliveryStatus).Err()
	}
	respondOK(w, http.StatusOK, st)
}
