package httpx

import (
	"encoding/json"
	"net/http"
)

// Every response uses the same envelope: {success, data} on success,
// {success, message} on failure.
type dataEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func respondOK(w http.ResponseWriter, code int, data any) {
	writeJSON(w, code, dataEnvelope{Success: true, Data: data})
}

func respondErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorEnvelope{Success: false, Message: msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeRaw(w http.ResponseWriter, code int, b []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(b)
}
