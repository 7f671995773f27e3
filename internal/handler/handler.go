package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bookit-dev/bookit/internal/config"
	"github.com/bookit-dev/bookit/internal/logger"
	"github.com/bookit-dev/bookit/internal/service"
	"github.com/bookit-dev/bookit/internal/utils"
)

type Handler struct {
	auth    service.AuthService
	place   service.PlaceService
	booking service.BookingService
	upload  service.UploadService
	cfg     *config.Config
}

func New(auth service.AuthService, place service.PlaceService, booking service.BookingService, upload service.UploadService, cfg *config.Config) *Handler {
	return &Handler{auth, place, booking, upload, cfg}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

func writeJSONStatus(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

func loadAndValidateRequestBody(r *http.Request, body any) error {
	defer r.Body.Close()
	return utils.DecodeValidate(r.Body, body)
}
