package handler

import (
	"fmt"
	"net/http"

	"github.com/bookit-dev/bookit/internal/utils"
	"github.com/bookit-dev/bookit/internal/validation"
)

// Upload accepts multipart "photos" files, relocates each to object storage
// and returns the public URLs in upload order.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	maxRequestSize := validation.CalculateMaxRequestSize(h.cfg.Public.MaxUploadBytes, 1<<20)
	if err := validation.ValidateAndParseMultipart(r, w, maxRequestSize); err != nil {
		maxSizeMB := validation.FormatSizeMB(h.cfg.Public.MaxUploadBytes)
		http.Error(w, fmt.Sprintf("Upload exceeds the limit of %.0f MB", maxSizeMB), http.StatusRequestEntityTooLarge)
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["photos"]
	pending, err := validation.ValidatePhotos(files, h.cfg.Public.AllowedPhotoMimes, h.cfg.Public.MaxPhotosPerUpload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	urls, err := h.upload.StorePhotos(r.Context(), pending)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, urls)
}
