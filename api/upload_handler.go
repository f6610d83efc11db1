package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/styleai-app/styleai-server/utils"
)

const maxUploadSize = 10 << 20 // 10MB

// UploadImageHandler stores an uploaded image in S3 and returns a presigned
// URL, used for wardrobe item photos.
func (a *API) UploadImageHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Error parsing form data")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectKey := fmt.Sprintf("user_uploads/%s/%d_%s", userID, time.Now().UnixNano(), header.Filename)
	if _, err := utils.UploadFileToS3(r.Context(), file, objectKey, contentType); err != nil {
		a.Log.Error().Err(err).Msg("failed to upload image to S3")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	url, err := utils.GetPresignedURL(r.Context(), objectKey)
	if err != nil {
		a.Log.Error().Err(err).Msg("failed to presign uploaded image")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"key": objectKey, "url": url})
}
