package handlers

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"adlaunch/internal/interfaces"
	"adlaunch/internal/models"
	"adlaunch/pkg/logger"
)

// 100 MB, matches the Graph video size ceiling we accept.
const maxUploadMemory = 100 << 20

type AssetHandler struct {
	assets interfaces.AssetRepository
	store  interfaces.AssetStore
	log    *logger.Logger
}

func NewAssetHandler(assets interfaces.AssetRepository, store interfaces.AssetStore, log *logger.Logger) *AssetHandler {
	return &AssetHandler{assets: assets, store: store, log: log}
}

func assetTypeFor(header *multipart.FileHeader) (models.AssetType, string, bool) {
	contentType := header.Header.Get("Content-Type")
	switch contentType {
	case "image/jpeg", "image/png":
		return models.AssetTypeImage, contentType, true
	case "video/mp4", "video/quicktime":
		return models.AssetTypeVideo, contentType, true
	}
	return "", contentType, false
}

// @Tags Assets
// @Summary Upload creative assets
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Image or video files"
// @Success 201 {array} models.Asset
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/assets/ [post]
func (h *AssetHandler) UploadAssets(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid multipart form")
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "No files uploaded")
		return
	}

	var uploaded []*models.Asset
	for _, fileHeader := range files {
		assetType, contentType, supported := assetTypeFor(fileHeader)
		if !supported {
			h.log.WithField("file", fileHeader.Filename).
				WithField("content_type", contentType).
				Warn("unsupported asset type skipped")
			continue
		}

		file, err := fileHeader.Open()
		if err != nil {
			h.log.WithField("file", fileHeader.Filename).Warn("failed to open upload: " + err.Error())
			continue
		}

		asset := &models.Asset{
			ID:          uuid.NewString(),
			Name:        fileHeader.Filename,
			Type:        assetType,
			ContentType: contentType,
			Size:        fileHeader.Size,
			UploadedAt:  time.Now().UTC(),
		}

		key := filepath.Join("assets", asset.ID+filepath.Ext(fileHeader.Filename))
		url, err := h.store.Upload(r.Context(), key, contentType, file)
		file.Close()
		if err != nil {
			h.log.WithField("file", fileHeader.Filename).Warn("failed to store upload: " + err.Error())
			continue
		}

		asset.URL = url
		asset.FilePath = key

		if err := h.assets.Create(r.Context(), asset); err != nil {
			h.log.WithField("file", fileHeader.Filename).Warn("failed to save asset: " + err.Error())
			continue
		}

		uploaded = append(uploaded, asset)
	}

	if len(uploaded) == 0 {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "upload_failed", "Failed to upload any files")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(uploaded)
}

// @Tags Assets
// @Summary List assets
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Asset
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/assets/ [get]
func (h *AssetHandler) ListAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.assets.List(r.Context())
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "list_assets_failed", "Failed to list assets")
		return
	}

	if assets == nil {
		assets = []models.Asset{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(assets)
}

// @Tags Assets
// @Summary Delete asset
// @Security BearerAuth
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/assets/{id}/ [delete]
func (h *AssetHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Asset ID is required")
		return
	}

	asset, err := h.assets.GetByID(r.Context(), id)
	if err != nil {
		if err.Error() == "asset not found" {
			writeJSONErrorResponse(w, http.StatusNotFound, "asset_not_found", "Asset not found")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "get_asset_failed", "Failed to get asset")
		return
	}

	if err := h.store.Delete(r.Context(), asset.FilePath); err != nil {
		h.log.WithField("asset_id", id).Warn("failed to delete stored object: " + err.Error())
	}

	if err := h.assets.Delete(r.Context(), id); err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "delete_asset_failed", "Failed to delete asset")
		return
	}

	writeJSONMessage(w, http.StatusOK, "Asset has been deleted successfully")
}
