package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"adlaunch/internal/interfaces"
	"adlaunch/internal/models"
	"adlaunch/pkg/logger"
)

type memAssetRepo struct {
	assets  map[string]*models.Asset
	created []*models.Asset
	deleted []string
}

var _ interfaces.AssetRepository = (*memAssetRepo)(nil)

func (r *memAssetRepo) Create(ctx context.Context, asset *models.Asset) error {
	if r.assets == nil {
		r.assets = map[string]*models.Asset{}
	}
	r.assets[asset.ID] = asset
	r.created = append(r.created, asset)
	return nil
}

func (r *memAssetRepo) GetByID(ctx context.Context, id string) (*models.Asset, error) {
	asset, ok := r.assets[id]
	if !ok {
		return nil, fmt.Errorf("asset not found")
	}
	return asset, nil
}

func (r *memAssetRepo) List(ctx context.Context) ([]models.Asset, error) {
	var out []models.Asset
	for _, asset := range r.assets {
		out = append(out, *asset)
	}
	return out, nil
}

func (r *memAssetRepo) Delete(ctx context.Context, id string) error {
	delete(r.assets, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type memAssetStore struct {
	uploads map[string]string // key -> content type
	deleted []string
}

var _ interfaces.AssetStore = (*memAssetStore)(nil)

func (s *memAssetStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if s.uploads == nil {
		s.uploads = map[string]string{}
	}
	s.uploads[key] = contentType
	return "https://cdn.test/" + key, nil
}

func (s *memAssetStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("")), nil
}

func (s *memAssetStore) Delete(ctx context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	return nil
}

func addFilePart(t *testing.T, w *multipart.Writer, name, contentType, payload string) {
	t.Helper()
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename="%s"`, name))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := io.WriteString(part, payload); err != nil {
		t.Fatalf("write part: %v", err)
	}
}

func TestUploadAssetsMissingMultipartReturnsJSON(t *testing.T) {
	h := NewAssetHandler(&memAssetRepo{}, &memAssetStore{}, logger.Discard())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assets/", nil)
	w := httptest.NewRecorder()
	h.UploadAssets(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d (%s)", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json got %q", ct)
	}
}

func TestUploadAssetsStoresSupportedSkipsUnsupported(t *testing.T) {
	repo := &memAssetRepo{}
	store := &memAssetStore{}
	h := NewAssetHandler(repo, store, logger.Discard())

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	addFilePart(t, mw, "one.jpg", "image/jpeg", "jpeg-bytes")
	addFilePart(t, mw, "clip.mp4", "video/mp4", "video-bytes")
	addFilePart(t, mw, "notes.txt", "text/plain", "not a creative")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assets/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	h.UploadAssets(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d (%s)", w.Code, w.Body.String())
	}

	var uploaded []models.Asset
	if err := json.Unmarshal(w.Body.Bytes(), &uploaded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(uploaded) != 2 {
		t.Fatalf("expected 2 accepted files, got %+v", uploaded)
	}
	if uploaded[0].Type != models.AssetTypeImage || uploaded[1].Type != models.AssetTypeVideo {
		t.Fatalf("unexpected asset types %+v", uploaded)
	}
	if uploaded[0].URL == "" {
		t.Fatalf("asset URL missing: %+v", uploaded[0])
	}

	if len(store.uploads) != 2 {
		t.Fatalf("expected 2 stored objects, got %v", store.uploads)
	}
	for key, contentType := range store.uploads {
		if !strings.HasPrefix(key, "assets/") {
			t.Fatalf("object key must live under assets/, got %q", key)
		}
		if contentType != "image/jpeg" && contentType != "video/mp4" {
			t.Fatalf("unexpected stored content type %q", contentType)
		}
	}
	if len(repo.created) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(repo.created))
	}
}

func TestUploadAssetsAllUnsupported(t *testing.T) {
	h := NewAssetHandler(&memAssetRepo{}, &memAssetStore{}, logger.Discard())

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	addFilePart(t, mw, "notes.txt", "text/plain", "nope")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assets/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	h.UploadAssets(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d (%s)", w.Code, w.Body.String())
	}
}

func deleteRequest(id string) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/assets/"+id, nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func TestDeleteAssetRemovesObjectAndRow(t *testing.T) {
	repo := &memAssetRepo{assets: map[string]*models.Asset{
		"a1": {ID: "a1", Name: "one.jpg", FilePath: "assets/a1.jpg"},
	}}
	store := &memAssetStore{}
	h := NewAssetHandler(repo, store, logger.Discard())

	w := httptest.NewRecorder()
	h.DeleteAsset(w, deleteRequest("a1"))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	if len(store.deleted) != 1 || store.deleted[0] != "assets/a1.jpg" {
		t.Fatalf("stored object not deleted: %v", store.deleted)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "a1" {
		t.Fatalf("row not deleted: %v", repo.deleted)
	}
}

func TestDeleteAssetNotFound(t *testing.T) {
	h := NewAssetHandler(&memAssetRepo{}, &memAssetStore{}, logger.Discard())

	w := httptest.NewRecorder()
	h.DeleteAsset(w, deleteRequest("missing"))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d (%s)", w.Code, w.Body.String())
	}
}
