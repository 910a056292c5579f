package media

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio/service/internal/storage/storagetest"
)

func multipartUpload(t *testing.T, fieldName, fileName, contentType string, data []byte, extraFields map[string]string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)

	for k, v := range extraFields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadHandlerSuccess(t *testing.T) {
	store := storagetest.NewFakeStore()
	handler := NewHandler(newTestService(store))

	req := multipartUpload(t, "file", "photo.jpg", "image/jpeg", []byte("jpeg bytes"), map[string]string{"entityType": "post"})
	rec := httptest.NewRecorder()
	handler.Upload(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Regexp(t, `^uploads/posts/images/\d+-[a-z0-9]+\.jpg$`, resp.Key)
	assert.Equal(t, TypeImage, resp.Type)
	assert.Contains(t, resp.URL, resp.Key)
}

func TestUploadHandlerMissingFile(t *testing.T) {
	store := storagetest.NewFakeStore()
	handler := NewHandler(newTestService(store))

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("entityType", "post"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	handler.Upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No file provided")
}

func TestUploadHandlerInvalidEntityType(t *testing.T) {
	store := storagetest.NewFakeStore()
	handler := NewHandler(newTestService(store))

	req := multipartUpload(t, "file", "photo.jpg", "image/jpeg", []byte("x"), map[string]string{"entityType": "article"})
	rec := httptest.NewRecorder()
	handler.Upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid entity type")
	assert.Empty(t, store.PutCalls)
}

func TestUploadHandlerBlankEntityTypeDefaultsToPost(t *testing.T) {
	store := storagetest.NewFakeStore()
	handler := NewHandler(newTestService(store))

	req := multipartUpload(t, "file", "photo.jpg", "image/jpeg", []byte("x"), nil)
	rec := httptest.NewRecorder()
	handler.Upload(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Regexp(t, `^uploads/posts/`, resp.Key)
}

func TestUploadHandlerRejectsInvalidMIME(t *testing.T) {
	store := storagetest.NewFakeStore()
	handler := NewHandler(newTestService(store))

	req := multipartUpload(t, "file", "doc.pdf", "application/pdf", []byte("%PDF"), nil)
	rec := httptest.NewRecorder()
	handler.Upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid file type")
}

func TestMediaHandlerMissingKey(t *testing.T) {
	store := storagetest.NewFakeStore()
	handler := NewHandler(newTestService(store))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/media", nil)
	rec := httptest.NewRecorder()
	handler.Media(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing required parameter: key")
}

func TestMediaHandlerRejectsForeignKey(t *testing.T) {
	store := storagetest.NewFakeStore()
	handler := NewHandler(newTestService(store))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/media?key=etc/passwd", nil)
	rec := httptest.NewRecorder()
	handler.Media(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid key format")
	assert.Zero(t, store.PresignCalls)
}

func TestMediaHandlerRedirectsToSignedURL(t *testing.T) {
	store := storagetest.NewFakeStore()
	handler := NewHandler(newTestService(store))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/media?key=uploads%2Fposts%2Fimages%2F123-abc.jpg", nil)
	rec := httptest.NewRecorder()
	handler.Media(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	location := rec.Header().Get("Location")
	assert.Contains(t, location, "uploads/posts/images/123-abc.jpg")
	assert.Contains(t, location, "X-Amz-Signature")
}

func TestMediaHandlerStoreFailure(t *testing.T) {
	store := storagetest.NewFakeStore()
	store.PresignErr = assert.AnError
	handler := NewHandler(newTestService(store))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/media?key=uploads/posts/images/123-abc.jpg", nil)
	rec := httptest.NewRecorder()
	handler.Media(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to generate media URL")
}
