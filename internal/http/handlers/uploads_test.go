package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"innstay/internal/domain"
	"innstay/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSaver struct {
	got []string
}

func (s *recordingSaver) SaveImages(_ context.Context, files []*multipart.FileHeader) (services.UploadResult, error) {
	res := services.UploadResult{}
	for _, f := range files {
		s.got = append(s.got, f.Filename)
		if services.AllowedImage(f.Filename) {
			res.URLs = append(res.URLs, "/uploads/"+f.Filename)
		}
	}
	if len(res.URLs) == 0 {
		return res, domain.ValidationError{Msg: "No valid image files uploaded (allowed: jpg, jpeg, png, webp)"}
	}
	return res, nil
}

func multipartRequest(t *testing.T, files map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for field, name := range files {
		part, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		_, _ = part.Write([]byte("data"))
	}
	require.NoError(t, w.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/admin/uploads", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUploadCollectsEveryField(t *testing.T) {
	saver := &recordingSaver{}
	r := newTestEngine()
	r.POST("/api/admin/uploads", UploadHandler{Uploads: saver}.Upload)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, map[string]string{
		"images": "a.jpg",
		"image":  "b.png",
		"files":  "c.webp",
		"file":   "d.gif",
		"other":  "e.jpg",
	}))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.ElementsMatch(t, []string{"a.jpg", "b.png", "c.webp", "d.gif"}, saver.got)

	body := decode(t, w)
	assert.Equal(t, 3.0, body["count"])
	assert.Len(t, body["urls"], 3)
}

func TestUploadRejectsNonMultipartAndEmpty(t *testing.T) {
	r := newTestEngine()
	r.POST("/api/admin/uploads", UploadHandler{Uploads: &recordingSaver{}}.Upload)

	w := doJSON(t, r, http.MethodPost, "/api/admin/uploads", map[string]string{"images": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, map[string]string{"file": "malware.exe"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["message"], "No valid image files uploaded")
}
