package services

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartFile(t *testing.T, name, content string) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	part, err := mw.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	reader := multipart.NewReader(buf, mw.Boundary())
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)

	header := form.File["image"][0]
	file, err := header.Open()
	require.NoError(t, err)
	return file, header
}

func TestUploaderPutsObjectAndReturnsURL(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		io.Copy(io.Discard, r.Body)
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	u, err := NewUploader(context.Background(), "us-east-1", "photos", "key", "secret", srv.URL, "uploads")
	require.NoError(t, err)

	file, header := multipartFile(t, "beach.jpg", "jpeg bytes")
	defer file.Close()

	result, err := u.Upload(context.Background(), file, header)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.True(t, strings.HasPrefix(gotPath, "/photos/uploads/"), "path-style key under the folder, got %s", gotPath)
	assert.True(t, strings.HasSuffix(gotPath, ".jpg"), "original extension is kept")
	assert.Equal(t, srv.URL+gotPath, result.URL)
	assert.Equal(t, int64(len("jpeg bytes")), result.Size)
}

func TestUploaderStorageError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.Copy(io.Discard, r.Body)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	u, err := NewUploader(context.Background(), "us-east-1", "photos", "key", "secret", srv.URL, "uploads")
	require.NoError(t, err)

	file, header := multipartFile(t, "beach.jpg", "jpeg bytes")
	defer file.Close()

	_, err = u.Upload(context.Background(), file, header)
	assert.Error(t, err)
}

func TestObjectURL(t *testing.T) {
	u := &Uploader{bucket: "photos", region: "eu-west-1", folder: "uploads"}
	assert.Equal(t,
		"https://photos.s3.eu-west-1.amazonaws.com/uploads/x.jpg",
		u.objectURL("uploads/x.jpg"))

	u.endpoint = "https://storage.example.com"
	assert.Equal(t,
		"https://storage.example.com/photos/uploads/x.jpg",
		u.objectURL("uploads/x.jpg"))
}
