package services_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Rohan-Kumar320/Export-Apparel-Admin/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateImageName(t *testing.T) {
	for _, name := range []string{"a.jpg", "b.JPEG", "c.png", "dir/d.Png"} {
		assert.NoError(t, services.ValidateImageName(name), name)
	}
	for _, name := range []string{"a.gif", "b.webp", "noext", "c.png.exe"} {
		assert.ErrorIs(t, services.ValidateImageName(name), services.ErrUnsupportedImage, name)
	}
}

func TestCloudinaryUploader_Upload(t *testing.T) {
	var gotPreset, gotFile, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotPreset = r.FormValue("upload_preset")
		f, _, err := r.FormFile("file")
		require.NoError(t, err)
		data, _ := io.ReadAll(f)
		gotFile = string(data)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"secure_url":"https://res.cloudinary.com/demo/front.png"}`))
	}))
	defer srv.Close()

	up := services.NewCloudinaryUploader(srv.URL+"/", "demo", "apparel_unsigned", 5*time.Second)
	url, err := up.Upload(context.Background(), "front.png", strings.NewReader("png-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/front.png", url)
	assert.Equal(t, "/demo/image/upload", gotPath)
	assert.Equal(t, "apparel_unsigned", gotPreset)
	assert.Equal(t, "png-bytes", gotFile)
}

func TestCloudinaryUploader_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Upload preset must be whitelisted for unsigned uploads"}}`))
	}))
	defer srv.Close()

	up := services.NewCloudinaryUploader(srv.URL, "demo", "bad", 5*time.Second)
	_, err := up.Upload(context.Background(), "front.jpg", strings.NewReader("x"))

	var uploadErr *services.UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, "Image upload failed: Upload preset must be whitelisted for unsigned uploads", err.Error())
}

func TestCloudinaryUploader_NonJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway down", http.StatusBadGateway)
	}))
	defer srv.Close()

	up := services.NewCloudinaryUploader(srv.URL, "demo", "p", 5*time.Second)
	_, err := up.Upload(context.Background(), "front.jpg", strings.NewReader("x"))

	assert.ErrorContains(t, err, "502")
}

func TestCloudinaryUploader_RejectsBeforeNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	up := services.NewCloudinaryUploader(srv.URL, "demo", "p", 5*time.Second)
	_, err := up.Upload(context.Background(), "anim.gif", strings.NewReader("x"))

	assert.ErrorIs(t, err, services.ErrUnsupportedImage)
	assert.False(t, called)
}

func TestCloudinaryUploader_CancelledContext(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	up := services.NewCloudinaryUploader(srv.URL, "demo", "p", 5*time.Second)
	_, err := up.Upload(ctx, "front.jpg", strings.NewReader("x"))

	var uploadErr *services.UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.ErrorContains(t, err, "context canceled")
	assert.False(t, called)
}
