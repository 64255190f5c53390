package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

// ErrUnsupportedImage is returned before any upload for files that are not JPG, JPEG or PNG.
var ErrUnsupportedImage = errors.New("Only JPG, JPEG, and PNG images are allowed.")

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// ValidateImageName checks the file extension against the allow-list.
func ValidateImageName(name string) error {
	if !allowedImageExtensions[strings.ToLower(filepath.Ext(name))] {
		return ErrUnsupportedImage
	}
	return nil
}

// UploadError is a failed upload, worded for the product form.
type UploadError struct {
	Message string
}

func (e *UploadError) Error() string {
	return "Image upload failed: " + e.Message
}

// IImageUploader stores an image and returns its public URL.
type IImageUploader interface {
	Upload(ctx context.Context, filename string, file io.Reader) (string, error)
}

// CloudinaryUploader performs unsigned uploads with a fixed upload preset over fiber's HTTP client.
type CloudinaryUploader struct {
	endpoint string
	preset   string
	timeout  time.Duration
}

// NewCloudinaryUploader builds an uploader for {baseURL}/{cloudName}/image/upload.
func NewCloudinaryUploader(baseURL, cloudName, preset string, timeout time.Duration) *CloudinaryUploader {
	return &CloudinaryUploader{
		endpoint: strings.TrimRight(baseURL, "/") + "/" + cloudName + "/image/upload",
		preset:   preset,
		timeout:  timeout,
	}
}

type cloudinaryResponse struct {
	SecureURL string `json:"secure_url"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

type uploadReply struct {
	code int
	body []byte
	errs []error
}

// Upload validates the file name, then posts the file as multipart form data.
// The request is abandoned when ctx ends; the agent itself stops after the configured timeout.
func (u *CloudinaryUploader) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	if err := ValidateImageName(filename); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", &UploadError{Message: err.Error()}
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return "", &UploadError{Message: err.Error()}
	}

	args := fiber.AcquireArgs()
	defer fiber.ReleaseArgs(args)
	args.Set("upload_preset", u.preset)

	agent := fiber.Post(u.endpoint).
		Timeout(u.timeout).
		FileData(&fiber.FormFile{Fieldname: "file", Name: filepath.Base(filename), Content: data}).
		MultipartForm(args)

	done := make(chan uploadReply, 1)
	go func() {
		code, body, errs := agent.Bytes()
		done <- uploadReply{code: code, body: body, errs: errs}
	}()

	var reply uploadReply
	select {
	case <-ctx.Done():
		return "", &UploadError{Message: ctx.Err().Error()}
	case reply = <-done:
	}
	if len(reply.errs) > 0 {
		return "", &UploadError{Message: reply.errs[0].Error()}
	}

	var result cloudinaryResponse
	if err := json.Unmarshal(reply.body, &result); err != nil {
		return "", &UploadError{Message: fmt.Sprintf("unexpected response (%d)", reply.code)}
	}
	if result.Error != nil {
		return "", &UploadError{Message: result.Error.Message}
	}
	if reply.code >= 300 || result.SecureURL == "" {
		return "", &UploadError{Message: fmt.Sprintf("unexpected response (%d)", reply.code)}
	}
	return result.SecureURL, nil
}
