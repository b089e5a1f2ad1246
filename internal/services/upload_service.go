package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"innstay/internal/domain"
	"innstay/internal/utils"

	"github.com/google/uuid"
)

// PublicUploadPath is where stored files are served from.
const PublicUploadPath = "/uploads"

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type UploadService struct {
	Dir     string
	BaseURL string
}

type UploadResult struct {
	URLs     []string `json:"urls"`
	Rejected []string `json:"rejected"`
}

// AllowedImage reports whether the file extension is on the allowlist.
func AllowedImage(filename string) bool {
	return allowedImageExt[strings.ToLower(filepath.Ext(filename))]
}

// SaveImages stores every allowed file under a random name. Files with other
// extensions are skipped; it is an error only when nothing was stored.
func (s UploadService) SaveImages(ctx context.Context, files []*multipart.FileHeader) (UploadResult, error) {
	res := UploadResult{URLs: []string{}, Rejected: []string{}}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return res, fmt.Errorf("create upload dir: %w", err)
	}

	for _, fh := range files {
		if fh == nil {
			continue
		}
		if !AllowedImage(fh.Filename) {
			res.Rejected = append(res.Rejected, fh.Filename)
			continue
		}
		name, err := s.store(fh)
		if err != nil {
			return res, err
		}
		res.URLs = append(res.URLs, s.BaseURL+PublicUploadPath+"/"+name)
	}

	if len(res.URLs) == 0 {
		return res, domain.ValidationError{Msg: "No valid image files uploaded (allowed: jpg, jpeg, png, webp)"}
	}
	utils.LogEvent(utils.RequestIDFrom(ctx), "uploads", "save", fmt.Sprintf("stored=%d rejected=%d", len(res.URLs), len(res.Rejected)))
	return res, nil
}

func (s UploadService) store(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	if err := s.write(name, src); err != nil {
		return "", err
	}
	return name, nil
}

// write copies src into Dir/name. A failed write leaves no file behind.
func (s UploadService) write(name string, src io.Reader) (err error) {
	path := filepath.Join(s.Dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create upload file: %w", err)
	}
	defer func() {
		if cerr := dst.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close upload file: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("write upload file: %w", err)
	}
	return nil
}
