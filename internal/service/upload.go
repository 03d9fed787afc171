package service

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/LeJxrxm/bg3-planner/internal/app/appconfig"
	"github.com/LeJxrxm/bg3-planner/internal/constant"
	"github.com/LeJxrxm/bg3-planner/internal/pkg/pgerr"
)

var (
	allowedUploadMIMEs = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}
	allowedUploadExts  = []string{"jpg", "jpeg", "png", "webp", "gif"}
)

type Upload struct {
	Config *appconfig.Config
}

func NewUpload(conf *appconfig.Config) *Upload {
	return &Upload{
		Config: conf,
	}
}

// ValidateUploadHeader checks the declared filename, MIME type and size of an
// upload and returns the normalized extension to store the file under. The
// declared MIME type is not cross-validated against the content.
func ValidateUploadHeader(filename, mimeType string, size int64) (string, error) {
	if filename == "" {
		return "", pgerr.ErrInvalidReq.Msg("filename missing")
	}

	if size > constant.MaxUploadSize {
		return "", pgerr.ErrInvalidReq.Msg("file too large (max 2MB)")
	}

	if !lo.Contains(allowedUploadMIMEs, mimeType) {
		return "", pgerr.ErrInvalidReq.Msg("invalid file type: only JPEG, PNG, WebP and GIF are allowed")
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if !lo.Contains(allowedUploadExts, ext) {
		return "", pgerr.ErrInvalidReq.Msg("invalid file extension")
	}

	return ext, nil
}

// SaveFile stores an uploaded file under a random name, keeping the validated
// extension, and returns the public URL of the stored file.
func (s *Upload) SaveFile(file *multipart.FileHeader) (string, error) {
	ext, err := ValidateUploadHeader(file.Filename, file.Header.Get(fiber.HeaderContentType), file.Size)
	if err != nil {
		return "", err
	}

	name := uuid.NewString() + "." + ext

	if err := os.MkdirAll(s.Config.UploadDir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create upload directory")
	}

	src, err := file.Open()
	if err != nil {
		return "", errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.Config.UploadDir, name))
	if err != nil {
		return "", errors.Wrap(err, "failed to create upload target")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", errors.Wrap(err, "failed to write uploaded file")
	}

	return "/uploads/" + name, nil
}
