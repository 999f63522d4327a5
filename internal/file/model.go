package file

import (
	"net/http"
	"time"

	"github.com/campusbook/reservation-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "file not found")
	ErrNotAnImage   = apperror.New(http.StatusBadRequest, "only image uploads are accepted")
	ErrNoThumbnail  = apperror.New(http.StatusNotFound, "no thumbnail for this file")
	ErrFileTooLarge = apperror.New(http.StatusBadRequest, "file exceeds the maximum upload size")
)

// MaxUploadSize caps a single image upload.
const MaxUploadSize = 10 << 20

// File is a stored image backing a space's photo.
type File struct {
	ID            string
	UploaderID    string
	Filename      string
	StoragePath   string
	ThumbnailPath *string
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

// FileURL returns the public URL serving a stored file.
func FileURL(id string) string {
	return "/v1/files/" + id
}

// ThumbnailURL returns the public URL serving a stored file's thumbnail.
func ThumbnailURL(id string) string {
	return "/v1/files/" + id + "/thumbnail"
}
