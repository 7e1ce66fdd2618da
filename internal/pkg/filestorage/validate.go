package filestorage

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/IndiraMehta/EduTask/internal/pkg/apperrors"
)

// Upload limits. Exceeding either fails the whole request.
const (
	MaxUploadFiles = 5
	MaxUploadSize  = 10 << 20 // 10 MiB per file
)

const allowedContentType = "application/pdf"

// ValidateUploads checks a multipart file set against the portal's upload
// contract: at most MaxUploadFiles files, each a PDF no larger than
// MaxUploadSize. Pure over the headers so it can be tested without a
// request in flight.
func ValidateUploads(files []*multipart.FileHeader) error {
	if len(files) > MaxUploadFiles {
		return apperrors.ErrTooManyFiles
	}

	for _, fh := range files {
		if fh.Size > MaxUploadSize {
			return apperrors.ErrFileTooLarge
		}
		if !isPDF(fh) {
			return apperrors.ErrFileTypeInvalid
		}
	}

	return nil
}

func isPDF(fh *multipart.FileHeader) bool {
	if !strings.EqualFold(filepath.Ext(fh.Filename), ".pdf") {
		return false
	}
	ct := fh.Header.Get("Content-Type")
	// Some clients omit the part content type; the extension check stands alone then.
	return ct == "" || strings.EqualFold(ct, allowedContentType)
}
