package filestorage

import (
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/IndiraMehta/EduTask/internal/pkg/apperrors"
)

func pdfHeader(name string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"application/pdf"}},
	}
}

func TestValidateUploads(t *testing.T) {
	tests := []struct {
		name    string
		files   []*multipart.FileHeader
		wantErr error
	}{
		{
			name:    "no files",
			files:   nil,
			wantErr: nil,
		},
		{
			name:    "single valid pdf",
			files:   []*multipart.FileHeader{pdfHeader("notes.pdf", 1024)},
			wantErr: nil,
		},
		{
			name: "exactly at the file count limit",
			files: []*multipart.FileHeader{
				pdfHeader("a.pdf", 1), pdfHeader("b.pdf", 1), pdfHeader("c.pdf", 1),
				pdfHeader("d.pdf", 1), pdfHeader("e.pdf", 1),
			},
			wantErr: nil,
		},
		{
			name: "one file over the count limit",
			files: []*multipart.FileHeader{
				pdfHeader("a.pdf", 1), pdfHeader("b.pdf", 1), pdfHeader("c.pdf", 1),
				pdfHeader("d.pdf", 1), pdfHeader("e.pdf", 1), pdfHeader("f.pdf", 1),
			},
			wantErr: apperrors.ErrTooManyFiles,
		},
		{
			name:    "exactly at the size limit",
			files:   []*multipart.FileHeader{pdfHeader("big.pdf", MaxUploadSize)},
			wantErr: nil,
		},
		{
			name:    "over the size limit",
			files:   []*multipart.FileHeader{pdfHeader("huge.pdf", MaxUploadSize+1)},
			wantErr: apperrors.ErrFileTooLarge,
		},
		{
			name:    "wrong extension",
			files:   []*multipart.FileHeader{pdfHeader("script.exe", 10)},
			wantErr: apperrors.ErrFileTypeInvalid,
		},
		{
			name: "wrong content type",
			files: []*multipart.FileHeader{{
				Filename: "fake.pdf",
				Size:     10,
				Header:   textproto.MIMEHeader{"Content-Type": []string{"application/zip"}},
			}},
			wantErr: apperrors.ErrFileTypeInvalid,
		},
		{
			name: "missing content type falls back to extension",
			files: []*multipart.FileHeader{{
				Filename: "bare.pdf",
				Size:     10,
				Header:   textproto.MIMEHeader{},
			}},
			wantErr: nil,
		},
		{
			name:    "uppercase extension accepted",
			files:   []*multipart.FileHeader{pdfHeader("REPORT.PDF", 10)},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUploads(tt.files)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateUploads() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
