package filevalidation

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	// MaxFileSize is the upload size cap (100 MiB).
	MaxFileSize = 100 * 1024 * 1024
	// MaxPDFPages caps structural PDF validation.
	MaxPDFPages = 2000
)

// allowedExtensions maps each accepted extension to the MIME prefix the
// upload must declare. Image, video and document families only.
var allowedExtensions = map[string]string{
	".jpeg": "image/",
	".jpg":  "image/",
	".png":  "image/",
	".gif":  "image/",
	".mp4":  "video/",
	".mov":  "video/",
	".avi":  "video/",
	".pdf":  "application/",
	".doc":  "application/",
	".docx": "application/",
}

// Result contains the outcome of upload validation
type Result struct {
	Valid bool
	Ext   string
	Error string
}

// ValidateUpload checks an uploaded file against the allow-list, the
// size cap, and (for PDFs) structural validity.
func ValidateUpload(file *multipart.FileHeader) *Result {
	result := &Result{}

	if file.Size > MaxFileSize {
		result.Error = fmt.Sprintf("File exceeds maximum allowed size of %dMB", MaxFileSize/(1024*1024))
		return result
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	mimePrefix, ok := allowedExtensions[ext]
	if !ok {
		result.Error = "Only images, videos, and documents are allowed"
		return result
	}
	result.Ext = ext

	// Browsers occasionally omit the part content type; only reject a
	// declared type that contradicts the extension.
	if contentType := file.Header.Get("Content-Type"); contentType != "" {
		if !strings.HasPrefix(contentType, mimePrefix) && contentType != "application/octet-stream" {
			result.Error = "File content type does not match its extension"
			return result
		}
	}

	if ext == ".pdf" {
		if err := validatePDF(file); err != nil {
			result.Error = err.Error()
			return result
		}
	}

	result.Valid = true
	return result
}

// validatePDF confirms the file parses as a PDF within the page cap.
func validatePDF(file *multipart.FileHeader) (err error) {
	defer func() {
		// The pdf package panics on some malformed inputs.
		if r := recover(); r != nil {
			err = fmt.Errorf("file is not a valid PDF")
		}
	}()

	f, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to read uploaded file")
	}
	defer f.Close()

	reader, err := pdf.NewReader(f, file.Size)
	if err != nil {
		return fmt.Errorf("file is not a valid PDF")
	}

	pages := reader.NumPage()
	if pages < 1 {
		return fmt.Errorf("PDF contains no pages")
	}
	if pages > MaxPDFPages {
		return fmt.Errorf("PDF exceeds maximum of %d pages", MaxPDFPages)
	}
	return nil
}
