package analysis

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"go-wavecleanup/forms"
)

// MaxUploadBytes is the upload ceiling (10 MiB).
const MaxUploadBytes int64 = 10 << 20

var (
	ErrFileTooLarge = errors.New("file too large")
	ErrNotImage     = errors.New("file is not an image")
)

// File is an uploaded image held in memory for analysis.
type File struct {
	Name      string
	Size      int64
	MediaType string
	Data      []byte
}

// NewFile builds a File, preferring the sniffed media type over the declared one.
func NewFile(name string, data []byte, declared string) File {
	mediaType := declared
	if len(data) > 0 {
		mediaType = DetectMediaType(data)
	}
	return File{Name: name, Size: int64(len(data)), MediaType: mediaType, Data: data}
}

func DetectMediaType(data []byte) string {
	return mimetype.Detect(data).String()
}

// ValidateUpload applies the size ceiling first, then the image media type check.
func ValidateUpload(size int64, mediaType string) error {
	if size > MaxUploadBytes {
		return fmt.Errorf("%w: %d bytes exceeds %d", ErrFileTooLarge, size, MaxUploadBytes)
	}
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(mediaType)), "image/") {
		return fmt.Errorf("%w: %q", ErrNotImage, mediaType)
	}
	return nil
}

// PreviewURL renders the file as a data URL for inline display.
func (f File) PreviewURL() string {
	return "data:" + f.MediaType + ";base64," + base64.StdEncoding.EncodeToString(f.Data)
}

// SizeMB is the size in megabytes with two decimals, as shown under the preview.
func (f File) SizeMB() string {
	return fmt.Sprintf("%.2f", float64(f.Size)/1024/1024)
}

var (
	tooLargeNotice = forms.Notice{
		Title:       "File too large",
		Description: "Please select an image smaller than 10MB.",
		Variant:     forms.VariantDestructive,
	}
	notImageNotice = forms.Notice{
		Title:       "Invalid file type",
		Description: "Please select an image file.",
		Variant:     forms.VariantDestructive,
	}
	failedNotice = forms.Notice{
		Title:       "Analysis failed",
		Description: "We couldn't analyze this image. Please try again.",
		Variant:     forms.VariantDestructive,
	}
)

// RejectionNotice maps an upload or analysis error to the notice shown to the user.
func RejectionNotice(err error) forms.Notice {
	switch {
	case errors.Is(err, ErrFileTooLarge):
		return tooLargeNotice
	case errors.Is(err, ErrNotImage):
		return notImageNotice
	default:
		return failedNotice
	}
}
