package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-wavecleanup/analysis"
	"go-wavecleanup/forms"
	"go-wavecleanup/geocode"
	"go-wavecleanup/types"
)

// multipart overhead allowed on top of the image itself
const uploadSlack = 1 << 20

var errNoImage = errors.New("no image in request")

// readUpload pulls the "image" part out of a multipart request.
func readUpload(c *gin.Context) (analysis.File, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, analysis.MaxUploadBytes+uploadSlack)

	fh, err := c.FormFile("image")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return analysis.File{}, fmt.Errorf("%w: request exceeds %d bytes", analysis.ErrFileTooLarge, maxErr.Limit)
		}
		return analysis.File{}, errNoImage
	}
	// Reject on the declared size before reading anything.
	if err := analysis.ValidateUpload(fh.Size, "image/*"); err != nil {
		return analysis.File{}, err
	}

	f, err := fh.Open()
	if err != nil {
		return analysis.File{}, fmt.Errorf("opening upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, analysis.MaxUploadBytes+1))
	if err != nil {
		return analysis.File{}, fmt.Errorf("reading upload: %w", err)
	}
	return analysis.NewFile(fh.Filename, data, fh.Header.Get("Content-Type")), nil
}

// runAnalysis selects the file in a fresh session, analyzes it and attaches the location.
func runAnalysis(ctx context.Context, analyzer analysis.Analyzer, locator *geocode.Locator, file analysis.File, location string) (*analysis.Session, types.AnalysisResult, error) {
	session := analysis.NewSession(analyzer)
	if err := session.Select(file); err != nil {
		return session, types.AnalysisResult{}, err
	}
	result, err := session.Analyze(ctx)
	if err != nil {
		return session, types.AnalysisResult{}, err
	}
	return session, locator.Annotate(ctx, result, location), nil
}

// AnalyzeImage handles POST /api/analyze.
func AnalyzeImage(c *gin.Context, analyzer analysis.Analyzer, locator *geocode.Locator, logger *zap.Logger) {
	file, err := readUpload(c)
	if err != nil {
		respondAnalysisError(c, logger, err)
		return
	}

	_, result, err := runAnalysis(c.Request.Context(), analyzer, locator, file, c.PostForm("location"))
	if err != nil {
		respondAnalysisError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": result,
		"notice": analysis.CompletionNotice(result),
	})
}

func respondAnalysisError(c *gin.Context, logger *zap.Logger, err error) {
	notice := analysis.RejectionNotice(err)
	status := analysisStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error("image analysis failed", zap.Error(err))
	}
	if errors.Is(err, errNoImage) {
		notice = forms.Notice{Title: "No image selected", Description: "Please choose an image to analyze.", Variant: forms.VariantDestructive}
	}
	c.JSON(status, gin.H{"error": err.Error(), "notice": notice})
}

func analysisStatus(err error) int {
	switch {
	case errors.Is(err, analysis.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, analysis.ErrNotImage):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, errNoImage):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	default:
		return http.StatusBadGateway
	}
}
