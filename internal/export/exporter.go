package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/epeers/rsiv/internal/models"
)

var ErrUnknownFormat = errors.New("unknown export format")

// Exporter writes an analysis as a downloadable file.
type Exporter interface {
	// Format is the short name used in URLs and flags, e.g. "csv".
	Format() string
	ContentType() string
	FileName() string
	Export(w io.Writer, a *models.AnalysisResponse) error
}

// Options configures the exporters returned by ByFormat.
type Options struct {
	Lang     string
	Currency string
}

// Formats lists the supported export formats
func Formats() []string {
	return []string{"csv", "pdf"}
}

// ByFormat returns the exporter for format (case-insensitive)
func ByFormat(format string, opts Options) (Exporter, error) {
	switch strings.ToLower(format) {
	case "csv":
		return NewCSVExporter(opts.Lang), nil
	case "pdf":
		return NewPDFExporter(opts.Currency), nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}
}
