package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgpai22/subrip/internal/logging"
)

// MimeTypeSubRip is the only MIME type the parser accepts.
const MimeTypeSubRip = "application/x-subrip"

// SupportsMimeType is an exact, case-sensitive comparison.
func SupportsMimeType(mimeType string) bool {
	return mimeType == MimeTypeSubRip
}

// MIME type for a file extension, empty when unknown
func MimeTypeFromExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		return MimeTypeSubRip
	default:
		return ""
	}
}

// subtitle format based on file extension
func GetFormatFromExtension(path string) (Format, error) {
	if !SupportsMimeType(MimeTypeFromExtension(path)) {
		return "", fmt.Errorf("unsupported subtitle format: %s", filepath.Ext(path))
	}
	return FormatSRT, nil
}

type OpenOptions struct {
	Encoding      string
	StartTimeUs   int64
	ScaleFraction bool
	Logger        *logging.Logger
}

// Open parses the subtitle file at path.
func Open(path string, opts OpenOptions) (*Document, error) {
	if _, err := GetFormatFromExtension(path); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SRT file: %w", err)
	}

	p := &Parser{ScaleFraction: opts.ScaleFraction, Logger: opts.Logger}
	doc, err := p.Parse(file, opts.Encoding, opts.StartTimeUs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
