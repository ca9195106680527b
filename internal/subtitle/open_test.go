package subtitle

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenSRTFile(t *testing.T) {
	tmpDir := t.TempDir()
	srtPath := filepath.Join(tmpDir, "test.srt")
	if err := os.WriteFile(srtPath, []byte(twoBlocks), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	doc, err := Open(srtPath, OpenOptions{StartTimeUs: 1_000_000})
	if err != nil {
		t.Fatalf("failed to open SRT file: %v", err)
	}
	if doc.Len() != 2 {
		t.Fatalf("expected 2 cues, got %d", doc.Len())
	}
	if doc.EventTime(0) != 2_000_000 {
		t.Errorf("expected first event at 2000000, got %d", doc.EventTime(0))
	}
}

func TestOpenReportsPath(t *testing.T) {
	tmpDir := t.TempDir()
	srtPath := filepath.Join(tmpDir, "broken.srt")
	if err := os.WriteFile(srtPath, []byte("1\nnot timing\nText\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	_, err := Open(srtPath, OpenOptions{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "broken.srt") {
		t.Errorf("expected path in error, got: %v", err)
	}
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Line != 2 {
		t.Errorf("expected ParseError at line 2, got %v", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.srt"), OpenOptions{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestOpenUnsupportedFormat(t *testing.T) {
	tmpDir := t.TempDir()
	txtPath := filepath.Join(tmpDir, "test.vtt")
	if err := os.WriteFile(txtPath, []byte("WEBVTT"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	_, err := Open(txtPath, OpenOptions{})
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("expected 'unsupported' in error, got: %v", err)
	}
}

func TestSupportsMimeType(t *testing.T) {
	tests := []struct {
		mimeType string
		want     bool
	}{
		{"application/x-subrip", true},
		{"application/X-SubRip", false},
		{"APPLICATION/X-SUBRIP", false},
		{" application/x-subrip", false},
		{"application/x-subrip ", false},
		{"application/x-subrip; charset=utf-8", false},
		{"text/vtt", false},
		{"text/x-ssa", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.mimeType, func(t *testing.T) {
			if got := SupportsMimeType(tt.mimeType); got != tt.want {
				t.Errorf("SupportsMimeType(%q) = %v, want %v", tt.mimeType, got, tt.want)
			}
		})
	}
}

func TestGetFormatFromExtension(t *testing.T) {
	for _, path := range []string{"a.srt", "dir/B.SRT", "c.Srt"} {
		format, err := GetFormatFromExtension(path)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", path, err)
		}
		if format != FormatSRT {
			t.Errorf("%s: expected %s, got %s", path, FormatSRT, format)
		}
	}
	if _, err := GetFormatFromExtension("movie.ass"); err == nil {
		t.Error("expected error for .ass")
	}
}
