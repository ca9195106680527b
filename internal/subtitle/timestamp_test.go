package subtitle

import (
	"errors"
	"testing"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		token string
		want  int64
	}{
		{"01:02:03,004", 3_723_004_000},
		{"02:03,004", 123_004_000},
		{"00:00:00,000", 0},
		{"100:00:00,000", 360_000_000_000},
		{"0:0:1,1", 1_001_000},
		// fraction digits are a literal millisecond count
		{"00:00:01,5", 1_005_000},
		{"00:00:01,0005", 1_005_000},
		{"00:00:01,1500", 2_500_000},
		{"00:75:00,000", 4_500_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseTimestamp(tt.token)
			if err != nil {
				t.Fatalf("ParseTimestamp(%q) returned error: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("ParseTimestamp(%q) = %d, want %d", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseTimestampScaledFraction(t *testing.T) {
	tests := []struct {
		token string
		want  int64
	}{
		{"00:00:01,5", 1_500_000},
		{"00:00:01,50", 1_500_000},
		{"00:00:01,004", 1_004_000},
		{"00:00:01,0005", 1_000_500},
		{"00:00:01,1234", 1_123_400},
		{"00:00:01,12345678", 1_123_456},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := parseTimestamp(tt.token, true)
			if err != nil {
				t.Fatalf("parseTimestamp(%q) returned error: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("parseTimestamp(%q) = %d, want %d", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseTimestampRejectsInvalid(t *testing.T) {
	tokens := []string{
		"",
		"1:2",
		"00:00:01",
		"00:00:01.000",
		" 00:00:01,000",
		"00:00:01,000 ",
		"x00:00:01,000",
		"00:00:01,000x",
		"-1:00:00,000",
		"00:00:01,",
		"00:00:00:01,000",
		"99999999999999999999:00:00,000",
		"9999999999:00:00,000",
		"00:00:00,99999999999999999",
	}

	for _, token := range tokens {
		t.Run(token, func(t *testing.T) {
			_, err := ParseTimestamp(token)
			var ferr *FormatError
			if !errors.As(err, &ferr) {
				t.Fatalf("ParseTimestamp(%q): expected *FormatError, got %v", token, err)
			}
			if ferr.Token != token {
				t.Errorf("expected token %q in error, got %q", token, ferr.Token)
			}
		})
	}
}
