package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/mgpai22/subrip/internal/logging"
)

const maxLineLength = 1 << 20

var timingLineRegex = regexp.MustCompile(`^(.*?)\s*-->\s*(.*)$`)

// Parser reads SubRip documents. The zero value is ready to use and a
// Parser holds no per-call state, so one value may serve concurrent calls.
type Parser struct {
	// ScaleFraction reads the fraction after the comma as a decimal
	// fraction of a second instead of a literal millisecond count.
	ScaleFraction bool

	Logger *logging.Logger
}

func NewParser() *Parser {
	return &Parser{}
}

// Parse reads a SubRip document from src using the default Parser.
func Parse(src io.ReadCloser, encoding string, startTimeUs int64) (*Document, error) {
	return NewParser().Parse(src, encoding, startTimeUs)
}

// Parse decodes src with the declared encoding and returns every block as
// a cue. startTimeUs is added to each event time; a sum past MaxInt64 is
// reported as a *ParseError on the block's timing line. src is closed before
// Parse returns. Grammar violations are reported as *ParseError; read and
// decode failures are returned wrapped and never as *ParseError.
func (p *Parser) Parse(
	src io.ReadCloser,
	encoding string,
	startTimeUs int64,
) (doc *Document, err error) {
	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			doc = nil
			err = fmt.Errorf("failed to close subtitle source: %w", cerr)
		}
	}()

	r, encName, err := decodeSource(src, encoding)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(strings.TrimSpace(encoding), EncodingAuto) {
		p.logger().Debugw("Detected subtitle encoding", "charset", encName)
	}

	lines := newLineReader(r)
	var cues []Cue
	var cueTimesUs []int64

	for {
		b, ok, err := p.scanBlock(lines)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if startTimeUs > 0 && max(b.startUs, b.endUs) > math.MaxInt64-startTimeUs {
			return nil, &ParseError{
				Line:    b.line,
				Content: strconv.FormatInt(startTimeUs, 10),
				Reason:  "timestamp out of range after applying start offset",
			}
		}
		cueTimesUs = append(cueTimesUs, startTimeUs+b.startUs, startTimeUs+b.endUs)
		cues = append(cues, BuildCue(b.markup))
	}

	p.logger().Debugw("Parsed SubRip document",
		"cues", len(cues),
		"lines", lines.line,
		"encoding", encName,
		"start_time_us", startTimeUs,
	)

	return newDocument(startTimeUs, cues, cueTimesUs), nil
}

// SupportsMimeType reports whether the parser accepts mimeType.
func (p *Parser) SupportsMimeType(mimeType string) bool {
	return SupportsMimeType(mimeType)
}

type block struct {
	line    int
	startUs int64
	endUs   int64
	markup  string
}

// scanBlock reads counter, timing and text lines of one block. ok is false
// once the input is exhausted between blocks.
func (p *Parser) scanBlock(lines *lineReader) (block, bool, error) {
	var line string
	for {
		l, ok := lines.next()
		if !ok {
			return block{}, false, lines.err()
		}
		// blank lines between blocks and at the end of the file
		if strings.TrimSpace(l) != "" {
			line = l
			break
		}
	}

	counter := strings.TrimSpace(line)
	if n, err := strconv.Atoi(counter); err != nil || n < 0 {
		return block{}, false, &ParseError{
			Line:    lines.line,
			Content: line,
			Reason:  "expected numeric counter",
		}
	}

	line, ok := lines.next()
	if !ok {
		if err := lines.err(); err != nil {
			return block{}, false, err
		}
		return block{}, false, &ParseError{
			Line:    lines.line,
			Content: counter,
			Reason:  "unexpected end of input, expected timing line after counter",
		}
	}

	matches := timingLineRegex.FindStringSubmatch(line)
	if matches == nil {
		return block{}, false, &ParseError{
			Line:    lines.line,
			Content: line,
			Reason:  "expected timing line",
		}
	}
	startUs, err := parseTimestamp(strings.TrimSpace(matches[1]), p.ScaleFraction)
	if err != nil {
		return block{}, false, &ParseError{
			Line:    lines.line,
			Content: line,
			Reason:  "invalid start timestamp",
			Err:     err,
		}
	}
	endUs, err := parseTimestamp(strings.TrimSpace(matches[2]), p.ScaleFraction)
	if err != nil {
		return block{}, false, &ParseError{
			Line:    lines.line,
			Content: line,
			Reason:  "invalid end timestamp",
			Err:     err,
		}
	}
	timingLine := lines.line

	var text strings.Builder
	for read := 0; ; read++ {
		line, ok := lines.next()
		if !ok {
			if err := lines.err(); err != nil {
				return block{}, false, err
			}
			if read == 0 {
				return block{}, false, &ParseError{
					Line:   timingLine,
					Reason: "unexpected end of input, expected cue text after timing line",
				}
			}
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}
		if text.Len() > 0 {
			text.WriteString(lineBreak)
		}
		text.WriteString(line)
	}

	return block{
		line:    timingLine,
		startUs: startUs,
		endUs:   endUs,
		markup:  text.String(),
	}, true, nil
}

func (p *Parser) logger() *logging.Logger {
	if p.Logger == nil {
		return logging.Nop()
	}
	return p.Logger
}

// lineReader is a forward-only line source that counts lines read.
type lineReader struct {
	scanner *bufio.Scanner
	line    int
}

func newLineReader(r io.Reader) *lineReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	return &lineReader{scanner: scanner}
}

func (lr *lineReader) next() (string, bool) {
	if !lr.scanner.Scan() {
		return "", false
	}
	lr.line++
	return lr.scanner.Text(), true
}

func (lr *lineReader) err() error {
	if err := lr.scanner.Err(); err != nil {
		return fmt.Errorf("failed to read subtitle source at line %d: %w", lr.line+1, err)
	}
	return nil
}
