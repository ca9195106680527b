package subtitle

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dimchansky/utfbom"
	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// EncodingAuto asks the parser to sniff the charset from the content.
const EncodingAuto = "auto"

// chardet reports a few names that are not WHATWG labels
var chardetAliases = map[string]string{
	"GB-18030": "gb18030",
}

// LookupEncoding resolves a declared encoding name. An empty name is UTF-8.
func LookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, name)
	}
	return enc, nil
}

// detectEncoding guesses the charset of data, falling back to UTF-8.
func detectEncoding(data []byte) (encoding.Encoding, string) {
	res, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil || res == nil {
		return unicode.UTF8, "UTF-8"
	}
	name := res.Charset
	if alias, ok := chardetAliases[name]; ok {
		name = alias
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return unicode.UTF8, "UTF-8"
	}
	return enc, res.Charset
}

// decodeSource wraps r so that it yields UTF-8 text without a leading
// byte-order mark. It returns the name of the encoding actually used.
func decodeSource(r io.Reader, name string) (io.Reader, string, error) {
	var enc encoding.Encoding
	if strings.EqualFold(strings.TrimSpace(name), EncodingAuto) {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read subtitle source: %w", err)
		}
		enc, name = detectEncoding(data)
		r = bytes.NewReader(data)
	} else {
		var err error
		enc, err = LookupEncoding(name)
		if err != nil {
			return nil, "", err
		}
		if name == "" {
			name = "utf-8"
		}
	}
	return utfbom.SkipOnly(transform.NewReader(r, enc.NewDecoder())), name, nil
}
