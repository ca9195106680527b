package subtitle

import (
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// lineBreak joins the physical lines of one block.
const lineBreak = "<br>"

type Style int

const (
	StyleBold Style = iota + 1
	StyleItalic
	StyleUnderline
	StyleColor
)

func (s Style) String() string {
	switch s {
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	case StyleUnderline:
		return "underline"
	case StyleColor:
		return "color"
	default:
		return "unknown"
	}
}

// Span marks Text()[Start:End] with a style. Color is only set for
// StyleColor.
type Span struct {
	Start int
	End   int
	Style Style
	Color string
}

// Cue is one subtitle payload. It carries no timing; see Document.
type Cue struct {
	markup string
	text   string
	spans  []Span
}

// accumulated block text, lines joined with <br>
func (c Cue) Markup() string {
	return c.markup
}

// Text returns the resolved display text: tags removed, entities decoded
// and <br> turned into newlines.
func (c Cue) Text() string {
	return c.text
}

func (c Cue) Spans() []Span {
	out := make([]Span, len(c.spans))
	copy(out, c.spans)
	return out
}

func (c Cue) String() string {
	return c.markup
}

type openTag struct {
	name  string
	start int
	style Style
	color string
}

// BuildCue resolves inline markup into a Cue. It accepts any input:
// unknown tags are dropped with their content kept, and anything that
// does not tokenize as a tag stays literal text.
func BuildCue(markup string) Cue {
	var (
		text  strings.Builder
		spans []Span
		open  []openTag
	)

	closeTag := func(i int) {
		t := open[i]
		if t.style != 0 && text.Len() > t.start {
			spans = append(spans, Span{
				Start: t.start,
				End:   text.Len(),
				Style: t.style,
				Color: t.color,
			})
		}
		open = append(open[:i], open[i+1:]...)
	}

	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// input ended inside a tag
			if z.Err() == io.EOF {
				text.Write(z.Raw())
			}
			break
		}
		if tt == html.StartTagToken {
			// <plaintext>, <textarea>, <script> and friends are inline
			// tags here, so later markup must keep tokenizing
			z.NextIsNotRawText()
		}
		raw := string(z.Raw())
		tok := z.Token()
		switch tt {
		case html.TextToken:
			text.WriteString(tok.Data)
		case html.CommentToken, html.DoctypeToken:
			if !declarationClosed(raw) {
				text.WriteString(raw)
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			if tok.Data == "br" {
				text.WriteByte('\n')
				continue
			}
			style, ok := styleForTag(tok.Data)
			if !ok || tt == html.SelfClosingTagToken {
				continue
			}
			t := openTag{name: tok.Data, start: text.Len(), style: style}
			if style == StyleColor {
				// <font> without a color still has to pair with its end tag
				if t.color = attr(tok, "color"); t.color == "" {
					t.style = 0
				}
			}
			open = append(open, t)
		case html.EndTagToken:
			for i := len(open) - 1; i >= 0; i-- {
				if open[i].name == tok.Data {
					closeTag(i)
					break
				}
			}
		}
	}
	for len(open) > 0 {
		closeTag(len(open) - 1)
	}

	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].Start < spans[j].Start
	})

	return Cue{
		markup: markup,
		text:   text.String(),
		spans:  spans,
	}
}

// declarationClosed reports whether a comment or doctype was terminated
// before the end of input.
func declarationClosed(raw string) bool {
	if strings.HasPrefix(raw, "<!--") {
		return strings.HasSuffix(raw, "-->")
	}
	return strings.HasSuffix(raw, ">")
}

func styleForTag(name string) (Style, bool) {
	switch name {
	case "b", "strong":
		return StyleBold, true
	case "i", "em", "cite", "dfn":
		return StyleItalic, true
	case "u":
		return StyleUnderline, true
	case "font":
		return StyleColor, true
	default:
		return 0, false
	}
}

func attr(tok html.Token, key string) string {
	for _, a := range tok.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
