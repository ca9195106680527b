package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mgpai22/subrip/internal/subtitle"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [subtitle_file]",
	Short: "Parse a SubRip file and print its cues",
	Long: `Parse a SubRip (.srt) file and print every cue with its start and
end time.

Examples:
  subrip parse movie.srt
  subrip parse movie.srt --encoding windows-1252
  subrip parse part2.srt --offset-us 3600000000 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	addParseFlags(parseCmd)
	parseCmd.Flags().Bool("json", false, "Print cues as JSON")
}

func addParseFlags(cmd *cobra.Command) {
	cmd.Flags().
		StringP("encoding", "e", "", "Text encoding of the file (e.g., utf-8, windows-1252, auto)")
	cmd.Flags().
		Int64("offset-us", 0, "Start time offset added to every timestamp, in microseconds")
	cmd.Flags().
		Bool("scale-fraction", false, "Read ',5' as 500ms instead of 5ms")
}

func openOptions(cmd *cobra.Command) subtitle.OpenOptions {
	opts := subtitle.OpenOptions{
		Encoding:      cfg.Encoding,
		StartTimeUs:   cfg.StartOffsetUs,
		ScaleFraction: cfg.ScaleFraction,
		Logger:        logger,
	}
	if cmd.Flags().Changed("encoding") {
		opts.Encoding, _ = cmd.Flags().GetString("encoding")
	}
	if cmd.Flags().Changed("offset-us") {
		opts.StartTimeUs, _ = cmd.Flags().GetInt64("offset-us")
	}
	if cmd.Flags().Changed("scale-fraction") {
		opts.ScaleFraction, _ = cmd.Flags().GetBool("scale-fraction")
	}
	return opts
}

func runParse(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]
	asJSON, _ := cmd.Flags().GetBool("json")
	opts := openOptions(cmd)

	logger.Infow("Parsing subtitles",
		"input", subtitlePath,
		"encoding", opts.Encoding,
		"offset_us", opts.StartTimeUs,
	)

	doc, err := subtitle.Open(subtitlePath, opts)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	logger.Infow("Parse complete",
		"cues", doc.Len(),
		"events", doc.EventTimeCount(),
	)

	if asJSON {
		return writeJSON(cmd.OutOrStdout(), doc)
	}
	return writeText(cmd.OutOrStdout(), doc)
}

type jsonSpan struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Style string `json:"style"`
	Color string `json:"color,omitempty"`
}

type jsonCue struct {
	Index   int        `json:"index"`
	StartUs int64      `json:"start_us"`
	EndUs   int64      `json:"end_us"`
	Markup  string     `json:"markup"`
	Text    string     `json:"text"`
	Spans   []jsonSpan `json:"spans,omitempty"`
}

type jsonDocument struct {
	StartTimeUs int64     `json:"start_time_us"`
	Cues        []jsonCue `json:"cues"`
}

func writeJSON(w io.Writer, doc *subtitle.Document) error {
	out := jsonDocument{
		StartTimeUs: doc.StartTime(),
		Cues:        make([]jsonCue, 0, doc.Len()),
	}
	for i, cue := range doc.Cues() {
		jc := jsonCue{
			Index:   i + 1,
			StartUs: doc.EventTime(2 * i),
			EndUs:   doc.EventTime(2*i + 1),
			Markup:  cue.Markup(),
			Text:    cue.Text(),
		}
		for _, s := range cue.Spans() {
			jc.Spans = append(jc.Spans, jsonSpan{
				Start: s.Start,
				End:   s.End,
				Style: s.Style.String(),
				Color: s.Color,
			})
		}
		out.Cues = append(out.Cues, jc)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeText(w io.Writer, doc *subtitle.Document) error {
	for _, entry := range doc.Entries() {
		_, err := fmt.Fprintf(w, "%d\n%s --> %s\n%s\n\n",
			entry.Index,
			formatMicros(entry.StartTime.Microseconds()),
			formatMicros(entry.EndTime.Microseconds()),
			entry.Text,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// formatMicros renders a microsecond count as HH:MM:SS.mmm for display.
func formatMicros(us int64) string {
	sign := ""
	if us < 0 {
		sign = "-"
		us = -us
	}
	ms := us / 1000
	return fmt.Sprintf("%s%02d:%02d:%02d.%03d",
		sign,
		ms/3_600_000,
		ms/60_000%60,
		ms/1000%60,
		ms%1000,
	)
}

// parsePlaybackTime accepts a SubRip timestamp or a Go duration.
func parsePlaybackTime(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if us, err := subtitle.ParseTimestamp(s); err == nil {
		return us, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf(
			"invalid time %q: use HH:MM:SS,mmm or a duration like 1m30s",
			s,
		)
	}
	return d.Microseconds(), nil
}
