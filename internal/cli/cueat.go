package cli

import (
	"fmt"

	"github.com/mgpai22/subrip/internal/subtitle"
	"github.com/spf13/cobra"
)

var cueAtCmd = &cobra.Command{
	Use:   "cue-at [subtitle_file] [time]",
	Short: "Print the cue shown at a playback time",
	Long: `Print the cue on screen at the given playback time.

The time is a SubRip timestamp (01:02:03,004) or a duration (1m30s) on the
same timeline as the parsed cues, so it includes any --offset-us.

Examples:
  subrip cue-at movie.srt 00:01:30,000
  subrip cue-at movie.srt 90s`,
	Args: cobra.ExactArgs(2),
	RunE: runCueAt,
}

func init() {
	rootCmd.AddCommand(cueAtCmd)
	addParseFlags(cueAtCmd)
}

func runCueAt(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]
	timeUs, err := parsePlaybackTime(args[1])
	if err != nil {
		return err
	}

	doc, err := subtitle.Open(subtitlePath, openOptions(cmd))
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	out := cmd.OutOrStdout()
	cues := doc.CuesAt(timeUs)
	if len(cues) == 0 {
		fmt.Fprintf(out, "no cue at %s\n", formatMicros(timeUs))
	} else {
		for _, cue := range cues {
			fmt.Fprintln(out, cue.Text())
		}
	}

	if next := doc.NextEventTimeIndex(timeUs); next >= 0 {
		logger.Debugw("Next event",
			"index", next,
			"time", formatMicros(doc.EventTime(next)),
		)
	}
	return nil
}
