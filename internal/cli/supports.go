package cli

import (
	"fmt"

	"github.com/mgpai22/subrip/internal/subtitle"
	"github.com/spf13/cobra"
)

var supportsCmd = &cobra.Command{
	Use:   "supports [mime_type]",
	Short: "Report whether a MIME type can be parsed",
	Long: `Print true when the MIME type is accepted by the parser and false
otherwise. The comparison is exact and case-sensitive; the command exits
with status 1 for unsupported types.

Example:
  subrip supports application/x-subrip`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ok := subtitle.SupportsMimeType(args[0])
		fmt.Fprintln(cmd.OutOrStdout(), ok)
		if !ok {
			return fmt.Errorf("unsupported MIME type %q", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(supportsCmd)
}
