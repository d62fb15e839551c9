package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mgpai22/srtedit/internal/config"
	"github.com/mgpai22/srtedit/internal/logging"
	"github.com/mgpai22/srtedit/internal/subtitle"
	"github.com/mgpai22/srtedit/internal/timing"
	"github.com/spf13/cobra"
)

var adjustCmd = &cobra.Command{
	Use:   "adjust [subtitle_file]",
	Short: "Shift, extend, or enforce a minimum duration on cue timings",
	Long: `Rewrite every timing line of a subtitle file using exactly one mode:

  --shift     move start and end of each cue by the given seconds
  --interval  move only the end of each cue by the given seconds
  --minimum   extend cues shorter than the given seconds to that length

Timing lines are rewritten as "start --> end"; anything else on such a line is
dropped. All other lines are copied as they are. Without --output the input
file is replaced.

Examples:
  srtedit adjust movie.srt --shift 2.5
  srtedit adjust movie.srt -s=-1.2 -o fixed.srt
  srtedit adjust movie.srt --minimum 1.5 -e utf-8
  srtedit adjust movie.srt -i 0.3 --output-encoding utf-8 --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runAdjust,
}

func init() {
	rootCmd.AddCommand(adjustCmd)

	addModeFlags(adjustCmd.Flags())
	adjustCmd.MarkFlagsMutuallyExclusive(modeFlags...)
	adjustCmd.MarkFlagsOneRequired(modeFlags...)

	adjustCmd.Flags().
		StringP("encoding", "e", "", "Input file encoding (default from config, cp1250)")
	adjustCmd.Flags().
		String("output-encoding", "", "Output file encoding (default: same as input)")
	adjustCmd.Flags().
		Bool("dry-run", false, "Show which cues would change without writing")
}

type adjustOptions struct {
	InputPath      string
	OutputPath     string
	Encoding       string
	OutputEncoding string
	Mode           timing.Mode
	DryRun         bool
}

func runAdjust(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]

	if _, err := os.Stat(subtitlePath); os.IsNotExist(err) {
		return fmt.Errorf("subtitle file not found: %s", subtitlePath)
	}

	mode, err := modeFromFlags(cmd.Flags())
	if err != nil {
		return err
	}

	outputPath, _ := cmd.Flags().GetString("output")
	encodingName, _ := cmd.Flags().GetString("encoding")
	outputEncoding, _ := cmd.Flags().GetString("output-encoding")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	settings := cfg
	if settings == nil {
		defaults := config.Default()
		settings = &defaults
	}
	if encodingName == "" {
		encodingName = settings.Encoding.Input
	}
	if outputEncoding == "" {
		outputEncoding = settings.Encoding.Output
	}
	if outputPath == "" {
		outputPath = subtitlePath
	}

	opts := adjustOptions{
		InputPath:      subtitlePath,
		OutputPath:     outputPath,
		Encoding:       encodingName,
		OutputEncoding: outputEncoding,
		Mode:           mode,
		DryRun:         dryRun,
	}

	log := logger
	if log == nil {
		log = logging.NewNop()
	}

	result, err := adjustFile(opts, log)
	if err != nil {
		return err
	}

	printAdjustSummary(cmd.OutOrStdout(), opts, result)
	return nil
}

func adjustFile(opts adjustOptions, log *logging.Logger) (*timing.Result, error) {
	log.Infow("Adjusting subtitle timings",
		"input", opts.InputPath,
		"output", opts.OutputPath,
		"mode", opts.Mode.Name(),
		"amount", opts.Mode.Amount().String(),
		"encoding", opts.Encoding,
		"dry_run", opts.DryRun,
	)

	file, err := subtitle.Open(opts.InputPath, opts.Encoding)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", opts.InputPath, err)
	}

	result := timing.NewTransformer(opts.Mode).Apply(file.Lines)
	for _, cue := range result.Cues {
		if cue.Changed() {
			log.Debugw("Rewrote cue",
				"line", cue.Line,
				"from", cue.Original,
				"to", cue.Rewrite,
			)
		}
	}

	log.Infow("Processed lines",
		"lines", len(result.Lines),
		"cues", len(result.Cues),
		"changed", result.Changed(),
	)
	if len(result.Cues) == 0 {
		log.Warnw("No timing lines found", "input", opts.InputPath)
	}

	if opts.DryRun {
		// surface encoding problems without touching the output
		enc := opts.OutputEncoding
		if enc == "" {
			enc = opts.Encoding
		}
		if _, err := subtitle.Encode(result.Lines, enc); err != nil {
			return nil, err
		}
		return result, nil
	}

	file.Lines = result.Lines
	if err := file.Write(opts.OutputPath, opts.OutputEncoding); err != nil {
		return nil, fmt.Errorf("failed to write output file: %w", err)
	}

	return result, nil
}

func printAdjustSummary(out io.Writer, opts adjustOptions, result *timing.Result) {
	if opts.DryRun {
		if result.Changed() == 0 {
			fmt.Fprintln(out, "No cue timings would change.")
			return
		}
		fmt.Fprintln(out, renderCueTable(result.Cues))
		fmt.Fprintf(out, "%d of %d cues would change.\n", result.Changed(), len(result.Cues))
		return
	}

	absOutput, err := filepath.Abs(opts.OutputPath)
	if err != nil {
		absOutput = opts.OutputPath
	}
	fmt.Fprintf(out, "Subtitle timings adjusted: %s\n", absOutput)
	fmt.Fprintf(out, "  Mode: %s %s\n", opts.Mode.Name(), opts.Mode.Amount())
	fmt.Fprintf(out, "  Cues: %d (%d changed)\n", len(result.Cues), result.Changed())
}
