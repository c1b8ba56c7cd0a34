package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"rmsdplot/internal/artifact"
	"rmsdplot/internal/dat"
	"rmsdplot/internal/logging"
	"rmsdplot/internal/plot"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	title     string
	outPath   string
	color     string
	themePath string
	logPath   string
	logLevel  string
}

var rootCmd = &cobra.Command{
	Use:   "rmsdplot [flags] <input.dat>",
	Short: "Plot the RMSD values of a molecular dynamics trajectory",
	Long: `Plot the Root Mean Square Deviation (RMSD) values from a .dat file
for a molecule.

The input file holds one sample per line, columns separated by whitespace:
the first column is the frame (or time) axis, the second the RMSD value.
Rows carrying the NA missing-value token are dropped; any other non-numeric
row aborts the run.

The output format follows the output path's extension (see 'rmsdplot
formats'). The image is written atomically: a failed run never leaves a
truncated file behind.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRender,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&rootFlags.title, "title", "t", "", "Chart title, used verbatim as the heading (required)")
	f.StringVarP(&rootFlags.outPath, "out", "o", "", "Output image path; the extension selects the format (required)")
	f.StringVarP(&rootFlags.color, "color", "c", "blue", "Line color: a named color or #rrggbb")
	f.StringVar(&rootFlags.themePath, "theme", "", "Path to a YAML/JSON theme file (dimensions, axis labels, line width)")
	f.StringVarP(&rootFlags.logPath, "log", "l", "", "Log file path (default: rmsdplot.log next to the output image)")
	f.StringVar(&rootFlags.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	_ = rootCmd.MarkFlagRequired("title")
	_ = rootCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(formatsCmd)
	rootCmd.Version = version
}

func runRender(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	// Validate everything derived from flags before touching the filesystem.
	outFormat, err := artifact.FromPath(rootFlags.outPath)
	if err != nil {
		return err
	}
	lineColor, err := plot.ParseColor(rootFlags.color)
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(rootFlags.logLevel)
	if err != nil {
		return err
	}
	theme := plot.DefaultTheme()
	if rootFlags.themePath != "" {
		theme, err = plot.LoadTheme(rootFlags.themePath)
		if err != nil {
			return err
		}
	}

	outDir := filepath.Dir(rootFlags.outPath)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	logPath := rootFlags.logPath
	if logPath == "" {
		logPath = filepath.Join(outDir, "rmsdplot.log")
	}
	logWriter, logFile, err := logging.TeeFile(logPath)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logging.Init(level, "text", logWriter)

	logger := logging.New("rmsdplot")
	logger.Info("starting", "version", version, "cmd", strings.Join(os.Args, " "))

	series, err := dat.Read(inputPath)
	if err != nil {
		return err
	}

	ch, err := plot.Line(series, rootFlags.title, lineColor, theme)
	if err != nil {
		return err
	}

	err = artifact.Write(rootFlags.outPath, func(w io.Writer) error {
		return ch.Render(outFormat.Provider, w)
	})
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(rootFlags.outPath)
	if err != nil {
		abs = rootFlags.outPath
	}
	logger.Info("RMSD plot created", "path", abs)
	return nil
}
