// Package score turns a PGN game annotated with [%clk] move times into a
// game score report with per-move timing statistics and analysis.
package score

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

type (
	// Cmd is the kong command that generates a report for one PGN file.
	Cmd struct {
		out         io.Writer
		InputPath   string `name:"input" short:"i" required:"" type:"existingfile" help:"Input PGN file with [%clk] move time annotations."`
		OutputPath  string `name:"output" short:"o" required:"" help:"Output file for the game score and analysis."`
		Format      Format `name:"format" default:"text" help:"Report format, one of: text, markdown."`
		SummaryPath string `name:"summary" help:"Also write a YAML statistics summary to this path."`
	}

	// Format selects the report rendering.
	Format string
)

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
)

func (f *Format) UnmarshalText(text []byte) error {
	switch Format(text) {
	case FormatText, FormatMarkdown:
		*f = Format(text)

		return nil
	default:
		return fmt.Errorf("unknown report format %q, want text or markdown", string(text))
	}
}

func (c *Cmd) AfterApply() error {
	if c.out == nil {
		c.out = os.Stdout
	}

	return nil
}

func (c *Cmd) Run() error {
	return Generate(c.InputPath, c.OutputPath, c.Format, c.SummaryPath, c.out)
}

// Generate reads the PGN file at inputPath, writes the rendered report to
// outputPath and, when summaryPath is non-empty, a YAML summary next to it.
// A confirmation line goes to stdout on success.
func Generate(inputPath, outputPath string, format Format, summaryPath string, stdout io.Writer) (err error) {
	fd, err := os.Open(filepath.Clean(inputPath))
	if err != nil {
		return fmt.Errorf("failed to open input PGN file at %q: %w", inputPath, err)
	}

	defer func() { _ = fd.Close() }()

	game, err := ReadGame(fd)
	if err != nil {
		return fmt.Errorf("failed to read game from %q: %w", inputPath, err)
	}

	if len(game.Moves) == 0 {
		return fmt.Errorf("no game found in the PGN file at %q", inputPath)
	}

	report := BuildReport(game)

	out, err := os.Create(filepath.Clean(outputPath))
	if err != nil {
		return fmt.Errorf("failed to create output file at %q: %w", outputPath, err)
	}

	defer func() { _ = out.Close() }()

	if format == FormatMarkdown {
		err = report.WriteMarkdown(out)
	} else {
		err = report.WriteText(out)
	}

	if err != nil {
		return fmt.Errorf("failed to write report to %q: %w", outputPath, err)
	}

	if summaryPath != "" {
		if err = writeSummary(report, summaryPath); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(stdout, "Game score, detailed move statistics, and analysis written to %s\n", outputPath)

	return err
}

func writeSummary(report *Report, path string) error {
	contents, err := yaml.Marshal(report.Summary())
	if err != nil {
		return fmt.Errorf("failed to marshal statistics summary: %w", err)
	}

	err = os.WriteFile(filepath.Clean(path), contents, 0644)
	if err != nil {
		return fmt.Errorf("failed to write statistics summary to %q: %w", path, err)
	}

	return nil
}
