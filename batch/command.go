// Package batch discovers *_movetimes.pgn files under a directory and runs
// the report generator once per file, mapping each input to a *_clock.txt
// report in the same directory.
package batch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type (
	// Runner executes the external processing command for one work item.
	Runner interface {
		Run(ctx context.Context, inputPath, outputPath string) error
	}

	// Cmd is the kong command that dispatches every matching file under
	// RootDir to the processing command, sequentially. Individual failures
	// are reported and skipped; only argument validation aborts the batch.
	Cmd struct {
		runner  Runner
		out     io.Writer
		errOut  io.Writer
		RootDir string `arg:"" name:"RootDir" type:"existingdir" help:"Directory to search for *_movetimes.pgn files."`
	}

	execRunner struct {
		command string
	}
)

// The sibling binary satisfying the `-i <input> -o <output>` contract. It is
// resolved through PATH at dispatch time.
const processingCommand = "pgnclock-score"

var (
	mappingStyle = lipgloss.NewStyle().Faint(true)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func (r execRunner) Run(ctx context.Context, inputPath, outputPath string) error {
	cmd := exec.CommandContext(ctx, r.command, "-i", inputPath, "-o", outputPath)

	var stderr bytes.Buffer

	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}

		return err
	}

	return nil
}

func (c *Cmd) AfterApply() error {
	if c.runner == nil {
		c.runner = execRunner{command: processingCommand}
	}

	if c.out == nil {
		c.out = os.Stdout
	}

	if c.errOut == nil {
		c.errOut = os.Stderr
	}

	return nil
}

// Run processes the whole batch. One failing invocation does not stop the
// remaining items and does not surface as an error of the batch itself.
func (c *Cmd) Run() error {
	items, err := Discover(c.RootDir)
	if err != nil {
		return fmt.Errorf("failed to discover input files under %q: %w", c.RootDir, err)
	}

	ctx := context.Background()

	for _, item := range items {
		fmt.Fprintf(c.out, "Processing %s %s %s\n", item.InputPath, mappingStyle.Render("->"), item.OutputPath)

		if err = c.runner.Run(ctx, item.InputPath, item.OutputPath); err != nil {
			fmt.Fprintln(c.errOut, failureStyle.Render(fmt.Sprintf("Error processing %s: %s", item.InputPath, err)))
		}
	}

	return nil
}
