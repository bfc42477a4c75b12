package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/alecthomas/kong"
	"github.com/pkg/browser"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed report.style.tmplt
var reportStyleTemplate string

type CLI struct {
	ReportPath string `arg:"" name:"ReportPath" type:"existingfile" help:"Path to a Markdown game report produced by 'pgnclock score --format markdown'."`
}

func (c *CLI) Run() error {
	source, err := os.ReadFile(filepath.Clean(c.ReportPath))
	if err != nil {
		return fmt.Errorf("failed to read report file at %q: %w", c.ReportPath, err)
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var html, out bytes.Buffer

	if err = md.Convert(source, &html); err != nil {
		return fmt.Errorf("failed to convert report to HTML: %w", err)
	}

	tmplt, err := template.New("report.style").Parse(reportStyleTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse report style template: %w", err)
	}

	if err = tmplt.Execute(&out, html.String()); err != nil {
		return fmt.Errorf("failed to insert converted HTML into style template: %w", err)
	}

	if err = browser.OpenReader(&out); err != nil {
		return fmt.Errorf("failed to open rendered report in default browser: %w", err)
	}

	return nil
}

func main() {
	var cli CLI

	ctx := kong.Parse(
		&cli,
		kong.Name("pgnclock-show"),
		kong.Description("Render a Markdown game report as HTML and show it in the default browser."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
