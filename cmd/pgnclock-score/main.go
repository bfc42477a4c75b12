package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/kxue43/pgn-clock/score"
	"github.com/kxue43/pgn-clock/version"
)

var (
	logger = log.New(os.Stderr, "pgnclock-score: ", 0)

	inputPath   string
	outputPath  string
	format      string
	summaryPath string
	showVersion bool

	helpMsg = `Usage: %s -i <INPUT> -o <OUTPUT> [flags]

Generate a game score with move times, detailed per-move statistics, and
analysis from a PGN file annotated with [%%clk] comments.

Flags:
`
)

func main() {
	flag.StringVar(&inputPath, "i", "", "Input PGN file with move time information.")
	flag.StringVar(&outputPath, "o", "", "Output text file for the game score and analysis.")
	flag.StringVar(&format, "format", "text", "Report format, one of: text, markdown.")
	flag.StringVar(&summaryPath, "summary", "", "Also write a YAML statistics summary to this path.")
	flag.BoolVar(&showVersion, "version", false, "Show version information and quit.")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(flag.CommandLine.Output(), helpMsg, os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		_, _ = fmt.Fprintln(flag.CommandLine.Output(), version.FromBuildInfo())

		os.Exit(0)
	}

	if inputPath == "" || outputPath == "" {
		flag.Usage()

		os.Exit(1)
	}

	var f score.Format

	if err := f.UnmarshalText([]byte(format)); err != nil {
		logger.Fatalf("%s", err)
	}

	if stat, err := os.Stat(filepath.Clean(inputPath)); os.IsNotExist(err) || (err == nil && stat.IsDir()) {
		logger.Fatalf("The input path %q doesn't exist or is a directory.", inputPath)
	}

	err := score.Generate(inputPath, outputPath, f, summaryPath, os.Stdout)
	if err != nil {
		logger.Fatalf("%s", err)
	}
}
