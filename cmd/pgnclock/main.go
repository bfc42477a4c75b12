package main

import (
	"github.com/alecthomas/kong"

	"github.com/kxue43/pgn-clock/batch"
	"github.com/kxue43/pgn-clock/score"
	"github.com/kxue43/pgn-clock/version"
)

func main() {
	var cli struct {
		Batch   batch.Cmd        `cmd:"" name:"batch" help:"Process every *_movetimes.pgn file under a directory into a *_clock.txt report."`
		Score   score.Cmd        `cmd:"" name:"score" help:"Generate a game score with move times and analysis from one PGN file."`
		Version kong.VersionFlag `name:"version" help:"Show version information and quit."`
	}

	ctx := kong.Parse(
		&cli,
		kong.Name("pgnclock"),
		kong.Description("Chess clock analysis toolkit for PGN files with move time annotations."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": version.FromBuildInfo()},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
