package score

import (
	"fmt"
	"io"
	"strings"
)

type (
	// Report is the fully analyzed form of one game, ready for rendering.
	Report struct {
		Game       *Game
		White      SideStats
		Black      SideStats
		whiteMoves []Move
		blackMoves []Move
	}

	// Summary is the machine-readable digest of a report.
	Summary struct {
		White       string    `yaml:"white"`
		Black       string    `yaml:"black"`
		Result      string    `yaml:"result"`
		TimeControl string    `yaml:"timeControl"`
		WhiteStats  SideStats `yaml:"whiteStats"`
		BlackStats  SideStats `yaml:"blackStats"`
	}
)

// BuildReport computes both sides' statistics for a game.
func BuildReport(g *Game) *Report {
	r := &Report{Game: g}

	r.whiteMoves, r.blackMoves = SplitSides(g.Moves)
	r.White = ComputeStats(r.whiteMoves, g.InitialTime)
	r.Black = ComputeStats(r.blackMoves, g.InitialTime)

	return r
}

// Summary returns the YAML-serializable digest of the report.
func (r *Report) Summary() Summary {
	return Summary{
		White:       r.Game.White,
		Black:       r.Game.Black,
		Result:      r.Game.Result,
		TimeControl: r.Game.TimeControl,
		WhiteStats:  r.White,
		BlackStats:  r.Black,
	}
}

// WriteText renders the plain text report: header block, combined move list,
// detailed per-move tables and the game analysis.
func (r *Report) WriteText(w io.Writer) (err error) {
	g := r.Game

	_, err = fmt.Fprintf(w, "%s\n\nGame Moves:\n", r.headerBlock())
	if err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	for _, line := range ScoreLines(g.Moves) {
		if _, err = fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write move line: %w", err)
		}
	}

	if _, err = fmt.Fprint(w, "\nDetailed Move Statistics:\n\nWhite Moves:\n"); err != nil {
		return fmt.Errorf("failed to write statistics section: %w", err)
	}

	for _, line := range DetailedTable(r.whiteMoves, r.White.AvgTime, r.White.RecommendedAvg, g.InitialTime) {
		if _, err = fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write statistics row: %w", err)
		}
	}

	if _, err = fmt.Fprint(w, "\nBlack Moves:\n"); err != nil {
		return fmt.Errorf("failed to write statistics section: %w", err)
	}

	for _, line := range DetailedTable(r.blackMoves, r.Black.AvgTime, r.Black.RecommendedAvg, g.InitialTime) {
		if _, err = fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write statistics row: %w", err)
		}
	}

	if _, err = fmt.Fprintln(w); err != nil {
		return err
	}

	for _, line := range r.analysisLines() {
		if _, err = fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write analysis line: %w", err)
		}
	}

	return nil
}

// WriteMarkdown renders the same content as WriteText with GFM headings and
// tables, suitable for pgnclock-show.
func (r *Report) WriteMarkdown(w io.Writer) (err error) {
	g := r.Game

	_, err = fmt.Fprintf(
		w,
		"# %s (%s) vs %s (%s)\n\n- Game Type: %s\n- Time Control: %s sec, End Time: %s, PlyCount: %s\n- Result: %s\n\n## Game Moves\n\n",
		g.White, g.WhiteElo, g.Black, g.BlackElo, g.Event, g.TimeControl, g.EndTime, g.PlyCount, g.Result,
	)
	if err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	for _, line := range ScoreLines(g.Moves) {
		if _, err = fmt.Fprintf(w, "%s  \n", line); err != nil {
			return fmt.Errorf("failed to write move line: %w", err)
		}
	}

	if _, err = fmt.Fprint(w, "\n## Detailed Move Statistics\n\n### White Moves\n\n"); err != nil {
		return fmt.Errorf("failed to write statistics section: %w", err)
	}

	if err = writeMarkdownTable(w, r.whiteMoves, r.White, g.InitialTime); err != nil {
		return err
	}

	if _, err = fmt.Fprint(w, "\n### Black Moves\n\n"); err != nil {
		return fmt.Errorf("failed to write statistics section: %w", err)
	}

	if err = writeMarkdownTable(w, r.blackMoves, r.Black, g.InitialTime); err != nil {
		return err
	}

	if _, err = fmt.Fprint(w, "\n## Game Analysis\n\n"); err != nil {
		return fmt.Errorf("failed to write analysis section: %w", err)
	}

	for _, line := range r.analysisLines()[2:] {
		if line == "" {
			line = "\n"
		} else {
			line = strings.TrimLeft(line, " ") + "  \n"
		}

		if _, err = io.WriteString(w, line); err != nil {
			return fmt.Errorf("failed to write analysis line: %w", err)
		}
	}

	return nil
}

func (r *Report) headerBlock() string {
	g := r.Game

	return fmt.Sprintf(
		"%s (%s) vs %s (%s)\nGame Type: %s\nTime Control: %s sec, End Time: %s, PlyCount: %s\nResult: %s",
		g.White, g.WhiteElo, g.Black, g.BlackElo, g.Event, g.TimeControl, g.EndTime, g.PlyCount, g.Result,
	)
}

func (r *Report) analysisLines() []string {
	g := r.Game

	earlyWhite, laterWhite := AnalyzeSegments(r.whiteMoves, segmentRecommendedAvg)
	earlyBlack, laterBlack := AnalyzeSegments(r.blackMoves, segmentRecommendedAvg)

	lines := []string{"Game Analysis:", ""}

	lines = append(lines, sideAnalysisLines("White", g.White, g.WhiteElo, r.White, earlyWhite, laterWhite)...)
	lines = append(lines, "")
	lines = append(lines, sideAnalysisLines("Black", g.Black, g.BlackElo, r.Black, earlyBlack, laterBlack)...)

	lines = append(lines, "",
		fmt.Sprintf(
			"Overall Performance (White): Averaged %.1f s/move (clock efficiency: %.1f%%). %s",
			r.White.AvgTime, r.White.EfficiencyRatio, performanceSentence("White", r.White.EfficiencyRatio),
		),
		fmt.Sprintf(
			"Overall Performance (Black): Averaged %.1f s/move (clock efficiency: %.1f%%). %s",
			r.Black.AvgTime, r.Black.EfficiencyRatio, performanceSentence("Black", r.Black.EfficiencyRatio),
		),
		"",
		combinedComment(r.White, r.Black),
	)

	return lines
}

func sideAnalysisLines(side, name, elo string, s SideStats, early, later string) []string {
	return []string{
		fmt.Sprintf("%s: %s (%s)", side, name, elo),
		fmt.Sprintf("  Moves played: %d", s.Count),
		fmt.Sprintf("  Total time used: %.1f s", s.TotalTime),
		fmt.Sprintf("  Average move time: %.1f s", s.AvgTime),
		fmt.Sprintf("  Clock consistency (std dev/avg): %.1f%%", s.Consistency),
		fmt.Sprintf("  Recommended average move time (based on 40 moves): %.1f s", s.RecommendedAvg),
		fmt.Sprintf("  Clock efficiency: %.1f%% (%s)", s.EfficiencyRatio, EfficiencyComment(s.EfficiencyRatio)),
		fmt.Sprintf("  Early game analysis: %s", early),
		fmt.Sprintf("  Later game analysis: %s", later),
	}
}

func performanceSentence(side string, ratio float64) string {
	if side == "White" {
		switch {
		case ratio < 90:
			return "This extremely low clock efficiency indicates highly aggressive, instinct-driven play."
		case ratio > 110:
			return "This high clock efficiency suggests a very cautious and deliberate approach."
		default:
			return "This balanced clock efficiency indicates measured and thoughtful time management."
		}
	}

	switch {
	case ratio < 90:
		return "This low clock efficiency indicates rapid, aggressive decision-making."
	case ratio > 110:
		return "This high clock efficiency suggests a very careful, perhaps overly cautious, approach."
	default:
		return "This balanced clock efficiency indicates a well-calibrated use of time."
	}
}

func combinedComment(white, black SideStats) string {
	switch {
	case white.EfficiencyRatio < 90 && black.EfficiencyRatio < 90:
		return "Combined, the rapid and variable play suggests aggressive, intuitive decision-making from both sides."
	case white.EfficiencyRatio > 110 && black.EfficiencyRatio > 110:
		return "Combined, both sides favored slow, deliberate play and heavy time investment."
	default:
		return "Combined, the two sides show contrasting approaches to clock management."
	}
}

func writeMarkdownTable(w io.Writer, moves []Move, s SideStats, initialTime float64) (err error) {
	if _, err = fmt.Fprintln(w, "| No. | Move | Time(s) | CumTime | Remain | AvgSoFar(s) | Delta(%) | Remark |"); err != nil {
		return fmt.Errorf("failed to write table header: %w", err)
	}

	if _, err = fmt.Fprintln(w, "| --- | --- | --- | --- | --- | --- | --- | --- |"); err != nil {
		return fmt.Errorf("failed to write table header: %w", err)
	}

	// Reuse the text table rows; the fixed-width columns are already
	// whitespace separated.
	for _, line := range DetailedTable(moves, s.AvgTime, s.RecommendedAvg, initialTime)[2:] {
		fields := strings.Fields(line)
		if _, err = fmt.Fprintf(w, "| %s |\n", strings.Join(fields, " | ")); err != nil {
			return fmt.Errorf("failed to write table row: %w", err)
		}
	}

	return nil
}
