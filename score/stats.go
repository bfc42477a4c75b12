package score

import (
	"fmt"
	"math"
	"strings"

	"github.com/kxue43/pgn-clock/clock"
)

// SideStats aggregates one side's time usage over a game.
type SideStats struct {
	Count           int     `yaml:"moves"`
	TotalTime       float64 `yaml:"totalTime"`
	AvgTime         float64 `yaml:"avgTime"`
	StdDev          float64 `yaml:"stdDev"`
	Consistency     float64 `yaml:"consistency"`
	RecommendedAvg  float64 `yaml:"recommendedAvg"`
	EfficiencyRatio float64 `yaml:"efficiencyRatio"`
}

// Recommended average move time for segment remarks, based on a G/30 game
// budgeted at 40 moves per side.
const segmentRecommendedAvg = 45.0

// ComputeStats derives one side's aggregate statistics. The recommended
// average assumes the whole initial time is spread over 40 moves.
func ComputeStats(moves []Move, initialTime float64) SideStats {
	if len(moves) == 0 {
		return SideStats{}
	}

	s := SideStats{Count: len(moves)}

	for _, m := range moves {
		s.TotalTime += m.TimeUsed
	}

	s.AvgTime = s.TotalTime / float64(s.Count)

	var variance float64

	for _, m := range moves {
		d := m.TimeUsed - s.AvgTime
		variance += d * d
	}

	variance /= float64(s.Count)
	s.StdDev = math.Sqrt(variance)

	if s.AvgTime != 0 {
		s.Consistency = s.StdDev / s.AvgTime * 100
	}

	s.RecommendedAvg = initialTime / 40.0
	if s.RecommendedAvg != 0 {
		s.EfficiencyRatio = s.AvgTime / s.RecommendedAvg * 100
	}

	return s
}

// AnalyzeSegments splits a side's moves in half and comments on each half:
// the early game against the recommended average, the later game against the
// early game.
func AnalyzeSegments(moves []Move, recommendedAvg float64) (early, later string) {
	if len(moves) < 2 {
		return "Insufficient data for early game analysis.",
			"Insufficient data for later game analysis."
	}

	half := len(moves) / 2
	avgFirst := averageTime(moves[:half])
	avgSecond := averageTime(moves[half:])

	early = fmt.Sprintf("Early game average: %.1f s/move.", avgFirst)

	switch {
	case avgFirst < recommendedAvg*0.9:
		early += " Moves were notably faster than recommended."
	case avgFirst > recommendedAvg*1.1:
		early += " Moves were notably slower than recommended."
	default:
		early += " Early game move times were near optimal."
	}

	later = fmt.Sprintf("Later game average: %.1f s/move.", avgSecond)

	switch {
	case avgSecond < avgFirst*0.9:
		later += " Moves became significantly faster in the later game."
	case avgSecond > avgFirst*1.1:
		later += " Moves became significantly slower in the later game."
	default:
		later += " Later game move times remained consistent with the early game."
	}

	return early, later
}

// EfficiencyComment summarizes a clock efficiency ratio in a few words.
func EfficiencyComment(ratio float64) string {
	switch {
	case ratio < 90:
		return "playing too fast"
	case ratio > 110:
		return "playing too slow"
	default:
		return "using time optimally"
	}
}

// DetailedTable builds the per-move statistics table for one side. Each row
// shows the move, its time, cumulative and remaining clock time, the running
// average, the deviation from the overall average, and a pace remark at ±20%
// of the recommended average.
func DetailedTable(moves []Move, overallAvg, recommendedAvg, initialTime float64) []string {
	header := fmt.Sprintf(
		"%3s  %-8s  %7s  %10s  %10s  %12s  %8s  %10s",
		"No.", "Move", "Time(s)", "CumTime", "Remain", "AvgSoFar(s)", "Delta(%)", "Remark",
	)

	lines := []string{header, strings.Repeat("-", len(header))}

	var cum float64

	for i, m := range moves {
		cum += m.TimeUsed
		avgSoFar := cum / float64(i+1)
		remain := initialTime - cum

		var delta, recDelta float64

		if overallAvg != 0 {
			delta = (m.TimeUsed - overallAvg) / overallAvg * 100
		}

		if recommendedAvg != 0 {
			recDelta = (m.TimeUsed - recommendedAvg) / recommendedAvg * 100
		}

		remark := "optimal"

		switch {
		case recDelta < -20:
			remark = "fast"
		case recDelta > 20:
			remark = "slow"
		}

		lines = append(lines, fmt.Sprintf(
			"%3d  %-8s  %7.1f  %10s  %10s  %12.1f  %7.1f%%  %10s",
			i+1, m.SAN, m.TimeUsed, clock.FormatMMSS(cum), clock.FormatMMSS(remain), avgSoFar, delta, remark,
		))
	}

	return lines
}

func averageTime(moves []Move) float64 {
	var total float64

	for _, m := range moves {
		total += m.TimeUsed
	}

	return total / float64(len(moves))
}
