package score

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/notnil/chess"

	"github.com/kxue43/pgn-clock/clock"
)

type (
	// Move is one half-move with the wall-clock time its side spent on it.
	Move struct {
		Side     string // "W" or "B"
		SAN      string
		TimeUsed float64
	}

	// Game carries the headers and timed moves of one PGN game.
	Game struct {
		White       string
		Black       string
		WhiteElo    string
		BlackElo    string
		Result      string
		Event       string
		TimeControl string
		EndTime     string
		PlyCount    string
		InitialTime float64
		Moves       []Move
	}
)

const defaultInitialTime = 1800.0

var clkRegex = regexp.MustCompile(`\[%clk\s+([^\s\]]+)\]`)

// ReadGame parses the first game from a PGN stream and extracts per-move
// times from its [%clk] annotations. A move without a parseable annotation
// gets a zero time and leaves the side's running clock untouched.
func ReadGame(r io.Reader) (*Game, error) {
	update, err := chess.PGN(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PGN: %w", err)
	}

	pgnGame := chess.NewGame(update)

	g := &Game{
		White:       tagValue(pgnGame, "White", "White"),
		Black:       tagValue(pgnGame, "Black", "Black"),
		WhiteElo:    tagValue(pgnGame, "WhiteElo", "N/A"),
		BlackElo:    tagValue(pgnGame, "BlackElo", "N/A"),
		Result:      tagValue(pgnGame, "Result", "?"),
		Event:       tagValue(pgnGame, "Event", "Unknown"),
		TimeControl: tagValue(pgnGame, "TimeControl", "Unknown"),
		EndTime:     tagValue(pgnGame, "EndTime", "Unknown"),
		PlyCount:    tagValue(pgnGame, "PlyCount", "Unknown"),
	}

	g.InitialTime = defaultInitialTime
	if t, err1 := strconv.ParseFloat(tagValue(pgnGame, "TimeControl", ""), 64); err1 == nil {
		g.InitialTime = t
	}

	moves := pgnGame.Moves()
	positions := pgnGame.Positions()
	comments := pgnGame.Comments()

	whitePrev := g.InitialTime
	blackPrev := g.InitialTime
	notation := chess.AlgebraicNotation{}

	for i, move := range moves {
		side := "B"
		if positions[i].Turn() == chess.White {
			side = "W"
		}

		remaining, ok := clockFromComments(comments, i)

		var timeUsed float64

		if ok {
			if side == "W" {
				timeUsed = whitePrev - remaining
				whitePrev = remaining
			} else {
				timeUsed = blackPrev - remaining
				blackPrev = remaining
			}
		}

		g.Moves = append(g.Moves, Move{
			Side:     side,
			SAN:      notation.Encode(positions[i], move),
			TimeUsed: timeUsed,
		})
	}

	return g, nil
}

// SplitSides partitions moves into White's and Black's, preserving order.
func SplitSides(moves []Move) (white, black []Move) {
	for _, m := range moves {
		if m.Side == "W" {
			white = append(white, m)
		} else {
			black = append(black, m)
		}
	}

	return white, black
}

// ScoreLines renders the combined move list, pairing White's and Black's
// half-moves under one move number, each with the time it took.
func ScoreLines(moves []Move) []string {
	var lines []string

	moveNumber := 1

	for i := 0; i < len(moves); {
		var sb strings.Builder

		fmt.Fprintf(&sb, "%d.", moveNumber)

		if moves[i].Side == "W" {
			fmt.Fprintf(&sb, " %s (%.1fs)", moves[i].SAN, moves[i].TimeUsed)
			i++
		}

		if i < len(moves) && moves[i].Side == "B" {
			fmt.Fprintf(&sb, " %s (%.1fs)", moves[i].SAN, moves[i].TimeUsed)
			i++
		}

		lines = append(lines, sb.String())
		moveNumber++
	}

	return lines
}

func clockFromComments(comments [][]string, i int) (seconds float64, ok bool) {
	if i >= len(comments) {
		return 0, false
	}

	for _, comment := range comments[i] {
		m := clkRegex.FindStringSubmatch(comment)
		if m == nil {
			continue
		}

		seconds, err := clock.Parse(m[1])
		if err != nil {
			continue
		}

		return seconds, true
	}

	return 0, false
}

func tagValue(g *chess.Game, name, fallback string) string {
	if tp := g.GetTagPair(name); tp != nil && tp.Value != "" {
		return tp.Value
	}

	return fallback
}
