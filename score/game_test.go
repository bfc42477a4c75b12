package score

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePGN = `[Event "Live Chess"]
[Site "Chess.com"]
[White "alice"]
[Black "bob"]
[WhiteElo "1500"]
[BlackElo "1400"]
[Result "1-0"]
[TimeControl "1800"]
[EndTime "12:34:56 PDT"]

1. e4 {[%clk 0:29:55]} e5 {[%clk 0:29:50]} 2. Nf3 {[%clk 0:29:45.5]} Nc6 {[%clk 0:29:40]} 1-0
`

func TestReadGame(t *testing.T) {
	g, err := ReadGame(strings.NewReader(samplePGN))
	require.NoError(t, err)

	assert.Equal(t, "alice", g.White)
	assert.Equal(t, "bob", g.Black)
	assert.Equal(t, "1500", g.WhiteElo)
	assert.Equal(t, "1400", g.BlackElo)
	assert.Equal(t, "1-0", g.Result)
	assert.Equal(t, "Live Chess", g.Event)
	assert.Equal(t, "1800", g.TimeControl)
	assert.Equal(t, "12:34:56 PDT", g.EndTime)
	assert.Equal(t, "Unknown", g.PlyCount)
	assert.InDelta(t, 1800, g.InitialTime, 1e-9)

	require.Len(t, g.Moves, 4)

	assert.Equal(t, Move{Side: "W", SAN: "e4", TimeUsed: 5}, roundMove(g.Moves[0]))
	assert.Equal(t, Move{Side: "B", SAN: "e5", TimeUsed: 10}, roundMove(g.Moves[1]))
	assert.Equal(t, "Nf3", g.Moves[2].SAN)
	assert.InDelta(t, 9.5, g.Moves[2].TimeUsed, 1e-9)
	assert.Equal(t, Move{Side: "B", SAN: "Nc6", TimeUsed: 10}, roundMove(g.Moves[3]))
}

// roundMove clears float noise so moves compare with Equal.
func roundMove(m Move) Move {
	m.TimeUsed = float64(int(m.TimeUsed*10+0.5)) / 10

	return m
}

func TestReadGameWithoutClockAnnotations(t *testing.T) {
	pgn := `[White "alice"]
[Black "bob"]
[Result "*"]

1. d4 d5 2. c4 {[%clk 0:28:00]} *
`

	g, err := ReadGame(strings.NewReader(pgn))
	require.NoError(t, err)

	// TimeControl header is absent; the default budget applies.
	assert.InDelta(t, 1800, g.InitialTime, 1e-9)
	assert.Equal(t, "Unknown", g.TimeControl)

	require.Len(t, g.Moves, 3)

	// Unannotated moves use zero time and leave the running clock alone.
	assert.InDelta(t, 0, g.Moves[0].TimeUsed, 1e-9)
	assert.InDelta(t, 0, g.Moves[1].TimeUsed, 1e-9)
	assert.InDelta(t, 120, g.Moves[2].TimeUsed, 1e-9)
}

func TestReadGameNonNumericTimeControl(t *testing.T) {
	pgn := `[White "alice"]
[Black "bob"]
[TimeControl "600+5"]
[Result "*"]

1. e4 {[%clk 0:09:55]} *
`

	g, err := ReadGame(strings.NewReader(pgn))
	require.NoError(t, err)

	// "600+5" does not parse as a plain number of seconds.
	assert.InDelta(t, 1800, g.InitialTime, 1e-9)
}

func TestReadGameRejectsGarbage(t *testing.T) {
	_, err := ReadGame(strings.NewReader("this is not a PGN file"))
	assert.Error(t, err)
}

func TestSplitSides(t *testing.T) {
	moves := []Move{
		{Side: "W", SAN: "e4"},
		{Side: "B", SAN: "e5"},
		{Side: "W", SAN: "Nf3"},
	}

	white, black := SplitSides(moves)

	require.Len(t, white, 2)
	require.Len(t, black, 1)
	assert.Equal(t, "Nf3", white[1].SAN)
	assert.Equal(t, "e5", black[0].SAN)
}

func TestScoreLines(t *testing.T) {
	moves := []Move{
		{Side: "W", SAN: "e4", TimeUsed: 5},
		{Side: "B", SAN: "e5", TimeUsed: 10},
		{Side: "W", SAN: "Nf3", TimeUsed: 9.5},
	}

	lines := ScoreLines(moves)

	require.Len(t, lines, 2)
	assert.Equal(t, "1. e4 (5.0s) e5 (10.0s)", lines[0])
	assert.Equal(t, "2. Nf3 (9.5s)", lines[1])
}

func TestScoreLinesBlackStarts(t *testing.T) {
	// A game fragment starting from Black's move still pairs correctly.
	moves := []Move{
		{Side: "B", SAN: "e5", TimeUsed: 4},
		{Side: "W", SAN: "Nf3", TimeUsed: 6},
	}

	lines := ScoreLines(moves)

	require.Len(t, lines, 2)
	assert.Equal(t, "1. e5 (4.0s)", lines[0])
	assert.Equal(t, "2. Nf3 (6.0s)", lines[1])
}
