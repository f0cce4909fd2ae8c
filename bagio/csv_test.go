package bagio_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/ZongshunWang/wagbgs/bagio"
	"github.com/ZongshunWang/wagbgs/semantics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteFinalCSV checks header, row order and exact value formatting.
func TestWriteFinalCSV(t *testing.T) {
	final := semantics.State{
		"b": {F: 0.3, G: 0},
		"a": {F: 0.25, G: 0.5},
	}

	var buf bytes.Buffer
	require.NoError(t, bagio.WriteFinalCSV(&buf, final, []string{"a", "b"}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Argument", "f(a)", "g(a)"},
		{"a", "0.25", "0.5"},
		{"b", "0.3", "0"},
	}, rows)
}

// TestWriteTraceCSV checks round-major then argument-sorted row ordering.
func TestWriteTraceCSV(t *testing.T) {
	trace := []semantics.RoundSnapshot{
		{Round: 1, State: semantics.State{"a": {F: 0.5, G: 0.25}, "b": {F: 0.3, G: 0}}},
		{Round: 2, State: semantics.State{"a": {F: 0.4, G: 0.375}, "b": {F: 0.3, G: 0}}},
	}

	var buf bytes.Buffer
	require.NoError(t, bagio.WriteTraceCSV(&buf, trace, []string{"a", "b"}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Iteration", "Argument", "f(a)", "g(a)"},
		{"1", "a", "0.5", "0.25"},
		{"1", "b", "0.3", "0"},
		{"2", "a", "0.4", "0.375"},
		{"2", "b", "0.3", "0"},
	}, rows)
}

// TestOutputPaths checks the conventional file naming beside the input.
func TestOutputPaths(t *testing.T) {
	assert.Equal(t, "bench/g1_arm_iter.csv", bagio.TracePath("bench/g1.bag", semantics.ARM))
	assert.Equal(t, "bench/g1_arc_final.csv", bagio.FinalPath("bench/g1.bag", semantics.ARC))
	assert.Equal(t, "g2_arh_final.csv", bagio.FinalPath("g2.bag", semantics.ARH))
}

// TestRoundTrip parses, solves and records a tiny graph end to end.
func TestRoundTrip(t *testing.T) {
	g, err := bagio.Parse(bytes.NewReader([]byte("arg(a, 0.6)\narg(b, 0.3)\natt(b, a)\n")))
	require.NoError(t, err)

	res, err := semantics.Solve(g, semantics.WithSemantics(semantics.ARM))
	require.NoError(t, err)

	var final, trace bytes.Buffer
	require.NoError(t, bagio.WriteFinalCSV(&final, res.Final, g.Arguments()))
	require.NoError(t, bagio.WriteTraceCSV(&trace, res.Trace, g.Arguments()))

	finalRows, err := csv.NewReader(&final).ReadAll()
	require.NoError(t, err)
	assert.Len(t, finalRows, 1+g.Order(), "header plus one row per argument")

	traceRows, err := csv.NewReader(&trace).ReadAll()
	require.NoError(t, err)
	assert.Len(t, traceRows, 1+res.Rounds*g.Order(), "header plus rounds×arguments rows")
}
