// Package bagio parses .bag weighted-argumentation-graph descriptions.
package bagio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ZongshunWang/wagbgs/wag"
)

// ErrMalformedLine indicates an arg(...) or att(...) line that does not fit
// the grammar. The returned error wraps it together with the line number.
var ErrMalformedLine = errors.New("bagio: malformed line")

// Line grammar markers.
const (
	argPrefix   = "arg("
	attPrefix   = "att("
	lineSuffix  = ")"
	fieldComma  = ","
	fieldsCount = 2
)

// Parse reads a .bag description from r and builds the graph.
//
// Grammar (one declaration per line, surrounding whitespace ignored):
//
//	arg(name, weight)   — declare argument `name` with intrinsic weight
//	att(x, y)           — declare the attack x → y
//
// Any line matching neither form is skipped silently, as are blank lines.
// A line that starts like a declaration but cannot be split into exactly
// two fields — or whose weight is not a float — aborts the parse with
// ErrMalformedLine wrapped with its 1-based line number.
// Complexity: O(L) over input lines
func Parse(r io.Reader) (*wag.Graph, error) {
	g := wag.NewGraph()
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, argPrefix) && strings.HasSuffix(line, lineSuffix):
			name, weightStr, err := splitPair(line, argPrefix)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			w, err := strconv.ParseFloat(weightStr, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: weight %q", lineNo, ErrMalformedLine, weightStr)
			}
			if err = g.AddArgument(name, w); err != nil {
				return nil, fmt.Errorf("line %d: %w: %v", lineNo, ErrMalformedLine, err)
			}

		case strings.HasPrefix(line, attPrefix) && strings.HasSuffix(line, lineSuffix):
			attacker, attacked, err := splitPair(line, attPrefix)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if err = g.AddAttack(attacker, attacked); err != nil {
				return nil, fmt.Errorf("line %d: %w: %v", lineNo, ErrMalformedLine, err)
			}

		default:
			// Not a declaration; ignored by the grammar.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("bagio: read: %w", err)
	}

	return g, nil
}

// ParseFile opens path and parses it as a .bag description.
func ParseFile(path string) (*wag.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bagio: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// splitPair strips `prefix` and the closing parenthesis from line and splits
// the remainder on the comma into exactly two trimmed fields.
func splitPair(line, prefix string) (string, string, error) {
	content := strings.TrimSuffix(strings.TrimPrefix(line, prefix), lineSuffix)
	parts := strings.Split(content, fieldComma)
	if len(parts) != fieldsCount {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}
