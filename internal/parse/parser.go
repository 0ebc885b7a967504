package parse

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/mmr-tortoise/minmax/internal/model"
)

// SplitLines splits text into lines on "\n", dropping one trailing "\r"
// from each line so files written with CRLF separators parse the same way.
// A trailing newline does not produce an empty final line, and empty text
// yields no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// ParseNumber reads a decimal literal from the start of text.
//
// If no literal can be read, the error is ParseInvalidNumber carrying the
// original text. If non-whitespace text follows the literal, the error is
// ParseTrailingInput carrying everything after the literal.
func ParseNumber(text string) (float64, *model.ParseError) {
	n := scanLiteral(text)
	if n == 0 {
		return 0, &model.ParseError{Kind: model.ParseInvalidNumber, Text: text}
	}

	value, err := strconv.ParseFloat(text[:n], 64)
	if err != nil {
		// The syntax was already accepted, so this is ErrRange: the literal
		// overflows float64 and is not a usable number.
		return 0, &model.ParseError{Kind: model.ParseInvalidNumber, Text: text}
	}

	rest := text[n:]
	if strings.TrimFunc(rest, unicode.IsSpace) != "" {
		return 0, &model.ParseError{Kind: model.ParseTrailingInput, Text: rest}
	}
	return value, nil
}

// ParseLines parses every line of text. All lines are attempted, but only
// the first failing line is reported. Empty text yields an empty slice.
func ParseLines(text string) ([]float64, error) {
	values, lineErrs := ParseAll(text)
	if len(lineErrs) > 0 {
		return nil, lineErrs[0]
	}
	return values, nil
}

// ParseAll parses every line of text and returns the values of the lines
// that parsed along with one LineError per line that did not, in line order.
func ParseAll(text string) ([]float64, []*model.LineError) {
	lines := SplitLines(text)
	values := make([]float64, 0, len(lines))
	var lineErrs []*model.LineError

	for i, line := range lines {
		value, perr := ParseNumber(line)
		if perr != nil {
			lineErrs = append(lineErrs, &model.LineError{Line: i + 1, Err: perr})
			continue
		}
		values = append(values, value)
	}
	return values, lineErrs
}

// scanLiteral returns the length of the decimal literal at the start of s,
// or 0 when s does not start with one. A "." or exponent marker that is not
// followed by digits is left unconsumed.
func scanLiteral(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := countDigits(s[i:])
	if digits == 0 {
		return 0
	}
	i += digits

	if i < len(s) && s[i] == '.' {
		if frac := countDigits(s[i+1:]); frac > 0 {
			i += 1 + frac
		}
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if exp := countDigits(s[j:]); exp > 0 {
			i = j + exp
		}
	}
	return i
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}
