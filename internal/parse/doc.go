// Package parse turns the text of the input file into numbers.
//
// The text is split into lines and each line is read as a decimal literal:
//
//	[+-]digits[.digits][(e|E)[+-]digits]
//
// followed only by optional whitespace. Failures are reported as
// *model.ParseError values, and ParseLines tags the first failing line with
// its 1-based line number as a *model.LineError.
package parse
