// Package parser turns dig plan text into a [domain.Plan].
//
// Every line has the shape
//
//	<letter> <decimal-number> (#<6-hex-digit-code>)
//
// The [HexDecoder] derives the instruction from the color code alone: the
// first five hex digits are the distance and the last digit is the direction
// (0=Right, 1=Down, 2=Left, 3=Up). The [LiteralDecoder] reads the letter and
// the decimal number instead.
//
// Parsing is all-or-nothing: the first bad line aborts with a
// [*domain.ParseError] and no partial plan is returned.
package parser
