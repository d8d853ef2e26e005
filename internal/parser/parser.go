package parser

import (
	"errors"
	"strings"
	"unicode"

	"github.com/bft-labs/lagoon/internal/domain"
)

// fieldCount is the number of whitespace-separated fields on every line.
const fieldCount = 3

// ParseLine parses a single dig line with the given decoder.
// A nil decoder means HexDecoder.
func ParseLine(line string, d Decoder) (domain.Instruction, error) {
	return parseLine(0, line, d)
}

// Parse parses the whole input into a plan, one instruction per line.
// A trailing newline is ignored; blank lines elsewhere are malformed.
func Parse(text string, d Decoder) (domain.Plan, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Plan{}, &domain.ParseError{Kind: domain.EmptyInput}
	}

	lines := strings.Split(strings.TrimRightFunc(text, unicode.IsSpace), "\n")
	instructions := make([]domain.Instruction, 0, len(lines))
	for i, line := range lines {
		ins, err := parseLine(i+1, strings.TrimSuffix(line, "\r"), d)
		if err != nil {
			return domain.Plan{}, err
		}
		instructions = append(instructions, ins)
	}

	return domain.NewPlan(instructions), nil
}

func parseLine(lineNo int, line string, d Decoder) (domain.Instruction, error) {
	if d == nil {
		d = HexDecoder{}
	}

	fields := strings.Fields(line)
	if len(fields) != fieldCount {
		return domain.Instruction{}, &domain.ParseError{
			Kind:   domain.MalformedLine,
			Line:   lineNo,
			Input:  line,
			Reason: "expected 3 fields",
		}
	}

	ins, err := d.Decode(fields[0], fields[1], fields[2])
	if err != nil {
		var pe *domain.ParseError
		if errors.As(err, &pe) {
			pe.Line = lineNo
			pe.Input = line
		}
		return domain.Instruction{}, err
	}
	return ins, nil
}
