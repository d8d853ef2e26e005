package parser

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/bft-labs/lagoon/internal/domain"
)

// Decoder names accepted by DecoderByName.
const (
	HexName     = "hex"
	LiteralName = "literal"
)

// colorLen is len("(#rrggbb)").
const colorLen = 9

// Decoder turns the three fields of a dig line into an instruction.
// Returned errors are *domain.ParseError without line information.
type Decoder interface {
	Name() string
	Decode(letter, number, color string) (domain.Instruction, error)
}

// HexDecoder reads direction and distance from the color code.
type HexDecoder struct{}

// Name returns the decoder identifier.
func (HexDecoder) Name() string { return HexName }

// Decode extracts the instruction from a "(#xxxxxd)" token.
func (HexDecoder) Decode(_, _, color string) (domain.Instruction, error) {
	code, ok := colorCode(color)
	if !ok {
		return domain.Instruction{}, &domain.ParseError{
			Kind:   domain.MalformedLine,
			Reason: fmt.Sprintf("bad color code %q", color),
		}
	}

	dist, err := strconv.ParseUint(code[:5], 16, 32)
	if err != nil {
		return domain.Instruction{}, &domain.ParseError{
			Kind:   domain.MalformedLine,
			Reason: fmt.Sprintf("bad distance %q", code[:5]),
		}
	}

	dir, ok := domain.DirectionFromDigit(code[5])
	if !ok {
		return domain.Instruction{}, &domain.ParseError{
			Kind:   domain.InvalidDirection,
			Reason: fmt.Sprintf("direction digit %q", code[5]),
		}
	}

	return domain.Instruction{Direction: dir, Distance: int64(dist)}, nil
}

// colorCode strips the "(#" prefix and ")" suffix.
func colorCode(field string) (string, bool) {
	if len(field) != colorLen || !strings.HasPrefix(field, "(#") || !strings.HasSuffix(field, ")") {
		return "", false
	}
	return field[2 : colorLen-1], true
}

// LiteralDecoder reads direction from the letter field and distance from the
// decimal field. The color code is required to be present but is not used.
type LiteralDecoder struct{}

// Name returns the decoder identifier.
func (LiteralDecoder) Name() string { return LiteralName }

// Decode extracts the instruction from the letter and number fields.
func (LiteralDecoder) Decode(letter, number, _ string) (domain.Instruction, error) {
	dir, ok := domain.DirectionFromLetter(letter)
	if !ok {
		return domain.Instruction{}, &domain.ParseError{
			Kind:   domain.InvalidDirection,
			Reason: fmt.Sprintf("direction letter %q", letter),
		}
	}

	dist, err := strconv.ParseUint(number, 10, 32)
	if err != nil {
		return domain.Instruction{}, &domain.ParseError{
			Kind:   domain.MalformedLine,
			Reason: fmt.Sprintf("bad distance %q", number),
		}
	}

	return domain.Instruction{Direction: dir, Distance: int64(dist)}, nil
}

var decoders = map[string]Decoder{
	HexName:     HexDecoder{},
	LiteralName: LiteralDecoder{},
}

// DecoderByName returns the decoder registered under name.
func DecoderByName(name string) (Decoder, error) {
	d, ok := decoders[name]
	if !ok {
		return nil, fmt.Errorf("unknown decoder %q (want one of %s)", name, strings.Join(DecoderNames(), ", "))
	}
	return d, nil
}

// DecoderNames returns the registered decoder names in sorted order.
func DecoderNames() []string {
	names := make([]string, 0, len(decoders))
	for n := range decoders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
