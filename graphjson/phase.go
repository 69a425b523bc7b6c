// File: phase.go
// Role: Phase literal grammar used by the "value" field of node vertices.
//
// Accepted forms (all in units of π):
//
//	""  0  1  \pi  pi  π  -\pi/2  3\pi/4  3*\pi/4  1/2  0.25  -0.5
//
// A literal without a π symbol is read as a multiple of π, following the
// fraction convention of pyzx ("1/2" is π/2).

package graphjson

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/katalvlaran/zxrewrite/diagram"
)

var phaseLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Pi", Pattern: `\\pi|pi|π`},
	{Name: "Number", Pattern: `\d+(?:\.\d+)?`},
	{Name: "Punct", Pattern: `[-+*/]`},
	{Name: "whitespace", Pattern: `\s+`},
})

// phaseExpr is  [sign] [coeff] ['*'] [pi] ['/' den].
type phaseExpr struct {
	Neg   bool    `parser:"( @'-' | '+' )?"`
	Coeff *string `parser:"@Number?"`
	Star  bool    `parser:"@'*'?"`
	Pi    bool    `parser:"@Pi?"`
	Den   *string `parser:"( '/' @Number )?"`
}

var phaseParser = participle.MustBuild[phaseExpr](participle.Lexer(phaseLexer))

// ParsePhase parses a phase literal into a canonical diagram.Phase.
// Errors wrap ErrBadPhase.
func ParsePhase(s string) (diagram.Phase, error) {
	if strings.TrimSpace(s) == "" {
		return diagram.Phase{}, nil
	}
	expr, err := phaseParser.ParseString("", s)
	if err != nil {
		return diagram.Phase{}, fmt.Errorf("%q: %v: %w", s, err, ErrBadPhase)
	}
	if expr.Coeff == nil && !expr.Pi {
		return diagram.Phase{}, fmt.Errorf("%q: missing coefficient: %w", s, ErrBadPhase)
	}
	if expr.Star && (expr.Coeff == nil || !expr.Pi) {
		return diagram.Phase{}, fmt.Errorf("%q: '*' must join a coefficient and π: %w", s, ErrBadPhase)
	}

	val := big.NewRat(1, 1)
	if expr.Coeff != nil {
		if _, ok := val.SetString(*expr.Coeff); !ok {
			return diagram.Phase{}, fmt.Errorf("%q: bad coefficient: %w", s, ErrBadPhase)
		}
	}
	if expr.Den != nil {
		den, ok := new(big.Rat).SetString(*expr.Den)
		if !ok || den.Sign() == 0 {
			return diagram.Phase{}, fmt.Errorf("%q: bad denominator: %w", s, ErrBadPhase)
		}
		val.Quo(val, den)
	}
	if expr.Neg {
		val.Neg(val)
	}
	p, err := diagram.PhaseFromRat(val)
	if err != nil {
		return diagram.Phase{}, fmt.Errorf("%q: %v: %w", s, err, ErrBadPhase)
	}

	return p, nil
}

// FormatPhase renders p the way pyzx writes it: "0", "\pi", "\pi/2", "3\pi/4".
func FormatPhase(p diagram.Phase) string {
	num, den := p.Num(), p.Den()
	var b strings.Builder
	switch num {
	case 0:
		return "0"
	case 1:
		b.WriteString(`\pi`)
	default:
		fmt.Fprintf(&b, `%d\pi`, num)
	}
	if den != 1 {
		fmt.Fprintf(&b, "/%d", den)
	}

	return b.String()
}
