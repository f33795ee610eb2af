package grammar

import (
	"errors"
	"strconv"

	"github.com/npillmayer/tcalc"
)

// VariableSource is a read-only view onto the variables visible to an
// evaluation. Implementations must not be mutated while an evaluation is
// in flight; the evaluator itself never mutates them.
type VariableSource interface {
	Lookup(name string) (tcalc.Value, bool)
}

// MapSource wraps a plain map as a VariableSource.
type MapSource map[string]tcalc.Value

// Lookup returns the value bound to name, if any.
func (m MapSource) Lookup(name string) (tcalc.Value, bool) {
	v, ok := m[name]
	return v, ok
}

// Evaluate evaluates a single expression against a set of variables and
// returns either a tcalc.Text (for a quoted text literal) or a
// tcalc.Numeric (for arithmetic). The expression must be consumed
// exactly; trailing characters are an error. All rejections are returned
// as *Error, carrying a kind and the offending position.
//
// Evaluate is a pure function of its two inputs.
func Evaluate(expr string, vars VariableSource) (tcalc.Value, error) {
	if vars == nil {
		vars = MapSource(nil)
	}
	ev := &evaluator{
		cs:   newCursor(expr),
		vars: vars,
	}
	value, err := ev.parse()
	if err != nil {
		tracer().Debugf("expression rejected: %v", err)
		return nil, err
	}
	tracer().Debugf("expression %q = %s", expr, value.Self().String())
	return value, nil
}

// evaluator threads the cursor, the variable source and the
// expecting-operand flag through the grammar levels. Its lifetime is
// exactly one call to Evaluate.
type evaluator struct {
	cs               *cursor
	vars             VariableSource
	expectingOperand bool // a unary sign has been consumed and its operand is still missing
}

func (ev *evaluator) parse() (tcalc.Value, error) {
	ev.cs.skipWhitespace()
	var value tcalc.Value
	var err error
	if ev.cs.peek() == '"' {
		value, err = ev.parseText()
	} else {
		var n int32
		if n, err = ev.parseExpression(); err == nil {
			value = tcalc.Numeric(n)
		}
	}
	if err != nil {
		return nil, err
	}
	ev.cs.skipWhitespace()
	if ev.cs.rest() {
		return nil, newError(ErrTrailingInput, ev.cs.mark(),
			"unexpected characters at end of input")
	}
	return value, nil
}

// parseExpression is the lowest precedence level: terms combined by '+'
// and '-', left-associative.
func (ev *evaluator) parseExpression() (int32, error) {
	value, err := ev.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		ev.cs.skipWhitespace()
		op := ev.cs.peek()
		if op != '+' && op != '-' {
			break
		}
		ev.cs.next()
		if isOperator(ev.cs.peek()) {
			return 0, newError(ErrConsecutiveOperator, ev.cs.mark(),
				"not allowed to have consecutive '%c' and '%c' operators", op, ev.cs.peek())
		}
		t, err := ev.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			value += t
		} else {
			value -= t
		}
	}
	return value, nil
}

// parseTerm is the '*' precedence level: factors combined by
// multiplication, left-associative.
func (ev *evaluator) parseTerm() (int32, error) {
	value, err := ev.parseFactor()
	if err != nil {
		return 0, err
	}
	for {
		ev.cs.skipWhitespace()
		if ev.cs.peek() != '*' {
			break
		}
		ev.cs.next()
		if isOperator(ev.cs.peek()) {
			return 0, newError(ErrConsecutiveOperator, ev.cs.mark(),
				"not allowed to have consecutive '*' and '%c' operators", ev.cs.peek())
		}
		f, err := ev.parseFactor()
		if err != nil {
			return 0, err
		}
		value *= f
	}
	return value, nil
}

// parseFactor is the highest precedence level: an integer literal, an
// identifier, a parenthesized expression, or a sign-prefixed factor.
// Whichever operand it consumes resolves a pending unary sign, i.e.
// clears the expecting-operand flag.
func (ev *evaluator) parseFactor() (int32, error) {
	ev.cs.skipWhitespace()
	switch r := ev.cs.peek(); {
	case r == '(':
		ev.cs.next()
		value, err := ev.parseExpression()
		if err != nil {
			return 0, err
		}
		ev.cs.skipWhitespace()
		if ev.cs.next() != ')' {
			return 0, newError(ErrUnmatchedParenthesis, ev.cs.mark(),
				"expected ')' is missing")
		}
		ev.expectingOperand = false
		return value, nil
	case r == '-' || r == '+':
		if ev.expectingOperand {
			return 0, newError(ErrRepeatedUnaryOperator, ev.cs.mark(),
				"multiple unary '%c' operators not allowed", r)
		}
		ev.expectingOperand = true
		ev.cs.next()
		value, err := ev.parseFactor()
		if err != nil {
			return 0, err
		}
		if r == '-' {
			value = -value
		}
		return value, nil
	case isDigit(r):
		value, err := ev.parseNumber()
		if err != nil {
			return 0, err
		}
		ev.expectingOperand = false
		return value, nil
	case isIdentStart(r):
		value, err := ev.parseIdentifier()
		if err != nil {
			return 0, err
		}
		ev.expectingOperand = false
		return value, nil
	}
	return 0, newError(ErrInvalidToken, ev.cs.mark(), "invalid token in expression")
}

// parseNumber consumes an integer literal. Literals with superfluous
// leading zeros ("00", "007") are rejected; a single "0" is fine.
// Literals outside the signed 32-bit range are rejected as overflow
// (strconv cannot fail any other way here, the slice holds digits only).
func (ev *evaluator) parseNumber() (int32, error) {
	start := ev.cs.mark()
	for isDigit(ev.cs.peek()) {
		ev.cs.next()
	}
	digits := ev.cs.slice(start, ev.cs.mark())
	if len(digits) > 1 && digits[0] == '0' {
		return 0, newError(ErrLeadingZero, start,
			"invalid number '%s': leading zeros are not allowed", digits)
	}
	n, err := strconv.ParseInt(digits, 10, 32)
	if err != nil {
		if !errors.Is(err, strconv.ErrRange) {
			tracer().Errorf("unexpected strconv failure on %q: %v", digits, err)
		}
		return 0, newError(ErrNumberOverflow, start,
			"number '%s' does not fit into 32 bits", digits)
	}
	return int32(n), nil
}

// parseText consumes a text literal, starting at the opening quote.
// Characters are taken verbatim up to the closing quote; there is no
// escape processing, so a literal cannot contain a quote.
func (ev *evaluator) parseText() (tcalc.Value, error) {
	ev.cs.next() // opening quote
	start := ev.cs.mark()
	for ev.cs.rest() {
		if ev.cs.peek() == '"' {
			text := ev.cs.slice(start, ev.cs.mark())
			ev.cs.next() // closing quote
			return tcalc.Text(text), nil
		}
		ev.cs.next()
	}
	return nil, newError(ErrUnterminatedString, ev.cs.mark(),
		"unterminated text literal")
}

// parseIdentifier consumes a variable name and resolves it against the
// variable source. The lookup has exactly three outcomes: a numeric is
// substituted, a text is a type error, an unbound name is undefined.
func (ev *evaluator) parseIdentifier() (int32, error) {
	start := ev.cs.mark()
	ev.cs.next() // leading letter or underscore
	for isIdentRune(ev.cs.peek()) {
		ev.cs.next()
	}
	name := ev.cs.slice(start, ev.cs.mark())
	value, ok := ev.vars.Lookup(name)
	if !ok {
		return 0, newError(ErrUndefinedVariable, start,
			"variable '%s' not defined", name)
	}
	switch v := value.(type) {
	case tcalc.Numeric:
		return int32(v), nil
	case tcalc.Text:
		return 0, newError(ErrTypeMismatch, start,
			"cannot use text variable '%s' in arithmetic", name)
	}
	return 0, newError(ErrTypeMismatch, start,
		"variable '%s' holds no usable value", name)
}

// --- Character classes -----------------------------------------------------

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentRune(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}

func isOperator(r rune) bool {
	return r == '+' || r == '-' || r == '*'
}
