package grammar

import "fmt"

// ErrorKind classifies the ways an expression can be rejected.
type ErrorKind int8

const (
	ErrUnclassified ErrorKind = iota
	// ErrTrailingInput: extra characters after a structurally complete expression.
	ErrTrailingInput
	// ErrConsecutiveOperator: two binary operators in a row with no operand between them.
	ErrConsecutiveOperator
	// ErrRepeatedUnaryOperator: two unary sign operators in a row.
	ErrRepeatedUnaryOperator
	// ErrUnmatchedParenthesis: missing closing ')'.
	ErrUnmatchedParenthesis
	// ErrInvalidToken: a character (or the end of input) that cannot start a factor.
	ErrInvalidToken
	// ErrUnterminatedString: text literal missing its closing quote.
	ErrUnterminatedString
	// ErrLeadingZero: integer literal with a superfluous leading '0'.
	ErrLeadingZero
	// ErrNumberOverflow: integer literal outside the signed 32-bit range.
	ErrNumberOverflow
	// ErrUndefinedVariable: identifier not present in the variable source.
	ErrUndefinedVariable
	// ErrTypeMismatch: a text variable used where a numeric is required.
	ErrTypeMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case ErrTrailingInput:
		return "TrailingInput"
	case ErrConsecutiveOperator:
		return "ConsecutiveOperator"
	case ErrRepeatedUnaryOperator:
		return "RepeatedUnaryOperator"
	case ErrUnmatchedParenthesis:
		return "UnmatchedParenthesis"
	case ErrInvalidToken:
		return "InvalidToken"
	case ErrUnterminatedString:
		return "UnterminatedString"
	case ErrLeadingZero:
		return "LeadingZero"
	case ErrNumberOverflow:
		return "NumberOverflow"
	case ErrUndefinedVariable:
		return "UndefinedVariable"
	case ErrTypeMismatch:
		return "TypeMismatch"
	}
	return "Unclassified"
}

// Error is the error type returned by Evaluate. Every rejection of an
// expression carries a kind from the taxonomy above and the cursor
// position (0-indexed rune offset) where the violation was detected.
type Error struct {
	Kind ErrorKind
	Pos  int
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

// newError creates a positioned evaluation error.
func newError(kind ErrorKind, pos int, format string, args ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Pos:  pos,
		msg:  fmt.Sprintf(format, args...),
	}
}
