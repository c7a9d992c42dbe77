package symrs

import "strconv"

// OperatorError is an error indicating an operator token where an operand was
// expected. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
	// Rest is the input starting at the operator.
	Rest string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unknown unary operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

func (err *OperatorError) Remainder() string {
	return err.Rest
}

// BracketError is an error indicating an open parenthesis without a matching
// close parenthesis. It implements InputError.
type BracketError struct {
	// Col is the position of the token found instead of the close bracket.
	Col int
	// Open is the position of the unmatched open bracket.
	Open int
	// Found is the token found instead of the close bracket, or the empty
	// string at the end of the input.
	Found string
	// Rest is the input starting at Col.
	Rest string
}

func (err *BracketError) Error() string {
	if err.Found == "" {
		return errpos(err.Col, "open bracket at "+strconv.Itoa(err.Open)+" with no close bracket")
	}
	return errpos(err.Col, "expected ) to match open bracket at "+strconv.Itoa(err.Open)+", got "+strconv.Quote(err.Found))
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Remainder() string {
	return err.Rest
}

// EmptyExpressionError is an error indicating an empty subexpression. It
// implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression, or the empty string at
	// the end of the input.
	End string
	// Rest is the input starting at Col.
	Rest string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

func (err *EmptyExpressionError) Remainder() string {
	return err.Rest
}

// DepthError is an error indicating an expression nested more deeply than the
// MaxDepth parse option allows. It implements InputError.
type DepthError struct {
	// Col is the position where the limit was exceeded.
	Col int
	// Max is the depth limit.
	Max int
	// Rest is the input starting at Col.
	Rest string
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "expression nested deeper than "+strconv.Itoa(err.Max))
}

func (err *DepthError) Pos() int {
	return err.Col
}

func (err *DepthError) Remainder() string {
	return err.Rest
}

// TrailingError is an error from ParseString indicating input left over after
// a complete expression. It implements InputError.
type TrailingError struct {
	// Col is the position of the first unparsed token.
	Col int
	// Rest is the unparsed input.
	Rest string
}

func (err *TrailingError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Rest)+" after expression")
}

func (err *TrailingError) Pos() int {
	return err.Col
}

func (err *TrailingError) Remainder() string {
	return err.Rest
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based rune column of the
	// start of the token that caused the error.
	Pos() int
	// Remainder returns the input from that token on.
	Remainder() string
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*DepthError)(nil)
	_ InputError = (*TrailingError)(nil)
	_ InputError = (*LexError)(nil)
)
