package symrs

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexToken struct {
	text string
	kind tokenKind
	// pos is the 1-based rune column of the token.
	pos int
	// off is the byte offset of the token.
	off int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenInt is a run of decimal digits, possibly with a leading -.
	tokenInt
	// tokenFloat is a decimal number with a fraction or exponent.
	tokenFloat
	// tokenIdent is a symbol name.
	tokenIdent
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
	// tokenInvalid is a rune that starts no token.
	tokenInvalid
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/^×÷"

// altOperators maps the alternative spellings of operators to the ones the
// parser understands.
var altOperators = map[rune]string{
	'×': "*",
	'÷': "/",
}

// lexer scans tokens from a string. The parser backtracks by saving and
// restoring marks.
type lexer struct {
	src string
	// off is the byte offset of the next rune.
	off int
	// col is the number of runes before off.
	col int
	// noalt disables × and ÷.
	noalt bool
}

type mark struct {
	off, col int
}

func lex(src string) *lexer {
	return &lexer{src: src}
}

func (l *lexer) mark() mark {
	return mark{l.off, l.col}
}

func (l *lexer) reset(m mark) {
	l.off, l.col = m.off, m.col
}

// pos returns the 1-based rune column of the next rune.
func (l *lexer) pos() int {
	return l.col + 1
}

// rest returns the unscanned input.
func (l *lexer) rest() string {
	return l.src[l.off:]
}

// peek returns the next rune without scanning it. At the end of the input, the
// result is utf8.RuneError with size 0.
func (l *lexer) peek() (rune, int) {
	return utf8.DecodeRuneInString(l.src[l.off:])
}

// readRune scans a rune and updates the lexer's position.
func (l *lexer) readRune() (rune, bool) {
	r, sz := l.peek()
	if sz == 0 {
		return r, false
	}
	l.off += sz
	l.col++
	return r, true
}

func (l *lexer) skipSpace() {
	for {
		r, sz := l.peek()
		if sz == 0 || !unicode.IsSpace(r) {
			return
		}
		l.readRune()
	}
}

// next skips whitespace and scans the next token. Numbers and identifiers are
// scanned whole, with a leading - only when it immediately precedes a digit.
func (l *lexer) next() lexToken {
	l.skipSpace()
	tok := lexToken{pos: l.pos(), off: l.off}
	start := l.mark()
	r, ok := l.readRune()
	switch {
	case !ok:
		tok.kind = tokenEOF
		return tok
	case isDigit(r), r == '.', r == '-' && l.atNumber():
		l.reset(start)
		if t, ok := l.scanFloat(); ok {
			return t
		}
		if t, ok := l.scanInt(); ok {
			return t
		}
		// A lone '.' is no number.
		l.readRune()
		tok.text = string(r)
		tok.kind = tokenInvalid
		return tok
	case isIdentStart(r):
		l.reset(start)
		t, _ := l.scanIdent()
		return t
	case r == '(':
		tok.text = "("
		tok.kind = tokenOpen
		return tok
	case r == ')':
		tok.text = ")"
		tok.kind = tokenClose
		return tok
	case strings.ContainsRune(Operators, r):
		tok.text = string(r)
		tok.kind = tokenOp
		if alt, ok := altOperators[r]; ok {
			if l.noalt {
				tok.kind = tokenInvalid
				return tok
			}
			tok.text = alt
		}
		return tok
	default:
		tok.text = string(r)
		tok.kind = tokenInvalid
		return tok
	}
}

// op scans an operator that is one of ops, after any whitespace. If the next
// token is anything else, nothing is scanned. Unlike next, op scans the - in
// -1 as an operator.
func (l *lexer) op(ops string) (lexToken, bool) {
	m := l.mark()
	l.skipSpace()
	tok := lexToken{pos: l.pos(), off: l.off, kind: tokenOp}
	r, ok := l.readRune()
	if !ok {
		l.reset(m)
		return lexToken{}, false
	}
	tok.text = string(r)
	if alt, ok := altOperators[r]; ok && !l.noalt {
		tok.text = alt
	}
	if !strings.ContainsRune(Operators, r) || !strings.Contains(ops, tok.text) {
		l.reset(m)
		return lexToken{}, false
	}
	return tok, true
}

// atNumber returns whether the next runes start an unsigned number.
func (l *lexer) atNumber() bool {
	s := l.rest()
	if s == "" {
		return false
	}
	if s[0] == '.' {
		s = s[1:]
	}
	return s != "" && isDigit(rune(s[0]))
}

// scanFloat scans a float token: an optional -, digits with a fraction, an
// exponent, or both. A number without a fraction or exponent is not a float.
// On failure, nothing is scanned.
func (l *lexer) scanFloat() (lexToken, bool) {
	start := l.mark()
	tok := lexToken{pos: l.pos(), off: l.off, kind: tokenFloat}
	if r, _ := l.peek(); r == '-' {
		l.readRune()
	}
	dig := l.digits() > 0
	frac := false
	if r, _ := l.peek(); r == '.' {
		l.readRune()
		frac = true
		if l.digits() > 0 {
			dig = true
		}
	}
	if !dig {
		l.reset(start)
		return lexToken{}, false
	}
	e := false
	if r, _ := l.peek(); r == 'e' || r == 'E' {
		m := l.mark()
		l.readRune()
		if r, _ := l.peek(); r == '+' || r == '-' {
			l.readRune()
		}
		if l.digits() > 0 {
			e = true
		} else {
			// 2e is 2 followed by e.
			l.reset(m)
		}
	}
	if !frac && !e {
		l.reset(start)
		return lexToken{}, false
	}
	tok.text = l.src[start.off:l.off]
	return tok, true
}

// scanInt scans an integer token: an optional - and at least one digit. On
// failure, nothing is scanned.
func (l *lexer) scanInt() (lexToken, bool) {
	start := l.mark()
	tok := lexToken{pos: l.pos(), off: l.off, kind: tokenInt}
	if r, _ := l.peek(); r == '-' {
		l.readRune()
	}
	if l.digits() == 0 {
		l.reset(start)
		return lexToken{}, false
	}
	tok.text = l.src[start.off:l.off]
	return tok, true
}

// scanIdent scans a symbol name. On failure, nothing is scanned.
func (l *lexer) scanIdent() (lexToken, bool) {
	start := l.mark()
	tok := lexToken{pos: l.pos(), off: l.off, kind: tokenIdent}
	if r, _ := l.peek(); !isIdentStart(r) {
		return lexToken{}, false
	}
	l.readRune()
	for {
		r, sz := l.peek()
		if sz == 0 || !isIdentStart(r) && !isDigit(r) {
			break
		}
		l.readRune()
	}
	tok.text = l.src[start.off:l.off]
	return tok, true
}

// digits scans a run of ASCII digits and returns its length.
func (l *lexer) digits() int {
	n := 0
	for {
		r, _ := l.peek()
		if !isDigit(r) {
			return n
		}
		l.readRune()
		n++
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isIdentStart returns whether r can begin a symbol name: an ASCII letter,
// underscore, or Greek letter. U+03A2 is unassigned, so it is excluded.
func isIdentStart(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', r == '_':
		return true
	case '\u0391' <= r && r <= '\u03a9':
		return r != '\u03a2'
	case '\u03b1' <= r && r <= '\u03c9':
		return true
	default:
		return false
	}
}

func (l *lexer) error(kind string, tok lexToken) error {
	return &LexError{
		Text: tok.text,
		Kind: kind,
		Col:  tok.pos,
		Rest: l.src[tok.off:],
	}
}

// LexError indicates an invalid token where an operand was expected. It
// implements InputError.
type LexError struct {
	// Text is the invalid token.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number"
	// or the empty string if the token is not the start of any token.
	Kind string
	// Col is the position of the invalid token.
	Col int
	// Rest is the input starting at the invalid token.
	Rest string
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + strconv.Quote(err.Text)
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + strconv.Quote(err.Text)
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Remainder() string {
	return err.Rest
}
