package symrs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
	}{
		// spaces
		{"", nil},
		{" \t \r\n ", nil},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenInt, pos: 1}}},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenInt, pos: 1}}},
		{"1 0", []lexToken{{text: "1", kind: tokenInt, pos: 1}, {text: "0", kind: tokenInt, pos: 3, off: 2}}},
		{"-1", []lexToken{{text: "-1", kind: tokenInt, pos: 1}}},
		{"- 1", []lexToken{{text: "-", kind: tokenOp, pos: 1}, {text: "1", kind: tokenInt, pos: 3, off: 2}}},
		{"123.3", []lexToken{{text: "123.3", kind: tokenFloat, pos: 1}}},
		{"-123.3e3", []lexToken{{text: "-123.3e3", kind: tokenFloat, pos: 1}}},
		{"1e1", []lexToken{{text: "1e1", kind: tokenFloat, pos: 1}}},
		{"1e+1", []lexToken{{text: "1e+1", kind: tokenFloat, pos: 1}}},
		{"1e-1", []lexToken{{text: "1e-1", kind: tokenFloat, pos: 1}}},
		{"1e", []lexToken{{text: "1", kind: tokenInt, pos: 1}, {text: "e", kind: tokenIdent, pos: 2, off: 1}}},
		{"1.", []lexToken{{text: "1.", kind: tokenFloat, pos: 1}}},
		{".1", []lexToken{{text: ".1", kind: tokenFloat, pos: 1}}},
		{"-.1", []lexToken{{text: "-.1", kind: tokenFloat, pos: 1}}},
		{".", []lexToken{{text: ".", kind: tokenInvalid, pos: 1}}},
		{"1.1.1", []lexToken{{text: "1.1", kind: tokenFloat, pos: 1}, {text: ".1", kind: tokenFloat, pos: 4, off: 3}}},
		{"2x", []lexToken{{text: "2", kind: tokenInt, pos: 1}, {text: "x", kind: tokenIdent, pos: 2, off: 1}}},
		// identifiers
		{"e", []lexToken{{text: "e", kind: tokenIdent, pos: 1}}},
		{"e1", []lexToken{{text: "e1", kind: tokenIdent, pos: 1}}},
		{"π", []lexToken{{text: "π", kind: tokenIdent, pos: 1}}},
		{"α_1", []lexToken{{text: "α_1", kind: tokenIdent, pos: 1}}},
		{"ΔΩω", []lexToken{{text: "ΔΩω", kind: tokenIdent, pos: 1}}},
		{"_1234_", []lexToken{{text: "_1234_", kind: tokenIdent, pos: 1}}},
		{"ж", []lexToken{{text: "ж", kind: tokenInvalid, pos: 1}}},
		// operators
		{"+", []lexToken{{text: "+", kind: tokenOp, pos: 1}}},
		{"x-1", []lexToken{{text: "x", kind: tokenIdent, pos: 1}, {text: "-1", kind: tokenInt, pos: 2, off: 1}}},
		{"x-y", []lexToken{{text: "x", kind: tokenIdent, pos: 1}, {text: "-", kind: tokenOp, pos: 2, off: 1}, {text: "y", kind: tokenIdent, pos: 3, off: 2}}},
		{"x×y", []lexToken{{text: "x", kind: tokenIdent, pos: 1}, {text: "*", kind: tokenOp, pos: 2, off: 1}, {text: "y", kind: tokenIdent, pos: 3, off: 3}}},
		{"÷", []lexToken{{text: "/", kind: tokenOp, pos: 1}}},
		// brackets
		{"(x)", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: "x", kind: tokenIdent, pos: 2, off: 1}, {text: ")", kind: tokenClose, pos: 3, off: 2}}},
		// erroneous symbols
		{"$", []lexToken{{text: "$", kind: tokenInvalid, pos: 1}}},
		{"a$", []lexToken{{text: "a", kind: tokenIdent, pos: 1}, {text: "$", kind: tokenInvalid, pos: 2, off: 1}}},
		{"[]", []lexToken{{text: "[", kind: tokenInvalid, pos: 1}, {text: "]", kind: tokenInvalid, pos: 2, off: 1}}},
	}

	for _, c := range cases {
		scan := lex(c.src)
		var got []lexToken
		for tok := scan.next(); tok.kind != tokenEOF; tok = scan.next() {
			got = append(got, tok)
			if len(got) > len(c.src) {
				t.Fatalf("scanning %q: lexer is not making progress: %v", c.src, got)
			}
		}
		if diff := cmp.Diff(c.tokens, got, cmp.AllowUnexported(lexToken{})); diff != "" {
			t.Errorf("scanning %q: tokens differ (-want +got):\n%s", c.src, diff)
		}
	}
}

func TestLexOp(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		ops   string
		noalt bool
		tok   lexToken
		ok    bool
	}{
		{"plus", "+", "+-", false, lexToken{text: "+", kind: tokenOp, pos: 1}, true},
		{"space", "  -1", "+-", false, lexToken{text: "-", kind: tokenOp, pos: 3, off: 2}, true},
		{"other", "*", "+-", false, lexToken{}, false},
		{"times", "×", "*/", false, lexToken{text: "*", kind: tokenOp, pos: 1}, true},
		{"noalt", "×", "*/", true, lexToken{}, false},
		{"ident", "x", "+-*/^", false, lexToken{}, false},
		{"eof", "  ", "+-*/^", false, lexToken{}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			scan := lex(c.src)
			scan.noalt = c.noalt
			tok, ok := scan.op(c.ops)
			if ok != c.ok || tok != c.tok {
				t.Errorf("op(%q) on %q: want %v, %t; got %v, %t", c.ops, c.src, c.tok, c.ok, tok, ok)
			}
			if !ok && scan.off != 0 {
				t.Errorf("op(%q) on %q scanned %d bytes on failure", c.ops, c.src, scan.off)
			}
		})
	}
}

func TestLexScanFailsCleanly(t *testing.T) {
	for _, src := range []string{"-x", "-", "-.", "x", "(", "$"} {
		scan := lex(src)
		if tok, ok := scan.scanFloat(); ok {
			t.Errorf("scanFloat(%q) succeeded with %v", src, tok)
		}
		if tok, ok := scan.scanInt(); ok {
			t.Errorf("scanInt(%q) succeeded with %v", src, tok)
		}
		if scan.off != 0 || scan.col != 0 {
			t.Errorf("scanning %q moved to %d/%d", src, scan.off, scan.col)
		}
	}
}
