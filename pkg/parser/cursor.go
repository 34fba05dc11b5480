package parser

import (
	"strings"

	"github.com/pseudomuto/sqlddl/pkg/lexer"
)

// cursor walks one statement span's tokens with bounded lookahead. All parse
// state is local to the enclosing parse call (never process-wide), so
// concurrent parse calls cannot interfere.
type cursor struct {
	toks []lexer.Token
	pos  int
}

func newCursor(toks []lexer.Token) *cursor { return &cursor{toks: toks} }

func (c *cursor) eof() bool { return c.pos >= len(c.toks) }

// peek returns the current token, or the zero token at end of span.
func (c *cursor) peek() lexer.Token { return c.peekAt(0) }

func (c *cursor) peekAt(n int) lexer.Token {
	if c.pos+n >= len(c.toks) {
		return lexer.Token{}
	}
	return c.toks[c.pos+n]
}

func (c *cursor) next() lexer.Token {
	t := c.peek()
	if !c.eof() {
		c.pos++
	}
	return t
}

// acceptKeyword consumes the next token if it is the given keyword.
func (c *cursor) acceptKeyword(word string) bool {
	if c.peek().IsKeyword(word) {
		c.pos++
		return true
	}
	return false
}

// acceptKeywords consumes the given keyword sequence, or nothing at all.
func (c *cursor) acceptKeywords(words ...string) bool {
	for i, w := range words {
		if !c.peekAt(i).IsKeyword(w) {
			return false
		}
	}
	c.pos += len(words)
	return true
}

func (c *cursor) acceptPunct(s string) bool {
	if c.peek().IsPunct(s) {
		c.pos++
		return true
	}
	return false
}

func (c *cursor) acceptOperator(s string) bool {
	if c.peek().IsOperator(s) {
		c.pos++
		return true
	}
	return false
}

// name consumes the next token as an object name, returning its raw text.
// Keywords qualify since dialects allow non-reserved words as names.
func (c *cursor) name() (string, bool) {
	if !c.peek().IsName() {
		return "", false
	}
	return c.next().Raw, true
}

// qualifiedName consumes ident[.ident], returning (schema, name). The schema
// is empty when unqualified.
func (c *cursor) qualifiedName() (string, string, bool) {
	first, ok := c.name()
	if !ok {
		return "", "", false
	}
	if c.peek().IsPunct(".") && c.peekAt(1).IsName() {
		c.next()
		second, _ := c.name()
		return first, second, true
	}
	return "", first, true
}

// balancedGroup consumes a parenthesized group, returning the tokens between
// the outer parens. The opening paren must be at the cursor.
func (c *cursor) balancedGroup() ([]lexer.Token, bool) {
	if !c.acceptPunct("(") {
		return nil, false
	}

	depth := 1
	start := c.pos
	for !c.eof() {
		t := c.next()
		switch {
		case t.IsPunct("("):
			depth++
		case t.IsPunct(")"):
			depth--
			if depth == 0 {
				return c.toks[start : c.pos-1], true
			}
		}
	}
	return nil, false
}

// takeUntilComma consumes and returns tokens up to (not including) the next
// top-level comma or the end of the span.
func (c *cursor) takeUntilComma() []lexer.Token {
	start := c.pos
	depth := 0
	for !c.eof() {
		t := c.peek()
		switch {
		case t.IsPunct("("):
			depth++
		case t.IsPunct(")"):
			depth--
		case t.IsPunct(",") && depth == 0:
			return c.toks[start:c.pos]
		}
		c.next()
	}
	return c.toks[start:c.pos]
}

// equalFold is a case-insensitive name comparison, per the case-insensitive
// column uniqueness invariant.
func equalFold(a, b string) bool { return strings.EqualFold(a, b) }

// renderTokens reconstructs raw expression text from a token run. The exact
// spacing is canonical, not source-faithful: single spaces between tokens,
// none around '.', after '(' or before ')' and ','. String literals are
// re-quoted with '' escapes so the text stays valid SQL.
func renderTokens(toks []lexer.Token) string {
	var b strings.Builder
	for i, t := range toks {
		text := t.Raw
		if t.Kind == lexer.KindString {
			text = "'" + strings.ReplaceAll(t.Raw, "'", "''") + "'"
		}

		if i > 0 && !noSpaceBefore(t) && !noSpaceAfter(toks[i-1]) {
			b.WriteByte(' ')
		}
		b.WriteString(text)
	}
	return b.String()
}

func noSpaceBefore(t lexer.Token) bool {
	return t.IsPunct("(") || t.IsPunct(")") || t.IsPunct(",") || t.IsPunct(".") || t.IsPunct("]")
}

func noSpaceAfter(t lexer.Token) bool {
	return t.IsPunct("(") || t.IsPunct(".") || t.IsPunct("[")
}
