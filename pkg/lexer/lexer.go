// Package lexer converts raw DDL text into an ordered sequence of typed
// tokens. It strips the three SQL comment styles (--, #, /* */) without
// corrupting quoted content, classifies literals and keywords, and reports
// unterminated spans as fatal errors carrying the offending offset.
//
// The lexer has no knowledge of statement grammar; the token slice it
// returns is naturally restartable since it is fully materialized.
package lexer

import (
	"fmt"
	"strings"
)

// LexError is a fatal tokenizer failure: an unterminated string literal,
// quoted identifier, or block comment.
type LexError struct {
	// Offset is the byte offset where the unterminated span starts
	Offset int

	// Line is the 1-based line where the unterminated span starts
	Line int

	msg string
}

// Error implements the error interface.
func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at line %d (offset %d): %s", e.Line, e.Offset, e.msg)
}

// Lex tokenizes the given DDL text. The returned slice preserves source
// order and is owned by the caller; Lex keeps no state between calls, so
// independent calls are safe from multiple goroutines.
func Lex(input string) ([]Token, error) {
	l := &lexState{src: input, line: 1}
	return l.run()
}

type lexState struct {
	src  string
	pos  int
	line int
	toks []Token
}

func (l *lexState) run() ([]Token, error) {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '\n':
			l.line++
			l.pos++
		case c == ' ' || c == '\t' || c == '\r':
			l.pos++
		case c == '-' && l.peekAt(1) == '-':
			l.skipLineComment()
		case c == '#':
			l.skipLineComment()
		case c == '/' && l.peekAt(1) == '*':
			if err := l.skipBlockComment(); err != nil {
				return nil, err
			}
		case c == '\'':
			if err := l.lexString(); err != nil {
				return nil, err
			}
		case c == '"' || c == '`':
			if err := l.lexQuotedIdent(c); err != nil {
				return nil, err
			}
		case c == '[':
			if err := l.lexBracket(); err != nil {
				return nil, err
			}
		case isDigit(c) || (c == '.' && isDigit(l.peekAt(1))):
			l.lexNumber()
		case (c == '-' || c == '+') && isDigit(l.peekAt(1)) && l.signContext():
			l.lexNumber()
		case isIdentStart(c):
			l.lexWord()
		default:
			l.lexSymbol()
		}
	}

	return l.toks, nil
}

func (l *lexState) peekAt(n int) byte {
	if l.pos+n >= len(l.src) {
		return 0
	}
	return l.src[l.pos+n]
}

func (l *lexState) emit(kind Kind, raw, norm string, offset, line int) {
	l.toks = append(l.toks, Token{Kind: kind, Raw: raw, Norm: norm, Offset: offset, Line: line})
}

func (l *lexState) skipLineComment() {
	for l.pos < len(l.src) && l.src[l.pos] != '\n' {
		l.pos++
	}
}

func (l *lexState) skipBlockComment() error {
	start, startLine := l.pos, l.line
	l.pos += 2

	for l.pos < len(l.src) {
		switch {
		case l.src[l.pos] == '*' && l.peekAt(1) == '/':
			l.pos += 2
			return nil
		case l.src[l.pos] == '\n':
			l.line++
		}
		l.pos++
	}

	return &LexError{Offset: start, Line: startLine, msg: "unterminated block comment"}
}

// lexString scans a single-quoted literal, resolving '' escapes to a single
// quote. Comment markers inside the quoted span are plain content.
func (l *lexState) lexString() error {
	start, startLine := l.pos, l.line
	l.pos++

	var b strings.Builder
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '\'' {
			if l.peekAt(1) == '\'' {
				b.WriteByte('\'')
				l.pos += 2
				continue
			}
			l.pos++
			s := b.String()
			l.emit(KindString, s, s, start, startLine)
			return nil
		}
		if c == '\n' {
			l.line++
		}
		b.WriteByte(c)
		l.pos++
	}

	return &LexError{Offset: start, Line: startLine, msg: "unterminated string literal"}
}

// lexQuotedIdent scans a double-quote or backtick delimited identifier,
// resolving doubled-delimiter escapes ("a""b", `a``b`) to a single delimiter.
func (l *lexState) lexQuotedIdent(delim byte) error {
	start, startLine := l.pos, l.line
	l.pos++

	var b strings.Builder
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == delim {
			if l.peekAt(1) == delim {
				b.WriteByte(delim)
				l.pos += 2
				continue
			}
			l.pos++
			raw := b.String()
			l.emit(KindQuotedIdent, raw, raw, start, startLine)
			return nil
		}
		if c == '\n' {
			l.line++
		}
		b.WriteByte(c)
		l.pos++
	}

	return &LexError{Offset: start, Line: startLine, msg: "unterminated quoted identifier"}
}

// lexBracket handles the overloaded '[': a bracket-quoted identifier
// ([my table]) unless the span is empty or purely numeric, in which case it
// is an array bound (INT ARRAY[3]) and lexes as punctuation plus a number.
func (l *lexState) lexBracket() error {
	start, startLine := l.pos, l.line

	end := strings.IndexByte(l.src[l.pos:], ']')
	if end < 0 {
		return &LexError{Offset: start, Line: startLine, msg: "unterminated bracket identifier"}
	}
	end += l.pos

	span := l.src[l.pos+1 : end]
	if span == "" || allDigits(span) {
		l.emit(KindPunct, "[", "[", start, startLine)
		if span != "" {
			l.emit(KindNumber, span, span, start+1, startLine)
		}
		l.emit(KindPunct, "]", "]", end, startLine)
	} else {
		l.emit(KindQuotedIdent, span, span, start, startLine)
	}

	l.line += strings.Count(span, "\n")
	l.pos = end + 1
	return nil
}

func (l *lexState) lexNumber() {
	start, startLine := l.pos, l.line

	if c := l.src[l.pos]; c == '-' || c == '+' {
		l.pos++
	}
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	if l.pos < len(l.src) && l.src[l.pos] == '.' && isDigit(l.peekAt(1)) {
		l.pos++
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}

	raw := l.src[start:l.pos]
	l.emit(KindNumber, raw, raw, start, startLine)
}

// signContext reports whether a leading +/- would begin a signed number
// rather than an arithmetic operator. A sign glues to the digits unless the
// previous token was a value (identifier, literal, or a closing delimiter).
func (l *lexState) signContext() bool {
	if len(l.toks) == 0 {
		return true
	}
	switch last := l.toks[len(l.toks)-1]; last.Kind {
	case KindKeyword, KindOperator:
		return true
	case KindPunct:
		return last.Raw == "(" || last.Raw == "," || last.Raw == "["
	default:
		return false
	}
}

// lexWord scans an unquoted identifier or keyword. A run of '-' or '#'
// immediately followed by more identifier characters stays inside the word:
// table--name is a single name, not "table" plus a comment. Only a run that
// ends the word (or the line) starts a comment.
func (l *lexState) lexWord() {
	start, startLine := l.pos, l.line

	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if isIdentPart(c) {
			l.pos++
			continue
		}
		if c == '-' || c == '#' {
			run := l.pos
			for run < len(l.src) && l.src[run] == c {
				run++
			}
			if run < len(l.src) && isIdentPart(l.src[run]) {
				l.pos = run
				continue
			}
		}
		break
	}

	raw := l.src[start:l.pos]
	norm := strings.ToUpper(raw)
	kind := KindIdent
	if Lookup(norm) != CategoryNone {
		kind = KindKeyword
	}
	l.emit(kind, raw, norm, start, startLine)
}

func (l *lexState) lexSymbol() {
	start, startLine := l.pos, l.line

	if l.pos+1 < len(l.src) {
		two := l.src[l.pos : l.pos+2]
		switch two {
		case "<=", ">=", "<>", "!=", "||":
			l.pos += 2
			l.emit(KindOperator, two, two, start, startLine)
			return
		}
	}

	raw := l.src[l.pos : l.pos+1]
	l.pos++

	if strings.ContainsAny(raw, "(),.;:]") {
		l.emit(KindPunct, raw, raw, start, startLine)
		return
	}
	l.emit(KindOperator, raw, raw, start, startLine)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '$'
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
