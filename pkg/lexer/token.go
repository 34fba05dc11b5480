package lexer

// Kind classifies a lexed token.
type Kind int

const (
	// KindNone is the kind of the zero Token, returned by lookahead past
	// the end of a span
	KindNone Kind = iota

	// KindKeyword is an unquoted word found in the dialect keyword table
	KindKeyword

	// KindIdent is an unquoted word not found in the keyword table
	KindIdent

	// KindQuotedIdent is an identifier delimited by double quotes,
	// backticks, or brackets; delimiters are stripped from Raw
	KindQuotedIdent

	// KindString is a single-quoted literal with '' escapes resolved
	KindString

	// KindNumber is an optionally signed integer or decimal literal
	KindNumber

	// KindPunct is structural punctuation: ( ) [ ] , . ; :
	KindPunct

	// KindOperator covers comparison and arithmetic operators
	KindOperator
)

// String returns a human-readable name for the token kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindKeyword:
		return "keyword"
	case KindIdent:
		return "identifier"
	case KindQuotedIdent:
		return "quoted-identifier"
	case KindString:
		return "string-literal"
	case KindNumber:
		return "number-literal"
	case KindPunct:
		return "punctuation"
	case KindOperator:
		return "operator"
	default:
		return "unknown"
	}
}

// Token is a single lexical unit of DDL text. Tokens are immutable once
// produced; the slice returned by Lex is owned by the parse call that
// requested it.
type Token struct {
	Kind Kind

	// Raw preserves the original casing. For quoted identifiers the
	// delimiters are stripped; for string literals '' escapes are resolved.
	Raw string

	// Norm is the upper-cased form used for keyword comparison. For quoted
	// identifiers and literals it equals Raw.
	Norm string

	// Offset is the byte offset of the token start in the input.
	Offset int

	// Line is the 1-based line of the token start.
	Line int
}

// IsKeyword reports whether the token is the given keyword (normalized form).
func (t Token) IsKeyword(word string) bool {
	return t.Kind == KindKeyword && t.Norm == word
}

// IsPunct reports whether the token is the given punctuation.
func (t Token) IsPunct(s string) bool {
	return t.Kind == KindPunct && t.Raw == s
}

// IsOperator reports whether the token is the given operator.
func (t Token) IsOperator(s string) bool {
	return t.Kind == KindOperator && t.Raw == s
}

// IsName reports whether the token can serve as an object name. Keywords are
// allowed here since SQL permits non-reserved words (and most dialects even
// reserved ones) as table or column names.
func (t Token) IsName() bool {
	switch t.Kind {
	case KindIdent, KindQuotedIdent, KindKeyword:
		return true
	default:
		return false
	}
}
