package shiryu

import "fmt"

type LexErrorKind int

const (
	LexUnrecognizedCharacter LexErrorKind = iota
	LexUnclosedString
)

// LexError stops lexing at the first character that cannot start a token.
type LexError struct {
	Kind LexErrorKind
	Char rune // Only set for LexUnrecognizedCharacter
	Loc  Location
}

func (e *LexError) Error() string {
	switch e.Kind {
	case LexUnrecognizedCharacter:
		return fmt.Sprintf("%s: unrecognized character '%c'", e.Loc, e.Char)
	case LexUnclosedString:
		return fmt.Sprintf("%s: unclosed string literal", e.Loc)
	default:
		return fmt.Sprintf("%s: lexing failed", e.Loc)
	}
}

type ParseErrorKind int

const (
	ParseExpectedTypeKeyword ParseErrorKind = iota
	ParseExpectedIdentifier
	ParseExpectedSemicolon
	ParseExpectedClosingParen
	ParseUnexpectedToken
	ParseUnexpectedEndOfInput
)

// ParseError reports the first grammar violation found by the parser. Found is
// nil when the token sequence ran out.
type ParseError struct {
	Kind  ParseErrorKind
	Found *Token
}

func (e *ParseError) Error() string {
	found := "end of tokens"
	if e.Found != nil {
		found = e.Found.String()
	}

	var msg string
	switch e.Kind {
	case ParseExpectedTypeKeyword:
		msg = "expected type keyword, found " + found
	case ParseExpectedIdentifier:
		msg = "expected identifier, found " + found
	case ParseExpectedSemicolon:
		msg = "expected ';', found " + found
	case ParseExpectedClosingParen:
		msg = "expected ')', found " + found
	case ParseUnexpectedToken:
		msg = "unexpected token in expression: " + found
	case ParseUnexpectedEndOfInput:
		msg = "unexpected end of tokens"
	default:
		msg = "invalid syntax near " + found
	}

	if e.Found != nil && e.Found.Loc != nil {
		return fmt.Sprintf("%s: %s", e.Found.Loc, msg)
	}

	return msg
}
