package shiryu

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// eof can never be returned by ReadRune, so NUL bytes in the input stay
// distinguishable from the end of input.
const eof rune = -1

type stateFunc func(l *Lexer) stateFunc

type Lexer struct {
	reader *bufio.Reader
	loc    Location // Position of the next rune to be read
	tokens []Token
	err    error
}

func NewLexer(reader io.Reader) *Lexer {
	return &Lexer{
		reader: bufio.NewReader(reader),
		loc:    Location{Line: 1, Col: 1},
	}
}

// Lex splits source into tokens. The returned slice always ends with a
// TokenEOF token.
func Lex(source string) ([]Token, error) {
	source = strings.TrimRightFunc(source, unicode.IsSpace)
	return NewLexer(strings.NewReader(source)).Run()
}

// Run scans the whole input and stops at the first error.
func (l *Lexer) Run() ([]Token, error) {
	for state := defaultState; state != nil; {
		state = state(l)
	}

	if l.err != nil {
		return nil, l.err
	}

	return l.tokens, nil
}

func defaultState(l *Lexer) stateFunc {
	for {
		switch r := l.peek(); {
		case r == eof:
			l.emit(TokenEOF, "", l.loc)
			return nil
		case unicode.IsSpace(r):
			l.next()
		case isDigit(r):
			return numberState
		case r == '"':
			return stringState
		case isAlphabetic(r):
			return identifierState
		default:
			return operatorState
		}
	}
}

func numberState(l *Lexer) stateFunc {
	start := l.loc

	var num strings.Builder
	seenDot := false
	for r := l.peek(); isDigit(r) || (r == '.' && !seenDot); r = l.peek() {
		if r == '.' {
			seenDot = true
		}

		num.WriteRune(l.next())
	}

	return l.emit(TokenNumber, num.String(), start)
}

func stringState(l *Lexer) stateFunc {
	start := l.loc
	l.next() // Skip the leading double-quote

	var str strings.Builder
	for r := l.next(); r != '"'; r = l.next() {
		if r == eof {
			return l.fail(&LexError{Kind: LexUnclosedString, Loc: start})
		}

		str.WriteRune(r)
	}

	return l.emit(TokenString, str.String(), start)
}

func identifierState(l *Lexer) stateFunc {
	start := l.loc

	var id strings.Builder
	for r := l.peek(); isIdentifierRune(r); r = l.peek() {
		id.WriteRune(l.next())
	}

	if t, ok := keywordTable[id.String()]; ok {
		return l.emit(t, id.String(), start)
	}

	return l.emit(TokenIdentifier, id.String(), start)
}

func operatorState(l *Lexer) stateFunc {
	start := l.loc
	r := l.next()

	if tok, ok := operatorTable[r]; ok {
		return l.emit(tok, string(r), start)
	}

	return l.fail(&LexError{Kind: LexUnrecognizedCharacter, Char: r, Loc: start})
}

// fail keeps the first error, a read failure takes precedence over the lex
// error it causes.
func (l *Lexer) fail(err error) stateFunc {
	if l.err == nil {
		l.err = err
	}

	return nil
}

func (l *Lexer) emit(t TokenType, val string, loc Location) stateFunc {
	l.tokens = append(l.tokens, Token{
		Typ:   t,
		Value: val,
		Loc:   &loc,
	})

	return defaultState
}

func (l *Lexer) peek() rune {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		return l.readErr(err)
	}

	_ = l.reader.UnreadRune()
	return r
}

func (l *Lexer) next() rune {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		return l.readErr(err)
	}

	if r == '\n' {
		l.loc.Line++
		l.loc.Col = 1
	} else {
		l.loc.Col++
	}

	return r
}

// readErr ends the input on any read error. Errors other than io.EOF are
// kept and returned by Run.
func (l *Lexer) readErr(err error) rune {
	if err != io.EOF && l.err == nil {
		l.err = fmt.Errorf("failed to read source: %w", err)
	}

	return eof
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isAlphabetic matches the Unicode Alphabetic property, which adds letter
// numbers and vowel signs to the letter categories.
func isAlphabetic(r rune) bool {
	return unicode.In(r, unicode.Letter, unicode.Nl, unicode.Other_Alphabetic)
}

func isIdentifierRune(r rune) bool {
	return isAlphabetic(r) || unicode.IsNumber(r) || r == '_'
}
