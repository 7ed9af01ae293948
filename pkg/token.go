package shiryu

import "fmt"

type TokenType uint64

const (
	TokenEOF TokenType = iota
	TokenIdentifier
	TokenNumber
	TokenString

	TokenTypeInt
	TokenTypeFloat
	TokenTypeUint
	TokenTypeString

	TokenAssign
	TokenPlus
	TokenMinus
	TokenSemicolon
	TokenOpenParentheses
	TokenCloseParentheses
)

var tokenNames = map[TokenType]string{
	TokenEOF:              "EOF",
	TokenIdentifier:       "Identifier",
	TokenNumber:           "Number",
	TokenString:           "String",
	TokenTypeInt:          "TypeInt",
	TokenTypeFloat:        "TypeFloat",
	TokenTypeUint:         "TypeUint",
	TokenTypeString:       "TypeString",
	TokenAssign:           "Assign",
	TokenPlus:             "Plus",
	TokenMinus:            "Minus",
	TokenSemicolon:        "Semicolon",
	TokenOpenParentheses:  "OpenParentheses",
	TokenCloseParentheses: "CloseParentheses",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}

	return fmt.Sprintf("TokenType(%d)", uint64(t))
}

// IsTypeKeyword reports whether t names one of the declarable basic types.
func (t TokenType) IsTypeKeyword() bool {
	_, ok := typeKeywords[t]
	return ok
}

var keywordTable = map[string]TokenType{
	"int":    TokenTypeInt,
	"float":  TokenTypeFloat,
	"uint":   TokenTypeUint,
	"string": TokenTypeString,
}

var operatorTable = map[rune]TokenType{
	'=': TokenAssign,
	'+': TokenPlus,
	'-': TokenMinus,
	';': TokenSemicolon,
	'(': TokenOpenParentheses,
	')': TokenCloseParentheses,
}

var typeKeywords = map[TokenType]BasicType{
	TokenTypeInt:    BasicInt,
	TokenTypeFloat:  BasicFloat,
	TokenTypeUint:   BasicUint,
	TokenTypeString: BasicString,
}

// Location is a 1-based line and column in the source text.
type Location struct {
	Line int
	Col  int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Col)
}

type Token struct {
	Typ   TokenType
	Value string
	Loc   *Location
}

// String describes the token the way it is reported in error messages.
func (t Token) String() string {
	switch t.Typ {
	case TokenEOF:
		return "end of input"
	case TokenIdentifier:
		return fmt.Sprintf("identifier %q", t.Value)
	case TokenNumber:
		return "number " + t.Value
	case TokenString:
		return fmt.Sprintf("string literal %q", t.Value)
	default:
		return "'" + t.Value + "'"
	}
}
