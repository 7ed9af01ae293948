package shiryu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func num(value string) *NumberLiteral {
	return numberLiteral(value)
}

func stmts(statements ...Statement) *AST {
	ast := &AST{}
	for _, s := range statements {
		ast.Nodes = append(ast.Nodes, &StmtNode{Stmt: s})
	}

	return ast
}

func TestParser(t *testing.T) {
	cases := []struct {
		data   []Token
		expect *AST
	}{
		{
			[]Token{
				{TokenTypeInt, "int", nil},
				{TokenIdentifier, "x", nil},
				{TokenSemicolon, ";", nil},
				{TokenEOF, "", nil},
			},
			stmts(&VariableDecl{Type: BasicInt, Name: "x"}),
		},
		{
			[]Token{
				{TokenTypeString, "string", nil},
				{TokenIdentifier, "s", nil},
				{TokenAssign, "=", nil},
				{TokenString, "hi", nil},
				{TokenSemicolon, ";", nil},
				{TokenEOF, "", nil},
			},
			stmts(&VariableDecl{
				Type:        BasicString,
				Name:        "s",
				Initializer: &StringLiteral{Value: "hi"},
			}),
		},
		{
			[]Token{
				{TokenTypeFloat, "float", nil},
				{TokenIdentifier, "f", nil},
				{TokenAssign, "=", nil},
				{TokenNumber, "2.5", nil},
				{TokenPlus, "+", nil},
				{TokenIdentifier, "g", nil},
				{TokenSemicolon, ";", nil},
				{TokenTypeUint, "uint", nil},
				{TokenIdentifier, "u", nil},
				{TokenSemicolon, ";", nil},
				{TokenEOF, "", nil},
			},
			stmts(
				&VariableDecl{
					Type: BasicFloat,
					Name: "f",
					Initializer: &BinaryExpr{
						Operation: BinaryAddition,
						Left:      &NumberLiteral{"2.5", BasicFloat},
						Right:     &VariableRef{Name: "g"},
					},
				},
				&VariableDecl{Type: BasicUint, Name: "u"},
			),
		},
		{
			// 1 + 2 - 3;
			[]Token{
				{TokenNumber, "1", nil},
				{TokenPlus, "+", nil},
				{TokenNumber, "2", nil},
				{TokenMinus, "-", nil},
				{TokenNumber, "3", nil},
				{TokenSemicolon, ";", nil},
				{TokenEOF, "", nil},
			},
			stmts(&ExprStmt{X: &BinaryExpr{
				Operation: BinarySubtraction,
				Left: &BinaryExpr{
					Operation: BinaryAddition,
					Left:      num("1"),
					Right:     num("2"),
				},
				Right: num("3"),
			}}),
		},
		{
			// 1 - (2 + 3);
			[]Token{
				{TokenNumber, "1", nil},
				{TokenMinus, "-", nil},
				{TokenOpenParentheses, "(", nil},
				{TokenNumber, "2", nil},
				{TokenPlus, "+", nil},
				{TokenNumber, "3", nil},
				{TokenCloseParentheses, ")", nil},
				{TokenSemicolon, ";", nil},
				{TokenEOF, "", nil},
			},
			stmts(&ExprStmt{X: &BinaryExpr{
				Operation: BinarySubtraction,
				Left:      num("1"),
				Right: &BinaryExpr{
					Operation: BinaryAddition,
					Left:      num("2"),
					Right:     num("3"),
				},
			}}),
		},
		{
			// ((x));
			[]Token{
				{TokenOpenParentheses, "(", nil},
				{TokenOpenParentheses, "(", nil},
				{TokenIdentifier, "x", nil},
				{TokenCloseParentheses, ")", nil},
				{TokenCloseParentheses, ")", nil},
				{TokenSemicolon, ";", nil},
				{TokenEOF, "", nil},
			},
			stmts(&ExprStmt{X: &VariableRef{Name: "x"}}),
		},
		{
			// Sequences without an end marker stop when exhausted
			[]Token{
				{TokenIdentifier, "y", nil},
				{TokenSemicolon, ";", nil},
			},
			stmts(&ExprStmt{X: &VariableRef{Name: "y"}}),
		},
		{
			[]Token{
				{TokenEOF, "", nil},
			},
			&AST{},
		},
		{
			nil,
			&AST{},
		},
	}

	for _, c := range cases {
		got, err := Parse(c.data)
		require.NoError(t, err)
		assert.Equal(t, c.expect, got)
	}
}

func TestParserErrors(t *testing.T) {
	cases := []struct {
		name    string
		data    []Token
		kind    ParseErrorKind
		message string
	}{
		{
			"missingIdentifier",
			[]Token{
				{TokenTypeInt, "int", nil},
				{TokenNumber, "5", &Location{1, 5}},
				{TokenEOF, "", nil},
			},
			ParseExpectedIdentifier,
			"1:5: expected identifier, found number 5",
		},
		{
			"keywordAsIdentifier",
			[]Token{
				{TokenTypeInt, "int", nil},
				{TokenTypeFloat, "float", nil},
				{TokenEOF, "", nil},
			},
			ParseExpectedIdentifier,
			"expected identifier, found 'float'",
		},
		{
			"missingSemicolon",
			[]Token{
				{TokenTypeInt, "int", nil},
				{TokenIdentifier, "x", nil},
				{TokenAssign, "=", nil},
				{TokenNumber, "5", nil},
				{TokenEOF, "", nil},
			},
			ParseExpectedSemicolon,
			"expected ';', found end of input",
		},
		{
			"missingSemicolonAfterExpression",
			[]Token{
				{TokenIdentifier, "x", nil},
				{TokenIdentifier, "y", nil},
				{TokenEOF, "", nil},
			},
			ParseExpectedSemicolon,
			`expected ';', found identifier "y"`,
		},
		{
			"missingClosingParen",
			[]Token{
				{TokenOpenParentheses, "(", nil},
				{TokenNumber, "1", nil},
				{TokenSemicolon, ";", nil},
				{TokenEOF, "", nil},
			},
			ParseExpectedClosingParen,
			"expected ')', found ';'",
		},
		{
			"unexpectedToken",
			[]Token{
				{TokenNumber, "1", nil},
				{TokenPlus, "+", nil},
				{TokenSemicolon, ";", &Location{1, 5}},
				{TokenEOF, "", nil},
			},
			ParseUnexpectedToken,
			"1:5: unexpected token in expression: ';'",
		},
		{
			"assignWithoutDeclaration",
			[]Token{
				{TokenAssign, "=", nil},
				{TokenNumber, "1", nil},
				{TokenEOF, "", nil},
			},
			ParseUnexpectedToken,
			"unexpected token in expression: '='",
		},
		{
			"endMarkerInExpression",
			[]Token{
				{TokenTypeInt, "int", nil},
				{TokenIdentifier, "x", nil},
				{TokenAssign, "=", nil},
				{TokenEOF, "", &Location{1, 9}},
			},
			ParseUnexpectedEndOfInput,
			"1:9: unexpected end of tokens",
		},
		{
			"exhaustedTokens",
			[]Token{
				{TokenNumber, "1", nil},
				{TokenMinus, "-", nil},
			},
			ParseUnexpectedEndOfInput,
			"unexpected end of tokens",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Parse(c.data)
			require.Error(t, err)
			assert.Nil(t, got)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, c.kind, parseErr.Kind)
			assert.Equal(t, c.message, err.Error())
		})
	}
}

func TestParserExpectedTypeKeyword(t *testing.T) {
	p := NewParser([]Token{{TokenIdentifier, "x", nil}})

	_, err := p.varDecl()
	require.Error(t, err)
	assert.Equal(t, `expected type keyword, found identifier "x"`, err.Error())
}
