package shiryu

import "strings"

type Parser struct {
	tokens []Token
	pos    int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens: tokens,
	}
}

// Parse builds a tree out of tokens produced by Lex.
func Parse(tokens []Token) (*AST, error) {
	return NewParser(tokens).Run()
}

// Run parses statements until the end marker. The first error aborts the
// parse and no tree is returned.
func (p *Parser) Run() (*AST, error) {
	ast := &AST{}

	for !p.done() {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}

		ast.Nodes = append(ast.Nodes, &StmtNode{Stmt: stmt})
	}

	return ast, nil
}

func (p *Parser) done() bool {
	tok := p.peek()
	return tok == nil || tok.Typ == TokenEOF
}

// peek returns nil once the token sequence is exhausted.
func (p *Parser) peek() *Token {
	if p.pos >= len(p.tokens) {
		return nil
	}

	return &p.tokens[p.pos]
}

func (p *Parser) next() *Token {
	tok := p.peek()
	if tok != nil {
		p.pos++
	}

	return tok
}

func (p *Parser) check(typ TokenType) bool {
	tok := p.peek()
	return tok != nil && tok.Typ == typ
}

func (p *Parser) expect(typ TokenType, kind ParseErrorKind) (*Token, error) {
	if !p.check(typ) {
		return nil, p.errorf(kind)
	}

	return p.next(), nil
}

func (p *Parser) errorf(kind ParseErrorKind) error {
	return &ParseError{
		Kind:  kind,
		Found: p.peek(),
	}
}

func (p *Parser) statement() (Statement, error) {
	if tok := p.peek(); tok != nil && tok.Typ.IsTypeKeyword() {
		return p.varDecl()
	}

	expr, err := p.additiveExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenSemicolon, ParseExpectedSemicolon); err != nil {
		return nil, err
	}

	return &ExprStmt{X: expr}, nil
}

func (p *Parser) varDecl() (Statement, error) {
	tok := p.peek()
	if tok == nil {
		return nil, p.errorf(ParseExpectedTypeKeyword)
	}

	typ, ok := typeKeywords[tok.Typ]
	if !ok {
		return nil, p.errorf(ParseExpectedTypeKeyword)
	}
	p.next()

	name, err := p.expect(TokenIdentifier, ParseExpectedIdentifier)
	if err != nil {
		return nil, err
	}

	decl := &VariableDecl{
		Type: typ,
		Name: name.Value,
	}

	if p.check(TokenAssign) {
		p.next() // Skip =

		decl.Initializer, err = p.additiveExpr()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(TokenSemicolon, ParseExpectedSemicolon); err != nil {
		return nil, err
	}

	return decl, nil
}

func (p *Parser) additiveExpr() (Expr, error) {
	lhs, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		var op BinaryOp
		switch {
		case p.check(TokenPlus):
			op = BinaryAddition
		case p.check(TokenMinus):
			op = BinarySubtraction
		default:
			return lhs, nil
		}
		p.next()

		// Chained operands (for example 1 - 3 + 1) nest to the left
		rhs, err := p.primary()
		if err != nil {
			return nil, err
		}

		lhs = &BinaryExpr{
			Operation: op,
			Left:      lhs,
			Right:     rhs,
		}
	}
}

func (p *Parser) primary() (Expr, error) {
	tok := p.peek()
	if tok == nil || tok.Typ == TokenEOF {
		return nil, p.errorf(ParseUnexpectedEndOfInput)
	}

	switch tok.Typ {
	case TokenOpenParentheses:
		return p.parenthesisedExpr()
	case TokenNumber:
		p.next()
		return numberLiteral(tok.Value), nil
	case TokenString:
		p.next()
		return &StringLiteral{Value: tok.Value}, nil
	case TokenIdentifier:
		p.next()
		return &VariableRef{Name: tok.Value}, nil
	default:
		return nil, p.errorf(ParseUnexpectedToken)
	}
}

// parenthesisedExpr returns the inner expression as is, grouping is carried by
// the shape of the tree alone.
func (p *Parser) parenthesisedExpr() (Expr, error) {
	p.next() // Skip (

	expr, err := p.additiveExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenCloseParentheses, ParseExpectedClosingParen); err != nil {
		return nil, err
	}

	return expr, nil
}

func numberLiteral(text string) *NumberLiteral {
	typ := BasicInt
	if strings.Contains(text, ".") {
		typ = BasicFloat
	}

	return &NumberLiteral{
		Value: text,
		Type:  typ,
	}
}
