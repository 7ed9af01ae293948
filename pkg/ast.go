package shiryu

// AST is the result of a parse. Nodes are kept in source order.
type AST struct {
	Nodes []Node
}

// Node is a top-level construct. Statements are the only kind for now.
type Node interface {
	astNode()
}

type StmtNode struct {
	Stmt Statement
}

func (*StmtNode) astNode() {}

type Statement interface {
	stmtNode()
}

type VariableDecl struct {
	Type        BasicType
	Name        string
	Initializer Expr // nil when the declaration has no initializer
}

type ExprStmt struct {
	X Expr
}

func (*VariableDecl) stmtNode() {}
func (*ExprStmt) stmtNode()     {}

type Expr interface {
	exprNode()
}

type VariableRef struct {
	Name string
}

// NumberLiteral keeps the literal as written. Range and precision are left
// to whoever consumes the tree.
type NumberLiteral struct {
	Value string
	Type  BasicType
}

type StringLiteral struct {
	Value string
}

type BinaryOp string

const (
	BinaryAddition    BinaryOp = "+"
	BinarySubtraction BinaryOp = "-"
)

type BinaryExpr struct {
	Operation BinaryOp
	Left      Expr
	Right     Expr
}

func (*VariableRef) exprNode()   {}
func (*NumberLiteral) exprNode() {}
func (*StringLiteral) exprNode() {}
func (*BinaryExpr) exprNode()    {}

type BasicType int

const (
	BasicInt BasicType = iota
	BasicFloat
	BasicUint
	BasicString
)

func (t BasicType) String() string {
	switch t {
	case BasicInt:
		return "int"
	case BasicFloat:
		return "float"
	case BasicUint:
		return "uint"
	case BasicString:
		return "string"
	default:
		return "unknown"
	}
}
