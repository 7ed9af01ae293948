package shiryu

// Inspect traverses the tree rooted at node in depth-first order. It calls
// f(node) first; when f returns true, Inspect descends into the children of
// node. node may be an *AST, a Node, a Statement or an Expr.
func Inspect(node interface{}, f func(interface{}) bool) {
	if node == nil || !f(node) {
		return
	}

	switch n := node.(type) {
	case *AST:
		for _, child := range n.Nodes {
			Inspect(child, f)
		}
	case *StmtNode:
		Inspect(n.Stmt, f)
	case *VariableDecl:
		if n.Initializer != nil {
			Inspect(n.Initializer, f)
		}
	case *ExprStmt:
		Inspect(n.X, f)
	case *BinaryExpr:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
	}
}
