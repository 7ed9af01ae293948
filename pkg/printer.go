package shiryu

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Format writes the canonical source form of tree to w, one statement per
// line. Parsing the output again yields an identical tree. A nil tree renders
// as nothing.
func Format(w io.Writer, tree *AST) error {
	if tree == nil {
		return nil
	}

	bw := bufio.NewWriter(w)

	for _, node := range tree.Nodes {
		stmt, ok := node.(*StmtNode)
		if !ok {
			return fmt.Errorf("cannot format node of type %T", node)
		}

		if err := writeStmt(bw, stmt.Stmt); err != nil {
			return err
		}
		bw.WriteString(";\n")
	}

	return bw.Flush()
}

func (a *AST) String() string {
	var sb strings.Builder
	if err := Format(&sb, a); err != nil {
		return "<" + err.Error() + ">"
	}

	return sb.String()
}

func writeStmt(w *bufio.Writer, stmt Statement) error {
	switch s := stmt.(type) {
	case *VariableDecl:
		fmt.Fprintf(w, "%s %s", s.Type, s.Name)
		if s.Initializer == nil {
			return nil
		}

		w.WriteString(" = ")
		return writeExpr(w, s.Initializer)
	case *ExprStmt:
		return writeExpr(w, s.X)
	default:
		return fmt.Errorf("cannot format statement of type %T", stmt)
	}
}

func writeExpr(w *bufio.Writer, expr Expr) error {
	switch e := expr.(type) {
	case *VariableRef:
		w.WriteString(e.Name)
	case *NumberLiteral:
		w.WriteString(e.Value)
	case *StringLiteral:
		w.WriteString(`"` + e.Value + `"`)
	case *BinaryExpr:
		if err := writeExpr(w, e.Left); err != nil {
			return err
		}

		w.WriteString(" " + string(e.Operation) + " ")

		// Operators fold to the left, so only a right operand needs grouping
		_, nested := e.Right.(*BinaryExpr)
		if nested {
			w.WriteByte('(')
		}
		if err := writeExpr(w, e.Right); err != nil {
			return err
		}
		if nested {
			w.WriteByte(')')
		}
	default:
		return fmt.Errorf("cannot format expression of type %T", expr)
	}

	return nil
}
