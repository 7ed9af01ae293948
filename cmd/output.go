package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kr/pretty"
	"go.shiryu.dev/internal/config"
	"go.shiryu.dev/pkg"
	"gopkg.in/yaml.v3"
)

func writeTokens(w io.Writer, tokens []shiryu.Token) error {
	for _, tok := range tokens {
		loc := "-"
		if tok.Loc != nil {
			loc = tok.Loc.String()
		}

		if _, err := fmt.Fprintf(w, "%-8s %-18s %q\n", loc, tok.Typ, tok.Value); err != nil {
			return err
		}
	}

	return nil
}

func render(w io.Writer, format string, tree *shiryu.AST) error {
	switch format {
	case config.FormatPretty:
		_, err := pretty.Fprintf(w, "%# v\n", tree)
		return err
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(dumpTree(tree))
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(dumpTree(tree)); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatSource:
		return shiryu.Format(w, tree)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// dumpTree turns the tree into plain maps so the JSON and YAML encoders can
// tag every node with its kind.
func dumpTree(tree *shiryu.AST) []interface{} {
	nodes := make([]interface{}, 0, len(tree.Nodes))
	for _, node := range tree.Nodes {
		if n, ok := node.(*shiryu.StmtNode); ok {
			nodes = append(nodes, dumpStmt(n.Stmt))
		}
	}

	return nodes
}

func dumpStmt(stmt shiryu.Statement) map[string]interface{} {
	switch s := stmt.(type) {
	case *shiryu.VariableDecl:
		m := map[string]interface{}{
			"kind": "var_decl",
			"type": s.Type.String(),
			"name": s.Name,
		}
		if s.Initializer != nil {
			m["initializer"] = dumpExpr(s.Initializer)
		}
		return m
	case *shiryu.ExprStmt:
		return map[string]interface{}{
			"kind": "expr",
			"expr": dumpExpr(s.X),
		}
	default:
		return nil
	}
}

func dumpExpr(expr shiryu.Expr) map[string]interface{} {
	switch e := expr.(type) {
	case *shiryu.VariableRef:
		return map[string]interface{}{"kind": "variable_ref", "name": e.Name}
	case *shiryu.NumberLiteral:
		return map[string]interface{}{"kind": "number", "value": e.Value, "type": e.Type.String()}
	case *shiryu.StringLiteral:
		return map[string]interface{}{"kind": "string", "value": e.Value}
	case *shiryu.BinaryExpr:
		return map[string]interface{}{
			"kind":  "binary",
			"op":    string(e.Operation),
			"left":  dumpExpr(e.Left),
			"right": dumpExpr(e.Right),
		}
	default:
		return nil
	}
}
