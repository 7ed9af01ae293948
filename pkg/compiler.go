package shiryu

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/pterm/pterm"
	"golang.org/x/sync/errgroup"
)

// ParseSource lexes and parses source. The error of the failing stage is
// returned unchanged.
func ParseSource(source string) (*AST, error) {
	tokens, err := Lex(source)
	if err != nil {
		return nil, err
	}

	return Parse(tokens)
}

type Compiler struct {
	logger *pterm.Logger
}

type Option func(*Compiler)

// WithLogger makes the compiler report stage results at debug level.
func WithLogger(logger *pterm.Logger) Option {
	return func(c *Compiler) {
		c.logger = logger
	}
}

func NewCompiler(opts ...Option) *Compiler {
	c := &Compiler{
		logger: pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compile parses the file at filename. Lex and parse errors are prefixed with
// the file name and still unwrap to *LexError or *ParseError.
func (c *Compiler) Compile(filename string) (*AST, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ast, err := c.CompileFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", filename, err)
	}

	c.logger.Info("parsed file", c.logger.Args("file", filename, "statements", len(ast.Nodes)))
	return ast, nil
}

func (c *Compiler) CompileFromReader(reader io.Reader) (*AST, error) {
	source, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	return c.CompileSource(string(source))
}

func (c *Compiler) CompileSource(source string) (*AST, error) {
	tokens, err := Lex(source)
	if err != nil {
		c.logger.Debug("lexing failed", c.logger.Args("error", err.Error()))
		return nil, err
	}
	c.logger.Debug("lexed source", c.logger.Args("tokens", len(tokens)))

	ast, err := Parse(tokens)
	if err != nil {
		c.logger.Debug("parsing failed", c.logger.Args("error", err.Error()))
		return nil, err
	}
	c.logger.Debug("parsed source", c.logger.Args("statements", len(ast.Nodes)))

	return ast, nil
}

// CompileFiles parses every file concurrently. Trees are returned in the
// order of filenames; the first failure cancels the files not yet started.
func (c *Compiler) CompileFiles(ctx context.Context, filenames ...string) ([]*AST, error) {
	trees := make([]*AST, len(filenames))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, filename := range filenames {
		i, filename := i, filename
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			ast, err := c.Compile(filename)
			if err != nil {
				return err
			}

			trees[i] = ast
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return trees, nil
}
