// Package eval is the expression collaborator behind configurable hooks:
// on_change and on_select sources are compiled once and executed against a
// scope of named variables each time the hook fires.
package eval

import (
	"errors"
	"fmt"
	"maps"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ErrForeignProgram is returned when a Program is executed by a Context that
// did not compile it.
var ErrForeignProgram = errors.New("program compiled by another context")

// Scope holds the named variables visible to a program for one execution.
type Scope map[string]any

// Program is a compiled expression.
type Program interface {
	// Source returns the text the program was compiled from.
	Source() string
}

// Context compiles and executes programs.
type Context interface {
	Compile(src string) (Program, error)
	Execute(p Program, scope Scope) (any, error)
}

// Expr is a Context backed by expr-lang/expr. Globals defined on it are
// visible to every program; scope variables shadow globals of the same name.
type Expr struct {
	globals map[string]any
}

var _ Context = (*Expr)(nil)

type program struct {
	src   string
	owner *Expr
	prog  *vm.Program
}

func (p *program) Source() string { return p.src }

// NewExpr returns an Expr with no globals.
func NewExpr() *Expr {
	return &Expr{globals: map[string]any{}}
}

// Define makes name visible to every program. Functions may be defined too,
// e.g. Define("log", func(args ...any) any { ... }).
func (e *Expr) Define(name string, v any) {
	e.globals[name] = v
}

// Compile parses and type-checks src. Names are resolved at execution time,
// so variables missing from the scope evaluate to nil instead of failing.
func (e *Expr) Compile(src string) (Program, error) {
	prog, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	return &program{src: src, owner: e, prog: prog}, nil
}

// Execute runs p with the globals overlaid by scope.
func (e *Expr) Execute(p Program, scope Scope) (any, error) {
	ep, ok := p.(*program)
	if !ok || ep.owner != e {
		return nil, ErrForeignProgram
	}

	env := make(map[string]any, len(e.globals)+len(scope))
	maps.Copy(env, e.globals)
	maps.Copy(env, scope)

	out, err := expr.Run(ep.prog, env)
	if err != nil {
		return nil, fmt.Errorf("run %q: %w", ep.src, err)
	}
	return out, nil
}
