// Package js_lower relocates class static-field initializers out of the
// class body while preserving their runtime semantics.
//
// Moving code out of a class changes what "this", the class's own name, and
// "super.prop" mean at the new location, so every such reference in a
// relocated initializer is rewritten against a temp binding that holds the
// class value:
//
//	class C { static x = this.y; }   =>  var _C; class C {}; _C = C; C.x = _C.y;
//	x = class C { static x = C.y; }  =>  var _C; x = (_C = class C {}, _C.x = _C.y, _C)
//
// The temp binding is used instead of the class name because the name binding
// can be mutated before a non-immediately-executed initializer (an arrow or
// function value) runs.
package js_lower

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/classlift/classlift/internal/ast"
	"github.com/classlift/classlift/internal/helpers"
	"github.com/classlift/classlift/internal/js_ast"
	"github.com/classlift/classlift/internal/logger"
	"github.com/classlift/classlift/internal/runtime"
)

// Lowerer carries the per-file state shared by all class lowering work: the
// scope and symbol tables, and the scope that lowered statements are spliced
// into. One Lowerer must not be used from more than one goroutine, and the
// tables it points at must not be touched while a transform is running.
type Lowerer struct {
	Symbols *js_ast.SymbolTable
	Scopes  *js_ast.ScopeTable

	// The scope at the splice site. First-level scopes inside a relocated
	// initializer are re-parented onto this scope.
	CurrentScope ast.ScopeID

	// Optional hook for naming generated bindings. The default prefixes "_"
	// without avoiding collisions; callers that care pass a renamer-backed hook.
	GenerateName func(hint string) string

	// Symbols for runtime helpers like "__superGet", created once per file
	runtimeRefs map[string]ast.SymbolID
}

func NewLowerer(symbols *js_ast.SymbolTable, scopes *js_ast.ScopeTable, currentScope ast.ScopeID) *Lowerer {
	return &Lowerer{Symbols: symbols, Scopes: scopes, CurrentScope: currentScope}
}

func (l *Lowerer) generateName(hint string) string {
	if l.GenerateName != nil {
		return l.GenerateName(hint)
	}
	if hint == "" {
		hint = "class"
	}
	return "_" + js_ast.ForceValidIdentifier(hint)
}

// runtimeCall builds a call to a runtime helper. Helper symbols are unbound;
// the caller injects runtime.Code to define them.
func (l *Lowerer) runtimeCall(loc logger.Loc, name string, args []js_ast.Expr) js_ast.Expr {
	if !runtime.IsHelperName(name) {
		panic(fmt.Sprintf("Internal error: unknown runtime helper %q", name))
	}
	if l.runtimeRefs == nil {
		l.runtimeRefs = make(map[string]ast.SymbolID)
	}
	symbol, ok := l.runtimeRefs[name]
	if !ok {
		symbol = l.Symbols.NewSymbol(js_ast.SymbolUnbound, name)
		l.runtimeRefs[name] = symbol
	}
	target := js_ast.Expr{Loc: loc, Data: &js_ast.EIdentifier{
		Name: name,
		Ref:  l.Symbols.NewReference(symbol),
	}}
	return js_ast.Expr{Loc: loc, Data: &js_ast.ECall{Target: target, Args: args}}
}

// LowerClassStaticFields rewrites every static field initializer of the class
// and returns the "C.x = value" statements for the caller to splice in after
// the class declaration. Initializers are cleared from the class body.
// Assignment targets use the original class name when the class has one; the
// temp binding only appears inside the rewritten initializer values.
func (l *Lowerer) LowerClassStaticFields(ctx *ClassContext, class *js_ast.Class) ([]js_ast.Stmt, error) {
	if class == nil {
		return nil, errors.New("lower: no class provided")
	}
	if ctx == nil {
		return nil, errors.New("lower: no class context provided")
	}

	var stmts []js_ast.Stmt
	for i := range class.Properties {
		prop := &class.Properties[i]
		if !prop.IsStatic || prop.IsMethod || prop.Kind != js_ast.PropertyNormal {
			continue
		}
		if prop.InitializerOrNil.Data == nil {
			continue
		}

		value := prop.InitializerOrNil
		l.TransformStaticInitializer(ctx, &value)

		target, err := l.staticFieldTarget(ctx, class, prop)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, js_ast.AssignStmt(target, value))
		prop.InitializerOrNil = js_ast.Expr{}
	}
	return stmts, nil
}

func (l *Lowerer) staticFieldTarget(ctx *ClassContext, class *js_ast.Class, prop *js_ast.Property) (js_ast.Expr, error) {
	var base js_ast.Expr
	if nameSymbol, ok := ctx.NameSymbolID(); ok {
		base = js_ast.Expr{Loc: prop.Key.Loc, Data: &js_ast.EIdentifier{
			Name: l.Symbols.Get(nameSymbol).OriginalName,
			Ref:  l.Symbols.NewReference(nameSymbol),
		}}
	} else {
		base = ctx.MakeReadExpression(prop.Key.Loc)
	}

	if !prop.IsComputed {
		key, ok := prop.Key.Data.(*js_ast.EString)
		if !ok {
			return js_ast.Expr{}, errors.Errorf(
				"lower: non-computed field key must be a string, got:\n%s", js_ast.DumpExpr(prop.Key))
		}
		return js_ast.Expr{Loc: prop.Key.Loc, Data: &js_ast.EDot{
			Target:  base,
			Name:    helpers.UTF16ToString(key.Value),
			NameLoc: prop.Key.Loc,
		}}, nil
	}
	return js_ast.Expr{Loc: prop.Key.Loc, Data: &js_ast.EIndex{Target: base, Index: prop.Key}}, nil
}
