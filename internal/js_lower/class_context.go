package js_lower

import (
	"github.com/classlift/classlift/internal/ast"
	"github.com/classlift/classlift/internal/js_ast"
	"github.com/classlift/classlift/internal/logger"
)

// TempBinding is the compiler-generated binding that holds the class value
// for relocated initializer code.
type TempBinding struct {
	Name string
	Ref  ast.SymbolID
}

// ClassContext identifies the class currently being lowered. It owns the
// class's temp binding, which is created on first demand and then reused for
// every reference that needs it across all of the class's initializers.
type ClassContext struct {
	lowerer *Lowerer

	name       string      // original class name text, "" if anonymous
	nameSymbol ast.Index32 // the class's own name binding, if named

	temp *TempBinding

	// Extra bindings generated while rewriting (captured keys and update
	// values). The caller declares these alongside the temp binding.
	GeneratedRefs []ast.SymbolID
}

func (l *Lowerer) NewClassContext(class *js_ast.Class) *ClassContext {
	ctx := &ClassContext{lowerer: l}
	if class.Name != nil {
		ctx.nameSymbol = ast.MakeIndex32(uint32(class.Name.Ref))
		ctx.name = l.Symbols.Get(class.Name.Ref).OriginalName
	}
	return ctx
}

func (c *ClassContext) HasNameBinding() bool {
	return c.nameSymbol.IsValid()
}

func (c *ClassContext) NameSymbolID() (ast.SymbolID, bool) {
	if !c.nameSymbol.IsValid() {
		return 0, false
	}
	return ast.SymbolID(c.nameSymbol.GetIndex()), true
}

// GetOrCreateTempBinding returns the class's temp binding, creating it if
// this is the first reference that needs it.
func (c *ClassContext) GetOrCreateTempBinding() TempBinding {
	if c.temp == nil {
		name := c.lowerer.generateName(c.name)
		c.temp = &TempBinding{
			Name: name,
			Ref:  c.lowerer.Symbols.NewSymbol(js_ast.SymbolOther, name),
		}
	}
	return *c.temp
}

// TempBinding returns the temp binding if one has been created. The caller
// uses this to declare the binding and assign the class value to it.
func (c *ClassContext) TempBinding() (TempBinding, bool) {
	if c.temp == nil {
		return TempBinding{}, false
	}
	return *c.temp, true
}

// MakeReadExpression builds a read of the temp binding at the given source
// position, creating the binding if needed. Each read is a fresh reference so
// the symbol's reference list stays accurate.
func (c *ClassContext) MakeReadExpression(loc logger.Loc) js_ast.Expr {
	temp := c.GetOrCreateTempBinding()
	return js_ast.Expr{Loc: loc, Data: &js_ast.EIdentifier{
		Name: temp.Name,
		Ref:  c.lowerer.Symbols.NewReference(temp.Ref),
	}}
}

// newTemp creates a generated binding for a captured value and returns a
// factory for reads of it. Each read is a fresh reference.
func (c *ClassContext) newTemp(loc logger.Loc, hint string) func() js_ast.Expr {
	name := c.lowerer.generateName(hint)
	symbol := c.lowerer.Symbols.NewSymbol(js_ast.SymbolOther, name)
	c.GeneratedRefs = append(c.GeneratedRefs, symbol)
	return func() js_ast.Expr {
		return js_ast.Expr{Loc: loc, Data: &js_ast.EIdentifier{
			Name: name,
			Ref:  c.lowerer.Symbols.NewReference(symbol),
		}}
	}
}
