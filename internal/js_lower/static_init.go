package js_lower

// Transform of static property initializers.
//
// A static initializer is moved from inside the class body to just after the
// class, so this visitor rewrites everything in it that depended on the old
// position:
//
//  1. "this" and references to the class's own name become reads of the class
//     temp binding.
//  2. "delete this" becomes "true".
//  3. "super.prop" forms are delegated to the super rewrites.
//  4. The first level of scopes is re-parented onto the scope the initializer
//     is relocated into.
//  5. If the code outside the class is sloppy mode, scopes inside the
//     initializer have their strict-mode flag cleared, except under constructs
//     that declare their own strict mode.
//
// Three different notions of depth are tracked independently and do not
// coincide: the "this"-context depth (functions and class bodies start a new
// one, arrows and blocks do not), the scope depth relative to the
// initializer's start (anything with a scope), and the sloppy-mode flag
// (suppressed for strict subtrees). Flipping strict-mode flags is a known
// approximation: exact semantics would wrap the relocated code in a
// strict-mode closure instead. This matches the reference output and must not
// be "fixed".

import (
	"github.com/classlift/classlift/internal/ast"
	"github.com/classlift/classlift/internal/js_ast"
)

// TransformStaticInitializer rewrites one static property initializer in
// place. The expression tree, the class context, and the scope/symbol tables
// are exclusively held by the visitor for the duration of the call.
func (l *Lowerer) TransformStaticInitializer(ctx *ClassContext, value *js_ast.Expr) {
	makeSloppyMode := !l.Scopes.GetFlags(l.CurrentScope).Has(js_ast.ScopeStrictMode)
	v := staticInitializerVisitor{
		lowerer:        l,
		class:          ctx,
		makeSloppyMode: makeSloppyMode,

		// If the class has no name and no scope flags need updating, nothing
		// interesting can exist past the first construct with its own "this",
		// so traversal stops there instead of descending
		walkDeep: makeSloppyMode || ctx.HasNameBinding(),
	}
	v.visitExpr(value)
}

type staticInitializerVisitor struct {
	lowerer *Lowerer
	class   *ClassContext

	// See TransformStaticInitializer
	walkDeep bool

	// "true" if scopes entered from here down should be made sloppy mode
	makeSloppyMode bool

	// Incremented when entering code where "this" no longer refers to the
	// "this" of the initializer. Rewrites only fire when thisDepth == 0.
	thisDepth uint32

	// Incremented when entering a scope. A scope's parent is updated exactly
	// when scopeDepth == 0. This doesn't track depth precisely: scopes that
	// can never be first-level when starting from an expression (such as block
	// statements, which must be inside a function) don't bother adjusting it.
	scopeDepth uint32
}

func (v *staticInitializerVisitor) visitExpr(expr *js_ast.Expr) {
	switch e := expr.Data.(type) {
	case *js_ast.EThis:
		if v.thisDepth == 0 {
			*expr = v.class.MakeReadExpression(expr.Loc)
		}
		return

	case *js_ast.EIdentifier:
		v.rewriteClassNameReference(e)
		return

	case *js_ast.EUnary:
		if e.Op == js_ast.UnOpDelete {
			if _, ok := e.Value.Data.(*js_ast.EThis); ok {
				// "delete this" is not a syntax error, it just evaluates to "true"
				if v.thisDepth == 0 {
					expr.Data = &js_ast.EBoolean{Value: true}
				}
				return
			}
		} else if e.Op.UnaryAssignTarget() == js_ast.AssignTargetUpdate && v.thisDepth == 0 {
			v.class.RewriteSuperUpdate(expr)
		}

	case *js_ast.EBinary:
		if e.Op.BinaryAssignTarget() != js_ast.AssignTargetNone && v.thisDepth == 0 {
			v.class.RewriteSuperAssignment(expr)
		}

	case *js_ast.EDot:
		if v.thisDepth == 0 {
			v.class.RewriteSuperMember(expr)
		}

	case *js_ast.EIndex:
		if v.thisDepth == 0 {
			v.class.RewriteSuperComputedMember(expr)
		}

	case *js_ast.ECall:
		if v.thisDepth == 0 {
			v.class.RewriteSuperCall(e)
		}

	case *js_ast.EArrow:
		v.visitArrow(e)
		return

	case *js_ast.EFunction:
		v.visitFn(&e.Fn)
		return

	case *js_ast.EClass:
		v.visitClass(&e.Class)
		return
	}

	// A rewrite above may have replaced the node, so re-read expr.Data here
	v.visitExprChildren(expr)
}

// Replace a reference to the class's own name with the temp binding. The
// reference moves from the name symbol's reference list to the temp symbol's.
func (v *staticInitializerVisitor) rewriteClassNameReference(e *js_ast.EIdentifier) {
	nameSymbol, ok := v.class.NameSymbolID()
	if !ok {
		return
	}
	symbol, ok := v.lowerer.Symbols.ResolveReference(e.Ref)
	if !ok || symbol != nameSymbol {
		return
	}

	temp := v.class.GetOrCreateTempBinding()
	e.Name = temp.Name
	v.lowerer.Symbols.RebindReference(e.Ref, nameSymbol, temp.Ref)
}

// Update the scope's parent to the splice-site scope if this is a first-level
// scope. Deeper scopes keep their lexical parent, which stays correct because
// the whole subtree moves together.
func (v *staticInitializerVisitor) reparentScopeIfFirstLevel(scope ast.ScopeID) {
	if v.scopeDepth == 0 {
		v.lowerer.Scopes.SetParent(scope, v.lowerer.CurrentScope)
	}
}

func (v *staticInitializerVisitor) enterScope(scope ast.ScopeID) {
	if v.makeSloppyMode {
		v.lowerer.Scopes.ClearStrictMode(scope)
	}
}

// Ordinary functions have their own "this". Their body is only walked when
// walkDeep is set; when it isn't, there's nothing inside to rewrite or fix up,
// though the function's own scope may still need re-parenting.
func (v *staticInitializerVisitor) visitFn(fn *js_ast.Fn) {
	parentSloppyMode := v.makeSloppyMode
	if v.makeSloppyMode && js_ast.HasUseStrictDirective(fn.Body.Stmts) {
		v.makeSloppyMode = false
	}

	v.reparentScopeIfFirstLevel(fn.ScopeID)

	if v.walkDeep {
		v.enterScope(fn.ScopeID)
		v.thisDepth++
		v.scopeDepth++
		v.visitArgs(fn.Args)
		v.visitStmts(fn.Body.Stmts)
		v.thisDepth--
		v.scopeDepth--
	}

	v.makeSloppyMode = parentSloppyMode
}

// Arrow functions share the enclosing "this", so the body is always walked.
func (v *staticInitializerVisitor) visitArrow(arrow *js_ast.EArrow) {
	parentSloppyMode := v.makeSloppyMode
	if v.makeSloppyMode && js_ast.HasUseStrictDirective(arrow.Body.Stmts) {
		v.makeSloppyMode = false
	}

	v.reparentScopeIfFirstLevel(arrow.ScopeID)

	v.enterScope(arrow.ScopeID)
	v.scopeDepth++
	v.visitArgs(arrow.Args)
	v.visitStmts(arrow.Body.Stmts)
	v.scopeDepth--

	v.makeSloppyMode = parentSloppyMode
}

func (v *staticInitializerVisitor) visitClass(class *js_ast.Class) {
	parentSloppyMode := v.makeSloppyMode
	// Classes are always strict mode
	v.makeSloppyMode = false

	v.reparentScopeIfFirstLevel(class.ScopeID)

	v.scopeDepth++
	if class.ExtendsOrNil.Data != nil {
		v.visitExpr(&class.ExtendsOrNil)
	}
	for i := range class.Properties {
		v.visitClassProperty(&class.Properties[i])
	}
	v.scopeDepth--

	v.makeSloppyMode = parentSloppyMode
}

// "this" in a computed key of a class property refers to "this" of the parent
// class:
//
//	class Outer {
//	  static prop = class Inner { [this] = 1; };
//	}
//
// So computed keys are visited at the current this-depth, but field values
// and static blocks are visited one level down. Method values are functions
// and adjust the depth themselves. The class is already the first-level scope
// here, so nothing inside it can need re-parenting.
func (v *staticInitializerVisitor) visitClassProperty(prop *js_ast.Property) {
	if prop.Kind == js_ast.PropertyClassStaticBlock {
		block := prop.ClassStaticBlock
		v.enterScope(block.ScopeID)
		v.thisDepth++
		v.visitStmts(block.Stmts)
		v.thisDepth--
		return
	}

	if prop.IsComputed {
		v.visitExpr(&prop.Key)
	}

	if prop.ValueOrNil.Data != nil {
		if prop.IsMethod || prop.Kind == js_ast.PropertyGet || prop.Kind == js_ast.PropertySet {
			v.visitExpr(&prop.ValueOrNil)
		} else {
			v.thisDepth++
			v.visitExpr(&prop.ValueOrNil)
			v.thisDepth--
		}
	}

	if prop.InitializerOrNil.Data != nil {
		v.thisDepth++
		v.visitExpr(&prop.InitializerOrNil)
		v.thisDepth--
	}
}

// A namespace body is module-like: it has its own "this" and may carry its
// own "use strict" directive. It can only appear under a function, so its
// scope is never first-level.
func (v *staticInitializerVisitor) visitNamespace(ns *js_ast.SNamespace) {
	parentSloppyMode := v.makeSloppyMode
	if v.makeSloppyMode && js_ast.HasUseStrictDirective(ns.Stmts) {
		v.makeSloppyMode = false
	}

	if v.walkDeep {
		v.enterScope(ns.ScopeID)
		v.thisDepth++
		v.visitStmts(ns.Stmts)
		v.thisDepth--
	}

	v.makeSloppyMode = parentSloppyMode
}

func (v *staticInitializerVisitor) visitArgs(args []js_ast.Arg) {
	for i := range args {
		arg := &args[i]
		v.visitBinding(&arg.Binding)
		if arg.DefaultOrNil.Data != nil {
			v.visitExpr(&arg.DefaultOrNil)
		}
	}
}

func (v *staticInitializerVisitor) visitBinding(binding *js_ast.Binding) {
	switch b := binding.Data.(type) {
	case *js_ast.BArray:
		for i := range b.Items {
			item := &b.Items[i]
			v.visitBinding(&item.Binding)
			if item.DefaultOrNil.Data != nil {
				v.visitExpr(&item.DefaultOrNil)
			}
		}
	case *js_ast.BObject:
		for i := range b.Properties {
			property := &b.Properties[i]
			if property.IsComputed {
				v.visitExpr(&property.Key)
			}
			v.visitBinding(&property.Value)
			if property.DefaultOrNil.Data != nil {
				v.visitExpr(&property.DefaultOrNil)
			}
		}
	}
}

func (v *staticInitializerVisitor) visitStmts(stmts []js_ast.Stmt) {
	for i := range stmts {
		v.visitStmt(&stmts[i])
	}
}

func (v *staticInitializerVisitor) visitStmt(stmt *js_ast.Stmt) {
	switch s := stmt.Data.(type) {
	case *js_ast.SBlock:
		// A block must be inside a function, so it's never first-level
		v.enterScope(s.ScopeID)
		v.visitStmts(s.Stmts)

	case *js_ast.SExpr:
		v.visitExpr(&s.Value)

	case *js_ast.SReturn:
		if s.ValueOrNil.Data != nil {
			v.visitExpr(&s.ValueOrNil)
		}

	case *js_ast.SIf:
		v.visitExpr(&s.Test)
		v.visitStmt(&s.Yes)
		if s.NoOrNil.Data != nil {
			v.visitStmt(&s.NoOrNil)
		}

	case *js_ast.SThrow:
		v.visitExpr(&s.Value)

	case *js_ast.SLocal:
		for i := range s.Decls {
			decl := &s.Decls[i]
			v.visitBinding(&decl.Binding)
			if decl.ValueOrNil.Data != nil {
				v.visitExpr(&decl.ValueOrNil)
			}
		}

	case *js_ast.SFunction:
		v.visitFn(&s.Fn)

	case *js_ast.SClass:
		v.visitClass(&s.Class)

	case *js_ast.SNamespace:
		v.visitNamespace(s)
	}
}

func (v *staticInitializerVisitor) visitExprChildren(expr *js_ast.Expr) {
	switch e := expr.Data.(type) {
	case *js_ast.EArray:
		for i := range e.Items {
			v.visitExpr(&e.Items[i])
		}

	case *js_ast.EUnary:
		v.visitExpr(&e.Value)

	case *js_ast.EBinary:
		v.visitExpr(&e.Left)
		v.visitExpr(&e.Right)

	case *js_ast.ENew:
		v.visitExpr(&e.Target)
		for i := range e.Args {
			v.visitExpr(&e.Args[i])
		}

	case *js_ast.ECall:
		v.visitExpr(&e.Target)
		for i := range e.Args {
			v.visitExpr(&e.Args[i])
		}

	case *js_ast.EDot:
		v.visitExpr(&e.Target)

	case *js_ast.EIndex:
		v.visitExpr(&e.Target)
		v.visitExpr(&e.Index)

	case *js_ast.EObject:
		// Unlike class properties, object literal property values share the
		// enclosing "this"; only object methods have their own, and those are
		// function values handled by visitFn
		for i := range e.Properties {
			property := &e.Properties[i]
			if property.IsComputed {
				v.visitExpr(&property.Key)
			}
			if property.ValueOrNil.Data != nil {
				v.visitExpr(&property.ValueOrNil)
			}
			if property.InitializerOrNil.Data != nil {
				v.visitExpr(&property.InitializerOrNil)
			}
		}

	case *js_ast.ESpread:
		v.visitExpr(&e.Value)

	case *js_ast.ETemplate:
		if e.TagOrNil.Data != nil {
			v.visitExpr(&e.TagOrNil)
		}
		for i := range e.Parts {
			v.visitExpr(&e.Parts[i].Value)
		}

	case *js_ast.EIf:
		v.visitExpr(&e.Test)
		v.visitExpr(&e.Yes)
		v.visitExpr(&e.No)

	case *js_ast.EAwait:
		v.visitExpr(&e.Value)

	case *js_ast.EYield:
		if e.ValueOrNil.Data != nil {
			v.visitExpr(&e.ValueOrNil)
		}

	case *js_ast.ETSAs:
		v.visitExpr(&e.Value)
		v.visitTSType(&e.Type)
	}
}

// The only remaining constructs with a scope that can be first-level when
// traversal starts from an expression are these type-level ones.
func (v *staticInitializerVisitor) visitTSType(t *js_ast.TSType) {
	switch ts := t.Data.(type) {
	case *js_ast.TSTypeRef:
		for i := range ts.TypeArgs {
			v.visitTSType(&ts.TypeArgs[i])
		}

	case *js_ast.TSConditionalType:
		v.reparentScopeIfFirstLevel(ts.ScopeID)

		// The check type is outside the conditional type's scope
		v.visitTSType(&ts.CheckType)

		v.enterScope(ts.ScopeID)
		v.scopeDepth++
		v.visitTSType(&ts.ExtendsType)
		v.visitTSType(&ts.TrueType)
		v.scopeDepth--

		// The false type is outside the conditional type's scope
		v.visitTSType(&ts.FalseType)

	case *js_ast.TSMappedType:
		v.reparentScopeIfFirstLevel(ts.ScopeID)
		v.enterScope(ts.ScopeID)
		v.scopeDepth++
		v.visitTSType(&ts.Constraint)
		if ts.TypeOrNil.Data != nil {
			v.visitTSType(&ts.TypeOrNil)
		}
		v.scopeDepth--

	case *js_ast.TSTypeLiteral:
		for i := range ts.Members {
			v.visitTSMember(&ts.Members[i])
		}
	}
}

func (v *staticInitializerVisitor) visitTSMember(member *js_ast.TSMember) {
	switch m := member.Data.(type) {
	case *js_ast.TSPropertySignature:
		if m.TypeOrNil.Data != nil {
			v.visitTSType(&m.TypeOrNil)
		}

	case *js_ast.TSMethodSignature:
		v.reparentScopeIfFirstLevel(m.ScopeID)
		v.enterScope(m.ScopeID)
		v.scopeDepth++
		for i := range m.Params {
			v.visitTSType(&m.Params[i])
		}
		if m.ReturnTypeOrNil.Data != nil {
			v.visitTSType(&m.ReturnTypeOrNil)
		}
		v.scopeDepth--

	case *js_ast.TSConstructSignature:
		v.reparentScopeIfFirstLevel(m.ScopeID)
		v.enterScope(m.ScopeID)
		v.scopeDepth++
		for i := range m.Params {
			v.visitTSType(&m.Params[i])
		}
		if m.ReturnTypeOrNil.Data != nil {
			v.visitTSType(&m.ReturnTypeOrNil)
		}
		v.scopeDepth--
	}
}
