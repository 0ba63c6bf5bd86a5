package js_lower

// Rewrites of "super.prop" forms inside relocated static initializers. The
// home object for "super" is lost when code moves out of the class body, so
// accesses go through the "__superGet"/"__superSet" runtime helpers with the
// class temp binding standing in for both the class and "this":
//
//	"super.foo"        => "__superGet(_C, _C, 'foo')"
//	"super[foo]"       => "__superGet(_C, _C, foo)"
//	"super.foo(a, b)"  => "__superGet(_C, _C, 'foo').call(_C, a, b)"
//	"super.foo = bar"  => "__superSet(_C, _C, 'foo', bar)"
//	"super.foo += bar" => "__superSet(_C, _C, 'foo', __superGet(_C, _C, 'foo') + bar)"
//	"super.foo++"      => "(_a = __superGet(_C, _C, 'foo'), __superSet(_C, _C, 'foo', _a + 1), _a)"

import (
	"fmt"

	"github.com/classlift/classlift/internal/helpers"
	"github.com/classlift/classlift/internal/js_ast"
	"github.com/classlift/classlift/internal/logger"
)

// superPropertyKey extracts the property key if the expression is a
// "super.prop" or "super[prop]" access.
func superPropertyKey(expr js_ast.Expr) (js_ast.Expr, bool) {
	switch e := expr.Data.(type) {
	case *js_ast.EDot:
		if _, ok := e.Target.Data.(*js_ast.ESuper); ok {
			return js_ast.Expr{Loc: e.NameLoc, Data: &js_ast.EString{
				Value: helpers.StringToUTF16(e.Name),
			}}, true
		}
	case *js_ast.EIndex:
		if _, ok := e.Target.Data.(*js_ast.ESuper); ok {
			return e.Index, true
		}
	}
	return js_ast.Expr{}, false
}

func (c *ClassContext) superPropertyGet(loc logger.Loc, key js_ast.Expr) js_ast.Expr {
	return c.lowerer.runtimeCall(loc, "__superGet", []js_ast.Expr{
		c.MakeReadExpression(loc),
		c.MakeReadExpression(loc),
		key,
	})
}

func (c *ClassContext) superPropertySet(loc logger.Loc, key js_ast.Expr, value js_ast.Expr) js_ast.Expr {
	return c.lowerer.runtimeCall(loc, "__superSet", []js_ast.Expr{
		c.MakeReadExpression(loc),
		c.MakeReadExpression(loc),
		key,
		value,
	})
}

// RewriteSuperMember rewrites a "super.prop" read in place. Non-super member
// expressions are left alone.
func (c *ClassContext) RewriteSuperMember(expr *js_ast.Expr) {
	if _, ok := expr.Data.(*js_ast.EDot); !ok {
		return
	}
	if key, ok := superPropertyKey(*expr); ok {
		*expr = c.superPropertyGet(expr.Loc, key)
	}
}

// RewriteSuperComputedMember rewrites a "super[prop]" read in place.
func (c *ClassContext) RewriteSuperComputedMember(expr *js_ast.Expr) {
	if _, ok := expr.Data.(*js_ast.EIndex); !ok {
		return
	}
	if key, ok := superPropertyKey(*expr); ok {
		*expr = c.superPropertyGet(expr.Loc, key)
	}
}

// RewriteSuperCall rewrites a "super.prop(...)" call in place, preserving the
// receiver through ".call".
func (c *ClassContext) RewriteSuperCall(call *js_ast.ECall) {
	key, ok := superPropertyKey(call.Target)
	if !ok {
		return
	}
	loc := call.Target.Loc
	call.Target = js_ast.Expr{Loc: loc, Data: &js_ast.EDot{
		Target:  c.superPropertyGet(loc, key),
		Name:    "call",
		NameLoc: key.Loc,
	}}
	call.Args = append([]js_ast.Expr{c.MakeReadExpression(loc)}, call.Args...)
}

// RewriteSuperAssignment rewrites "super.prop = x" and "super.prop op= x"
// forms in place.
func (c *ClassContext) RewriteSuperAssignment(expr *js_ast.Expr) {
	e, ok := expr.Data.(*js_ast.EBinary)
	if !ok || e.Op.BinaryAssignTarget() == js_ast.AssignTargetNone {
		return
	}
	key, ok := superPropertyKey(e.Left)
	if !ok {
		return
	}
	loc := expr.Loc

	if e.Op == js_ast.BinOpAssign {
		*expr = c.superPropertySet(loc, key, e.Right)
		return
	}

	keyFunc, wrapFunc := c.captureKey(key)
	op := binaryOpForAssign(e.Op)

	if e.Op.IsShortCircuit() {
		// "super.foo ??= bar" => "__superGet(...) ?? __superSet(..., bar)"
		// The set only runs when the logical operator takes its right branch
		*expr = wrapFunc(js_ast.Expr{Loc: loc, Data: &js_ast.EBinary{
			Op:    op,
			Left:  c.superPropertyGet(loc, keyFunc()),
			Right: c.superPropertySet(loc, keyFunc(), e.Right),
		}})
		return
	}

	*expr = wrapFunc(c.superPropertySet(loc, keyFunc(), js_ast.Expr{Loc: e.Right.Loc, Data: &js_ast.EBinary{
		Op:    op,
		Left:  c.superPropertyGet(loc, keyFunc()),
		Right: e.Right,
	}}))
}

// RewriteSuperUpdate rewrites "super.prop++" and "--super.prop" forms in place.
func (c *ClassContext) RewriteSuperUpdate(expr *js_ast.Expr) {
	e, ok := expr.Data.(*js_ast.EUnary)
	if !ok || e.Op.UnaryAssignTarget() != js_ast.AssignTargetUpdate {
		return
	}
	key, ok := superPropertyKey(e.Value)
	if !ok {
		return
	}
	loc := expr.Loc

	op := js_ast.BinOpAdd
	if e.Op == js_ast.UnOpPreDec || e.Op == js_ast.UnOpPostDec {
		op = js_ast.BinOpSub
	}
	one := js_ast.Expr{Loc: loc, Data: &js_ast.ENumber{Value: 1}}
	keyFunc, wrapFunc := c.captureKey(key)

	if e.Op.IsPrefix() {
		// "++super.foo" => "__superSet(..., __superGet(...) + 1)"
		*expr = wrapFunc(c.superPropertySet(loc, keyFunc(), js_ast.Expr{Loc: loc, Data: &js_ast.EBinary{
			Op:    op,
			Left:  c.superPropertyGet(loc, keyFunc()),
			Right: one,
		}}))
		return
	}

	// "super.foo++" => "(_a = __superGet(...), __superSet(..., _a + 1), _a)"
	oldValue := c.newTemp(loc, "old")
	seq := js_ast.Assign(oldValue(), c.superPropertyGet(loc, keyFunc()))
	seq = js_ast.JoinWithComma(seq, c.superPropertySet(loc, keyFunc(), js_ast.Expr{Loc: loc, Data: &js_ast.EBinary{
		Op:    op,
		Left:  oldValue(),
		Right: one,
	}}))
	seq = js_ast.JoinWithComma(seq, oldValue())
	*expr = wrapFunc(seq)
}

// captureKey returns a factory producing reads of the key and a wrapper that
// evaluates the key's side effects once up front. Keys without side effects
// are reused directly.
func (c *ClassContext) captureKey(key js_ast.Expr) (func() js_ast.Expr, func(js_ast.Expr) js_ast.Expr) {
	identity := func(expr js_ast.Expr) js_ast.Expr { return expr }

	switch e := key.Data.(type) {
	case *js_ast.EString:
		return func() js_ast.Expr {
			return js_ast.Expr{Loc: key.Loc, Data: &js_ast.EString{Value: e.Value}}
		}, identity
	case *js_ast.ENumber:
		return func() js_ast.Expr {
			return js_ast.Expr{Loc: key.Loc, Data: &js_ast.ENumber{Value: e.Value}}
		}, identity
	}

	// "super[foo()] += bar" => "(_key = foo(), __superSet(_C, _C, _key, ...))"
	keyRead := c.newTemp(key.Loc, "key")
	wrap := func(expr js_ast.Expr) js_ast.Expr {
		return js_ast.JoinWithComma(js_ast.Assign(keyRead(), key), expr)
	}
	return keyRead, wrap
}

func binaryOpForAssign(op js_ast.OpCode) js_ast.OpCode {
	switch op {
	case js_ast.BinOpAddAssign:
		return js_ast.BinOpAdd
	case js_ast.BinOpSubAssign:
		return js_ast.BinOpSub
	case js_ast.BinOpMulAssign:
		return js_ast.BinOpMul
	case js_ast.BinOpDivAssign:
		return js_ast.BinOpDiv
	case js_ast.BinOpRemAssign:
		return js_ast.BinOpRem
	case js_ast.BinOpPowAssign:
		return js_ast.BinOpPow
	case js_ast.BinOpShlAssign:
		return js_ast.BinOpShl
	case js_ast.BinOpShrAssign:
		return js_ast.BinOpShr
	case js_ast.BinOpUShrAssign:
		return js_ast.BinOpUShr
	case js_ast.BinOpBitwiseOrAssign:
		return js_ast.BinOpBitwiseOr
	case js_ast.BinOpBitwiseAndAssign:
		return js_ast.BinOpBitwiseAnd
	case js_ast.BinOpBitwiseXorAssign:
		return js_ast.BinOpBitwiseXor
	case js_ast.BinOpNullishCoalescingAssign:
		return js_ast.BinOpNullishCoalescing
	case js_ast.BinOpLogicalOrAssign:
		return js_ast.BinOpLogicalOr
	case js_ast.BinOpLogicalAndAssign:
		return js_ast.BinOpLogicalAnd
	}
	panic(fmt.Sprintf("Internal error: op %q is not a compound assignment", js_ast.OpTable[op]))
}
