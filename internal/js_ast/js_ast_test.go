package js_ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/classlift/classlift/internal/helpers"
)

func directive(text string) Stmt {
	return Stmt{Data: &SDirective{Value: helpers.StringToUTF16(text)}}
}

func TestHasUseStrictDirective(t *testing.T) {
	assert.False(t, HasUseStrictDirective(nil))
	assert.True(t, HasUseStrictDirective([]Stmt{directive("use strict")}))

	// Other directives may precede it in the prologue
	assert.True(t, HasUseStrictDirective([]Stmt{
		directive("use asm"),
		directive("use strict"),
	}))

	// The prologue ends at the first non-directive statement
	assert.False(t, HasUseStrictDirective([]Stmt{
		{Data: &SExpr{Value: Expr{Data: &ENumber{Value: 1}}}},
		directive("use strict"),
	}))
}

func TestOpCodeClassification(t *testing.T) {
	assert.Equal(t, AssignTargetUpdate, UnOpPreInc.UnaryAssignTarget())
	assert.Equal(t, AssignTargetUpdate, UnOpPostDec.UnaryAssignTarget())
	assert.Equal(t, AssignTargetNone, UnOpDelete.UnaryAssignTarget())

	assert.Equal(t, AssignTargetReplace, BinOpAssign.BinaryAssignTarget())
	assert.Equal(t, AssignTargetUpdate, BinOpAddAssign.BinaryAssignTarget())
	assert.Equal(t, AssignTargetNone, BinOpComma.BinaryAssignTarget())
	assert.Equal(t, AssignTargetNone, BinOpAdd.BinaryAssignTarget())

	assert.True(t, UnOpPreDec.IsPrefix())
	assert.False(t, UnOpPostInc.IsPrefix())

	assert.True(t, BinOpLogicalOrAssign.IsShortCircuit())
	assert.True(t, BinOpNullishCoalescingAssign.IsShortCircuit())
	assert.False(t, BinOpAddAssign.IsShortCircuit())

	// Every op code has a printable name
	assert.Equal(t, int(BinOpLogicalAndAssign)+1, len(OpTable))
}

func TestIsSuperMemberTarget(t *testing.T) {
	superExpr := Expr{Data: &ESuper{}}
	thisExpr := Expr{Data: &EThis{}}

	assert.True(t, IsSuperMemberTarget(Expr{Data: &EDot{Target: superExpr, Name: "x"}}))
	assert.True(t, IsSuperMemberTarget(Expr{Data: &EIndex{Target: superExpr, Index: thisExpr}}))
	assert.False(t, IsSuperMemberTarget(Expr{Data: &EDot{Target: thisExpr, Name: "x"}}))
	assert.False(t, IsSuperMemberTarget(superExpr))
}

func TestJoinWithComma(t *testing.T) {
	a := Expr{Data: &ENumber{Value: 1}}
	b := Expr{Data: &ENumber{Value: 2}}

	assert.Equal(t, a.Data, JoinWithComma(Expr{}, a).Data)
	assert.Equal(t, a.Data, JoinWithComma(a, Expr{}).Data)

	joined, ok := JoinWithComma(a, b).Data.(*EBinary)
	assert.True(t, ok)
	assert.Equal(t, BinOpComma, joined.Op)
}
