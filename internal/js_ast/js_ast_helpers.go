package js_ast

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/classlift/classlift/internal/logger"
)

func Assign(a Expr, b Expr) Expr {
	return Expr{Loc: a.Loc, Data: &EBinary{Op: BinOpAssign, Left: a, Right: b}}
}

func AssignStmt(a Expr, b Expr) Stmt {
	return Stmt{Loc: a.Loc, Data: &SExpr{Value: Assign(a, b)}}
}

func JoinWithComma(a Expr, b Expr) Expr {
	if a.Data == nil {
		return b
	}
	if b.Data == nil {
		return a
	}
	return Expr{Loc: a.Loc, Data: &EBinary{Op: BinOpComma, Left: a, Right: b}}
}

func BooleanExpr(loc logger.Loc, value bool) Expr {
	return Expr{Loc: loc, Data: &EBoolean{Value: value}}
}

// IsSuperMemberTarget reports whether the expression is a "super.prop" or
// "super[prop]" access.
func IsSuperMemberTarget(expr Expr) bool {
	switch e := expr.Data.(type) {
	case *EDot:
		_, ok := e.Target.Data.(*ESuper)
		return ok
	case *EIndex:
		_, ok := e.Target.Data.(*ESuper)
		return ok
	}
	return false
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// DumpExpr renders an expression tree for internal-error messages and test
// failure output. Never show this to end users.
func DumpExpr(expr Expr) string {
	return dumpConfig.Sdump(expr)
}
