package js_ast

import (
	"github.com/classlift/classlift/internal/ast"
	"github.com/classlift/classlift/internal/logger"
)

// TypeScript type annotations are mostly erased before lowering, but the few
// type constructs that introduce their own scope must survive until code
// relocation passes have run, because those scopes are part of the scope tree
// that relocation re-parents.

type TSType struct {
	Loc  logger.Loc
	Data TS
}

// This interface is never called. Its purpose is to encode a variant type in
// Go's type system.
type TS interface{ isTSType() }

type TSTypeRef struct {
	Name     string
	TypeArgs []TSType
}

// TSConditionalType is "Check extends Extends ? True : False". The extends
// and true branches live inside the conditional type's own scope (that's
// where "infer" bindings land); the check and false branches do not.
type TSConditionalType struct {
	CheckType   TSType
	ExtendsType TSType
	TrueType    TSType
	FalseType   TSType
	ScopeID     ast.ScopeID
}

// TSMappedType is "{ [K in Constraint]: Type }". The key binding K lives in
// the mapped type's own scope.
type TSMappedType struct {
	Name       string
	Constraint TSType
	TypeOrNil  TSType
	ScopeID    ast.ScopeID
}

type TSTypeLiteral struct {
	Members []TSMember
}

type TSMember struct {
	Loc  logger.Loc
	Data TSM
}

type TSM interface{ isTSMember() }

type TSPropertySignature struct {
	Name      string
	TypeOrNil TSType
}

type TSMethodSignature struct {
	Name            string
	Params          []TSType
	ReturnTypeOrNil TSType
	ScopeID         ast.ScopeID
}

type TSConstructSignature struct {
	Params          []TSType
	ReturnTypeOrNil TSType
	ScopeID         ast.ScopeID
}

func (*TSTypeRef) isTSType()         {}
func (*TSConditionalType) isTSType() {}
func (*TSMappedType) isTSType()      {}
func (*TSTypeLiteral) isTSType()     {}

func (*TSPropertySignature) isTSMember()  {}
func (*TSMethodSignature) isTSMember()    {}
func (*TSConstructSignature) isTSMember() {}
