package js_ast

import (
	"github.com/classlift/classlift/internal/ast"
	"github.com/classlift/classlift/internal/helpers"
	"github.com/classlift/classlift/internal/logger"
)

// Each file is parsed into a separate AST data structure. The parser also
// resolves all scopes and binds all symbols in the tree before any lowering
// pass runs.
//
// Identifier declaration sites in the tree store an ast.SymbolID, which is an
// index into the symbol arena for the file. Identifier use sites store an
// ast.RefID, which is an index into the reference arena; each reference
// resolves to at most one symbol at a time and each symbol lists the
// references that resolve to it. Scope-introducing nodes store an ast.ScopeID
// into the scope arena. The arenas live in SymbolTable and ScopeTable so that
// passes can mutate the tables while recursing through the tree.

type OpCode int

func (op OpCode) IsPrefix() bool {
	return op < UnOpPostDec
}

func (op OpCode) UnaryAssignTarget() AssignTarget {
	if op >= UnOpPreDec && op <= UnOpPostInc {
		return AssignTargetUpdate
	}
	return AssignTargetNone
}

func (op OpCode) BinaryAssignTarget() AssignTarget {
	if op == BinOpAssign {
		return AssignTargetReplace
	}
	if op > BinOpAssign {
		return AssignTargetUpdate
	}
	return AssignTargetNone
}

func (op OpCode) IsShortCircuit() bool {
	switch op {
	case BinOpLogicalOr, BinOpLogicalOrAssign,
		BinOpLogicalAnd, BinOpLogicalAndAssign,
		BinOpNullishCoalescing, BinOpNullishCoalescingAssign:
		return true
	}
	return false
}

type AssignTarget uint8

const (
	AssignTargetNone    AssignTarget = iota
	AssignTargetReplace              // "a = b"
	AssignTargetUpdate               // "a += b"
)

// If you add a new token, remember to add it to "OpTable" too
const (
	// Prefix
	UnOpPos OpCode = iota
	UnOpNeg
	UnOpCpl
	UnOpNot
	UnOpVoid
	UnOpTypeof
	UnOpDelete

	// Prefix update
	UnOpPreDec
	UnOpPreInc

	// Postfix update
	UnOpPostDec
	UnOpPostInc

	// Left-associative
	BinOpAdd
	BinOpSub
	BinOpMul
	BinOpDiv
	BinOpRem
	BinOpPow
	BinOpLt
	BinOpLe
	BinOpGt
	BinOpGe
	BinOpIn
	BinOpInstanceof
	BinOpShl
	BinOpShr
	BinOpUShr
	BinOpLooseEq
	BinOpLooseNe
	BinOpStrictEq
	BinOpStrictNe
	BinOpNullishCoalescing
	BinOpLogicalOr
	BinOpLogicalAnd
	BinOpBitwiseOr
	BinOpBitwiseAnd
	BinOpBitwiseXor

	// Non-associative
	BinOpComma

	// Right-associative
	BinOpAssign
	BinOpAddAssign
	BinOpSubAssign
	BinOpMulAssign
	BinOpDivAssign
	BinOpRemAssign
	BinOpPowAssign
	BinOpShlAssign
	BinOpShrAssign
	BinOpUShrAssign
	BinOpBitwiseOrAssign
	BinOpBitwiseAndAssign
	BinOpBitwiseXorAssign
	BinOpNullishCoalescingAssign
	BinOpLogicalOrAssign
	BinOpLogicalAndAssign
)

var OpTable = []string{
	// Prefix
	"+", "-", "~", "!", "void", "typeof", "delete",

	// Prefix update
	"--", "++",

	// Postfix update
	"--", "++",

	// Left-associative
	"+", "-", "*", "/", "%", "**", "<", "<=", ">", ">=", "in",
	"instanceof", "<<", ">>", ">>>", "==", "!=", "===", "!==",
	"??", "||", "&&", "|", "&", "^",

	// Non-associative
	",",

	// Right-associative
	"=", "+=", "-=", "*=", "/=", "%=", "**=", "<<=", ">>=", ">>>=",
	"|=", "&=", "^=", "??=", "||=", "&&=",
}

// LocSymbol is a declaration site: a name binding with a source position.
type LocSymbol struct {
	Loc logger.Loc
	Ref ast.SymbolID
}

type PropertyKind uint8

const (
	PropertyNormal PropertyKind = iota
	PropertyGet
	PropertySet
	PropertyAutoAccessor
	PropertyClassStaticBlock
)

type Property struct {
	Key              Expr
	ValueOrNil       Expr // Methods and accessors
	InitializerOrNil Expr // Class fields and auto-accessors
	ClassStaticBlock *ClassStaticBlock

	Kind       PropertyKind
	IsComputed bool
	IsMethod   bool
	IsStatic   bool
}

type ClassStaticBlock struct {
	Loc     logger.Loc
	ScopeID ast.ScopeID
	Stmts   []Stmt
}

type PropertyBinding struct {
	Key          Expr
	Value        Binding
	DefaultOrNil Expr
	IsComputed   bool
	IsSpread     bool
}

type Arg struct {
	Binding      Binding
	DefaultOrNil Expr
}

type Fn struct {
	Name    *LocSymbol
	Args    []Arg
	Body    FnBody
	ScopeID ast.ScopeID

	IsAsync     bool
	IsGenerator bool
	HasRestArg  bool
}

type FnBody struct {
	Loc   logger.Loc
	Stmts []Stmt
}

type Class struct {
	Name         *LocSymbol
	ExtendsOrNil Expr
	BodyLoc      logger.Loc
	Properties   []Property

	// The scope that holds the class's own name binding
	ScopeID ast.ScopeID
}

type ArrayBinding struct {
	Binding      Binding
	DefaultOrNil Expr
}

type Binding struct {
	Loc  logger.Loc
	Data B
}

// This interface is never called. Its purpose is to encode a variant type in
// Go's type system.
type B interface{ isBinding() }

type BMissing struct{}

type BIdentifier struct {
	Name string
	Ref  ast.SymbolID
}

type BArray struct {
	Items     []ArrayBinding
	HasSpread bool
}

type BObject struct {
	Properties []PropertyBinding
}

func (*BMissing) isBinding()    {}
func (*BIdentifier) isBinding() {}
func (*BArray) isBinding()      {}
func (*BObject) isBinding()     {}

type Expr struct {
	Loc  logger.Loc
	Data E
}

// This interface is never called. Its purpose is to encode a variant type in
// Go's type system.
type E interface{ isExpr() }

type EArray struct {
	Items []Expr
}

type EUnary struct {
	Op    OpCode
	Value Expr
}

type EBinary struct {
	Op    OpCode
	Left  Expr
	Right Expr
}

type EBoolean struct{ Value bool }

type ESuper struct{}

type ENull struct{}

type EUndefined struct{}

type EThis struct{}

type ENew struct {
	Target Expr
	Args   []Expr
}

type ECall struct {
	Target Expr
	Args   []Expr
}

type EDot struct {
	Target  Expr
	Name    string
	NameLoc logger.Loc
}

type EIndex struct {
	Target Expr
	Index  Expr
}

type EArrow struct {
	Args    []Arg
	Body    FnBody
	ScopeID ast.ScopeID

	IsAsync    bool
	HasRestArg bool
	PreferExpr bool // Use shorthand if true and "Body" is a single return statement
}

type EFunction struct{ Fn Fn }

type EClass struct{ Class Class }

// EIdentifier is a use site. Name holds the text as written; Ref resolves it
// through the symbol table. Keep the two in sync when rebinding.
type EIdentifier struct {
	Name string
	Ref  ast.RefID
}

type EMissing struct{}

type ENumber struct{ Value float64 }

type EObject struct {
	Properties []Property
}

type ESpread struct{ Value Expr }

type EString struct{ Value []uint16 }

type TemplatePart struct {
	Value   Expr
	TailLoc logger.Loc
	Tail    []uint16
}

type ETemplate struct {
	TagOrNil Expr
	Head     []uint16
	Parts    []TemplatePart
}

type EIf struct {
	Test Expr
	Yes  Expr
	No   Expr
}

type EAwait struct{ Value Expr }

type EYield struct {
	ValueOrNil Expr
	IsStar     bool
}

// ETSAs is a TypeScript "value as Type" cast. It is the one place a type
// annotation is reachable while walking an expression, which matters because
// some type constructs carry their own scope.
type ETSAs struct {
	Value Expr
	Type  TSType
}

func (*EArray) isExpr()      {}
func (*EUnary) isExpr()      {}
func (*EBinary) isExpr()     {}
func (*EBoolean) isExpr()    {}
func (*ESuper) isExpr()      {}
func (*ENull) isExpr()       {}
func (*EUndefined) isExpr()  {}
func (*EThis) isExpr()       {}
func (*ENew) isExpr()        {}
func (*ECall) isExpr()       {}
func (*EDot) isExpr()        {}
func (*EIndex) isExpr()      {}
func (*EArrow) isExpr()      {}
func (*EFunction) isExpr()   {}
func (*EClass) isExpr()      {}
func (*EIdentifier) isExpr() {}
func (*EMissing) isExpr()    {}
func (*ENumber) isExpr()     {}
func (*EObject) isExpr()     {}
func (*ESpread) isExpr()     {}
func (*EString) isExpr()     {}
func (*ETemplate) isExpr()   {}
func (*EIf) isExpr()         {}
func (*EAwait) isExpr()      {}
func (*EYield) isExpr()      {}
func (*ETSAs) isExpr()       {}

type Stmt struct {
	Loc  logger.Loc
	Data S
}

// This interface is never called. Its purpose is to encode a variant type in
// Go's type system.
type S interface{ isStmt() }

type SBlock struct {
	Stmts   []Stmt
	ScopeID ast.ScopeID
}

type SEmpty struct{}

// SDirective is a string statement at the start of a function or module-like
// body, e.g. "use strict".
type SDirective struct {
	Value []uint16
}

type SExpr struct{ Value Expr }

type SReturn struct{ ValueOrNil Expr }

type SIf struct {
	Test    Expr
	Yes     Stmt
	NoOrNil Stmt
}

type SThrow struct{ Value Expr }

type LocalKind uint8

const (
	LocalVar LocalKind = iota
	LocalLet
	LocalConst
)

type Decl struct {
	Binding    Binding
	ValueOrNil Expr
}

type SLocal struct {
	Decls []Decl
	Kind  LocalKind
}

type SFunction struct{ Fn Fn }

type SClass struct{ Class Class }

// SNamespace is a TypeScript "namespace N { ... }" declaration. Its body is a
// module-like block: it introduces a "this" context of its own and may carry
// a "use strict" directive.
type SNamespace struct {
	Name    LocSymbol
	Stmts   []Stmt
	ScopeID ast.ScopeID
}

func (*SBlock) isStmt()     {}
func (*SEmpty) isStmt()     {}
func (*SDirective) isStmt() {}
func (*SExpr) isStmt()      {}
func (*SReturn) isStmt()    {}
func (*SIf) isStmt()        {}
func (*SThrow) isStmt()     {}
func (*SLocal) isStmt()     {}
func (*SFunction) isStmt()  {}
func (*SClass) isStmt()     {}
func (*SNamespace) isStmt() {}

// HasUseStrictDirective scans the directive prologue of a body.
func HasUseStrictDirective(stmts []Stmt) bool {
	for _, stmt := range stmts {
		directive, ok := stmt.Data.(*SDirective)
		if !ok {
			return false
		}
		if helpers.UTF16EqualsString(directive.Value, "use strict") {
			return true
		}
	}
	return false
}
