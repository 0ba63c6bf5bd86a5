package js_ast

import (
	"fmt"

	"github.com/classlift/classlift/internal/ast"
)

// The scope and symbol tables for a file. The parser builds these; lowering
// passes read and mutate them through the operations below. Lookups by ID are
// assumed to be present: an out-of-range ID means an earlier pass broke an
// invariant, so the resulting panic is deliberate rather than defended
// against.

type SymbolKind uint8

const (
	// An unbound symbol is one that isn't declared in the file it's referenced
	// in. For example, using "window" without declaring it will be unbound.
	SymbolUnbound SymbolKind = iota

	// Function arguments, function statements, and variables declared with "var"
	SymbolHoisted

	SymbolClass
	SymbolConst

	// This annotates all other symbols that don't have special behavior
	SymbolOther
)

// Note: the order of values in this struct matters to reduce struct size.
type Symbol struct {
	// This is the name that came from the parser. Printed names may be renamed
	// to avoid collisions. Do not use the original name during printing.
	OriginalName string

	// The references that currently resolve to this symbol, in the order they
	// were bound. A reference appears in exactly one symbol's list at a time.
	References []ast.RefID

	Kind SymbolKind
}

func (s *Symbol) hasReference(ref ast.RefID) bool {
	for _, it := range s.References {
		if it == ref {
			return true
		}
	}
	return false
}

func (s *Symbol) deleteReference(ref ast.RefID) bool {
	for i, it := range s.References {
		if it == ref {
			s.References = append(s.References[:i], s.References[i+1:]...)
			return true
		}
	}
	return false
}

// Ref is a single identifier use site. It resolves to at most one symbol.
type Ref struct {
	Symbol ast.Index32 // Invalid if the reference is unresolved
}

type SymbolTable struct {
	Symbols []Symbol
	Refs    []Ref
}

func (st *SymbolTable) NewSymbol(kind SymbolKind, originalName string) ast.SymbolID {
	st.Symbols = append(st.Symbols, Symbol{Kind: kind, OriginalName: originalName})
	return ast.SymbolID(len(st.Symbols) - 1)
}

func (st *SymbolTable) Get(id ast.SymbolID) *Symbol {
	return &st.Symbols[id]
}

// NewReference creates a use site resolving to the given symbol and records
// it in the symbol's reference list.
func (st *SymbolTable) NewReference(symbol ast.SymbolID) ast.RefID {
	st.Refs = append(st.Refs, Ref{Symbol: ast.MakeIndex32(uint32(symbol))})
	ref := ast.RefID(len(st.Refs) - 1)
	s := st.Get(symbol)
	s.References = append(s.References, ref)
	return ref
}

// NewUnresolvedReference creates a use site with no resolution (e.g. a
// reference into a "with" body).
func (st *SymbolTable) NewUnresolvedReference() ast.RefID {
	st.Refs = append(st.Refs, Ref{})
	return ast.RefID(len(st.Refs) - 1)
}

// ResolveReference returns the symbol the reference currently resolves to.
func (st *SymbolTable) ResolveReference(ref ast.RefID) (ast.SymbolID, bool) {
	symbol := st.Refs[ref].Symbol
	if !symbol.IsValid() {
		return 0, false
	}
	return ast.SymbolID(symbol.GetIndex()), true
}

// RebindReference moves a reference from one symbol to another: it repoints
// the reference's resolution and moves its membership between the two
// symbols' reference lists. The two lists never both contain (or both omit)
// the reference outside this call.
func (st *SymbolTable) RebindReference(ref ast.RefID, from ast.SymbolID, to ast.SymbolID) {
	r := &st.Refs[ref]
	if !r.Symbol.IsValid() || ast.SymbolID(r.Symbol.GetIndex()) != from {
		panic(fmt.Sprintf("Internal error: reference %d does not resolve to symbol %d", ref, from))
	}
	if !st.Get(from).deleteReference(ref) {
		panic(fmt.Sprintf("Internal error: symbol %d does not list reference %d", from, ref))
	}
	r.Symbol = ast.MakeIndex32(uint32(to))
	toSymbol := st.Get(to)
	toSymbol.References = append(toSymbol.References, ref)
}

type ScopeFlags uint8

const (
	ScopeStrictMode ScopeFlags = 1 << iota
	ScopeTop
	ScopeFunction
	ScopeArrow
	ScopeClassStaticBlock
	ScopeTSModuleBlock
)

func (flags ScopeFlags) Has(flag ScopeFlags) bool {
	return (flags & flag) != 0
}

// Scope is one node of the scope tree. The parent pointer and flags are
// mutable because relocation passes re-parent scopes and flip strict mode.
type Scope struct {
	Parent ast.Index32 // Invalid for the root scope
	Flags  ScopeFlags
}

type ScopeTable struct {
	Scopes []Scope
}

func (st *ScopeTable) Create(parent ast.Index32, flags ScopeFlags) ast.ScopeID {
	// A nested scope starts out strict if its parent is strict
	if parent.IsValid() && st.GetFlags(ast.ScopeID(parent.GetIndex())).Has(ScopeStrictMode) {
		flags |= ScopeStrictMode
	}
	st.Scopes = append(st.Scopes, Scope{Parent: parent, Flags: flags})
	return ast.ScopeID(len(st.Scopes) - 1)
}

func (st *ScopeTable) GetFlags(id ast.ScopeID) ScopeFlags {
	return st.Scopes[id].Flags
}

func (st *ScopeTable) AddFlags(id ast.ScopeID, flags ScopeFlags) {
	st.Scopes[id].Flags |= flags
}

func (st *ScopeTable) ClearStrictMode(id ast.ScopeID) {
	st.Scopes[id].Flags &^= ScopeStrictMode
}

func (st *ScopeTable) Parent(id ast.ScopeID) ast.Index32 {
	return st.Scopes[id].Parent
}

func (st *ScopeTable) SetParent(id ast.ScopeID, parent ast.ScopeID) {
	st.Scopes[id].Parent = ast.MakeIndex32(uint32(parent))
}
