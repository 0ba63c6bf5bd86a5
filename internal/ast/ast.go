package ast

// This file contains the small identifier types that are shared between the
// AST package and the lowering passes. Scopes, symbols, and references for a
// file all live in flat arenas, and the tree only stores indices into those
// arenas. That way a pass can mutate the tables while it holds the tree,
// without ever aliasing the tree itself.

// ScopeID is an index into the scope arena for a file. Every scope created
// during parsing has an assigned ScopeID before any lowering pass runs.
type ScopeID uint32

// SymbolID is an index into the symbol arena for a file.
type SymbolID uint32

// RefID is an index into the reference arena for a file. A reference is a
// single identifier use site. It resolves to at most one symbol at a time.
type RefID uint32

// This stores a 32-bit index where the zero value is an invalid index. This is
// a better alternative to storing the index as a pointer since that has the
// same properties but takes up more space and costs an extra pointer traversal.
type Index32 struct {
	flippedBits uint32
}

func MakeIndex32(index uint32) Index32 {
	return Index32{flippedBits: ^index}
}

func (i Index32) IsValid() bool {
	return i.flippedBits != 0
}

func (i Index32) GetIndex() uint32 {
	return ^i.flippedBits
}
