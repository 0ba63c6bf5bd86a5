package js_ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classlift/classlift/internal/ast"
)

func TestSymbolTableReferences(t *testing.T) {
	var st SymbolTable
	a := st.NewSymbol(SymbolClass, "a")
	b := st.NewSymbol(SymbolOther, "b")

	r1 := st.NewReference(a)
	r2 := st.NewReference(a)
	r3 := st.NewReference(b)

	symbol, ok := st.ResolveReference(r1)
	require.True(t, ok)
	assert.Equal(t, a, symbol)

	if diff := cmp.Diff([]ast.RefID{r1, r2}, st.Get(a).References); diff != "" {
		t.Errorf("reference list mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]ast.RefID{r3}, st.Get(b).References); diff != "" {
		t.Errorf("reference list mismatch (-want +got):\n%s", diff)
	}

	unresolved := st.NewUnresolvedReference()
	_, ok = st.ResolveReference(unresolved)
	assert.False(t, ok)
}

func TestRebindReference(t *testing.T) {
	var st SymbolTable
	from := st.NewSymbol(SymbolClass, "C")
	to := st.NewSymbol(SymbolOther, "_C")
	r1 := st.NewReference(from)
	r2 := st.NewReference(from)

	st.RebindReference(r1, from, to)

	// The reference appears in exactly one symbol's list and resolves there
	if diff := cmp.Diff([]ast.RefID{r2}, st.Get(from).References); diff != "" {
		t.Errorf("source reference list mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]ast.RefID{r1}, st.Get(to).References); diff != "" {
		t.Errorf("target reference list mismatch (-want +got):\n%s", diff)
	}
	symbol, ok := st.ResolveReference(r1)
	require.True(t, ok)
	assert.Equal(t, to, symbol)

	// Rebinding from the wrong symbol is an internal error
	assert.Panics(t, func() { st.RebindReference(r2, to, from) })
}

func TestScopeTableStrictModeInheritance(t *testing.T) {
	var st ScopeTable
	root := st.Create(ast.Index32{}, ScopeTop|ScopeStrictMode)
	child := st.Create(ast.MakeIndex32(uint32(root)), ScopeFunction)
	assert.True(t, st.GetFlags(child).Has(ScopeStrictMode))

	st.ClearStrictMode(child)
	assert.False(t, st.GetFlags(child).Has(ScopeStrictMode))
	assert.True(t, st.GetFlags(child).Has(ScopeFunction))

	sloppyRoot := st.Create(ast.Index32{}, ScopeTop)
	sloppyChild := st.Create(ast.MakeIndex32(uint32(sloppyRoot)), 0)
	assert.False(t, st.GetFlags(sloppyChild).Has(ScopeStrictMode))
}

func TestScopeTableSetParent(t *testing.T) {
	var st ScopeTable
	root := st.Create(ast.Index32{}, ScopeTop)
	a := st.Create(ast.MakeIndex32(uint32(root)), 0)
	b := st.Create(ast.MakeIndex32(uint32(a)), 0)

	assert.False(t, st.Parent(root).IsValid())
	require.True(t, st.Parent(b).IsValid())
	assert.Equal(t, uint32(a), st.Parent(b).GetIndex())

	st.SetParent(b, root)
	assert.Equal(t, uint32(root), st.Parent(b).GetIndex())
}
