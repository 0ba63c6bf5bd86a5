package js_lower

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classlift/classlift/internal/helpers"
	"github.com/classlift/classlift/internal/js_ast"
)

func stringKey(text string) js_ast.Expr {
	return expr(&js_ast.EString{Value: helpers.StringToUTF16(text)})
}

func TestLowerClassStaticFields(t *testing.T) {
	env := newTestEnv(true)
	class, nameSymbol := env.namedClass("C")
	methodScope := env.childScope(env.classScope, js_ast.ScopeFunction)
	class.Properties = []js_ast.Property{
		// "static x = this.y"
		{
			Key:              stringKey("x"),
			InitializerOrNil: expr(&js_ast.EDot{Target: thisExpr(), Name: "y"}),
			IsStatic:         true,
		},
		// "static [k] = C"
		{
			Key:              env.read(env.symbols.NewSymbol(js_ast.SymbolConst, "k")),
			InitializerOrNil: env.read(nameSymbol),
			IsStatic:         true,
			IsComputed:       true,
		},
		// "inst = this.y" stays in the class body
		{
			Key:              stringKey("inst"),
			InitializerOrNil: expr(&js_ast.EDot{Target: thisExpr(), Name: "y"}),
		},
		// "static m() {}" stays in the class body
		{
			Key:        stringKey("m"),
			ValueOrNil: expr(&js_ast.EFunction{Fn: js_ast.Fn{ScopeID: methodScope}}),
			IsStatic:   true,
			IsMethod:   true,
		},
	}

	lowerer := env.lowerer()
	ctx := lowerer.NewClassContext(class)
	stmts, err := lowerer.LowerClassStaticFields(ctx, class)
	require.NoError(t, err)
	require.Len(t, stmts, 2)

	// "C.x = _C.y"
	first := stmts[0].Data.(*js_ast.SExpr).Value.Data.(*js_ast.EBinary)
	require.Equal(t, js_ast.BinOpAssign, first.Op)
	target, ok := first.Left.Data.(*js_ast.EDot)
	require.True(t, ok)
	assert.Equal(t, "x", target.Name)
	base, ok := target.Target.Data.(*js_ast.EIdentifier)
	require.True(t, ok, "the assignment target uses the class name, not the temp")
	assert.Equal(t, "C", base.Name)
	requireTempRead(t, env, ctx, first.Right.Data.(*js_ast.EDot).Target)

	// "C[k] = _C"
	second := stmts[1].Data.(*js_ast.SExpr).Value.Data.(*js_ast.EBinary)
	index, ok := second.Left.Data.(*js_ast.EIndex)
	require.True(t, ok)
	key, ok := index.Index.Data.(*js_ast.EIdentifier)
	require.True(t, ok)
	assert.Equal(t, "k", key.Name)
	requireTempRead(t, env, ctx, second.Right)

	// Lowered initializers are cleared, the rest keep theirs
	assert.Nil(t, class.Properties[0].InitializerOrNil.Data)
	assert.Nil(t, class.Properties[1].InitializerOrNil.Data)
	assert.NotNil(t, class.Properties[2].InitializerOrNil.Data)
	assert.NotNil(t, class.Properties[3].ValueOrNil.Data)

	// The name symbol now lists exactly the two assignment-target references;
	// the "C" inside the second initializer moved to the temp symbol
	assert.Len(t, env.symbols.Get(nameSymbol).References, 2)
	temp, ok := ctx.TempBinding()
	require.True(t, ok)
	assert.Len(t, env.symbols.Get(temp.Ref).References, 2)
}

func TestLowerAnonymousClassTargetsTemp(t *testing.T) {
	env := newTestEnv(true)
	class := env.anonymousClass()
	class.Properties = []js_ast.Property{{
		Key:              stringKey("x"),
		InitializerOrNil: expr(&js_ast.ENumber{Value: 1}),
		IsStatic:         true,
	}}

	lowerer := env.lowerer()
	ctx := lowerer.NewClassContext(class)
	stmts, err := lowerer.LowerClassStaticFields(ctx, class)
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	// "_class.x = 1": with no name binding the temp is the only handle
	assign := stmts[0].Data.(*js_ast.SExpr).Value.Data.(*js_ast.EBinary)
	requireTempRead(t, env, ctx, assign.Left.Data.(*js_ast.EDot).Target)
	temp, _ := ctx.TempBinding()
	assert.Equal(t, "_class", temp.Name)
}

func TestLowerErrors(t *testing.T) {
	env := newTestEnv(true)
	class, _ := env.namedClass("C")
	lowerer := env.lowerer()
	ctx := lowerer.NewClassContext(class)

	_, err := lowerer.LowerClassStaticFields(ctx, nil)
	assert.Error(t, err)
	_, err = lowerer.LowerClassStaticFields(nil, class)
	assert.Error(t, err)

	// A non-computed key must have been parsed as a string
	class.Properties = []js_ast.Property{{
		Key:              expr(&js_ast.ENumber{Value: 0}),
		InitializerOrNil: expr(&js_ast.ENumber{Value: 1}),
		IsStatic:         true,
	}}
	_, err = lowerer.LowerClassStaticFields(ctx, class)
	assert.Error(t, err)
}

func TestGenerateNameHook(t *testing.T) {
	env := newTestEnv(true)
	class, _ := env.namedClass("C")
	lowerer := env.lowerer()
	lowerer.GenerateName = func(hint string) string { return hint + "$1" }
	ctx := lowerer.NewClassContext(class)

	value := thisExpr()
	lowerer.TransformStaticInitializer(ctx, &value)
	temp, ok := ctx.TempBinding()
	require.True(t, ok)
	assert.Equal(t, "C$1", temp.Name)
}

func TestDefaultGeneratedNamesAreValidIdentifiers(t *testing.T) {
	env := newTestEnv(true)

	// A class name that came from an export binding like "default" is fine,
	// but computed names can be arbitrary text
	symbol := env.symbols.NewSymbol(js_ast.SymbolClass, "my class")
	class := &js_ast.Class{
		Name:    &js_ast.LocSymbol{Ref: symbol},
		ScopeID: env.classScope,
	}
	lowerer := env.lowerer()
	ctx := lowerer.NewClassContext(class)

	value := thisExpr()
	lowerer.TransformStaticInitializer(ctx, &value)
	temp, _ := ctx.TempBinding()
	assert.True(t, js_ast.IsIdentifier(temp.Name), "got %q", temp.Name)
}
