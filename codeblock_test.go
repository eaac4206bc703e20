package jpoet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeBlockOf(t *testing.T) {
	assert.Equal(t, "delicious taco", CodeBlockOf("$L taco", "delicious").String())
	assert.Equal(t, "1 + 1", CodeBlockOf("$L + $L", 1, 1).String())
	assert.Equal(t, "$", CodeBlockOf("$$").String())
}

func TestCodeBlockStrings(t *testing.T) {
	assert.Equal(t, `"tacos"`, CodeBlockOf("$S", "tacos").String())
	assert.Equal(t, "null", CodeBlockOf("$S", nil).String())
	// Anything with a string form can be a string argument.
	assert.Equal(t, `"java.lang.String"`, CodeBlockOf("$S", NewClassName("java.lang", "String")).String())
}

func TestCodeBlockNames(t *testing.T) {
	field := NewFieldSpec(IntType, "count")
	param := NewParameterSpec(IntType, "delta")
	method := NewMethodBuilder("increment").Build()
	assert.Equal(t, "count += delta", CodeBlockOf("$N += $N", field, param).String())
	assert.Equal(t, "this.increment()", CodeBlockOf("this.$N()", method).String())
	assert.Equal(t, "count", CodeBlockOf("$N", "count").String())
}

func TestCodeBlockIndexedArguments(t *testing.T) {
	assert.Equal(t, "b a b", CodeBlockOf("$2L $1L $2L", "a", "b").String())
}

func TestCodeBlockFormatErrors(t *testing.T) {
	checkPanic(t, "cannot mix indexed and positional parameters", func() {
		CodeBlockOf("$1L $L", "a", "b")
	})
	checkPanic(t, "dangling format characters", func() { CodeBlockOf("$") })
	checkPanic(t, "unused arguments: expected 2, received 3", func() {
		CodeBlockOf("$L $L", "a", "b", "c")
	})
	checkPanic(t, "unused argument: $2", func() { CodeBlockOf("$1L", "a", "b") })
	checkPanic(t, "unused arguments: $2, $4", func() { CodeBlockOf("$1L $3L", "a", "b", "c", "d") })
	checkPanic(t, "not in range", func() { CodeBlockOf("$3L", "a") })
	checkPanic(t, "may not have an index", func() { CodeBlockOf("$1$", "a") })
	checkPanic(t, "expected type but was", func() { CodeBlockOf("$T", "java.lang.String") })
}

func TestCodeBlockNamedArguments(t *testing.T) {
	block := NewCodeBlockBuilder().
		AddNamed("$count:L $name:L", map[string]interface{}{"count": 3, "name": "tacos"}).
		Build()
	assert.Equal(t, "3 tacos", block.String())

	// Unused named arguments are tolerated; missing ones are not.
	unused := NewCodeBlockBuilder().
		AddNamed("$count:L", map[string]interface{}{"count": 3, "name": "tacos"}).
		Build()
	assert.Equal(t, "3", unused.String())

	checkPanic(t, "missing named argument for $name", func() {
		NewCodeBlockBuilder().AddNamed("$name:L", map[string]interface{}{})
	})
	checkPanic(t, `argument "Name" must start with a lowercase character`, func() {
		NewCodeBlockBuilder().AddNamed("$L", map[string]interface{}{"Name": "x"})
	})
}

func TestCodeBlockStatements(t *testing.T) {
	block := NewCodeBlockBuilder().AddStatement("foo()").Build()
	assert.Equal(t, "foo();\n", block.String())
}

func TestCodeBlockControlFlow(t *testing.T) {
	block := NewCodeBlockBuilder().
		BeginControlFlow("if (a)").
		AddStatement("b()").
		NextControlFlow("else").
		AddStatement("c()").
		EndControlFlow().
		Build()
	expected := "if (a) {\n" +
		"  b();\n" +
		"} else {\n" +
		"  c();\n" +
		"}\n"
	assert.Equal(t, expected, block.String())
}

func TestCodeBlockDoWhile(t *testing.T) {
	block := NewCodeBlockBuilder().
		BeginControlFlow("do").
		AddStatement("i++").
		EndControlFlowWith("while (i < $L)", 10).
		Build()
	expected := "do {\n" +
		"  i++;\n" +
		"} while (i < 10);\n"
	assert.Equal(t, expected, block.String())
}

func TestCodeBlockStatementContinuationIndent(t *testing.T) {
	// A newline inside a statement indents the continuation two levels, once.
	block := NewCodeBlockBuilder().
		AddStatement("foo(\nbar,\nbaz)").
		Build()
	expected := "foo(\n" +
		"    bar,\n" +
		"    baz);\n"
	assert.Equal(t, expected, block.String())
}

func TestCodeBlockJoin(t *testing.T) {
	joined := Join(" || ",
		CodeBlockOf("$L == null", "a"),
		CodeBlockOf("$L == null", "b"))
	assert.Equal(t, "a == null || b == null", joined.String())

	wrapped := JoinWithAffixes("; ", "{", "}", CodeBlockOf("x"), CodeBlockOf("y"))
	assert.Equal(t, "{x; y}", wrapped.String())
}

func TestCodeBlockEqualsAndToBuilder(t *testing.T) {
	a := CodeBlockOf("$L taco", "delicious")
	b := CodeBlockOf("$L taco", "delicious")
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(CodeBlockOf("burrito")))
	assert.False(t, a.Equals(nil))

	rebuilt := a.ToBuilder().Add(" please").Build()
	assert.Equal(t, "delicious taco please", rebuilt.String())
	// The original is unchanged.
	assert.Equal(t, "delicious taco", a.String())
}

func TestCodeBlockIsEmpty(t *testing.T) {
	assert.True(t, NewCodeBlockBuilder().Build().IsEmpty())
	assert.False(t, CodeBlockOf("x").IsEmpty())
}

func TestCodeBlockStaticImports(t *testing.T) {
	mathCN := NewClassName("java.lang", "Math")
	block := NewCodeBlockBuilder().
		AddStaticImport(mathCN, "min", "max").
		AddStatement("return max(a, min(b, c))").
		Build()
	require.Equal(t, []string{"java.lang.Math.max", "java.lang.Math.min"}, block.StaticImports())

	// Nested fragments carry their requirements through Build.
	outer := NewCodeBlockBuilder().Add("$L", block).Build()
	require.Equal(t, []string{"java.lang.Math.max", "java.lang.Math.min"}, outer.StaticImports())
}
