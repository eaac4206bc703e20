package jpoet

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJavaFileImports(t *testing.T) {
	taco := NewClassBuilder("Taco").
		AddField(NewFieldSpec(NewClassName("java.util", "Date"), "madeFreshDate")).
		Build()
	f := NewJavaFileBuilder("com.squareup.tacos", taco).Build()
	expected := "package com.squareup.tacos;\n" +
		"\n" +
		"import java.util.Date;\n" +
		"\n" +
		"class Taco {\n" +
		"  Date madeFreshDate;\n" +
		"}\n"
	assert.Equal(t, expected, f.String())
}

func TestJavaFileConflictingImports(t *testing.T) {
	// The first type to claim a simple name gets the import; later claimants
	// stay fully qualified.
	schedule := NewClassBuilder("Schedule").
		AddField(NewFieldSpec(NewClassName("java.util", "Date"), "begin")).
		AddField(NewFieldSpec(NewClassName("java.sql", "Date"), "legacy")).
		Build()
	f := NewJavaFileBuilder("com.example", schedule).Build()
	expected := "package com.example;\n" +
		"\n" +
		"import java.util.Date;\n" +
		"\n" +
		"class Schedule {\n" +
		"  Date begin;\n" +
		"\n" +
		"  java.sql.Date legacy;\n" +
		"}\n"
	assert.Equal(t, expected, f.String())
}

func TestJavaFileShadowedNestedSegment(t *testing.T) {
	// A local nested type takes the "Inner" segment's simple name, but the
	// referenced top-level name is free, so the reference still imports.
	otherInner := NewClassName("com.other", "Outer").NestedClass("Inner")
	taco := NewClassBuilder("Taco").
		AddField(NewFieldSpec(otherInner, "widget")).
		AddType(NewClassBuilder("Inner").Build()).
		Build()
	f := NewJavaFileBuilder("com.example", taco).Build()
	expected := "package com.example;\n" +
		"\n" +
		"import com.other.Outer;\n" +
		"\n" +
		"class Taco {\n" +
		"  Outer.Inner widget;\n" +
		"\n" +
		"  class Inner {\n" +
		"  }\n" +
		"}\n"
	assert.Equal(t, expected, f.String())
}

func TestJavaFileSkipJavaLangImports(t *testing.T) {
	taco := NewClassBuilder("Taco").
		AddField(NewFieldSpec(NewClassName("java.lang", "String"), "name")).
		Build()

	plain := NewJavaFileBuilder("com.example", taco).Build()
	assert.Contains(t, plain.String(), "import java.lang.String;\n")

	skipped := NewJavaFileBuilder("com.example", taco).SkipJavaLangImports(true).Build()
	expected := "package com.example;\n" +
		"\n" +
		"class Taco {\n" +
		"  String name;\n" +
		"}\n"
	assert.Equal(t, expected, skipped.String())
}

func TestJavaFileAlwaysQualify(t *testing.T) {
	taco := NewClassBuilder("Taco").
		AddField(NewFieldSpec(NewClassName("java.util", "Date"), "madeFreshDate")).
		AlwaysQualify("Date").
		Build()
	f := NewJavaFileBuilder("com.example", taco).Build()
	expected := "package com.example;\n" +
		"\n" +
		"class Taco {\n" +
		"  java.util.Date madeFreshDate;\n" +
		"}\n"
	assert.Equal(t, expected, f.String())
}

func TestJavaFileStaticImportElision(t *testing.T) {
	system := NewClassName("java.lang", "System")
	clock := NewClassBuilder("Clock").
		AddMethod(NewMethodBuilder("now").
			Returns(LongType).
			AddStatement("return $T.currentTimeMillis()", system).
			Build()).
		Build()
	f := NewJavaFileBuilder("com.example", clock).
		AddStaticImport(system, "currentTimeMillis").
		Build()
	expected := "package com.example;\n" +
		"\n" +
		"import static java.lang.System.currentTimeMillis;\n" +
		"\n" +
		"class Clock {\n" +
		"  long now() {\n" +
		"    return currentTimeMillis();\n" +
		"  }\n" +
		"}\n"
	assert.Equal(t, expected, f.String())
}

func TestJavaFileWildcardStaticImport(t *testing.T) {
	math := NewClassName("java.lang", "Math")
	calc := NewClassBuilder("Calc").
		AddMethod(NewMethodBuilder("clamp").
			Returns(IntType).
			AddParameter(NewParameterSpec(IntType, "value")).
			AddStatement("return max(0, min(100, $N))", "value").
			Build()).
		Build()
	f := NewJavaFileBuilder("com.example", calc).
		AddStaticImport(math, "*").
		Build()
	assert.Contains(t, f.String(), "import static java.lang.Math.*;\n")
	assert.Contains(t, f.String(), "return max(0, min(100, value));\n")
}

func TestJavaFileComment(t *testing.T) {
	taco := NewClassBuilder("Taco").Build()
	f := NewJavaFileBuilder("com.example", taco).
		AddFileComment("Generated, do not edit!").
		Build()
	expected := "// Generated, do not edit!\n" +
		"package com.example;\n" +
		"\n" +
		"class Taco {\n" +
		"}\n"
	assert.Equal(t, expected, f.String())
}

func TestJavaFileUnnamedPackage(t *testing.T) {
	f := NewJavaFileBuilder("", NewClassBuilder("Main").Build()).Build()
	assert.Equal(t, "class Main {\n}\n", f.String())
}

func TestJavaFileTopLevelSelfReference(t *testing.T) {
	taco := NewClassBuilder("Taco").
		AddField(NewFieldSpecBuilder(NewClassName("com.example", "Taco"), "INSTANCE", Static, Final).
			Initializer("new Taco()").
			Build()).
		Build()
	f := NewJavaFileBuilder("com.example", taco).Build()
	assert.Contains(t, f.String(), "static final Taco INSTANCE = new Taco();\n")
	assert.NotContains(t, f.String(), "import")
}

func TestJavaFileBannerStyle(t *testing.T) {
	taco := NewClassBuilder("Taco").
		AddField(NewFieldSpecBuilder(IntType, "COUNT", Static, Final).Initializer("$L", 3).Build()).
		AddFieldOf(IntType, "weight", Private).
		AddMethod(NewConstructorBuilder().Build()).
		AddMethod(NewMethodBuilder("eat").Build()).
		Build()
	f := NewJavaFileBuilder("com.example", taco).Style(StyleBanner).Build()
	expected := "package com.example;\n" +
		"\n" +
		"class Taco {\n" +
		"  // ---------- constants ----------\n" +
		"  static final int COUNT = 3;\n" +
		"\n" +
		"  // ---------- attributes ----------\n" +
		"  private int weight;\n" +
		"\n" +
		"  // ---------- constructors ----------\n" +
		"  Taco() {\n" +
		"  }\n" +
		"\n" +
		"  // ---------- methods ----------\n" +
		"  void eat() {\n" +
		"  }\n" +
		"}\n"
	assert.Equal(t, expected, f.String())
}

func TestSortedOrderingIsInsertionIndependent(t *testing.T) {
	build := func(names ...string) *TypeSpec {
		b := NewClassBuilder("Taco")
		for _, name := range names {
			b.AddMethod(NewMethodBuilder(name).Build())
		}
		return b.Build()
	}
	forward := build("alpha", "beta", "gamma")
	backward := build("gamma", "beta", "alpha")

	sortedA := NewJavaFileBuilder("com.example", forward).Style(StyleBanner).Build()
	sortedB := NewJavaFileBuilder("com.example", backward).Style(StyleBanner).Build()
	assert.Equal(t, sortedA.String(), sortedB.String())

	compatA := NewJavaFileBuilder("com.example", forward).Build()
	compatB := NewJavaFileBuilder("com.example", backward).Build()
	assert.NotEqual(t, compatA.String(), compatB.String())
}

func TestJavaFileRenderingIsRepeatable(t *testing.T) {
	taco := NewClassBuilder("Taco").
		AddField(NewFieldSpec(NewClassName("java.util", "Date"), "madeFreshDate")).
		Build()
	f := NewJavaFileBuilder("com.example", taco).Build()

	var first, second strings.Builder
	require.NoError(t, f.Write(&first))
	require.NoError(t, f.Write(&second))
	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, first.String(), f.String())
}

func TestJavaFileWriteFile(t *testing.T) {
	taco := NewClassBuilder("Taco").Build()
	f := NewJavaFileBuilder("com.squareup.tacos", taco).Build()

	dir := t.TempDir()
	require.NoError(t, f.WriteFile(dir))

	written, err := os.ReadFile(filepath.Join(dir, "com", "squareup", "tacos", "Taco.java"))
	require.NoError(t, err)
	assert.Equal(t, f.String(), string(written))
}

func TestJavaFileBuilderValidation(t *testing.T) {
	checkPanic(t, `not a valid package name: "com.1bad"`, func() {
		NewJavaFileBuilder("com.1bad", NewClassBuilder("Taco").Build())
	})
	checkPanic(t, "cannot write a file for an anonymous type", func() {
		NewJavaFileBuilder("com.example", NewAnonymousClassBuilder("").Build())
	})
	checkPanic(t, "column limit must be positive", func() {
		NewJavaFileBuilder("com.example", NewClassBuilder("Taco").Build()).ColumnLimit(0)
	})
	checkPanic(t, "at least one name required for static import", func() {
		NewJavaFileBuilder("com.example", NewClassBuilder("Taco").Build()).
			AddStaticImport(NewClassName("java.lang", "Math"))
	})
}
