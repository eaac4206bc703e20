package jpoet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicClass(t *testing.T) {
	taco := NewClassBuilder("Taco").AddModifiers(Public, Final).Build()
	assert.Equal(t, "public final class Taco {\n}\n", taco.String())
}

func TestClassWithFieldsAndMethods(t *testing.T) {
	str := NewClassName("java.lang", "String")
	taco := NewClassBuilder("Taco").
		AddField(NewFieldSpecBuilder(str, "name", Private, Final).Build()).
		AddMethod(NewMethodBuilder("name").
			AddModifiers(Public).
			Returns(str).
			AddStatement("return name").
			Build()).
		Build()
	expected := "class Taco {\n" +
		"  private final java.lang.String name;\n" +
		"\n" +
		"  public java.lang.String name() {\n" +
		"    return name;\n" +
		"  }\n" +
		"}\n"
	assert.Equal(t, expected, taco.String())
}

func TestInterface(t *testing.T) {
	comparable := NewClassName("java.lang", "Comparable")
	taco := NewInterfaceBuilder("Taco").
		AddModifiers(Public).
		AddSuperinterface(comparable).
		AddMethod(NewMethodBuilder("weight").
			AddModifiers(Public, Abstract).
			Returns(IntType).
			Build()).
		Build()
	// public and abstract are implicit on interface methods and are elided.
	expected := "public interface Taco extends java.lang.Comparable {\n" +
		"  int weight();\n" +
		"}\n"
	assert.Equal(t, expected, taco.String())
}

func TestInterfaceValidation(t *testing.T) {
	checkPanic(t, "field CHEESE must be public static final", func() {
		NewInterfaceBuilder("Taco").
			AddField(NewFieldSpec(IntType, "CHEESE", Public, Static)).
			Build()
	})
	checkPanic(t, "must have exactly one of modifiers", func() {
		NewInterfaceBuilder("Taco").
			AddMethod(NewMethodBuilder("weight").AddModifiers(Public).Returns(IntType).Build()).
			Build()
	})
}

func TestEnum(t *testing.T) {
	roshambo := NewEnumBuilder("Roshambo").
		AddModifiers(Public).
		AddEnumConstant("ROCK").
		AddEnumConstant("PAPER").
		AddEnumConstant("SCISSORS").
		Build()
	expected := "public enum Roshambo {\n" +
		"  ROCK,\n" +
		"\n" +
		"  PAPER,\n" +
		"\n" +
		"  SCISSORS\n" +
		"}\n"
	assert.Equal(t, expected, roshambo.String())
	assert.Equal(t, []string{"ROCK", "PAPER", "SCISSORS"}, roshambo.EnumConstantNames())
}

func TestEnumValidation(t *testing.T) {
	checkPanic(t, "at least one enum constant is required for Roshambo", func() {
		NewEnumBuilder("Roshambo").Build()
	})
	checkPanic(t, "duplicate enum constant: ROCK", func() {
		NewEnumBuilder("Roshambo").AddEnumConstant("ROCK").AddEnumConstant("ROCK")
	})
}

func TestRecord(t *testing.T) {
	point := NewRecordBuilder("Point").
		AddModifiers(Public).
		AddField(NewFieldSpec(IntType, "x")).
		AddField(NewFieldSpec(IntType, "y")).
		Build()
	assert.Equal(t, "public record Point(int x, int y) {\n}\n", point.String())
}

func TestRecordWithStaticField(t *testing.T) {
	point := NewRecordBuilder("Point").
		AddField(NewFieldSpec(IntType, "x")).
		AddField(NewFieldSpecBuilder(IntType, "DIMENSIONS", Public, Static, Final).
			Initializer("$L", 1).
			Build()).
		Build()
	// Components form the header; static fields stay in the body.
	expected := "record Point(int x) {\n" +
		"  public static final int DIMENSIONS = 1;\n" +
		"}\n"
	assert.Equal(t, expected, point.String())
}

func TestRecordValidation(t *testing.T) {
	checkPanic(t, "record Point must declare at least one non-static field", func() {
		NewRecordBuilder("Point").Build()
	})
}

func TestAnnotationType(t *testing.T) {
	header := NewAnnotationTypeBuilder("Header").
		AddModifiers(Public).
		AddMethod(NewMethodBuilder("name").
			AddModifiers(Public, Abstract).
			Returns(NewClassName("java.lang", "String")).
			DefaultValue("$S", "").
			Build()).
		Build()
	expected := "public @interface Header {\n" +
		"  java.lang.String name() default \"\";\n" +
		"}\n"
	assert.Equal(t, expected, header.String())
}

func TestAnnotationTypeValidation(t *testing.T) {
	checkPanic(t, "must be public abstract with no parameters or body", func() {
		NewAnnotationTypeBuilder("Header").
			AddMethod(NewMethodBuilder("name").
				AddModifiers(Public, Abstract).
				AddParameter(NewParameterSpec(IntType, "x")).
				Build()).
			Build()
	})
	checkPanic(t, "attribute count must be public static final with an initializer", func() {
		NewAnnotationTypeBuilder("Header").
			AddAttribute(NewFieldSpec(IntType, "count", Public, Static, Final))
	})
	checkPanic(t, "cannot have a default value", func() {
		NewClassBuilder("Taco").
			AddMethod(NewMethodBuilder("name").DefaultValue("$S", "x").Build()).
			Build()
	})
	checkPanic(t, "@interface can't have static blocks", func() {
		NewAnnotationTypeBuilder("Header").AddStaticBlock(CodeBlockOf("int x = 1;\n"))
	})
	checkPanic(t, "interface can't have static blocks", func() {
		NewInterfaceBuilder("Taco").AddStaticBlock(CodeBlockOf("int x = 1;\n"))
	})
}

func TestAbstractMethodValidation(t *testing.T) {
	checkPanic(t, "non-abstract type Taco cannot declare abstract method eat", func() {
		NewClassBuilder("Taco").
			AddMethod(NewMethodBuilder("eat").AddModifiers(Abstract).Build()).
			Build()
	})
	checkPanic(t, "abstract method eat cannot have code", func() {
		NewMethodBuilder("eat").AddModifiers(Abstract).AddStatement("nope()").Build()
	})
}

func TestVarargsMethod(t *testing.T) {
	str := NewClassName("java.lang", "String")
	m := NewMethodBuilder("log").
		AddParameter(NewParameterSpec(ArrayOf(str), "messages")).
		Varargs().
		Build()
	taco := NewClassBuilder("Logger").AddMethod(m).Build()
	assert.Contains(t, taco.String(), "void log(java.lang.String... messages) {")

	checkPanic(t, "last parameter of varargs method log must be an array", func() {
		NewMethodBuilder("log").AddParameter(NewParameterSpec(IntType, "count")).Varargs().Build()
	})
}

func TestAnonymousClass(t *testing.T) {
	comparator := NewClassName("java.util", "Comparator")
	comparison := NewAnonymousClassBuilder("").
		AddSuperinterface(ParameterizedType(comparator, NewClassName("java.lang", "String"))).
		AddMethod(NewMethodBuilder("compare").
			AddModifiers(Public).
			Returns(IntType).
			AddParameter(NewParameterSpec(NewClassName("java.lang", "String"), "a")).
			AddParameter(NewParameterSpec(NewClassName("java.lang", "String"), "b")).
			AddStatement("return a.length() - b.length()").
			Build()).
		Build()
	block := CodeBlockOf("$L", comparison)
	assert.True(t, strings.HasPrefix(block.String(),
		"new java.util.Comparator<java.lang.String>() {\n"))
	assert.True(t, strings.HasSuffix(block.String(), "}"))
}

func TestAnonymousClassSupertypeLimit(t *testing.T) {
	checkPanic(t, "anonymous type has too many supertypes", func() {
		NewAnonymousClassBuilder("").
			Superclass(NewClassName("com.example", "Base")).
			AddSuperinterface(NewClassName("java.lang", "Runnable")).
			Build()
	})
}

func TestNestedTypeResolution(t *testing.T) {
	// A reference to a type nested in the class being emitted resolves to its
	// simple name.
	inner := NewClassBuilder("Topping").Build()
	outer := NewClassBuilder("Taco").
		AddField(NewFieldSpec(NewClassName("com.example", "Taco", "Topping"), "topping")).
		AddType(inner).
		Build()
	f := NewJavaFileBuilder("com.example", outer).Build()
	expected := "package com.example;\n" +
		"\n" +
		"class Taco {\n" +
		"  Topping topping;\n" +
		"\n" +
		"  class Topping {\n" +
		"  }\n" +
		"}\n"
	assert.Equal(t, expected, f.String())
}

func TestStaticAndInitializerBlocks(t *testing.T) {
	taco := NewClassBuilder("Taco").
		AddField(NewFieldSpecBuilder(IntType, "count", Private, Static).Build()).
		AddStaticBlock(CodeBlockOf("count = $L;\n", 1)).
		AddInitializerBlock(CodeBlockOf("register(this);\n")).
		Build()
	expected := "class Taco {\n" +
		"  private static int count;\n" +
		"\n" +
		"  static {\n" +
		"    count = 1;\n" +
		"  }\n" +
		"\n" +
		"  {\n" +
		"    register(this);\n" +
		"  }\n" +
		"}\n"
	assert.Equal(t, expected, taco.String())
}

func TestSuperclassRestrictions(t *testing.T) {
	checkPanic(t, "only classes have super classes", func() {
		NewInterfaceBuilder("Taco").Superclass(ObjectType)
	})
	checkPanic(t, "superclass already set", func() {
		NewClassBuilder("Taco").
			Superclass(NewClassName("com.example", "A")).
			Superclass(NewClassName("com.example", "B"))
	})
}
