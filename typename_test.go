package jpoet

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPrimitiveTypes(t *testing.T) {
	checkString(t, IntType, "int")
	checkString(t, VoidType, "void")
	checkString(t, BooleanType, "boolean")

	if IntType.Kind() != KindPrimitive {
		t.Errorf("wrong kind: %v", IntType.Kind())
	}
	if !IntType.IsPrimitive() {
		t.Error("int should be primitive")
	}
	if VoidType.IsPrimitive() {
		t.Error("void should not count as primitive")
	}
}

func TestBoxUnbox(t *testing.T) {
	checkString(t, IntType.Box(), "java.lang.Integer")
	checkString(t, VoidType.Box(), "java.lang.Void")
	checkString(t, IntType.Box().Unbox(), "int")

	integer := NewClassName("java.lang", "Integer")
	if !integer.IsBoxedPrimitive() {
		t.Error("Integer should be a boxed primitive")
	}
	if NewClassName("java.lang", "Void").IsBoxedPrimitive() {
		t.Error("Void should not be a boxed primitive")
	}
	checkString(t, integer.Unbox(), "int")

	checkPanic(t, "cannot unbox java.lang.Void", func() { VoidType.Box().Unbox() })
	checkPanic(t, "cannot box java.lang.Object", func() { ObjectType.Box() })
}

func TestArrayTypes(t *testing.T) {
	checkString(t, ArrayOf(IntType), "int[]")
	checkString(t, ArrayOf(ArrayOf(IntType)), "int[][]")
	checkString(t, ArrayOf(NewClassName("java.lang", "String")), "java.lang.String[]")

	checkPanic(t, "cannot create an array of void", func() { ArrayOf(VoidType) })
}

func TestParameterizedTypes(t *testing.T) {
	list := NewClassName("java.util", "List")
	str := NewClassName("java.lang", "String")
	checkString(t, ParameterizedType(list, str), "java.util.List<java.lang.String>")

	mapCN := NewClassName("java.util", "Map")
	checkString(t, ParameterizedType(mapCN, str, SubtypeOf(ObjectType)),
		"java.util.Map<java.lang.String, ?>")

	outer := ParameterizedType(NewClassName("com.example", "Outer"), TypeVariable("T"))
	checkString(t, outer.NestedParameterized("Inner", TypeVariable("V")),
		"com.example.Outer<T>.Inner<V>")

	checkPanic(t, "invalid type argument bound: int", func() { ParameterizedType(list, IntType) })
}

func TestTypeVariables(t *testing.T) {
	checkString(t, TypeVariable("T"), "T")

	// Bounds do not render at a use site; an Object bound is dropped.
	bounded := TypeVariable("T", NewClassName("java.lang", "Comparable"))
	checkString(t, bounded, "T")
	if diff := cmp.Diff([]string{"java.lang.Comparable"}, boundStrings(bounded)); diff != "" {
		t.Errorf("unexpected bounds (-want +got):\n%s", diff)
	}
	if len(TypeVariable("T", ObjectType).Bounds()) != 0 {
		t.Error("Object bound should be dropped")
	}

	checkPanic(t, `not a valid type variable name: "2T"`, func() { TypeVariable("2T") })
}

func TestWildcards(t *testing.T) {
	str := NewClassName("java.lang", "String")
	checkString(t, SubtypeOf(ObjectType), "?")
	checkString(t, SubtypeOf(str), "? extends java.lang.String")
	checkString(t, SupertypeOf(str), "? super java.lang.String")

	checkPanic(t, "unexpected extends bounds: [java.lang.String java.lang.Object]",
		func() { newWildcard([]TypeName{str, ObjectType}, nil) })
}

func TestTypeNameEquality(t *testing.T) {
	list := NewClassName("java.util", "List")
	str := NewClassName("java.lang", "String")
	if !ParameterizedType(list, str).Equals(ParameterizedType(list, str)) {
		t.Error("identical parameterized types should be equal")
	}
	if !str.Equals(NewClassName("java.lang", "String")) {
		t.Error("identical class names should be equal")
	}
	if str.Equals(TypeVariable("String")) {
		t.Error("class name and type variable must differ even with equal text")
	}
	if str.Equals(nil) {
		t.Error("nothing equals nil")
	}
}

func TestAnnotatedTypes(t *testing.T) {
	nullable := AnnotationOf(NewClassName("org.jspecify.annotations", "Nullable"))
	// The annotation lands immediately before the annotated simple name.
	annotated := NewClassName("java.lang", "String").Annotated(nullable)
	checkString(t, annotated, "java.lang. @org.jspecify.annotations.Nullable String")
	if len(annotated.Annotations()) != 1 {
		t.Errorf("expected one annotation, got %d", len(annotated.Annotations()))
	}
	checkString(t, annotated.WithoutAnnotations(), "java.lang.String")
	checkString(t, IntType.Annotated(nullable), "@org.jspecify.annotations.Nullable int")
}

func boundStrings(tv *TypeVariableName) []string {
	bounds := make([]string, 0, len(tv.Bounds()))
	for _, b := range tv.Bounds() {
		bounds = append(bounds, b.String())
	}
	return bounds
}

func checkString(t *testing.T, s interface{ String() string }, expected string) {
	t.Helper()
	if actual := s.String(); actual != expected {
		t.Errorf("expected %q; got %q", expected, actual)
	}
}

// checkPanic asserts fn panics with a message containing want.
func checkPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("expected panic containing %q", want)
			return
		}
		msg, ok := r.(string)
		if !ok {
			t.Errorf("expected string panic, got %T: %v", r, r)
			return
		}
		if !strings.Contains(msg, want) {
			t.Errorf("expected panic containing %q; got %q", want, msg)
		}
	}()
	fn()
}
