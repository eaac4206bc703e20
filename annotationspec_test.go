package jpoet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkerAnnotation(t *testing.T) {
	override := AnnotationOf(NewClassName("java.lang", "Override"))
	assert.Equal(t, "@java.lang.Override", override.String())
}

func TestSingleValueAnnotation(t *testing.T) {
	// A lone "value" member elides its name.
	suppress := NewAnnotationSpecBuilder(NewClassName("java.lang", "SuppressWarnings")).
		AddMember("value", "$S", "unchecked").
		Build()
	assert.Equal(t, `@java.lang.SuppressWarnings("unchecked")`, suppress.String())
}

func TestMultiMemberAnnotation(t *testing.T) {
	column := NewAnnotationSpecBuilder(NewClassName("javax.persistence", "Column")).
		AddMember("name", "$S", "created_at").
		AddMember("nullable", "$L", false).
		Build()
	assert.Equal(t, `@javax.persistence.Column(name = "created_at", nullable = false)`,
		column.String())
}

func TestArrayMemberAnnotation(t *testing.T) {
	// Assigning a member twice renders the values as an array initializer.
	suppress := NewAnnotationSpecBuilder(NewClassName("java.lang", "SuppressWarnings")).
		AddMember("value", "$S", "unchecked").
		AddMember("value", "$S", "rawtypes").
		Build()
	assert.Equal(t, `@java.lang.SuppressWarnings({"unchecked", "rawtypes"})`, suppress.String())
}

func TestBlockAnnotationOnType(t *testing.T) {
	entity := NewAnnotationSpecBuilder(NewClassName("com.example", "Entity")).
		AddMember("table", "$S", "tacos").
		AddMember("readOnly", "$L", true).
		Build()
	taco := NewClassBuilder("Taco").AddAnnotation(entity).Build()
	expected := "@com.example.Entity(\n" +
		"    table = \"tacos\",\n" +
		"    readOnly = true\n" +
		")\n" +
		"class Taco {\n" +
		"}\n"
	assert.Equal(t, expected, taco.String())
}

func TestAnnotationEqualsAndMembers(t *testing.T) {
	a := NewAnnotationSpecBuilder(NewClassName("java.lang", "Deprecated")).Build()
	b := AnnotationOf(NewClassName("java.lang", "Deprecated"))
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(nil))

	column := NewAnnotationSpecBuilder(NewClassName("javax.persistence", "Column")).
		AddMember("name", "$S", "x").
		Build()
	members := column.Members()
	assert.Len(t, members, 1)
	assert.Len(t, members["name"], 1)
}

func TestAnnotationBuilderValidation(t *testing.T) {
	checkPanic(t, "not an annotation type: int", func() { NewAnnotationSpecBuilder(IntType) })
	checkPanic(t, `not a valid annotation member name: "not a name"`, func() {
		NewAnnotationSpecBuilder(NewClassName("java.lang", "Deprecated")).
			AddMember("not a name", "$L", 1)
	})
}
