package jpoet

import (
	"fmt"
	"strings"
)

// ParameterSpec models a method or constructor parameter.
type ParameterSpec struct {
	name        string
	javadoc     *CodeBlock
	annotations []*AnnotationSpec
	modifiers   []Modifier
	typeName    TypeName
	memo        memoString
}

// NewParameterSpec returns a parameter of the given type. The only modifier a
// parameter may carry is final.
func NewParameterSpec(typ TypeName, name string, modifiers ...Modifier) *ParameterSpec {
	return NewParameterSpecBuilder(typ, name, modifiers...).Build()
}

// ParameterSpecForField returns a parameter mirroring the given field's type
// and name, for constructors and setters that assign the field.
func ParameterSpecForField(field *FieldSpec) *ParameterSpec {
	return NewParameterSpec(field.typeName, field.name)
}

// Name returns the parameter's name.
func (p *ParameterSpec) Name() string { return p.name }

// Type returns the parameter's type.
func (p *ParameterSpec) Type() TypeName { return p.typeName }

// Annotations returns the parameter's annotations.
func (p *ParameterSpec) Annotations() []*AnnotationSpec {
	return append([]*AnnotationSpec{}, p.annotations...)
}

// HasModifier reports whether the parameter carries the given modifier.
func (p *ParameterSpec) HasModifier(m Modifier) bool { return hasModifier(p.modifiers, m) }

// ToBuilder returns a new builder seeded with this parameter's contents.
func (p *ParameterSpec) ToBuilder() *ParameterSpecBuilder {
	b := NewParameterSpecBuilder(p.typeName, p.name)
	b.javadoc = p.javadoc
	b.annotations = append(b.annotations, p.annotations...)
	b.modifiers = append(b.modifiers, p.modifiers...)
	return b
}

// Equals reports whether other renders to the same text.
func (p *ParameterSpec) Equals(other *ParameterSpec) bool {
	return other != nil && p.String() == other.String()
}

func (p *ParameterSpec) String() string {
	return p.memo.get(func() string {
		var sb strings.Builder
		cw := newCodeWriter(&sb, defaultIndent, maxColumnLimit, StyleCompat)
		p.emit(cw, false)
		cw.close()
		return sb.String()
	})
}

func (p *ParameterSpec) emit(cw *codeWriter, varargs bool) {
	cw.emitAnnotations(p.annotations, true)
	cw.emitModifiers(p.modifiers, nil)
	if arr, ok := p.typeName.(*ArrayTypeName); ok && varargs {
		arr.emitWithVarargs(cw, true)
	} else {
		p.typeName.emit(cw)
	}
	cw.emitAndIndent(" " + p.name)
}

// ParameterSpecBuilder accumulates a ParameterSpec.
type ParameterSpecBuilder struct {
	name        string
	typeName    TypeName
	javadoc     *CodeBlock
	annotations []*AnnotationSpec
	modifiers   []Modifier
}

func NewParameterSpecBuilder(typ TypeName, name string, modifiers ...Modifier) *ParameterSpecBuilder {
	if typ == nil {
		panic("parameter type must not be nil")
	}
	if !IsValidIdentifier(name) {
		panic(fmt.Sprintf("not a valid parameter name: %q", name))
	}
	b := &ParameterSpecBuilder{name: name, typeName: typ, javadoc: emptyCodeBlock}
	return b.AddModifiers(modifiers...)
}

// AddJavadoc documents the parameter. The text surfaces as a @param tag in
// the enclosing method's javadoc.
func (b *ParameterSpecBuilder) AddJavadoc(format string, args ...interface{}) *ParameterSpecBuilder {
	b.javadoc = b.javadoc.ToBuilder().Add(format, args...).Build()
	return b
}

func (b *ParameterSpecBuilder) AddAnnotation(annotation *AnnotationSpec) *ParameterSpecBuilder {
	b.annotations = append(b.annotations, annotation)
	return b
}

func (b *ParameterSpecBuilder) AddAnnotations(annotations ...*AnnotationSpec) *ParameterSpecBuilder {
	b.annotations = append(b.annotations, annotations...)
	return b
}

func (b *ParameterSpecBuilder) AddModifiers(modifiers ...Modifier) *ParameterSpecBuilder {
	for _, m := range modifiers {
		if m != Final {
			panic(fmt.Sprintf("unexpected parameter modifier: %s", m))
		}
	}
	b.modifiers = append(b.modifiers, modifiers...)
	return b
}

func (b *ParameterSpecBuilder) Build() *ParameterSpec {
	return &ParameterSpec{
		name:        b.name,
		javadoc:     b.javadoc,
		annotations: append([]*AnnotationSpec{}, b.annotations...),
		modifiers:   sortModifiers(b.modifiers),
		typeName:    b.typeName,
	}
}
