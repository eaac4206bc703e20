package jpoet

import (
	"fmt"
	"strings"
)

// FieldSpec models a field declaration: type, name, modifiers, optional
// documentation and initializer.
type FieldSpec struct {
	typeName    TypeName
	name        string
	javadoc     *CodeBlock
	annotations []*AnnotationSpec
	modifiers   []Modifier
	initializer *CodeBlock
	memo        memoString
}

// NewFieldSpec returns a field with no javadoc, annotations, or initializer.
func NewFieldSpec(typ TypeName, name string, modifiers ...Modifier) *FieldSpec {
	return NewFieldSpecBuilder(typ, name, modifiers...).Build()
}

// Name returns the field's name.
func (f *FieldSpec) Name() string { return f.name }

// Type returns the field's declared type.
func (f *FieldSpec) Type() TypeName { return f.typeName }

// Initializer returns the field's initializer fragment, which is empty when
// the field has none.
func (f *FieldSpec) Initializer() *CodeBlock { return f.initializer }

// Modifiers returns the field's modifiers in canonical order.
func (f *FieldSpec) Modifiers() []Modifier { return append([]Modifier{}, f.modifiers...) }

// HasModifier reports whether the field carries the given modifier.
func (f *FieldSpec) HasModifier(m Modifier) bool { return hasModifier(f.modifiers, m) }

// ToBuilder returns a new builder seeded with this field's contents.
func (f *FieldSpec) ToBuilder() *FieldSpecBuilder {
	b := NewFieldSpecBuilder(f.typeName, f.name)
	b.javadoc = f.javadoc
	b.annotations = append(b.annotations, f.annotations...)
	b.modifiers = append(b.modifiers, f.modifiers...)
	b.initializer = f.initializer
	return b
}

// Equals reports whether other renders to the same text.
func (f *FieldSpec) Equals(other *FieldSpec) bool {
	return other != nil && f.String() == other.String()
}

func (f *FieldSpec) String() string {
	return f.memo.get(func() string {
		var sb strings.Builder
		cw := newCodeWriter(&sb, defaultIndent, maxColumnLimit, StyleCompat)
		f.emit(cw, nil)
		cw.close()
		return sb.String()
	})
}

func (f *FieldSpec) emit(cw *codeWriter, implicitModifiers []Modifier) {
	cw.emitJavadoc(f.javadoc)
	cw.emitAnnotations(f.annotations, false)
	cw.emitModifiers(f.modifiers, implicitModifiers)
	cw.emitf("$T $L", f.typeName, f.name)
	if !f.initializer.IsEmpty() {
		cw.emitAndIndent(" = ")
		cw.emitCode(f.initializer)
	}
	cw.emitAndIndent(";\n")
}

// FieldSpecBuilder accumulates a FieldSpec.
type FieldSpecBuilder struct {
	typeName    TypeName
	name        string
	javadoc     *CodeBlock
	annotations []*AnnotationSpec
	modifiers   []Modifier
	initializer *CodeBlock
}

func NewFieldSpecBuilder(typ TypeName, name string, modifiers ...Modifier) *FieldSpecBuilder {
	if typ == nil {
		panic("field type must not be nil")
	}
	if !IsValidIdentifier(name) {
		panic(fmt.Sprintf("not a valid field name: %q", name))
	}
	checkModifiers(modifiers)
	return &FieldSpecBuilder{
		typeName:    typ,
		name:        name,
		javadoc:     emptyCodeBlock,
		modifiers:   append([]Modifier{}, modifiers...),
		initializer: emptyCodeBlock,
	}
}

func (b *FieldSpecBuilder) AddJavadoc(format string, args ...interface{}) *FieldSpecBuilder {
	b.javadoc = b.javadoc.ToBuilder().Add(format, args...).Build()
	return b
}

func (b *FieldSpecBuilder) AddAnnotation(annotation *AnnotationSpec) *FieldSpecBuilder {
	b.annotations = append(b.annotations, annotation)
	return b
}

func (b *FieldSpecBuilder) AddAnnotations(annotations ...*AnnotationSpec) *FieldSpecBuilder {
	b.annotations = append(b.annotations, annotations...)
	return b
}

func (b *FieldSpecBuilder) AddModifiers(modifiers ...Modifier) *FieldSpecBuilder {
	checkModifiers(modifiers)
	b.modifiers = append(b.modifiers, modifiers...)
	return b
}

// Initializer sets the field's initializer. A field may have at most one.
func (b *FieldSpecBuilder) Initializer(format string, args ...interface{}) *FieldSpecBuilder {
	return b.InitializerCode(CodeBlockOf(format, args...))
}

func (b *FieldSpecBuilder) InitializerCode(initializer *CodeBlock) *FieldSpecBuilder {
	if !b.initializer.IsEmpty() {
		panic(fmt.Sprintf("initializer was already set for field %s", b.name))
	}
	if initializer == nil {
		panic("initializer must not be nil")
	}
	b.initializer = initializer
	return b
}

func (b *FieldSpecBuilder) Build() *FieldSpec {
	return &FieldSpec{
		typeName:    b.typeName,
		name:        b.name,
		javadoc:     b.javadoc,
		annotations: append([]*AnnotationSpec{}, b.annotations...),
		modifiers:   sortModifiers(b.modifiers),
		initializer: b.initializer,
	}
}
