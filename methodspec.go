package jpoet

import (
	"fmt"
	"strings"
)

// constructorName marks a MethodSpec as a constructor. It never appears in
// output: the enclosing type's name is emitted instead.
const constructorName = "<init>"

// MethodSpec models a method or constructor declaration.
type MethodSpec struct {
	name          string
	javadoc       *CodeBlock
	annotations   []*AnnotationSpec
	modifiers     []Modifier
	typeVariables []*TypeVariableName
	returnType    TypeName
	parameters    []*ParameterSpec
	varargs       bool
	exceptions    []TypeName
	code          *CodeBlock
	defaultValue  *CodeBlock
	memo          memoString
	sigMemo       memoString
}

// Name returns the method's name, or "<init>" for constructors.
func (m *MethodSpec) Name() string { return m.name }

// IsConstructor reports whether this spec is a constructor.
func (m *MethodSpec) IsConstructor() bool { return m.name == constructorName }

// ReturnType returns the declared return type, or nil for constructors.
func (m *MethodSpec) ReturnType() TypeName { return m.returnType }

// Parameters returns the method's parameters in declaration order.
func (m *MethodSpec) Parameters() []*ParameterSpec {
	return append([]*ParameterSpec{}, m.parameters...)
}

// Modifiers returns the method's modifiers in canonical order.
func (m *MethodSpec) Modifiers() []Modifier { return append([]Modifier{}, m.modifiers...) }

// HasModifier reports whether the method carries the given modifier.
func (m *MethodSpec) HasModifier(mod Modifier) bool { return hasModifier(m.modifiers, mod) }

// ToBuilder returns a new builder seeded with this method's contents.
func (m *MethodSpec) ToBuilder() *MethodSpecBuilder {
	b := &MethodSpecBuilder{
		name:         m.name,
		javadoc:      m.javadoc,
		returnType:   m.returnType,
		varargs:      m.varargs,
		code:         m.code.ToBuilder(),
		defaultValue: m.defaultValue,
	}
	b.annotations = append(b.annotations, m.annotations...)
	b.modifiers = append(b.modifiers, m.modifiers...)
	b.typeVariables = append(b.typeVariables, m.typeVariables...)
	b.parameters = append(b.parameters, m.parameters...)
	b.exceptions = append(b.exceptions, m.exceptions...)
	return b
}

// Equals reports whether other renders to the same text.
func (m *MethodSpec) Equals(other *MethodSpec) bool {
	return other != nil && m.String() == other.String()
}

func (m *MethodSpec) String() string {
	return m.memo.get(func() string {
		var sb strings.Builder
		cw := newCodeWriter(&sb, defaultIndent, maxColumnLimit, StyleCompat)
		m.emit(cw, "Constructor", nil)
		cw.close()
		return sb.String()
	})
}

// signature is the rendered "name(type, type)" form, used to break name ties
// when methods are sorted.
func (m *MethodSpec) signature() string {
	return m.sigMemo.get(func() string {
		var sb strings.Builder
		sb.WriteString(m.name)
		sb.WriteByte('(')
		for i, p := range m.parameters {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.typeName.String())
		}
		sb.WriteByte(')')
		return sb.String()
	})
}

func (m *MethodSpec) emit(cw *codeWriter, enclosingName string, implicitModifiers []Modifier) {
	cw.emitJavadoc(m.javadocWithParameters())
	cw.emitAnnotations(m.annotations, false)
	cw.emitModifiers(m.modifiers, implicitModifiers)

	cw.emitTypeVariables(m.typeVariables)
	if len(m.typeVariables) > 0 {
		cw.emitAndIndent(" ")
	}

	if m.IsConstructor() {
		cw.emitf("$L($Z", enclosingName)
	} else {
		cw.emitf("$T $L($Z", m.returnType, m.name)
	}

	for i, p := range m.parameters {
		if i > 0 {
			cw.emitAndIndent(",")
			cw.emitWrappingSpace()
		}
		p.emit(cw, m.varargs && i == len(m.parameters)-1)
	}
	cw.emitAndIndent(")")

	if !m.defaultValue.IsEmpty() {
		cw.emitAndIndent(" default ")
		cw.emitCode(m.defaultValue)
	}

	if len(m.exceptions) > 0 {
		cw.emitWrappingSpace()
		cw.emitAndIndent("throws")
		for i, exception := range m.exceptions {
			if i > 0 {
				cw.emitAndIndent(",")
			}
			cw.emitWrappingSpace()
			exception.emit(cw)
		}
	}

	switch {
	case m.HasModifier(Abstract):
		cw.emitAndIndent(";\n")
	case m.HasModifier(Native):
		// Body text is allowed so generators can attach JNI-style comments.
		cw.emitCode(m.code)
		cw.emitAndIndent(";\n")
	default:
		cw.emitAndIndent(" {\n")
		cw.indentLevel++
		cw.emitCodeEnsuringNewline(m.code)
		cw.unindent(1)
		cw.emitAndIndent("}\n")
	}
	cw.popTypeVariables(m.typeVariables)
}

// javadocWithParameters appends a @param tag for each documented parameter to
// the method's own javadoc.
func (m *MethodSpec) javadocWithParameters() *CodeBlock {
	var documented []*ParameterSpec
	for _, p := range m.parameters {
		if !p.javadoc.IsEmpty() {
			documented = append(documented, p)
		}
	}
	if len(documented) == 0 {
		return m.javadoc
	}
	b := m.javadoc.ToBuilder()
	if !m.javadoc.IsEmpty() {
		b.Add("\n")
	}
	for _, p := range documented {
		b.Add("@param $L $L\n", p.name, p.javadoc)
	}
	return b.Build()
}

// MethodSpecBuilder accumulates a MethodSpec.
type MethodSpecBuilder struct {
	name          string
	javadoc       *CodeBlock
	annotations   []*AnnotationSpec
	modifiers     []Modifier
	typeVariables []*TypeVariableName
	returnType    TypeName
	parameters    []*ParameterSpec
	varargs       bool
	exceptions    []TypeName
	code          *CodeBlockBuilder
	defaultValue  *CodeBlock
}

// NewMethodBuilder returns a builder for a method with the given name. The
// return type defaults to void.
func NewMethodBuilder(name string) *MethodSpecBuilder {
	if !IsValidIdentifier(name) {
		panic(fmt.Sprintf("not a valid method name: %q", name))
	}
	return &MethodSpecBuilder{
		name:         name,
		javadoc:      emptyCodeBlock,
		returnType:   VoidType,
		code:         NewCodeBlockBuilder(),
		defaultValue: emptyCodeBlock,
	}
}

// NewConstructorBuilder returns a builder for a constructor. The constructor
// takes its name from the enclosing type when emitted.
func NewConstructorBuilder() *MethodSpecBuilder {
	return &MethodSpecBuilder{
		name:         constructorName,
		javadoc:      emptyCodeBlock,
		code:         NewCodeBlockBuilder(),
		defaultValue: emptyCodeBlock,
	}
}

func (b *MethodSpecBuilder) AddJavadoc(format string, args ...interface{}) *MethodSpecBuilder {
	b.javadoc = b.javadoc.ToBuilder().Add(format, args...).Build()
	return b
}

func (b *MethodSpecBuilder) AddAnnotation(annotation *AnnotationSpec) *MethodSpecBuilder {
	b.annotations = append(b.annotations, annotation)
	return b
}

func (b *MethodSpecBuilder) AddAnnotations(annotations ...*AnnotationSpec) *MethodSpecBuilder {
	b.annotations = append(b.annotations, annotations...)
	return b
}

func (b *MethodSpecBuilder) AddModifiers(modifiers ...Modifier) *MethodSpecBuilder {
	checkModifiers(modifiers)
	b.modifiers = append(b.modifiers, modifiers...)
	return b
}

func (b *MethodSpecBuilder) AddTypeVariable(typeVariable *TypeVariableName) *MethodSpecBuilder {
	b.typeVariables = append(b.typeVariables, typeVariable)
	return b
}

func (b *MethodSpecBuilder) AddTypeVariables(typeVariables ...*TypeVariableName) *MethodSpecBuilder {
	b.typeVariables = append(b.typeVariables, typeVariables...)
	return b
}

// Returns sets the method's return type. Constructors have none; setting one
// panics.
func (b *MethodSpecBuilder) Returns(typ TypeName) *MethodSpecBuilder {
	if b.name == constructorName {
		panic("constructor cannot have return type")
	}
	if typ == nil {
		panic("return type must not be nil")
	}
	b.returnType = typ
	return b
}

func (b *MethodSpecBuilder) AddParameter(parameter *ParameterSpec) *MethodSpecBuilder {
	b.parameters = append(b.parameters, parameter)
	return b
}

func (b *MethodSpecBuilder) AddParameters(parameters ...*ParameterSpec) *MethodSpecBuilder {
	b.parameters = append(b.parameters, parameters...)
	return b
}

// Varargs marks the last parameter as a variable-arity parameter. Its type
// must be an array.
func (b *MethodSpecBuilder) Varargs() *MethodSpecBuilder {
	b.varargs = true
	return b
}

func (b *MethodSpecBuilder) AddException(exception TypeName) *MethodSpecBuilder {
	b.exceptions = append(b.exceptions, exception)
	return b
}

func (b *MethodSpecBuilder) AddExceptions(exceptions ...TypeName) *MethodSpecBuilder {
	b.exceptions = append(b.exceptions, exceptions...)
	return b
}

func (b *MethodSpecBuilder) AddCode(format string, args ...interface{}) *MethodSpecBuilder {
	b.code.Add(format, args...)
	return b
}

func (b *MethodSpecBuilder) AddNamedCode(format string, args map[string]interface{}) *MethodSpecBuilder {
	b.code.AddNamed(format, args)
	return b
}

func (b *MethodSpecBuilder) AddCodeBlock(block *CodeBlock) *MethodSpecBuilder {
	b.code.AddCode(block)
	return b
}

// AddComment appends a line comment to the body.
func (b *MethodSpecBuilder) AddComment(format string, args ...interface{}) *MethodSpecBuilder {
	b.code.Add("// "+format+"\n", args...)
	return b
}

func (b *MethodSpecBuilder) AddStatement(format string, args ...interface{}) *MethodSpecBuilder {
	b.code.AddStatement(format, args...)
	return b
}

func (b *MethodSpecBuilder) BeginControlFlow(format string, args ...interface{}) *MethodSpecBuilder {
	b.code.BeginControlFlow(format, args...)
	return b
}

func (b *MethodSpecBuilder) NextControlFlow(format string, args ...interface{}) *MethodSpecBuilder {
	b.code.NextControlFlow(format, args...)
	return b
}

func (b *MethodSpecBuilder) EndControlFlow() *MethodSpecBuilder {
	b.code.EndControlFlow()
	return b
}

func (b *MethodSpecBuilder) EndControlFlowWith(format string, args ...interface{}) *MethodSpecBuilder {
	b.code.EndControlFlowWith(format, args...)
	return b
}

// DefaultValue sets the default value of an annotation type method.
func (b *MethodSpecBuilder) DefaultValue(format string, args ...interface{}) *MethodSpecBuilder {
	return b.DefaultValueCode(CodeBlockOf(format, args...))
}

func (b *MethodSpecBuilder) DefaultValueCode(value *CodeBlock) *MethodSpecBuilder {
	if !b.defaultValue.IsEmpty() {
		panic("defaultValue was already set")
	}
	b.defaultValue = value
	return b
}

func (b *MethodSpecBuilder) Build() *MethodSpec {
	code := b.code.Build()
	if hasModifier(b.modifiers, Abstract) && !code.IsEmpty() {
		panic(fmt.Sprintf("abstract method %s cannot have code", b.name))
	}
	if b.varargs && !lastParameterIsArray(b.parameters) {
		panic(fmt.Sprintf("last parameter of varargs method %s must be an array", b.name))
	}
	return &MethodSpec{
		name:          b.name,
		javadoc:       b.javadoc,
		annotations:   append([]*AnnotationSpec{}, b.annotations...),
		modifiers:     sortModifiers(b.modifiers),
		typeVariables: append([]*TypeVariableName{}, b.typeVariables...),
		returnType:    b.returnType,
		parameters:    append([]*ParameterSpec{}, b.parameters...),
		varargs:       b.varargs,
		exceptions:    append([]TypeName{}, b.exceptions...),
		code:          code,
		defaultValue:  b.defaultValue,
	}
}

func lastParameterIsArray(parameters []*ParameterSpec) bool {
	if len(parameters) == 0 {
		return false
	}
	_, ok := parameters[len(parameters)-1].typeName.(*ArrayTypeName)
	return ok
}
