package jpoet

import (
	"fmt"
	"strings"
)

// AnnotationSpec models an annotation use: the annotation type plus its
// member assignments, each member holding one or more value fragments.
// Members keep the order in which they were added.
type AnnotationSpec struct {
	typeName TypeName
	members  []annotationMember
	memo     memoString
}

type annotationMember struct {
	name   string
	values []*CodeBlock
}

// AnnotationOf returns a marker annotation use with no members, e.g.
// "@Override".
func AnnotationOf(typ *ClassName) *AnnotationSpec {
	return NewAnnotationSpecBuilder(typ).Build()
}

// Type returns the annotation's type.
func (a *AnnotationSpec) Type() TypeName { return a.typeName }

// Members returns the member assignments in declaration order.
func (a *AnnotationSpec) Members() map[string][]*CodeBlock {
	members := make(map[string][]*CodeBlock, len(a.members))
	for _, m := range a.members {
		members[m.name] = append([]*CodeBlock{}, m.values...)
	}
	return members
}

// ToBuilder returns a new builder seeded with this annotation's contents.
func (a *AnnotationSpec) ToBuilder() *AnnotationSpecBuilder {
	b := NewAnnotationSpecBuilder(a.typeName)
	for _, m := range a.members {
		b.members = append(b.members, annotationMember{
			name:   m.name,
			values: append([]*CodeBlock{}, m.values...),
		})
	}
	return b
}

// Equals reports whether other renders to the same text.
func (a *AnnotationSpec) Equals(other *AnnotationSpec) bool {
	return other != nil && a.String() == other.String()
}

func (a *AnnotationSpec) String() string {
	return a.memo.get(func() string {
		var sb strings.Builder
		cw := newCodeWriter(&sb, defaultIndent, maxColumnLimit, StyleCompat)
		a.emit(cw, true)
		cw.close()
		return sb.String()
	})
}

func (a *AnnotationSpec) collectStaticImports(into map[string]bool) {
	for _, m := range a.members {
		for _, v := range m.values {
			for _, si := range v.staticImports {
				into[si] = true
			}
		}
	}
}

// emit writes the annotation. Inline annotations keep members on one line
// ("@Column(name = "x", nullable = false)"); block annotations place one
// member per line. A lone "value" member elides its name either way.
func (a *AnnotationSpec) emit(cw *codeWriter, inline bool) {
	whitespace := "\n"
	memberSeparator := ",\n"
	if inline {
		whitespace = ""
		memberSeparator = ", "
	}
	switch {
	case len(a.members) == 0:
		cw.emitf("@$T", a.typeName)
	case len(a.members) == 1 && a.members[0].name == "value":
		cw.emitf("@$T(", a.typeName)
		a.emitValues(cw, whitespace, memberSeparator, a.members[0].values)
		cw.emitAndIndent(")")
	default:
		cw.emitf("@$T("+whitespace, a.typeName)
		cw.indentLevel += 2
		for i, m := range a.members {
			if i > 0 {
				cw.emitAndIndent(memberSeparator)
			}
			cw.emitAndIndent(m.name + " = ")
			a.emitValues(cw, whitespace, memberSeparator, m.values)
		}
		cw.unindent(2)
		cw.emitAndIndent(whitespace + ")")
	}
}

func (a *AnnotationSpec) emitValues(cw *codeWriter, whitespace, memberSeparator string, values []*CodeBlock) {
	if len(values) == 1 {
		cw.indentLevel += 2
		cw.emitCode(values[0])
		cw.unindent(2)
		return
	}
	cw.emitAndIndent("{" + whitespace)
	cw.indentLevel += 2
	for i, v := range values {
		if i > 0 {
			cw.emitAndIndent(memberSeparator)
		}
		cw.emitCode(v)
	}
	cw.unindent(2)
	cw.emitAndIndent(whitespace + "}")
}

// AnnotationSpecBuilder accumulates an AnnotationSpec.
type AnnotationSpecBuilder struct {
	typeName TypeName
	members  []annotationMember
}

// NewAnnotationSpecBuilder returns a builder for a use of the given
// annotation type.
func NewAnnotationSpecBuilder(typ TypeName) *AnnotationSpecBuilder {
	if typ == nil {
		panic("annotation type must not be nil")
	}
	if typ.Kind() != KindClass && typ.Kind() != KindParameterized {
		panic(fmt.Sprintf("not an annotation type: %s", typ))
	}
	return &AnnotationSpecBuilder{typeName: typ}
}

// AddMember assigns a value to the named member. Assigning the same member
// again appends a further value, rendered together as an array initializer.
func (b *AnnotationSpecBuilder) AddMember(name, format string, args ...interface{}) *AnnotationSpecBuilder {
	return b.AddMemberCode(name, CodeBlockOf(format, args...))
}

// AddMemberCode assigns an existing fragment to the named member.
func (b *AnnotationSpecBuilder) AddMemberCode(name string, value *CodeBlock) *AnnotationSpecBuilder {
	if !IsValidIdentifier(name) {
		panic(fmt.Sprintf("not a valid annotation member name: %q", name))
	}
	for i := range b.members {
		if b.members[i].name == name {
			b.members[i].values = append(b.members[i].values, value)
			return b
		}
	}
	b.members = append(b.members, annotationMember{name: name, values: []*CodeBlock{value}})
	return b
}

func (b *AnnotationSpecBuilder) Build() *AnnotationSpec {
	members := make([]annotationMember, len(b.members))
	for i, m := range b.members {
		members[i] = annotationMember{name: m.name, values: append([]*CodeBlock{}, m.values...)}
	}
	return &AnnotationSpec{typeName: b.typeName, members: members}
}
