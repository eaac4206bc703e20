package jpoet

import (
	"fmt"
	"strings"
	"sync"
)

// TypeKind is an enumeration of the allowed categories of TypeNames.
type TypeKind int

const (
	KindInvalid TypeKind = iota
	// The type is a primitive type or void. Which one can be determined from
	// its rendered keyword.
	KindPrimitive
	// The type is a class or interface name, possibly nested. The concrete
	// type is *ClassName.
	KindClass
	// The type is a generic type with concrete type arguments. The concrete
	// type is *ParameterizedTypeName.
	KindParameterized
	// The type is an array. The concrete type is *ArrayTypeName.
	KindArray
	// The type is a type variable, possibly bounded. The concrete type is
	// *TypeVariableName.
	KindTypeVariable
	// The type is a wildcard ("?", "? extends T", "? super T"). The concrete
	// type is *WildcardTypeName.
	KindWildcard
)

// TypeName represents a Java type reference, nominally. It is suitable for
// rendering a type use in source. It is not sufficient for doing type analysis
// as class names only refer to their package and nesting chain, not the
// underlying declaration.
//
// All implementations are immutable: the "derived" operations Annotated,
// WithoutAnnotations, Box, and Unbox return fresh instances. The set of
// implementations is closed; callers dispatch on Kind.
type TypeName interface {
	fmt.Stringer
	// Kind returns the kind of type this instance represents.
	Kind() TypeKind
	// Annotations returns the type-use annotations attached to this type.
	Annotations() []*AnnotationSpec
	// Annotated returns a copy of this type with the given annotations added.
	Annotated(annotations ...*AnnotationSpec) TypeName
	// WithoutAnnotations returns a copy of this type with no annotations.
	WithoutAnnotations() TypeName
	// IsPrimitive reports whether this is a primitive type. Void is not
	// considered primitive.
	IsPrimitive() bool
	// IsBoxedPrimitive reports whether this is one of the java.lang wrapper
	// classes for a primitive type.
	IsBoxedPrimitive() bool
	// Box returns the wrapper class for a primitive (or void) type. It panics
	// if the receiver has no boxed counterpart.
	Box() TypeName
	// Unbox returns the primitive counterpart of a wrapper class. It panics
	// if the receiver has no primitive counterpart.
	Unbox() TypeName
	// Equals reports whether other is the same kind of type with the same
	// rendered text.
	Equals(other TypeName) bool

	emit(cw *codeWriter)
}

// memoString is a once-computed render cache. It is only ever attached to
// entities that are frozen before the cache can be populated.
type memoString struct {
	once sync.Once
	s    string
}

func (m *memoString) get(f func() string) string {
	m.once.Do(func() { m.s = f() })
	return m.s
}

// typeNameString renders t the way it would appear with no imports in scope.
func typeNameString(t TypeName) string {
	var sb strings.Builder
	cw := newCodeWriter(&sb, defaultIndent, maxColumnLimit, StyleCompat)
	t.emit(cw)
	cw.close()
	return sb.String()
}

func typeNamesEqual(a, b TypeName) bool {
	if b == nil {
		return false
	}
	return a.Kind() == b.Kind() && a.String() == b.String()
}

func emitTypeAnnotations(cw *codeWriter, annotations []*AnnotationSpec) {
	for _, a := range annotations {
		a.emit(cw, true)
		cw.emitAndIndent(" ")
	}
}

func copyAnnotations(existing, added []*AnnotationSpec) []*AnnotationSpec {
	all := make([]*AnnotationSpec, 0, len(existing)+len(added))
	all = append(all, existing...)
	all = append(all, added...)
	return all
}

func checkBounds(bounds []TypeName, what string) {
	for _, b := range bounds {
		if b == nil {
			panic(fmt.Sprintf("%s bound must not be nil", what))
		}
		if b.Kind() == KindPrimitive || isVoid(b) {
			panic(fmt.Sprintf("invalid %s bound: %s", what, b))
		}
	}
}

func isVoid(t TypeName) bool {
	p, ok := t.(*primitiveType)
	return ok && p.keyword == "void"
}

// primitiveType is the TypeName variant for primitive types and void.
type primitiveType struct {
	keyword     string
	annotations []*AnnotationSpec
	memo        memoString
}

var _ TypeName = (*primitiveType)(nil)

var (
	VoidType    TypeName = &primitiveType{keyword: "void"}
	BooleanType TypeName = &primitiveType{keyword: "boolean"}
	ByteType    TypeName = &primitiveType{keyword: "byte"}
	ShortType   TypeName = &primitiveType{keyword: "short"}
	IntType     TypeName = &primitiveType{keyword: "int"}
	LongType    TypeName = &primitiveType{keyword: "long"}
	CharType    TypeName = &primitiveType{keyword: "char"}
	FloatType   TypeName = &primitiveType{keyword: "float"}
	DoubleType  TypeName = &primitiveType{keyword: "double"}
)

func (t *primitiveType) Kind() TypeKind                 { return KindPrimitive }
func (t *primitiveType) Annotations() []*AnnotationSpec { return t.annotations }
func (t *primitiveType) IsPrimitive() bool              { return t.keyword != "void" }
func (t *primitiveType) IsBoxedPrimitive() bool         { return false }

func (t *primitiveType) Annotated(annotations ...*AnnotationSpec) TypeName {
	return &primitiveType{keyword: t.keyword, annotations: copyAnnotations(t.annotations, annotations)}
}

func (t *primitiveType) WithoutAnnotations() TypeName {
	if len(t.annotations) == 0 {
		return t
	}
	return &primitiveType{keyword: t.keyword}
}

func (t *primitiveType) Box() TypeName {
	boxed, ok := boxedClassNames[t.keyword]
	if !ok {
		panic(fmt.Sprintf("cannot box %s", t.keyword))
	}
	if len(t.annotations) == 0 {
		return boxed
	}
	return boxed.Annotated(t.annotations...)
}

func (t *primitiveType) Unbox() TypeName {
	if t.keyword == "void" {
		panic("cannot unbox void")
	}
	return t.WithoutAnnotations()
}

func (t *primitiveType) Equals(other TypeName) bool { return typeNamesEqual(t, other) }
func (t *primitiveType) String() string             { return t.memo.get(func() string { return typeNameString(t) }) }

func (t *primitiveType) emit(cw *codeWriter) {
	emitTypeAnnotations(cw, t.annotations)
	cw.emitAndIndent(t.keyword)
}

// ArrayTypeName is the TypeName variant for array types.
type ArrayTypeName struct {
	componentType TypeName
	annotations   []*AnnotationSpec
	memo          memoString
}

var _ TypeName = (*ArrayTypeName)(nil)

// ArrayOf returns an array type with the given component type.
func ArrayOf(componentType TypeName) *ArrayTypeName {
	if componentType == nil {
		panic("cannot create an array with nil component type")
	}
	if isVoid(componentType) {
		panic("cannot create an array of void")
	}
	return &ArrayTypeName{componentType: componentType}
}

// ComponentType returns the type of this array's elements.
func (t *ArrayTypeName) ComponentType() TypeName { return t.componentType }

func (t *ArrayTypeName) Kind() TypeKind                 { return KindArray }
func (t *ArrayTypeName) Annotations() []*AnnotationSpec { return t.annotations }
func (t *ArrayTypeName) IsPrimitive() bool              { return false }
func (t *ArrayTypeName) IsBoxedPrimitive() bool         { return false }

func (t *ArrayTypeName) Annotated(annotations ...*AnnotationSpec) TypeName {
	return &ArrayTypeName{
		componentType: t.componentType,
		annotations:   copyAnnotations(t.annotations, annotations),
	}
}

func (t *ArrayTypeName) WithoutAnnotations() TypeName {
	if len(t.annotations) == 0 {
		return t
	}
	return &ArrayTypeName{componentType: t.componentType}
}

func (t *ArrayTypeName) Box() TypeName   { panic(fmt.Sprintf("cannot box %s", t)) }
func (t *ArrayTypeName) Unbox() TypeName { panic(fmt.Sprintf("cannot unbox %s", t)) }

func (t *ArrayTypeName) Equals(other TypeName) bool { return typeNamesEqual(t, other) }
func (t *ArrayTypeName) String() string             { return t.memo.get(func() string { return typeNameString(t) }) }

func (t *ArrayTypeName) emit(cw *codeWriter) {
	t.emitWithVarargs(cw, false)
}

// emitWithVarargs writes the array in source order: the innermost component
// type first, then one pair of brackets per dimension. The final dimension is
// written as "..." when varargs is set.
func (t *ArrayTypeName) emitWithVarargs(cw *codeWriter, varargs bool) {
	t.emitLeafType(cw)
	t.emitBrackets(cw, varargs)
}

func (t *ArrayTypeName) emitLeafType(cw *codeWriter) {
	if nested, ok := t.componentType.(*ArrayTypeName); ok {
		nested.emitLeafType(cw)
		return
	}
	t.componentType.emit(cw)
}

func (t *ArrayTypeName) emitBrackets(cw *codeWriter, varargs bool) {
	if len(t.annotations) > 0 {
		cw.emitAndIndent(" ")
		emitTypeAnnotations(cw, t.annotations)
	}
	nested, ok := t.componentType.(*ArrayTypeName)
	if !ok {
		// Last bracket.
		if varargs {
			cw.emitAndIndent("...")
		} else {
			cw.emitAndIndent("[]")
		}
		return
	}
	cw.emitAndIndent("[]")
	nested.emitBrackets(cw, varargs)
}

// ParameterizedTypeName is the TypeName variant for generic types with
// concrete type arguments.
type ParameterizedTypeName struct {
	enclosing     *ParameterizedTypeName
	rawType       *ClassName
	typeArguments []TypeName
	annotations   []*AnnotationSpec
	memo          memoString
}

var _ TypeName = (*ParameterizedTypeName)(nil)

// ParameterizedType returns the given raw class applied to the given type
// arguments, e.g. ParameterizedType(listName, stringName) for List<String>.
func ParameterizedType(rawType *ClassName, typeArguments ...TypeName) *ParameterizedTypeName {
	if rawType == nil {
		panic("cannot create a parameterized type with nil raw type")
	}
	checkBounds(typeArguments, "type argument")
	return &ParameterizedTypeName{
		rawType:       rawType,
		typeArguments: append([]TypeName{}, typeArguments...),
	}
}

// NestedParameterized returns a type that nests the given (possibly generic)
// member class inside this one, e.g. Outer<T>.Inner<V>.
func (t *ParameterizedTypeName) NestedParameterized(name string, typeArguments ...TypeName) *ParameterizedTypeName {
	checkBounds(typeArguments, "type argument")
	return &ParameterizedTypeName{
		enclosing:     t,
		rawType:       t.rawType.NestedClass(name),
		typeArguments: append([]TypeName{}, typeArguments...),
	}
}

// RawType returns the class being parameterized.
func (t *ParameterizedTypeName) RawType() *ClassName { return t.rawType }

// TypeArguments returns the concrete type arguments.
func (t *ParameterizedTypeName) TypeArguments() []TypeName {
	return append([]TypeName{}, t.typeArguments...)
}

func (t *ParameterizedTypeName) Kind() TypeKind                 { return KindParameterized }
func (t *ParameterizedTypeName) Annotations() []*AnnotationSpec { return t.annotations }
func (t *ParameterizedTypeName) IsPrimitive() bool              { return false }
func (t *ParameterizedTypeName) IsBoxedPrimitive() bool         { return false }

func (t *ParameterizedTypeName) Annotated(annotations ...*AnnotationSpec) TypeName {
	return &ParameterizedTypeName{
		enclosing:     t.enclosing,
		rawType:       t.rawType,
		typeArguments: t.typeArguments,
		annotations:   copyAnnotations(t.annotations, annotations),
	}
}

func (t *ParameterizedTypeName) WithoutAnnotations() TypeName {
	if len(t.annotations) == 0 {
		return t
	}
	return &ParameterizedTypeName{
		enclosing:     t.enclosing,
		rawType:       t.rawType,
		typeArguments: t.typeArguments,
	}
}

func (t *ParameterizedTypeName) Box() TypeName   { panic(fmt.Sprintf("cannot box %s", t)) }
func (t *ParameterizedTypeName) Unbox() TypeName { panic(fmt.Sprintf("cannot unbox %s", t)) }

func (t *ParameterizedTypeName) Equals(other TypeName) bool { return typeNamesEqual(t, other) }

func (t *ParameterizedTypeName) String() string {
	return t.memo.get(func() string { return typeNameString(t) })
}

func (t *ParameterizedTypeName) emit(cw *codeWriter) {
	if t.enclosing != nil {
		t.enclosing.emit(cw)
		cw.emitAndIndent(".")
		if len(t.annotations) > 0 {
			cw.emitAndIndent(" ")
			emitTypeAnnotations(cw, t.annotations)
		}
		cw.emitAndIndent(t.rawType.SimpleName())
	} else {
		emitTypeAnnotations(cw, t.annotations)
		t.rawType.emit(cw)
	}
	if len(t.typeArguments) > 0 {
		cw.emitAndIndent("<")
		for i, arg := range t.typeArguments {
			if i > 0 {
				cw.emitAndIndent(", ")
			}
			arg.emit(cw)
		}
		cw.emitAndIndent(">")
	}
}

// TypeVariableName is the TypeName variant for type variables.
type TypeVariableName struct {
	name        string
	bounds      []TypeName
	annotations []*AnnotationSpec
	memo        memoString
}

var _ TypeName = (*TypeVariableName)(nil)

// TypeVariable returns a type variable named name with the given bounds. An
// Object bound is implied and dropped if supplied. Bounds may not include
// primitive types or void.
func TypeVariable(name string, bounds ...TypeName) *TypeVariableName {
	if !IsValidIdentifier(name) {
		panic(fmt.Sprintf("not a valid type variable name: %q", name))
	}
	checkBounds(bounds, "type variable")
	kept := make([]TypeName, 0, len(bounds))
	for _, b := range bounds {
		if b.Equals(ObjectType) {
			continue
		}
		kept = append(kept, b)
	}
	return &TypeVariableName{name: name, bounds: kept}
}

// Name returns the type variable's name.
func (t *TypeVariableName) Name() string { return t.name }

// Bounds returns the type variable's bounds, not including the implicit
// Object bound.
func (t *TypeVariableName) Bounds() []TypeName { return append([]TypeName{}, t.bounds...) }

// WithBounds returns a copy of this type variable with additional bounds.
func (t *TypeVariableName) WithBounds(bounds ...TypeName) *TypeVariableName {
	checkBounds(bounds, "type variable")
	return &TypeVariableName{
		name:        t.name,
		bounds:      append(append([]TypeName{}, t.bounds...), bounds...),
		annotations: t.annotations,
	}
}

func (t *TypeVariableName) Kind() TypeKind                 { return KindTypeVariable }
func (t *TypeVariableName) Annotations() []*AnnotationSpec { return t.annotations }
func (t *TypeVariableName) IsPrimitive() bool              { return false }
func (t *TypeVariableName) IsBoxedPrimitive() bool         { return false }

func (t *TypeVariableName) Annotated(annotations ...*AnnotationSpec) TypeName {
	return &TypeVariableName{
		name:        t.name,
		bounds:      t.bounds,
		annotations: copyAnnotations(t.annotations, annotations),
	}
}

func (t *TypeVariableName) WithoutAnnotations() TypeName {
	if len(t.annotations) == 0 {
		return t
	}
	return &TypeVariableName{name: t.name, bounds: t.bounds}
}

func (t *TypeVariableName) Box() TypeName   { panic(fmt.Sprintf("cannot box %s", t)) }
func (t *TypeVariableName) Unbox() TypeName { panic(fmt.Sprintf("cannot unbox %s", t)) }

func (t *TypeVariableName) Equals(other TypeName) bool { return typeNamesEqual(t, other) }

func (t *TypeVariableName) String() string {
	return t.memo.get(func() string { return typeNameString(t) })
}

func (t *TypeVariableName) emit(cw *codeWriter) {
	emitTypeAnnotations(cw, t.annotations)
	cw.emitAndIndent(t.name)
}

// WildcardTypeName is the TypeName variant for wildcard type arguments. It
// has exactly one upper bound, which is used when no lower bound is present.
type WildcardTypeName struct {
	upperBounds []TypeName
	lowerBounds []TypeName
	annotations []*AnnotationSpec
	memo        memoString
}

var _ TypeName = (*WildcardTypeName)(nil)

// SubtypeOf returns a wildcard bounded above: "? extends upperBound", or a
// plain "?" when upperBound is Object.
func SubtypeOf(upperBound TypeName) *WildcardTypeName {
	return newWildcard([]TypeName{upperBound}, nil)
}

// SupertypeOf returns a wildcard bounded below: "? super lowerBound".
func SupertypeOf(lowerBound TypeName) *WildcardTypeName {
	return newWildcard([]TypeName{ObjectType}, []TypeName{lowerBound})
}

func newWildcard(upperBounds, lowerBounds []TypeName) *WildcardTypeName {
	if len(upperBounds) != 1 {
		panic(fmt.Sprintf("unexpected extends bounds: %v", upperBounds))
	}
	checkBounds(upperBounds, "wildcard")
	checkBounds(lowerBounds, "wildcard")
	return &WildcardTypeName{
		upperBounds: append([]TypeName{}, upperBounds...),
		lowerBounds: append([]TypeName{}, lowerBounds...),
	}
}

// UpperBounds returns the wildcard's upper bounds. The list always has
// exactly one entry.
func (t *WildcardTypeName) UpperBounds() []TypeName { return append([]TypeName{}, t.upperBounds...) }

// LowerBounds returns the wildcard's lower bounds, which may be empty.
func (t *WildcardTypeName) LowerBounds() []TypeName { return append([]TypeName{}, t.lowerBounds...) }

func (t *WildcardTypeName) Kind() TypeKind                 { return KindWildcard }
func (t *WildcardTypeName) Annotations() []*AnnotationSpec { return t.annotations }
func (t *WildcardTypeName) IsPrimitive() bool              { return false }
func (t *WildcardTypeName) IsBoxedPrimitive() bool         { return false }

func (t *WildcardTypeName) Annotated(annotations ...*AnnotationSpec) TypeName {
	return &WildcardTypeName{
		upperBounds: t.upperBounds,
		lowerBounds: t.lowerBounds,
		annotations: copyAnnotations(t.annotations, annotations),
	}
}

func (t *WildcardTypeName) WithoutAnnotations() TypeName {
	if len(t.annotations) == 0 {
		return t
	}
	return &WildcardTypeName{upperBounds: t.upperBounds, lowerBounds: t.lowerBounds}
}

func (t *WildcardTypeName) Box() TypeName   { panic(fmt.Sprintf("cannot box %s", t)) }
func (t *WildcardTypeName) Unbox() TypeName { panic(fmt.Sprintf("cannot unbox %s", t)) }

func (t *WildcardTypeName) Equals(other TypeName) bool { return typeNamesEqual(t, other) }

func (t *WildcardTypeName) String() string {
	return t.memo.get(func() string { return typeNameString(t) })
}

func (t *WildcardTypeName) emit(cw *codeWriter) {
	emitTypeAnnotations(cw, t.annotations)
	if len(t.lowerBounds) == 1 {
		cw.emitAndIndent("? super ")
		t.lowerBounds[0].emit(cw)
		return
	}
	if t.upperBounds[0].Equals(ObjectType) {
		cw.emitAndIndent("?")
		return
	}
	cw.emitAndIndent("? extends ")
	t.upperBounds[0].emit(cw)
}
