package jpoet

import (
	"fmt"
	"strings"
)

// TypeSpecKind is the closed set of type declaration kinds.
type TypeSpecKind int

const (
	KindClassDecl TypeSpecKind = iota
	KindInterfaceDecl
	KindEnumDecl
	KindAnnotationDecl
	KindRecordDecl
)

// keyword returns the declaration keyword for the kind.
func (k TypeSpecKind) keyword() string {
	switch k {
	case KindClassDecl:
		return "class"
	case KindInterfaceDecl:
		return "interface"
	case KindEnumDecl:
		return "enum"
	case KindAnnotationDecl:
		return "@interface"
	case KindRecordDecl:
		return "record"
	default:
		panic(fmt.Sprintf("unknown type kind: %d", k))
	}
}

// implicitFieldModifiers are modifiers every field of this kind carries
// whether written or not. They are validated as present and then elided.
func (k TypeSpecKind) implicitFieldModifiers() []Modifier {
	if k == KindInterfaceDecl || k == KindAnnotationDecl {
		return []Modifier{Public, Static, Final}
	}
	return nil
}

func (k TypeSpecKind) implicitMethodModifiers() []Modifier {
	if k == KindInterfaceDecl || k == KindAnnotationDecl {
		return []Modifier{Public, Abstract}
	}
	return nil
}

func (k TypeSpecKind) implicitTypeModifiers() []Modifier {
	if k == KindInterfaceDecl || k == KindAnnotationDecl {
		return []Modifier{Public, Static}
	}
	return nil
}

// asMemberModifiers are implicit when a type of this kind is nested inside
// another type.
func (k TypeSpecKind) asMemberModifiers() []Modifier {
	switch k {
	case KindInterfaceDecl, KindEnumDecl, KindAnnotationDecl:
		return []Modifier{Static}
	}
	return nil
}

// TypeSpec models one class, interface, enum, record, or annotation type
// declaration, named or anonymous, together with all of its members.
type TypeSpec struct {
	kind TypeSpecKind
	// name is empty for anonymous classes.
	name string
	// anonymousTypeArguments is non-nil exactly for anonymous classes and
	// holds the constructor arguments of the "new Supertype(...)" form.
	anonymousTypeArguments *CodeBlock
	javadoc                *CodeBlock
	annotations            []*AnnotationSpec
	modifiers              []Modifier
	typeVariables          []*TypeVariableName
	superclass             TypeName
	superinterfaces        []TypeName
	enumConstants          []enumConstant
	fields                 []*FieldSpec
	staticBlock            *CodeBlock
	initializerBlock       *CodeBlock
	methods                []*MethodSpec
	types                  []*TypeSpec
	alwaysQualify          []string
	nestedTypeNames        map[string]bool
	memo                   memoString
}

// enumConstant pairs a constant's name with its (possibly empty) anonymous
// body. Constant order is the declared order; it defines the enum's ordinals
// and is never rearranged by a style.
type enumConstant struct {
	name     string
	typeSpec *TypeSpec
}

// Kind returns the declaration kind.
func (t *TypeSpec) Kind() TypeSpecKind { return t.kind }

// Name returns the type's simple name, or "" for anonymous classes.
func (t *TypeSpec) Name() string { return t.name }

// Modifiers returns the type's modifiers in canonical order.
func (t *TypeSpec) Modifiers() []Modifier { return append([]Modifier{}, t.modifiers...) }

// HasModifier reports whether the type carries the given modifier.
func (t *TypeSpec) HasModifier(m Modifier) bool { return hasModifier(t.modifiers, m) }

// Superclass returns the declared superclass, or nil when the type extends
// only java.lang.Object (or cannot extend at all).
func (t *TypeSpec) Superclass() TypeName { return t.superclass }

// Superinterfaces returns the declared superinterfaces.
func (t *TypeSpec) Superinterfaces() []TypeName { return append([]TypeName{}, t.superinterfaces...) }

// Fields returns the type's fields in declaration order.
func (t *TypeSpec) Fields() []*FieldSpec { return append([]*FieldSpec{}, t.fields...) }

// Methods returns the type's methods and constructors in declaration order.
func (t *TypeSpec) Methods() []*MethodSpec { return append([]*MethodSpec{}, t.methods...) }

// NestedTypes returns the types declared inside this one.
func (t *TypeSpec) NestedTypes() []*TypeSpec { return append([]*TypeSpec{}, t.types...) }

// EnumConstantNames returns the enum's constant names in declaration order.
func (t *TypeSpec) EnumConstantNames() []string {
	names := make([]string, len(t.enumConstants))
	for i, ec := range t.enumConstants {
		names[i] = ec.name
	}
	return names
}

// Equals reports whether other renders to the same text.
func (t *TypeSpec) Equals(other *TypeSpec) bool {
	return other != nil && t.String() == other.String()
}

func (t *TypeSpec) String() string {
	return t.memo.get(func() string {
		var sb strings.Builder
		cw := newCodeWriter(&sb, defaultIndent, defaultColumnLimit, StyleCompat)
		t.emit(cw, "", nil)
		cw.close()
		return sb.String()
	})
}

// ToBuilder returns a new builder seeded with this type's contents.
func (t *TypeSpec) ToBuilder() *TypeSpecBuilder {
	b := &TypeSpecBuilder{
		kind:                   t.kind,
		name:                   t.name,
		anonymousTypeArguments: t.anonymousTypeArguments,
		javadoc:                t.javadoc,
		superclass:             t.superclass,
		staticBlock:            t.staticBlock,
		initializerBlock:       t.initializerBlock,
	}
	b.annotations = append(b.annotations, t.annotations...)
	b.modifiers = append(b.modifiers, t.modifiers...)
	b.typeVariables = append(b.typeVariables, t.typeVariables...)
	b.superinterfaces = append(b.superinterfaces, t.superinterfaces...)
	b.enumConstants = append(b.enumConstants, t.enumConstants...)
	b.fields = append(b.fields, t.fields...)
	b.methods = append(b.methods, t.methods...)
	b.types = append(b.types, t.types...)
	b.alwaysQualify = append(b.alwaysQualify, t.alwaysQualify...)
	return b
}

// recordComponents returns the fields that form a record's header. Record
// components are exactly the non-static fields.
func (t *TypeSpec) recordComponents() []*FieldSpec {
	var components []*FieldSpec
	for _, f := range t.fields {
		if !f.HasModifier(Static) {
			components = append(components, f)
		}
	}
	return components
}

func (t *TypeSpec) collectStaticImports(into map[string]bool) {
	collect := func(c *CodeBlock) {
		if c == nil {
			return
		}
		for _, si := range c.staticImports {
			into[si] = true
		}
	}
	collect(t.javadoc)
	collect(t.anonymousTypeArguments)
	collect(t.staticBlock)
	collect(t.initializerBlock)
	for _, a := range t.annotations {
		a.collectStaticImports(into)
	}
	for _, f := range t.fields {
		collect(f.javadoc)
		collect(f.initializer)
		for _, a := range f.annotations {
			a.collectStaticImports(into)
		}
	}
	for _, m := range t.methods {
		collect(m.javadoc)
		collect(m.code)
		collect(m.defaultValue)
		for _, a := range m.annotations {
			a.collectStaticImports(into)
		}
		for _, p := range m.parameters {
			collect(p.javadoc)
			for _, a := range p.annotations {
				a.collectStaticImports(into)
			}
		}
	}
	for _, ec := range t.enumConstants {
		ec.typeSpec.collectStaticImports(into)
	}
	for _, nested := range t.types {
		nested.collectStaticImports(into)
	}
}

// collectAlwaysQualifiedNames gathers the simple names this type and its
// nested types insist on keeping fully qualified.
func (t *TypeSpec) collectAlwaysQualifiedNames(into map[string]bool) {
	for _, name := range t.alwaysQualify {
		into[name] = true
	}
	for _, nested := range t.types {
		nested.collectAlwaysQualifiedNames(into)
	}
}

// emit writes the full declaration. enumName is non-empty when this spec is
// the body of an enum constant of that name; anonymous classes emit as a
// "new Supertype(args) { ... }" value instead of a declaration.
func (t *TypeSpec) emit(cw *codeWriter, enumName string, implicitModifiers []Modifier) {
	// A nested type interrupts wrapped-line indentation. Stash the statement
	// state and restore it when the type body is complete.
	previousStatementLine := cw.statementLine
	cw.statementLine = -1
	defer func() { cw.statementLine = previousStatementLine }()

	switch {
	case enumName != "":
		cw.emitJavadoc(t.javadoc)
		cw.emitAnnotations(t.annotations, false)
		cw.emitAndIndent(enumName)
		if len(t.anonymousTypeArguments.formatParts) > 0 {
			cw.emitAndIndent("(")
			cw.emitCode(t.anonymousTypeArguments)
			cw.emitAndIndent(")")
		}
		if len(t.fields) == 0 && len(t.methods) == 0 && len(t.types) == 0 {
			return // Avoid unnecessary braces "{}".
		}
		cw.emitAndIndent(" {\n")

	case t.anonymousTypeArguments != nil:
		supertype := TypeName(ObjectType)
		if len(t.superinterfaces) > 0 {
			supertype = t.superinterfaces[0]
		} else if t.superclass != nil {
			supertype = t.superclass
		}
		cw.emitf("new $T(", supertype)
		cw.emitCode(t.anonymousTypeArguments)
		cw.emitAndIndent(") {\n")

	default:
		// Push a scope marker without nested types so the signature can
		// reference the type being declared.
		cw.pushType(&typeScope{name: t.name})

		cw.emitJavadoc(t.javadoc)
		cw.emitAnnotations(t.annotations, false)
		cw.emitModifiers(t.modifiers, append(append([]Modifier{}, implicitModifiers...), t.kind.asMemberModifiers()...))
		cw.emitAndIndent(t.kind.keyword() + " " + t.name)
		cw.emitTypeVariables(t.typeVariables)

		if t.kind == KindRecordDecl {
			cw.emitAndIndent("(")
			for i, component := range t.recordComponents() {
				if i > 0 {
					cw.emitAndIndent(",")
					cw.emitWrappingSpace()
				}
				cw.emitAnnotations(component.annotations, true)
				cw.emitf("$T $L", component.typeName, component.name)
			}
			cw.emitAndIndent(")")
		}

		var extendsTypes, implementsTypes []TypeName
		if t.kind == KindInterfaceDecl {
			extendsTypes = t.superinterfaces
		} else {
			if t.superclass != nil {
				extendsTypes = []TypeName{t.superclass}
			}
			implementsTypes = t.superinterfaces
		}
		emitSupertypes(cw, "extends", extendsTypes)
		emitSupertypes(cw, "implements", implementsTypes)

		cw.popType()
		cw.emitAndIndent(" {\n")
	}

	cw.pushType(&typeScope{name: t.name, nestedTypes: t.nestedTypeNames})
	cw.indentLevel++
	firstMember := true

	// Enum constants always come first; their order defines the ordinals and
	// is never rearranged.
	for i, ec := range t.enumConstants {
		if !firstMember {
			cw.emitAndIndent("\n")
		}
		ec.typeSpec.emit(cw, ec.name, nil)
		firstMember = false
		switch {
		case i != len(t.enumConstants)-1:
			cw.emitAndIndent(",\n")
		case len(t.fields) > 0 || len(t.methods) > 0 || len(t.types) > 0:
			cw.emitAndIndent(";\n")
		default:
			cw.emitAndIndent("\n")
		}
	}

	for _, group := range t.memberGroups(cw.style) {
		if len(group.emit) == 0 {
			continue
		}
		afterBanner := false
		if cw.style.BannerComments && group.banner != "" {
			if !firstMember {
				cw.emitAndIndent("\n")
			}
			cw.emitComment(bannerComment(group.banner))
			firstMember = false
			afterBanner = true
		}
		for _, emitMember := range group.emit {
			if !firstMember && !afterBanner {
				cw.emitAndIndent("\n")
			}
			afterBanner = false
			emitMember(cw)
			firstMember = false
		}
	}

	cw.unindent(1)
	cw.popType()
	if enumName == "" && t.anonymousTypeArguments == nil {
		cw.popTypeVariables(t.typeVariables)
	}
	cw.emitAndIndent("}")
	if enumName == "" && t.anonymousTypeArguments == nil {
		// A declaration ends its own line; a value form is embedded in a
		// larger expression.
		cw.emitAndIndent("\n")
	}
}

func emitSupertypes(cw *codeWriter, keyword string, types []TypeName) {
	if len(types) == 0 {
		return
	}
	cw.emitAndIndent(" " + keyword)
	for i, typ := range types {
		if i > 0 {
			cw.emitAndIndent(",")
		}
		cw.emitAndIndent(" ")
		typ.emit(cw)
	}
}

// memberGroup is one run of members emitted together, optionally labeled
// with a banner comment.
type memberGroup struct {
	banner string
	emit   []func(*codeWriter)
}

// memberGroups arranges the type's members according to the style. There is
// one emission path: the style only decides grouping and order, never how a
// member renders.
func (t *TypeSpec) memberGroups(style Style) []memberGroup {
	fieldThunk := func(f *FieldSpec) func(*codeWriter) {
		return func(cw *codeWriter) { f.emit(cw, t.kind.implicitFieldModifiers()) }
	}
	methodThunk := func(m *MethodSpec) func(*codeWriter) {
		return func(cw *codeWriter) { m.emit(cw, t.name, t.kind.implicitMethodModifiers()) }
	}
	typeThunk := func(ts *TypeSpec) func(*codeWriter) {
		return func(cw *codeWriter) { ts.emit(cw, "", t.kind.implicitTypeModifiers()) }
	}
	codeThunk := func(c *CodeBlock) func(*codeWriter) {
		return func(cw *codeWriter) { cw.emitCode(c) }
	}

	// Record components live in the header, not the body.
	isRecord := t.kind == KindRecordDecl
	var constants, attributes, staticFields, instanceFields []*FieldSpec
	for _, f := range t.fields {
		switch {
		case f.HasModifier(Static) && f.HasModifier(Final):
			constants = append(constants, f)
			staticFields = append(staticFields, f)
		case f.HasModifier(Static):
			staticFields = append(staticFields, f)
		case !isRecord:
			attributes = append(attributes, f)
			instanceFields = append(instanceFields, f)
		}
	}
	var constructors, methods []*MethodSpec
	for _, m := range t.methods {
		if m.IsConstructor() {
			constructors = append(constructors, m)
		} else {
			methods = append(methods, m)
		}
	}

	fieldThunks := func(fields []*FieldSpec) []func(*codeWriter) {
		thunks := make([]func(*codeWriter), len(fields))
		for i, f := range fields {
			thunks[i] = fieldThunk(f)
		}
		return thunks
	}
	methodThunks := func(specs []*MethodSpec) []func(*codeWriter) {
		thunks := make([]func(*codeWriter), len(specs))
		for i, m := range specs {
			thunks[i] = methodThunk(m)
		}
		return thunks
	}
	typeThunks := func(specs []*TypeSpec) []func(*codeWriter) {
		thunks := make([]func(*codeWriter), len(specs))
		for i, ts := range specs {
			thunks[i] = typeThunk(ts)
		}
		return thunks
	}

	if style.MemberOrdering == OrderSorted {
		sortedStatics := make([]*FieldSpec, 0, len(staticFields))
		for _, f := range sortedFieldSpecs(staticFields) {
			if !f.HasModifier(Final) {
				sortedStatics = append(sortedStatics, f)
			}
		}
		var constantThunks []func(*codeWriter)
		for _, f := range sortedFieldSpecs(constants) {
			constantThunks = append(constantThunks, fieldThunk(f))
		}
		attributeThunks := fieldThunks(sortedFieldSpecs(attributes))
		if t.initializerBlock != nil && !t.initializerBlock.IsEmpty() {
			attributeThunks = append(attributeThunks, codeThunk(t.initializerBlock))
		}
		staticThunks := fieldThunks(sortedStatics)
		if t.staticBlock != nil && !t.staticBlock.IsEmpty() {
			staticThunks = append(staticThunks, codeThunk(t.staticBlock))
		}
		return []memberGroup{
			{banner: "inner types", emit: typeThunks(sortedTypeSpecs(t.types))},
			{banner: "constants", emit: constantThunks},
			{banner: "attributes", emit: attributeThunks},
			{banner: "static fields", emit: staticThunks},
			{banner: "constructors", emit: methodThunks(sortedMethodSpecs(constructors))},
			{banner: "methods", emit: methodThunks(sortedMethodSpecs(methods))},
		}
	}

	// Declared order: static fields with their initializer block, then
	// instance state, then constructors, methods, and nested types.
	staticThunks := fieldThunks(staticFields)
	if t.staticBlock != nil && !t.staticBlock.IsEmpty() {
		staticThunks = append(staticThunks, codeThunk(t.staticBlock))
	}
	instanceThunks := fieldThunks(instanceFields)
	if t.initializerBlock != nil && !t.initializerBlock.IsEmpty() {
		instanceThunks = append(instanceThunks, codeThunk(t.initializerBlock))
	}
	return []memberGroup{
		{emit: staticThunks},
		{emit: instanceThunks},
		{emit: methodThunks(constructors)},
		{emit: methodThunks(methods)},
		{emit: typeThunks(t.types)},
	}
}

// TypeSpecBuilder accumulates a TypeSpec.
type TypeSpecBuilder struct {
	kind                   TypeSpecKind
	name                   string
	anonymousTypeArguments *CodeBlock
	javadoc                *CodeBlock
	annotations            []*AnnotationSpec
	modifiers              []Modifier
	typeVariables          []*TypeVariableName
	superclass             TypeName
	superinterfaces        []TypeName
	enumConstants          []enumConstant
	fields                 []*FieldSpec
	staticBlock            *CodeBlock
	initializerBlock       *CodeBlock
	methods                []*MethodSpec
	types                  []*TypeSpec
	alwaysQualify          []string
}

func newTypeSpecBuilder(kind TypeSpecKind, name string) *TypeSpecBuilder {
	if !IsValidIdentifier(name) {
		panic(fmt.Sprintf("not a valid type name: %q", name))
	}
	return &TypeSpecBuilder{kind: kind, name: name, javadoc: emptyCodeBlock}
}

// NewClassBuilder returns a builder for a class declaration.
func NewClassBuilder(name string) *TypeSpecBuilder {
	return newTypeSpecBuilder(KindClassDecl, name)
}

// ClassBuilderForClassName returns a class builder named after the given
// class name's simple name.
func ClassBuilderForClassName(cn *ClassName) *TypeSpecBuilder {
	return NewClassBuilder(cn.SimpleName())
}

// NewInterfaceBuilder returns a builder for an interface declaration.
func NewInterfaceBuilder(name string) *TypeSpecBuilder {
	return newTypeSpecBuilder(KindInterfaceDecl, name)
}

// NewEnumBuilder returns a builder for an enum declaration.
func NewEnumBuilder(name string) *TypeSpecBuilder {
	return newTypeSpecBuilder(KindEnumDecl, name)
}

// NewAnnotationTypeBuilder returns a builder for an annotation type
// declaration.
func NewAnnotationTypeBuilder(name string) *TypeSpecBuilder {
	return newTypeSpecBuilder(KindAnnotationDecl, name)
}

// NewRecordBuilder returns a builder for a record declaration. The record's
// components are its non-static fields.
func NewRecordBuilder(name string) *TypeSpecBuilder {
	return newTypeSpecBuilder(KindRecordDecl, name)
}

// NewAnonymousClassBuilder returns a builder for an anonymous class. The
// format string supplies the constructor arguments of the "new Supertype(...)"
// expression.
func NewAnonymousClassBuilder(typeArgumentsFormat string, args ...interface{}) *TypeSpecBuilder {
	return &TypeSpecBuilder{
		kind:                   KindClassDecl,
		anonymousTypeArguments: CodeBlockOf(typeArgumentsFormat, args...),
		javadoc:                emptyCodeBlock,
	}
}

func (b *TypeSpecBuilder) isAnonymous() bool { return b.anonymousTypeArguments != nil }

func (b *TypeSpecBuilder) AddJavadoc(format string, args ...interface{}) *TypeSpecBuilder {
	b.javadoc = b.javadoc.ToBuilder().Add(format, args...).Build()
	return b
}

func (b *TypeSpecBuilder) AddAnnotation(annotation *AnnotationSpec) *TypeSpecBuilder {
	b.annotations = append(b.annotations, annotation)
	return b
}

func (b *TypeSpecBuilder) AddAnnotations(annotations ...*AnnotationSpec) *TypeSpecBuilder {
	b.annotations = append(b.annotations, annotations...)
	return b
}

func (b *TypeSpecBuilder) AddModifiers(modifiers ...Modifier) *TypeSpecBuilder {
	if b.isAnonymous() {
		panic("forbidden on anonymous types: modifiers")
	}
	checkModifiers(modifiers)
	b.modifiers = append(b.modifiers, modifiers...)
	return b
}

func (b *TypeSpecBuilder) AddTypeVariable(typeVariable *TypeVariableName) *TypeSpecBuilder {
	if b.isAnonymous() {
		panic("forbidden on anonymous types: type variables")
	}
	b.typeVariables = append(b.typeVariables, typeVariable)
	return b
}

func (b *TypeSpecBuilder) AddTypeVariables(typeVariables ...*TypeVariableName) *TypeSpecBuilder {
	for _, tv := range typeVariables {
		b.AddTypeVariable(tv)
	}
	return b
}

// Superclass sets the class's superclass. Only classes (including anonymous
// ones) can extend.
func (b *TypeSpecBuilder) Superclass(superclass TypeName) *TypeSpecBuilder {
	if b.kind != KindClassDecl {
		panic(fmt.Sprintf("only classes have super classes, not %s", b.kind.keyword()))
	}
	if b.superclass != nil {
		panic("superclass already set")
	}
	if superclass == nil {
		panic("superclass must not be nil")
	}
	if superclass.Kind() != KindClass && superclass.Kind() != KindParameterized {
		panic(fmt.Sprintf("superclass must be a class: %s", superclass))
	}
	b.superclass = superclass
	return b
}

func (b *TypeSpecBuilder) AddSuperinterface(superinterface TypeName) *TypeSpecBuilder {
	if superinterface == nil {
		panic("superinterface must not be nil")
	}
	b.superinterfaces = append(b.superinterfaces, superinterface)
	return b
}

func (b *TypeSpecBuilder) AddSuperinterfaces(superinterfaces ...TypeName) *TypeSpecBuilder {
	for _, s := range superinterfaces {
		b.AddSuperinterface(s)
	}
	return b
}

// AddEnumConstant adds a constant with no body.
func (b *TypeSpecBuilder) AddEnumConstant(name string) *TypeSpecBuilder {
	return b.AddEnumConstantSpec(name, NewAnonymousClassBuilder("").Build())
}

// AddEnumConstantSpec adds a constant whose constructor arguments and body
// come from the given anonymous class spec.
func (b *TypeSpecBuilder) AddEnumConstantSpec(name string, spec *TypeSpec) *TypeSpecBuilder {
	if b.kind != KindEnumDecl {
		panic(fmt.Sprintf("%s is not an enum", b.name))
	}
	if !IsValidIdentifier(name) {
		panic(fmt.Sprintf("not a valid enum constant: %q", name))
	}
	if spec == nil || spec.anonymousTypeArguments == nil {
		panic(fmt.Sprintf("enum constant %s must have an anonymous type spec", name))
	}
	for _, ec := range b.enumConstants {
		if ec.name == name {
			panic(fmt.Sprintf("duplicate enum constant: %s", name))
		}
	}
	b.enumConstants = append(b.enumConstants, enumConstant{name: name, typeSpec: spec})
	return b
}

func (b *TypeSpecBuilder) AddField(field *FieldSpec) *TypeSpecBuilder {
	b.fields = append(b.fields, field)
	return b
}

func (b *TypeSpecBuilder) AddFields(fields ...*FieldSpec) *TypeSpecBuilder {
	b.fields = append(b.fields, fields...)
	return b
}

// AddFieldOf adds a bare field of the given type and modifiers.
func (b *TypeSpecBuilder) AddFieldOf(typ TypeName, name string, modifiers ...Modifier) *TypeSpecBuilder {
	return b.AddField(NewFieldSpec(typ, name, modifiers...))
}

// AddAttribute adds a constant attribute: the field must be public static
// final and carry an initializer. Annotation types accept members only
// through this path.
func (b *TypeSpecBuilder) AddAttribute(field *FieldSpec) *TypeSpecBuilder {
	if !containsAllModifiers(field.modifiers, Public, Static, Final) || field.initializer.IsEmpty() {
		panic(fmt.Sprintf("attribute %s must be public static final with an initializer", field.name))
	}
	return b.AddField(field)
}

// AddStaticBlock wraps the given code in a "static { ... }" initializer.
func (b *TypeSpecBuilder) AddStaticBlock(block *CodeBlock) *TypeSpecBuilder {
	if b.kind == KindInterfaceDecl || b.kind == KindAnnotationDecl {
		panic(fmt.Sprintf("%s can't have static blocks", b.kind.keyword()))
	}
	builder := NewCodeBlockBuilder()
	if b.staticBlock != nil {
		builder.AddCode(b.staticBlock)
	}
	b.staticBlock = builder.BeginControlFlow("static").AddCode(block).EndControlFlow().Build()
	return b
}

// AddInitializerBlock wraps the given code in an instance initializer block.
func (b *TypeSpecBuilder) AddInitializerBlock(block *CodeBlock) *TypeSpecBuilder {
	if b.kind != KindClassDecl && b.kind != KindEnumDecl {
		panic(fmt.Sprintf("%s can't have initializer blocks", b.kind.keyword()))
	}
	builder := NewCodeBlockBuilder()
	if b.initializerBlock != nil {
		builder.AddCode(b.initializerBlock)
	}
	b.initializerBlock = builder.Add("{\n").Indent().AddCode(block).Unindent().Add("}\n").Build()
	return b
}

func (b *TypeSpecBuilder) AddMethod(method *MethodSpec) *TypeSpecBuilder {
	b.methods = append(b.methods, method)
	return b
}

func (b *TypeSpecBuilder) AddMethods(methods ...*MethodSpec) *TypeSpecBuilder {
	b.methods = append(b.methods, methods...)
	return b
}

func (b *TypeSpecBuilder) AddType(typeSpec *TypeSpec) *TypeSpecBuilder {
	b.types = append(b.types, typeSpec)
	return b
}

func (b *TypeSpecBuilder) AddTypes(typeSpecs ...*TypeSpec) *TypeSpecBuilder {
	b.types = append(b.types, typeSpecs...)
	return b
}

// AlwaysQualify lists simple names that must stay fully qualified in the
// emitted file even when an import would be unambiguous.
func (b *TypeSpecBuilder) AlwaysQualify(simpleNames ...string) *TypeSpecBuilder {
	b.alwaysQualify = append(b.alwaysQualify, simpleNames...)
	return b
}

// Build validates the accumulated declaration and freezes it. All structural
// invariants are enforced here so rendering can assume a valid model.
func (b *TypeSpecBuilder) Build() *TypeSpec {
	isAbstract := hasModifier(b.modifiers, Abstract) ||
		(b.kind != KindClassDecl && b.kind != KindRecordDecl)

	for _, m := range b.methods {
		if m.HasModifier(Abstract) && !isAbstract {
			panic(fmt.Sprintf("non-abstract type %s cannot declare abstract method %s", b.name, m.name))
		}
		if !m.defaultValue.IsEmpty() && b.kind != KindAnnotationDecl {
			panic(fmt.Sprintf("%s %s.%s cannot have a default value", b.kind.keyword(), b.name, m.name))
		}
	}

	switch b.kind {
	case KindInterfaceDecl:
		for _, f := range b.fields {
			if !containsAllModifiers(f.modifiers, Public, Static, Final) {
				panic(fmt.Sprintf("interface %s field %s must be public static final", b.name, f.name))
			}
		}
		for _, m := range b.methods {
			requireExactlyOneOf(b.name, m, Abstract, Static, Default, Private)
		}
	case KindAnnotationDecl:
		for _, f := range b.fields {
			if !containsAllModifiers(f.modifiers, Public, Static, Final) || f.initializer.IsEmpty() {
				panic(fmt.Sprintf("annotation type %s field %s must be public static final with an initializer", b.name, f.name))
			}
		}
		for _, m := range b.methods {
			if m.IsConstructor() {
				panic(fmt.Sprintf("annotation type %s cannot have constructors", b.name))
			}
			if !m.HasModifier(Abstract) || len(m.parameters) > 0 || !m.code.IsEmpty() || len(m.exceptions) > 0 {
				panic(fmt.Sprintf("annotation type %s method %s must be public abstract with no parameters or body", b.name, m.name))
			}
		}
		if len(b.superinterfaces) > 0 {
			panic(fmt.Sprintf("annotation type %s cannot have superinterfaces", b.name))
		}
	case KindEnumDecl:
		if len(b.enumConstants) == 0 {
			panic(fmt.Sprintf("at least one enum constant is required for %s", b.name))
		}
		if hasModifier(b.modifiers, Abstract) {
			panic(fmt.Sprintf("enum %s cannot be abstract", b.name))
		}
	case KindRecordDecl:
		components := 0
		for _, f := range b.fields {
			if !f.HasModifier(Static) {
				components++
			}
		}
		if components == 0 {
			panic(fmt.Sprintf("record %s must declare at least one non-static field", b.name))
		}
		if hasModifier(b.modifiers, Abstract) {
			panic(fmt.Sprintf("record %s cannot be abstract", b.name))
		}
	}

	if b.isAnonymous() {
		interesting := len(b.superinterfaces)
		if b.superclass != nil && !b.superclass.Equals(ObjectType) {
			interesting++
		}
		if interesting > 1 {
			panic("anonymous type has too many supertypes")
		}
		if len(b.enumConstants) > 0 {
			panic("anonymous types cannot declare enum constants")
		}
	}

	nestedTypeNames := make(map[string]bool, len(b.types))
	for _, nested := range b.types {
		if nested.name != "" {
			nestedTypeNames[nested.name] = true
		}
	}

	return &TypeSpec{
		kind:                   b.kind,
		name:                   b.name,
		anonymousTypeArguments: b.anonymousTypeArguments,
		javadoc:                b.javadoc,
		annotations:            append([]*AnnotationSpec{}, b.annotations...),
		modifiers:              sortModifiers(b.modifiers),
		typeVariables:          append([]*TypeVariableName{}, b.typeVariables...),
		superclass:             b.superclass,
		superinterfaces:        append([]TypeName{}, b.superinterfaces...),
		enumConstants:          append([]enumConstant{}, b.enumConstants...),
		fields:                 append([]*FieldSpec{}, b.fields...),
		staticBlock:            b.staticBlock,
		initializerBlock:       b.initializerBlock,
		methods:                append([]*MethodSpec{}, b.methods...),
		types:                  append([]*TypeSpec{}, b.types...),
		alwaysQualify:          append([]string{}, b.alwaysQualify...),
		nestedTypeNames:        nestedTypeNames,
	}
}

// requireExactlyOneOf panics unless the method carries exactly one of the
// given mutually exclusive modifiers.
func requireExactlyOneOf(typeName string, m *MethodSpec, mutuallyExclusive ...Modifier) {
	count := 0
	for _, mod := range mutuallyExclusive {
		if m.HasModifier(mod) {
			count++
		}
	}
	if count != 1 {
		panic(fmt.Sprintf("method %s.%s must have exactly one of modifiers %s",
			typeName, m.name, modifiersString(mutuallyExclusive)))
	}
}
