package jpoet

import (
	"fmt"
	"strings"
	"unicode"
)

// ClassName is the TypeName variant for the name of a class, interface, enum,
// record, or annotation type, possibly nested. It is identified by a package
// name plus the ordered chain of simple names from the outermost enclosing
// class down to the class itself.
type ClassName struct {
	packageName string
	// simpleNames holds the enclosing simple names from outermost to
	// innermost, ending with this class's own simple name. Never empty.
	simpleNames []string
	// canonicalName is computed once at construction: enclosing canonical
	// name + "." + simple name, or package + "." + simple name at top level.
	canonicalName string
	annotations   []*AnnotationSpec
	memo          memoString
}

var _ TypeName = (*ClassName)(nil)

// ObjectType is the class name of java.lang.Object.
var ObjectType = NewClassName("java.lang", "Object")

// boxedClassNames maps primitive keywords to their java.lang wrapper classes.
var boxedClassNames = map[string]*ClassName{
	"void":    NewClassName("java.lang", "Void"),
	"boolean": NewClassName("java.lang", "Boolean"),
	"byte":    NewClassName("java.lang", "Byte"),
	"short":   NewClassName("java.lang", "Short"),
	"int":     NewClassName("java.lang", "Integer"),
	"long":    NewClassName("java.lang", "Long"),
	"char":    NewClassName("java.lang", "Character"),
	"float":   NewClassName("java.lang", "Float"),
	"double":  NewClassName("java.lang", "Double"),
}

// unboxedKeywords is the reverse of boxedClassNames, keyed by canonical name.
var unboxedKeywords = map[string]string{
	"java.lang.Void":      "void",
	"java.lang.Boolean":   "boolean",
	"java.lang.Byte":      "byte",
	"java.lang.Short":     "short",
	"java.lang.Integer":   "int",
	"java.lang.Long":      "long",
	"java.lang.Character": "char",
	"java.lang.Float":     "float",
	"java.lang.Double":    "double",
}

// NewClassName returns the class name for the given package and chain of
// simple names, outermost first. The package name may be empty for the
// unnamed package.
func NewClassName(packageName string, simpleName string, nestedNames ...string) *ClassName {
	names := append([]string{simpleName}, nestedNames...)
	for _, n := range names {
		if !IsValidIdentifier(n) {
			panic(fmt.Sprintf("not a valid class name: %q", n))
		}
	}
	return &ClassName{
		packageName:   packageName,
		simpleNames:   names,
		canonicalName: canonicalName(packageName, names),
	}
}

func canonicalName(packageName string, simpleNames []string) string {
	joined := strings.Join(simpleNames, ".")
	if packageName == "" {
		return joined
	}
	return packageName + "." + joined
}

// BestGuessClassName parses a fully-qualified dotted name using the
// convention that package segments start with a lowercase letter and class
// segments start with an uppercase letter. It panics if no class segment is
// found.
//
// Deprecated: the heuristic is inherently unreliable for names that do not
// follow the convention. Prefer NewClassName, which is explicit about where
// the package ends.
func BestGuessClassName(qualifiedName string) *ClassName {
	segments := strings.Split(qualifiedName, ".")
	p := 0
	for p < len(segments) {
		r := firstRune(segments[p])
		if segments[p] == "" || !unicode.IsLower(r) {
			break
		}
		p++
	}
	if p == len(segments) {
		panic(fmt.Sprintf("couldn't make a guess for %s", qualifiedName))
	}
	packageName := strings.Join(segments[:p], ".")
	for _, s := range segments[p:] {
		if s == "" || !unicode.IsUpper(firstRune(s)) {
			panic(fmt.Sprintf("couldn't make a guess for %s", qualifiedName))
		}
	}
	return NewClassName(packageName, segments[p], segments[p+1:]...)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// PackageName returns the class's package name, or "" for the unnamed
// package.
func (c *ClassName) PackageName() string { return c.packageName }

// SimpleName returns the class's own simple name.
func (c *ClassName) SimpleName() string { return c.simpleNames[len(c.simpleNames)-1] }

// SimpleNames returns the chain of simple names from the outermost enclosing
// class to this class.
func (c *ClassName) SimpleNames() []string { return append([]string{}, c.simpleNames...) }

// CanonicalName returns the fully-qualified dotted name, including all
// enclosing classes and the package.
func (c *ClassName) CanonicalName() string { return c.canonicalName }

// Enclosing returns the class that immediately encloses this one, or nil if
// this is a top-level class.
func (c *ClassName) Enclosing() *ClassName {
	if len(c.simpleNames) == 1 {
		return nil
	}
	names := c.simpleNames[:len(c.simpleNames)-1]
	return &ClassName{
		packageName:   c.packageName,
		simpleNames:   names,
		canonicalName: canonicalName(c.packageName, names),
	}
}

// TopLevelClassName returns the outermost class enclosing this one, or the
// receiver itself if it is top-level.
func (c *ClassName) TopLevelClassName() *ClassName {
	if len(c.simpleNames) == 1 {
		return c
	}
	return NewClassName(c.packageName, c.simpleNames[0])
}

// NestedClass returns a class named name nested inside this one.
func (c *ClassName) NestedClass(name string) *ClassName {
	if !IsValidIdentifier(name) {
		panic(fmt.Sprintf("not a valid class name: %q", name))
	}
	names := append(append([]string{}, c.simpleNames...), name)
	return &ClassName{
		packageName:   c.packageName,
		simpleNames:   names,
		canonicalName: c.canonicalName + "." + name,
	}
}

// PeerClass returns a class named name in the same package and with the same
// enclosing classes as this one.
func (c *ClassName) PeerClass(name string) *ClassName {
	if enc := c.Enclosing(); enc != nil {
		return enc.NestedClass(name)
	}
	return NewClassName(c.packageName, name)
}

// ReflectionName returns the binary name of the class as produced by
// Class.getName: nesting separated by '$' rather than '.'.
func (c *ClassName) ReflectionName() string {
	joined := strings.Join(c.simpleNames, "$")
	if c.packageName == "" {
		return joined
	}
	return c.packageName + "." + joined
}

func (c *ClassName) Kind() TypeKind                 { return KindClass }
func (c *ClassName) Annotations() []*AnnotationSpec { return c.annotations }
func (c *ClassName) IsPrimitive() bool              { return false }

func (c *ClassName) IsBoxedPrimitive() bool {
	_, ok := unboxedKeywords[c.canonicalName]
	return ok && c.canonicalName != "java.lang.Void"
}

// Annotated returns a copy of this class name with the given annotations
// attached. When emitted, the annotations appear immediately before the
// class's own simple name.
func (c *ClassName) Annotated(annotations ...*AnnotationSpec) TypeName {
	return &ClassName{
		packageName:   c.packageName,
		simpleNames:   c.simpleNames,
		canonicalName: c.canonicalName,
		annotations:   copyAnnotations(c.annotations, annotations),
	}
}

func (c *ClassName) WithoutAnnotations() TypeName {
	if len(c.annotations) == 0 {
		return c
	}
	return &ClassName{
		packageName:   c.packageName,
		simpleNames:   c.simpleNames,
		canonicalName: c.canonicalName,
	}
}

func (c *ClassName) Box() TypeName {
	if _, ok := unboxedKeywords[c.canonicalName]; ok {
		return c
	}
	panic(fmt.Sprintf("cannot box %s", c.canonicalName))
}

func (c *ClassName) Unbox() TypeName {
	keyword, ok := unboxedKeywords[c.canonicalName]
	if !ok || keyword == "void" {
		panic(fmt.Sprintf("cannot unbox %s", c.canonicalName))
	}
	return &primitiveType{keyword: keyword}
}

func (c *ClassName) Equals(other TypeName) bool { return typeNamesEqual(c, other) }

func (c *ClassName) String() string {
	return c.memo.get(func() string { return typeNameString(c) })
}

// isAnnotated reports whether this exact class (not an enclosing one)
// carries type-use annotations.
func (c *ClassName) isAnnotated() bool { return len(c.annotations) > 0 }

// enclosingChain returns the chain of class names from the outermost
// enclosing class down to c itself.
func (c *ClassName) enclosingChain() []*ClassName {
	chain := make([]*ClassName, len(c.simpleNames))
	cur := c
	for i := len(chain) - 1; i >= 0; i-- {
		chain[i] = cur
		cur = cur.Enclosing()
	}
	return chain
}

// emit writes the shortest unambiguous form of this class name, consulting
// the writer's scope stack and import set. When a class in the chain carries
// annotations, emission switches to explicit per-segment form so the
// annotations land before the right simple name.
func (c *ClassName) emit(cw *codeWriter) {
	charsEmitted := false
	for _, cn := range c.enclosingChain() {
		var simpleName string
		if charsEmitted {
			// Continue emitting the nested chain.
			cw.emitAndIndent(".")
			simpleName = cn.SimpleName()
		} else if cn.isAnnotated() || cn == c {
			// The first segment to emit: resolve against the current scope.
			qualifiedName := cw.lookupName(cn)
			if dot := strings.LastIndexByte(qualifiedName, '.'); dot != -1 {
				cw.emitAndIndent(qualifiedName[:dot+1])
				simpleName = qualifiedName[dot+1:]
				charsEmitted = true
			} else {
				simpleName = qualifiedName
			}
		} else {
			// Not yet relevant to the resolved suffix.
			continue
		}
		if cn.isAnnotated() {
			if charsEmitted {
				cw.emitAndIndent(" ")
			}
			emitTypeAnnotations(cw, cn.annotations)
		}
		cw.emitAndIndent(simpleName)
		charsEmitted = true
	}
}

// compareClassNames orders class names by canonical name, for stable import
// lists.
func compareClassNames(a, b *ClassName) int {
	return strings.Compare(a.canonicalName, b.canonicalName)
}
