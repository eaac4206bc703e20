package jpoet

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

const (
	defaultIndent      = "  "
	defaultColumnLimit = 100
	// maxColumnLimit effectively disables wrapping. Standalone renders of
	// types and fragments use it so String() output is a single logical form.
	maxColumnLimit = 1 << 30
)

// typeScope is one frame of the enclosing-type stack used to resolve simple
// names while a type body is being emitted. The name is empty for anonymous
// classes.
type typeScope struct {
	name        string
	nestedTypes map[string]bool
}

// codeWriter converts a model to Java source, one fragment at a time. It
// tracks the current indentation, whether text is flowing into a javadoc or
// line comment, the statement state for continuation indentation, and the
// lexical scope needed to emit the shortest unambiguous form of each class
// name.
type codeWriter struct {
	out    *lineWrapper
	indent string
	style  Style

	javadoc       bool
	comment       bool
	packageName   string
	packageSet    bool
	typeSpecStack []*typeScope

	staticImports          map[string]bool
	staticImportClassNames map[string]bool
	alwaysQualify          map[string]bool

	// importedTypes maps simple name to class for imports already decided on.
	// importableTypes collects import candidates during the first pass, and
	// referencedNames the top-level simple names used without qualification.
	importedTypes   map[string]*ClassName
	importableTypes map[string]*ClassName
	referencedNames map[string]bool

	currentTypeVariables map[string]int

	trailingNewline bool
	indentLevel     int
	// statementLine is -1 when not inside a statement, 0 on a statement's
	// first line, and positive once the statement has spilled onto
	// continuation lines.
	statementLine int
}

func newCodeWriter(out io.Writer, indent string, columnLimit int, style Style) *codeWriter {
	return &codeWriter{
		out:                    newLineWrapper(out, indent, columnLimit),
		indent:                 indent,
		style:                  style,
		staticImports:          map[string]bool{},
		staticImportClassNames: map[string]bool{},
		alwaysQualify:          map[string]bool{},
		importedTypes:          map[string]*ClassName{},
		importableTypes:        map[string]*ClassName{},
		referencedNames:        map[string]bool{},
		currentTypeVariables:   map[string]int{},
		statementLine:          -1,
	}
}

// setStaticImports installs the static import signatures (canonical class
// name + "." + member or "*") the file declares.
func (cw *codeWriter) setStaticImports(staticImports []string) {
	for _, si := range staticImports {
		cw.staticImports[si] = true
		if dot := strings.LastIndexByte(si, '.'); dot != -1 {
			cw.staticImportClassNames[si[:dot]] = true
		}
	}
}

func (cw *codeWriter) err() error { return cw.out.err }

func (cw *codeWriter) close() { cw.out.close() }

func (cw *codeWriter) unindent(levels int) {
	if cw.indentLevel-levels < 0 {
		panic(fmt.Sprintf("cannot unindent %d from %d", levels, cw.indentLevel))
	}
	cw.indentLevel -= levels
}

func (cw *codeWriter) pushPackage(packageName string) {
	if cw.packageSet {
		panic("package already set: " + cw.packageName)
	}
	cw.packageName = packageName
	cw.packageSet = true
}

func (cw *codeWriter) popPackage() {
	if !cw.packageSet {
		panic("package not set")
	}
	cw.packageName = ""
	cw.packageSet = false
}

func (cw *codeWriter) pushType(scope *typeScope) {
	cw.typeSpecStack = append(cw.typeSpecStack, scope)
}

func (cw *codeWriter) popType() {
	cw.typeSpecStack = cw.typeSpecStack[:len(cw.typeSpecStack)-1]
}

func (cw *codeWriter) emitComment(comment *CodeBlock) {
	cw.trailingNewline = true // Force the comment prefix at the start.
	cw.comment = true
	cw.emitCode(comment)
	cw.emitAndIndent("\n")
	cw.comment = false
}

func (cw *codeWriter) emitJavadoc(javadoc *CodeBlock) {
	if javadoc.IsEmpty() {
		return
	}
	cw.emitAndIndent("/**\n")
	cw.javadoc = true
	cw.emitCode(javadoc)
	cw.javadoc = false
	cw.emitAndIndent(" */\n")
}

func (cw *codeWriter) emitAnnotations(annotations []*AnnotationSpec, inline bool) {
	for _, a := range annotations {
		a.emit(cw, inline)
		if inline {
			cw.emitAndIndent(" ")
		} else {
			cw.emitAndIndent("\n")
		}
	}
}

// emitModifiers writes the modifiers in their stored order, skipping any that
// are implicit in the current context (such as public on interface members).
func (cw *codeWriter) emitModifiers(modifiers []Modifier, implicitModifiers []Modifier) {
	for _, m := range modifiers {
		if hasModifier(implicitModifiers, m) {
			continue
		}
		cw.emitAndIndent(string(m))
		cw.emitAndIndent(" ")
	}
}

// emitTypeVariables writes "<A, B extends X & Y>" and brings the variable
// names into scope so same-named classes get fully qualified.
func (cw *codeWriter) emitTypeVariables(typeVariables []*TypeVariableName) {
	if len(typeVariables) == 0 {
		return
	}
	for _, tv := range typeVariables {
		cw.currentTypeVariables[tv.name]++
	}
	cw.emitAndIndent("<")
	for i, tv := range typeVariables {
		if i > 0 {
			cw.emitAndIndent(", ")
		}
		emitTypeAnnotations(cw, tv.annotations)
		cw.emitAndIndent(tv.name)
		for j, bound := range tv.bounds {
			if j == 0 {
				cw.emitAndIndent(" extends ")
			} else {
				cw.emitAndIndent(" & ")
			}
			bound.emit(cw)
		}
	}
	cw.emitAndIndent(">")
}

func (cw *codeWriter) popTypeVariables(typeVariables []*TypeVariableName) {
	for _, tv := range typeVariables {
		cw.currentTypeVariables[tv.name]--
		if cw.currentTypeVariables[tv.name] <= 0 {
			delete(cw.currentTypeVariables, tv.name)
		}
	}
}

// emitf formats and emits in one step.
func (cw *codeWriter) emitf(format string, args ...interface{}) {
	cw.emitCode(CodeBlockOf(format, args...))
}

func (cw *codeWriter) emitCode(c *CodeBlock) {
	a := 0
	var deferredTypeName *ClassName
	for partIndex := 0; partIndex < len(c.formatParts); partIndex++ {
		part := c.formatParts[partIndex]
		switch part {
		case "$L":
			cw.emitLiteral(c.args[a])
			a++

		case "$N":
			cw.emitAndIndent(c.args[a].(string))
			a++

		case "$S":
			arg := c.args[a]
			a++
			if arg == nil {
				cw.emitAndIndent("null")
			} else {
				cw.emitAndIndent(stringLiteralWithQuotes(arg.(string), cw.indent))
			}

		case "$T":
			typeName := c.args[a].(TypeName)
			a++
			// Defer emission if the next part may collapse into a statically
			// imported member reference.
			if cn, ok := typeName.(*ClassName); ok && !cn.isAnnotated() && partIndex+1 < len(c.formatParts) {
				if next := c.formatParts[partIndex+1]; !strings.HasPrefix(next, "$") {
					if cw.staticImportClassNames[cn.canonicalName] {
						if deferredTypeName != nil {
							panic("pending type for static import?!")
						}
						deferredTypeName = cn
						continue
					}
				}
			}
			typeName.emit(cw)

		case "$$":
			cw.emitAndIndent("$")

		case "$>":
			cw.indentLevel++

		case "$<":
			cw.unindent(1)

		case "$[":
			if cw.statementLine != -1 {
				panic("statement enter $[ followed by statement enter $[")
			}
			cw.statementLine = 0

		case "$]":
			if cw.statementLine == -1 {
				panic("statement exit $] has no matching statement enter $[")
			}
			if cw.statementLine > 0 {
				// End a multi-line statement. Drop the continuation indent.
				cw.unindent(2)
			}
			cw.statementLine = -1

		case "$W":
			cw.out.wrappingSpace(cw.indentLevel + 2)

		case "$Z":
			cw.out.zeroWidthSpace(cw.indentLevel + 2)

		default:
			if deferredTypeName != nil {
				if strings.HasPrefix(part, ".") && cw.emitStaticImportMember(deferredTypeName.canonicalName, part) {
					// The member reference replaced the type and the text.
					deferredTypeName = nil
					continue
				}
				deferredTypeName.emit(cw)
				deferredTypeName = nil
			}
			cw.emitAndIndent(part)
		}
	}
	if deferredTypeName != nil {
		deferredTypeName.emit(cw)
	}
}

// emitCodeEnsuringNewline emits c and appends a newline unless c already
// ended with one. Method and initializer bodies use it so the closing brace
// always lands on its own line.
func (cw *codeWriter) emitCodeEnsuringNewline(c *CodeBlock) {
	cw.emitCode(c)
	if cw.out.lastChar() != '\n' {
		cw.emitAndIndent("\n")
	}
}

func (cw *codeWriter) emitWrappingSpace() {
	cw.out.wrappingSpace(cw.indentLevel + 2)
}

// emitStaticImportMember emits "member" in place of "Class.member" when the
// member (or a wildcard) is statically imported. part carries the leading dot.
func (cw *codeWriter) emitStaticImportMember(canonical, part string) bool {
	partWithoutLeadingDot := part[1:]
	if partWithoutLeadingDot == "" {
		return false
	}
	if !isJavaIdentifierStart(firstRune(partWithoutLeadingDot)) {
		return false
	}
	explicit := canonical + "." + extractMemberName(partWithoutLeadingDot)
	wildcard := canonical + ".*"
	if cw.staticImports[explicit] || cw.staticImports[wildcard] {
		cw.emitAndIndent(partWithoutLeadingDot)
		return true
	}
	return false
}

// extractMemberName returns the leading Java identifier of part.
func extractMemberName(part string) string {
	for i, r := range part {
		if i == 0 {
			if !isJavaIdentifierStart(r) {
				return part
			}
			continue
		}
		if !isJavaIdentifierPart(r) {
			return part[:i]
		}
	}
	return part
}

func (cw *codeWriter) emitLiteral(o interface{}) {
	switch o := o.(type) {
	case *TypeSpec:
		o.emit(cw, "", nil)
	case *AnnotationSpec:
		o.emit(cw, true)
	case *CodeBlock:
		cw.emitCode(o)
	case nil:
		cw.emitAndIndent("null")
	default:
		cw.emitAndIndent(fmt.Sprintf("%v", o))
	}
}

// lookupName returns the best name to identify className within the current
// context: a simple name if the class is in scope or imported, otherwise the
// canonical name. Unresolvable names are recorded as import candidates for
// the next pass.
func (cw *codeWriter) lookupName(className *ClassName) string {
	// A same-named in-scope type variable shadows the class outright.
	topLevelSimpleName := className.TopLevelClassName().SimpleName()
	if cw.currentTypeVariables[topLevelSimpleName] > 0 {
		return className.canonicalName
	}

	// Walk up the nesting chain looking for a name the current scope can
	// resolve. Each segment is judged on its own: only the outcome for the
	// top-level segment decides whether the simple name is taken.
	nameResolved := false
	for c := className; c != nil; c = c.Enclosing() {
		resolved := cw.resolve(c.SimpleName())
		nameResolved = resolved != nil
		if resolved != nil && resolved.canonicalName == c.canonicalName {
			suffixOffset := len(c.simpleNames) - 1
			return strings.Join(className.simpleNames[suffixOffset:], ".")
		}
	}

	// The top-level simple name resolves to a different class, so this name
	// must stay fully qualified.
	if nameResolved {
		return className.canonicalName
	}

	// Same package: no import needed, but the simple name is now spoken for.
	if cw.packageName == className.packageName {
		cw.referencedNames[topLevelSimpleName] = true
		return strings.Join(className.simpleNames, ".")
	}

	// Fully qualified, and a candidate for importing on a later pass. Types
	// named inside javadoc don't count: they only become imports when used in
	// code as well.
	if !cw.javadoc {
		cw.importableType(className)
	}
	return className.canonicalName
}

func (cw *codeWriter) importableType(className *ClassName) {
	if className.packageName == "" {
		return
	}
	if cw.alwaysQualify[className.SimpleName()] {
		return
	}
	topLevel := className.TopLevelClassName()
	simpleName := topLevel.SimpleName()
	// First candidate for a simple name wins.
	if _, ok := cw.importableTypes[simpleName]; !ok {
		cw.importableTypes[simpleName] = topLevel
	}
}

// resolve returns the class that simpleName refers to in the current scope,
// or nil if it is not in scope.
func (cw *codeWriter) resolve(simpleName string) *ClassName {
	// A nested type of the current class or one of its enclosing classes.
	for i := len(cw.typeSpecStack) - 1; i >= 0; i-- {
		if cw.typeSpecStack[i].nestedTypes[simpleName] {
			return cw.stackClassName(i, simpleName)
		}
	}

	// The top-level class itself.
	if len(cw.typeSpecStack) > 0 && cw.typeSpecStack[0].name == simpleName {
		return NewClassName(cw.packageName, simpleName)
	}

	// An imported type.
	if imported, ok := cw.importedTypes[simpleName]; ok {
		return imported
	}
	return nil
}

// stackClassName builds the class name for simpleName nested within the
// stacked types up to stackDepth.
func (cw *codeWriter) stackClassName(stackDepth int, simpleName string) *ClassName {
	className := NewClassName(cw.packageName, cw.typeSpecStack[0].name)
	for i := 1; i <= stackDepth; i++ {
		className = className.NestedClass(cw.typeSpecStack[i].name)
	}
	return className.NestedClass(simpleName)
}

// suggestedImports returns the collected import candidates whose simple names
// were not claimed by same-package types, sorted by canonical name.
func (cw *codeWriter) suggestedImports() map[string]*ClassName {
	result := make(map[string]*ClassName, len(cw.importableTypes))
	for simpleName, cn := range cw.importableTypes {
		if !cw.referencedNames[simpleName] {
			result[simpleName] = cn
		}
	}
	return result
}

// sortedImports returns the decided imports in canonical-name order.
func (cw *codeWriter) sortedImports() []*ClassName {
	imports := make([]*ClassName, 0, len(cw.importedTypes))
	for _, cn := range cw.importedTypes {
		imports = append(imports, cn)
	}
	sort.Slice(imports, func(i, j int) bool {
		return compareClassNames(imports[i], imports[j]) < 0
	})
	return imports
}

// emitAndIndent writes text line by line. At each line start it emits the
// current indentation and, inside javadoc or comments, the comment prefix.
// Statements that spill onto a second line get two extra indent levels until
// the statement ends.
func (cw *codeWriter) emitAndIndent(s string) {
	first := true
	for _, line := range strings.Split(s, "\n") {
		if !first {
			// Keep blank lines inside javadoc and comments prefixed.
			if (cw.javadoc || cw.comment) && cw.trailingNewline {
				cw.emitIndentation()
				if cw.javadoc {
					cw.out.append(" *")
				} else {
					cw.out.append("//")
				}
			}
			cw.out.append("\n")
			cw.trailingNewline = true
			if cw.statementLine != -1 {
				if cw.statementLine == 0 {
					// The statement spilled onto a continuation line.
					cw.indentLevel += 2
				}
				cw.statementLine++
			}
		}
		first = false
		if line == "" {
			continue // Don't indent empty lines.
		}
		if cw.trailingNewline {
			cw.emitIndentation()
			if cw.javadoc {
				cw.out.append(" * ")
			} else if cw.comment {
				cw.out.append("// ")
			}
		}
		cw.out.append(line)
		cw.trailingNewline = false
	}
}

func (cw *codeWriter) emitIndentation() {
	for i := 0; i < cw.indentLevel; i++ {
		cw.out.append(cw.indent)
	}
}

// stringLiteralWithQuotes renders value as a double-quoted Java string
// literal. Embedded newlines split the literal into concatenated lines, the
// continuation indented two levels past indent.
func stringLiteralWithQuotes(value, indent string) string {
	var result strings.Builder
	result.Grow(len(value) + 2)
	result.WriteByte('"')
	runes := []rune(value)
	for i, r := range runes {
		if r == '\'' {
			result.WriteByte('\'')
			continue
		}
		if r == '"' {
			result.WriteString(`\"`)
			continue
		}
		result.WriteString(characterLiteral(r))
		if r == '\n' && i+1 < len(runes) {
			result.WriteString("\"\n" + indent + indent + "+ \"")
		}
	}
	result.WriteByte('"')
	return result.String()
}

// characterLiteral renders r as it would appear inside a char or string
// literal, without the surrounding quotes.
func characterLiteral(r rune) string {
	switch r {
	case '\b':
		return `\b`
	case '\t':
		return `\t`
	case '\n':
		return `\n`
	case '\f':
		return `\f`
	case '\r':
		return `\r`
	case '"':
		return `"`
	case '\'':
		return `\'`
	case '\\':
		return `\\`
	}
	if r <= 0x1f || (r >= 0x7f && r <= 0x9f) {
		return fmt.Sprintf(`\u%04x`, r)
	}
	return string(r)
}
