package jpoet

import (
	"fmt"
	"sort"
	"strings"
)

// CodeBlock is an immutable fragment of Java code: an ordered sequence of
// literal text parts interleaved with placeholder tokens, plus the resolved
// argument for each placeholder and the static imports the fragment requires.
//
// Fragments are built with a CodeBlockBuilder from format strings containing
// placeholders:
//
//	$L emits an argument's own string form verbatim (a literal)
//	$S emits an argument as an escaped, double-quoted string constant
//	$N emits the declared name of a field, parameter, method, or type
//	$T emits a type reference, resolved against imports at render time
//
// plus the zero-argument control placeholders $$ (a literal dollar sign),
// $> and $< (indent and unindent), $[ and $] (begin and end statement), and
// $W and $Z (wrap-or-space and wrap-or-nothing points).
type CodeBlock struct {
	formatParts   []string
	args          []interface{}
	staticImports []string
	memo          memoString
}

var emptyCodeBlock = &CodeBlock{}

// CodeBlockOf builds a fragment from a single format string.
func CodeBlockOf(format string, args ...interface{}) *CodeBlock {
	return NewCodeBlockBuilder().Add(format, args...).Build()
}

// IsEmpty reports whether the fragment contains no parts at all.
func (c *CodeBlock) IsEmpty() bool { return len(c.formatParts) == 0 }

// StaticImports returns the static import lines this fragment requires,
// sorted.
func (c *CodeBlock) StaticImports() []string { return append([]string{}, c.staticImports...) }

// ToBuilder returns a new mutable builder seeded with this fragment's parts.
func (c *CodeBlock) ToBuilder() *CodeBlockBuilder {
	b := NewCodeBlockBuilder()
	b.formatParts = append(b.formatParts, c.formatParts...)
	b.args = append(b.args, c.args...)
	for _, si := range c.staticImports {
		b.staticImports[si] = true
	}
	return b
}

// Equals reports whether other renders to the same text as this fragment.
func (c *CodeBlock) Equals(other *CodeBlock) bool {
	return other != nil && c.String() == other.String()
}

func (c *CodeBlock) String() string {
	return c.memo.get(func() string {
		var sb strings.Builder
		cw := newCodeWriter(&sb, defaultIndent, defaultColumnLimit, StyleCompat)
		cw.emitCode(c)
		cw.close()
		return sb.String()
	})
}

// Join interleaves the given fragments with a literal separator.
func Join(separator string, blocks ...*CodeBlock) *CodeBlock {
	return JoinWithAffixes(separator, "", "", blocks...)
}

// JoinWithAffixes interleaves the given fragments with a literal separator
// and wraps the result in the given prefix and suffix text.
func JoinWithAffixes(separator, prefix, suffix string, blocks ...*CodeBlock) *CodeBlock {
	b := NewCodeBlockBuilder()
	if prefix != "" {
		b.Add(prefix)
	}
	for i, cb := range blocks {
		if i > 0 {
			b.Add(separator)
		}
		b.AddCode(cb)
	}
	if suffix != "" {
		b.Add(suffix)
	}
	return b.Build()
}

// CodeBlockBuilder is a mutable accumulator for a CodeBlock. It is exclusively
// owned by one caller until Build returns the immutable snapshot.
type CodeBlockBuilder struct {
	formatParts   []string
	args          []interface{}
	staticImports map[string]bool
}

func NewCodeBlockBuilder() *CodeBlockBuilder {
	return &CodeBlockBuilder{staticImports: map[string]bool{}}
}

// IsEmpty reports whether nothing has been accumulated yet.
func (b *CodeBlockBuilder) IsEmpty() bool { return len(b.formatParts) == 0 }

func isNoArgPlaceholder(c byte) bool {
	switch c {
	case '$', '>', '<', '[', ']', 'W', 'Z':
		return true
	}
	return false
}

// Add parses the format string and appends its parts along with the given
// arguments. Placeholders either all carry explicit 1-based indexes ("$2L")
// or are all relative; mixing the two forms in one call panics, as do unused
// arguments.
func (b *CodeBlockBuilder) Add(format string, args ...interface{}) *CodeBlockBuilder {
	hasRelative := false
	hasIndexed := false
	relativeParameterCount := 0
	indexedParameterCount := make([]int, len(args))

	for p := 0; p < len(format); {
		if format[p] != '$' {
			nextP := strings.IndexByte(format[p+1:], '$')
			if nextP == -1 {
				nextP = len(format)
			} else {
				nextP += p + 1
			}
			b.formatParts = append(b.formatParts, format[p:nextP])
			p = nextP
			continue
		}

		p++ // '$'.

		// Consume zero or more digits, leaving c as the first non-digit
		// character after the '$'.
		indexStart := p
		var c byte
		for {
			if p >= len(format) {
				panic(fmt.Sprintf("dangling format characters in %q", format))
			}
			c = format[p]
			p++
			if c < '0' || c > '9' {
				break
			}
		}
		indexEnd := p - 1

		if isNoArgPlaceholder(c) {
			if indexStart != indexEnd {
				panic("$$, $>, $<, $[, $], $W, and $Z may not have an index")
			}
			b.formatParts = append(b.formatParts, "$"+string(c))
			continue
		}

		var index int
		if indexStart < indexEnd {
			var err error
			index, err = parseIndex(format[indexStart:indexEnd])
			if err != nil {
				panic(fmt.Sprintf("invalid index in %q: %v", format, err))
			}
			index--
			hasIndexed = true
			if len(args) > 0 {
				indexedParameterCount[index%len(args)]++
			}
		} else {
			index = relativeParameterCount
			hasRelative = true
			relativeParameterCount++
		}

		if index < 0 || index >= len(args) {
			panic(fmt.Sprintf("index %d for '$%s%c' not in range (received %d arguments)",
				index+1, format[indexStart:indexEnd], c, len(args)))
		}
		if hasIndexed && hasRelative {
			panic("cannot mix indexed and positional parameters")
		}

		b.addArgument(format, c, args[index])
		b.formatParts = append(b.formatParts, "$"+string(c))
	}

	if hasRelative && relativeParameterCount < len(args) {
		panic(fmt.Sprintf("unused arguments: expected %d, received %d", relativeParameterCount, len(args)))
	}
	if hasIndexed {
		var unused []string
		for i := 0; i < len(args); i++ {
			if indexedParameterCount[i] == 0 {
				unused = append(unused, fmt.Sprintf("$%d", i+1))
			}
		}
		if len(unused) > 0 {
			s := "s"
			if len(unused) == 1 {
				s = ""
			}
			panic(fmt.Sprintf("unused argument%s: %s", s, strings.Join(unused, ", ")))
		}
	}
	return b
}

func parseIndex(s string) (int, error) {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	if n == 0 {
		return 0, fmt.Errorf("index must be at least 1")
	}
	return n, nil
}

// AddNamed parses a format string whose placeholders reference the given
// arguments by name, e.g. "$count:L items". Every name used in the format
// string must exist in the map; unused map entries are tolerated.
func (b *CodeBlockBuilder) AddNamed(format string, arguments map[string]interface{}) *CodeBlockBuilder {
	for name := range arguments {
		if !isValidArgumentName(name) {
			panic(fmt.Sprintf("argument %q must start with a lowercase character", name))
		}
	}

	for p := 0; p < len(format); {
		nextP := strings.IndexByte(format[p:], '$')
		if nextP == -1 {
			b.formatParts = append(b.formatParts, format[p:])
			break
		}
		nextP += p
		if p != nextP {
			b.formatParts = append(b.formatParts, format[p:nextP])
			p = nextP
		}

		if name, formatChar, next, ok := matchNamedArgument(format, p); ok {
			arg, exists := arguments[name]
			if !exists {
				panic(fmt.Sprintf("missing named argument for $%s", name))
			}
			b.addArgument(format, formatChar, arg)
			b.formatParts = append(b.formatParts, "$"+string(formatChar))
			p = next
			continue
		}

		if p >= len(format)-1 {
			panic(fmt.Sprintf("dangling $ at end of format string %q", format))
		}
		if !isNoArgPlaceholder(format[p+1]) {
			panic(fmt.Sprintf("unknown format $%c at %d in %q", format[p+1], p+1, format))
		}
		b.formatParts = append(b.formatParts, format[p:p+2])
		p += 2
	}
	return b
}

// matchNamedArgument matches "$name:X" at position p, where p points at the
// dollar sign. It returns the argument name, the placeholder letter, and the
// position just past the placeholder.
func matchNamedArgument(format string, p int) (name string, formatChar byte, next int, ok bool) {
	i := p + 1
	start := i
	for i < len(format) && isArgumentNameChar(format[i]) {
		i++
	}
	if i == start || i >= len(format)-1 || format[i] != ':' {
		return "", 0, 0, false
	}
	name = format[start:i]
	if !isValidArgumentName(name) {
		return "", 0, 0, false
	}
	formatChar = format[i+1]
	return name, formatChar, i + 2, true
}

func isValidArgumentName(name string) bool {
	if name == "" || name[0] < 'a' || name[0] > 'z' {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isArgumentNameChar(name[i]) {
			return false
		}
	}
	return true
}

func isArgumentNameChar(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func (b *CodeBlockBuilder) addArgument(format string, c byte, arg interface{}) {
	switch c {
	case 'N':
		b.args = append(b.args, argToName(arg))
	case 'L':
		b.args = append(b.args, arg)
	case 'S':
		b.args = append(b.args, argToString(arg))
	case 'T':
		b.args = append(b.args, argToType(arg))
	default:
		panic(fmt.Sprintf("invalid format string: '$%c' in %q", c, format))
	}
}

func argToName(o interface{}) string {
	switch o := o.(type) {
	case string:
		return o
	case *ParameterSpec:
		return o.Name()
	case *FieldSpec:
		return o.Name()
	case *MethodSpec:
		return o.Name()
	case *TypeSpec:
		if o.Name() == "" {
			panic("cannot use an anonymous type as a $N argument")
		}
		return o.Name()
	default:
		panic(fmt.Sprintf("expected name but was %v", o))
	}
}

func argToString(o interface{}) interface{} {
	switch o := o.(type) {
	case nil:
		return nil
	case string:
		return o
	case fmt.Stringer:
		return o.String()
	default:
		return fmt.Sprintf("%v", o)
	}
}

func argToType(o interface{}) TypeName {
	if t, ok := o.(TypeName); ok {
		return t
	}
	panic(fmt.Sprintf("expected type but was %v", o))
}

// AddCode appends an existing fragment.
func (b *CodeBlockBuilder) AddCode(cb *CodeBlock) *CodeBlockBuilder {
	b.formatParts = append(b.formatParts, cb.formatParts...)
	b.args = append(b.args, cb.args...)
	for _, si := range cb.staticImports {
		b.staticImports[si] = true
	}
	return b
}

// AddStatement appends a complete statement: the content is wrapped between
// begin- and end-statement markers and terminated with ";\n". Wrapped lines
// within the statement get continuation indentation.
func (b *CodeBlockBuilder) AddStatement(format string, args ...interface{}) *CodeBlockBuilder {
	b.Add("$[")
	b.Add(format, args...)
	b.Add(";\n$]")
	return b
}

// AddStatementCode appends an existing fragment as a complete statement.
func (b *CodeBlockBuilder) AddStatementCode(cb *CodeBlock) *CodeBlockBuilder {
	return b.AddStatement("$L", cb)
}

// BeginControlFlow starts a brace-delimited block, e.g.
// BeginControlFlow("if ($N > $L)", param, 0). The body is indented until the
// matching NextControlFlow or EndControlFlow.
func (b *CodeBlockBuilder) BeginControlFlow(format string, args ...interface{}) *CodeBlockBuilder {
	b.Add(format+" {\n", args...)
	b.Indent()
	return b
}

// NextControlFlow continues a control flow block with a chained clause such
// as "else if (...)".
func (b *CodeBlockBuilder) NextControlFlow(format string, args ...interface{}) *CodeBlockBuilder {
	b.Unindent()
	b.Add("} "+format+" {\n", args...)
	b.Indent()
	return b
}

// EndControlFlow closes the current control flow block.
func (b *CodeBlockBuilder) EndControlFlow() *CodeBlockBuilder {
	b.Unindent()
	b.Add("}\n")
	return b
}

// EndControlFlowWith closes the current block with trailing content, as in
// "} while (queue.isEmpty());".
func (b *CodeBlockBuilder) EndControlFlowWith(format string, args ...interface{}) *CodeBlockBuilder {
	b.Unindent()
	b.Add("} "+format+";\n", args...)
	return b
}

func (b *CodeBlockBuilder) Indent() *CodeBlockBuilder {
	b.formatParts = append(b.formatParts, "$>")
	return b
}

func (b *CodeBlockBuilder) Unindent() *CodeBlockBuilder {
	b.formatParts = append(b.formatParts, "$<")
	return b
}

// AddStaticImport records that the fragment requires a static import of the
// given members (or "*") from the given class.
func (b *CodeBlockBuilder) AddStaticImport(cn *ClassName, names ...string) *CodeBlockBuilder {
	if len(names) == 0 {
		panic(fmt.Sprintf("at least one name required for static import of %s", cn.CanonicalName()))
	}
	for _, name := range names {
		if name != "*" && !IsValidIdentifier(name) {
			panic(fmt.Sprintf("not a valid static import member name: %q", name))
		}
		b.staticImports[cn.CanonicalName()+"."+name] = true
	}
	return b
}

// Build freezes the accumulated parts into an immutable fragment, gathering
// the static imports required by any nested fragment arguments.
func (b *CodeBlockBuilder) Build() *CodeBlock {
	imports := make(map[string]bool, len(b.staticImports))
	for si := range b.staticImports {
		imports[si] = true
	}
	for _, arg := range b.args {
		collectStaticImportsFromArg(arg, imports)
	}
	return &CodeBlock{
		formatParts:   append([]string{}, b.formatParts...),
		args:          append([]interface{}{}, b.args...),
		staticImports: sortedKeys(imports),
	}
}

func collectStaticImportsFromArg(arg interface{}, into map[string]bool) {
	switch arg := arg.(type) {
	case *CodeBlock:
		for _, si := range arg.staticImports {
			into[si] = true
		}
	case *AnnotationSpec:
		arg.collectStaticImports(into)
	case *TypeSpec:
		arg.collectStaticImports(into)
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
