package jpoet

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// JavaFile is one renderable ".java" compilation unit: a package, an optional
// file comment, static imports, and a single top-level type. Import
// resolution happens at write time, so the same file value can be rendered
// repeatedly with identical output.
type JavaFile struct {
	packageName         string
	typeSpec            *TypeSpec
	fileComment         *CodeBlock
	staticImports       []string
	skipJavaLangImports bool
	indent              string
	columnLimit         int
	style               Style
	alwaysQualify       map[string]bool
	memo                memoString
}

// PackageName returns the file's package name, or "" for the unnamed package.
func (f *JavaFile) PackageName() string { return f.packageName }

// Type returns the file's top-level type.
func (f *JavaFile) Type() *TypeSpec { return f.typeSpec }

// Write renders the file to w. Emission runs twice: a collection pass into
// a discarded sink decides which types can be imported, then the real pass
// writes the code using those imports.
func (f *JavaFile) Write(w io.Writer) error {
	importsCollector := f.codeWriterFor(io.Discard, nil)
	f.emit(importsCollector)
	importsCollector.close()
	if err := importsCollector.err(); err != nil {
		return fmt.Errorf("rendering %s failed: %w", f.typeSpec.name, err)
	}

	cw := f.codeWriterFor(w, importsCollector.suggestedImports())
	f.emit(cw)
	cw.close()
	if err := cw.err(); err != nil {
		return fmt.Errorf("rendering %s failed: %w", f.typeSpec.name, err)
	}
	return nil
}

// WriteFile writes the file beneath dir, creating one directory per package
// segment, as "<dir>/<package path>/<TypeName>.java".
func (f *JavaFile) WriteFile(dir string) error {
	outputDir := dir
	if f.packageName != "" {
		outputDir = filepath.Join(dir, filepath.Join(strings.Split(f.packageName, ".")...))
	}
	if err := os.MkdirAll(outputDir, 0777); err != nil {
		return err
	}
	out, err := os.Create(filepath.Join(outputDir, f.typeSpec.name+".java"))
	if err != nil {
		return err
	}
	if err := f.Write(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func (f *JavaFile) String() string {
	return f.memo.get(func() string {
		var sb strings.Builder
		// Writes to a strings.Builder cannot fail.
		_ = f.Write(&sb)
		return sb.String()
	})
}

func (f *JavaFile) codeWriterFor(w io.Writer, importedTypes map[string]*ClassName) *codeWriter {
	cw := newCodeWriter(w, f.indent, f.columnLimit, f.style)
	cw.setStaticImports(f.staticImports)
	for name := range f.alwaysQualify {
		cw.alwaysQualify[name] = true
	}
	if importedTypes != nil {
		cw.importedTypes = importedTypes
	}
	return cw
}

func (f *JavaFile) emit(cw *codeWriter) {
	cw.pushPackage(f.packageName)

	if !f.fileComment.IsEmpty() {
		cw.emitComment(f.fileComment)
	}
	if f.packageName != "" {
		cw.emitf("package $L;\n", f.packageName)
		cw.emitAndIndent("\n")
	}
	if len(f.staticImports) > 0 {
		for _, signature := range f.staticImports {
			cw.emitf("import static $L;\n", signature)
		}
		cw.emitAndIndent("\n")
	}

	importedCount := 0
	for _, cn := range cw.sortedImports() {
		if f.skipJavaLangImports && cn.PackageName() == "java.lang" && !f.alwaysQualify[cn.SimpleName()] {
			continue
		}
		cw.emitf("import $L;\n", cn.canonicalName)
		importedCount++
	}
	if importedCount > 0 {
		cw.emitAndIndent("\n")
	}

	f.typeSpec.emit(cw, "", nil)
	cw.popPackage()
}

// JavaFileBuilder accumulates a JavaFile.
type JavaFileBuilder struct {
	packageName         string
	typeSpec            *TypeSpec
	fileComment         *CodeBlock
	staticImports       map[string]bool
	skipJavaLangImports bool
	indent              string
	columnLimit         int
	style               Style
}

// NewJavaFileBuilder returns a builder for a file declaring typeSpec in the
// given package. The type must be named; anonymous classes are values, not
// declarations.
func NewJavaFileBuilder(packageName string, typeSpec *TypeSpec) *JavaFileBuilder {
	checkPackageName(packageName)
	if typeSpec == nil {
		panic("type spec must not be nil")
	}
	if typeSpec.name == "" {
		panic("cannot write a file for an anonymous type")
	}
	return &JavaFileBuilder{
		packageName:   packageName,
		typeSpec:      typeSpec,
		fileComment:   emptyCodeBlock,
		staticImports: map[string]bool{},
		indent:        defaultIndent,
		columnLimit:   defaultColumnLimit,
		style:         StyleCompat,
	}
}

func checkPackageName(packageName string) {
	if packageName == "" {
		return
	}
	for _, segment := range strings.Split(packageName, ".") {
		if !IsValidIdentifier(segment) {
			panic(fmt.Sprintf("not a valid package name: %q", packageName))
		}
	}
}

// AddFileComment adds text to the comment emitted at the very top of the
// file, above the package declaration.
func (b *JavaFileBuilder) AddFileComment(format string, args ...interface{}) *JavaFileBuilder {
	b.fileComment = b.fileComment.ToBuilder().Add(format, args...).Build()
	return b
}

// AddStaticImport imports the named static members (or "*") of the given
// class. Uses of "Class.member" in code collapse to "member" when covered by
// a static import.
func (b *JavaFileBuilder) AddStaticImport(cn *ClassName, names ...string) *JavaFileBuilder {
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

// SkipJavaLangImports elides imports from java.lang when the simple name is
// unambiguous. Defaults to false: such imports are legal and some generators
// rely on them.
func (b *JavaFileBuilder) SkipJavaLangImports(skip bool) *JavaFileBuilder {
	b.skipJavaLangImports = skip
	return b
}

// Indent sets the indentation unit, two spaces by default.
func (b *JavaFileBuilder) Indent(indent string) *JavaFileBuilder {
	b.indent = indent
	return b
}

// ColumnLimit sets the soft wrapping limit. It must be positive.
func (b *JavaFileBuilder) ColumnLimit(limit int) *JavaFileBuilder {
	if limit <= 0 {
		panic("column limit must be positive")
	}
	b.columnLimit = limit
	return b
}

// Style sets the layout profile, StyleCompat by default.
func (b *JavaFileBuilder) Style(style Style) *JavaFileBuilder {
	b.style = style
	return b
}

func (b *JavaFileBuilder) Build() *JavaFile {
	staticImports := make(map[string]bool, len(b.staticImports))
	for si := range b.staticImports {
		staticImports[si] = true
	}
	b.typeSpec.collectStaticImports(staticImports)

	alwaysQualify := map[string]bool{}
	b.typeSpec.collectAlwaysQualifiedNames(alwaysQualify)

	return &JavaFile{
		packageName:         b.packageName,
		typeSpec:            b.typeSpec,
		fileComment:         b.fileComment,
		staticImports:       sortedKeys(staticImports),
		skipJavaLangImports: b.skipJavaLangImports,
		indent:              b.indent,
		columnLimit:         b.columnLimit,
		style:               b.style,
		alwaysQualify:       alwaysQualify,
	}
}
