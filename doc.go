// Package jpoet is a library to assist with generating Java source code. It
// models Java declarations as immutable values that are assembled with
// builders and then rendered to properly indented, wrapped, and
// import-resolved ".java" text. Its intended consumers are code generators
// that would otherwise concatenate strings.
//
// The API and functionality is strongly influenced by a similar library for
// Java, Java Poet (https://github.com/square/javapoet).
//
// Types
//
// TypeName is the way jpoet represents references to Java types: primitives,
// class names (ClassName, possibly nested), generics
// (ParameterizedTypeName), arrays (ArrayTypeName), type variables
// (TypeVariableName), and wildcards (WildcardTypeName). TypeName values are
// immutable; deriving operations such as Box, Unbox, and Annotated return
// new instances.
//
// Elements
//
// TypeSpec is the root type for building a declaration: a class, interface,
// enum, record, or annotation type, with its fields (FieldSpec), methods and
// constructors (MethodSpec), parameters (ParameterSpec), annotation uses
// (AnnotationSpec), and nested types. JavaFile wraps one top-level TypeSpec
// with a package name and renders the complete compilation unit.
//
// Statements and expressions are not modeled structurally. Method bodies,
// field initializers, javadoc, and annotation values are represented by
// CodeBlock: a fragment built from format strings with placeholders. "$L"
// emits a literal, "$S" a quoted string constant, "$T" a type reference, and
// "$N" a declared name. Placeholders may be positional ("$1T"), relative, or
// named ("$type:T"). Control placeholders manage indentation ("$>", "$<"),
// statement boundaries ("$[", "$]"), and line-wrap points ("$W", "$Z").
//
// Imports
//
// Import statements need not be written manually. JavaFile renders in two
// passes: the first collects every type reference that could not be resolved
// against the lexical scope, the second emits the file with an import for
// each unambiguous simple name, qualifying the rest. Static imports declared
// on the file collapse "Class.member" references down to the bare member
// name.
//
// Layout
//
// Rendering is configured with an indentation string, a column limit for
// soft wrapping, and a Style. A Style only affects cosmetics: StyleCompat
// preserves the order in which members were added, while StyleBanner sorts
// members within labeled groups so output is independent of builder call
// order.
package jpoet
