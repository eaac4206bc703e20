package jpoet

import "unicode"

// javaKeywords are the identifiers reserved by the language, including the
// literals null, true, and false, which are equally unusable as names.
var javaKeywords = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true,
	"byte": true, "case": true, "catch": true, "char": true, "class": true,
	"const": true, "continue": true, "default": true, "do": true,
	"double": true, "else": true, "enum": true, "extends": true,
	"final": true, "finally": true, "float": true, "for": true, "goto": true,
	"if": true, "implements": true, "import": true, "instanceof": true,
	"int": true, "interface": true, "long": true, "native": true, "new": true,
	"package": true, "private": true, "protected": true, "public": true,
	"return": true, "short": true, "static": true, "strictfp": true,
	"super": true, "switch": true, "synchronized": true, "this": true,
	"throw": true, "throws": true, "transient": true, "try": true,
	"void": true, "volatile": true, "while": true,

	"null": true, "true": true, "false": true,
}

// IsJavaKeyword reports whether s is reserved and cannot be used as an
// identifier.
func IsJavaKeyword(s string) bool { return javaKeywords[s] }

// IsValidIdentifier reports whether s is a legal Java identifier: an
// identifier-start character followed by identifier-part characters, and not
// a keyword.
func IsValidIdentifier(s string) bool {
	if s == "" || IsJavaKeyword(s) {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !isJavaIdentifierStart(r) {
				return false
			}
			continue
		}
		if !isJavaIdentifierPart(r) {
			return false
		}
	}
	return true
}

func isJavaIdentifierStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isJavaIdentifierPart(r rune) bool {
	return isJavaIdentifierStart(r) || unicode.IsDigit(r)
}
