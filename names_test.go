package jpoet

import "testing"

func TestIsValidIdentifier(t *testing.T) {
	checkIdentifier(t, "foo", true)
	checkIdentifier(t, "Foo", true)
	checkIdentifier(t, "_foo", true)
	checkIdentifier(t, "$foo", true)
	checkIdentifier(t, "foo1", true)
	checkIdentifier(t, "føø", true)

	checkIdentifier(t, "", false)
	checkIdentifier(t, "1foo", false)
	checkIdentifier(t, "foo-bar", false)
	checkIdentifier(t, "foo.bar", false)
	checkIdentifier(t, "class", false)
	checkIdentifier(t, "null", false)
	checkIdentifier(t, "true", false)
}

func TestIsJavaKeyword(t *testing.T) {
	for _, kw := range []string{"abstract", "goto", "instanceof", "false"} {
		if !IsJavaKeyword(kw) {
			t.Errorf("%q should be a keyword", kw)
		}
	}
	for _, s := range []string{"", "foo", "Class", "strictFp"} {
		if IsJavaKeyword(s) {
			t.Errorf("%q should not be a keyword", s)
		}
	}
}

func checkIdentifier(t *testing.T, s string, valid bool) {
	t.Helper()
	if IsValidIdentifier(s) != valid {
		t.Errorf("IsValidIdentifier(%q): expected %v", s, valid)
	}
}

func TestStringLiteral(t *testing.T) {
	checkLiteral(t, "hello", `"hello"`)
	checkLiteral(t, "don't", `"don't"`)
	checkLiteral(t, `say "hi"`, `"say \"hi\""`)
	checkLiteral(t, `back\slash`, `"back\\slash"`)
	checkLiteral(t, "tab\there", `"tab\there"`)
	checkLiteral(t, "\x01", `"\u0001"`)
	checkLiteral(t, "hello\nworld", "\"hello\\n\"\n    + \"world\"")
	checkLiteral(t, "trailing\n", `"trailing\n"`)
}

func checkLiteral(t *testing.T, input, expected string) {
	t.Helper()
	if actual := stringLiteralWithQuotes(input, "  "); actual != expected {
		t.Errorf("%q: expected %s; got %s", input, expected, actual)
	}
}
