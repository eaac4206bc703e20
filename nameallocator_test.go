package jpoet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameAllocator(t *testing.T) {
	a := NewNameAllocator()
	assert.Equal(t, "foo", a.NewName("foo"))
	assert.Equal(t, "foo_", a.NewName("foo"))
	assert.Equal(t, "foo__", a.NewName("foo"))
}

func TestNameAllocatorKeywords(t *testing.T) {
	a := NewNameAllocator()
	assert.Equal(t, "public_", a.NewName("public"))
	assert.Equal(t, "class_", a.NewName("class"))
}

func TestNameAllocatorSanitizes(t *testing.T) {
	a := NewNameAllocator()
	assert.Equal(t, "fooBar", a.NewName("foo bar"))
	assert.Equal(t, "_", a.NewName(""))
}

func TestNameAllocatorTags(t *testing.T) {
	a := NewNameAllocator()
	name := a.NewNameTagged("foo", "model")
	assert.Equal(t, name, a.Get("model"))

	checkPanic(t, `tag "model" cannot be used for both "foo" and "bar"`, func() {
		a.NewNameTagged("bar", "model")
	})
	checkPanic(t, `unknown tag: "missing"`, func() { a.Get("missing") })
}

func TestNameAllocatorClone(t *testing.T) {
	a := NewNameAllocator()
	a.NewNameTagged("foo", "model")

	clone := a.Clone()
	// Names taken before the clone stay taken.
	assert.Equal(t, "foo_", clone.NewName("foo"))
	assert.Equal(t, "foo", clone.Get("model"))

	// Names taken after the clone do not leak back.
	assert.Equal(t, "foo_", a.NewName("foo"))
}
