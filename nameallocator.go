package jpoet

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

// NameAllocator hands out collision-free Java identifiers within one scope.
// Suggestions are camel-cased and sanitized, then suffixed with underscores
// until they dodge both keywords and previously allocated names. A tag lets
// the caller retrieve an allocated name later, e.g. keyed by the model object
// the name was made for.
//
// Use one allocator per scope: one for a class's fields, a fresh Clone of it
// per method body.
type NameAllocator struct {
	allocated map[string]bool
	tagToName map[string]string
}

func NewNameAllocator() *NameAllocator {
	return &NameAllocator{
		allocated: map[string]bool{},
		tagToName: map[string]string{},
	}
}

// NewName allocates an identifier based on suggestion.
func (a *NameAllocator) NewName(suggestion string) string {
	name := toJavaIdentifier(suggestion)
	for IsJavaKeyword(name) || a.allocated[name] {
		name += "_"
	}
	a.allocated[name] = true
	return name
}

// NewNameTagged allocates an identifier and registers it under tag for later
// retrieval with Get. A tag can be used once per allocator.
func (a *NameAllocator) NewNameTagged(suggestion, tag string) string {
	if existing, ok := a.tagToName[tag]; ok {
		panic(fmt.Sprintf("tag %q cannot be used for both %q and %q", tag, existing, suggestion))
	}
	name := a.NewName(suggestion)
	a.tagToName[tag] = name
	return name
}

// Get returns the name allocated under tag.
func (a *NameAllocator) Get(tag string) string {
	name, ok := a.tagToName[tag]
	if !ok {
		panic(fmt.Sprintf("unknown tag: %q", tag))
	}
	return name
}

// Clone returns an independent copy, typically to extend a class-level scope
// with per-method names.
func (a *NameAllocator) Clone() *NameAllocator {
	clone := NewNameAllocator()
	for name := range a.allocated {
		clone.allocated[name] = true
	}
	for tag, name := range a.tagToName {
		clone.tagToName[tag] = name
	}
	return clone
}

// toJavaIdentifier camel-cases suggestion and replaces anything that cannot
// appear in an identifier with an underscore.
func toJavaIdentifier(suggestion string) string {
	var sb strings.Builder
	for i, r := range strcase.ToLowerCamel(suggestion) {
		if i == 0 {
			if !isJavaIdentifierStart(r) {
				sb.WriteByte('_')
				if isJavaIdentifierPart(r) {
					sb.WriteRune(r)
				}
				continue
			}
			sb.WriteRune(r)
			continue
		}
		if isJavaIdentifierPart(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}
	if sb.Len() == 0 {
		return "_"
	}
	return sb.String()
}
