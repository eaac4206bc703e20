package jpoet

import (
	"sort"
	"strings"
)

// MemberOrdering selects how the members of a type body are ordered.
type MemberOrdering int

const (
	// OrderDeclared preserves the order in which members were added to the
	// builder, for compatibility with generators whose output predates
	// deterministic sorting.
	OrderDeclared MemberOrdering = iota
	// OrderSorted arranges members into fixed groups (inner types, constants,
	// attributes, static fields, constructors, methods), each sorted
	// case-insensitively by name. Output is then independent of the order in
	// which the caller added members.
	OrderSorted
)

// Style bundles the cosmetic rendering choices: member ordering and group
// banner comments. Styles never change what the generated code means, only
// how it is laid out. A single emission path consumes the style; there are no
// per-style renderers.
type Style struct {
	MemberOrdering MemberOrdering
	BannerComments bool
}

var (
	// StyleCompat preserves declaration order and writes no banners.
	StyleCompat = Style{}
	// StyleBanner sorts members within groups and labels each group with a
	// banner comment.
	StyleBanner = Style{MemberOrdering: OrderSorted, BannerComments: true}
)

// sortedFieldSpecs returns fields ordered case-insensitively by name.
func sortedFieldSpecs(fields []*FieldSpec) []*FieldSpec {
	sorted := append([]*FieldSpec{}, fields...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return caseInsensitiveLess(sorted[i].Name(), sorted[j].Name())
	})
	return sorted
}

// sortedMethodSpecs returns methods ordered case-insensitively by name.
// Overloads that share a name are ordered by their full rendered signature so
// the output does not depend on declaration order.
func sortedMethodSpecs(methods []*MethodSpec) []*MethodSpec {
	sorted := append([]*MethodSpec{}, methods...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !strings.EqualFold(a.Name(), b.Name()) {
			return caseInsensitiveLess(a.Name(), b.Name())
		}
		return a.signature() < b.signature()
	})
	return sorted
}

// sortedTypeSpecs returns nested types ordered case-insensitively by name.
func sortedTypeSpecs(types []*TypeSpec) []*TypeSpec {
	sorted := append([]*TypeSpec{}, types...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return caseInsensitiveLess(sorted[i].Name(), sorted[j].Name())
	})
	return sorted
}

func caseInsensitiveLess(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	// Case-insensitive ties fall back to case-sensitive order.
	return a < b
}

// bannerComment is the group label emitted above each member group when
// Style.BannerComments is set.
func bannerComment(title string) *CodeBlock {
	rule := strings.Repeat("-", 10)
	return CodeBlockOf("$L", rule+" "+title+" "+rule)
}
