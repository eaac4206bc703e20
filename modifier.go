package jpoet

import (
	"fmt"
	"sort"
	"strings"
)

// Modifier is a Java declaration modifier keyword.
type Modifier string

const (
	Public       Modifier = "public"
	Protected    Modifier = "protected"
	Private      Modifier = "private"
	Abstract     Modifier = "abstract"
	Default      Modifier = "default"
	Static       Modifier = "static"
	Final        Modifier = "final"
	Transient    Modifier = "transient"
	Volatile     Modifier = "volatile"
	Synchronized Modifier = "synchronized"
	Native       Modifier = "native"
	Strictfp     Modifier = "strictfp"
	Sealed       Modifier = "sealed"
	NonSealed    Modifier = "non-sealed"
)

// modifierOrder is the canonical ordering recommended by the JLS. Modifiers
// are always emitted in this order no matter how the caller supplied them.
var modifierOrder = map[Modifier]int{
	Public:       0,
	Protected:    1,
	Private:      2,
	Abstract:     3,
	Default:      4,
	Static:       5,
	Sealed:       6,
	NonSealed:    7,
	Final:        8,
	Transient:    9,
	Volatile:     10,
	Synchronized: 11,
	Native:       12,
	Strictfp:     13,
}

func checkModifiers(mods []Modifier) {
	for _, m := range mods {
		if _, ok := modifierOrder[m]; !ok {
			panic(fmt.Sprintf("unexpected modifier: %s", m))
		}
	}
}

// sortModifiers returns mods in canonical order with duplicates removed.
func sortModifiers(mods []Modifier) []Modifier {
	seen := make(map[Modifier]bool, len(mods))
	sorted := make([]Modifier, 0, len(mods))
	for _, m := range mods {
		if !seen[m] {
			seen[m] = true
			sorted = append(sorted, m)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return modifierOrder[sorted[i]] < modifierOrder[sorted[j]]
	})
	return sorted
}

func hasModifier(mods []Modifier, m Modifier) bool {
	for _, c := range mods {
		if c == m {
			return true
		}
	}
	return false
}

func containsAllModifiers(mods []Modifier, required ...Modifier) bool {
	for _, r := range required {
		if !hasModifier(mods, r) {
			return false
		}
	}
	return true
}

func modifiersString(mods []Modifier) string {
	parts := make([]string, len(mods))
	for i, m := range mods {
		parts[i] = string(m)
	}
	return strings.Join(parts, " ")
}
