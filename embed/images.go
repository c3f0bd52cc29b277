// Package embed: image-set helpers shared by the solvers.
//
// A copy's image set is the set of host vertices its mapping uses. Copies
// are injective, so a sorted slice is a canonical representation and two
// copies collide exactly when their sorted slices are equal.
package embed

import (
	"slices"
)

// imageOf returns the sorted image of a complete or partial mapping,
// skipping NoMapping entries.
//
// Complexity: O(n₁ log n₁).
func imageOf(mapping []int) []int {
	img := make([]int, 0, len(mapping))
	var i int
	for i = 0; i < len(mapping); i++ {
		if mapping[i] != NoMapping {
			img = append(img, mapping[i])
		}
	}
	slices.Sort(img)

	return img
}

// imageWith returns the sorted image of mapping as if position u were
// assigned to v. mapping[u] must be NoMapping.
//
// Complexity: O(n₁ log n₁).
func imageWith(mapping []int, u, v int) []int {
	img := make([]int, 0, len(mapping)+1)
	var i int
	for i = 0; i < len(mapping); i++ {
		if i == u {
			img = append(img, v)
			continue
		}
		if mapping[i] != NoMapping {
			img = append(img, mapping[i])
		}
	}
	slices.Sort(img)

	return img
}

// imagesEqual reports whether two sorted image slices denote the same set.
func imagesEqual(a, b []int) bool { return slices.Equal(a, b) }
