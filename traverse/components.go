// SPDX-License-Identifier: MIT
// Package: lvmesh/traverse
//
// components.go - face component labelling.

package traverse

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/mesh"
)

// LabelComponents assigns each face the number of its connected component
// (0, 1, … in order of the lowest face index) and returns the labels as a
// face attachment together with the component count. The caller owns the
// attachment and should Release it. Locked meshes only.
//
// Implementation: iterative DFS with an explicit stack, so deep meshes
// cannot exhaust the goroutine stack.
func LabelComponents(m *mesh.Mesh) (*mesh.Attachment[mesh.Face, int], int, error) {
	if !m.Locked() {
		return nil, 0, fmt.Errorf("traverse: LabelComponents: %w", mesh.ErrUnlocked)
	}
	label := mesh.NewFaceAttachment[int](m)
	label.Fill(-1)

	count := 0
	var stack []mesh.Face
	for f := range m.Faces() {
		if label.Get(f) >= 0 {
			continue
		}
		label.Set(f, count)
		stack = append(stack[:0], f)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for h := range cur.Halfedges() {
				g := h.Twin().Face()
				if !g.Null() && label.Get(g) < 0 {
					label.Set(g, count)
					stack = append(stack, g)
				}
			}
		}
		count++
	}

	return label, count, nil
}
