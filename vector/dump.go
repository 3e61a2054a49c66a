package vector

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// String renders the slot layout of v, one node per slot of the slot table.
// Slots past the size, which exist only after a failed shrink, are shown as '_'.
func (v *Vector[I]) String() string {
	if !v.Initialized() {
		return "Vector(uninitialized)"
	}
	header := fmt.Sprintf("Vector(size=%d, cap=%d, unit=%d)\n", v.size, v.Cap(), v.unit)
	printer := tp.New()
	for i, block := range v.slots {
		if i < int(v.size) {
			printer.AddMetaNode(i, fmt.Sprintf("% x", block))
		} else {
			printer.AddMetaNode(i, "_")
		}
	}
	return header + printer.String()
}
