package heapq

import "fmt"

// AuditInvariants walks the internal representation and verifies both
// structural invariants, for use by the black-box test suite:
//
//  1. heap order: no child entry has a priority strictly smaller than its
//     parent's under the configured comparator;
//  2. index consistency: the item→index map and the backing array agree in
//     both directions (same cardinality, and index[data[i].item] == i for
//     every occupied slot).
//
// Returns nil when the representation is sound, or an error naming the first
// violated slot.
func (h *Heap[T, P]) AuditInvariants() error {
	// 1) Heap order: check every non-root slot against its parent.
	for i := 1; i < len(h.data); i++ {
		parent := (i - 1) / 2
		if h.less(h.data[i].pri, h.data[parent].pri) {
			return fmt.Errorf("heap order violated: data[%d] (item %v) is smaller than its parent data[%d] (item %v)",
				i, h.data[i].item, parent, h.data[parent].item)
		}
	}

	// 2) Index consistency: map and array must agree exactly.
	if len(h.index) != len(h.data) {
		return fmt.Errorf("index map has %d entries, array has %d", len(h.index), len(h.data))
	}
	for i := range h.data {
		j, ok := h.index[h.data[i].item]
		if !ok {
			return fmt.Errorf("item %v at slot %d is missing from the index map", h.data[i].item, i)
		}
		if j != i {
			return fmt.Errorf("index map points item %v at slot %d, actually at slot %d", h.data[i].item, j, i)
		}
	}

	return nil
}
