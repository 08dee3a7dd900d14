// SPDX-License-Identifier: Apache-2.0

package pool

// freeListEnd marks the end of the free chain.
const freeListEnd = -1

// freeList is an intrusive singly-linked list threaded through the slots
// that are currently unused. Each free slot stores the index of the next
// free slot in its own first word, so the list carries no storage beyond
// its head and both push and pop are a single splice.
type freeList struct {
	head int
}

// link returns the next-pointer stored inside slot index. Only free slots
// may be linked; occupied slots hold caller data in the same bytes.
func (l *freeList) link(a *arena, index int) *int {
	return (*int)(a.slotAddr(index))
}

// thread links every slot of the arena into the list in ascending index
// order, so the pop order of a fresh pool is 0, 1, 2, … deterministically.
func (l *freeList) thread(a *arena) {
	l.head = freeListEnd
	if a.capacity == 0 {
		return
	}
	for i := 0; i < a.capacity-1; i++ {
		*l.link(a, i) = i + 1
	}
	*l.link(a, a.capacity-1) = freeListEnd
	l.head = 0
}

// push makes slot index the new head, storing the previous head inside the
// slot's memory.
func (l *freeList) push(a *arena, index int) {
	*l.link(a, index) = l.head
	l.head = index
}

// pop unlinks and returns the head slot. It reports false when the list is
// empty.
func (l *freeList) pop(a *arena) (int, bool) {
	if l.head == freeListEnd {
		return 0, false
	}
	index := l.head
	l.head = *l.link(a, index)
	return index, true
}
