package audio

import "fmt"

// ----- Free List ----- //

const noSlot = -1

// FreeList hands out slot indices in O(1) without allocating. Every index is
// either active or on the free chain, never both.
type FreeList struct {
	active   []uint64
	next     []int
	freeHead int
	numFree  int
}

// NewFreeList returns a list whose first allocations are 0, 1, ..., capacity-1.
func NewFreeList(capacity int) *FreeList {
	if capacity <= 0 {
		panic(fmt.Errorf("invalid free list capacity %d", capacity))
	}
	l := &FreeList{
		active: make([]uint64, (capacity+63)/64),
		next:   make([]int, capacity),
	}
	l.Reset()
	return l
}

// Reset frees every slot.
func (l *FreeList) Reset() {
	for i := range l.active {
		l.active[i] = 0
	}
	for i := range l.next {
		l.next[i] = i + 1
	}
	l.next[len(l.next)-1] = noSlot
	l.freeHead = 0
	l.numFree = len(l.next)
}

// Alloc pops the head of the free chain. It panics when every slot is in use.
func (l *FreeList) Alloc() int {
	index := l.freeHead
	if index == noSlot {
		panic(fmt.Errorf("free list exhausted: all %d slots in use", len(l.next)))
	}
	l.freeHead = l.next[index]
	l.next[index] = noSlot
	l.active[index/64] |= 1 << (uint(index) % 64)
	l.numFree--
	return index
}

// Free pushes index back onto the free chain. Freeing a slot that is not active
// panics.
func (l *FreeList) Free(index int) {
	if !l.IsActive(index) {
		panic(fmt.Errorf("free of inactive slot %d", index))
	}
	l.active[index/64] &^= 1 << (uint(index) % 64)
	l.next[index] = l.freeHead
	l.freeHead = index
	l.numFree++
}

// IsActive ...
func (l *FreeList) IsActive(index int) bool {
	if index < 0 || index >= len(l.next) {
		return false
	}
	return l.active[index/64]&(1<<(uint(index)%64)) != 0
}

// Full reports whether the next Alloc would panic.
func (l *FreeList) Full() bool {
	return l.freeHead == noSlot
}

// Cap ...
func (l *FreeList) Cap() int {
	return len(l.next)
}

// Len returns the number of active slots.
func (l *FreeList) Len() int {
	return len(l.next) - l.numFree
}
