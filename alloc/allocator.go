// Package alloc provides the allocator capability used for host-side
// storage. Allocators are injected and must outlive everything they allocate.
package alloc

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrOutOfMemory = errors.New("alloc: out of memory")
	ErrZeroSize    = errors.New("alloc: zero size allocation")
)

type Allocation struct {
	Offset uint64
	Size   uint64
}

func (a *Allocation) String() string {
	return fmt.Sprintf("[%d %d]", a.Offset, a.Size)
}

type Allocator interface {
	Allocate(size uint64, align uint64) (*Allocation, error)
	Free(a *Allocation)
}

func alignUp(a uint64, align uint64) uint64 {
	if align <= 1 {
		return a
	}
	m := a % align
	if m == 0 {
		return a
	}
	return (a - m) + align
}

// HeapAllocator is an unbounded allocator that keeps track of live
// allocations. It is safe for concurrent use.
type HeapAllocator struct {
	mu   sync.Mutex
	next uint64
	live map[*Allocation]struct{}
}

func NewHeapAllocator() *HeapAllocator {
	return &HeapAllocator{live: make(map[*Allocation]struct{})}
}

var defaultHeap = NewHeapAllocator()

// Default returns the process-wide heap allocator.
func Default() Allocator {
	return defaultHeap
}

func (h *HeapAllocator) Allocate(size uint64, align uint64) (*Allocation, error) {
	if size == 0 {
		return nil, ErrZeroSize
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.live == nil {
		h.live = make(map[*Allocation]struct{})
	}
	a := &Allocation{Offset: alignUp(h.next, align), Size: size}
	h.next = a.Offset + size
	h.live[a] = struct{}{}
	return a, nil
}

func (h *HeapAllocator) Free(a *Allocation) {
	h.mu.Lock()
	delete(h.live, a)
	h.mu.Unlock()
}

// Live reports the number of allocations not yet freed.
func (h *HeapAllocator) Live() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.live)
}

// LinearAllocator hands out first-fit ranges of a fixed Size arena. It is
// not safe for concurrent use.
type LinearAllocator struct {
	Size   uint64
	allocs []*Allocation
}

func (p *LinearAllocator) Free(fa *Allocation) {
	for i, a := range p.allocs {
		if a == fa {
			p.allocs = append(p.allocs[:i], p.allocs[i+1:]...)
			return
		}
	}
}

func (p *LinearAllocator) Allocate(size uint64, align uint64) (*Allocation, error) {
	if size == 0 {
		return nil, ErrZeroSize
	}
	if len(p.allocs) == 0 {
		if size > p.Size {
			return nil, fmt.Errorf("%w: requested %d of %d bytes", ErrOutOfMemory, size, p.Size)
		}
		na := &Allocation{Offset: 0, Size: size}
		p.allocs = append(p.allocs, na)
		return na, nil
	}

	// Head of the arena
	if p.allocs[0].Offset >= size {
		na := &Allocation{Offset: 0, Size: size}
		p.allocs = append([]*Allocation{na}, p.allocs...)
		return na, nil
	}

	// Gaps between allocations
	for i := 0; i+1 < len(p.allocs); i++ {
		c, n := p.allocs[i], p.allocs[i+1]
		l := alignUp(c.Offset+c.Size, align)
		if l <= n.Offset && n.Offset-l >= size {
			na := &Allocation{Offset: l, Size: size}
			p.allocs = append(p.allocs[:i+1], append([]*Allocation{na}, p.allocs[i+1:]...)...)
			return na, nil
		}
	}

	// Tail
	last := p.allocs[len(p.allocs)-1]
	nl := alignUp(last.Offset+last.Size, align)
	if nl <= p.Size && p.Size-nl >= size {
		na := &Allocation{Offset: nl, Size: size}
		p.allocs = append(p.allocs, na)
		return na, nil
	}
	return nil, fmt.Errorf("%w: requested %d bytes, arena %s", ErrOutOfMemory, size, p.String())
}

// Live reports the number of allocations not yet freed.
func (p *LinearAllocator) Live() int {
	return len(p.allocs)
}

func (p *LinearAllocator) String() string {
	return fmt.Sprintf("%v", p.allocs)
}
