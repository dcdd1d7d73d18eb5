package vulkan

import (
	"sync"
	"unsafe"

	"github.com/andewx/dieselgpu"
)

// registry maps the ids carried in pUserData to live messengers. Ids start
// at 1 and are never reused; 0 means none.
type registry struct {
	mu   sync.Mutex
	last uintptr
	live map[uintptr]*dieselgpu.Messenger
}

var messengers = newRegistry()

func newRegistry() *registry {
	return &registry{live: make(map[uintptr]*dieselgpu.Messenger)}
}

func (r *registry) add(m *dieselgpu.Messenger) uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last++
	r.live[r.last] = m
	return r.last
}

func (r *registry) lookup(id uintptr) (*dieselgpu.Messenger, bool) {
	if id == 0 {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.live[id]
	return m, ok
}

func (r *registry) remove(id uintptr) {
	if id == 0 {
		return
	}
	r.mu.Lock()
	delete(r.live, id)
	r.mu.Unlock()
}

func (r *registry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}

// userDataOf encodes an id as the opaque pUserData value. Vulkan only
// passes it back; it is never dereferenced.
func userDataOf(id uintptr) unsafe.Pointer {
	return unsafe.Pointer(id)
}

func idOf(p unsafe.Pointer) uintptr {
	return uintptr(p)
}
