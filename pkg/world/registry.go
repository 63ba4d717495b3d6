package world

import (
	"sync"

	"github.com/df07/go-raytracer-challenge/pkg/geometry"
)

// ClassID identifies a shape kind within one Registry
type ClassID int

// ObjectID identifies one object within one Registry
type ObjectID int

// Registry hands out monotonically increasing class and object ids, starting
// at 1 so the zero value never names anything. Registries are independent of
// each other, and the zero Registry is ready to use.
type Registry struct {
	mu         sync.Mutex
	classes    map[geometry.Kind]ClassID
	lastClass  ClassID
	lastObject ObjectID
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{classes: make(map[geometry.Kind]ClassID)}
}

// ClassID returns the id of kind, assigning the next one on first use
func (r *Registry) ClassID(kind geometry.Kind) ClassID {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.classes[kind]; ok {
		return id
	}
	if r.classes == nil {
		r.classes = make(map[geometry.Kind]ClassID)
	}
	r.lastClass++
	r.classes[kind] = r.lastClass
	return r.lastClass
}

// NextObjectID returns a fresh object id
func (r *Registry) NextObjectID() ObjectID {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastObject++
	return r.lastObject
}
