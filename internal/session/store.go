// Package session holds the per-session draft slot. Exactly one draft lives
// under each opaque session id; the HTTP layer guarantees at most one
// in-flight generation or refinement per id.
package session

import (
	"sync"

	"github.com/draftforge/draftforge/internal/docmodel"
	"github.com/draftforge/draftforge/internal/generate"
)

// Draft is the material of one proposal session: the selected provider, the
// client context, and the classified documents of the latest pass.
type Draft struct {
	ProfileID  int64
	Context    generate.Context
	Summary    docmodel.Document
	ValueProps docmodel.Document
}

// Store is the keyed draft slot the surrounding system injects. The drafting
// pipeline itself never touches it.
type Store interface {
	Get(id string) (Draft, bool)
	Put(id string, d Draft)
	Clear(id string)
}

// Memory is the in-process Store used by the single-node server.
type Memory struct {
	mu     sync.Mutex
	drafts map[string]Draft
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{drafts: make(map[string]Draft)}
}

func (m *Memory) Get(id string) (Draft, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.drafts[id]
	return d, ok
}

func (m *Memory) Put(id string, d Draft) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drafts[id] = d
}

func (m *Memory) Clear(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drafts, id)
}
