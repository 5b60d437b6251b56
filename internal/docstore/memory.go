// internal/docstore/memory.go
package docstore

import (
    "encoding/json"
    "sync"

    appErrors "github.com/phishdash/phishdash-backend/internal/errors"
)

// MemoryStore is an in-memory Store used by tests and local development.
// Documents are deep-copied on every read and write so callers never share
// state with the store.
type MemoryStore struct {
    mu   sync.Mutex
    docs map[string]map[string]Document
}

func NewMemoryStore() *MemoryStore {
    return &MemoryStore{
        docs: make(map[string]map[string]Document),
    }
}

func (s *MemoryStore) Get(collection, id string) (Document, error) {
    s.mu.Lock()
    defer s.mu.Unlock()

    doc, ok := s.docs[collection][id]
    if !ok {
        return nil, appErrors.NewCampaignNotFound(id)
    }
    return deepCopy(doc)
}

func (s *MemoryStore) Set(collection, id string, fields Document) error {
    s.mu.Lock()
    defer s.mu.Unlock()

    doc, ok := s.docs[collection][id]
    if !ok {
        return appErrors.NewCampaignNotFound(id)
    }
    copied, err := deepCopy(fields)
    if err != nil {
        return err
    }
    for k, v := range copied {
        doc[k] = v
    }
    return nil
}

func (s *MemoryStore) Create(collection, id string, doc Document) error {
    s.mu.Lock()
    defer s.mu.Unlock()

    copied, err := deepCopy(doc)
    if err != nil {
        return err
    }
    if s.docs[collection] == nil {
        s.docs[collection] = make(map[string]Document)
    }
    s.docs[collection][id] = copied
    return nil
}

func (s *MemoryStore) ReplaceArrayField(collection, id, field string, items any, expectedLen int) error {
    s.mu.Lock()
    defer s.mu.Unlock()

    doc, ok := s.docs[collection][id]
    if !ok {
        return appErrors.NewCampaignNotFound(id)
    }

    current, _ := doc[field].([]any)
    if len(current) != expectedLen {
        return appErrors.NewConflict(id, expectedLen)
    }

    raw, err := json.Marshal(items)
    if err != nil {
        return appErrors.NewStoreFault("replace", err)
    }
    var replacement []any
    if err := json.Unmarshal(raw, &replacement); err != nil {
        return appErrors.NewStoreFault("replace", err)
    }
    doc[field] = replacement
    return nil
}

func deepCopy(doc Document) (Document, error) {
    raw, err := json.Marshal(doc)
    if err != nil {
        return nil, appErrors.NewStoreFault("copy", err)
    }
    var out Document
    if err := json.Unmarshal(raw, &out); err != nil {
        return nil, appErrors.NewStoreFault("copy", err)
    }
    return out, nil
}

var _ Store = (*MemoryStore)(nil)
