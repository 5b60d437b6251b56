// internal/docstore/docstore.go
package docstore

// Document is the plain nested structure persisted per record
// (string/number/boolean/array fields only).
type Document = map[string]any

// Store is the document storage surface the dashboard consumes. Set replaces
// each targeted field in full (whole-field overwrite, no deep merge).
// ReplaceArrayField is the guarded variant of that overwrite for a single
// array field: the write only applies while the persisted array still has
// expectedLen elements, otherwise it fails with a conflict.
type Store interface {
    Get(collection, id string) (Document, error)
    Set(collection, id string, fields Document) error
    Create(collection, id string, doc Document) error
    ReplaceArrayField(collection, id, field string, items any, expectedLen int) error
}
