// internal/docstore/postgres.go
package docstore

import (
    "database/sql"
    "encoding/json"

    appErrors "github.com/phishdash/phishdash-backend/internal/errors"
)

// PostgresStore keeps documents as JSONB rows in the documents table.
type PostgresStore struct {
    DB *sql.DB
}

func (s *PostgresStore) Get(collection, id string) (Document, error) {
    query := `SELECT data FROM documents WHERE collection=$1 AND id=$2`
    var raw []byte
    err := s.DB.QueryRow(query, collection, id).Scan(&raw)
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, appErrors.NewCampaignNotFound(id)
        }
        return nil, appErrors.NewStoreFault("get", err)
    }

    var doc Document
    if err := json.Unmarshal(raw, &doc); err != nil {
        return nil, appErrors.NewStoreFault("get", err)
    }
    return doc, nil
}

// Set overwrites the targeted top-level fields in full. The jsonb || operator
// is a shallow merge, which is exactly the whole-field-overwrite contract.
func (s *PostgresStore) Set(collection, id string, fields Document) error {
    raw, err := json.Marshal(fields)
    if err != nil {
        return appErrors.NewStoreFault("set", err)
    }

    query := `UPDATE documents SET data = data || $3::jsonb WHERE collection=$1 AND id=$2`
    res, err := s.DB.Exec(query, collection, id, raw)
    if err != nil {
        return appErrors.NewStoreFault("set", err)
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return appErrors.NewCampaignNotFound(id)
    }
    return nil
}

func (s *PostgresStore) Create(collection, id string, doc Document) error {
    raw, err := json.Marshal(doc)
    if err != nil {
        return appErrors.NewStoreFault("create", err)
    }

    query := `
        INSERT INTO documents (collection, id, data)
        VALUES ($1, $2, $3::jsonb)
        ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data
    `
    if _, err := s.DB.Exec(query, collection, id, raw); err != nil {
        return appErrors.NewStoreFault("create", err)
    }
    return nil
}

// ReplaceArrayField writes the new array only while the persisted one still
// has expectedLen elements. A concurrent writer that grew or truncated the
// array in between surfaces as a conflict, not a silent overwrite.
func (s *PostgresStore) ReplaceArrayField(collection, id, field string, items any, expectedLen int) error {
    raw, err := json.Marshal(items)
    if err != nil {
        return appErrors.NewStoreFault("replace", err)
    }

    query := `
        UPDATE documents
        SET data = jsonb_set(data, ARRAY[$3], $4::jsonb)
        WHERE collection=$1 AND id=$2 AND jsonb_array_length(data -> $3) = $5
    `
    res, err := s.DB.Exec(query, collection, id, field, raw, expectedLen)
    if err != nil {
        return appErrors.NewStoreFault("replace", err)
    }
    n, _ := res.RowsAffected()
    if n > 0 {
        return nil
    }

    // No row matched: either the document is gone or the guard failed.
    if _, err := s.Get(collection, id); err != nil {
        return err
    }
    return appErrors.NewConflict(id, expectedLen)
}

var _ Store = (*PostgresStore)(nil)
