// Package fwserver is a reference implementation of the remote document
// store the sync engine talks to: one JSONB documents table in Postgres,
// collections keyed by owner with an updated_at watermark for
// incremental downloads.
package fwserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// globalOwner is the owner key under which ownerless (global) collections
// are stored.
const globalOwner = ""

// collections registered for sync. Global collections are readable
// without authentication and reject uploads (server-authoritative).
var registeredCollections = map[string]struct{ global bool }{
	"exercises":                {global: true},
	"custom_exercises":         {},
	"programmes":               {},
	"programme_weeks":          {},
	"programme_workouts":       {},
	"programme_progress":       {},
	"workouts":                 {},
	"exercise_logs":            {},
	"set_logs":                 {},
	"templates":                {},
	"template_exercises":       {},
	"template_sets":            {},
	"exercise_maxes":           {},
	"personal_records":         {},
	"exercise_usage":           {},
	"swap_history":             {},
	"performance_tracking":     {},
	"global_exercise_progress": {},
	"training_analyses":        {},
	"parse_requests":           {},
}

// IsGlobalCollection reports whether name is a registered ownerless
// collection. The second return value reports whether name is registered
// at all.
func IsGlobalCollection(name string) (global, registered bool) {
	c, ok := registeredCollections[name]
	return c.global, ok
}

// Service stores and serves sync documents.
type Service struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewService creates the document store service and its schema.
func NewService(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{pool: pool, logger: logger}
	if err := s.initializeSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *Service) initializeSchema(ctx context.Context) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			owner_id   TEXT NOT NULL,
			collection TEXT NOT NULL,
			doc_id     TEXT NOT NULL,
			payload    JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (owner_id, collection, doc_id)
		)`,
		`CREATE INDEX IF NOT EXISTS documents_watermark_idx
			ON documents (owner_id, collection, updated_at)`,
	}
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		for _, stmt := range ddl {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
}

// Download returns the owner's documents in a collection, restricted to
// those modified after since when since is non-nil. Global collections
// are read with the global owner key regardless of the caller.
func (s *Service) Download(ctx context.Context, ownerID, collection string, since *time.Time) ([]json.RawMessage, error) {
	global, registered := IsGlobalCollection(collection)
	if !registered {
		return nil, fmt.Errorf("unregistered collection %q", collection)
	}
	if global {
		ownerID = globalOwner
	}

	query := `SELECT payload FROM documents WHERE owner_id = $1 AND collection = $2`
	args := []any{ownerID, collection}
	if since != nil {
		query += ` AND updated_at > $3`
		args = append(args, *since)
	}
	query += ` ORDER BY updated_at, doc_id`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	docs := []json.RawMessage{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, json.RawMessage(payload))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents: %w", err)
	}
	return docs, nil
}

// Upload replaces the owner's snapshot of a collection. Every document
// must carry an "id" field; the server stamps updated_at on changed
// payloads so incremental downloads on other devices pick the batch up,
// and documents absent from the snapshot are deleted.
func (s *Service) Upload(ctx context.Context, ownerID, collection string, docs []json.RawMessage) error {
	global, registered := IsGlobalCollection(collection)
	if !registered {
		return fmt.Errorf("unregistered collection %q", collection)
	}
	if global {
		return fmt.Errorf("collection %q is server-authoritative", collection)
	}

	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		docIDs := make([]string, 0, len(docs))
		for _, doc := range docs {
			docID, err := extractDocID(doc)
			if err != nil {
				return err
			}
			docIDs = append(docIDs, docID)
			// The WHERE guard keeps updated_at stable for byte-identical
			// payloads so unchanged documents stay below other devices'
			// watermarks.
			_, err = tx.Exec(ctx, `
				INSERT INTO documents (owner_id, collection, doc_id, payload, updated_at)
				VALUES ($1, $2, $3, $4, now())
				ON CONFLICT (owner_id, collection, doc_id)
				DO UPDATE SET payload = excluded.payload, updated_at = now()
				WHERE documents.payload IS DISTINCT FROM excluded.payload
			`, ownerID, collection, docID, []byte(doc))
			if err != nil {
				return fmt.Errorf("failed to upsert document %s: %w", docID, err)
			}
		}
		_, err := tx.Exec(ctx, `
			DELETE FROM documents
			WHERE owner_id = $1 AND collection = $2 AND NOT (doc_id = ANY($3))
		`, ownerID, collection, docIDs)
		if err != nil {
			return fmt.Errorf("failed to prune missing documents: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s for %s: %w", collection, ownerID, err)
	}

	s.logger.Debug("uploaded collection snapshot",
		"owner", ownerID, "collection", collection, "count", len(docs))
	return nil
}

// SeedCatalog replaces the global exercise catalog. Intended for server
// administration, not for sync clients.
func (s *Service) SeedCatalog(ctx context.Context, docs []json.RawMessage) error {
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		for _, doc := range docs {
			docID, err := extractDocID(doc)
			if err != nil {
				return err
			}
			_, err = tx.Exec(ctx, `
				INSERT INTO documents (owner_id, collection, doc_id, payload, updated_at)
				VALUES ($1, 'exercises', $2, $3, now())
				ON CONFLICT (owner_id, collection, doc_id)
				DO UPDATE SET payload = excluded.payload, updated_at = now()
				WHERE documents.payload IS DISTINCT FROM excluded.payload
			`, globalOwner, docID, []byte(doc))
			if err != nil {
				return fmt.Errorf("failed to seed exercise %s: %w", docID, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	return nil
}

func extractDocID(doc json.RawMessage) (string, error) {
	var envelope struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(doc, &envelope); err != nil {
		return "", fmt.Errorf("failed to parse document: %w", err)
	}
	if envelope.ID == "" {
		return "", fmt.Errorf("document missing id field")
	}
	return envelope.ID, nil
}
