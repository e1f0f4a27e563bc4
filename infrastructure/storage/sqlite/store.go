// ABOUTME: SQLite-backed collection storage implementation
// ABOUTME: Persists collections and their content items in a local database file

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"stash-app-api/core/domain"

	_ "github.com/mattn/go-sqlite3"
)

// Store implements the CollectionStorage interface using SQLite
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the database file and initializes the schema
func NewStore(filePath string) (*Store, error) {
	if filePath == "" {
		filePath = "stash.db"
	}

	db, err := sql.Open("sqlite3", filePath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the tables if they don't exist
func (s *Store) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS collections (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			owner_token TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			expires_at INTEGER
		);
		CREATE INDEX IF NOT EXISTS idx_collections_owner ON collections(owner_token);

		CREATE TABLE IF NOT EXISTS collection_items (
			collection_id TEXT NOT NULL REFERENCES collections(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			url TEXT NOT NULL,
			content_type TEXT NOT NULL,
			source_id TEXT NOT NULL DEFAULT '',
			title TEXT NOT NULL,
			source_name TEXT NOT NULL DEFAULT '',
			metadata TEXT NOT NULL DEFAULT '{}',
			content TEXT NOT NULL,
			PRIMARY KEY (collection_id, position)
		);
	`

	_, err := s.db.Exec(query)
	return err
}

// Save upserts a collection and replaces its item rows
func (s *Store) Save(ctx context.Context, collection *domain.Collection) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var expiresAt interface{}
	if collection.ExpiresAt != nil {
		expiresAt = collection.ExpiresAt.Unix()
	}

	_, err = tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO collections (id, name, owner_token, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?)
	`, collection.ID, collection.Name, collection.OwnerToken, collection.CreatedAt.Unix(), expiresAt)
	if err != nil {
		return fmt.Errorf("failed to save collection: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM collection_items WHERE collection_id = ?", collection.ID); err != nil {
		return fmt.Errorf("failed to clear collection items: %w", err)
	}

	for position, item := range collection.Items {
		metadata, err := json.Marshal(item.Metadata)
		if err != nil {
			return fmt.Errorf("failed to encode item metadata: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO collection_items
				(collection_id, position, url, content_type, source_id, title, source_name, metadata, content)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, collection.ID, position, item.URL, string(item.Type), item.SourceID,
			item.Title, item.SourceName, string(metadata), item.Content)
		if err != nil {
			return fmt.Errorf("failed to save collection item: %w", err)
		}
	}

	return tx.Commit()
}

// Get retrieves a collection by ID, nil if it does not exist
func (s *Store) Get(ctx context.Context, id string) (*domain.Collection, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, owner_token, created_at, expires_at
		FROM collections WHERE id = ?
	`, id)

	collection, err := scanCollection(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load collection: %w", err)
	}

	if err := s.loadItems(ctx, collection); err != nil {
		return nil, err
	}

	return collection, nil
}

// ListByOwner retrieves all collections for an owner token
func (s *Store) ListByOwner(ctx context.Context, ownerToken string) ([]*domain.Collection, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, owner_token, created_at, expires_at
		FROM collections WHERE owner_token = ?
		ORDER BY created_at DESC
	`, ownerToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	defer rows.Close()

	var collections []*domain.Collection
	for rows.Next() {
		collection, err := scanCollection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan collection: %w", err)
		}
		collections = append(collections, collection)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, collection := range collections {
		if err := s.loadItems(ctx, collection); err != nil {
			return nil, err
		}
	}

	return collections, nil
}

// Delete removes a collection; item rows cascade
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM collections WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}
	return nil
}

// Close releases the database handle
func (s *Store) Close() error {
	return s.db.Close()
}

// loadItems fills a collection's item slice in stored order
func (s *Store) loadItems(ctx context.Context, collection *domain.Collection) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT url, content_type, source_id, title, source_name, metadata, content
		FROM collection_items WHERE collection_id = ?
		ORDER BY position
	`, collection.ID)
	if err != nil {
		return fmt.Errorf("failed to load collection items: %w", err)
	}
	defer rows.Close()

	collection.Items = []domain.ContentRecord{}
	for rows.Next() {
		var item domain.ContentRecord
		var contentType, metadata string

		if err := rows.Scan(&item.URL, &contentType, &item.SourceID,
			&item.Title, &item.SourceName, &metadata, &item.Content); err != nil {
			return fmt.Errorf("failed to scan collection item: %w", err)
		}

		item.Type = domain.ContentType(contentType)
		if err := json.Unmarshal([]byte(metadata), &item.Metadata); err != nil {
			item.Metadata = map[string]string{}
		}

		collection.Items = append(collection.Items, item)
	}

	return rows.Err()
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanCollection reads one collection row
func scanCollection(row rowScanner) (*domain.Collection, error) {
	var collection domain.Collection
	var createdAt int64
	var expiresAt sql.NullInt64

	if err := row.Scan(&collection.ID, &collection.Name, &collection.OwnerToken,
		&createdAt, &expiresAt); err != nil {
		return nil, err
	}

	collection.CreatedAt = time.Unix(createdAt, 0)
	if expiresAt.Valid {
		t := time.Unix(expiresAt.Int64, 0)
		collection.ExpiresAt = &t
	}

	return &collection, nil
}
