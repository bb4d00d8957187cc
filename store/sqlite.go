package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// SQLiteFile is the database file created inside the data directory.
const SQLiteFile = "wonderlens.db"

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS documents (
    id          TEXT PRIMARY KEY,
    collection  TEXT NOT NULL,
    body        TEXT NOT NULL,
    created_at  TEXT NOT NULL,
    updated_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents(collection);
`

// SQLiteStore keeps every collection as JSON rows in a single SQLite file.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (or creates) the database under dataDir and runs migrations.
func OpenSQLite(dataDir string) (*SQLiteStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, SQLiteFile)
	db, err := sql.Open("sqlite3", "file:"+dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate sqlite db: %w", err)
	}

	return &SQLiteStore{db: db, path: dbPath}, nil
}

func (s *SQLiteStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	fields, err := FieldsOf(doc)
	if err != nil {
		return "", err
	}
	delete(fields, IDField)

	now := time.Now().UTC().Format(time.RFC3339Nano)
	fields["created_at"] = now
	fields["updated_at"] = now

	body, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	id := uuid.New().String()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (id, collection, body, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id, collection, string(body), now, now,
	)
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", collection, err)
	}
	return id, nil
}

func (s *SQLiteStore) FindOne(ctx context.Context, collection string, filter Filter) (Document, error) {
	docs, err := s.Find(ctx, collection, filter, 1)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	return docs[0], nil
}

func (s *SQLiteStore) Find(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	query, args := buildFindQuery(collection, filter, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var id, body string
		if err := rows.Scan(&id, &body); err != nil {
			return nil, fmt.Errorf("scan %s: %w", collection, err)
		}
		doc, err := decodeBody(id, body)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// buildFindQuery matches filter values against JSON fields. Keys are sorted so
// the statement text is stable.
func buildFindQuery(collection string, filter Filter, limit int) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, body FROM documents WHERE collection = ?`)
	args := []any{collection}

	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if k == IDField {
			sb.WriteString(` AND id = ?`)
			args = append(args, filter[k])
			continue
		}
		path := `$."` + strings.ReplaceAll(k, `"`, `\"`) + `"`
		switch v := filter[k].(type) {
		case nil:
			sb.WriteString(` AND json_extract(body, ?) IS NULL`)
			args = append(args, path)
		case bool:
			// json_extract yields 1/0 for JSON booleans.
			sb.WriteString(` AND json_extract(body, ?) = ?`)
			b := 0
			if v {
				b = 1
			}
			args = append(args, path, b)
		default:
			sb.WriteString(` AND json_extract(body, ?) = ?`)
			args = append(args, path, v)
		}
	}

	sb.WriteString(` ORDER BY rowid`)
	if limit > 0 {
		sb.WriteString(` LIMIT ?`)
		args = append(args, limit)
	}
	return sb.String(), args
}

func (s *SQLiteStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	set, err := FieldsOf(fields)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update: %w", err)
	}
	defer tx.Rollback()

	var body string
	err = tx.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE id = ? AND collection = ?`, id, collection,
	).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("load %s/%s: %w", collection, id, err)
	}

	doc, err := decodeBody(id, body)
	if err != nil {
		return err
	}
	delete(doc, IDField)
	for k, v := range set {
		if k == IDField {
			continue
		}
		doc[k] = v
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	doc["updated_at"] = now

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE documents SET body = ?, updated_at = ? WHERE id = ?`, string(raw), now, id,
	); err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	return tx.Commit()
}

func (s *SQLiteStore) Collections(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT collection FROM documents ORDER BY collection`)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Name returns the database file name.
func (s *SQLiteStore) Name() string {
	return filepath.Base(s.path)
}

func (s *SQLiteStore) Close(context.Context) error {
	return s.db.Close()
}

func decodeBody(id, body string) (Document, error) {
	var doc Document
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", id, err)
	}
	doc[IDField] = id
	return doc, nil
}
