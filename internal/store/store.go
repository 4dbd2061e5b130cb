// Package store is a thin adapter over SurrealDB exposing generic document
// operations keyed by collection name. It holds the only shared state in the
// process: the database connection handle. There is no caching and no retry;
// store failures propagate to the caller unchanged.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	surrealdb "github.com/surrealdb/surrealdb.go"

	apperrors "oilsaas/internal/errors"
)

// Conn is the subset of the SurrealDB client the store uses. *surrealdb.DB
// satisfies it; tests substitute fakes.
type Conn interface {
	Create(thing string, data interface{}) (interface{}, error)
	Query(sql string, vars interface{}) (interface{}, error)
	Close()
}

// Store exposes document CRUD against named collections. A Store without a
// connection is valid: reads return empty results and writes fail with
// ErrStoreNotConfigured.
type Store struct {
	conn Conn
	log  zerolog.Logger
}

// Options carries connection settings for Open.
type Options struct {
	URL       string
	Namespace string
	Database  string
	User      string
	Pass      string
}

// Open connects to SurrealDB, signs in and selects the configured namespace
// and database. An empty URL yields a disabled store and no error.
func Open(opts Options, log zerolog.Logger) (*Store, error) {
	if opts.URL == "" {
		log.Warn().Msg("DATABASE_URL not set, document store disabled")
		return &Store{log: log}, nil
	}

	db, err := surrealdb.New(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("connect surrealdb: %w", err)
	}
	if _, err := db.Signin(map[string]interface{}{"user": opts.User, "pass": opts.Pass}); err != nil {
		db.Close()
		return nil, fmt.Errorf("signin surrealdb: %w", err)
	}
	if _, err := db.Use(opts.Namespace, opts.Database); err != nil {
		db.Close()
		return nil, fmt.Errorf("use %s/%s: %w", opts.Namespace, opts.Database, err)
	}

	log.Info().Str("database", opts.Database).Msg("document store connected")
	return &Store{conn: db, log: log}, nil
}

// NewWithConn wires a store around an existing connection. Tests use this.
func NewWithConn(conn Conn, log zerolog.Logger) *Store {
	return &Store{conn: conn, log: log}
}

// NewDisabled returns a store without a backing connection.
func NewDisabled(log zerolog.Logger) *Store {
	return &Store{log: log}
}

// Configured reports whether a database connection is present.
func (s *Store) Configured() bool {
	return s.conn != nil
}

// Close releases the underlying connection, if any.
func (s *Store) Close() {
	if s.conn != nil {
		s.conn.Close()
	}
}

// CreateDocument serializes doc into the collection and returns the
// store-generated identifier.
func (s *Store) CreateDocument(ctx context.Context, collection string, doc interface{}) (string, error) {
	if s.conn == nil {
		return "", apperrors.ErrStoreNotConfigured
	}

	data, err := toMap(doc)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	res, err := s.conn.Create(collection, data)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", collection, err)
	}

	created, err := firstRecord(res)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", collection, err)
	}
	id, _ := created["id"].(string)
	if id == "" {
		return "", fmt.Errorf("create %s: response missing id", collection)
	}

	s.log.Debug().Str("collection", collection).Str("id", id).Msg("document created")
	return id, nil
}

// GetDocuments returns raw records from the collection matching the
// field-equality filter, each including its id, truncated to limit when
// limit > 0. Records come back in store-native order. A disabled store
// returns an empty slice, not an error.
func (s *Store) GetDocuments(ctx context.Context, collection string, filter map[string]interface{}, limit int) ([]map[string]interface{}, error) {
	if s.conn == nil {
		return []map[string]interface{}{}, nil
	}

	vars := map[string]interface{}{"tb": collection}
	sql := "SELECT * FROM type::table($tb)"
	if len(filter) > 0 {
		keys := make([]string, 0, len(filter))
		for k := range filter {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		conds := make([]string, 0, len(keys))
		for i, k := range keys {
			p := fmt.Sprintf("f%d", i)
			conds = append(conds, fmt.Sprintf("%s = $%s", k, p))
			vars[p] = filter[k]
		}
		sql += " WHERE " + strings.Join(conds, " AND ")
	}
	if limit > 0 {
		sql += fmt.Sprintf(" LIMIT %d", limit)
	}

	res, err := s.conn.Query(sql, vars)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}
	return queryRecords(res)
}

// CountDocuments returns the number of records in the collection. A disabled
// store reports zero.
func (s *Store) CountDocuments(ctx context.Context, collection string) (int, error) {
	if s.conn == nil {
		return 0, nil
	}

	res, err := s.conn.Query(
		"SELECT count() AS total FROM type::table($tb) GROUP ALL",
		map[string]interface{}{"tb": collection},
	)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}

	rows, err := queryRecords(res)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	total, ok := rows[0]["total"].(float64)
	if !ok {
		return 0, fmt.Errorf("count %s: unexpected total %T", collection, rows[0]["total"])
	}
	return int(total), nil
}

// ListCollections names the tables present in the database, sorted. Used by
// the diagnostic endpoint.
func (s *Store) ListCollections(ctx context.Context) ([]string, error) {
	if s.conn == nil {
		return nil, apperrors.ErrStoreNotConfigured
	}

	res, err := s.conn.Query("INFO FOR DB", nil)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	result, err := queryResult(res)
	if err != nil {
		return nil, err
	}
	info, ok := result.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("list collections: unexpected result %T", result)
	}
	tables, ok := info["tables"].(map[string]interface{})
	if !ok {
		// older server versions report tables under "tb"
		tables, ok = info["tb"].(map[string]interface{})
		if !ok {
			return nil, errors.New("list collections: no tables in response")
		}
	}

	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// toMap round-trips a typed record through JSON so the wire field names from
// the struct tags become the document field names.
func toMap(doc interface{}) (map[string]interface{}, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// firstRecord unpacks a create response, which SurrealDB returns either as a
// single object or a one-element array.
func firstRecord(res interface{}) (map[string]interface{}, error) {
	switch v := res.(type) {
	case map[string]interface{}:
		return v, nil
	case []interface{}:
		if len(v) == 0 {
			return nil, errors.New("empty response")
		}
		if m, ok := v[0].(map[string]interface{}); ok {
			return m, nil
		}
	}
	return nil, fmt.Errorf("unexpected response shape %T", res)
}

// queryResult extracts the result payload of the first statement in a raw
// query response, surfacing statement-level errors.
func queryResult(res interface{}) (interface{}, error) {
	arr, ok := res.([]interface{})
	if !ok || len(arr) == 0 {
		return nil, fmt.Errorf("unexpected query response %T", res)
	}
	stmt, ok := arr[0].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected statement shape %T", arr[0])
	}
	if status, _ := stmt["status"].(string); status != "" && status != "OK" {
		detail, _ := stmt["detail"].(string)
		if detail == "" {
			detail, _ = stmt["result"].(string)
		}
		return nil, fmt.Errorf("query failed: %s %s", status, detail)
	}
	return stmt["result"], nil
}

// queryRecords converts a raw query response into a slice of record maps.
func queryRecords(res interface{}) ([]map[string]interface{}, error) {
	result, err := queryResult(res)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return []map[string]interface{}{}, nil
	}
	rows, ok := result.([]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected result shape %T", result)
	}

	out := make([]map[string]interface{}, 0, len(rows))
	for _, r := range rows {
		if m, ok := r.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out, nil
}
