package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrStorageUnavailable means no store connection is configured. Write paths
// surface it to the caller; read paths return empty results instead.
var ErrStorageUnavailable = errors.New("database not configured")

// PersistenceError wraps a driver failure against a reachable store.
type PersistenceError struct {
	Op         string
	Collection string
	Err        error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Filter is an equality filter over document fields; multiple keys AND.
type Filter map[string]any

// DocumentStore is the only component that talks to the database. A zero db
// handle is the documented "unavailable" state, not an error condition.
type DocumentStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials the document store. Empty connection details yield an
// unavailable store so the API can still serve its static surface.
func Connect(ctx context.Context, uri, dbName string) (*DocumentStore, error) {
	if uri == "" || dbName == "" {
		return &DocumentStore{}, nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect document store: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping document store: %w", err)
	}

	return &DocumentStore{client: client, db: client.Database(dbName)}, nil
}

// Unavailable returns a store with no backing connection.
func Unavailable() *DocumentStore { return &DocumentStore{} }

func (s *DocumentStore) Available() bool { return s.db != nil }

func (s *DocumentStore) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// CreateDocument inserts a validated entity into the named collection and
// returns the generated identifier as a string.
func (s *DocumentStore) CreateDocument(ctx context.Context, collection string, entity any) (string, error) {
	if s.db == nil {
		return "", ErrStorageUnavailable
	}

	res, err := s.db.Collection(collection).InsertOne(ctx, entity)
	if err != nil {
		return "", &PersistenceError{Op: "insert", Collection: collection, Err: err}
	}
	return hexID(res.InsertedID), nil
}

// GetDocuments decodes up to limit documents matching filter into out, a
// pointer to a slice of entity structs, in store-native order. On an
// unavailable store out is left empty.
func (s *DocumentStore) GetDocuments(ctx context.Context, collection string, filter Filter, limit int64, out any) error {
	if s.db == nil {
		return nil
	}

	query := bson.M{}
	for key, value := range filter {
		query[key] = value
	}

	cur, err := s.db.Collection(collection).Find(ctx, query, options.Find().SetLimit(limit))
	if err != nil {
		return &PersistenceError{Op: "find", Collection: collection, Err: err}
	}
	defer cur.Close(ctx)

	if err := cur.All(ctx, out); err != nil {
		return &PersistenceError{Op: "decode", Collection: collection, Err: err}
	}
	return nil
}

// CountDocuments reports how many documents match filter.
func (s *DocumentStore) CountDocuments(ctx context.Context, collection string, filter Filter) (int64, error) {
	if s.db == nil {
		return 0, ErrStorageUnavailable
	}

	query := bson.M{}
	for key, value := range filter {
		query[key] = value
	}

	count, err := s.db.Collection(collection).CountDocuments(ctx, query)
	if err != nil {
		return 0, &PersistenceError{Op: "count", Collection: collection, Err: err}
	}
	return count, nil
}

// DiagReport is a connectivity snapshot for the /test endpoint.
type DiagReport struct {
	Available    bool
	Connected    bool
	DatabaseName string
	Collections  []string
	Error        string
}

// Diagnostics probes the store without mutating anything.
func (s *DocumentStore) Diagnostics(ctx context.Context) DiagReport {
	if s.db == nil {
		return DiagReport{}
	}

	report := DiagReport{Available: true, DatabaseName: s.db.Name()}

	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		report.Error = err.Error()
		return report
	}

	report.Connected = true
	if len(names) > 10 {
		names = names[:10]
	}
	report.Collections = names
	return report
}

// hexID normalizes a store-generated identifier to its string form.
func hexID(id any) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprintf("%v", id)
}
