package service

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
)

// fakeStore is an in-memory DocumentStore used across the service tests.
type fakeStore struct {
	configured  bool
	collections map[string][]map[string]interface{}
	nextID      int

	createErr          error
	getErr             error
	collectionNames    []string
	listCollectionsErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		configured:  true,
		collections: make(map[string][]map[string]interface{}),
	}
}

func (f *fakeStore) CreateDocument(ctx context.Context, collection string, doc interface{}) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}

	// mirror the real adapter: round-trip through JSON so documents carry
	// their wire field names
	b, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		return "", err
	}

	f.nextID++
	id := fmt.Sprintf("%s:%d", collection, f.nextID)
	m["id"] = id
	f.collections[collection] = append(f.collections[collection], m)
	return id, nil
}

func (f *fakeStore) GetDocuments(ctx context.Context, collection string, filter map[string]interface{}, limit int) ([]map[string]interface{}, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if !f.configured {
		return []map[string]interface{}{}, nil
	}

	out := []map[string]interface{}{}
	for _, rec := range f.collections[collection] {
		match := true
		for k, v := range filter {
			if !reflect.DeepEqual(rec[k], v) {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		out = append(out, rec)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeStore) CountDocuments(ctx context.Context, collection string) (int, error) {
	if !f.configured {
		return 0, nil
	}
	return len(f.collections[collection]), nil
}

func (f *fakeStore) ListCollections(ctx context.Context) ([]string, error) {
	if f.listCollectionsErr != nil {
		return nil, f.listCollectionsErr
	}
	return f.collectionNames, nil
}

func (f *fakeStore) Configured() bool {
	return f.configured
}

// insert bypasses the service layer to plant a raw document.
func (f *fakeStore) insert(collection string, doc map[string]interface{}) string {
	f.nextID++
	id := fmt.Sprintf("%s:%d", collection, f.nextID)
	doc["id"] = id
	f.collections[collection] = append(f.collections[collection], doc)
	return id
}
