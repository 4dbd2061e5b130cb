package service

import (
	"context"
	"fmt"
)

// DocumentStore is the persistence seam every service depends on.
// *store.Store implements it; tests inject fakes.
type DocumentStore interface {
	CreateDocument(ctx context.Context, collection string, doc interface{}) (string, error)
	GetDocuments(ctx context.Context, collection string, filter map[string]interface{}, limit int) ([]map[string]interface{}, error)
	CountDocuments(ctx context.Context, collection string) (int, error)
	ListCollections(ctx context.Context) ([]string, error)
	Configured() bool
}

// exposeID normalizes the store identifier on each record to a plain string
// "id" field for external consumption.
func exposeID(records []map[string]interface{}) []map[string]interface{} {
	for _, r := range records {
		if id, ok := r["id"]; ok {
			if _, isString := id.(string); !isString {
				r["id"] = fmt.Sprintf("%v", id)
			}
		}
	}
	return records
}
