// internal/app/store/submissions/firestore.go
package submissionstore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
)

// FirestoreStore writes submissions to Cloud Firestore. The collection path
// is used as-is, so records land under the tenant path.
type FirestoreStore struct {
	c *firestore.Client
}

// NewFirestore wraps an initialised Firestore client.
func NewFirestore(c *firestore.Client) *FirestoreStore {
	return &FirestoreStore{c: c}
}

// Add stores doc with an auto-generated document id.
func (s *FirestoreStore) Add(ctx context.Context, collectionPath string, doc any) (string, error) {
	col := s.c.Collection(collectionPath)
	if col == nil {
		return "", fmt.Errorf("firestore: %q is not a collection path", collectionPath)
	}
	ref, _, err := col.Add(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("firestore add to %s: %w", collectionPath, err)
	}
	return ref.ID, nil
}
