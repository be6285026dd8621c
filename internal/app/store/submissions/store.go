// internal/app/store/submissions/store.go
package submissionstore

import (
	"context"
	"strings"
)

// Writer adds a single document to a collection and returns the id the
// backend assigned to it. Implementations must be safe for concurrent use.
type Writer interface {
	Add(ctx context.Context, collectionPath string, doc any) (string, error)
}

// CollectionPath returns the tenant-scoped path of a submissions collection:
//
//	artifacts/{tenantID}/public/data/{collection}
func CollectionPath(tenantID, collection string) string {
	return strings.Join([]string{"artifacts", tenantID, "public", "data", collection}, "/")
}
