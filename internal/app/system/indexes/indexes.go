// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	submissionstore "github.com/empoderata/academy/internal/app/store/submissions"
	"github.com/empoderata/academy/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup when submissions are kept in MongoDB. Each
collection's index set is reconciled independently and problems are
aggregated so startup fails with the full picture.
*/
func EnsureAll(ctx context.Context, db *mongo.Database, tenantID string) error {
	var problems []string

	quotes := submissionstore.CollectionName(submissionstore.CollectionPath(tenantID, models.CollectionQuotes))
	if err := ensureIndexSet(ctx, db.Collection(quotes), quoteIndexes()); err != nil {
		problems = append(problems, quotes+": "+err.Error())
	}
	inquiries := submissionstore.CollectionName(submissionstore.CollectionPath(tenantID, models.CollectionInquiries))
	if err := ensureIndexSet(ctx, db.Collection(inquiries), inquiryIndexes()); err != nil {
		problems = append(problems, inquiries+": "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func quoteIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_quote_created_desc"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_quote_email_created"),
		},
		{
			Keys:    bson.D{{Key: "programId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_quote_program_created"),
		},
	}
}

func inquiryIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_inquiry_created_desc"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_inquiry_email_created"),
		},
	}
}

type existingIndex struct {
	Name string `bson:"name"`
	Key  bson.D `bson:"key"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

// listIndexes maps key signature to the existing index with those keys.
// A collection that does not exist yet has no indexes.
func listIndexes(ctx context.Context, coll *mongo.Collection) (map[string]existingIndex, error) {
	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := map[string]existingIndex{}
	for cur.Next(ctx) {
		var idx existingIndex
		if err := cur.Decode(&idx); err != nil {
			zap.L().Warn("failed to decode existing index",
				zap.String("collection", coll.Name()),
				zap.Error(err))
			continue
		}
		out[keySig(idx.Key)] = idx
	}
	return out, cur.Err()
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, want []mongo.IndexModel) error {
	existing, err := listIndexes(ctx, coll)
	if err != nil {
		// Listing fails on some deployments before first insert; create blindly.
		existing = map[string]existingIndex{}
	}

	var errs []string
	for _, m := range want {
		desiredName := ""
		if m.Options != nil && m.Options.Name != nil {
			desiredName = *m.Options.Name
		}
		desiredSig := keySig(m.Keys.(bson.D))
		start := time.Now()

		if ex, ok := existing[desiredSig]; ok {
			if desiredName == "" || ex.Name == desiredName {
				zap.L().Info("reusing existing index",
					zap.String("collection", coll.Name()),
					zap.String("name", ex.Name),
					zap.String("keys", desiredSig))
				continue
			}
			// Same keys under another name: drop and recreate so names stay predictable.
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				errs = append(errs, fmt.Sprintf("%s(%s): rename drop failed: %v", coll.Name(), desiredName, err))
				continue
			}
		}

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
			continue
		}
		zap.L().Info("index created",
			zap.String("collection", coll.Name()),
			zap.String("name", desiredName),
			zap.String("keys", desiredSig),
			zap.String("took", time.Since(start).String()))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
