package submissionstore_test

import (
	"testing"
	"time"

	submissionstore "github.com/empoderata/academy/internal/app/store/submissions"
	"github.com/empoderata/academy/internal/domain/models"
	"github.com/empoderata/academy/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMongoStore_AddAssignsDistinctIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := submissionstore.NewMongo(db)
	path := submissionstore.CollectionPath("empodera", models.CollectionInquiries)
	rec := models.InquiryRecord{
		Type:      models.RecordTypeInquiry,
		FullName:  "Naledi Mkhize",
		Email:     "naledi@example.com",
		Message:   "Please call me",
		CreatedAt: time.Now().UTC(),
	}

	id1, err := store.Add(ctx, path, rec)
	if err != nil {
		t.Fatalf("first Add: %v", err)
	}
	id2, err := store.Add(ctx, path, rec)
	if err != nil {
		t.Fatalf("second Add: %v", err)
	}
	if id1 == "" || id1 == id2 {
		t.Fatalf("expected two distinct ids, got %q and %q", id1, id2)
	}

	coll := db.Collection(submissionstore.CollectionName(path))
	n, err := coll.CountDocuments(ctx, bson.M{"email": "naledi@example.com"})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 stored inquiries, got %d", n)
	}

	var got models.InquiryRecord
	if err := coll.FindOne(ctx, bson.M{"_id": id1}).Decode(&got); err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if got.Type != models.RecordTypeInquiry || got.FullName != "Naledi Mkhize" {
		t.Errorf("stored record mismatch: %+v", got)
	}
}
