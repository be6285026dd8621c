package indexes_test

import (
	"testing"

	"github.com/empoderata/academy/internal/app/system/indexes"
	"github.com/empoderata/academy/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

const tenant = "empodera"

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db, tenant); err != nil {
		t.Fatalf("first EnsureAll failed: %v", err)
	}
	if err := indexes.EnsureAll(ctx, db, tenant); err != nil {
		t.Fatalf("second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_CreatesQuoteIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db, tenant); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	cur, err := db.Collection("artifacts.empodera.public.data.quotes").Indexes().List(ctx)
	if err != nil {
		t.Fatalf("list indexes failed: %v", err)
	}
	defer cur.Close(ctx)

	names := map[string]bool{}
	for cur.Next(ctx) {
		var idx bson.M
		if err := cur.Decode(&idx); err != nil {
			t.Fatalf("decode index: %v", err)
		}
		if name, ok := idx["name"].(string); ok {
			names[name] = true
		}
	}
	for _, want := range []string{"idx_quote_created_desc", "idx_quote_email_created", "idx_quote_program_created"} {
		if !names[want] {
			t.Errorf("missing index %s", want)
		}
	}
}
