// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"cloud.google.com/go/firestore"
	submissionstore "github.com/empoderata/academy/internal/app/store/submissions"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds the back-end clients built once at startup and shared by
// every handler. Only the clients for the selected backend are set.
//
// Submissions is nil when no backend is usable; handlers then skip
// persistence.
type DBDeps struct {
	Firestore *firestore.Client

	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	Submissions submissionstore.Writer
}
