// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/dalemusser/waffle/config"
	submissionstore "github.com/empoderata/academy/internal/app/store/submissions"
	"github.com/empoderata/academy/internal/app/system/indexes"
	"github.com/empoderata/academy/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

// datastoreScope is the OAuth scope Firestore requests need.
const datastoreScope = "https://www.googleapis.com/auth/datastore"

// ConnectDB builds the client for the configured store backend.
//
// Missing Firebase credentials are not fatal: the service starts without a
// store and logs a warning, and every submission is then acknowledged
// without being persisted. A configured backend that cannot be reached is
// an error.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	switch appCfg.StoreBackend {
	case BackendFirestore:
		return connectFirestore(ctx, appCfg, logger)
	case BackendMongo:
		return connectMongo(ctx, appCfg, logger)
	default:
		logger.Warn("store backend disabled; submissions will not be persisted")
		return DBDeps{}, nil
	}
}

func connectFirestore(ctx context.Context, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	if !appCfg.FirebaseConfigured() {
		logger.Warn("Firebase credentials not configured; submissions will not be persisted",
			zap.Bool("project_id", appCfg.FirebaseProjectID != ""),
			zap.Bool("client_email", appCfg.FirebaseClientEmail != ""),
			zap.Bool("private_key", appCfg.FirebasePrivateKey != ""))
		return DBDeps{}, nil
	}

	raw, err := serviceAccountJSON(appCfg)
	if err != nil {
		return DBDeps{}, err
	}
	creds, err := google.CredentialsFromJSON(ctx, raw, datastoreScope)
	if err != nil {
		return DBDeps{}, fmt.Errorf("firebase credentials: %w", err)
	}

	client, err := firestore.NewClient(ctx, appCfg.FirebaseProjectID, option.WithCredentials(creds))
	if err != nil {
		return DBDeps{}, fmt.Errorf("firestore client: %w", err)
	}
	logger.Info("connected to Firestore", zap.String("project_id", appCfg.FirebaseProjectID))

	return DBDeps{
		Firestore:   client,
		Submissions: submissionstore.NewFirestore(client),
	}, nil
}

// serviceAccountJSON assembles a service-account key file from the three
// configured values.
func serviceAccountJSON(appCfg AppConfig) ([]byte, error) {
	raw, err := json.Marshal(map[string]string{
		"type":         "service_account",
		"project_id":   appCfg.FirebaseProjectID,
		"client_email": appCfg.FirebaseClientEmail,
		"private_key":  appCfg.FirebasePrivateKey,
		"token_uri":    google.JWTTokenURL,
	})
	if err != nil {
		return nil, fmt.Errorf("encode service account: %w", err)
	}
	return raw, nil
}

func connectMongo(ctx context.Context, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(appCfg.MongoURI))
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}
	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))

	db := client.Database(appCfg.MongoDatabase)
	return DBDeps{
		MongoClient:   client,
		MongoDatabase: db,
		Submissions:   submissionstore.NewMongo(db),
	}, nil
}

// EnsureSchema creates the submission indexes when MongoDB is the store.
// Firestore needs no schema.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoDatabase == nil {
		return nil
	}
	if err := indexes.EnsureAll(ctx, deps.MongoDatabase, appCfg.AppID); err != nil {
		logger.Error("ensure indexes failed", zap.Error(err))
		return err
	}
	return nil
}
