// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/mnogodumalon/kurs56/internal/app/reporting"
	snapshotstore "github.com/mnogodumalon/kurs56/internal/app/store/snapshot"
	"github.com/mnogodumalon/kurs56/internal/app/system/workers"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
// Extend this struct as the app evolves.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// Loader bundles the per-collection stores behind the snapshot fetch.
	Loader *snapshotstore.Loader

	// Model is the shared dashboard model every request reads from.
	Model *reporting.Model

	// Refresher reloads the model in the background; nil when disabled.
	Refresher *workers.Refresher
}
