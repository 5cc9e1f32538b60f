package bootstrap

import (
	"testing"

	"github.com/mnogodumalon/kurs56/internal/app/reporting"
	snapshotstore "github.com/mnogodumalon/kurs56/internal/app/store/snapshot"
	"github.com/mnogodumalon/kurs56/internal/testutil"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func TestValidateConfig(t *testing.T) {
	valid := AppConfig{
		MongoURI:      "mongodb://localhost:27017",
		MongoDatabase: "kurs56",
		UpcomingLimit: 5,
	}

	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{"valid", func(c *AppConfig) {}, false},
		{"bad uri", func(c *AppConfig) { c.MongoURI = "postgres://nope" }, true},
		{"empty database", func(c *AppConfig) { c.MongoDatabase = "" }, true},
		{"zero upcoming limit", func(c *AppConfig) { c.UpcomingLimit = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := ValidateConfig(nil, cfg, testLogger())
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestStartup_WarmsDashboard(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreateCourse(ctx, "Algebra", "active", "2031-01-15")
	fx.CreateCourse(ctx, "Geometry", "planned", "")

	loader := snapshotstore.NewLoader(db)
	deps := DBDeps{
		MongoClient:   db.Client(),
		MongoDatabase: db,
		Loader:        loader,
		Model:         reporting.NewModel(loader, 5, testLogger()),
	}
	appCfg := AppConfig{InitialLoad: true, UpcomingLimit: 5}

	if err := Startup(ctx, nil, appCfg, deps, testLogger()); err != nil {
		t.Fatalf("Startup failed: %v", err)
	}

	if got := deps.Model.State(); got != reporting.StateLoaded {
		t.Fatalf("model state = %v, want %v", got, reporting.StateLoaded)
	}
	view, ok := deps.Model.View()
	if !ok {
		t.Fatal("expected a view after startup warm load")
	}
	if view.Counts.Courses != 2 {
		t.Errorf("courses = %d, want 2", view.Counts.Courses)
	}
}

func TestStartup_SkipsLoadWhenDisabled(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	loader := snapshotstore.NewLoader(db)
	deps := DBDeps{
		MongoClient:   db.Client(),
		MongoDatabase: db,
		Loader:        loader,
		Model:         reporting.NewModel(loader, 5, testLogger()),
	}
	appCfg := AppConfig{InitialLoad: false, UpcomingLimit: 5}

	if err := Startup(ctx, nil, appCfg, deps, testLogger()); err != nil {
		t.Fatalf("Startup failed: %v", err)
	}

	if got := deps.Model.State(); got != reporting.StateIdle {
		t.Errorf("model state = %v, want %v", got, reporting.StateIdle)
	}
}
