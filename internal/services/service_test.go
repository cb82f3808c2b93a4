package services

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mkendrick/jobtrack/internal/database"
	"github.com/mkendrick/jobtrack/internal/dtos"
	"github.com/mkendrick/jobtrack/internal/models"
)

// newTestDB opens an in-memory sqlite store with the production schema.
// MaxOpenConns(1) keeps every query on the single in-memory connection.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

type testServices struct {
	db           *gorm.DB
	associations *AssociationService
	tags         *TagService
	applications *ApplicationService
	dashboard    *DashboardService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	db := newTestDB(t)
	associations := NewAssociationService(db)
	return &testServices{
		db:           db,
		associations: associations,
		tags:         NewTagService(db, associations),
		applications: NewApplicationService(db, associations),
		dashboard:    NewDashboardService(db),
	}
}

func seedTag(t *testing.T, ts *testServices, name string) *models.Tag {
	t.Helper()
	tag, err := ts.tags.Create(context.Background(), name)
	require.NoError(t, err)
	return tag
}

func seedApplication(t *testing.T, ts *testServices, company, position, date string, tagIDs ...uint) *dtos.ApplicationSummary {
	t.Helper()
	summary, err := ts.applications.Create(context.Background(), &dtos.ApplicationCreateRequest{
		CompanyName: company,
		Position:    position,
		DateApplied: date,
		TagIDs:      tagIDs,
	})
	require.NoError(t, err)
	return summary
}
