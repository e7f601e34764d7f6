package database

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/4GeeksAcademy/cdavis-starwars-api/config"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := config.Config{
		DatabasePath: "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		GormLogLevel: "silent",
	}
	db, err := InitGormDB(cfg)
	require.NoError(t, err)
	require.NoError(t, AutoMigrateModels(db))

	t.Cleanup(func() {
		_ = Close(db)
	})
	return db
}
