package database

import (
	"testing"

	"schoolsite/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// The schema must migrate on sqlite as well as postgres: every suite in this
// repo runs against an in-memory sqlite database.
func TestMigrateSQLite(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	t.Run("ids are generated client-side", func(t *testing.T) {
		user := &model.User{Email: "someone@school.edu", Name: "Someone", Password: "x"}
		require.NoError(t, db.Create(user).Error)
		assert.NotEqual(t, uuid.Nil, user.ID)
	})

	t.Run("unique violations are translated", func(t *testing.T) {
		dup := &model.User{Email: "someone@school.edu", Name: "Someone Else", Password: "x"}
		err := db.Create(dup).Error
		require.Error(t, err)
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})
}
