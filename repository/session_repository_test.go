package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jooseppp/soveldaja-kassa-front/entity"
)

func newRepo(t *testing.T) *SessionRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.TerminalState{}))
	return NewSessionRepository(db)
}

func TestSelectedRegisterAbsentMeansEmpty(t *testing.T) {
	r := newRepo(t)
	id, err := r.SelectedRegisterID()
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestSaveThenReadBack(t *testing.T) {
	r := newRepo(t)
	require.NoError(t, r.SaveSelectedRegister("3"))

	id, err := r.SelectedRegisterID()
	require.NoError(t, err)
	assert.Equal(t, "3", id)

	// overwrite, not duplicate
	require.NoError(t, r.SaveSelectedRegister("7"))
	id, err = r.SelectedRegisterID()
	require.NoError(t, err)
	assert.Equal(t, "7", id)
}

func TestClear(t *testing.T) {
	r := newRepo(t)
	require.NoError(t, r.SaveSelectedRegister("3"))
	require.NoError(t, r.Clear())

	id, err := r.SelectedRegisterID()
	require.NoError(t, err)
	assert.Empty(t, id)

	// clearing twice is fine
	require.NoError(t, r.Clear())
}
