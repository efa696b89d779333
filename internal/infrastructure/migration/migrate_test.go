package migration

import (
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fieldassets/internal/app/server/config"
)

type MockMigrator struct {
	mock.Mock
}

func (m *MockMigrator) Up() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockMigrator) Close() (error, error) {
	args := m.Called()
	return args.Error(0), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		DB: config.DB{DatabaseURI: "postgres://test", Migrations: "migrations"},
	}
}

func TestMigration_Up_Success(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Up").Return(nil)
	mockM.On("Close").Return(nil, nil)

	engine := func(source, db string) (Migrator, error) {
		assert.Equal(t, "file://migrations", source)
		return mockM, nil
	}

	mg := NewMigration(testConfig(), engine)
	assert.NoError(t, mg.Up())
	mockM.AssertExpectations(t)
}

func TestMigration_Up_NoChange(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Up").Return(migrate.ErrNoChange)
	mockM.On("Close").Return(nil, nil)

	engine := func(source, db string) (Migrator, error) {
		return mockM, nil
	}

	mg := NewMigration(testConfig(), engine)
	assert.NoError(t, mg.Up(), "ErrNoChange is not a failure")
	mockM.AssertExpectations(t)
}

func TestMigration_Up_EngineError(t *testing.T) {
	engineErr := errors.New("bad source")
	engine := func(source, db string) (Migrator, error) {
		return nil, engineErr
	}

	mg := NewMigration(testConfig(), engine)
	assert.ErrorIs(t, mg.Up(), engineErr)
}

func TestMigration_Up_UpError(t *testing.T) {
	mockM := new(MockMigrator)
	upErr := errors.New("dirty database")
	mockM.On("Up").Return(upErr)
	mockM.On("Close").Return(nil, nil)

	engine := func(source, db string) (Migrator, error) {
		return mockM, nil
	}

	mg := NewMigration(testConfig(), engine)
	assert.ErrorIs(t, mg.Up(), upErr)
	mockM.AssertExpectations(t)
}
