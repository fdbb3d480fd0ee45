package migrate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dangerclosesec/crmaster/internal/migrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsAreOrdered(t *testing.T) {
	for i, mig := range migrate.Migrations {
		assert.Equal(t, i+1, mig.Version)
		assert.NotEmpty(t, mig.SQL)
	}
}

func TestUpAppliesPendingMigrations(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := &migrate.Migrator{DB: db, Migrations: []migrate.Migration{
		{Version: 1, Description: "one", SQL: "CREATE TABLE a (id INT)"},
		{Version: 2, Description: "two", SQL: "CREATE TABLE b (id INT)"},
	}}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_versions").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(version\), 0\) FROM schema_versions`).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE b").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO schema_versions").WithArgs(2, "two").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	applied, err := m.Up(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{2}, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpRollsBackFailedMigration(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := &migrate.Migrator{DB: db, Migrations: []migrate.Migration{
		{Version: 1, Description: "one", SQL: "CREATE TABLE a (id INT)"},
	}}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_versions").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COALESCE").WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE a").WillReturnError(errors.New("syntax error"))
	mock.ExpectRollback()

	applied, err := m.Up(context.Background())
	assert.Error(t, err)
	assert.Empty(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}
