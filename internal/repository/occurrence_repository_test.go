package repository

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockRepository(t *testing.T) (OccurrenceRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewOccurrenceRepository(db), mock
}

func TestCountCreatedSince_QueryShape(t *testing.T) {
	repo, mock := newMockRepository(t)

	since := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT count(*) FROM `occurrences` WHERE created_at >= ?",
	)).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(3))

	count, err := repo.CountCreatedSince(since)
	require.NoError(t, err)
	require.EqualValues(t, 3, count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByOwner_OrdersByCreationDescending(t *testing.T) {
	repo, mock := newMockRepository(t)

	rows := sqlmock.NewRows([]string{"id", "categoria", "user_id", "status"}).
		AddRow("occ-2", "Resgate", "user-1", "Open").
		AddRow("occ-1", "Incêndio", "user-1", "Closed")

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `occurrences` WHERE user_id = ? ORDER BY created_at DESC",
	)).
		WithArgs("user-1").
		WillReturnRows(rows)

	occurrences, err := repo.ListByOwner("user-1")
	require.NoError(t, err)
	require.Len(t, occurrences, 2)
	require.Equal(t, "occ-2", occurrences[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
