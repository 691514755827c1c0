package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historyColumns() []string {
	return []string{"id", "buyer", "employee_ids", "service_ids", "when", "currency", "overrides",
		"created_at", "finished_at", "updated_at", "source_appointment_id"}
}

func TestHistoryListNewestFirst(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewHistoryStore(gdb)

	now := time.Now()
	rows := sqlmock.NewRows(historyColumns()).
		AddRow("h1", "Sara", []byte(`[]`), []byte(`["svc1"]`), now, "IQD", []byte(`{}`), now, nil, nil, "")
	mock.ExpectQuery(`SELECT \* FROM "history_records" ORDER BY created_at desc`).WillReturnRows(rows)

	records, err := s.List(context.Background(), HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "h1", records[0].ID)
	assert.Nil(t, records[0].FinishedAt)
}

func TestHistoryListDayWindow(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewHistoryStore(gdb)

	from := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 0, 1)

	mock.ExpectQuery(`SELECT \* FROM "history_records" WHERE "when" >= \$1 AND "when" < \$2 ORDER BY created_at desc`).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows(historyColumns()))

	_, err := s.List(context.Background(), HistoryFilter{From: &from, To: &to})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryPatchRejectsBadIDWithoutQuerying(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewHistoryStore(gdb)

	buyer := "Sara"
	_, err := s.Patch(context.Background(), "   ", BookingPatch{Buyer: &buyer})
	assert.True(t, IsValidation(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryPatchRejectsEmptyPatch(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewHistoryStore(gdb)

	_, err := s.Patch(context.Background(), "h1", BookingPatch{})
	assert.True(t, IsValidation(err), "a patch that would only bump updatedAt is rejected")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryPatchNotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewHistoryStore(gdb)

	mock.ExpectQuery(`SELECT \* FROM "history_records" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(historyColumns()))

	buyer := "Sara"
	_, err := s.Patch(context.Background(), "no-such-id", BookingPatch{Buyer: &buyer})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHistoryPatchStampsUpdatedAt(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewHistoryStore(gdb)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "history_records" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(historyColumns()).
			AddRow("ext-7", "Sara", []byte(`[]`), []byte(`["svc1"]`), now, "IQD", []byte(`{}`), now, nil, nil, ""))
	mock.ExpectExec(`UPDATE "history_records" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	buyer := "Lana"
	record, err := s.Patch(context.Background(), " ext-7 ", BookingPatch{Buyer: &buyer})
	require.NoError(t, err)
	assert.Equal(t, "Lana", record.Buyer)
	require.NotNil(t, record.UpdatedAt)
	assert.WithinDuration(t, time.Now(), *record.UpdatedAt, time.Minute)
	assert.Equal(t, "ext-7", record.ID, "external string ids round-trip untouched")
}

func TestHistoryDeleteCounts(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewHistoryStore(gdb)

	mock.ExpectExec(`DELETE FROM "history_records" WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	count, err := s.Delete(context.Background(), "never-existed")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	_, err = s.Delete(context.Background(), "")
	assert.True(t, IsValidation(err))
}
