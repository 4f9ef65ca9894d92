package kvstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testValue struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func fallbackValue() testValue {
	return testValue{Name: "default"}
}

func newTestStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	store := New(sqlx.NewDb(db, "sqlite3"))
	store.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return store, mock
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      testValue
	}{
		{
			name: "returns stored value",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"value"}).
					AddRow(`{"name":"stored","count":3}`)
				mock.ExpectQuery("SELECT value FROM kv_entries WHERE key = ?").
					WithArgs("revtrack_questions").
					WillReturnRows(rows)
			},
			want: testValue{Name: "stored", Count: 3},
		},
		{
			name: "missing key falls back to default",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT value FROM kv_entries WHERE key = ?").
					WithArgs("revtrack_questions").
					WillReturnRows(sqlmock.NewRows([]string{"value"}))
			},
			want: testValue{Name: "default"},
		},
		{
			name: "query error falls back to default",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT value FROM kv_entries WHERE key = ?").
					WithArgs("revtrack_questions").
					WillReturnError(fmt.Errorf("database is locked"))
			},
			want: testValue{Name: "default"},
		},
		{
			name: "corrupt value falls back to default",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"value"}).
					AddRow(`{"name": not json`)
				mock.ExpectQuery("SELECT value FROM kv_entries WHERE key = ?").
					WithArgs("revtrack_questions").
					WillReturnRows(rows)
			},
			want: testValue{Name: "default"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newTestStore(t)
			tt.setupMock(mock)

			got := Load(context.Background(), store, KeyQuestions, fallbackValue)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSave(t *testing.T) {
	t.Run("upserts the serialized value", func(t *testing.T) {
		store, mock := newTestStore(t)
		mock.ExpectExec("INSERT INTO kv_entries").
			WithArgs("revtrack_user_stats", `{"name":"saved","count":1}`, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		Save(context.Background(), store, KeyUserStats, testValue{Name: "saved", Count: 1})
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("write failure is swallowed", func(t *testing.T) {
		store, mock := newTestStore(t)
		mock.ExpectExec("INSERT INTO kv_entries").
			WillReturnError(fmt.Errorf("disk I/O error"))

		Save(context.Background(), store, KeyUserStats, testValue{Name: "saved"})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_Delete(t *testing.T) {
	t.Run("removes the key", func(t *testing.T) {
		store, mock := newTestStore(t)
		mock.ExpectExec("DELETE FROM kv_entries WHERE key = ?").
			WithArgs("revtrack_settings").
			WillReturnResult(sqlmock.NewResult(0, 1))

		store.Delete(context.Background(), KeySettings)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete failure is swallowed", func(t *testing.T) {
		store, mock := newTestStore(t)
		mock.ExpectExec("DELETE FROM kv_entries WHERE key = ?").
			WithArgs("revtrack_settings").
			WillReturnError(fmt.Errorf("database is locked"))

		store.Delete(context.Background(), KeySettings)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
