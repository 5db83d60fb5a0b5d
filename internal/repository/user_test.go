package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealtrack/mealtrack-go/internal/model"
)

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "user not found", ErrUserNotFound.Error())
	assert.Equal(t, "email already exists", ErrDuplicateEmail.Error())
}

func TestIsDuplicateEntryError(t *testing.T) {
	assert.False(t, isDuplicateEntryError(nil))
	assert.False(t, isDuplicateEntryError(ErrUserNotFound))
	assert.False(t, isDuplicateEntryError(&mysql.MySQLError{Number: 1146, Message: "table missing"}))
	assert.True(t, isDuplicateEntryError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}))
	assert.True(t, isDuplicateEntryError(errors.Join(errors.New("insert"), &mysql.MySQLError{Number: 1062})))
}

func TestUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (email, auth_hash) VALUES (?, ?)")).
		WithArgs("a@example.com", "hash").
		WillReturnResult(sqlmock.NewResult(7, 1))

	user := &model.User{Email: "a@example.com", AuthHash: "hash"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	assert.Equal(t, int64(7), user.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@example.com'"})

	err = NewUserRepository(db).Create(context.Background(), &model.User{Email: "a@example.com"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT id, email, auth_hash, created_at, updated_at FROM users WHERE email = ?").
		WithArgs("a@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "auth_hash", "created_at", "updated_at"}).
			AddRow(3, "a@example.com", "hash", now, now))

	user, err := NewUserRepository(db).GetByEmail(context.Background(), "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, "hash", user.AuthHash)
}

func TestUserRepository_GetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM users WHERE id = ?").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "auth_hash", "created_at", "updated_at"}))

	_, err = NewUserRepository(db).GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_Count(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := NewUserRepository(db).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestWipeAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM log_entries").WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec("DELETE FROM goals").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM users").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, WipeAll(context.Background(), db))
	require.NoError(t, mock.ExpectationsWereMet())
}
