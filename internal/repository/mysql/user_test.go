package mysql_test

import (
	"context"
	"testing"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/newsflow-app/newsflow-api/domain"
	"github.com/newsflow-app/newsflow-api/internal/repository/mysql"
)

func userRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "email", "password", "role",
		"preferred_categories", "country", "created_at", "updated_at",
	}).AddRow(1, "Ada", "ada@example.com", "$2a$10$hash", "user",
		[]byte(`["technology","science"]`), "us", now, now)
}

func TestUserGetByEmail(t *testing.T) {
	db, mock := newTestDB(t)
	repo := mysql.NewUserRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WillReturnRows(userRows(time.Now()))

	u, err := repo.GetByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, []string{"technology", "science"}, u.PreferredCategories)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetByIDNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := mysql.NewUserRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserInsert(t *testing.T) {
	db, mock := newTestDB(t)
	repo := mysql.NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectCommit()

	u := &domain.User{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "$2a$10$hash",
		Role:     domain.RoleUser,
	}
	require.NoError(t, repo.Insert(context.Background(), u))
	assert.Equal(t, int64(9), u.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserInsertDuplicateEmail(t *testing.T) {
	db, mock := newTestDB(t)
	repo := mysql.NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	err := repo.Insert(context.Background(), &domain.User{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "$2a$10$hash",
		Role:     domain.RoleUser,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCountByRole(t *testing.T) {
	db, mock := newTestDB(t)
	repo := mysql.NewUserRepository(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users` WHERE role = \\?").
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(2))

	count, err := repo.CountByRole(context.Background(), domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
