package history

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStore_InitSchema(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewPostgresStoreWithPool(mock, "messages")

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS messages")).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, store.InitSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Append(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewPostgresStoreWithPool(mock, "messages")

	msg := NewMessage("s1", "assistant", "hello", []string{"culture", "food"})

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO messages")).
		WithArgs(msg.ID, "s1", "assistant", "hello", "culture,food", msg.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, store.Append(context.Background(), msg))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewPostgresStoreWithPool(mock, "messages")

	now := time.Now()
	rows := pgxmock.NewRows([]string{"id", "session_id", "role", "content", "agents_used", "created_at"}).
		AddRow("m2", "s1", "assistant", "second", "culture", now).
		AddRow("m1", "s1", "user", "first", "", now.Add(-time.Minute))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, session_id, role, content, agents_used, created_at")).
		WithArgs("s1", 10).
		WillReturnRows(rows)

	msgs, err := store.List(context.Background(), "s1", 10)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "second", msgs[0].Content)
	assert.Equal(t, []string{"culture"}, msgs[0].AgentsUsed)
	assert.Nil(t, msgs[1].AgentsUsed)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Clear(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewPostgresStoreWithPool(mock, "messages")

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM messages WHERE session_id = $1")).
		WithArgs("s1").
		WillReturnResult(pgxmock.NewResult("DELETE", 2))

	require.NoError(t, store.Clear(context.Background(), "s1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ExecError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewPostgresStoreWithPool(mock, "messages")

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO messages")).
		WillReturnError(errors.New("connection refused"))

	err = store.Append(context.Background(), NewMessage("s1", "user", "hello", nil))
	assert.ErrorContains(t, err, "failed to save message")
}
