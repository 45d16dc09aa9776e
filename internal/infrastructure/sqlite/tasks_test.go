package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinovest/sqlx"
)

func seedTaskDB(t *testing.T, completed ...bool) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultDBName)
	db, err := sqlx.Open("sqlite", path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	_, err = db.Exec(`CREATE TABLE tasks (id INTEGER PRIMARY KEY, title TEXT NOT NULL, isCompleted INTEGER NOT NULL DEFAULT 0)`)
	require.NoError(t, err)
	for i, done := range completed {
		v := 0
		if done {
			v = 1
		}
		_, err = db.Exec(`INSERT INTO tasks (id, title, isCompleted) VALUES (?, ?, ?)`, i+1, "task", v)
		require.NoError(t, err)
	}
	return path
}

func TestCountIncomplete_CountsOpenTasksOnly(t *testing.T) {
	path := seedTaskDB(t, false, true, false, false, true)

	n, err := NewTaskStore(path).CountIncomplete(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestCountIncomplete_EmptyTable(t *testing.T) {
	path := seedTaskDB(t)

	n, err := NewTaskStore(path).CountIncomplete(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestCountIncomplete_MissingFile_IsZero(t *testing.T) {
	n, err := NewTaskStore(filepath.Join(t.TempDir(), "absent.db")).CountIncomplete(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestCountIncomplete_NoTasksTable_ReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.db")
	db, err := sqlx.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE notes (id INTEGER)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = NewTaskStore(path).CountIncomplete(context.Background())
	assert.ErrorContains(t, err, "query incomplete tasks")
}

func TestCountIncomplete_DoesNotWrite(t *testing.T) {
	path := seedTaskDB(t, false)
	store := NewTaskStore(path)

	_, err := store.CountIncomplete(context.Background())
	require.NoError(t, err)

	db, err := sqlx.Open("sqlite", readOnlyDSN(path))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	_, err = db.Exec(`INSERT INTO tasks (id, title) VALUES (99, 'x')`)
	assert.Error(t, err, "read-only DSN must reject writes")
}

func TestReadOnlyDSN(t *testing.T) {
	assert.Equal(t, "file:/tmp/task_manager.db?mode=ro&_pragma=busy_timeout(5000)", readOnlyDSN("/tmp/task_manager.db"))
}

func TestReadOnlyDSN_EscapesQueryCharacters(t *testing.T) {
	assert.Equal(t, "file:/tmp/a%3Fb.db?mode=ro&_pragma=busy_timeout(5000)", readOnlyDSN("/tmp/a?b.db"))
}
