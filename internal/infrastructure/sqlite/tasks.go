package sqlite

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/vinovest/sqlx"
	_ "modernc.org/sqlite" // Pure-Go SQLite driver
)

// DefaultDBName is the file the task app writes.
const DefaultDBName = "task_manager.db"

const countIncompleteQuery = `SELECT COUNT(*) FROM tasks WHERE isCompleted = 0`

// TaskStore reads the task database owned by the app. The file is opened
// read-only per call, so the app can create or replace it at any time.
type TaskStore struct {
	path string
}

func NewTaskStore(path string) *TaskStore {
	if path == "" {
		path = DefaultDBName
	}
	return &TaskStore{path: path}
}

// CountIncomplete returns the number of open tasks. A missing database file
// means the app has not stored anything yet and counts as zero.
func (s *TaskStore) CountIncomplete(ctx context.Context) (int, error) {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("stat task db: %w", err)
	}

	db, err := sqlx.Open("sqlite", readOnlyDSN(s.path))
	if err != nil {
		return 0, fmt.Errorf("open task db: %w", err)
	}
	defer func() { _ = db.Close() }()

	var count int
	if err := db.GetContext(ctx, &count, countIncompleteQuery); err != nil {
		return 0, fmt.Errorf("query incomplete tasks: %w", err)
	}
	return count, nil
}

// readOnlyDSN builds an SQLite URI filename. The app may be writing while we
// read, hence the busy timeout.
func readOnlyDSN(path string) string {
	escaped := (&url.URL{Path: filepath.ToSlash(path)}).EscapedPath()
	return "file:" + escaped + "?mode=ro&_pragma=busy_timeout(5000)"
}
