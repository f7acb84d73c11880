package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/matsen/task-cli/internal/task"
	_ "modernc.org/sqlite"
)

// Index is an in-memory SQLite copy of the task list used for read-only queries.
// It is rebuilt from the tasks file on every invocation and never written to disk.
type Index struct {
	db *sql.DB
}

// selectTaskFields contains the standard field list for SELECT queries.
const selectTaskFields = `id, description, status, created_at, updated_at`

// OpenIndex opens an empty in-memory index.
func OpenIndex() (*Index, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}

	// Each connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	if err := createIndexSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Index{db: db}, nil
}

// Close closes the index.
func (x *Index) Close() error {
	return x.db.Close()
}

func createIndexSchema(db *sql.DB) error {
	schema := `
		-- position preserves insertion order from the tasks file
		CREATE TABLE IF NOT EXISTS tasks (
			position INTEGER PRIMARY KEY,
			id INTEGER NOT NULL,
			description TEXT NOT NULL,
			status TEXT NOT NULL,
			created_at TEXT,
			updated_at TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);

		CREATE VIRTUAL TABLE IF NOT EXISTS tasks_fts USING fts5(
			position UNINDEXED,
			description
		);
	`

	_, err := db.Exec(schema)
	return err
}

// RebuildFromTasks clears the index and loads tasks into it.
func (x *Index) RebuildFromTasks(tasks []task.Task) (int, error) {
	tx, err := x.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("starting rebuild: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tasks"); err != nil {
		return 0, fmt.Errorf("clearing tasks table: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM tasks_fts"); err != nil {
		return 0, fmt.Errorf("clearing tasks_fts table: %w", err)
	}

	tasksStmt, err := tx.Prepare(`
		INSERT INTO tasks (position, id, description, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing tasks insert: %w", err)
	}
	defer tasksStmt.Close()

	ftsStmt, err := tx.Prepare(`INSERT INTO tasks_fts (position, description) VALUES (?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing fts insert: %w", err)
	}
	defer ftsStmt.Close()

	for pos, t := range tasks {
		if _, err := tasksStmt.Exec(pos, t.ID, t.Description, string(t.Status), t.CreatedAt, t.UpdatedAt); err != nil {
			return 0, fmt.Errorf("inserting task %d: %w", t.ID, err)
		}
		if _, err := ftsStmt.Exec(pos, t.Description); err != nil {
			return 0, fmt.Errorf("inserting fts for task %d: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing rebuild: %w", err)
	}
	return len(tasks), nil
}

// Search performs a full-text search over descriptions.
// Results keep insertion order. A limit of 0 returns all matches.
func (x *Index) Search(query string, limit int) ([]task.Task, error) {
	ftsQuery := prepareFTSQuery(query)
	if ftsQuery == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := x.db.Query(`
		SELECT `+selectTaskFields+`
		FROM tasks
		WHERE position IN (SELECT position FROM tasks_fts WHERE tasks_fts MATCH ?)
		ORDER BY position
		LIMIT ?`, ftsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

// CountByStatus returns the number of tasks in each status.
// Every valid status is present in the result, zero if unused.
func (x *Index) CountByStatus() (map[task.Status]int, error) {
	counts := make(map[task.Status]int, len(task.ValidStatuses))
	for _, s := range task.ValidStatuses {
		counts[s] = 0
	}

	rows, err := x.db.Query(`SELECT status, COUNT(*) FROM tasks GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("counting tasks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[task.Status(status)] = n
	}
	return counts, rows.Err()
}

// Count returns the total number of tasks.
func (x *Index) Count() (int, error) {
	var count int
	err := x.db.QueryRow("SELECT COUNT(*) FROM tasks").Scan(&count)
	return count, err
}

// LatestUpdate returns the most recently updated task, or nil if the index is empty.
func (x *Index) LatestUpdate() (*task.Task, error) {
	row := x.db.QueryRow(`
		SELECT ` + selectTaskFields + `
		FROM tasks
		ORDER BY updated_at DESC, position DESC
		LIMIT 1`)

	var t task.Task
	var status string
	err := row.Scan(&t.ID, &t.Description, &status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	t.Status = task.Status(status)
	return &t, nil
}

func scanTasks(rows *sql.Rows) ([]task.Task, error) {
	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		var status string
		if err := rows.Scan(&t.ID, &t.Description, &status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		t.Status = task.Status(status)
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// prepareFTSQuery passes plain FTS5 queries through and quotes anything else
// as a single phrase. Plain queries are bare words, the AND/OR/NOT operators
// and prefix terms with a trailing *.
func prepareFTSQuery(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	for _, term := range strings.Fields(query) {
		if !isFTSBareword(strings.TrimSuffix(term, "*")) {
			query = strings.ReplaceAll(query, "\"", "\"\"")
			return "\"" + query + "\""
		}
	}

	return query
}

// isFTSBareword reports whether s can appear unquoted in an FTS5 query.
func isFTSBareword(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r >= utf8.RuneSelf || r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
