package history

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"reword/internal/domain"
)

// ExportSQLite writes the given history entries into a SQLite database at
// dest, creating the table if needed. Existing rows are preserved; this is
// an archive, not a sync.
func ExportSQLite(entries []domain.HistoryEntry, dest string) error {
	db, err := sql.Open("sqlite", dest)
	if err != nil {
		return fmt.Errorf("open archive %s: %w", dest, err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS formatting_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT,
		task TEXT,
		input_length INTEGER,
		output_length INTEGER
	);`); err != nil {
		return fmt.Errorf("init archive schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO formatting_history
		(timestamp, task, input_length, output_length) VALUES (?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, entry := range entries {
		if _, err := stmt.Exec(
			entry.Timestamp.Format("2006-01-02 15:04:05"),
			entry.Task,
			entry.InputLength,
			entry.OutputLength,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert archive row: %w", err)
		}
	}
	return tx.Commit()
}
