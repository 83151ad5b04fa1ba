package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"uitp/internal/domain"
)

// History records run summaries in MySQL so results survive across machines.
// It is optional; the run command only creates one when a DSN is configured.
type History struct {
	dsn string
}

// NewHistory creates a History writer for the given DSN.
func NewHistory(dsn string) *History {
	return &History{dsn: dsn}
}

const historySchema = `CREATE TABLE IF NOT EXISTS run_history (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	ran_at VARCHAR(64) NOT NULL,
	total_cases INT NOT NULL,
	passed_cases INT NOT NULL,
	failed_cases INT NOT NULL,
	errored_cases INT NOT NULL,
	duration_seconds DOUBLE NOT NULL
)`

// Record appends one run's summary row, creating the table on first use.
func (h *History) Record(output *domain.RunOutput) error {
	db, err := sql.Open("mysql", h.dsn)
	if err != nil {
		return fmt.Errorf("open run history database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping run history database: %w", err)
	}

	if _, err := db.Exec(historySchema); err != nil {
		return fmt.Errorf("ensure run_history table: %w", err)
	}

	_, err = db.Exec(
		"INSERT INTO run_history (ran_at, total_cases, passed_cases, failed_cases, errored_cases, duration_seconds) VALUES (?, ?, ?, ?, ?, ?)",
		output.Meta.Timestamp,
		output.Meta.TotalCases,
		output.Meta.PassedCases,
		output.Meta.FailedCases,
		output.Meta.ErroredCases,
		output.Meta.DurationSeconds,
	)
	if err != nil {
		return fmt.Errorf("insert run history row: %w", err)
	}
	return nil
}
