package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"fpt/internal/config"
	"fpt/internal/domain"
)

var validDatabaseName = regexp.MustCompile(`^[A-Za-z0-9_]{1,64}$`)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		total_fixtures INT NOT NULL,
		passed_fixtures INT NOT NULL,
		failed_fixtures INT NOT NULL,
		errored_fixtures INT NOT NULL,
		policy VARCHAR(32) NOT NULL,
		duration_seconds DOUBLE NOT NULL,
		workers INT NOT NULL,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS failures (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		run_id BIGINT NOT NULL,
		fixture VARCHAR(255) NOT NULL,
		dir TEXT NOT NULL,
		status VARCHAR(16) NOT NULL,
		input TEXT NOT NULL,
		expected TEXT NOT NULL,
		actual TEXT NOT NULL,
		stderr TEXT NOT NULL,
		message TEXT NOT NULL,
		resolved BOOLEAN NOT NULL DEFAULT FALSE,
		UNIQUE KEY run_fixture (run_id, fixture),
		FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
	)`,
}

// MySQLStorage keeps run history in a MySQL database
type MySQLStorage struct {
	cfg *config.Config
}

// NewMySQLStorage creates a new MySQLStorage
func NewMySQLStorage(cfg *config.Config) *MySQLStorage {
	return &MySQLStorage{cfg: cfg}
}

// EnsureSchema creates the results database and its tables if they don't exist
func (s *MySQLStorage) EnsureSchema() error {
	name := s.cfg.Database.Name
	if !isValidDatabaseName(name) {
		return fmt.Errorf("invalid database name: %s", name)
	}

	server, err := s.open(false)
	if err != nil {
		return err
	}
	defer server.Close()

	if _, err := server.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", name)); err != nil {
		return fmt.Errorf("failed to create database %s: %w", name, err)
	}

	db, err := s.open(true)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// Save inserts a run row and one row per failure in a single transaction
func (s *MySQLStorage) Save(results []domain.RunResult, duration time.Duration, workers int, policy string) error {
	output := BuildOutput(results, duration, workers, policy)

	db, err := s.open(true)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	m := output.Meta
	res, err := tx.Exec(
		`INSERT INTO runs (total_fixtures, passed_fixtures, failed_fixtures, errored_fixtures, policy, duration_seconds, workers, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.TotalFixtures, m.PassedFixtures, m.FailedFixtures, m.ErroredFixtures, m.Policy, m.DurationSeconds, m.Workers, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("read run id: %w", err)
	}

	for _, f := range output.Details {
		if _, err := tx.Exec(
			`INSERT INTO failures (run_id, fixture, dir, status, input, expected, actual, stderr, message, resolved)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, f.Fixture, f.Dir, string(f.Status), f.Input, f.Expected, f.Actual, f.Stderr, f.Message, f.Resolved,
		); err != nil {
			return fmt.Errorf("insert failure %s: %w", f.Fixture, err)
		}
	}

	return tx.Commit()
}

// Load returns the most recent run
func (s *MySQLStorage) Load() (*domain.RunOutput, error) {
	db, err := s.open(true)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	runID, output, err := latestRun(db)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT fixture, dir, status, input, expected, actual, stderr, message, resolved
		FROM failures WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("query failures: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var f domain.Failure
		var status string
		if err := rows.Scan(&f.Fixture, &f.Dir, &status, &f.Input, &f.Expected, &f.Actual, &f.Stderr, &f.Message, &f.Resolved); err != nil {
			return nil, fmt.Errorf("scan failure: %w", err)
		}
		f.Status = domain.Status(status)
		output.Details = append(output.Details, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read failures: %w", err)
	}
	return output, nil
}

// SaveOutput stores resolved flags of the latest run
func (s *MySQLStorage) SaveOutput(output *domain.RunOutput) error {
	db, err := s.open(true)
	if err != nil {
		return err
	}
	defer db.Close()

	runID, _, err := latestRun(db)
	if err != nil {
		return err
	}
	for _, f := range output.Details {
		if _, err := db.Exec(`UPDATE failures SET resolved = ? WHERE run_id = ? AND fixture = ?`, f.Resolved, runID, f.Fixture); err != nil {
			return fmt.Errorf("update failure %s: %w", f.Fixture, err)
		}
	}
	return nil
}

func latestRun(db *sql.DB) (int64, *domain.RunOutput, error) {
	var (
		runID     int64
		m         domain.RunMeta
		createdAt time.Time
	)
	err := db.QueryRow(
		`SELECT id, total_fixtures, passed_fixtures, failed_fixtures, errored_fixtures, policy, duration_seconds, workers, created_at
		FROM runs ORDER BY id DESC LIMIT 1`,
	).Scan(&runID, &m.TotalFixtures, &m.PassedFixtures, &m.FailedFixtures, &m.ErroredFixtures, &m.Policy, &m.DurationSeconds, &m.Workers, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil, fmt.Errorf("no runs stored yet")
	}
	if err != nil {
		return 0, nil, fmt.Errorf("query latest run: %w", err)
	}
	m.Duration = time.Duration(m.DurationSeconds * float64(time.Second)).String()
	m.Timestamp = createdAt.Format(time.RFC3339)
	return runID, &domain.RunOutput{Meta: m, Details: []domain.Failure{}}, nil
}

func (s *MySQLStorage) open(withName bool) (*sql.DB, error) {
	db, err := sql.Open("mysql", s.cfg.Database.DSN(withName))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database server: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database server: %w", err)
	}
	return db, nil
}

// isValidDatabaseName allows only names that are safe to quote as identifiers
func isValidDatabaseName(name string) bool {
	return validDatabaseName.MatchString(name)
}
