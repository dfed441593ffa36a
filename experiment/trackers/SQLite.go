package trackers

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	ts "github.com/samuelfneumann/farl/timestep"
)

const createEpisodes = `CREATE TABLE IF NOT EXISTS episodes (
	run      TEXT    NOT NULL,
	episode  INTEGER NOT NULL,
	total    REAL    NOT NULL,
	length   INTEGER NOT NULL,
	end_type TEXT    NOT NULL,
	PRIMARY KEY (run, episode)
)`

// Episode is a single finished episode recorded by a SQLite Tracker
type Episode struct {
	Run     string
	Episode int
	Return  float64
	Length  int
	EndType string
}

// SQLite tracks the return, length and end type of each episode in
// an experiment, writing one row per episode to a SQLite database as
// soon as the episode finishes. Rows are keyed by a random run ID so
// that many experiments can share a database.
type SQLite struct {
	db            *sql.DB
	run           string
	episode       int
	currentReturn float64
	err           error
}

// NewSQLite opens the SQLite database at dsn, creating the episodes
// table if needed. Use ":memory:" for an in-memory database.
func NewSQLite(dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "newSQLite")
	}

	// Each connection to an in-memory database sees a new database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createEpisodes); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "newSQLite: could not create table")
	}

	return &SQLite{db: db, run: uuid.New().String()}, nil
}

// Run returns the ID of the run being tracked
func (s *SQLite) Run() string {
	return s.run
}

// Track accumulates the rewards of the current episode and records
// the episode once it has finished. Errors are reported by Save.
func (s *SQLite) Track(step ts.TimeStep) {
	if s.err != nil {
		return
	}

	if step.First() {
		s.currentReturn = 0
		return
	}
	s.currentReturn += step.Reward

	if !step.Last() {
		return
	}

	s.episode++
	_, err := s.db.Exec(`INSERT INTO episodes
		(run, episode, total, length, end_type) VALUES (?, ?, ?, ?, ?)`,
		s.run, s.episode, s.currentReturn, step.Number,
		step.EndType().String())
	if err != nil {
		s.err = errors.Wrapf(err, "track: could not record episode %d",
			s.episode)
	}
	s.currentReturn = 0
}

// Episodes returns the episodes recorded for a run, in order
func (s *SQLite) Episodes(run string) ([]Episode, error) {
	rows, err := s.db.Query(`SELECT run, episode, total, length, end_type
		FROM episodes WHERE run = ? ORDER BY episode`, run)
	if err != nil {
		return nil, errors.Wrap(err, "episodes")
	}
	defer rows.Close()

	var episodes []Episode
	for rows.Next() {
		var e Episode
		if err := rows.Scan(&e.Run, &e.Episode, &e.Return, &e.Length,
			&e.EndType); err != nil {
			return nil, errors.Wrap(err, "episodes")
		}
		episodes = append(episodes, e)
	}
	return episodes, rows.Err()
}

// Save reports any error that occurred while tracking. Episodes are
// written as they finish, so nothing else needs to be saved.
func (s *SQLite) Save() error {
	return s.err
}

// Close closes the database
func (s *SQLite) Close() error {
	return s.db.Close()
}
