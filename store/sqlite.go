package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ayoisaiah/deepwork/internal/osutil"
	"github.com/ayoisaiah/deepwork/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	goal TEXT,
	scheduled_duration INTEGER NOT NULL,
	start_time INTEGER,
	end_time INTEGER,
	status TEXT NOT NULL DEFAULT 'scheduled',
	created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS interruptions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id INTEGER NOT NULL,
	reason TEXT NOT NULL,
	pause_time INTEGER NOT NULL,
	FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_interruptions_session_id ON interruptions(session_id);
`

// SQLite stores sessions in a SQLite database. Timestamps are kept as UTC
// unix nanoseconds.
type SQLite struct {
	db *sql.DB
}

// NewSQLite creates or opens the SQLite database at dbPath and ensures the
// schema exists.
func NewSQLite(dbPath string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), osutil.DirPermission); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := "file:" + dbPath +
		"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.SetMaxOpenConns(1) // one writer at a time

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func toNull(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}

	return sql.NullInt64{Int64: t.UnixNano(), Valid: true}
}

func fromNull(n sql.NullInt64) *time.Time {
	if !n.Valid {
		return nil
	}

	t := time.Unix(0, n.Int64).UTC()

	return &t
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*models.Session, error) {
	var (
		sess       models.Session
		goal       sql.NullString
		start, end sql.NullInt64
		status     string
		createdAt  int64
	)

	err := row.Scan(
		&sess.ID,
		&sess.Title,
		&goal,
		&sess.ScheduledDuration,
		&start,
		&end,
		&status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	sess.Status, err = models.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	if goal.Valid {
		sess.Goal = &goal.String
	}

	sess.StartTime = fromNull(start)
	sess.EndTime = fromNull(end)
	sess.CreatedAt = time.Unix(0, createdAt).UTC()

	return &sess, nil
}

const sessionColumns = `id, title, goal, scheduled_duration, start_time, end_time, status, created_at`

func (s *SQLite) GetSession(id int64) (*models.Session, error) {
	row := s.db.QueryRow(
		`SELECT `+sessionColumns+` FROM sessions WHERE id = ?`,
		id,
	)

	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	return sess, nil
}

func (s *SQLite) InsertSession(sess *models.Session) error {
	var goal sql.NullString
	if sess.Goal != nil {
		goal = sql.NullString{String: *sess.Goal, Valid: true}
	}

	res, err := s.db.Exec(`
		INSERT INTO sessions (title, goal, scheduled_duration, start_time, end_time, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		sess.Title,
		goal,
		sess.ScheduledDuration,
		toNull(sess.StartTime),
		toNull(sess.EndTime),
		string(sess.Status),
		sess.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	sess.ID, err = res.LastInsertId()

	return err
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// updateSession writes the mutable columns of a session. Title, goal,
// scheduled duration and creation time never change after insert.
func updateSession(db execer, sess *models.Session) error {
	res, err := db.Exec(`
		UPDATE sessions SET status = ?, start_time = ?, end_time = ?
		WHERE id = ?
	`,
		string(sess.Status),
		toNull(sess.StartTime),
		toNull(sess.EndTime),
		sess.ID,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return errSessionMissing.Fmt(sess.ID)
	}

	return nil
}

func (s *SQLite) UpdateSession(sess *models.Session) error {
	return updateSession(s.db, sess)
}

func (s *SQLite) ListSessions() ([]*models.Session, error) {
	rows, err := s.db.Query(
		`SELECT ` + sessionColumns + ` FROM sessions ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.Session

	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}

		sessions = append(sessions, sess)
	}

	return sessions, rows.Err()
}

func (s *SQLite) DeleteSession(id int64) error {
	res, err := s.db.Exec(`DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return errSessionMissing.Fmt(id)
	}

	return nil
}

// PauseSession records in and saves sess in a single transaction.
func (s *SQLite) PauseSession(sess *models.Session, in *models.Interruption) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
		INSERT INTO interruptions (session_id, reason, pause_time)
		VALUES (?, ?, ?)
	`, in.SessionID, in.Reason, in.PauseTime.UnixNano())
	if err != nil {
		return fmt.Errorf("insert interruption: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	if err := updateSession(tx, sess); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	in.ID = id

	return nil
}

func (s *SQLite) CountInterruptions(sessionID int64) (int, error) {
	var count int

	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM interruptions WHERE session_id = ?`,
		sessionID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count interruptions: %w", err)
	}

	return count, nil
}

func (s *SQLite) ListInterruptions(
	sessionID int64,
) ([]*models.Interruption, error) {
	rows, err := s.db.Query(`
		SELECT id, session_id, reason, pause_time FROM interruptions
		WHERE session_id = ? ORDER BY id
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list interruptions: %w", err)
	}
	defer rows.Close()

	var result []*models.Interruption

	for rows.Next() {
		var (
			in        models.Interruption
			pauseTime int64
		)

		err := rows.Scan(&in.ID, &in.SessionID, &in.Reason, &pauseTime)
		if err != nil {
			return nil, fmt.Errorf("scan interruption: %w", err)
		}

		in.PauseTime = time.Unix(0, pauseTime).UTC()

		result = append(result, &in)
	}

	return result, rows.Err()
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
