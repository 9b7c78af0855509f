// Package journal records flushed IME event batches in SQLite so sessions
// can be inspected and replayed.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"imecore/internal/ime"
)

// ErrSessionNotFound is returned for unknown session ids.
var ErrSessionNotFound = errors.New("session not found")

// Session is one enable..disable span of a surface.
type Session struct {
	ID        string
	Surface   ime.SurfaceID
	Transport string
	Form      string
	StartedAt time.Time
	EndedAt   time.Time // zero while open
	Batches   int
}

// Open reports whether the session has not been disabled yet.
func (s Session) Open() bool {
	return s.EndedAt.IsZero()
}

// Batch is one delivered event batch.
type Batch struct {
	ID        int64
	SessionID string
	Seq       int
	At        time.Time
	Events    []ime.Event
}

// Options labels the sessions a journal creates.
type Options struct {
	Transport string
	Form      ime.EventForm
	Logger    *slog.Logger

	// Inspect opens the journal for reading and pruning only: sessions a
	// running recorder has open are left alone and Record fails.
	Inspect bool
}

// Journal is an SQLite-backed event recorder. It is safe for concurrent use.
type Journal struct {
	db   *sql.DB
	opts Options
	log  *slog.Logger
	now  func() time.Time

	mu   sync.Mutex
	open map[ime.SurfaceID]*openSession
}

type openSession struct {
	id  string
	seq int
}

// Open opens or creates the journal database at path.
func Open(path string, opts Options) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("create journal directory: %w", err)
	}
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	// One writer keeps batch order identical to delivery order.
	db.SetMaxOpenConns(1)
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	j := &Journal{
		db:   db,
		opts: opts,
		log:  log.With("subsystem", "journal"),
		now:  time.Now,
		open: make(map[ime.SurfaceID]*openSession),
	}
	if opts.Inspect {
		return j, nil
	}
	if err := j.closeDangling(); err != nil {
		db.Close()
		return nil, err
	}
	return j, nil
}

// closeDangling ends sessions left open by a previous process.
func (j *Journal) closeDangling() error {
	_, err := j.db.Exec(`UPDATE sessions SET ended_ns = ? WHERE ended_ns IS NULL`, j.now().UnixNano())
	if err != nil {
		return fmt.Errorf("close dangling sessions: %w", err)
	}
	return nil
}

// SetLabels changes the transport and form recorded on sessions started
// from now on.
func (j *Journal) SetLabels(transport string, form ime.EventForm) {
	j.mu.Lock()
	j.opts.Transport = transport
	j.opts.Form = form
	j.mu.Unlock()
}

// Close ends open sessions and closes the database.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.db == nil {
		return nil
	}
	for id, s := range j.open {
		if err := j.endSession(s.id); err != nil {
			j.log.Warn("end session", "session", s.id, "error", err)
		}
		delete(j.open, id)
	}
	err := j.db.Close()
	j.db = nil
	return err
}

// Ping checks that the database is still reachable.
func (j *Journal) Ping(ctx context.Context) error {
	j.mu.Lock()
	db := j.db
	j.mu.Unlock()
	if db == nil {
		return errors.New("journal closed")
	}
	return db.PingContext(ctx)
}

// Record stores a batch delivered for surface id. An EnabledEvent opens a
// new session and a DisabledEvent closes it. Batches that arrive with no
// open session start one.
func (j *Journal) Record(id ime.SurfaceID, events []ime.Event) error {
	if len(events) == 0 {
		return nil
	}
	payload, err := MarshalEvents(events)
	if err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.db == nil {
		return errors.New("journal closed")
	}
	if j.opts.Inspect {
		return errors.New("journal opened for inspection")
	}

	s := j.open[id]
	if s == nil || containsEvent[ime.EnabledEvent](events) {
		if s != nil {
			if err := j.endSession(s.id); err != nil {
				return err
			}
		}
		if s, err = j.startSession(id); err != nil {
			return err
		}
		j.open[id] = s
	}

	s.seq++
	_, err = j.db.Exec(`INSERT INTO batches (session_id, seq, timestamp_ns, events) VALUES (?, ?, ?, ?)`,
		s.id, s.seq, j.now().UnixNano(), string(payload))
	if err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}

	if containsEvent[ime.DisabledEvent](events) {
		delete(j.open, id)
		return j.endSession(s.id)
	}
	return nil
}

// EndSurface closes the open session of a destroyed surface.
func (j *Journal) EndSurface(id ime.SurfaceID) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	s := j.open[id]
	if s == nil || j.db == nil {
		return nil
	}
	delete(j.open, id)
	return j.endSession(s.id)
}

func containsEvent[T ime.Event](events []ime.Event) bool {
	for _, ev := range events {
		if _, ok := ev.(T); ok {
			return true
		}
	}
	return false
}

func (j *Journal) startSession(id ime.SurfaceID) (*openSession, error) {
	sid := uuid.NewString()
	_, err := j.db.Exec(`INSERT INTO sessions (id, surface, transport, form, started_ns) VALUES (?, ?, ?, ?, ?)`,
		sid, int64(id), j.opts.Transport, j.opts.Form.String(), j.now().UnixNano())
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	j.log.Debug("session started", "session", sid, "surface", uint64(id))
	return &openSession{id: sid}, nil
}

func (j *Journal) endSession(sid string) error {
	_, err := j.db.Exec(`UPDATE sessions SET ended_ns = ? WHERE id = ? AND ended_ns IS NULL`, j.now().UnixNano(), sid)
	if err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}

// Tee returns a sink that records each batch and then forwards it to next.
// Recording failures are logged and never block delivery.
func (j *Journal) Tee(next ime.EventSink) ime.EventSink {
	return ime.EventSinkFunc(func(id ime.SurfaceID, events []ime.Event) {
		if err := j.Record(id, events); err != nil {
			j.log.Warn("record batch", "surface", uint64(id), "error", err)
		}
		if next != nil {
			next.Deliver(id, events)
		}
	})
}

const sessionColumns = `s.id, s.surface, s.transport, s.form, s.started_ns, s.ended_ns,
	(SELECT COUNT(*) FROM batches b WHERE b.session_id = s.id)`

// Sessions lists sessions, newest first. A limit of zero lists all.
func (j *Journal) Sessions(limit int) ([]Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions s ORDER BY s.started_ns DESC, s.rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := j.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return out, nil
}

// Session returns one session by id.
func (j *Journal) Session(id string) (Session, error) {
	row := j.db.QueryRow(`SELECT `+sessionColumns+` FROM sessions s WHERE s.id = ?`, id)
	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, fmt.Errorf("%s: %w", id, ErrSessionNotFound)
	}
	return s, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (Session, error) {
	var (
		s       Session
		surface int64
		started int64
		ended   sql.NullInt64
	)
	if err := row.Scan(&s.ID, &surface, &s.Transport, &s.Form, &started, &ended, &s.Batches); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, err
		}
		return Session{}, fmt.Errorf("scan session: %w", err)
	}
	s.Surface = ime.SurfaceID(surface)
	s.StartedAt = time.Unix(0, started)
	if ended.Valid {
		s.EndedAt = time.Unix(0, ended.Int64)
	}
	return s, nil
}

// Batches returns the batches of a session in delivery order.
func (j *Journal) Batches(sessionID string) ([]Batch, error) {
	if _, err := j.Session(sessionID); err != nil {
		return nil, err
	}
	rows, err := j.db.Query(`SELECT id, seq, timestamp_ns, events FROM batches WHERE session_id = ? ORDER BY seq`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query batches: %w", err)
	}
	defer rows.Close()

	var out []Batch
	for rows.Next() {
		var (
			b       Batch
			ts      int64
			payload string
		)
		if err := rows.Scan(&b.ID, &b.Seq, &ts, &payload); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		b.SessionID = sessionID
		b.At = time.Unix(0, ts)
		if b.Events, err = UnmarshalEvents([]byte(payload)); err != nil {
			return nil, fmt.Errorf("batch %d: %w", b.ID, err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate batches: %w", err)
	}
	return out, nil
}

// Prune deletes closed sessions that ended before cutoff and returns how
// many were removed.
func (j *Journal) Prune(cutoff time.Time) (int64, error) {
	tx, err := j.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	const old = `SELECT id FROM sessions WHERE ended_ns IS NOT NULL AND ended_ns < ?`
	if _, err := tx.Exec(`DELETE FROM batches WHERE session_id IN (`+old+`)`, cutoff.UnixNano()); err != nil {
		return 0, fmt.Errorf("delete batches: %w", err)
	}
	res, err := tx.Exec(`DELETE FROM sessions WHERE ended_ns IS NOT NULL AND ended_ns < ?`, cutoff.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("delete sessions: %w", err)
	}
	n, _ := res.RowsAffected()
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit prune: %w", err)
	}
	return n, nil
}
