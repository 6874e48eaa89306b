package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/SeamusWaldron/rubik2d/internal/recorder"
	"github.com/SeamusWaldron/rubik2d/internal/storage"
)

var errNoActiveSession = errors.New("no active session\nStart one with: rubik session new")

// openDB opens and migrates the database.
func openDB(sf *recorder.StateFile) (*storage.DB, error) {
	path := getDBPath(sf)

	var db *storage.DB
	var err error
	if path == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Debug("database ready", "path", db.Path())
	return db, nil
}

// openActive loads the state file and database and resumes the active
// session. The caller closes the returned DB.
func openActive() (*recorder.Session, *storage.DB, error) {
	sf, err := recorder.NewDefaultStateFile()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load state: %w", err)
	}
	if !sf.HasActiveSession() {
		return nil, nil, errNoActiveSession
	}

	db, err := openDB(sf)
	if err != nil {
		return nil, nil, err
	}

	session := recorder.NewSession(db, sf, logger)
	if err := session.Resume(sf.ActiveSessionID()); err != nil {
		db.Close()
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, recorder.ErrSessionEnded) {
			logger.Warn("clearing stale active session", "session", sf.ActiveSessionID())
			_ = sf.ClearActiveSession()
			return nil, nil, errNoActiveSession
		}
		return nil, nil, fmt.Errorf("failed to resume session: %w", err)
	}

	return session, db, nil
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%d:%05.2f", mins, secs)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
