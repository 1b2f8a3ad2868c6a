// Package store persists deep work sessions and their interruptions
package store

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/deepwork/internal/osutil"
	"github.com/ayoisaiah/deepwork/models"
)

const (
	sessionBucket      = "sessions"
	interruptionBucket = "interruptions"
)

// Client is a BoltDB database client.
//
// Sessions are stored in the sessions bucket keyed by their big-endian id.
// Each session owns a nested bucket under interruptions so that deleting it
// removes its pauses as well.
type Client struct {
	*bolt.DB
}

// itob encodes an id so that keys sort numerically.
func itob(v int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))

	return b
}

func (c *Client) GetSession(id int64) (*models.Session, error) {
	var sess *models.Session

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(sessionBucket)).Get(itob(id))
		if v == nil {
			return nil
		}

		sess = &models.Session{}

		return json.Unmarshal(v, sess)
	})
	if err != nil {
		return nil, fmt.Errorf("reading session %d: %w", id, err)
	}

	return sess, nil
}

func (c *Client) InsertSession(sess *models.Session) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket))

		seq, err := b.NextSequence()
		if err != nil {
			return err
		}

		sess.ID = int64(seq)

		value, err := json.Marshal(sess)
		if err != nil {
			return err
		}

		return b.Put(itob(sess.ID), value)
	})
}

func putSession(tx *bolt.Tx, sess *models.Session) error {
	b := tx.Bucket([]byte(sessionBucket))

	if b.Get(itob(sess.ID)) == nil {
		return errSessionMissing.Fmt(sess.ID)
	}

	value, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return b.Put(itob(sess.ID), value)
}

func (c *Client) UpdateSession(sess *models.Session) error {
	return c.Update(func(tx *bolt.Tx) error {
		return putSession(tx, sess)
	})
}

func (c *Client) ListSessions() ([]*models.Session, error) {
	var sessions []*models.Session

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).ForEach(func(_, v []byte) error {
			sess := &models.Session{}

			err := json.Unmarshal(v, sess)
			if err != nil {
				return err
			}

			sessions = append(sessions, sess)

			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}

	return sessions, nil
}

func (c *Client) DeleteSession(id int64) error {
	return c.Update(func(tx *bolt.Tx) error {
		key := itob(id)

		b := tx.Bucket([]byte(sessionBucket))
		if b.Get(key) == nil {
			return errSessionMissing.Fmt(id)
		}

		err := b.Delete(key)
		if err != nil {
			return err
		}

		ib := tx.Bucket([]byte(interruptionBucket))
		if ib.Bucket(key) == nil {
			return nil
		}

		return ib.DeleteBucket(key)
	})
}

// PauseSession records in and saves sess in a single transaction.
func (c *Client) PauseSession(sess *models.Session, in *models.Interruption) error {
	return c.Update(func(tx *bolt.Tx) error {
		if err := putSession(tx, sess); err != nil {
			return err
		}

		root := tx.Bucket([]byte(interruptionBucket))

		// ids are unique across sessions
		seq, err := root.NextSequence()
		if err != nil {
			return err
		}

		in.ID = int64(seq)

		b, err := root.CreateBucketIfNotExists(itob(in.SessionID))
		if err != nil {
			return err
		}

		value, err := json.Marshal(in)
		if err != nil {
			return err
		}

		return b.Put(itob(in.ID), value)
	})
}

func (c *Client) CountInterruptions(sessionID int64) (int, error) {
	var count int

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(interruptionBucket)).Bucket(itob(sessionID))
		if b == nil {
			return nil
		}

		cur := b.Cursor()
		for k, _ := cur.First(); k != nil; k, _ = cur.Next() {
			count++
		}

		return nil
	})

	return count, err
}

func (c *Client) ListInterruptions(
	sessionID int64,
) ([]*models.Interruption, error) {
	var result []*models.Interruption

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(interruptionBucket)).Bucket(itob(sessionID))
		if b == nil {
			return nil
		}

		return b.ForEach(func(_, v []byte) error {
			in := &models.Interruption{}

			err := json.Unmarshal(v, in)
			if err != nil {
				return err
			}

			result = append(result, in)

			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("listing interruptions: %w", err)
	}

	return result, nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = osutil.FilePermission

	if err := os.MkdirAll(filepath.Dir(pathToDB), osutil.DirPermission); err != nil {
		return nil, err
	}

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errDBLocked
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(sessionBucket))
		if err != nil {
			return err
		}

		_, err = tx.CreateBucketIfNotExists([]byte(interruptionBucket))

		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
