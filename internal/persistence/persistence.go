package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/markusressel/notebot/internal/ui"
	bolt "go.etcd.io/bbolt"
)

const (
	BucketPreferences = "preferences"
)

// Preferences is a persistent store for tuned values, which survive a restart.
type Preferences interface {
	Init() error

	// GetFloat returns the stored value, or defaultValue together with os.ErrNotExist
	GetFloat(key string, defaultValue float64) (float64, error)
	SetFloat(key string, value float64) error
	Delete(key string) error
	// List returns all stored values by key
	List() (map[string]float64, error)
}

type persistence struct {
	dbPath string
}

func NewPersistence(dbPath string) Preferences {
	p := &persistence{
		dbPath: dbPath,
	}
	return p
}

func (p persistence) Init() (err error) {
	// get parent path of dbPath
	parentDir := filepath.Dir(p.dbPath)
	_, err = os.Stat(parentDir)
	if errors.Is(err, os.ErrNotExist) {
		ui.Info("Creating directory for db: %s", parentDir)
		err = os.MkdirAll(parentDir, 0755)
		if err != nil {
			return err
		}
	}
	return nil
}

func (p persistence) openPersistence() (db *bolt.DB, err error) {
	db, err = bolt.Open(p.dbPath, 0600, &bolt.Options{Timeout: 1 * time.Minute})
	if err != nil {
		return nil, err
	}
	return db, nil
}

func (p persistence) GetFloat(key string, defaultValue float64) (float64, error) {
	db, err := p.openPersistence()
	if err != nil {
		return defaultValue, err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	value := defaultValue
	found := false
	err = db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketPreferences))
		if b == nil {
			return nil
		}
		v := b.Get([]byte(key))
		if v == nil {
			return nil
		}

		var stored float64
		err := json.Unmarshal(v, &stored)
		if err != nil {
			// if we cannot read the saved data, delete it
			ui.Warning("Unable to unmarshal saved preference %s: %v", key, err)
			err := b.Delete([]byte(key))
			if err != nil {
				ui.Error("Unable to delete corrupt data key %s: %v", key, err)
			}
			return nil
		}
		value = stored
		found = true
		return nil
	})
	if err == nil && !found {
		err = os.ErrNotExist
	}

	return value, err
}

func (p persistence) SetFloat(key string, value float64) error {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(BucketPreferences))
		if err != nil {
			return fmt.Errorf("create bucket: %s", err)
		}
		return b.Put([]byte(key), data)
	})
}

func (p persistence) Delete(key string) error {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	return db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketPreferences))
		if b == nil {
			// no preferences yet
			return nil
		}
		return b.Delete([]byte(key))
	})
}

func (p persistence) List() (map[string]float64, error) {
	db, err := p.openPersistence()
	if err != nil {
		return nil, err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	result := map[string]float64{}
	err = db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketPreferences))
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			var value float64
			if err := json.Unmarshal(v, &value); err != nil {
				ui.Warning("Skipping unreadable preference %s: %v", string(k), err)
				return nil
			}
			result[string(k)] = value
			return nil
		})
	})
	return result, err
}
