package bolt

// Package bolt persists the device credential pair in an embedded bbolt
// database. This is the only durable state the core owns.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	domainauth "github.com/edumax/schoolapp/internal/domain/auth"
	"github.com/edumax/schoolapp/internal/ports"
)

var (
	bucketCredentials = []byte("credentials")

	keyToken = []byte("token")
	keyRole  = []byte("role")
)

// Store is a bbolt-backed credential store.
type Store struct {
	db *bbolt.DB
}

var _ ports.CredentialStore = (*Store)(nil)

// Open opens (creating if needed) the credential database at path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("credential store path is required")
	}

	// Ensure directory exists.
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open credential database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCredentials)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Load reads the persisted credential pair. A record with either key
// missing is store corruption and is discarded as a pair: found=false, no
// error. Infrastructure failures are returned, but the contract obliges
// callers to treat them identically to "never logged in".
func (s *Store) Load(_ context.Context) (domainauth.Credential, bool, error) {
	var cred domainauth.Credential
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketCredentials)
		if b == nil {
			return nil
		}
		cred.Token = string(b.Get(keyToken))
		cred.Role = domainauth.Role(b.Get(keyRole))
		return nil
	})
	if err != nil {
		return domainauth.Credential{}, false, fmt.Errorf("read credentials: %w", err)
	}
	if !cred.Valid() {
		// Partial pair (token without role or vice versa) never reaches
		// callers; it is recoverable by re-login.
		return domainauth.Credential{}, false, nil
	}
	return cred, true, nil
}

// Save writes token and role in a single transaction.
func (s *Store) Save(_ context.Context, cred domainauth.Credential) error {
	if !cred.Valid() {
		return errors.New("credential pair is incomplete")
	}
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketCredentials)
		if putErr := b.Put(keyToken, []byte(cred.Token)); putErr != nil {
			return putErr
		}
		return b.Put(keyRole, []byte(cred.Role))
	})
	if err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	return nil
}

// Clear removes both keys. Clearing an empty store succeeds silently.
func (s *Store) Clear(_ context.Context) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketCredentials)
		if b == nil {
			return nil
		}
		if delErr := b.Delete(keyToken); delErr != nil {
			return delErr
		}
		return b.Delete(keyRole)
	})
	if err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}
