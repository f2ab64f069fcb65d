package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/openbiblio/biblio/internal/client/storage"
)

var (
	keyToken = []byte("token")
	keyUser  = []byte("user")
)

// Compile-time check that Storage implements storage.SessionStorage
var _ storage.SessionStorage = (*Storage)(nil)

// SaveSession stores the bearer token and the serialized user record in a
// single transaction, so a crash cannot leave one without the other.
func (s *Storage) SaveSession(ctx context.Context, token string, user []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if err := bucket.Put(keyToken, []byte(token)); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}
		if err := bucket.Put(keyUser, user); err != nil {
			return fmt.Errorf("failed to save user: %w", err)
		}

		return nil
	})
}

// Token returns the stored bearer token.
func (s *Storage) Token(ctx context.Context) (string, error) {
	var token string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data := bucket.Get(keyToken)
		if data == nil {
			return storage.ErrSessionNotFound
		}

		token = string(data)
		return nil
	})
	if err != nil {
		return "", err
	}

	return token, nil
}

// User returns the stored user JSON.
func (s *Storage) User(ctx context.Context) ([]byte, error) {
	var user []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data := bucket.Get(keyUser)
		if data == nil {
			return storage.ErrSessionNotFound
		}

		// Copy: bbolt values are only valid inside the transaction.
		user = append([]byte(nil), data...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Clear drops the whole session bucket and recreates it empty, removing the
// token, the user record and any other key a future version may add.
func (s *Storage) Clear(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketSession); err != nil && err != bbolt.ErrBucketNotFound {
			return fmt.Errorf("failed to clear session bucket: %w", err)
		}
		if _, err := tx.CreateBucketIfNotExists(bucketSession); err != nil {
			return fmt.Errorf("failed to recreate session bucket: %w", err)
		}
		return nil
	})
}
