// Package credential stores API tokens in the operating system keyring.
package credential

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/99designs/keyring"
	"github.com/runoshun/issue-import/internal/domain"
)

// ServiceName is the keyring service tokens are stored under.
const ServiceName = "issue-import"

// Ensure Store implements domain.CredentialStore.
var _ domain.CredentialStore = (*Store)(nil)

// Store is a domain.CredentialStore backed by 99designs/keyring.
// The keyring is opened on first use.
type Store struct {
	ring keyring.Keyring
	err  error
	open func() (keyring.Keyring, error)
	once sync.Once
}

// NewStore creates a Store using the system keyring. The file backend,
// used when no OS keyring is available, keeps its data under configDir.
func NewStore(configDir string) *Store {
	return &Store{open: func() (keyring.Keyring, error) {
		return openKeyring(configDir)
	}}
}

// NewStoreWithKeyring creates a Store around an already opened keyring.
func NewStoreWithKeyring(ring keyring.Keyring) *Store {
	return &Store{open: func() (keyring.Keyring, error) { return ring, nil }}
}

func openKeyring(configDir string) (keyring.Keyring, error) {
	fileDir := "~/.config/issue-import/credentials"
	if configDir != "" {
		fileDir = filepath.Join(configDir, "credentials")
	}
	ring, err := keyring.Open(keyring.Config{
		ServiceName: ServiceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  fileDir,
		FilePasswordFunc:         keyring.FixedStringPrompt("issue-import-file-key"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return ring, nil
}

func (s *Store) openOnce() (keyring.Keyring, error) {
	s.once.Do(func() {
		s.ring, s.err = s.open()
	})
	return s.ring, s.err
}

// Get returns the stored token, or "" when none is stored.
func (s *Store) Get(service domain.CredentialService) (string, error) {
	ring, err := s.openOnce()
	if err != nil {
		return "", err
	}

	item, err := ring.Get(tokenKey(service))
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("getting %s token: %w", service, err)
	}
	return string(item.Data), nil
}

// Set stores a token.
func (s *Store) Set(service domain.CredentialService, token string) error {
	ring, err := s.openOnce()
	if err != nil {
		return err
	}

	err = ring.Set(keyring.Item{
		Key:   tokenKey(service),
		Data:  []byte(token),
		Label: fmt.Sprintf("issue-import %s token", service),
	})
	if err != nil {
		return fmt.Errorf("setting %s token: %w", service, err)
	}
	return nil
}

// Delete removes a stored token. Deleting a missing token is not an error.
func (s *Store) Delete(service domain.CredentialService) error {
	ring, err := s.openOnce()
	if err != nil {
		return err
	}

	if err := ring.Remove(tokenKey(service)); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return fmt.Errorf("deleting %s token: %w", service, err)
	}
	return nil
}

func tokenKey(service domain.CredentialService) string {
	return string(service) + "-token"
}
