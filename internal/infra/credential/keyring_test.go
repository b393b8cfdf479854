package credential

import (
	"errors"
	"testing"

	"github.com/99designs/keyring"
	"github.com/runoshun/issue-import/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetGetDelete(t *testing.T) {
	store := NewStoreWithKeyring(keyring.NewArrayKeyring(nil))

	token, err := store.Get(domain.CredentialGitHub)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Set(domain.CredentialGitHub, "ghp_secret"))
	require.NoError(t, store.Set(domain.CredentialShortcut, "sc_secret"))

	token, err = store.Get(domain.CredentialGitHub)
	require.NoError(t, err)
	assert.Equal(t, "ghp_secret", token)

	require.NoError(t, store.Delete(domain.CredentialGitHub))

	token, err = store.Get(domain.CredentialGitHub)
	require.NoError(t, err)
	assert.Empty(t, token)

	token, err = store.Get(domain.CredentialShortcut)
	require.NoError(t, err)
	assert.Equal(t, "sc_secret", token)
}

func TestStore_ExistingItems(t *testing.T) {
	ring := keyring.NewArrayKeyring([]keyring.Item{
		{Key: "shortcut-token", Data: []byte("preset")},
	})

	token, err := NewStoreWithKeyring(ring).Get(domain.CredentialShortcut)

	require.NoError(t, err)
	assert.Equal(t, "preset", token)
}

func TestStore_OpenErrorIsReturned(t *testing.T) {
	openErr := errors.New("no backend")
	store := &Store{open: func() (keyring.Keyring, error) { return nil, openErr }}

	_, err := store.Get(domain.CredentialGitHub)
	assert.ErrorIs(t, err, openErr)
	assert.ErrorIs(t, store.Set(domain.CredentialGitHub, "x"), openErr)
	assert.ErrorIs(t, store.Delete(domain.CredentialGitHub), openErr)
}
