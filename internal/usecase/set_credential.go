package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/issue-import/internal/domain"
)

// SetCredentialInput contains the token to store.
type SetCredentialInput struct {
	Service domain.CredentialService
	Token   string
}

// SetCredential is the use case for storing an API token.
type SetCredential struct {
	credentials domain.CredentialStore
}

// NewSetCredential creates a new SetCredential use case.
func NewSetCredential(credentials domain.CredentialStore) *SetCredential {
	return &SetCredential{credentials: credentials}
}

// Execute stores the token in the credential store.
func (uc *SetCredential) Execute(_ context.Context, in SetCredentialInput) error {
	token := strings.TrimSpace(in.Token)
	if token == "" {
		return domain.ErrEmptyToken
	}
	if err := uc.credentials.Set(in.Service, token); err != nil {
		return fmt.Errorf("store %s token: %w", in.Service, err)
	}
	return nil
}

// DeleteCredentialInput names the token to remove.
type DeleteCredentialInput struct {
	Service domain.CredentialService
}

// DeleteCredential is the use case for removing a stored API token.
type DeleteCredential struct {
	credentials domain.CredentialStore
}

// NewDeleteCredential creates a new DeleteCredential use case.
func NewDeleteCredential(credentials domain.CredentialStore) *DeleteCredential {
	return &DeleteCredential{credentials: credentials}
}

// Execute removes the token from the credential store.
func (uc *DeleteCredential) Execute(_ context.Context, in DeleteCredentialInput) error {
	if err := uc.credentials.Delete(in.Service); err != nil {
		return fmt.Errorf("delete %s token: %w", in.Service, err)
	}
	return nil
}
