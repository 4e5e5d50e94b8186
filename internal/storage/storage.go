// Package storage defines the remote blob collaborator the snapshot
// reconciler depends on. Implementations live in subpackages; the reconciler
// does not interpret backend failures beyond "not found" vs everything else.
package storage

import (
	"context"
	"errors"
)

// ErrBlobNotFound is returned by ReadBlob when the named blob does not
// exist. Every other backend failure means the storage is unavailable.
var ErrBlobNotFound = errors.New("blob not found")

// Account identifies the storage account the client is connected as.
type Account struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RemoteStorage abstracts the cloud file backend used for snapshots.
type RemoteStorage interface {
	// EnsureContainer creates the named container if absent and returns its
	// id. Idempotent.
	EnsureContainer(ctx context.Context, name string) (string, error)

	// WriteBlob writes content to the named blob inside the container,
	// overwriting any previous content.
	WriteBlob(ctx context.Context, containerID, name, content string) error

	// ReadBlob returns the content of the named blob, or ErrBlobNotFound.
	ReadBlob(ctx context.Context, containerID, name string) (string, error)

	// WhoAmI returns the connected account's identity.
	WhoAmI(ctx context.Context) (*Account, error)
}
