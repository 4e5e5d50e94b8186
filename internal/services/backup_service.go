package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/edsontomaz/gestao-financeira/internal/errors"
	"github.com/edsontomaz/gestao-financeira/internal/ledger"
	"github.com/edsontomaz/gestao-financeira/internal/logger"
	"github.com/edsontomaz/gestao-financeira/internal/models"
	"github.com/edsontomaz/gestao-financeira/internal/storage"
)

// backupService reconciles the local ledger against remote snapshots.
// Snapshots are flat JSON arrays of transaction records, one blob per
// profile; the format carries no version field.
type backupService struct {
	store   ledger.Store
	remote  storage.RemoteStorage
	folder  string
	timeout time.Duration
}

// NewBackupService creates a new BackupServicer. Remote calls are bounded by
// the given timeout so a stalled backend surfaces as a distinct timeout
// failure instead of hanging the request.
func NewBackupService(store ledger.Store, remote storage.RemoteStorage, folder string, timeout time.Duration) BackupServicer {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &backupService{store: store, remote: remote, folder: folder, timeout: timeout}
}

// snapshotName returns the profile-qualified blob name.
func snapshotName(profile models.Profile) string {
	return fmt.Sprintf("%s-transactions.json", profile)
}

// Backup serializes all of the profile's records and writes them to remote
// storage, overwriting any previous snapshot. Returns the number of records
// written.
func (s *backupService) Backup(ctx context.Context, profile models.Profile) (int, error) {
	records, err := s.store.List(profile)
	if err != nil {
		return 0, err
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	containerID, err := s.remote.EnsureContainer(ctx, s.folder)
	if err != nil {
		return 0, s.storageError(ctx, err)
	}
	if err := s.remote.WriteBlob(ctx, containerID, snapshotName(profile), string(payload)); err != nil {
		return 0, s.storageError(ctx, err)
	}

	logger.Get().Infow("backup written",
		"profile", profile,
		"records", len(records),
	)
	return len(records), nil
}

// Restore replaces the profile's records with the remote snapshot. Parents
// (records without a ParentTransactionID) are inserted first with their
// snapshot ids preserved; a remap table from old to new ids then rewrites
// each child's parent reference. When a child's parent is missing from the
// batch the original reference is kept rather than rejecting the row, so a
// snapshot holding orphaned installments still restores. Corrupt or invalid
// rows are skipped, never fatal; a snapshot with no usable row at all is
// reported through the skip count without touching local state.
func (s *backupService) Restore(ctx context.Context, profile models.Profile) (*RestoreResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	containerID, err := s.remote.EnsureContainer(ctx, s.folder)
	if err != nil {
		return nil, s.storageError(ctx, err)
	}
	content, err := s.remote.ReadBlob(ctx, containerID, snapshotName(profile))
	if errors.Is(err, storage.ErrBlobNotFound) {
		return nil, apperrors.ErrBackupNotFound
	}
	if err != nil {
		return nil, s.storageError(ctx, err)
	}

	rows, skipped := parseSnapshot(content, profile)
	if len(rows) == 0 {
		// A snapshot that exists but yields no usable row is damage, not
		// absence: report the skips and leave local state alone.
		if skipped > 0 {
			return &RestoreResult{Skipped: skipped}, nil
		}
		return nil, apperrors.ErrBackupNotFound
	}

	// Destructive replace: the snapshot becomes the profile's full state.
	if err := s.store.Clear(profile); err != nil {
		return nil, err
	}

	var parents, children []*models.Transaction
	for _, t := range rows {
		if t.ParentTransactionID == nil {
			parents = append(parents, t)
		} else {
			children = append(children, t)
		}
	}

	result := &RestoreResult{Skipped: skipped}
	remap := make(map[string]string, len(parents))

	for _, parent := range parents {
		oldID := parent.ID
		created, err := s.insertPreservingID(profile, parent)
		if err != nil {
			result.Skipped++
			continue
		}
		remap[oldID] = created.ID
		result.Restored++
	}

	for _, child := range children {
		if newID, ok := remap[*child.ParentTransactionID]; ok {
			child.ParentTransactionID = &newID
		}
		if _, err := s.insertPreservingID(profile, child); err != nil {
			result.Skipped++
			continue
		}
		result.Restored++
	}

	logger.Get().Infow("restore completed",
		"profile", profile,
		"restored", result.Restored,
		"skipped", result.Skipped,
	)
	return result, nil
}

// Status reports the connected storage account and whether a snapshot
// exists for the profile.
func (s *backupService) Status(ctx context.Context, profile models.Profile) (*BackupStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	account, err := s.remote.WhoAmI(ctx)
	if err != nil {
		return nil, s.storageError(ctx, err)
	}

	status := &BackupStatus{Account: account}
	containerID, err := s.remote.EnsureContainer(ctx, s.folder)
	if err != nil {
		return nil, s.storageError(ctx, err)
	}
	if _, err := s.remote.ReadBlob(ctx, containerID, snapshotName(profile)); err == nil {
		status.HasBackup = true
	} else if !errors.Is(err, storage.ErrBlobNotFound) {
		return nil, s.storageError(ctx, err)
	}
	return status, nil
}

// insertPreservingID inserts a snapshot row with its original id. If that id
// is already taken the store assigns a fresh one, which the caller records
// in the remap table.
func (s *backupService) insertPreservingID(profile models.Profile, t *models.Transaction) (*models.Transaction, error) {
	t.Profile = profile
	created, err := s.store.Create(t)
	if errors.Is(err, apperrors.ErrDuplicateTransaction) {
		t.ID = ""
		return s.store.Create(t)
	}
	return created, err
}

// parseSnapshot decodes a snapshot leniently: the document is split into raw
// rows first so a single corrupt or invalid row is skipped without aborting
// the rest. Rows are rehomed to the restoring profile before validation.
func parseSnapshot(content string, profile models.Profile) ([]*models.Transaction, int) {
	var raws []json.RawMessage
	if err := json.Unmarshal([]byte(content), &raws); err != nil {
		return nil, 0
	}

	rows := make([]*models.Transaction, 0, len(raws))
	skipped := 0
	for _, raw := range raws {
		var t models.Transaction
		if err := json.Unmarshal(raw, &t); err != nil {
			skipped++
			continue
		}
		t.Profile = profile
		if err := t.Validate(); err != nil {
			skipped++
			continue
		}
		rows = append(rows, &t)
	}
	return rows, skipped
}

// storageError maps a remote failure to the error taxonomy: a deadline hit
// becomes a timeout, anything else means the backend is unavailable.
func (s *backupService) storageError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return apperrors.Wrap(apperrors.ErrStorageTimeout, err)
	}
	return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
}
