package ledger

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	apperrors "github.com/edsontomaz/gestao-financeira/internal/errors"
	"github.com/edsontomaz/gestao-financeira/internal/logger"
	"github.com/edsontomaz/gestao-financeira/internal/models"
	"github.com/edsontomaz/gestao-financeira/internal/uuid"
)

// SQLiteStore is the opt-in persistent ledger backend. It implements the
// same contract as MemoryStore; the request layer serializes writers, so no
// additional locking is layered on top of the database handle.
type SQLiteStore struct {
	db   *gorm.DB
	path string
}

// NewSQLiteStore opens (or creates) the sqlite database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite ledger: %w", err)
	}
	return &SQLiteStore{db: db, path: path}, nil
}

var _ Store = (*SQLiteStore)(nil)

// RunMigrations applies pending SQL migrations from the migrations/ directory.
func (s *SQLiteStore) RunMigrations() error {
	logger.Get().Info("Running ledger migrations...")

	mig, err := migrate.New("file://migrations", "sqlite3://"+s.path)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Ledger migrations completed successfully")
	return nil
}

// AutoMigrate creates the schema directly via GORM. Tests use this instead
// of the SQL migration files.
func (s *SQLiteStore) AutoMigrate() error {
	return s.db.AutoMigrate(&models.Transaction{})
}

// Create inserts a record. An empty id is replaced with a fresh UUIDv7; a
// supplied id must not already exist.
func (s *SQLiteStore) Create(t *models.Transaction) (*models.Transaction, error) {
	stored := t.Clone()
	if stored.ID == "" {
		stored.ID = uuid.New()
	} else {
		var count int64
		if err := s.db.Model(&models.Transaction{}).Where("id = ?", stored.ID).Count(&count).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count > 0 {
			return nil, apperrors.ErrDuplicateTransaction
		}
	}

	if err := s.db.Create(stored).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return stored.Clone(), nil
}

// Get returns the record with the given id if it belongs to profile.
func (s *SQLiteStore) Get(id string, profile models.Profile) (*models.Transaction, bool, error) {
	var t models.Transaction
	err := s.db.Where("id = ? AND profile = ?", id, profile).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &t, true, nil
}

// List returns all of a profile's records, newest CreatedAt first.
func (s *SQLiteStore) List(profile models.Profile) ([]*models.Transaction, error) {
	var records []*models.Transaction
	err := s.db.Where("profile = ?", profile).
		Order("created_at DESC, id DESC").
		Find(&records).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return records, nil
}

// Update applies the patch to the record with the given id.
func (s *SQLiteStore) Update(id string, profile models.Profile, patch Patch) (*models.Transaction, bool, error) {
	t, found, err := s.Get(id, profile)
	if err != nil || !found {
		return nil, found, err
	}
	patch.apply(t)
	if err := s.db.Model(&models.Transaction{}).Where("id = ?", id).
		Select("amount", "description", "category", "payment_method", "card_operator").
		Updates(t).Error; err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return t, true, nil
}

// Delete removes a single record and reports whether it existed.
func (s *SQLiteStore) Delete(id string, profile models.Profile) (bool, error) {
	res := s.db.Where("id = ? AND profile = ?", id, profile).Delete(&models.Transaction{})
	if res.Error != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// DeleteByParent removes every record referencing parentID.
func (s *SQLiteStore) DeleteByParent(parentID string, profile models.Profile) (int, error) {
	res := s.db.Where("parent_transaction_id = ? AND profile = ?", parentID, profile).
		Delete(&models.Transaction{})
	if res.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	return int(res.RowsAffected), nil
}

// Clear removes every record for the profile.
func (s *SQLiteStore) Clear(profile models.Profile) error {
	if err := s.db.Where("profile = ?", profile).Delete(&models.Transaction{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Count returns the total number of records for the profile.
func (s *SQLiteStore) Count(profile models.Profile) (int, error) {
	var count int64
	if err := s.db.Model(&models.Transaction{}).Where("profile = ?", profile).Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return int(count), nil
}
