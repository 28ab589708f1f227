package store

import (
	"time"

	"github.com/localnerve/brandkit-tokens/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"gorm.io/hints"
)

// GormStore implements Store on a gorm connection. All version-number
// bookkeeping happens inside transactions so concurrent writers serialize on
// the client's latest version row.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a Store backed by db.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// CreateVersion assigns the next per-client version number under a row lock,
// then inserts the version and its change records in one transaction.
func (s *GormStore) CreateVersion(version *models.DesignSystemVersion, changes []models.DesignSystemChange, baseVersion *uint64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		// Lock the latest version row so concurrent writers serialize here.
		var latest models.DesignSystemVersion
		var latestNumber uint64
		err := tx.Session(&gorm.Session{Logger: tx.Logger.LogMode(logger.Silent)}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("client_id = ?", version.ClientID).
			Order("version_number DESC").
			First(&latest).Error
		if err != nil {
			if err != gorm.ErrRecordNotFound {
				return err
			}
		} else {
			latestNumber = latest.VersionNumber
		}

		if baseVersion != nil && *baseVersion != latestNumber {
			return ErrVersionConflict
		}

		version.VersionNumber = latestNumber + 1
		if version.CreatedAt.IsZero() {
			version.CreatedAt = time.Now().UTC()
		}
		if err := tx.Create(version).Error; err != nil {
			return err
		}

		for i := range changes {
			changes[i].VersionID = version.VersionID
			if changes[i].CreatedAt.IsZero() {
				changes[i].CreatedAt = version.CreatedAt
			}
		}
		if len(changes) > 0 {
			if err := tx.CreateInBatches(changes, 100).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// GetVersion fetches one version by id, scoped to the client.
func (s *GormStore) GetVersion(clientID, versionID string) (*models.DesignSystemVersion, error) {
	var version models.DesignSystemVersion
	err := s.db.Session(&gorm.Session{Logger: s.db.Logger.LogMode(logger.Silent)}).
		Where("client_id = ? AND version_id = ?", clientID, versionID).
		First(&version).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &version, nil
}

// GetLatestVersion fetches the client's highest-numbered version.
func (s *GormStore) GetLatestVersion(clientID string) (*models.DesignSystemVersion, error) {
	var version models.DesignSystemVersion
	err := s.db.Session(&gorm.Session{Logger: s.db.Logger.LogMode(logger.Silent)}).
		Where("client_id = ?", clientID).
		Order("version_number DESC").
		First(&version).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &version, nil
}

// ListVersions returns versions newest first with the total count for
// pagination.
func (s *GormStore) ListVersions(clientID string, limit, offset int) ([]models.DesignSystemVersion, int64, error) {
	var total int64
	if err := s.db.Model(&models.DesignSystemVersion{}).
		Where("client_id = ?", clientID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var versions []models.DesignSystemVersion
	query := s.db.Where("client_id = ?", clientID).
		Order("version_number DESC")
	// Index hints are MySQL/MariaDB syntax only.
	if s.db.Dialector.Name() == "mysql" {
		query = query.Clauses(hints.UseIndex("idx_versions_client_created"))
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&versions).Error; err != nil {
		return nil, 0, err
	}

	return versions, total, nil
}

// GetChanges returns the change records of a version in insertion order.
// The version must belong to the client.
func (s *GormStore) GetChanges(clientID, versionID string) ([]models.DesignSystemChange, error) {
	if _, err := s.GetVersion(clientID, versionID); err != nil {
		return nil, err
	}

	var changes []models.DesignSystemChange
	if err := s.db.Where("version_id = ?", versionID).
		Order("change_id ASC").
		Find(&changes).Error; err != nil {
		return nil, err
	}
	return changes, nil
}

// UpdateVersionMetadata backfills description and changes summary on a
// just-created version. The one write versions receive after creation.
func (s *GormStore) UpdateVersionMetadata(versionID string, description *string, changesSummary models.JSON) error {
	updates := map[string]interface{}{
		"changes_summary": changesSummary,
	}
	if description != nil {
		updates["description"] = *description
	}

	result := s.db.Model(&models.DesignSystemVersion{}).
		Where("version_id = ?", versionID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetCurrentTokens reads the materialized current tokens of a client.
func (s *GormStore) GetCurrentTokens(clientID string) (*models.ClientTokens, error) {
	var current models.ClientTokens
	err := s.db.Session(&gorm.Session{Logger: s.db.Logger.LogMode(logger.Silent)}).
		Where("client_id = ?", clientID).
		First(&current).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &current, nil
}

// SetCurrentTokens upserts the materialized current tokens and touches the
// client's modification timestamp.
func (s *GormStore) SetCurrentTokens(clientID string, raw, semantic models.JSON) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		current := models.ClientTokens{ClientID: clientID}
		if err := tx.Where("client_id = ?", clientID).
			Assign(models.ClientTokens{
				RawTokens:      raw,
				SemanticTokens: semantic,
			}).
			FirstOrCreate(&current).Error; err != nil {
			return err
		}

		return tx.Model(&models.Client{}).
			Where("client_id = ?", clientID).
			Update("updated_at", time.Now().UTC()).Error
	})
}

// GetClient fetches the client record.
func (s *GormStore) GetClient(clientID string) (*models.Client, error) {
	var client models.Client
	err := s.db.Session(&gorm.Session{Logger: s.db.Logger.LogMode(logger.Silent)}).
		Where("client_id = ?", clientID).
		First(&client).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}
