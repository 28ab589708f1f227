// store.go
//
// Design token derivation and versioning service for the brandkit brand guidelines portal
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of brandkit-tokens.
//
// brandkit-tokens is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the
// Free Software Foundation, either version 3 of the License, or (at your
// option) any later version.
//
// brandkit-tokens is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of MERCHANTABILITY
// or FITNESS FOR A PARTICULAR PURPOSE. See the GNU Affero General Public
// License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with brandkit-tokens. If not, see <https://www.gnu.org/licenses/>.

// Package store persists design system version history and the per-client
// materialized current tokens.
package store

import (
	"errors"

	"github.com/localnerve/brandkit-tokens/internal/models"
)

// ErrNotFound reports that a client, version, or current-tokens record does
// not exist.
var ErrNotFound = errors.New("not found")

// ErrVersionConflict reports a failed base-version check during a write. The
// caller supplied a baseVersion that no longer names the latest version.
var ErrVersionConflict = errors.New("E_VERSION")

// Store is the persistence surface of the token service. Versions are
// append-only; the single exception is the metadata backfill performed right
// after creation.
type Store interface {
	// CreateVersion assigns the next per-client version number, inserts the
	// version and its change records atomically, and fills in
	// version.VersionNumber. When baseVersion is non-nil and does not match
	// the latest stored version number, it fails with ErrVersionConflict.
	CreateVersion(version *models.DesignSystemVersion, changes []models.DesignSystemChange, baseVersion *uint64) error

	// GetVersion fetches one version by id, scoped to the client.
	GetVersion(clientID, versionID string) (*models.DesignSystemVersion, error)

	// GetLatestVersion fetches the client's highest-numbered version.
	GetLatestVersion(clientID string) (*models.DesignSystemVersion, error)

	// ListVersions returns versions newest first, plus the total count.
	ListVersions(clientID string, limit, offset int) ([]models.DesignSystemVersion, int64, error)

	// GetChanges returns the change records of a version in insertion order.
	GetChanges(clientID, versionID string) ([]models.DesignSystemChange, error)

	// UpdateVersionMetadata backfills the description and changes summary of
	// a just-created version.
	UpdateVersionMetadata(versionID string, description *string, changesSummary models.JSON) error

	// GetCurrentTokens reads the materialized current tokens of a client.
	GetCurrentTokens(clientID string) (*models.ClientTokens, error)

	// SetCurrentTokens upserts the materialized current tokens of a client
	// and touches the client record.
	SetCurrentTokens(clientID string, raw, semantic models.JSON) error

	// GetClient fetches the client record.
	GetClient(clientID string) (*models.Client, error)
}
