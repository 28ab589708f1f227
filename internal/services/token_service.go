// token_service.go
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

package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/localnerve/brandkit-tokens/internal/models"
	"github.com/localnerve/brandkit-tokens/internal/store"
	"github.com/localnerve/brandkit-tokens/internal/tokens"
)

// Change sources recorded on version change rows.
const (
	SourceManualEdit = "manual_edit"
	SourceFigmaPull  = "figma_pull"
	SourceFigmaPush  = "figma_push"
	SourceAPIUpdate  = "api_update"
)

// ValidSource reports whether s is a recognized change source.
func ValidSource(s string) bool {
	switch s {
	case SourceManualEdit, SourceFigmaPull, SourceFigmaPush, SourceAPIUpdate:
		return true
	}
	return false
}

// TokenService orchestrates validation, derivation, diffing, and version
// persistence for one request at a time. It holds no per-request state.
type TokenService struct {
	Store store.Store
}

// NewTokenService creates a TokenService over st.
func NewTokenService(st store.Store) *TokenService {
	return &TokenService{Store: st}
}

// TokensResult is the read-side output: the stored raw and semantic trees
// plus the version identity they came from.
type TokensResult struct {
	VersionID      string      `json:"versionId"`
	VersionNumber  uint64      `json:"versionNumber"`
	RawTokens      models.JSON `json:"rawTokens"`
	SemanticTokens models.JSON `json:"semanticTokens"`
}

// UpdateInput carries one token update request. Source defaults to
// manual_edit; a figma sync origin implies figma_pull.
type UpdateInput struct {
	ClientID    string
	UserID      string
	Raw         tokens.RawTokens
	Source      string
	BaseVersion *uint64
	VersionName *string
	Description *string
	SyncOrigin  *string
	IsSnapshot  bool
}

// UpdateResult reports the outcome of an update. Warning carries a non-fatal
// materialization failure.
type UpdateResult struct {
	Version      *models.DesignSystemVersion
	ChangesCount int
	Summary      string
	Warning      string
}

// GetTokens returns the tokens of a specific version, or the client's
// current tokens when versionID is empty. Current reads prefer the
// materialized record and fall back to the latest version.
func (s *TokenService) GetTokens(clientID, versionID string) (*TokensResult, error) {
	if versionID != "" {
		version, err := s.Store.GetVersion(clientID, versionID)
		if err != nil {
			return nil, err
		}
		return &TokensResult{
			VersionID:      version.VersionID,
			VersionNumber:  version.VersionNumber,
			RawTokens:      version.RawTokens,
			SemanticTokens: version.SemanticTokens,
		}, nil
	}

	latest, err := s.Store.GetLatestVersion(clientID)
	if err != nil {
		return nil, err
	}

	result := &TokensResult{
		VersionID:      latest.VersionID,
		VersionNumber:  latest.VersionNumber,
		RawTokens:      latest.RawTokens,
		SemanticTokens: latest.SemanticTokens,
	}
	if current, err := s.Store.GetCurrentTokens(clientID); err == nil {
		result.RawTokens = current.RawTokens
		result.SemanticTokens = current.SemanticTokens
	}
	return result, nil
}

// UpdateTokens validates the submitted raw tree, diffs it against the stored
// tree, derives the semantic tree, and persists a new version with its
// change records. A submission identical to the stored tree is still
// recorded, as a version with zero change rows and a "No changes"
// auto-description.
func (s *TokenService) UpdateTokens(input UpdateInput) (*UpdateResult, error) {
	if err := tokens.Validate(input.Raw); err != nil {
		return nil, err
	}

	if _, err := s.Store.GetClient(input.ClientID); err != nil {
		return nil, err
	}

	oldRaw, err := s.currentRawTokens(input.ClientID)
	if err != nil {
		return nil, err
	}
	changes := tokens.Diff(oldRaw, input.Raw)

	semantic := tokens.Synthesize(input.Raw)
	rawJSON, err := models.ToJSON(input.Raw)
	if err != nil {
		return nil, err
	}
	semanticJSON, err := models.ToJSON(semantic)
	if err != nil {
		return nil, err
	}

	version := &models.DesignSystemVersion{
		VersionID:      uuid.NewString(),
		ClientID:       input.ClientID,
		CreatedBy:      input.UserID,
		VersionName:    input.VersionName,
		RawTokens:      rawJSON,
		SemanticTokens: semanticJSON,
		IsSnapshot:     input.IsSnapshot,
		SyncOrigin:     input.SyncOrigin,
	}

	source := input.Source
	if source == "" {
		source = SourceManualEdit
		if input.SyncOrigin != nil {
			source = SourceFigmaPull
		}
	}
	records, err := changeRecords(changes, source)
	if err != nil {
		return nil, err
	}

	if err := s.Store.CreateVersion(version, records, input.BaseVersion); err != nil {
		return nil, err
	}

	summary := tokens.Summary(changes)
	if err := s.backfillMetadata(version, changes, input.Description, summary); err != nil {
		return nil, err
	}

	result := &UpdateResult{
		Version:      version,
		ChangesCount: len(changes),
		Summary:      summary,
	}
	if err := s.Store.SetCurrentTokens(input.ClientID, rawJSON, semanticJSON); err != nil {
		// The version is durable; the materialized record self-heals on the
		// next successful write.
		result.Warning = fmt.Sprintf("current tokens not materialized: %v", err)
	}

	return result, nil
}

// backfillMetadata performs the one-time post-creation write: the changes
// summary mirror array and the description, auto-filled from the diff
// summary when the caller supplied none.
func (s *TokenService) backfillMetadata(version *models.DesignSystemVersion, changes []tokens.Change, description *string, summary string) error {
	if description == nil {
		description = &summary
	}
	if changes == nil {
		changes = []tokens.Change{}
	}
	summaryJSON, err := models.ToJSON(changes)
	if err != nil {
		return err
	}
	if err := s.Store.UpdateVersionMetadata(version.VersionID, description, summaryJSON); err != nil {
		return err
	}
	version.Description = description
	version.ChangesSummary = summaryJSON
	return nil
}

// ListVersions returns the client's version history newest first.
func (s *TokenService) ListVersions(clientID string, limit, offset int) ([]models.DesignSystemVersion, int64, error) {
	if _, err := s.Store.GetClient(clientID); err != nil {
		return nil, 0, err
	}
	return s.Store.ListVersions(clientID, limit, offset)
}

// GetChanges returns the change records of one version.
func (s *TokenService) GetChanges(clientID, versionID string) ([]models.DesignSystemChange, error) {
	return s.Store.GetChanges(clientID, versionID)
}

// Rollback creates a new version carrying the raw and semantic trees of the
// target version forward. History is never rewritten; the rollback is itself
// an append with no change records.
func (s *TokenService) Rollback(clientID, versionID, userID string) (*UpdateResult, error) {
	target, err := s.Store.GetVersion(clientID, versionID)
	if err != nil {
		return nil, err
	}

	version := &models.DesignSystemVersion{
		VersionID:       uuid.NewString(),
		ClientID:        clientID,
		CreatedBy:       userID,
		RawTokens:       target.RawTokens,
		SemanticTokens:  target.SemanticTokens,
		ParentVersionID: &target.VersionID,
	}
	if err := s.Store.CreateVersion(version, nil, nil); err != nil {
		return nil, err
	}

	description := fmt.Sprintf("Rollback to version %d", target.VersionNumber)
	if err := s.backfillMetadata(version, nil, &description, ""); err != nil {
		return nil, err
	}

	result := &UpdateResult{
		Version: version,
		Summary: tokens.Summary(nil),
	}
	if err := s.Store.SetCurrentTokens(clientID, target.RawTokens, target.SemanticTokens); err != nil {
		result.Warning = fmt.Sprintf("current tokens not materialized: %v", err)
	}

	return result, nil
}

// Snapshot records the client's current tokens as a named bookmark version.
// It is an ordinary save of the current raw tree with isSnapshot set, so it
// runs the full update pipeline and usually carries zero change rows.
func (s *TokenService) Snapshot(clientID, userID, label string, description *string) (*UpdateResult, error) {
	raw, err := s.currentRawTokens(clientID)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, store.ErrNotFound
	}

	return s.UpdateTokens(UpdateInput{
		ClientID:    clientID,
		UserID:      userID,
		Raw:         *raw,
		VersionName: &label,
		Description: description,
		IsSnapshot:  true,
	})
}

// currentRawTokens loads the stored raw tree for diffing: the materialized
// record when present, else the latest version, else nil on bootstrap.
func (s *TokenService) currentRawTokens(clientID string) (*tokens.RawTokens, error) {
	var stored models.JSON
	if current, err := s.Store.GetCurrentTokens(clientID); err == nil {
		stored = current.RawTokens
	} else if err != store.ErrNotFound {
		return nil, err
	} else {
		latest, err := s.Store.GetLatestVersion(clientID)
		if err == store.ErrNotFound {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		stored = latest.RawTokens
	}

	var raw tokens.RawTokens
	if err := models.FromJSON(stored, &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}

// changeRecords converts engine diff records to persistence rows.
func changeRecords(changes []tokens.Change, source string) ([]models.DesignSystemChange, error) {
	records := make([]models.DesignSystemChange, 0, len(changes))
	for _, ch := range changes {
		record := models.DesignSystemChange{
			TokenCategory: string(ch.Category),
			FieldPath:     ch.Path,
			ChangeKind:    string(ch.Kind),
			Source:        source,
		}
		if ch.OldValue != nil {
			oldJSON, err := models.ToJSON(ch.OldValue)
			if err != nil {
				return nil, err
			}
			record.OldValue = oldJSON
		}
		if ch.NewValue != nil {
			newJSON, err := models.ToJSON(ch.NewValue)
			if err != nil {
				return nil, err
			}
			record.NewValue = newJSON
		}
		records = append(records, record)
	}
	return records, nil
}
