package models

import (
	"time"
)

// DesignSystemVersion is one immutable snapshot of a client's raw and
// semantic tokens. Versions are append-only: rows are created once and only
// the description/changes-summary backfill immediately after creation may
// touch them. VersionNumber increases monotonically per client.
type DesignSystemVersion struct {
	VersionID       string    `gorm:"type:char(36);primaryKey" json:"versionId"`
	ClientID        string    `gorm:"type:char(36);not null;index:idx_versions_client_created" json:"clientId"`
	VersionNumber   uint64    `gorm:"not null;default:0" json:"versionNumber"`
	CreatedBy       string    `gorm:"type:char(36);not null" json:"createdBy"`
	VersionName     *string   `gorm:"size:255" json:"versionName,omitempty"`
	Description     *string   `gorm:"size:1024" json:"description,omitempty"`
	RawTokens       JSON      `gorm:"type:json" json:"rawTokens"`
	SemanticTokens  JSON      `gorm:"type:json" json:"semanticTokens"`
	ChangesSummary  JSON      `gorm:"type:json" json:"changesSummary,omitempty"`
	ParentVersionID *string   `gorm:"type:char(36)" json:"parentVersionId,omitempty"`
	IsSnapshot      bool      `gorm:"not null;default:false" json:"isSnapshot"`
	SyncOrigin      *string   `gorm:"size:255" json:"syncOrigin,omitempty"`
	CreatedAt       time.Time `gorm:"index:idx_versions_client_created" json:"createdAt"`

	Changes []DesignSystemChange `gorm:"foreignKey:VersionID;references:VersionID" json:"-"`
}

// DesignSystemChange is one field-level diff record attached to the version
// that introduced it. Created once, never updated.
type DesignSystemChange struct {
	ChangeID      uint64    `gorm:"primaryKey;autoIncrement" json:"changeId"`
	VersionID     string    `gorm:"type:char(36);not null;index" json:"versionId"`
	TokenCategory string    `gorm:"size:32;not null" json:"tokenCategory"`
	FieldPath     string    `gorm:"size:255;not null" json:"fieldPath"`
	ChangeKind    string    `gorm:"size:16;not null" json:"changeKind"`
	OldValue      JSON      `gorm:"type:json" json:"oldValue,omitempty"`
	NewValue      JSON      `gorm:"type:json" json:"newValue,omitempty"`
	Source        string    `gorm:"size:32;not null" json:"source"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Client is the owning tenant of a token history. The portal manages the
// full client record elsewhere; this service only reads identity and touches
// the modification timestamp on materialization.
type Client struct {
	ClientID   string    `gorm:"type:char(36);primaryKey" json:"clientId"`
	ClientName string    `gorm:"size:255" json:"clientName"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ClientTokens is the per-client materialized "current tokens" record: the
// raw and semantic pair of the most recent version, kept for cheap reads.
// It is a cache over the version history and can always be rebuilt from the
// latest DesignSystemVersion.
type ClientTokens struct {
	ClientID       string    `gorm:"type:char(36);primaryKey" json:"clientId"`
	RawTokens      JSON      `gorm:"type:json" json:"rawTokens"`
	SemanticTokens JSON      `gorm:"type:json" json:"semanticTokens"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// TableName overrides the table name for DesignSystemVersion
func (DesignSystemVersion) TableName() string {
	return "design_system_versions"
}

// TableName overrides the table name for DesignSystemChange
func (DesignSystemChange) TableName() string {
	return "design_system_changes"
}

// TableName overrides the table name for Client
func (Client) TableName() string {
	return "clients"
}

// TableName overrides the table name for ClientTokens
func (ClientTokens) TableName() string {
	return "client_tokens"
}
