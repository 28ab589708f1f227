// data.go
//
// Design token derivation and versioning service for the brandkit brand guidelines portal
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of brandkit-tokens.
// brandkit-tokens is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// brandkit-tokens is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with brandkit-tokens.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package helpers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/localnerve/brandkit-tokens/internal/models"
	"github.com/localnerve/brandkit-tokens/internal/tokens"
	"gorm.io/gorm"
)

// CreateTestClient creates a client row and returns its id
func CreateTestClient(t *testing.T, db *gorm.DB, name string) string {
	clientID := uuid.NewString()
	client := models.Client{
		ClientID:   clientID,
		ClientName: name,
	}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return clientID
}

// TestRawTokens returns a valid raw token tree for seeding
func TestRawTokens() tokens.RawTokens {
	return tokens.RawTokens{
		Typography: tokens.RawTypography{
			FontSizeBase:        1,
			LineHeightBase:      1.5,
			TypeScaleBase:       1.25,
			LetterSpacingBase:   0,
			FontFamilyPrimary:   "Inter, sans-serif",
			FontFamilySecondary: "Lora, serif",
			FontFamilyMono:      "JetBrains Mono, monospace",
		},
		Colors: tokens.RawColors{
			BrandPrimaryBase:   "#0052CC",
			BrandSecondaryBase: "#172B4D",
			NeutralBase:        "hsl(220, 15%, 50%)",
			SuccessBase:        "#36B37E",
			WarningBase:        "#FFAB00",
			ErrorBase:          "#DE350B",
			InfoBase:           "#00B8D9",
		},
		Spacing: tokens.RawSpacing{UnitBase: 1, ScaleBase: 1.5},
		Borders: tokens.RawBorders{WidthBase: 1, RadiusBase: 8},
	}
}

// CreateTestVersion seeds one version row for a client with derived tokens
func CreateTestVersion(t *testing.T, db *gorm.DB, clientID string, versionNumber uint64, raw tokens.RawTokens) string {
	rawJSON, err := models.ToJSON(raw)
	if err != nil {
		t.Fatalf("Failed to marshal raw tokens: %v", err)
	}
	semJSON, err := models.ToJSON(tokens.Synthesize(raw))
	if err != nil {
		t.Fatalf("Failed to marshal semantic tokens: %v", err)
	}

	version := models.DesignSystemVersion{
		VersionID:      uuid.NewString(),
		ClientID:       clientID,
		VersionNumber:  versionNumber,
		CreatedBy:      uuid.NewString(),
		RawTokens:      rawJSON,
		SemanticTokens: semJSON,
	}
	if err := db.Create(&version).Error; err != nil {
		t.Fatalf("Failed to create version: %v", err)
	}
	return version.VersionID
}
