// diff.go
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

package tokens

import (
	"fmt"
	"sort"
	"strings"
)

// Category tags a change record with the token family it belongs to.
type Category string

const (
	CategoryTypography   Category = "typography"
	CategoryColor        Category = "color"
	CategorySpacing      Category = "spacing"
	CategoryBorderRadius Category = "border_radius"
	CategoryShadow       Category = "shadow"
	CategoryComponent    Category = "component"
)

// categoryOrder is the fixed emission order for change records.
var categoryOrder = []Category{
	CategoryTypography,
	CategoryColor,
	CategorySpacing,
	CategoryBorderRadius,
	CategoryComponent,
}

// ChangeKind classifies a field-level transition between two raw trees.
type ChangeKind string

const (
	ChangeCreated ChangeKind = "created"
	ChangeUpdated ChangeKind = "updated"
	ChangeDeleted ChangeKind = "deleted"
)

// Change is one field-level difference between two consecutive RawTokens
// trees. Version and source attribution are stamped by the caller that
// persists the record.
type Change struct {
	Category Category   `json:"category"`
	Path     string     `json:"path"`
	Kind     ChangeKind `json:"kind"`
	OldValue any        `json:"oldValue,omitempty"`
	NewValue any        `json:"newValue,omitempty"`
}

// field is one flattened leaf of a RawTokens tree.
type field struct {
	cat   Category
	path  string
	value any
}

var componentKinds = []string{"button", "input", "card"}

func componentOverrides(c *RawComponents, kind string) map[string]string {
	switch kind {
	case "button":
		return c.Button
	case "input":
		return c.Input
	case "card":
		return c.Card
	}
	return nil
}

// flatten lists every leaf field of a raw tree in the fixed category order,
// with fields in declaration order within each category. Component override
// keys are sorted so map iteration cannot perturb the emission order. A nil
// components block flattens to nothing, which the differ treats as an empty
// object rather than a skipped category.
func flatten(r RawTokens) []field {
	t := r.Typography
	c := r.Colors
	out := []field{
		{CategoryTypography, "typography.fontSizeBase", t.FontSizeBase},
		{CategoryTypography, "typography.lineHeightBase", t.LineHeightBase},
		{CategoryTypography, "typography.typeScaleBase", t.TypeScaleBase},
		{CategoryTypography, "typography.letterSpacingBase", t.LetterSpacingBase},
		{CategoryTypography, "typography.fontFamilyPrimary", t.FontFamilyPrimary},
		{CategoryTypography, "typography.fontFamilySecondary", t.FontFamilySecondary},
		{CategoryTypography, "typography.fontFamilyMono", t.FontFamilyMono},

		{CategoryColor, "colors.brandPrimaryBase", c.BrandPrimaryBase},
		{CategoryColor, "colors.brandSecondaryBase", c.BrandSecondaryBase},
		{CategoryColor, "colors.neutralBase", c.NeutralBase},
		{CategoryColor, "colors.successBase", c.SuccessBase},
		{CategoryColor, "colors.warningBase", c.WarningBase},
		{CategoryColor, "colors.errorBase", c.ErrorBase},
		{CategoryColor, "colors.infoBase", c.InfoBase},

		{CategorySpacing, "spacing.unitBase", r.Spacing.UnitBase},
		{CategorySpacing, "spacing.scaleBase", r.Spacing.ScaleBase},

		{CategoryBorderRadius, "borders.widthBase", r.Borders.WidthBase},
		{CategoryBorderRadius, "borders.radiusBase", r.Borders.RadiusBase},
	}

	if r.Components != nil {
		for _, kind := range componentKinds {
			overrides := componentOverrides(r.Components, kind)
			keys := make([]string, 0, len(overrides))
			for k := range overrides {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				out = append(out, field{
					cat:   CategoryComponent,
					path:  fmt.Sprintf("components.%s.%s", kind, k),
					value: overrides[k],
				})
			}
		}
	}

	return out
}

// Diff structurally compares two raw trees and emits one change record per
// differing leaf field. A nil old tree is the bootstrap case: every field of
// cur is a creation. Record order is stable: categories in the fixed order,
// fields in declaration order, creations/updates before deletions within a
// category.
func Diff(old *RawTokens, cur RawTokens) []Change {
	curFields := flatten(cur)

	var oldFields []field
	if old != nil {
		oldFields = flatten(*old)
	}

	oldByPath := make(map[string]field, len(oldFields))
	for _, f := range oldFields {
		oldByPath[f.path] = f
	}
	curPaths := make(map[string]struct{}, len(curFields))
	for _, f := range curFields {
		curPaths[f.path] = struct{}{}
	}

	var changes []Change
	for _, cat := range categoryOrder {
		for _, f := range curFields {
			if f.cat != cat {
				continue
			}
			prev, existed := oldByPath[f.path]
			switch {
			case !existed:
				changes = append(changes, Change{
					Category: cat, Path: f.path, Kind: ChangeCreated, NewValue: f.value,
				})
			case prev.value != f.value:
				changes = append(changes, Change{
					Category: cat, Path: f.path, Kind: ChangeUpdated,
					OldValue: prev.value, NewValue: f.value,
				})
			}
		}
		for _, f := range oldFields {
			if f.cat != cat {
				continue
			}
			if _, kept := curPaths[f.path]; !kept {
				changes = append(changes, Change{
					Category: cat, Path: f.path, Kind: ChangeDeleted, OldValue: f.value,
				})
			}
		}
	}

	return changes
}

// Summary renders a one-line human-readable digest of a change list:
// "N created, M updated, K deleted" with zero-count clauses omitted, or
// "No changes" for an empty list.
func Summary(changes []Change) string {
	var created, updated, deleted int
	for _, ch := range changes {
		switch ch.Kind {
		case ChangeCreated:
			created++
		case ChangeUpdated:
			updated++
		case ChangeDeleted:
			deleted++
		}
	}

	var parts []string
	if created > 0 {
		parts = append(parts, fmt.Sprintf("%d created", created))
	}
	if updated > 0 {
		parts = append(parts, fmt.Sprintf("%d updated", updated))
	}
	if deleted > 0 {
		parts = append(parts, fmt.Sprintf("%d deleted", deleted))
	}
	if len(parts) == 0 {
		return "No changes"
	}
	return strings.Join(parts, ", ")
}
