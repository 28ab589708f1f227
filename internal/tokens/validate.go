package tokens

import (
	"fmt"
	"regexp"
	"strings"
)

// Accepted ranges for the authored numeric values. Inclusive on both ends.
const (
	FontSizeBaseMin      = 0.5
	FontSizeBaseMax      = 2.0
	LineHeightBaseMin    = 1.0
	LineHeightBaseMax    = 3.0
	TypeScaleBaseMin     = 1.1
	TypeScaleBaseMax     = 2.0
	LetterSpacingBaseMin = -0.1
	LetterSpacingBaseMax = 0.5
	SpacingUnitMin       = 0.25
	SpacingUnitMax       = 2.0
	SpacingScaleMin      = 1.1
	SpacingScaleMax      = 2.0
	BorderWidthMin       = 1.0
	BorderWidthMax       = 8.0
	BorderRadiusMin      = 0.0
	BorderRadiusMax      = 50.0
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// FieldError names a single violated constraint on a raw token field.
type FieldError struct {
	Path       string `json:"path"`
	Constraint string `json:"constraint"`
}

// ValidationError reports every failing field of a RawTokens tree. Malformed
// input is rejected wholesale; a partial tree is never accepted.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	paths := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		paths[i] = f.Path
	}
	return fmt.Sprintf("invalid raw tokens: %s", strings.Join(paths, ", "))
}

// Validate checks every raw token field against its range or pattern
// constraint and returns a *ValidationError listing all violations, or nil
// when the tree is well-formed.
func Validate(raw RawTokens) error {
	var fields []FieldError

	checkRange := func(path string, v, min, max float64) {
		if v < min || v > max {
			fields = append(fields, FieldError{
				Path:       path,
				Constraint: fmt.Sprintf("must be between %g and %g", min, max),
			})
		}
	}
	checkHex := func(path, v string) {
		if !hexColorPattern.MatchString(v) {
			fields = append(fields, FieldError{
				Path:       path,
				Constraint: "must be a #RRGGBB hex color",
			})
		}
	}
	checkNonEmpty := func(path, v string) {
		if strings.TrimSpace(v) == "" {
			fields = append(fields, FieldError{Path: path, Constraint: "must not be empty"})
		}
	}

	t := raw.Typography
	checkRange("typography.fontSizeBase", t.FontSizeBase, FontSizeBaseMin, FontSizeBaseMax)
	checkRange("typography.lineHeightBase", t.LineHeightBase, LineHeightBaseMin, LineHeightBaseMax)
	checkRange("typography.typeScaleBase", t.TypeScaleBase, TypeScaleBaseMin, TypeScaleBaseMax)
	checkRange("typography.letterSpacingBase", t.LetterSpacingBase, LetterSpacingBaseMin, LetterSpacingBaseMax)
	checkNonEmpty("typography.fontFamilyPrimary", t.FontFamilyPrimary)
	checkNonEmpty("typography.fontFamilySecondary", t.FontFamilySecondary)
	checkNonEmpty("typography.fontFamilyMono", t.FontFamilyMono)

	c := raw.Colors
	checkHex("colors.brandPrimaryBase", c.BrandPrimaryBase)
	checkHex("colors.brandSecondaryBase", c.BrandSecondaryBase)
	checkNonEmpty("colors.neutralBase", c.NeutralBase)
	checkHex("colors.successBase", c.SuccessBase)
	checkHex("colors.warningBase", c.WarningBase)
	checkHex("colors.errorBase", c.ErrorBase)
	checkHex("colors.infoBase", c.InfoBase)

	checkRange("spacing.unitBase", raw.Spacing.UnitBase, SpacingUnitMin, SpacingUnitMax)
	checkRange("spacing.scaleBase", raw.Spacing.ScaleBase, SpacingScaleMin, SpacingScaleMax)

	checkRange("borders.widthBase", raw.Borders.WidthBase, BorderWidthMin, BorderWidthMax)
	checkRange("borders.radiusBase", raw.Borders.RadiusBase, BorderRadiusMin, BorderRadiusMax)

	if raw.Components != nil {
		for _, kind := range componentKinds {
			for key, value := range componentOverrides(raw.Components, kind) {
				path := fmt.Sprintf("components.%s.%s", kind, key)
				if strings.TrimSpace(value) == "" {
					fields = append(fields, FieldError{Path: path, Constraint: "must not be empty"})
					continue
				}
				if !hexColorPattern.MatchString(value) && !isColorReference(value) {
					fields = append(fields, FieldError{
						Path:       path,
						Constraint: "must be a #RRGGBB hex color or a raw color reference",
					})
				}
			}
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// isColorReference reports whether v names a raw color field that component
// overrides may reference symbolically.
func isColorReference(v string) bool {
	switch v {
	case "brandPrimaryBase", "brandSecondaryBase", "neutralBase",
		"successBase", "warningBase", "errorBase", "infoBase":
		return true
	}
	return false
}
