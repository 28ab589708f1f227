package tokens_test

import (
	"reflect"
	"testing"

	"github.com/localnerve/brandkit-tokens/internal/tokens"
)

// TestSynthesizeDeterministic is the core property of the engine: equal
// inputs always produce structurally equal outputs.
func TestSynthesizeDeterministic(t *testing.T) {
	raw := baseRawTokens()

	first := tokens.Synthesize(raw)
	second := tokens.Synthesize(raw)

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected repeated synthesis of equal input to be structurally equal")
	}
}

func TestSynthesizeRoleTable(t *testing.T) {
	raw := baseRawTokens()
	sem := tokens.Synthesize(raw)

	if sem.Colors.BrandPrimary != "#0052CC" {
		t.Errorf("Expected brandPrimary #0052CC, got %s", sem.Colors.BrandPrimary)
	}
	if sem.Colors.ButtonPrimaryBg != raw.Colors.BrandPrimaryBase {
		t.Errorf("Expected buttonPrimaryBg to be the primary brand color, got %s", sem.Colors.ButtonPrimaryBg)
	}
	if sem.Colors.TextHeading != raw.Colors.BrandSecondaryBase {
		t.Errorf("Expected textHeading to be the secondary brand color, got %s", sem.Colors.TextHeading)
	}
	if sem.Colors.BorderActive != raw.Colors.BrandPrimaryBase {
		t.Errorf("Expected borderActive to be the primary brand color, got %s", sem.Colors.BorderActive)
	}
	if sem.Typography.FontSizeH4 != "1rem" {
		t.Errorf("Expected fontSizeH4 1rem, got %s", sem.Typography.FontSizeH4)
	}
	if sem.Colors.Neutral0 != "hsl(220, 15%, 100%)" {
		t.Errorf("Expected neutral0 from the hsl base, got %s", sem.Colors.Neutral0)
	}
	if sem.Shadows.Card != sem.Shadows.Elevation2 {
		t.Error("Expected card shadow alias to track elevation2")
	}
}

// TestSynthesizeIsolatedColorChange verifies a brand color edit reshapes the
// color category while leaving unrelated categories byte-identical.
func TestSynthesizeIsolatedColorChange(t *testing.T) {
	before := tokens.Synthesize(baseRawTokens())

	raw := baseRawTokens()
	raw.Colors.BrandPrimaryBase = "#FF0000"
	after := tokens.Synthesize(raw)

	if after.Colors.BrandPrimary != "#FF0000" {
		t.Errorf("Expected brandPrimary #FF0000, got %s", after.Colors.BrandPrimary)
	}
	if after.Colors.BrandPrimaryLight == before.Colors.BrandPrimaryLight {
		t.Error("Expected derived primary variants to change with the base")
	}
	if after.Colors.BrandPrimaryDark == before.Colors.BrandPrimaryDark {
		t.Error("Expected derived primary variants to change with the base")
	}
	if !reflect.DeepEqual(after.Typography, before.Typography) {
		t.Error("Expected typography to be unaffected by a color edit")
	}
	if !reflect.DeepEqual(after.Spacing, before.Spacing) {
		t.Error("Expected spacing to be unaffected by a color edit")
	}
	if !reflect.DeepEqual(after.Borders, before.Borders) {
		t.Error("Expected borders to be unaffected by a color edit")
	}
}

func TestSynthesizeComponentOverrides(t *testing.T) {
	raw := baseRawTokens()
	raw.Components = &tokens.RawComponents{
		Button: map[string]string{
			"background": "brandSecondaryBase",
			"text":       "#FFFFFF",
		},
		Card: map[string]string{
			"border": "errorBase",
		},
	}

	sem := tokens.Synthesize(raw)

	if sem.Colors.ButtonPrimaryBg != raw.Colors.BrandSecondaryBase {
		t.Errorf("Expected symbolic button background to resolve to %s, got %s",
			raw.Colors.BrandSecondaryBase, sem.Colors.ButtonPrimaryBg)
	}
	if sem.Colors.ButtonPrimaryText != "#FFFFFF" {
		t.Errorf("Expected literal button text #FFFFFF, got %s", sem.Colors.ButtonPrimaryText)
	}
	if sem.Colors.CardBorder != raw.Colors.ErrorBase {
		t.Errorf("Expected card border to resolve to the error color, got %s", sem.Colors.CardBorder)
	}
	// Unoverridden roles keep the fixed table.
	if sem.Colors.InputBg != sem.Colors.Neutral0 {
		t.Errorf("Expected default input background, got %s", sem.Colors.InputBg)
	}
}

func TestSynthesizeNeutralFallbackInput(t *testing.T) {
	raw := baseRawTokens()
	raw.Colors.NeutralBase = "definitely-not-a-color"

	// Must not panic and must produce the gray ramp.
	sem := tokens.Synthesize(raw)
	if sem.Colors.Neutral0 != "hsl(0, 0%, 100%)" {
		t.Errorf("Expected gray fallback neutral0, got %s", sem.Colors.Neutral0)
	}
	if sem.Colors.Neutral100 != "hsl(0, 0%, 0%)" {
		t.Errorf("Expected gray fallback neutral100, got %s", sem.Colors.Neutral100)
	}
}
