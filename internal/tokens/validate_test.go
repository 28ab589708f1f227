package tokens_test

import (
	"errors"
	"testing"

	"github.com/localnerve/brandkit-tokens/internal/tokens"
)

func findField(verr *tokens.ValidationError, path string) bool {
	for _, f := range verr.Fields {
		if f.Path == path {
			return true
		}
	}
	return false
}

func TestValidateAcceptsBaseTokens(t *testing.T) {
	if err := tokens.Validate(baseRawTokens()); err != nil {
		t.Errorf("Expected base fixture to validate, got %v", err)
	}
}

// TestValidateFontSizeBoundaries checks the inclusive range edges.
func TestValidateFontSizeBoundaries(t *testing.T) {
	for _, v := range []float64{0.5, 2} {
		raw := baseRawTokens()
		raw.Typography.FontSizeBase = v
		if err := tokens.Validate(raw); err != nil {
			t.Errorf("Expected fontSizeBase=%g to be accepted, got %v", v, err)
		}
	}

	for _, v := range []float64{0.49, 2.01} {
		raw := baseRawTokens()
		raw.Typography.FontSizeBase = v
		err := tokens.Validate(raw)
		if err == nil {
			t.Fatalf("Expected fontSizeBase=%g to be rejected", v)
		}
		var verr *tokens.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Expected a *ValidationError, got %T", err)
		}
		if !findField(verr, "typography.fontSizeBase") {
			t.Errorf("Expected violation naming typography.fontSizeBase, got %+v", verr.Fields)
		}
	}
}

// TestValidateReportsEveryFailure verifies whole-input rejection listing all
// failing fields, not just the first.
func TestValidateReportsEveryFailure(t *testing.T) {
	raw := baseRawTokens()
	raw.Typography.FontSizeBase = 5
	raw.Colors.BrandPrimaryBase = "blue"
	raw.Spacing.ScaleBase = 0.9
	raw.Borders.WidthBase = 0

	err := tokens.Validate(raw)
	var verr *tokens.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected a *ValidationError, got %v", err)
	}

	for _, path := range []string{
		"typography.fontSizeBase",
		"colors.brandPrimaryBase",
		"spacing.scaleBase",
		"borders.widthBase",
	} {
		if !findField(verr, path) {
			t.Errorf("Expected violation for %s, got %+v", path, verr.Fields)
		}
	}
}

func TestValidateHexPattern(t *testing.T) {
	bad := []string{"#12345", "#GGGGGG", "0052CC", "#0052cc0", "rgb(0,0,0)"}
	for _, v := range bad {
		raw := baseRawTokens()
		raw.Colors.ErrorBase = v
		if tokens.Validate(raw) == nil {
			t.Errorf("Expected hex %q to be rejected", v)
		}
	}

	raw := baseRawTokens()
	raw.Colors.ErrorBase = "#de350b"
	if err := tokens.Validate(raw); err != nil {
		t.Errorf("Expected lowercase hex to be accepted, got %v", err)
	}
}

func TestValidateComponentOverrides(t *testing.T) {
	raw := baseRawTokens()
	raw.Components = &tokens.RawComponents{
		Button: map[string]string{"background": "brandPrimaryBase"},
		Card:   map[string]string{"border": "#ABCDEF"},
	}
	if err := tokens.Validate(raw); err != nil {
		t.Errorf("Expected valid overrides to be accepted, got %v", err)
	}

	raw.Components.Input = map[string]string{"border": "notAReference"}
	err := tokens.Validate(raw)
	var verr *tokens.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected a *ValidationError, got %v", err)
	}
	if !findField(verr, "components.input.border") {
		t.Errorf("Expected violation for components.input.border, got %+v", verr.Fields)
	}
}
