package tokens

import (
	"math"
	"strconv"
)

// TypeSizes is the geometric type scale: headings H1..H6 around the body
// size, plus the body-relative small and caption sizes. All values carry a
// rem suffix.
type TypeSizes struct {
	H1      string
	H2      string
	H3      string
	H4      string
	H5      string
	H6      string
	Body    string
	Small   string
	Caption string
}

// TypeScale computes the type scale from the base size and ratio. Headings
// are base*ratio^3 down to base*ratio^-2, so H4 equals the body size.
func TypeScale(base, ratio float64) TypeSizes {
	step := func(exp int) string {
		return fmtRem(base * math.Pow(ratio, float64(exp)))
	}
	return TypeSizes{
		H1:      step(3),
		H2:      step(2),
		H3:      step(1),
		H4:      step(0),
		H5:      step(-1),
		H6:      step(-2),
		Body:    fmtRem(base),
		Small:   step(-1),
		Caption: step(-2),
	}
}

// SpacingSteps are the 8 named spacing steps, unit*ratio^k for k=-2..5 with
// md at the base unit. Rem values.
type SpacingSteps struct {
	XS    string
	SM    string
	MD    string
	LG    string
	XL    string
	XXL   string
	XXXL  string
	XXXXL string
}

// SpacingScale computes the named spacing steps from the base unit and ratio.
func SpacingScale(unit, ratio float64) SpacingSteps {
	step := func(exp int) string {
		return fmtRem(unit * math.Pow(ratio, float64(exp)))
	}
	return SpacingSteps{
		XS:    step(-2),
		SM:    step(-1),
		MD:    step(0),
		LG:    step(1),
		XL:    step(2),
		XXL:   step(3),
		XXXL:  step(4),
		XXXXL: step(5),
	}
}

// RadiusSteps are the 5 named border-radius steps as fixed multiples of the
// base radius: 0.25x, 0.5x, 1x, 1.5x, 2x. Px values.
type RadiusSteps struct {
	XS string
	SM string
	MD string
	LG string
	XL string
}

// RadiusScale computes the named radius steps from the base radius.
func RadiusScale(base float64) RadiusSteps {
	return RadiusSteps{
		XS: fmtPx(base * 0.25),
		SM: fmtPx(base * 0.5),
		MD: fmtPx(base),
		LG: fmtPx(base * 1.5),
		XL: fmtPx(base * 2),
	}
}

// ShadowLevels are the fixed elevation shadows, level 0 (flat) through 5.
// These are static CSS literals; they complete the semantic contract and do
// not vary with raw input.
type ShadowLevels struct {
	Elevation0 string
	Elevation1 string
	Elevation2 string
	Elevation3 string
	Elevation4 string
	Elevation5 string
}

// Shadows returns the fixed elevation set.
func Shadows() ShadowLevels {
	return ShadowLevels{
		Elevation0: "none",
		Elevation1: "0 1px 2px rgba(0, 0, 0, 0.05)",
		Elevation2: "0 1px 3px rgba(0, 0, 0, 0.1), 0 1px 2px rgba(0, 0, 0, 0.06)",
		Elevation3: "0 4px 6px rgba(0, 0, 0, 0.1), 0 2px 4px rgba(0, 0, 0, 0.06)",
		Elevation4: "0 10px 15px rgba(0, 0, 0, 0.1), 0 4px 6px rgba(0, 0, 0, 0.05)",
		Elevation5: "0 20px 25px rgba(0, 0, 0, 0.1), 0 10px 10px rgba(0, 0, 0, 0.04)",
	}
}

// TransitionSet are the fixed transition durations, easing, and composed
// shorthand strings. Static like shadows.
type TransitionSet struct {
	DurationFast   string
	DurationBase   string
	DurationSlow   string
	EasingStandard string
	Color          string
	Transform      string
	Opacity        string
}

// Transitions returns the fixed transition set.
func Transitions() TransitionSet {
	const easing = "cubic-bezier(0.4, 0, 0.2, 1)"
	return TransitionSet{
		DurationFast:   "150ms",
		DurationBase:   "250ms",
		DurationSlow:   "400ms",
		EasingStandard: easing,
		Color:          "color 150ms " + easing + ", background-color 150ms " + easing,
		Transform:      "transform 250ms " + easing,
		Opacity:        "opacity 250ms " + easing,
	}
}

// fmtRem formats a rem value rounded to 3 decimals with trailing zeros
// trimmed, so a base of 1 renders as "1rem".
func fmtRem(v float64) string {
	return fmtScaleValue(v) + "rem"
}

// fmtPx formats a px value the same way.
func fmtPx(v float64) string {
	return fmtScaleValue(v) + "px"
}

// fmtEm formats an em value the same way.
func fmtEm(v float64) string {
	return fmtScaleValue(v) + "em"
}

func fmtScaleValue(v float64) string {
	rounded := math.Round(v*1000) / 1000
	if rounded == 0 {
		// avoid "-0"
		rounded = 0
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
