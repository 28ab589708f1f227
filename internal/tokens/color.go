package tokens

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Variations are perceptual brighten/darken variants of a base color, ordered
// lightest to darkest: XLight > Light > base > Dark > XDark.
type Variations struct {
	XLight string
	Light  string
	Dark   string
	XDark  string
}

// Tone steps for ColorVariations, expressed in Lab lightness. go-colorful
// scales L to 0..1, so one tone unit of 0.06 is a 6-point L* shift.
const (
	toneUnit = 0.06
	toneNear = 1.5
	toneFar  = 3.0
)

var hslPattern = regexp.MustCompile(`^hsl\(\s*([0-9.]+)\s*,\s*([0-9.]+)%\s*,\s*([0-9.]+)%\s*\)$`)

// neutralFallback is the gray ramp emitted when the neutral base does not
// parse as hsl(h, s%, l%). Index 0 is white-like, index 10 black-like.
var neutralFallback = [11]string{
	"hsl(0, 0%, 100%)",
	"hsl(0, 0%, 90%)",
	"hsl(0, 0%, 80%)",
	"hsl(0, 0%, 70%)",
	"hsl(0, 0%, 60%)",
	"hsl(0, 0%, 50%)",
	"hsl(0, 0%, 40%)",
	"hsl(0, 0%, 30%)",
	"hsl(0, 0%, 20%)",
	"hsl(0, 0%, 10%)",
	"hsl(0, 0%, 0%)",
}

// NeutralScale derives an 11-shade neutral ramp from an hsl(h, s%, l%) base,
// holding hue and saturation constant while lightness runs 100 down to 0 in
// steps of 10. A base that does not parse yields the documented gray
// fallback; this function never fails.
func NeutralScale(base string) [11]string {
	h, s, _, ok := parseHSL(base)
	if !ok {
		return neutralFallback
	}

	var scale [11]string
	for i := 0; i < 11; i++ {
		lightness := 100 - i*10
		scale[i] = fmt.Sprintf("hsl(%s, %s%%, %d%%)", fmtNum(h), fmtNum(s), lightness)
	}
	return scale
}

// ColorVariations produces four perceptual lightness variants of base by
// shifting Lab lightness by ±1.5 and ±3 tone units, clamped to the sRGB
// gamut. A base that parses as neither hex nor hsl passes through unchanged
// in all four slots; this function never fails.
func ColorVariations(base string) Variations {
	c, ok := parseColor(base)
	if !ok {
		return Variations{XLight: base, Light: base, Dark: base, XDark: base}
	}

	return Variations{
		XLight: shiftLightness(c, toneFar*toneUnit),
		Light:  shiftLightness(c, toneNear*toneUnit),
		Dark:   shiftLightness(c, -toneNear*toneUnit),
		XDark:  shiftLightness(c, -toneFar*toneUnit),
	}
}

// shiftLightness moves a color along the Lab lightness axis, keeping a/b.
func shiftLightness(c colorful.Color, delta float64) string {
	l, a, b := c.Lab()
	l += delta
	if l < 0 {
		l = 0
	} else if l > 1 {
		l = 1
	}
	return colorful.Lab(l, a, b).Clamped().Hex()
}

// parseColor accepts #RRGGBB hex or hsl(h, s%, l%) strings.
func parseColor(s string) (colorful.Color, bool) {
	s = strings.TrimSpace(s)
	if hexColorPattern.MatchString(s) {
		c, err := colorful.Hex(strings.ToLower(s))
		if err == nil {
			return c, true
		}
	}
	if h, sat, l, ok := parseHSL(s); ok {
		return colorful.Hsl(h, sat/100, l/100), true
	}
	return colorful.Color{}, false
}

func parseHSL(s string) (h, sat, l float64, ok bool) {
	m := hslPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, 0, false
	}
	h, err1 := strconv.ParseFloat(m[1], 64)
	sat, err2 := strconv.ParseFloat(m[2], 64)
	l, err3 := strconv.ParseFloat(m[3], 64)
	if err1 != nil || err2 != nil || err3 != nil || sat > 100 || l > 100 {
		return 0, 0, 0, false
	}
	return h, sat, l, true
}

// fmtNum renders a float without trailing zeros, matching authored hsl input.
func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
