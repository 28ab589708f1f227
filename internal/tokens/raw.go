package tokens

// RawTokens is the authored input to the derivation pipeline: the small set of
// base values a brand manager edits by hand. Everything else in the design
// system is derived from these by Synthesize.
type RawTokens struct {
	Typography RawTypography  `json:"typography"`
	Colors     RawColors      `json:"colors"`
	Spacing    RawSpacing     `json:"spacing"`
	Borders    RawBorders     `json:"borders"`
	Components *RawComponents `json:"components,omitempty"`
}

// RawTypography holds the authored typography base values.
// Sizes are rem, letter spacing is em.
type RawTypography struct {
	FontSizeBase        float64 `json:"fontSizeBase"`
	LineHeightBase      float64 `json:"lineHeightBase"`
	TypeScaleBase       float64 `json:"typeScaleBase"`
	LetterSpacingBase   float64 `json:"letterSpacingBase"`
	FontFamilyPrimary   string  `json:"fontFamilyPrimary"`
	FontFamilySecondary string  `json:"fontFamilySecondary"`
	FontFamilyMono      string  `json:"fontFamilyMono"`
}

// RawColors holds the authored brand and interactive colors. Brand and
// interactive colors are strict #RRGGBB hex; the neutral base is a free-form
// color string, typically hsl(h, s%, l%).
type RawColors struct {
	BrandPrimaryBase   string `json:"brandPrimaryBase"`
	BrandSecondaryBase string `json:"brandSecondaryBase"`
	NeutralBase        string `json:"neutralBase"`
	SuccessBase        string `json:"successBase"`
	WarningBase        string `json:"warningBase"`
	ErrorBase          string `json:"errorBase"`
	InfoBase           string `json:"infoBase"`
}

// RawSpacing holds the spacing base unit (rem) and geometric scale ratio.
type RawSpacing struct {
	UnitBase  float64 `json:"unitBase"`
	ScaleBase float64 `json:"scaleBase"`
}

// RawBorders holds the border base width and radius, both px.
type RawBorders struct {
	WidthBase  float64 `json:"widthBase"`
	RadiusBase float64 `json:"radiusBase"`
}

// RawComponents carries optional per-component color overrides. Values are
// either literal color strings or symbolic references to a raw color field
// (e.g. "brandPrimaryBase"). A nil RawComponents means "no overrides" and is
// treated as an empty set by the differ.
type RawComponents struct {
	Button map[string]string `json:"button,omitempty"`
	Input  map[string]string `json:"input,omitempty"`
	Card   map[string]string `json:"card,omitempty"`
}
