package tokens

// SemanticTokens is the fully expanded, directly usable design-token set.
// Every value is concrete (sized with units, hex/hsl strings, CSS shorthand).
// Semantic tokens are always regenerated from RawTokens by Synthesize and are
// never edited or diffed directly.
type SemanticTokens struct {
	Typography  SemanticTypography  `json:"typography"`
	Colors      SemanticColors      `json:"colors"`
	Spacing     SemanticSpacing     `json:"spacing"`
	Borders     SemanticBorders     `json:"borders"`
	Shadows     SemanticShadows     `json:"shadows"`
	Transitions SemanticTransitions `json:"transitions"`
}

type SemanticTypography struct {
	FontSizeH1      string `json:"fontSizeH1"`
	FontSizeH2      string `json:"fontSizeH2"`
	FontSizeH3      string `json:"fontSizeH3"`
	FontSizeH4      string `json:"fontSizeH4"`
	FontSizeH5      string `json:"fontSizeH5"`
	FontSizeH6      string `json:"fontSizeH6"`
	FontSizeBody    string `json:"fontSizeBody"`
	FontSizeSmall   string `json:"fontSizeSmall"`
	FontSizeCaption string `json:"fontSizeCaption"`

	LineHeightBody    string `json:"lineHeightBody"`
	LineHeightHeading string `json:"lineHeightHeading"`

	LetterSpacingBody    string `json:"letterSpacingBody"`
	LetterSpacingHeading string `json:"letterSpacingHeading"`

	FontFamilyPrimary   string `json:"fontFamilyPrimary"`
	FontFamilySecondary string `json:"fontFamilySecondary"`
	FontFamilyMono      string `json:"fontFamilyMono"`
}

type SemanticColors struct {
	BrandPrimary       string `json:"brandPrimary"`
	BrandPrimaryXLight string `json:"brandPrimaryXLight"`
	BrandPrimaryLight  string `json:"brandPrimaryLight"`
	BrandPrimaryDark   string `json:"brandPrimaryDark"`
	BrandPrimaryXDark  string `json:"brandPrimaryXDark"`

	BrandSecondary       string `json:"brandSecondary"`
	BrandSecondaryXLight string `json:"brandSecondaryXLight"`
	BrandSecondaryLight  string `json:"brandSecondaryLight"`
	BrandSecondaryDark   string `json:"brandSecondaryDark"`
	BrandSecondaryXDark  string `json:"brandSecondaryXDark"`

	Success      string `json:"success"`
	SuccessLight string `json:"successLight"`
	SuccessDark  string `json:"successDark"`
	Warning      string `json:"warning"`
	WarningLight string `json:"warningLight"`
	WarningDark  string `json:"warningDark"`
	Error        string `json:"error"`
	ErrorLight   string `json:"errorLight"`
	ErrorDark    string `json:"errorDark"`
	Info         string `json:"info"`
	InfoLight    string `json:"infoLight"`
	InfoDark     string `json:"infoDark"`

	// Neutral ramp, lightest (0) to darkest (100).
	Neutral0   string `json:"neutral0"`
	Neutral10  string `json:"neutral10"`
	Neutral20  string `json:"neutral20"`
	Neutral30  string `json:"neutral30"`
	Neutral40  string `json:"neutral40"`
	Neutral50  string `json:"neutral50"`
	Neutral60  string `json:"neutral60"`
	Neutral70  string `json:"neutral70"`
	Neutral80  string `json:"neutral80"`
	Neutral90  string `json:"neutral90"`
	Neutral100 string `json:"neutral100"`

	TextHeading string `json:"textHeading"`
	TextBody    string `json:"textBody"`
	TextMuted   string `json:"textMuted"`
	TextInverse string `json:"textInverse"`

	Background    string `json:"background"`
	BackgroundAlt string `json:"backgroundAlt"`
	Surface       string `json:"surface"`

	BorderDefault string `json:"borderDefault"`
	BorderActive  string `json:"borderActive"`

	ButtonPrimaryBg      string `json:"buttonPrimaryBg"`
	ButtonPrimaryHoverBg string `json:"buttonPrimaryHoverBg"`
	ButtonPrimaryText    string `json:"buttonPrimaryText"`

	InputBg     string `json:"inputBg"`
	InputBorder string `json:"inputBorder"`
	InputText   string `json:"inputText"`

	CardBg     string `json:"cardBg"`
	CardBorder string `json:"cardBorder"`

	LinkDefault string `json:"linkDefault"`
	LinkHover   string `json:"linkHover"`
	FocusRing   string `json:"focusRing"`
}

type SemanticSpacing struct {
	XS    string `json:"xs"`
	SM    string `json:"sm"`
	MD    string `json:"md"`
	LG    string `json:"lg"`
	XL    string `json:"xl"`
	XXL   string `json:"xxl"`
	XXXL  string `json:"xxxl"`
	XXXXL string `json:"xxxxl"`

	BodyPadding     string `json:"bodyPadding"`
	SectionPadding  string `json:"sectionPadding"`
	CardPadding     string `json:"cardPadding"`
	ButtonPadding   string `json:"buttonPadding"`
	HeadingMargin   string `json:"headingMargin"`
	ParagraphMargin string `json:"paragraphMargin"`
	UIGap           string `json:"uiGap"`
}

type SemanticBorders struct {
	WidthThin  string `json:"widthThin"`
	WidthBase  string `json:"widthBase"`
	WidthThick string `json:"widthThick"`

	RadiusXS string `json:"radiusXS"`
	RadiusSM string `json:"radiusSM"`
	RadiusMD string `json:"radiusMD"`
	RadiusLG string `json:"radiusLG"`
	RadiusXL string `json:"radiusXL"`

	RadiusButton string `json:"radiusButton"`
	RadiusInput  string `json:"radiusInput"`
	RadiusCard   string `json:"radiusCard"`
}

type SemanticShadows struct {
	Elevation0 string `json:"elevation0"`
	Elevation1 string `json:"elevation1"`
	Elevation2 string `json:"elevation2"`
	Elevation3 string `json:"elevation3"`
	Elevation4 string `json:"elevation4"`
	Elevation5 string `json:"elevation5"`

	Card  string `json:"card"`
	Modal string `json:"modal"`
	Hover string `json:"hover"`
}

type SemanticTransitions struct {
	DurationFast   string `json:"durationFast"`
	DurationBase   string `json:"durationBase"`
	DurationSlow   string `json:"durationSlow"`
	EasingStandard string `json:"easingStandard"`

	Color     string `json:"color"`
	Transform string `json:"transform"`
	Opacity   string `json:"opacity"`
	Hover     string `json:"hover"`
}
