// synthesize.go
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

// Synthesize derives the complete semantic token set from the authored raw
// values. It is total and deterministic: equal inputs always yield
// structurally equal outputs, well-formed input never fails, and no clock or
// randomness feeds any token value. The semantic role assignments (which raw
// color backs which role) are a fixed table; changing them breaks output
// compatibility with persisted token files.
func Synthesize(raw RawTokens) SemanticTokens {
	neutral := NeutralScale(raw.Colors.NeutralBase)
	primary := ColorVariations(raw.Colors.BrandPrimaryBase)
	secondary := ColorVariations(raw.Colors.BrandSecondaryBase)
	success := ColorVariations(raw.Colors.SuccessBase)
	warning := ColorVariations(raw.Colors.WarningBase)
	errColor := ColorVariations(raw.Colors.ErrorBase)
	info := ColorVariations(raw.Colors.InfoBase)

	typeScale := TypeScale(raw.Typography.FontSizeBase, raw.Typography.TypeScaleBase)
	spacing := SpacingScale(raw.Spacing.UnitBase, raw.Spacing.ScaleBase)
	radius := RadiusScale(raw.Borders.RadiusBase)
	shadows := Shadows()
	transitions := Transitions()

	colors := SemanticColors{
		BrandPrimary:       raw.Colors.BrandPrimaryBase,
		BrandPrimaryXLight: primary.XLight,
		BrandPrimaryLight:  primary.Light,
		BrandPrimaryDark:   primary.Dark,
		BrandPrimaryXDark:  primary.XDark,

		BrandSecondary:       raw.Colors.BrandSecondaryBase,
		BrandSecondaryXLight: secondary.XLight,
		BrandSecondaryLight:  secondary.Light,
		BrandSecondaryDark:   secondary.Dark,
		BrandSecondaryXDark:  secondary.XDark,

		Success:      raw.Colors.SuccessBase,
		SuccessLight: success.Light,
		SuccessDark:  success.Dark,
		Warning:      raw.Colors.WarningBase,
		WarningLight: warning.Light,
		WarningDark:  warning.Dark,
		Error:        raw.Colors.ErrorBase,
		ErrorLight:   errColor.Light,
		ErrorDark:    errColor.Dark,
		Info:         raw.Colors.InfoBase,
		InfoLight:    info.Light,
		InfoDark:     info.Dark,

		Neutral0:   neutral[0],
		Neutral10:  neutral[1],
		Neutral20:  neutral[2],
		Neutral30:  neutral[3],
		Neutral40:  neutral[4],
		Neutral50:  neutral[5],
		Neutral60:  neutral[6],
		Neutral70:  neutral[7],
		Neutral80:  neutral[8],
		Neutral90:  neutral[9],
		Neutral100: neutral[10],

		// Fixed role table.
		TextHeading: raw.Colors.BrandSecondaryBase,
		TextBody:    neutral[8],
		TextMuted:   neutral[6],
		TextInverse: neutral[0],

		Background:    neutral[0],
		BackgroundAlt: neutral[1],
		Surface:       neutral[0],

		BorderDefault: neutral[2],
		BorderActive:  raw.Colors.BrandPrimaryBase,

		ButtonPrimaryBg:      raw.Colors.BrandPrimaryBase,
		ButtonPrimaryHoverBg: primary.Dark,
		ButtonPrimaryText:    neutral[0],

		InputBg:     neutral[0],
		InputBorder: neutral[3],
		InputText:   neutral[9],

		CardBg:     neutral[0],
		CardBorder: neutral[2],

		LinkDefault: raw.Colors.BrandPrimaryBase,
		LinkHover:   primary.Dark,
		FocusRing:   primary.Light,
	}

	applyComponentOverrides(&colors, raw.Components, raw.Colors)

	return SemanticTokens{
		Typography: SemanticTypography{
			FontSizeH1:      typeScale.H1,
			FontSizeH2:      typeScale.H2,
			FontSizeH3:      typeScale.H3,
			FontSizeH4:      typeScale.H4,
			FontSizeH5:      typeScale.H5,
			FontSizeH6:      typeScale.H6,
			FontSizeBody:    typeScale.Body,
			FontSizeSmall:   typeScale.Small,
			FontSizeCaption: typeScale.Caption,

			LineHeightBody:    fmtScaleValue(raw.Typography.LineHeightBase),
			LineHeightHeading: fmtScaleValue(raw.Typography.LineHeightBase * 0.85),

			LetterSpacingBody:    fmtEm(raw.Typography.LetterSpacingBase),
			LetterSpacingHeading: fmtEm(raw.Typography.LetterSpacingBase - 0.02),

			FontFamilyPrimary:   raw.Typography.FontFamilyPrimary,
			FontFamilySecondary: raw.Typography.FontFamilySecondary,
			FontFamilyMono:      raw.Typography.FontFamilyMono,
		},
		Colors: colors,
		Spacing: SemanticSpacing{
			XS:    spacing.XS,
			SM:    spacing.SM,
			MD:    spacing.MD,
			LG:    spacing.LG,
			XL:    spacing.XL,
			XXL:   spacing.XXL,
			XXXL:  spacing.XXXL,
			XXXXL: spacing.XXXXL,

			BodyPadding:     spacing.MD,
			SectionPadding:  spacing.XXL,
			CardPadding:     spacing.LG,
			ButtonPadding:   spacing.SM + " " + spacing.LG,
			HeadingMargin:   "0 0 " + spacing.MD + " 0",
			ParagraphMargin: "0 0 " + spacing.SM + " 0",
			UIGap:           spacing.SM,
		},
		Borders: SemanticBorders{
			WidthThin:  fmtPx(raw.Borders.WidthBase * 0.5),
			WidthBase:  fmtPx(raw.Borders.WidthBase),
			WidthThick: fmtPx(raw.Borders.WidthBase * 2),

			RadiusXS: radius.XS,
			RadiusSM: radius.SM,
			RadiusMD: radius.MD,
			RadiusLG: radius.LG,
			RadiusXL: radius.XL,

			RadiusButton: radius.MD,
			RadiusInput:  radius.SM,
			RadiusCard:   radius.LG,
		},
		Shadows: SemanticShadows{
			Elevation0: shadows.Elevation0,
			Elevation1: shadows.Elevation1,
			Elevation2: shadows.Elevation2,
			Elevation3: shadows.Elevation3,
			Elevation4: shadows.Elevation4,
			Elevation5: shadows.Elevation5,

			Card:  shadows.Elevation2,
			Modal: shadows.Elevation4,
			Hover: shadows.Elevation3,
		},
		Transitions: SemanticTransitions{
			DurationFast:   transitions.DurationFast,
			DurationBase:   transitions.DurationBase,
			DurationSlow:   transitions.DurationSlow,
			EasingStandard: transitions.EasingStandard,

			Color:     transitions.Color,
			Transform: transitions.Transform,
			Opacity:   transitions.Opacity,
			Hover:     transitions.Color,
		},
	}
}

// applyComponentOverrides resolves the optional per-component overrides onto
// the component-facing color roles. Symbolic references resolve against the
// raw colors; anything else is used literally.
func applyComponentOverrides(colors *SemanticColors, comps *RawComponents, rawColors RawColors) {
	if comps == nil {
		return
	}

	if v, ok := comps.Button["background"]; ok {
		colors.ButtonPrimaryBg = resolveColorRef(v, rawColors)
	}
	if v, ok := comps.Button["hoverBackground"]; ok {
		colors.ButtonPrimaryHoverBg = resolveColorRef(v, rawColors)
	}
	if v, ok := comps.Button["text"]; ok {
		colors.ButtonPrimaryText = resolveColorRef(v, rawColors)
	}

	if v, ok := comps.Input["background"]; ok {
		colors.InputBg = resolveColorRef(v, rawColors)
	}
	if v, ok := comps.Input["border"]; ok {
		colors.InputBorder = resolveColorRef(v, rawColors)
	}
	if v, ok := comps.Input["text"]; ok {
		colors.InputText = resolveColorRef(v, rawColors)
	}

	if v, ok := comps.Card["background"]; ok {
		colors.CardBg = resolveColorRef(v, rawColors)
	}
	if v, ok := comps.Card["border"]; ok {
		colors.CardBorder = resolveColorRef(v, rawColors)
	}
}

// resolveColorRef maps a symbolic raw-color reference to its value, passing
// literal colors through unchanged.
func resolveColorRef(v string, c RawColors) string {
	switch v {
	case "brandPrimaryBase":
		return c.BrandPrimaryBase
	case "brandSecondaryBase":
		return c.BrandSecondaryBase
	case "neutralBase":
		return c.NeutralBase
	case "successBase":
		return c.SuccessBase
	case "warningBase":
		return c.WarningBase
	case "errorBase":
		return c.ErrorBase
	case "infoBase":
		return c.InfoBase
	}
	return v
}
