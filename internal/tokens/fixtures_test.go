package tokens_test

import "github.com/localnerve/brandkit-tokens/internal/tokens"

// baseRawTokens is a fully specified, valid raw token tree used across the
// engine tests. Copy before mutating.
func baseRawTokens() tokens.RawTokens {
	return tokens.RawTokens{
		Typography: tokens.RawTypography{
			FontSizeBase:        1,
			LineHeightBase:      1.5,
			TypeScaleBase:       1.4,
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
		Spacing: tokens.RawSpacing{
			UnitBase:  1,
			ScaleBase: 1.5,
		},
		Borders: tokens.RawBorders{
			WidthBase:  1,
			RadiusBase: 8,
		},
	}
}

// rawLeafCount is the number of leaf fields in baseRawTokens (no components).
const rawLeafCount = 18
