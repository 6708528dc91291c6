package domain

import "strings"

// Languages maps supported display names to ISO 639-1 codes. English is the
// default; every other language triggers an explicit directive in generation
// prompts.
var Languages = map[string]string{
	"English": "en",
	"Hindi":   "hi",
	"Telugu":  "te",
	"Tamil":   "ta",
	"Spanish": "es",
	"French":  "fr",
	"German":  "de",
}

// DefaultLanguage is used when no preference is supplied or the supplied
// language is unknown.
const DefaultLanguage = "English"

// LanguageCode resolves a display name to its ISO code, defaulting to "en".
func LanguageCode(language string) string {
	if code, ok := Languages[language]; ok {
		return code
	}
	return "en"
}

// LanguageFromCode resolves an ISO code back to the display name used across
// the generation workflow. Unknown codes resolve to English.
func LanguageFromCode(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	for name, c := range Languages {
		if c == code {
			return name
		}
	}
	return DefaultLanguage
}

// PaletteStyles maps each palette style name to the aesthetic description
// embedded in palette generation prompts.
var PaletteStyles = map[string]string{
	"Pastel":      "soft, muted pastel colors with gentle tones",
	"Bold Modern": "vibrant, high-contrast modern colors",
	"Luxury":      "sophisticated, premium colors like deep blues, golds, blacks",
	"Earthy":      "natural, organic earth tones and greens",
	"Monochrome":  "grayscale with subtle variations",
	"Vibrant":     "bright, energetic, attention-grabbing colors",
	"Neutral":     "balanced, professional neutral tones",
}

// DefaultPaletteStyle is applied when the requested style is unknown.
const DefaultPaletteStyle = "Pastel"

// FallbackPalettes provides a deterministic 5-color palette per style, used
// whenever the model response yields too few valid hex tokens.
var FallbackPalettes = map[string][]string{
	"Pastel":      {"#FFD6E8", "#C5E1F5", "#E8F5C8", "#FFF4E0", "#E5D4F0"},
	"Bold Modern": {"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A", "#98D8C8"},
	"Luxury":      {"#1C1C1C", "#D4AF37", "#2C3E50", "#8B7355", "#F8F8F8"},
	"Earthy":      {"#8B7355", "#A0826D", "#C9B79C", "#E8DCC4", "#6B8E23"},
	"Monochrome":  {"#2C2C2C", "#5A5A5A", "#8C8C8C", "#BEBEBE", "#E8E8E8"},
	"Vibrant":     {"#FF1744", "#00E676", "#2979FF", "#FFEA00", "#E040FB"},
	"Neutral":     {"#F5F5F5", "#E0E0E0", "#9E9E9E", "#616161", "#212121"},
}

// FallbackPalette returns a copy of the fallback palette for the style,
// defaulting to Pastel for unknown styles.
func FallbackPalette(style string) []string {
	palette, ok := FallbackPalettes[style]
	if !ok {
		palette = FallbackPalettes[DefaultPaletteStyle]
	}
	out := make([]string, len(palette))
	copy(out, palette)
	return out
}

// PaletteStyleDescription returns the prompt description for the style,
// defaulting to Pastel.
func PaletteStyleDescription(style string) string {
	if desc, ok := PaletteStyles[style]; ok {
		return desc
	}
	return PaletteStyles[DefaultPaletteStyle]
}

// FontCatalog is the closed set of font families selectable per role.
var FontCatalog = map[string][]string{
	"logo":    {"Montserrat", "Playfair Display", "Bebas Neue", "Raleway", "Oswald"},
	"heading": {"Poppins", "Roboto", "Open Sans", "Lato", "Merriweather"},
	"body":    {"Inter", "Source Sans Pro", "Nunito", "Work Sans", "Karla"},
}

// CatalogHasFont reports whether the font family is offered for the role.
func CatalogHasFont(role, family string) bool {
	for _, candidate := range FontCatalog[role] {
		if strings.EqualFold(candidate, family) {
			return true
		}
	}
	return false
}

// LogoTypes enumerates the supported logo composition styles.
var LogoTypes = []string{"Lettermark", "Wordmark", "Symbol-based", "Combination Mark"}

// IsLogoType reports whether the value names a supported logo type.
func IsLogoType(logoType string) bool {
	for _, candidate := range LogoTypes {
		if strings.EqualFold(candidate, logoType) {
			return true
		}
	}
	return false
}

var industryPairings = map[string]FontPairing{
	"technology": {Logo: "Montserrat", Heading: "Poppins", Body: "Inter"},
	"fashion":    {Logo: "Playfair Display", Heading: "Lato", Body: "Source Sans Pro"},
	"food":       {Logo: "Bebas Neue", Heading: "Open Sans", Body: "Nunito"},
	"health":     {Logo: "Raleway", Heading: "Roboto", Body: "Work Sans"},
	"finance":    {Logo: "Oswald", Heading: "Merriweather", Body: "Karla"},
}

// DefaultFontPairing is recommended when no industry pairing matches.
var DefaultFontPairing = FontPairing{Logo: "Montserrat", Heading: "Poppins", Body: "Inter"}

// SuggestFontPairing recommends a pairing by substring match against known
// industries, falling back to the default pairing.
func SuggestFontPairing(industry string) FontPairing {
	needle := strings.ToLower(industry)
	for key, pairing := range industryPairings {
		if strings.Contains(needle, key) {
			return pairing
		}
	}
	return DefaultFontPairing
}

// DefaultLogoColors seed the image prompt when no palette has been generated.
var DefaultLogoColors = []string{"#A8D5E2", "#FFD6E8", "#C5E1F5"}
