package prompt

import (
	"fmt"
	"strings"
)

// toneMoods maps a tone bucket to the aesthetic vocabulary injected into the
// image prompt.
var toneMoods = map[string]string{
	"Positive": "energetic, vibrant, uplifting",
	"Neutral":  "balanced, professional, clean",
	"Negative": "serious, bold, impactful",
}

const defaultMood = "professional"

// logoColorLimit caps how many palette entries the image prompt mentions.
const logoColorLimit = 3

// logoTypeDescription phrases the composition style for the image model.
func logoTypeDescription(logoType, brandName string) string {
	switch logoType {
	case "Lettermark":
		return fmt.Sprintf("lettermark logo using initials of %s", brandName)
	case "Wordmark":
		return fmt.Sprintf("wordmark logo with stylized text '%s'", brandName)
	case "Symbol-based":
		return fmt.Sprintf("abstract symbol logo representing %s concept", brandName)
	case "Combination Mark":
		return fmt.Sprintf("combination logo with both symbol and text '%s'", brandName)
	default:
		return fmt.Sprintf("logo for %s", brandName)
	}
}

// ComposeLogo deterministically builds the text-to-image prompt for a logo
// from the brand name, industry, up to three palette colors, composition
// type, and tone bucket.
func ComposeLogo(brandName, industry string, colors []string, logoType, tone string) string {
	if len(colors) > logoColorLimit {
		colors = colors[:logoColorLimit]
	}
	mood, ok := toneMoods[tone]
	if !ok {
		mood = defaultMood
	}
	return fmt.Sprintf(`Professional %s, %s industry, %s aesthetic,
vector style, clean design, modern, colors: %s,
flat design, minimalist, high quality, centered composition,
white background, suitable for branding`,
		logoTypeDescription(logoType, brandName), industry, mood, strings.Join(colors, ", "))
}
