// Package parser turns free-form model output into typed brand asset records.
// Hosted models do not guarantee their output format, so every function here
// is total: malformed input yields fewer items or empty defaults, never an
// error.
package parser

import (
	"regexp"
	"strings"

	"server/internal/domain"
)

var (
	numberPrefixRe = regexp.MustCompile(`^\d+[.)]\s*`)
	hexTokenRe     = regexp.MustCompile(`#[0-9A-Fa-f]{6}`)
	fullHexRe      = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// IsHexColor reports whether s is exactly one #RRGGBB token.
func IsHexColor(s string) bool {
	return fullHexRe.MatchString(s)
}

// List parses line-oriented output into at most count items. Blank lines and
// comment lines starting with '#' are dropped, leading "1." / "1)" numbering
// is stripped, and duplicates are removed case-insensitively while keeping
// first-seen order.
func List(raw string, count int) []string {
	if count <= 0 {
		return nil
	}
	seen := make(map[string]struct{})
	var items []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(numberPrefixRe.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		key := strings.ToLower(line)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		items = append(items, line)
		if len(items) == count {
			break
		}
	}
	return items
}

// Sections scans output for lines opening one of the given uppercase labels
// ("LABEL: content"). Subsequent non-empty lines extend the open section,
// joined by single spaces, until the next label. Content before the first
// label is discarded. Every requested label gets an entry, empty when its
// label never appeared.
func Sections(raw string, labels []string) map[string]string {
	sections := make(map[string]string, len(labels))
	for _, label := range labels {
		sections[label] = ""
	}
	current := ""
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if label, rest, ok := matchLabel(line, labels); ok {
			current = label
			sections[current] = rest
			continue
		}
		if current == "" {
			continue
		}
		if sections[current] == "" {
			sections[current] = line
		} else {
			sections[current] += " " + line
		}
	}
	return sections
}

func matchLabel(line string, labels []string) (string, string, bool) {
	for _, label := range labels {
		prefix := label + ":"
		if strings.HasPrefix(line, prefix) {
			return label, strings.TrimSpace(strings.TrimPrefix(line, prefix)), true
		}
	}
	return "", "", false
}

var storyLabels = []string{"VISION", "MISSION", "PROBLEM", "SOLUTION", "POSITIONING"}

// Story extracts the five fixed story sections.
func Story(raw string) domain.StoryContent {
	sections := Sections(raw, storyLabels)
	return domain.StoryContent{
		Vision:      sections["VISION"],
		Mission:     sections["MISSION"],
		Problem:     sections["PROBLEM"],
		Solution:    sections["SOLUTION"],
		Positioning: sections["POSITIONING"],
	}
}

var marketingLabels = []string{
	"SHORT_DESCRIPTION",
	"LONG_DESCRIPTION",
	"SOCIAL_CAPTION",
	"AD_COPY",
	"EMAIL_COPY",
}

// Marketing extracts the five fixed marketing copy sections.
func Marketing(raw string) domain.MarketingContent {
	sections := Sections(raw, marketingLabels)
	return domain.MarketingContent{
		ShortDescription: sections["SHORT_DESCRIPTION"],
		LongDescription:  sections["LONG_DESCRIPTION"],
		SocialCaption:    sections["SOCIAL_CAPTION"],
		AdCopy:           sections["AD_COPY"],
		EmailCopy:        sections["EMAIL_COPY"],
	}
}

// paletteSize is the fixed length of every color palette.
const paletteSize = 5

// minExtractedColors is the threshold below which the model response is
// considered unusable and the static fallback palette takes over entirely.
const minExtractedColors = 3

// Colors scans raw text for distinct #RRGGBB tokens. With at least three
// found, the first five are returned; when only three or four exist the
// palette is padded from the style fallback so the result always has exactly
// five entries. With fewer than three, the style fallback palette is returned
// as-is.
func Colors(raw, style string) []string {
	seen := make(map[string]struct{})
	var tokens []string
	for _, token := range hexTokenRe.FindAllString(raw, -1) {
		key := strings.ToUpper(token)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		tokens = append(tokens, token)
		if len(tokens) == paletteSize {
			break
		}
	}
	if len(tokens) < minExtractedColors {
		return domain.FallbackPalette(style)
	}
	for _, filler := range domain.FallbackPalette(style) {
		if len(tokens) == paletteSize {
			break
		}
		if _, ok := seen[strings.ToUpper(filler)]; ok {
			continue
		}
		seen[strings.ToUpper(filler)] = struct{}{}
		tokens = append(tokens, filler)
	}
	return tokens
}
