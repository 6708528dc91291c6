// Package export renders a brand snapshot into the downloadable formats the
// product offers: JSON data, marketing copy as plain text, a PDF brand kit,
// and a zip bundle of everything plus the logo image.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"server/internal/domain"
)

// JSON serializes the snapshot as indented JSON. The raster logo is never
// part of a snapshot, so the output is safe to hand out as a text download.
func JSON(snap domain.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: encode json: %w", err)
	}
	return data, nil
}

// Text renders the marketing copy document: brand name, taglines, the story
// sections, and the marketing variants.
func Text(snap domain.Snapshot) string {
	name := snap.SelectedName
	if name == "" {
		name = "N/A"
	}
	var taglines strings.Builder
	for _, t := range snap.Taglines {
		taglines.WriteString("- ")
		taglines.WriteString(t)
		taglines.WriteString("\n")
	}
	return fmt.Sprintf(`BRAND: %s

TAGLINES:
%s
BRAND STORY:
Vision: %s
Mission: %s
Problem: %s
Solution: %s
Positioning: %s

MARKETING CONTENT:
Short Description: %s
Long Description: %s
Social Caption: %s
Ad Copy: %s
Email Copy: %s
`,
		name,
		taglines.String(),
		snap.Story.Vision,
		snap.Story.Mission,
		snap.Story.Problem,
		snap.Story.Solution,
		snap.Story.Positioning,
		snap.Marketing.ShortDescription,
		snap.Marketing.LongDescription,
		snap.Marketing.SocialCaption,
		snap.Marketing.AdCopy,
		snap.Marketing.EmailCopy,
	)
}

// FileBase returns a filesystem-friendly stem for download filenames, derived
// from the selected brand name.
func FileBase(snap domain.Snapshot) string {
	name := strings.TrimSpace(snap.SelectedName)
	if name == "" {
		return "brand"
	}
	var b strings.Builder
	pendingSep := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteRune('_')
			}
			pendingSep = false
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			pendingSep = true
		}
	}
	if b.Len() == 0 {
		return "brand"
	}
	return b.String()
}
