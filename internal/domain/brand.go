package domain

import (
	"strings"
	"time"
)

// StoryContent holds the five fixed sections of a brand story. Sections the
// model never produced stay empty strings so consumers never branch on
// missing keys.
type StoryContent struct {
	Vision      string `json:"vision"`
	Mission     string `json:"mission"`
	Problem     string `json:"problem"`
	Solution    string `json:"solution"`
	Positioning string `json:"positioning"`
}

// Joined concatenates all populated sections into one block of text, in
// section order, separated by single spaces.
func (s StoryContent) Joined() string {
	parts := make([]string, 0, 5)
	for _, section := range []string{s.Vision, s.Mission, s.Problem, s.Solution, s.Positioning} {
		if section = strings.TrimSpace(section); section != "" {
			parts = append(parts, section)
		}
	}
	return strings.Join(parts, " ")
}

// IsZero reports whether no section has content.
func (s StoryContent) IsZero() bool {
	return s == StoryContent{}
}

// MarketingContent holds the five fixed marketing copy variants.
type MarketingContent struct {
	ShortDescription string `json:"short_description"`
	LongDescription  string `json:"long_description"`
	SocialCaption    string `json:"social_caption"`
	AdCopy           string `json:"ad_copy"`
	EmailCopy        string `json:"email_copy"`
}

// FontPairing names one font per typographic role, drawn from the catalog in
// catalog.go.
type FontPairing struct {
	Logo    string `json:"logo"`
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// IsZero reports whether no role has been assigned a font.
func (f FontPairing) IsZero() bool {
	return f == FontPairing{}
}

// Logo is a generated raster image together with the exact prompt that
// produced it. The prompt is kept so regeneration can reuse it with a fresh
// seed.
type Logo struct {
	Data   []byte `json:"-"`
	MIME   string `json:"-"`
	Width  int    `json:"-"`
	Height int    `json:"-"`
	Prompt string `json:"prompt"`
}

// BrandAsset is the session-scoped aggregate collecting every generated or
// selected asset. It is created empty at session start and mutated only by
// the owning session's actions.
type BrandAsset struct {
	Names        []string         `json:"names,omitempty"`
	SelectedName string           `json:"selected_name,omitempty"`
	Taglines     []string         `json:"taglines,omitempty"`
	Story        StoryContent     `json:"story"`
	Marketing    MarketingContent `json:"marketing"`
	Colors       []string         `json:"colors,omitempty"`
	Fonts        FontPairing      `json:"fonts"`
	Logo         *Logo            `json:"-"`
}

// NewBrandAsset returns an empty aggregate.
func NewBrandAsset() *BrandAsset {
	return &BrandAsset{}
}

// Clone returns a copy sharing no mutable slice state with the original. The
// logo pointer is shared; a Logo is replaced whole on re-render, never
// mutated in place.
func (b *BrandAsset) Clone() *BrandAsset {
	if b == nil {
		return nil
	}
	c := *b
	c.Names = append([]string(nil), b.Names...)
	c.Taglines = append([]string(nil), b.Taglines...)
	c.Colors = append([]string(nil), b.Colors...)
	return &c
}

// HasSelectedName reports whether the user has committed to a brand name.
// Taglines, story, marketing, and logo generation all require this.
func (b *BrandAsset) HasSelectedName() bool {
	return b != nil && strings.TrimSpace(b.SelectedName) != ""
}

// Select commits to one of the generated names.
func (b *BrandAsset) Select(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	for _, candidate := range b.Names {
		if strings.EqualFold(candidate, name) {
			b.SelectedName = candidate
			return nil
		}
	}
	return ErrUnknownName
}

// LogoPrompt returns the prompt of the current logo, or "" when no logo has
// been generated yet.
func (b *BrandAsset) LogoPrompt() string {
	if b == nil || b.Logo == nil {
		return ""
	}
	return b.Logo.Prompt
}

// Snapshot is the serializable form of the aggregate handed to the
// persistence and export collaborators. The raster logo is omitted; only its
// prompt survives serialization.
type Snapshot struct {
	ProjectName  string           `json:"project_name,omitempty"`
	Names        []string         `json:"names,omitempty"`
	SelectedName string           `json:"selected_name,omitempty"`
	Taglines     []string         `json:"taglines,omitempty"`
	Story        StoryContent     `json:"story"`
	Marketing    MarketingContent `json:"marketing"`
	Colors       []string         `json:"colors,omitempty"`
	Fonts        FontPairing      `json:"fonts"`
	LogoPrompt   string           `json:"logo_prompt,omitempty"`
	Owner        string           `json:"user,omitempty"`
	ExportedAt   time.Time        `json:"exported_at"`
}

// Snapshot produces an export snapshot of the aggregate stamped with the
// owner identifier and the current time.
func (b *BrandAsset) Snapshot(owner string, now time.Time) Snapshot {
	snap := Snapshot{
		Story:      b.Story,
		Marketing:  b.Marketing,
		Fonts:      b.Fonts,
		LogoPrompt: b.LogoPrompt(),
		Owner:      owner,
		ExportedAt: now,
	}
	snap.Names = append(snap.Names, b.Names...)
	snap.SelectedName = b.SelectedName
	snap.Taglines = append(snap.Taglines, b.Taglines...)
	snap.Colors = append(snap.Colors, b.Colors...)
	return snap
}
