// Package service orchestrates the brand generation workflow: it owns the
// per-session aggregate, enforces ordering invariants, and performs at most
// one provider call per user action. Nothing here retries automatically.
package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"server/internal/domain"
	"server/internal/parser"
	"server/internal/prompt"
	"server/internal/providers/completion"
	"server/internal/providers/imagegen"
	"server/internal/sentiment"
	"server/internal/session"
)

const (
	// DefaultNameCount is how many candidate names one action requests.
	DefaultNameCount = 10
	// DefaultTaglineCount is how many taglines one action requests.
	DefaultTaglineCount = 3

	maxSeed = 1_000_000
)

// BrandService drives every brand generation action for all sessions.
type BrandService struct {
	completions completion.Client
	images      imagegen.Generator
	analyzer    *sentiment.Analyzer
	sessions    *session.Store
	logger      zerolog.Logger

	randSeed func() int
	now      func() time.Time
}

// NewBrandService wires the service. completions and images may be nil in
// partial deployments; actions needing them then fail with
// domain.ErrProviderFailure.
func NewBrandService(
	completions completion.Client,
	images imagegen.Generator,
	analyzer *sentiment.Analyzer,
	sessions *session.Store,
	logger zerolog.Logger,
) *BrandService {
	return &BrandService{
		completions: completions,
		images:      images,
		analyzer:    analyzer,
		sessions:    sessions,
		logger:      logger,
		randSeed:    func() int { return rand.Intn(maxSeed) + 1 },
		now:         time.Now,
	}
}

// State exposes the raw session workspace. Callers that may run concurrently
// with requests must hold the state lock; handlers use the copying accessors
// below instead.
func (s *BrandService) State(sessionID string) *session.State {
	return s.sessions.Get(sessionID)
}

// Workspace returns a point-in-time copy of the session workspace.
func (s *BrandService) Workspace(sessionID string) (brand *domain.BrandAsset, paletteStyle, language string) {
	state := s.sessions.Get(sessionID)
	state.Lock()
	defer state.Unlock()
	return state.Brand.Clone(), state.PaletteStyle, state.Language
}

// CurrentLogo returns the rendered logo, or nil when none exists. A Logo is
// replaced whole on re-render, so the returned value is stable.
func (s *BrandService) CurrentLogo(sessionID string) *domain.Logo {
	state := s.sessions.Get(sessionID)
	state.Lock()
	defer state.Unlock()
	return state.Brand.Logo
}

// PaletteColors returns a copy of the current palette.
func (s *BrandService) PaletteColors(sessionID string) []string {
	state := s.sessions.Get(sessionID)
	state.Lock()
	defer state.Unlock()
	return append([]string(nil), state.Brand.Colors...)
}

// ChatHistory returns a copy of the consultant conversation.
func (s *BrandService) ChatHistory(sessionID string) []session.Message {
	state := s.sessions.Get(sessionID)
	state.Lock()
	defer state.Unlock()
	return append([]session.Message(nil), state.Chat...)
}

// Reset discards the session workspace.
func (s *BrandService) Reset(sessionID string) {
	s.sessions.Reset(sessionID)
}

func (s *BrandService) complete(ctx context.Context, p, language string) (string, error) {
	if s.completions == nil {
		return "", domain.ErrProviderFailure
	}
	text, err := s.completions.Complete(ctx, p, domain.LanguageCode(language))
	if err != nil {
		s.logger.Warn().Err(err).Msg("completion call failed")
		return "", fmt.Errorf("%w: %v", domain.ErrProviderFailure, err)
	}
	return text, nil
}

func (s *BrandService) language(state *session.State, requested string) string {
	if requested != "" {
		if _, ok := domain.Languages[requested]; ok {
			state.Language = requested
			return requested
		}
	}
	return state.Language
}

// NamesRequest are the inputs for brand name generation.
type NamesRequest struct {
	BusinessDescription string
	Industry            string
	Language            string
	Count               int
}

// GenerateNames asks the model for candidate names and stores the parsed,
// deduplicated list on the aggregate.
func (s *BrandService) GenerateNames(ctx context.Context, sessionID string, req NamesRequest) ([]string, error) {
	if strings.TrimSpace(req.BusinessDescription) == "" {
		return nil, domain.ErrDescriptionRequired
	}
	if strings.TrimSpace(req.Industry) == "" {
		return nil, domain.ErrIndustryRequired
	}
	if req.Count <= 0 {
		req.Count = DefaultNameCount
	}
	state := s.sessions.Get(sessionID)
	state.Lock()
	defer state.Unlock()
	language := s.language(state, req.Language)

	raw, err := s.complete(ctx, prompt.Names(prompt.NamesInput{
		BusinessDescription: req.BusinessDescription,
		Industry:            req.Industry,
		Language:            language,
		Count:               req.Count,
	}), language)
	if err != nil {
		return nil, err
	}
	names := parser.List(raw, req.Count)
	state.Brand.Names = names
	state.Brand.SelectedName = ""
	return names, nil
}

// SelectName commits to one of the generated candidates and returns the
// canonical stored name.
func (s *BrandService) SelectName(sessionID, name string) (string, error) {
	state := s.sessions.Get(sessionID)
	state.Lock()
	defer state.Unlock()
	if err := state.Brand.Select(name); err != nil {
		return "", err
	}
	return state.Brand.SelectedName, nil
}

// TaglinesRequest are the inputs for tagline generation.
type TaglinesRequest struct {
	BusinessDescription string
	Language            string
	Count               int
}

// GenerateTaglines creates taglines for the selected name.
func (s *BrandService) GenerateTaglines(ctx context.Context, sessionID string, req TaglinesRequest) ([]string, error) {
	state := s.sessions.Get(sessionID)
	state.Lock()
	defer state.Unlock()
	if !state.Brand.HasSelectedName() {
		return nil, domain.ErrNameNotSelected
	}
	if strings.TrimSpace(req.BusinessDescription) == "" {
		return nil, domain.ErrDescriptionRequired
	}
	if req.Count <= 0 {
		req.Count = DefaultTaglineCount
	}
	language := s.language(state, req.Language)

	raw, err := s.complete(ctx, prompt.Taglines(prompt.TaglinesInput{
		BrandName:           state.Brand.SelectedName,
		BusinessDescription: req.BusinessDescription,
		Language:            language,
		Count:               req.Count,
	}), language)
	if err != nil {
		return nil, err
	}
	taglines := parser.List(raw, req.Count)
	state.Brand.Taglines = taglines
	return taglines, nil
}

// StoryRequest are the inputs for brand story generation.
type StoryRequest struct {
	BusinessDescription string
	Industry            string
	Language            string
}

// GenerateStory creates the five-section brand story for the selected name.
// Sections missing from the model output stay empty.
func (s *BrandService) GenerateStory(ctx context.Context, sessionID string, req StoryRequest) (domain.StoryContent, error) {
	state := s.sessions.Get(sessionID)
	state.Lock()
	defer state.Unlock()
	if !state.Brand.HasSelectedName() {
		return domain.StoryContent{}, domain.ErrNameNotSelected
	}
	if strings.TrimSpace(req.BusinessDescription) == "" {
		return domain.StoryContent{}, domain.ErrDescriptionRequired
	}
	if strings.TrimSpace(req.Industry) == "" {
		return domain.StoryContent{}, domain.ErrIndustryRequired
	}
	language := s.language(state, req.Language)

	raw, err := s.complete(ctx, prompt.Story(prompt.StoryInput{
		BrandName:           state.Brand.SelectedName,
		BusinessDescription: req.BusinessDescription,
		Industry:            req.Industry,
		Language:            language,
	}), language)
	if err != nil {
		return domain.StoryContent{}, err
	}
	story := parser.Story(raw)
	state.Brand.Story = story
	return story, nil
}

// UpdateStory lets the owner edit sections by hand after generation.
func (s *BrandService) UpdateStory(sessionID string, story domain.StoryContent) {
	state := s.sessions.Get(sessionID)
	state.Lock()
	defer state.Unlock()
	state.Brand.Story = story
}

// MarketingRequest are the inputs for marketing content generation.
type MarketingRequest struct {
	BusinessDescription string
	Language            string
}

// GenerateMarketing creates the five marketing copy variants for the
// selected name.
func (s *BrandService) GenerateMarketing(ctx context.Context, sessionID string, req MarketingRequest) (domain.MarketingContent, error) {
	state := s.sessions.Get(sessionID)
	state.Lock()
	defer state.Unlock()
	if !state.Brand.HasSelectedName() {
		return domain.MarketingContent{}, domain.ErrNameNotSelected
	}
	if strings.TrimSpace(req.BusinessDescription) == "" {
		return domain.MarketingContent{}, domain.ErrDescriptionRequired
	}
	language := s.language(state, req.Language)

	raw, err := s.complete(ctx, prompt.Marketing(prompt.MarketingInput{
		BrandName:           state.Brand.SelectedName,
		BusinessDescription: req.BusinessDescription,
		Language:            language,
	}), language)
	if err != nil {
		return domain.MarketingContent{}, err
	}
	content := parser.Marketing(raw)
	state.Brand.Marketing = content
	return content, nil
}

// PaletteRequest are the inputs for color palette generation.
type PaletteRequest struct {
	Industry string
	Style    string
}

// GeneratePalette asks the model for five hex colors in the requested style.
// A failed or unparsable completion falls back to the static style palette,
// so this action cannot fail once a name is selected.
func (s *BrandService) GeneratePalette(ctx context.Context, sessionID string, req PaletteRequest) ([]string, error) {
	state := s.sessions.Get(sessionID)
	state.Lock()
	defer state.Unlock()
	if !state.Brand.HasSelectedName() {
		return nil, domain.ErrNameNotSelected
	}
	style := req.Style
	if _, ok := domain.PaletteStyles[style]; !ok {
		style = domain.DefaultPaletteStyle
	}
	industry := strings.TrimSpace(req.Industry)
	if industry == "" {
		industry = "General"
	}
	state.PaletteStyle = style

	raw, err := s.complete(ctx, prompt.Palette(state.Brand.SelectedName, industry, style), domain.DefaultLanguage)
	if err != nil {
		raw = ""
	}
	colors := parser.Colors(raw, style)
	state.Brand.Colors = colors
	return colors, nil
}

// SetColor replaces one palette entry after manual editing.
func (s *BrandService) SetColor(sessionID string, index int, color string) error {
	state := s.sessions.Get(sessionID)
	state.Lock()
	defer state.Unlock()
	if index < 0 || index >= len(state.Brand.Colors) {
		return fmt.Errorf("color index %d out of range", index)
	}
	color = strings.ToUpper(strings.TrimSpace(color))
	if !parser.IsHexColor(color) {
		return fmt.Errorf("color %q is not a #RRGGBB value", color)
	}
	state.Brand.Colors[index] = color
	return nil
}

// SuggestFonts recommends and stores a pairing for the industry.
func (s *BrandService) SuggestFonts(sessionID, industry string) domain.FontPairing {
	pairing := domain.SuggestFontPairing(industry)
	state := s.sessions.Get(sessionID)
	state.Lock()
	defer state.Unlock()
	state.Brand.Fonts = pairing
	return pairing
}

// SetFonts stores an explicit pairing after validating it against the
// catalog.
func (s *BrandService) SetFonts(sessionID string, pairing domain.FontPairing) error {
	for role, family := range map[string]string{
		"logo":    pairing.Logo,
		"heading": pairing.Heading,
		"body":    pairing.Body,
	} {
		if !domain.CatalogHasFont(role, family) {
			return fmt.Errorf("%w: %s %q", domain.ErrFontNotInCatalog, role, family)
		}
	}
	state := s.sessions.Get(sessionID)
	state.Lock()
	defer state.Unlock()
	state.Brand.Fonts = pairing
	return nil
}

// AnalyzeStory scores the joined story text. An empty story yields the
// neutral Unknown result.
func (s *BrandService) AnalyzeStory(sessionID string) sentiment.Result {
	state := s.sessions.Get(sessionID)
	state.Lock()
	text := state.Brand.Story.Joined()
	state.Unlock()
	return s.analyzer.Analyze(text)
}

// AnalyzeText scores arbitrary copy.
func (s *BrandService) AnalyzeText(text string) sentiment.Result {
	return s.analyzer.Analyze(text)
}

// RewriteForTone asks the model to rewrite text toward a target tone.
func (s *BrandService) RewriteForTone(ctx context.Context, sessionID, text, targetTone string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", domain.ErrDescriptionRequired
	}
	language := s.sessionLanguage(sessionID)
	return s.complete(ctx, prompt.Rewrite(text, targetTone, language), language)
}

// SummarizeText asks the model for a 2-3 sentence summary.
func (s *BrandService) SummarizeText(ctx context.Context, sessionID, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", domain.ErrDescriptionRequired
	}
	language := s.sessionLanguage(sessionID)
	return s.complete(ctx, prompt.Summarize(text, language), language)
}

func (s *BrandService) sessionLanguage(sessionID string) string {
	state := s.sessions.Get(sessionID)
	state.Lock()
	defer state.Unlock()
	return state.Language
}

// LogoRequest are the inputs for logo generation.
type LogoRequest struct {
	Industry string
	LogoType string
}

// GenerateLogo composes the image prompt from the aggregate (name, palette,
// story tone) and renders a logo. The prompt is stored with the image so it
// can be reused for regeneration.
func (s *BrandService) GenerateLogo(ctx context.Context, sessionID string, req LogoRequest) (*domain.Logo, error) {
	state := s.sessions.Get(sessionID)
	state.Lock()
	defer state.Unlock()
	if !state.Brand.HasSelectedName() {
		return nil, domain.ErrNameNotSelected
	}
	if strings.TrimSpace(req.Industry) == "" {
		return nil, domain.ErrIndustryRequired
	}

	tone := sentiment.ToneTitleNeutral
	if !state.Brand.Story.IsZero() {
		tone = s.analyzer.Analyze(state.Brand.Story.Joined()).Tone
	}
	colors := state.Brand.Colors
	if len(colors) == 0 {
		colors = domain.DefaultLogoColors
	}

	p := prompt.ComposeLogo(state.Brand.SelectedName, req.Industry, colors, req.LogoType, tone)
	return s.renderLogo(ctx, state, p, p, 0)
}

// RegenerateLogo reuses the stored prompt with a fresh random seed in
// [1, 1,000,000] to produce a variation.
func (s *BrandService) RegenerateLogo(ctx context.Context, sessionID string) (*domain.Logo, error) {
	state := s.sessions.Get(sessionID)
	state.Lock()
	defer state.Unlock()
	p := state.Brand.LogoPrompt()
	if p == "" {
		return nil, domain.ErrNoLogoPrompt
	}
	return s.renderLogo(ctx, state, p, p, s.randSeed())
}

// CustomizeRequest are the logo customization knobs appended to the stored
// prompt.
type CustomizeRequest struct {
	IconStyle string
	Layout    string
}

// CustomizeLogo re-renders with style qualifiers appended to the stored
// prompt. The stored prompt itself stays unchanged so later regeneration
// starts from the base composition.
func (s *BrandService) CustomizeLogo(ctx context.Context, sessionID string, req CustomizeRequest) (*domain.Logo, error) {
	state := s.sessions.Get(sessionID)
	state.Lock()
	defer state.Unlock()
	base := state.Brand.LogoPrompt()
	if base == "" {
		return nil, domain.ErrNoLogoPrompt
	}
	custom := base
	if v := strings.TrimSpace(req.IconStyle); v != "" {
		custom += fmt.Sprintf(", %s style", strings.ToLower(v))
	}
	if v := strings.TrimSpace(req.Layout); v != "" {
		custom += fmt.Sprintf(", %s layout", strings.ToLower(v))
	}
	return s.renderLogo(ctx, state, custom, base, 0)
}

func (s *BrandService) renderLogo(ctx context.Context, state *session.State, renderPrompt, storedPrompt string, seed int) (*domain.Logo, error) {
	if s.images == nil {
		return nil, domain.ErrProviderFailure
	}
	img, err := s.images.Generate(ctx, renderPrompt, seed)
	if err != nil {
		s.logger.Warn().Err(err).Msg("logo generation failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderFailure, err)
	}
	logo := &domain.Logo{
		Data:   img.Data,
		MIME:   img.MIME,
		Width:  img.Width,
		Height: img.Height,
		Prompt: storedPrompt,
	}
	state.Brand.Logo = logo
	return logo, nil
}

// Consult runs one consultant chat turn, replaying recent history, and
// records both sides of the exchange.
func (s *BrandService) Consult(ctx context.Context, sessionID, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", domain.ErrDescriptionRequired
	}
	state := s.sessions.Get(sessionID)
	state.Lock()
	history := make([]prompt.ChatTurn, 0, len(state.Chat))
	for _, msg := range state.Chat {
		history = append(history, prompt.ChatTurn{Role: msg.Role, Content: msg.Content})
	}
	state.Unlock()
	reply, err := s.complete(ctx, prompt.Consultant(message, history), domain.DefaultLanguage)
	if err != nil {
		return "", err
	}
	s.sessions.AppendChat(sessionID,
		session.Message{Role: "user", Content: message},
		session.Message{Role: "assistant", Content: reply},
	)
	return reply, nil
}

// Snapshot freezes the aggregate for export or persistence. The raster logo
// is not carried over; only its prompt survives.
func (s *BrandService) Snapshot(sessionID, owner string) domain.Snapshot {
	state := s.sessions.Get(sessionID)
	state.Lock()
	defer state.Unlock()
	return state.Brand.Snapshot(owner, s.now())
}
