package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"server/internal/domain"
	"server/internal/providers/imagegen"
	"server/internal/sentiment"
	"server/internal/session"
)

type fakeCompletions struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeCompletions) Complete(ctx context.Context, prompt, languageCode string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeImages struct {
	img   *imagegen.Image
	err   error
	calls []struct {
		prompt string
		seed   int
	}
}

func (f *fakeImages) Generate(ctx context.Context, prompt string, seed int) (*imagegen.Image, error) {
	f.calls = append(f.calls, struct {
		prompt string
		seed   int
	}{prompt, seed})
	if f.err != nil {
		return nil, f.err
	}
	return f.img, nil
}

func newTestService(completions *fakeCompletions, images *fakeImages) *BrandService {
	svc := NewBrandService(completions, images, sentiment.NewAnalyzer(), session.NewStore(session.Options{}), zerolog.Nop())
	svc.randSeed = func() int { return 7 }
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func selectTestName(t *testing.T, svc *BrandService, sessionID string) {
	t.Helper()
	svc.State(sessionID).Brand.Names = []string{"Verdantia"}
	if _, err := svc.SelectName(sessionID, "Verdantia"); err != nil {
		t.Fatalf("SelectName: %v", err)
	}
}

func TestGenerateNamesRequiresInputs(t *testing.T) {
	svc := newTestService(&fakeCompletions{}, nil)
	if _, err := svc.GenerateNames(context.Background(), "s", NamesRequest{Industry: "Beauty"}); !errors.Is(err, domain.ErrDescriptionRequired) {
		t.Fatalf("err = %v", err)
	}
	if _, err := svc.GenerateNames(context.Background(), "s", NamesRequest{BusinessDescription: "soap"}); !errors.Is(err, domain.ErrIndustryRequired) {
		t.Fatalf("err = %v", err)
	}
}

func TestGenerateNamesEndToEnd(t *testing.T) {
	completions := &fakeCompletions{reply: "Veloria\nSkinessence\nPetalure\nDermiva\nLumyra"}
	svc := newTestService(completions, nil)

	names, err := svc.GenerateNames(context.Background(), "alice", NamesRequest{
		BusinessDescription: "organic skincare for sensitive skin",
		Industry:            "Beauty",
		Language:            "English",
		Count:               5,
	})
	if err != nil {
		t.Fatalf("GenerateNames: %v", err)
	}
	want := []string{"Veloria", "Skinessence", "Petalure", "Dermiva", "Lumyra"}
	if len(names) != 5 {
		t.Fatalf("len = %d", len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
	state := svc.State("alice")
	if len(state.Brand.Names) != 5 {
		t.Fatalf("aggregate names = %v", state.Brand.Names)
	}
	if !strings.Contains(completions.prompts[0], "organic skincare for sensitive skin") {
		t.Fatal("prompt missing business description")
	}
}

func TestGenerateNamesClearsPreviousSelection(t *testing.T) {
	svc := newTestService(&fakeCompletions{reply: "Nova\nAcme"}, nil)
	selectTestName(t, svc, "alice")
	if _, err := svc.GenerateNames(context.Background(), "alice", NamesRequest{
		BusinessDescription: "d", Industry: "i",
	}); err != nil {
		t.Fatalf("GenerateNames: %v", err)
	}
	if svc.State("alice").Brand.HasSelectedName() {
		t.Fatal("selection should reset with a new candidate list")
	}
}

func TestGenerateNamesProviderFailure(t *testing.T) {
	svc := newTestService(&fakeCompletions{err: errors.New("boom")}, nil)
	_, err := svc.GenerateNames(context.Background(), "alice", NamesRequest{BusinessDescription: "d", Industry: "i"})
	if !errors.Is(err, domain.ErrProviderFailure) {
		t.Fatalf("err = %v", err)
	}
	if len(svc.State("alice").Brand.Names) != 0 {
		t.Fatal("aggregate must stay untouched on failure")
	}
}

func TestSelectNameRejectsUnknown(t *testing.T) {
	svc := newTestService(&fakeCompletions{}, nil)
	svc.State("alice").Brand.Names = []string{"Acme"}
	if _, err := svc.SelectName("alice", "Nova"); !errors.Is(err, domain.ErrUnknownName) {
		t.Fatalf("err = %v", err)
	}
	selected, err := svc.SelectName("alice", "acme")
	if err != nil {
		t.Fatalf("case-insensitive select failed: %v", err)
	}
	if selected != "Acme" {
		t.Fatalf("SelectName returned %q, want the canonical candidate", selected)
	}
	if got := svc.State("alice").Brand.SelectedName; got != "Acme" {
		t.Fatalf("SelectedName = %q", got)
	}
}

func TestConcurrentRequestsSameSession(t *testing.T) {
	svc := newTestService(&fakeCompletions{}, nil)
	state := svc.State("alice")
	state.Brand.Names = []string{"Acme"}
	state.Brand.Colors = []string{"#111111", "#222222", "#333333", "#444444", "#555555"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				switch i % 4 {
				case 0:
					if err := svc.SetColor("alice", j%5, fmt.Sprintf("#AB%02X%02X", i, j)); err != nil {
						t.Errorf("SetColor: %v", err)
					}
				case 1:
					if snap := svc.Snapshot("alice", "alice"); len(snap.Colors) != 5 {
						t.Errorf("snapshot colors = %v", snap.Colors)
					}
				case 2:
					svc.UpdateStory("alice", domain.StoryContent{Vision: "grow"})
				default:
					if _, err := svc.SelectName("alice", "Acme"); err != nil {
						t.Errorf("SelectName: %v", err)
					}
				}
			}
		}(i)
	}
	wg.Wait()

	brand, _, _ := svc.Workspace("alice")
	if len(brand.Colors) != 5 {
		t.Fatalf("colors = %v", brand.Colors)
	}
	if brand.SelectedName != "Acme" {
		t.Fatalf("SelectedName = %q", brand.SelectedName)
	}
}

func TestTaglinesRequireSelectedName(t *testing.T) {
	svc := newTestService(&fakeCompletions{reply: "Glow on."}, nil)
	_, err := svc.GenerateTaglines(context.Background(), "alice", TaglinesRequest{BusinessDescription: "d"})
	if !errors.Is(err, domain.ErrNameNotSelected) {
		t.Fatalf("err = %v", err)
	}
}

func TestGenerateTaglines(t *testing.T) {
	completions := &fakeCompletions{reply: "Glow on.\nNature first.\nCalm in a jar.\nExtra line"}
	svc := newTestService(completions, nil)
	selectTestName(t, svc, "alice")

	taglines, err := svc.GenerateTaglines(context.Background(), "alice", TaglinesRequest{BusinessDescription: "soap"})
	if err != nil {
		t.Fatalf("GenerateTaglines: %v", err)
	}
	if len(taglines) != DefaultTaglineCount {
		t.Fatalf("len = %d, want %d", len(taglines), DefaultTaglineCount)
	}
	if !strings.Contains(completions.prompts[0], `"Verdantia"`) {
		t.Fatal("prompt missing selected name")
	}
}

func TestGenerateStoryParsesSections(t *testing.T) {
	reply := "VISION: We dream big\nand bold\nMISSION: We build"
	svc := newTestService(&fakeCompletions{reply: reply}, nil)
	selectTestName(t, svc, "alice")

	story, err := svc.GenerateStory(context.Background(), "alice", StoryRequest{
		BusinessDescription: "soap", Industry: "Beauty",
	})
	if err != nil {
		t.Fatalf("GenerateStory: %v", err)
	}
	if story.Vision != "We dream big and bold" || story.Mission != "We build" {
		t.Fatalf("story = %+v", story)
	}
	if story.Problem != "" {
		t.Fatalf("Problem = %q, want empty default", story.Problem)
	}
}

func TestGenerateMarketingParsesSections(t *testing.T) {
	reply := "SHORT_DESCRIPTION: Tiny pitch.\nAD_COPY: Buy now."
	svc := newTestService(&fakeCompletions{reply: reply}, nil)
	selectTestName(t, svc, "alice")

	content, err := svc.GenerateMarketing(context.Background(), "alice", MarketingRequest{BusinessDescription: "soap"})
	if err != nil {
		t.Fatalf("GenerateMarketing: %v", err)
	}
	if content.ShortDescription != "Tiny pitch." || content.AdCopy != "Buy now." {
		t.Fatalf("content = %+v", content)
	}
	if content.EmailCopy != "" {
		t.Fatalf("EmailCopy = %q, want empty default", content.EmailCopy)
	}
}

func TestGeneratePaletteUsesModelColors(t *testing.T) {
	reply := "#1A2B3C\n#4D5E6F\n#7A8B9C\n#AABBCC\n#DDEEFF"
	svc := newTestService(&fakeCompletions{reply: reply}, nil)
	selectTestName(t, svc, "alice")

	colors, err := svc.GeneratePalette(context.Background(), "alice", PaletteRequest{Industry: "Beauty", Style: "Luxury"})
	if err != nil {
		t.Fatalf("GeneratePalette: %v", err)
	}
	if len(colors) != 5 || colors[0] != "#1A2B3C" {
		t.Fatalf("colors = %v", colors)
	}
	if svc.State("alice").PaletteStyle != "Luxury" {
		t.Fatalf("PaletteStyle = %q", svc.State("alice").PaletteStyle)
	}
}

func TestGeneratePaletteFallsBackOnProviderFailure(t *testing.T) {
	svc := newTestService(&fakeCompletions{err: errors.New("down")}, nil)
	selectTestName(t, svc, "alice")

	colors, err := svc.GeneratePalette(context.Background(), "alice", PaletteRequest{Style: "Earthy"})
	if err != nil {
		t.Fatalf("GeneratePalette: %v", err)
	}
	if len(colors) != 5 || colors[0] != domain.FallbackPalettes["Earthy"][0] {
		t.Fatalf("colors = %v, want Earthy fallback", colors)
	}
}

func TestSetFontsValidatesCatalog(t *testing.T) {
	svc := newTestService(&fakeCompletions{}, nil)
	err := svc.SetFonts("alice", domain.FontPairing{Logo: "Comic Sans", Heading: "Poppins", Body: "Inter"})
	if !errors.Is(err, domain.ErrFontNotInCatalog) {
		t.Fatalf("err = %v", err)
	}
	pairing := domain.FontPairing{Logo: "Oswald", Heading: "Merriweather", Body: "Karla"}
	if err := svc.SetFonts("alice", pairing); err != nil {
		t.Fatalf("SetFonts: %v", err)
	}
	if svc.State("alice").Brand.Fonts != pairing {
		t.Fatalf("fonts = %+v", svc.State("alice").Brand.Fonts)
	}
}

func TestSuggestFontsByIndustry(t *testing.T) {
	svc := newTestService(&fakeCompletions{}, nil)
	got := svc.SuggestFonts("alice", "Personal Finance")
	if got.Logo != "Oswald" {
		t.Fatalf("pairing = %+v", got)
	}
	got = svc.SuggestFonts("alice", "Something Else")
	if got != domain.DefaultFontPairing {
		t.Fatalf("pairing = %+v, want default", got)
	}
}

func TestAnalyzeStoryEmpty(t *testing.T) {
	svc := newTestService(&fakeCompletions{}, nil)
	res := svc.AnalyzeStory("alice")
	if res.Alignment != sentiment.AlignmentUnknown {
		t.Fatalf("Alignment = %q", res.Alignment)
	}
}

func TestGenerateLogoComposesPromptFromAggregate(t *testing.T) {
	images := &fakeImages{img: &imagegen.Image{Data: []byte{1}, MIME: "image/png", Width: 8, Height: 8}}
	svc := newTestService(&fakeCompletions{}, images)
	selectTestName(t, svc, "alice")
	svc.State("alice").Brand.Colors = []string{"#111111", "#222222", "#333333", "#444444", "#555555"}

	logo, err := svc.GenerateLogo(context.Background(), "alice", LogoRequest{Industry: "Beauty", LogoType: "Wordmark"})
	if err != nil {
		t.Fatalf("GenerateLogo: %v", err)
	}
	if logo.Prompt == "" || svc.State("alice").Brand.Logo != logo {
		t.Fatal("logo and prompt must be stored on the aggregate")
	}
	call := images.calls[0]
	if call.seed != 0 {
		t.Fatalf("seed = %d, want 0 for first render", call.seed)
	}
	for _, expect := range []string{"Verdantia", "Beauty industry", "#111111, #222222, #333333"} {
		if !strings.Contains(call.prompt, expect) {
			t.Fatalf("prompt missing %q:\n%s", expect, call.prompt)
		}
	}
	if strings.Contains(call.prompt, "#444444") {
		t.Fatal("prompt must cap colors at three")
	}
}

func TestGenerateLogoDefaultsColorsAndTone(t *testing.T) {
	images := &fakeImages{img: &imagegen.Image{Data: []byte{1}, MIME: "image/png"}}
	svc := newTestService(&fakeCompletions{}, images)
	selectTestName(t, svc, "alice")

	if _, err := svc.GenerateLogo(context.Background(), "alice", LogoRequest{Industry: "Beauty", LogoType: "Lettermark"}); err != nil {
		t.Fatalf("GenerateLogo: %v", err)
	}
	p := images.calls[0].prompt
	if !strings.Contains(p, "#A8D5E2") {
		t.Fatalf("prompt missing default colors:\n%s", p)
	}
	if !strings.Contains(p, "balanced, professional, clean") {
		t.Fatalf("prompt missing neutral mood:\n%s", p)
	}
}

func TestRegenerateLogoReusesPromptWithSeed(t *testing.T) {
	images := &fakeImages{img: &imagegen.Image{Data: []byte{1}, MIME: "image/png"}}
	svc := newTestService(&fakeCompletions{}, images)
	selectTestName(t, svc, "alice")

	first, err := svc.GenerateLogo(context.Background(), "alice", LogoRequest{Industry: "Beauty", LogoType: "Wordmark"})
	if err != nil {
		t.Fatalf("GenerateLogo: %v", err)
	}
	if _, err := svc.RegenerateLogo(context.Background(), "alice"); err != nil {
		t.Fatalf("RegenerateLogo: %v", err)
	}
	second := images.calls[1]
	if second.prompt != first.Prompt {
		t.Fatal("regeneration must reuse the stored prompt")
	}
	if second.seed != 7 {
		t.Fatalf("seed = %d, want injected 7", second.seed)
	}
}

func TestRegenerateLogoWithoutPrompt(t *testing.T) {
	svc := newTestService(&fakeCompletions{}, &fakeImages{})
	if _, err := svc.RegenerateLogo(context.Background(), "alice"); !errors.Is(err, domain.ErrNoLogoPrompt) {
		t.Fatalf("err = %v", err)
	}
}

func TestCustomizeLogoAppendsQualifiersWithoutMutatingStoredPrompt(t *testing.T) {
	images := &fakeImages{img: &imagegen.Image{Data: []byte{1}, MIME: "image/png"}}
	svc := newTestService(&fakeCompletions{}, images)
	selectTestName(t, svc, "alice")

	first, err := svc.GenerateLogo(context.Background(), "alice", LogoRequest{Industry: "Beauty", LogoType: "Wordmark"})
	if err != nil {
		t.Fatalf("GenerateLogo: %v", err)
	}
	if _, err := svc.CustomizeLogo(context.Background(), "alice", CustomizeRequest{IconStyle: "Minimal", Layout: "Stacked"}); err != nil {
		t.Fatalf("CustomizeLogo: %v", err)
	}
	custom := images.calls[1].prompt
	if !strings.HasSuffix(custom, ", minimal style, stacked layout") {
		t.Fatalf("custom prompt = %q", custom)
	}
	if got := svc.State("alice").Brand.LogoPrompt(); got != first.Prompt {
		t.Fatalf("stored prompt changed: %q", got)
	}
}

func TestGenerateLogoProviderFailureLeavesAggregateValid(t *testing.T) {
	svc := newTestService(&fakeCompletions{}, &fakeImages{err: errors.New("503")})
	selectTestName(t, svc, "alice")
	_, err := svc.GenerateLogo(context.Background(), "alice", LogoRequest{Industry: "Beauty", LogoType: "Wordmark"})
	if !errors.Is(err, domain.ErrProviderFailure) {
		t.Fatalf("err = %v", err)
	}
	if svc.State("alice").Brand.Logo != nil {
		t.Fatal("failed generation must not store a logo")
	}
}

func TestConsultRecordsHistory(t *testing.T) {
	completions := &fakeCompletions{reply: "Who is your target audience?"}
	svc := newTestService(completions, nil)

	reply, err := svc.Consult(context.Background(), "alice", "I sell soap")
	if err != nil {
		t.Fatalf("Consult: %v", err)
	}
	if reply == "" {
		t.Fatal("empty reply")
	}
	chat := svc.State("alice").Chat
	if len(chat) != 2 || chat[0].Role != "user" || chat[1].Role != "assistant" {
		t.Fatalf("chat = %+v", chat)
	}

	if _, err := svc.Consult(context.Background(), "alice", "families with kids"); err != nil {
		t.Fatalf("Consult: %v", err)
	}
	if !strings.Contains(completions.prompts[1], "user: I sell soap") {
		t.Fatalf("second prompt missing history:\n%s", completions.prompts[1])
	}
}

func TestSnapshotOmitsLogoBytes(t *testing.T) {
	svc := newTestService(&fakeCompletions{}, nil)
	selectTestName(t, svc, "alice")
	state := svc.State("alice")
	state.Brand.Taglines = []string{"Glow on."}
	state.Brand.Logo = &domain.Logo{Data: []byte{1, 2, 3}, Prompt: "wordmark prompt"}

	snap := svc.Snapshot("alice", "alice@example.com")
	if snap.SelectedName != "Verdantia" || snap.Owner != "alice@example.com" {
		t.Fatalf("snapshot = %+v", snap)
	}
	if snap.LogoPrompt != "wordmark prompt" {
		t.Fatalf("LogoPrompt = %q", snap.LogoPrompt)
	}
	if snap.ExportedAt.IsZero() {
		t.Fatal("ExportedAt must be stamped")
	}
}
