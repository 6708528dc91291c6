// Package prompt builds the natural-language instructions sent to the text
// and image generation endpoints. Builders are pure: same inputs, same
// prompt. Input quality is the caller's concern.
package prompt

import (
	"fmt"
	"strings"

	"server/internal/domain"
)

// languageDirective returns the explicit language instruction appended to a
// prompt, or "" for the default language.
func languageDirective(language, verb string) string {
	if language == "" || language == domain.DefaultLanguage {
		return ""
	}
	return fmt.Sprintf("%s in %s language.", verb, language)
}

// NamesInput carries everything needed to build a brand name prompt.
type NamesInput struct {
	BusinessDescription string
	Industry            string
	Language            string
	Count               int
}

// Names builds the brand name generation prompt.
func Names(in NamesInput) string {
	return fmt.Sprintf(`Generate %d highly creative, distinctive, and emotionally engaging brand names for a business with the following details:

Business Description: %s
Industry: %s

%s

Use advanced techniques:
1. Linguistic Blending: Merge meaningful words in unexpected ways
2. Metaphorical Framing: Use evocative metaphors related to the business value
3. Phonetic Rhythm: Create names with pleasing sound patterns
4. Industry Relevance: Reflect the industry while being unique
5. Emotional Resonance: Names should evoke positive feelings

Avoid:
- Generic compound words
- Overused suffixes like "-ly", "-ify"
- Common dictionary words without modification

Return ONLY the %d brand names, one per line, without numbering or explanations.`,
		in.Count, in.BusinessDescription, in.Industry,
		languageDirective(in.Language, "Generate all names"), in.Count)
}

// TaglinesInput carries the inputs for a tagline prompt.
type TaglinesInput struct {
	BrandName           string
	BusinessDescription string
	Language            string
	Count               int
}

// Taglines builds the tagline generation prompt.
func Taglines(in TaglinesInput) string {
	return fmt.Sprintf(`Create %d memorable, impactful taglines for the brand "%s".

Business Description: %s

%s

Each tagline should:
- Be concise (3-7 words)
- Evoke emotion
- Communicate unique value
- Be memorable and quotable

Return ONLY the %d taglines, one per line.`,
		in.Count, in.BrandName, in.BusinessDescription,
		languageDirective(in.Language, "Generate all taglines"), in.Count)
}

// StoryInput carries the inputs for a brand story prompt.
type StoryInput struct {
	BrandName           string
	BusinessDescription string
	Industry            string
	Language            string
}

// Story builds the structured brand story prompt. The response contract is
// the fixed VISION/MISSION/PROBLEM/SOLUTION/POSITIONING label format the
// parser understands.
func Story(in StoryInput) string {
	return fmt.Sprintf(`Create a compelling, vivid, and emotionally persuasive brand story for "%s".

Business Description: %s
Industry: %s

%s

Structure the story into these sections with rich storytelling:

**Vision**: Paint an aspirational picture of the future this brand is creating. Use sensory language and emotional appeal.

**Mission**: Describe the brand's purpose with clarity and passion. What drives this brand every day?

**Problem**: Articulate the pain points and challenges customers face. Make it relatable and emotionally resonant.

**Solution**: Explain how this brand uniquely solves the problem. Highlight differentiation and innovation.

**Positioning**: Define the brand's unique place in the market. What makes it distinctly different and valuable?

Use:
- Vivid, sensory language
- Emotional engagement
- Concrete examples
- Aspirational tone
- Clear differentiation

Format your response as:
VISION: [content]
MISSION: [content]
PROBLEM: [content]
SOLUTION: [content]
POSITIONING: [content]`,
		in.BrandName, in.BusinessDescription, in.Industry,
		languageDirective(in.Language, "Write the entire story"))
}

// MarketingInput carries the inputs for a marketing content prompt.
type MarketingInput struct {
	BrandName           string
	BusinessDescription string
	Language            string
}

// Marketing builds the marketing content prompt using the fixed
// SHORT_DESCRIPTION..EMAIL_COPY label format.
func Marketing(in MarketingInput) string {
	return fmt.Sprintf(`Create marketing content for "%s".

Business: %s

%s

Generate:
1. SHORT_DESCRIPTION: 1-2 sentence elevator pitch
2. LONG_DESCRIPTION: Detailed 3-4 paragraph description
3. SOCIAL_CAPTION: Engaging social media caption with emojis
4. AD_COPY: Compelling 30-second ad script
5. EMAIL_COPY: Professional email introduction

Format as:
SHORT_DESCRIPTION: [content]
LONG_DESCRIPTION: [content]
SOCIAL_CAPTION: [content]
AD_COPY: [content]
EMAIL_COPY: [content]`,
		in.BrandName, in.BusinessDescription,
		languageDirective(in.Language, "Write all content"))
}

// Palette builds the color palette prompt for a given style. The example
// block anchors the one-hex-per-line format the parser scans for.
func Palette(brandName, industry, style string) string {
	return fmt.Sprintf(`Generate a color palette for brand "%s" in the %s industry.

Style: %s - %s

Return exactly 5 HEX color codes (including #) that work harmoniously together.
Format: one HEX code per line, nothing else.

Example format:
#A8D5E2
#F9E4D4
#FFB6C1
#E6E6FA
#F0E68C`,
		brandName, industry, style, domain.PaletteStyleDescription(style))
}

// Rewrite builds the tone rewriting prompt.
func Rewrite(text, targetTone, language string) string {
	return fmt.Sprintf(`Rewrite the following text to have a %s tone while maintaining the core message:

Original text: %s

%s

Return only the rewritten text.`,
		targetTone, text, languageDirective(language, "Write"))
}

// Summarize builds the summarization prompt.
func Summarize(text, language string) string {
	return fmt.Sprintf(`Summarize the following text concisely in 2-3 sentences:

%s

%s

Return only the summary.`,
		text, languageDirective(language, "Summarize"))
}

// ChatTurn is one prior exchange in the consultant conversation.
type ChatTurn struct {
	Role    string
	Content string
}

// consultantContextTurns bounds how much history is replayed per turn.
const consultantContextTurns = 5

// Consultant builds the branding consultant prompt, replaying the most
// recent turns of the conversation as context.
func Consultant(userMessage string, history []ChatTurn) string {
	recent := history
	if len(recent) > consultantContextTurns {
		recent = recent[len(recent)-consultantContextTurns:]
	}
	lines := make([]string, 0, len(recent))
	for _, turn := range recent {
		lines = append(lines, fmt.Sprintf("%s: %s", turn.Role, turn.Content))
	}
	return fmt.Sprintf(`You are an expert AI branding consultant helping users refine their business ideas before creating a brand.

Ask clarifying questions about:
- Target audience
- Unique value proposition
- Industry positioning
- Brand personality
- Business goals

Previous conversation:
%s

User: %s

Provide helpful, structured guidance. Ask one focused question at a time.`,
		strings.Join(lines, "\n"), userMessage)
}
