// Package describer generates product description copy. The AI output is an
// opaque text collaborator: the pipeline hands it a title, tags and image
// URL and stores whatever comes back, with a deterministic fallback when AI
// is disabled or unavailable.
package describer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Describer produces a product description for a title/tags/image prompt.
type Describer interface {
	Describe(ctx context.Context, title string, tags []string, imageURL string) (string, error)
}

// Static is the no-AI fallback: a short deterministic blurb so generated
// records are never left without body text.
type Static struct{}

// Describe returns a fixed-format description.
func (Static) Describe(_ context.Context, title string, tags []string, _ string) (string, error) {
	if len(tags) == 0 {
		return fmt.Sprintf("%s, hand-picked for our retro collection.", title), nil
	}
	return fmt.Sprintf("%s, hand-picked for our retro collection. %s.", title, strings.Join(tags, ", ")), nil
}

// Gemini generates descriptions with the Gemini API.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGemini creates a Gemini-backed describer.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("AI API key is not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create AI client: %w", err)
	}
	m := client.GenerativeModel(model)
	m.SetMaxOutputTokens(100)
	m.SetTemperature(0.7)
	return &Gemini{client: client, model: m}, nil
}

// Close releases the underlying API client.
func (g *Gemini) Close() error {
	return g.client.Close()
}

// Describe asks the model for a 30-word product description.
func (g *Gemini) Describe(ctx context.Context, title string, tags []string, imageURL string) (string, error) {
	prompt := fmt.Sprintf(
		"You are a master copywriter for a hip and upcoming retro reseller brand. "+
			"Write a 30-word product description for an online retro shop.\n"+
			"Product name: %s\nTags: %s\n"+
			"Be accurate and appealing, avoid repeating the tags. Fitting a retro brand. "+
			"Here is the main image: %s",
		title, strings.Join(tags, ", "), imageURL)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("AI API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from AI API")
	}

	text := strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	log.WithField("title", title).Debug("Generated product description")
	return text, nil
}
