package imagegen

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is the image model used when none is configured.
const DefaultModel = "imagen-3.0-generate-002"

// GenAIProvider generates images through Google's Gemini API.
type GenAIProvider struct {
	client *genai.Client
	model  string
}

// NewGenAIProvider creates a provider backed by the given API key.
func NewGenAIProvider(ctx context.Context, apiKey, model string) (*GenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAIProvider{client: client, model: model}, nil
}

// Generate produces one PNG image for the prompt.
func (p *GenAIProvider) Generate(ctx context.Context, prompt, size string) ([]byte, error) {
	aspect := "1:1"
	if size == "vertical" {
		aspect = "9:16"
	}

	resp, err := p.client.Models.GenerateImages(ctx, p.model, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    aspect,
	})
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return nil, fmt.Errorf("image generation returned no images")
	}
	return resp.GeneratedImages[0].Image.ImageBytes, nil
}
