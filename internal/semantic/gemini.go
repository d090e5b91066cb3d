package semantic

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultEmbedModel = "text-embedding-004"

// GeminiEncoder embeds text with the Gemini embedding API. Construction
// validates configuration up front: a missing or rejected key is a startup
// failure, since semantic grading has no numeric fallback without an
// embedding backend.
type GeminiEncoder struct {
	model     *genai.EmbeddingModel
	client    *genai.Client
	dimension int
}

func NewGeminiEncoder(ctx context.Context, apiKey, model string) (*GeminiEncoder, error) {
	if apiKey == "" {
		return nil, errors.New("semantic: gemini api key is required in online mode")
	}
	if model == "" {
		model = defaultEmbedModel
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("semantic: gemini client: %w", err)
	}
	em := client.EmbeddingModel(model)
	// probe once so bad keys/models fail at startup, not mid-batch
	res, err := em.EmbedContent(ctx, genai.Text("startup probe"))
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("semantic: embedding backend unavailable: %w", err)
	}
	return &GeminiEncoder{
		model:     em,
		client:    client,
		dimension: len(res.Embedding.Values),
	}, nil
}

func (e *GeminiEncoder) Dimension() int { return e.dimension }

func (e *GeminiEncoder) Embed(ctx context.Context, text string) ([]float32, error) {
	res, err := e.model.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("semantic: embed: %w", err)
	}
	return res.Embedding.Values, nil
}

func (e *GeminiEncoder) Close() error { return e.client.Close() }
