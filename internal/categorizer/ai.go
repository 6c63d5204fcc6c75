package categorizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"fjacquet/finstatement/internal/logging"
)

// AIClient is the interface to an AI categorization service. The
// abstraction keeps the strategy chain testable without network calls.
type AIClient interface {
	// CategorizeDescription asks the model for a category tag. An empty
	// tag means the model declined to pick one.
	CategorizeDescription(ctx context.Context, description string) (string, error)
}

// aiStrategy wraps an AIClient as the last strategy in the chain. A tag
// outside the built-in table is discarded rather than invented.
type aiStrategy struct {
	client AIClient
	log    logging.Logger
}

func (aiStrategy) Name() string { return "ai" }

func (s aiStrategy) Categorize(ctx context.Context, description string) (string, bool, error) {
	tag, err := s.client.CategorizeDescription(ctx, description)
	if err != nil {
		return "", false, err
	}

	tag = strings.ToLower(strings.TrimSpace(tag))
	if !validTag(tag) {
		s.log.Debug("AI returned unrecognized category",
			logging.Field{Key: logging.FieldCategory, Value: tag})
		return "", false, nil
	}
	return tag, true, nil
}

// GeminiClient implements AIClient against the Google Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	log    logging.Logger
}

// NewGeminiClient creates a Gemini-backed AI client. The model name falls
// back to gemini-1.5-flash when empty.
func NewGeminiClient(ctx context.Context, apiKey, model string, log logging.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key not set")
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  client.GenerativeModel(model),
		log:    log,
	}, nil
}

// CategorizeDescription prompts the model to pick one tag from the built-in
// table.
func (c *GeminiClient) CategorizeDescription(ctx context.Context, description string) (string, error) {
	prompt := fmt.Sprintf(`Categorize the following financial transaction description:
%s

Respond with exactly one of the following category tags and nothing else:
%s

If none fit, respond with: none`,
		description,
		strings.Join(CategoryTags(), ", "))

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from Gemini API")
	}

	answer := strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	c.log.Debug("gemini categorization response",
		logging.Field{Key: logging.FieldCategory, Value: answer})

	if strings.EqualFold(answer, "none") {
		return "", nil
	}
	return answer, nil
}

// Close releases the underlying API client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}
