// Package gemini wraps the hosted generative-model API behind the single
// prompt call ShelfPilot makes: suggesting a shelf location for a product.
// The model is treated as a black box; errors surface to the caller and no
// retry is attempted.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shelfpilot/shelfpilot/internal/models"
	"github.com/go-resty/resty/v2"
)

const suggestPromptTemplate = `You are an expert in warehouse organization and logistics. Your task is to suggest the optimal shelf location for a new product based on the current inventory and product characteristics.

Product Name: %s
Product Description: %s
Current Inventory: %s

Based on this information, suggest the best shelf location for the new product and explain your reasoning. Consider factors such as available space, product characteristics, and existing inventory.

Respond with a JSON object with exactly two string fields: "shelfLocationSuggestion" and "rationale".`

type SuggestionInput struct {
	ProductName        string
	ProductDescription string
	CurrentInventory   string
}

type Client interface {
	SuggestShelfLocation(ctx context.Context, input *SuggestionInput) (*models.ShelfLocationSuggestion, error)
	Ping(ctx context.Context) error
}

type client struct {
	http   *resty.Client
	apiKey string
	model  string
}

func NewClient(apiKey, baseURL, model string, timeout time.Duration) Client {

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &client{http: httpClient, apiKey: apiKey, model: model}
}

type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (c *client) SuggestShelfLocation(ctx context.Context, input *SuggestionInput) (*models.ShelfLocationSuggestion, error) {

	prompt := fmt.Sprintf(suggestPromptTemplate,
		input.ProductName, input.ProductDescription, input.CurrentInventory)

	body := &generateContentRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
		},
	}

	var result generateContentResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(body).
		SetResult(&result).
		SetError(&result).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.model))

	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	if resp.IsError() {
		if result.Error != nil {
			return nil, fmt.Errorf("gemini returned %s: %s", result.Error.Status, result.Error.Message)
		}
		return nil, fmt.Errorf("gemini returned status %d", resp.StatusCode())
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	suggestion := &models.ShelfLocationSuggestion{}

	raw := result.Candidates[0].Content.Parts[0].Text
	if err := json.Unmarshal([]byte(raw), suggestion); err != nil {
		return nil, fmt.Errorf("gemini returned malformed suggestion payload: %w", err)
	}

	if suggestion.ShelfLocationSuggestion == "" {
		return nil, fmt.Errorf("gemini returned an empty suggestion")
	}

	return suggestion, nil
}

// Ping verifies the model is reachable; used by the health endpoint.
func (c *client) Ping(ctx context.Context) error {

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		Get(fmt.Sprintf("/v1beta/models/%s", c.model))

	if err != nil {
		return fmt.Errorf("gemini is unreachable: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("gemini model check returned status %d", resp.StatusCode())
	}

	return nil
}
