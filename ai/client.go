package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Generator is the upstream multimodal capability the pipelines depend on.
// Implementations must be safe for concurrent use.
type Generator interface {
	// GenerateText sends a system/user prompt pair and returns the reply text.
	GenerateText(ctx context.Context, system, user string) (string, error)
	// GenerateVision sends a prompt pair plus an image and returns the reply text.
	// imageFormat is the subtype of the image MIME type ("jpeg", "png", ...).
	GenerateVision(ctx context.Context, system, user, imageFormat string, imageData []byte) (string, error)
	// GenerateImage returns a generated image as a base64 data URL.
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

const (
	textModel  = "gemini-2.5-flash"
	imageModel = "gemini-2.5-flash-image-preview"

	textTimeout  = 30 * time.Second
	imageTimeout = 60 * time.Second
)

// Client talks to Gemini. A fresh SDK client is created per call and closed
// when the call finishes; no state is shared between requests.
type Client struct {
	apiKey string
}

// NewClient creates a Gemini-backed Generator. An empty API key is allowed so
// the server can boot without the credential; every call then fails with
// ErrMisconfigured instead of crashing the process.
func NewClient(apiKey string) *Client {
	return &Client{apiKey: apiKey}
}

func (c *Client) GenerateText(ctx context.Context, system, user string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMisconfigured
	}

	ctx, cancel := context.WithTimeout(ctx, textTimeout)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return "", wrapUpstreamErr(err)
	}
	defer client.Close()

	model := client.GenerativeModel(textModel)
	if system != "" {
		model.SystemInstruction = genai.NewUserContent(genai.Text(system))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(user))
	if err != nil {
		return "", wrapUpstreamErr(err)
	}
	return textFromResponse(resp)
}

func (c *Client) GenerateVision(ctx context.Context, system, user, imageFormat string, imageData []byte) (string, error) {
	if c.apiKey == "" {
		return "", ErrMisconfigured
	}

	ctx, cancel := context.WithTimeout(ctx, textTimeout)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return "", wrapUpstreamErr(err)
	}
	defer client.Close()

	model := client.GenerativeModel(textModel)
	if system != "" {
		model.SystemInstruction = genai.NewUserContent(genai.Text(system))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(user), genai.ImageData(imageFormat, imageData))
	if err != nil {
		return "", wrapUpstreamErr(err)
	}
	return textFromResponse(resp)
}

func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMisconfigured
	}

	ctx, cancel := context.WithTimeout(ctx, imageTimeout)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return "", wrapUpstreamErr(err)
	}
	defer client.Close()

	model := client.GenerativeModel(imageModel)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", wrapUpstreamErr(err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: empty image response", ErrUpstreamUnavailable)
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if blob, ok := part.(genai.Blob); ok {
			mime := blob.MIMEType
			if mime == "" {
				mime = "image/png"
			}
			return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(blob.Data)), nil
		}
	}
	return "", fmt.Errorf("%w: no image payload in response", ErrUpstreamUnavailable)
}

func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: empty response", ErrUpstreamUnavailable)
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: no text content in response", ErrUpstreamUnavailable)
	}
	return sb.String(), nil
}
