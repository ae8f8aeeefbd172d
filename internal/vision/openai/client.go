package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/SAADSTACK/ergoassess/internal/assess/angles"
	"github.com/SAADSTACK/ergoassess/internal/vision"
)

const apiURL = "https://api.openai.com/v1/chat/completions"

// Client implements vision.Estimator using OpenAI Chat Completions with
// image input.
type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient constructs a new OpenAI client.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("VISION_MODEL is required for OpenAI")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	timeout := 120 * time.Second
	if raw := strings.TrimSpace(os.Getenv("OPENAI_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    *float32       `json:"temperature,omitempty"`
	ResponseFormat responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

type poseReading struct {
	PoseDetected bool            `json:"poseDetected"`
	Confidence   float64         `json:"confidence"`
	Notes        string          `json:"notes"`
	Angles       angles.AngleSet `json:"angles"`
}

// EstimateAngles sends the image to OpenAI and parses the measured joint
// angles out of the JSON reply.
func (c *Client) EstimateAngles(ctx context.Context, input vision.EstimateInput) (vision.Estimate, error) {
	if len(input.Image) == 0 {
		return vision.Estimate{}, fmt.Errorf("image is empty")
	}
	contentType := input.ContentType
	if strings.TrimSpace(contentType) == "" {
		contentType = "image/jpeg"
	}
	dataURL := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(input.Image))

	temp := float32(0)
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: []contentPart{
				{Type: "text", Text: buildUserText(input.ViewHint)},
				{Type: "image_url", ImageURL: &imageURL{URL: dataURL}},
			}},
		},
		Temperature: &temp,
		ResponseFormat: responseFormat{
			Type: "json_object",
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return vision.Estimate{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(payload))
	if err != nil {
		return vision.Estimate{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return vision.Estimate{}, fmt.Errorf("openai request timeout: %w", err)
		}
		return vision.Estimate{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return vision.Estimate{}, err
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return vision.Estimate{}, fmt.Errorf("openai response parse: %w", err)
	}
	if parsed.Error != nil {
		return vision.Estimate{}, fmt.Errorf("openai error: %s (%s)", parsed.Error.Message, parsed.Error.Type)
	}
	if len(parsed.Choices) == 0 {
		return vision.Estimate{}, fmt.Errorf("openai response missing choices")
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return vision.Estimate{}, fmt.Errorf("openai response empty content")
	}

	return parsePoseContent(content)
}

// parsePoseContent decodes the model's JSON reading. Angle keys the model
// omits keep their neutral-posture value instead of collapsing to zero.
func parsePoseContent(content string) (vision.Estimate, error) {
	reading := poseReading{Angles: angles.Neutral()}
	if err := json.Unmarshal([]byte(content), &reading); err != nil {
		return vision.Estimate{}, fmt.Errorf("pose reading parse: %w", err)
	}
	if !reading.PoseDetected {
		return vision.Estimate{}, vision.ErrNoPoseDetected
	}

	return vision.Estimate{
		Angles:     reading.Angles,
		Confidence: reading.Confidence,
		Notes:      reading.Notes,
	}, nil
}

var _ vision.Estimator = (*Client)(nil)
