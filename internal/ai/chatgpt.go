package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// ChatGPT is a client for the OpenAI chat completions API, used for
// session summaries and drill sentence generation.
type ChatGPT struct {
	apiKey      string
	apiURL      string
	model       string
	maxTokens   int
	temperature float64
}

// New creates a new ChatGPT client.
func New() (*ChatGPT, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &ChatGPT{
		apiKey:      apiKey,
		apiURL:      "https://api.openai.com/v1/chat/completions",
		model:       model,
		maxTokens:   300,
		temperature: 0.7,
	}, nil
}

// Message represents a message in the ChatGPT conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest represents a request to the ChatGPT API
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

// ChatResponse represents a response from the ChatGPT API
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *ChatGPT) send(request ChatRequest) (string, error) {
	requestData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequest("POST", c.apiURL, bytes.NewBuffer(requestData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	var response ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response: %v", err)
	}

	if response.Error != nil {
		return "", fmt.Errorf("API error: %s", response.Error.Message)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}

// SummarizeSession condenses a lesson into one or two sentences for the
// stored session record.
func (c *ChatGPT) SummarizeSession(topic string, exchanges []string) (string, error) {
	if len(exchanges) > 20 {
		exchanges = exchanges[len(exchanges)-20:]
	}

	prompt := fmt.Sprintf(
		"Summarize this English lesson about '%s' in 1-2 sentences. "+
			"Mention what was practiced and where the lesson stopped.\n\n%s",
		topic, strings.Join(exchanges, "\n"),
	)

	messages := []Message{
		{Role: "system", Content: "You summarize English tutoring sessions for Arabic-speaking learners. Be brief and concrete."},
		{Role: "user", Content: prompt},
	}

	return c.send(ChatRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   c.maxTokens,
		Temperature: 0.3,
	})
}

// SummarizeSessionWithFallback summarizes a lesson, falling back to a
// templated summary when the API is unavailable.
func (c *ChatGPT) SummarizeSessionWithFallback(topic string, exchanges []string) string {
	if c == nil {
		return fallbackSummary(topic, len(exchanges))
	}
	summary, err := c.SummarizeSession(topic, exchanges)
	if err != nil {
		return fallbackSummary(topic, len(exchanges))
	}
	return summary
}

func fallbackSummary(topic string, exchangeCount int) string {
	if topic == "" {
		topic = "General"
	}
	return fmt.Sprintf("Practiced %s across %d exchanges.", topic, exchangeCount)
}

// GenerateSentences asks for count practice sentences at the given drill
// level, one per line.
func (c *ChatGPT) GenerateSentences(level, count int, category string) ([]string, error) {
	prompt := fmt.Sprintf(
		"Generate %d short English practice sentences about '%s' at difficulty level %d of 5 "+
			"(1 is 3-4 word sentences, 5 is complex sentences). "+
			"Each sentence starts with a capital letter and ends with a period. "+
			"Return one sentence per line, no numbering, no extra text.",
		count, category, level,
	)

	messages := []Message{
		{Role: "system", Content: "You write graded English practice sentences for Arabic-speaking learners."},
		{Role: "user", Content: prompt},
	}

	content, err := c.send(ChatRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   c.maxTokens * 2,
		Temperature: 0.8,
	})
	if err != nil {
		return nil, err
	}

	var sentences []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "0123456789.- ")
		if line != "" {
			sentences = append(sentences, line)
		}
	}
	return sentences, nil
}

// TranslateToArabic translates English text to Arabic for bank rows that
// were imported without a translation.
func (c *ChatGPT) TranslateToArabic(text string) (string, error) {
	messages := []Message{
		{Role: "system", Content: "You translate English to Modern Standard Arabic. Return only the translation."},
		{Role: "user", Content: text},
	}

	return c.send(ChatRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   c.maxTokens,
		Temperature: 0.3,
	})
}
