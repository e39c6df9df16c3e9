package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// teacherPersona is prepended to every conversation as the system
// instruction.
const teacherPersona = `You are SmartSpeak AI, an intelligent and encouraging English language teacher.
Your goal is to help students learn English by correcting their mistakes, explaining grammar rules simply, and encouraging them to practice.
Always be polite, patient, and supportive.
If the user speaks in Russian, reply in Russian but provide English examples.
If the user speaks in English, reply in English appropriate for their level (A1-B1).
Keep responses concise (max 3-4 sentences) unless asked for a detailed explanation.`

// ServiceError is any failure of the chat capability: missing credential,
// upstream rejection, empty response. Always recoverable at the UI layer;
// it never touches user progress.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// Message is one turn of the conversation history.
type Message struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// Gemini is a client for the Google generative language API.
type Gemini struct {
	apiKey    string
	apiURL    string
	maxTokens int
	client    *http.Client
}

// New creates a Gemini client from the environment.
func New() (*Gemini, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, &ServiceError{Message: "GEMINI_API_KEY environment variable is not set"}
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-1.5-flash"
	}

	return &Gemini{
		apiKey:    apiKey,
		apiURL:    fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent", model),
		maxTokens: 1000,
		client:    &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// NewWithURL builds a client against a custom endpoint. Test hook.
func NewWithURL(apiKey, apiURL string) *Gemini {
	return &Gemini{
		apiKey:    apiKey,
		apiURL:    apiURL,
		maxTokens: 1000,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

// generateContent request/response shapes, trimmed to what we use.

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generationConfig struct {
	MaxOutputTokens int `json:"maxOutputTokens,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate sends the prompt with the conversation history and returns the
// model's reply. The teacher persona and the current app context are
// prepended to the history as a synthetic opening exchange.
func (g *Gemini) Generate(prompt, context string, history []Message) (string, error) {
	systemInstruction := teacherPersona
	if context != "" {
		systemInstruction += "\nCurrent Context: " + context
	}

	contents := []content{
		{Role: "user", Parts: []part{{Text: systemInstruction}}},
		{Role: "model", Parts: []part{{Text: "Understood. I will act as SmartSpeak AI, an English teacher."}}},
	}
	for _, msg := range history {
		contents = append(contents, content{Role: msg.Role, Parts: []part{{Text: msg.Text}}})
	}
	contents = append(contents, content{Role: "user", Parts: []part{{Text: prompt}}})

	request := generateRequest{
		Contents:         contents,
		GenerationConfig: &generationConfig{MaxOutputTokens: g.maxTokens},
	}

	requestData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequest("POST", g.apiURL+"?key="+g.apiKey, bytes.NewBuffer(requestData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", &ServiceError{Message: fmt.Sprintf("failed to reach Gemini API: %v", err)}
	}
	defer resp.Body.Close()

	var response generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", &ServiceError{Message: fmt.Sprintf("failed to decode response: %v", err)}
	}

	if response.Error != nil {
		return "", &ServiceError{Message: "API error: " + response.Error.Message}
	}
	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", &ServiceError{Message: "no response candidates returned"}
	}

	var b strings.Builder
	for _, p := range response.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return strings.TrimSpace(b.String()), nil
}
