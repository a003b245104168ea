package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/inglishlab/inglish"
	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements Provider using an OpenAI-compatible API.
type OpenAIProvider struct {
	client      *openai.Client
	model       string
	temperature float32
}

// OpenAIConfig holds configuration for the OpenAI provider.
type OpenAIConfig struct {
	APIKey      string  // API key (uses OPENAI_API_KEY env var if empty)
	Model       string  // Model to use (default: "gpt-4o-mini")
	Temperature float32 // Temperature for generation (default: 0.3)
	BaseURL     string  // Custom base URL (optional)
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(cfg OpenAIConfig) *OpenAIProvider {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
	}
}

// Translate translates a batch of guarded texts using the API.
func (p *OpenAIProvider) Translate(ctx context.Context, req TranslateRequest) ([]Translation, error) {
	if len(req.Texts) == 0 {
		return []Translation{}, nil
	}

	systemPrompt := p.buildSystemPrompt(req)
	userMessage := p.buildUserMessage(req)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		Temperature: p.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, &inglish.ProviderError{
			Message:   "API call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Choices) == 0 {
		return nil, &inglish.ProviderError{
			Message:   "empty response",
			Retryable: true,
		}
	}

	return p.parseResponse(resp.Choices[0].Message.Content, len(req.Texts))
}

// hindiExamples are few-shot pairs showing bracket handling and SOV
// word order for code-mixed Hindi.
const hindiExamples = `
Input: "The [for loop] iterates over the [array]."
Output: {"roman": "[for loop] [array] ke upar iterate karta hai", "devanagari": "[फॉर लूप] [ऐरे] के ऊपर इटरेट करता है"}

Input: "This [class] has four [member variables]."
Output: {"roman": "is [class] mein chaar [member variables] hai", "devanagari": "इस [क्लास] में चार [मेंबर व्हेरिएबल्स] हैं"}

Input: "The [function] returns a [boolean] value."
Output: {"roman": "[function] ek [boolean] value return karta hai", "devanagari": "[फंक्शन] एक [बूलियन] व्हैल्यू रिटर्न करता है"}

Input: "Each [object] has its own [instance variables]."
Output: {"roman": "har [object] ke apne [instance variables] hote hain", "devanagari": "हर [ऑब्जेक्ट] के अपने [इन्स्टेंस व्हेरिएबल्स] होते हैं"}

Input: "Call the [function] with two [arguments]."
Output: {"roman": "[function] ko do [arguments] ke saath call karo", "devanagari": "[फंक्शन] को दो [आर्ग्युमेंट्स] के साथ कॉल करो"}`

const marathiExamples = `
Input: "The [for loop] iterates over the [array]."
Output: {"roman": "[for loop] [array] cha vpar iterate karte", "devanagari": "[फॉर लूप] [ऐरे] च्या वर iterate करते"}

Input: "This [class] has four [member variables]."
Output: {"roman": "hi [class] char [member variables] ahe", "devanagari": "ही [क्लास] चार [मेंबर व्हेरिएबल्स] आहे"}

Input: "The [function] returns a [boolean] value."
Output: {"roman": "[function] ek [boolean] value return karte", "devanagari": "[फंक्शन] एक [बूलियन] व्हैल्यू return करते"}

Input: "Call the [function] with two [arguments]."
Output: {"roman": "[function] la don [arguments] saath call kara", "devanagari": "[फंक्शन] ला दोन [आर्ग्युमेंट्स] साठ call करा"}

STRICT RULES FOR MARATHI:
- NEVER use "hai" - ALWAYS use "ahe" (singular) or "ahet" (plural)
- NEVER use "karta hai" - ALWAYS use "karte" or "karto"
- NEVER use "ke" - ALWAYS use "cha/chi/che"
- NEVER use "par" or "upar" - ALWAYS use "vpar"
- NEVER use "ko" - ALWAYS use "la"
- NEVER use "do" - ALWAYS use "don"`

func (p *OpenAIProvider) buildSystemPrompt(req TranslateRequest) string {
	langName := inglish.LanguageName(req.TargetLang)

	examples := hindiExamples
	marathiNote := ""
	if req.TargetLang == inglish.LangMarathi {
		examples = marathiExamples
		marathiNote = fmt.Sprintf("\n- You MUST translate to %s, NOT Hindi. This is very important.", langName)
	}

	prompt := fmt.Sprintf(`You are an expert technical translator from English to %s.

TASK: Translate the given English sentences to code-mixed %s, following these rules:%s

1. ABSOLUTE RULE - PRESERVE BRACKETS: Any text inside square brackets [like this] must appear WITH EXACTLY THE SAME BRACKETS in your output. Do NOT remove, modify, or add brackets. Bracketed terms are technical terms that must stay in English.

2. TRANSLATE NON-BRACKETED TEXT: Translate only the English text that is NOT inside brackets to %s.

3. GRAMMAR: Use proper %s sentence structure (Subject-Object-Verb), correct gender/case/number agreement, and postpositions instead of English prepositions.

4. OUTPUT FORMAT: Return a JSON object with a single key "translations" containing an array, one element per input sentence, in the same order. Each element has exactly two fields:
   - "roman": translation in Roman script. Keep all [bracketed terms] exactly as in the input.
   - "devanagari": translation in Devanagari script. Keep all [bracketed terms] exactly as in the input; every non-bracketed word must be Devanagari.

EXAMPLES (per-sentence element shape):
%s`, langName, langName, marathiNote, langName, langName, examples)

	if len(req.Terms) > 0 {
		prompt += fmt.Sprintf("\n\nTECHNICAL TERMS in this batch, each of which must survive verbatim inside its brackets:\n- %s",
			strings.Join(req.Terms, "\n- "))
	}
	return prompt
}

func (p *OpenAIProvider) buildUserMessage(req TranslateRequest) string {
	data, _ := json.Marshal(req.Texts)
	return string(data)
}

// parseResponse accepts the documented {"translations": [...]} shape
// plus the variants models actually produce: a bare array, a single
// object for single-text requests, or the array under some other key.
func (p *OpenAIProvider) parseResponse(content string, expectedCount int) ([]Translation, error) {
	type wire struct {
		Roman      string `json:"roman"`
		Devanagari string `json:"devanagari"`
	}

	convert := func(items []wire) ([]Translation, error) {
		if len(items) != expectedCount {
			return nil, &inglish.CountMismatchError{
				Expected: expectedCount,
				Got:      len(items),
			}
		}
		out := make([]Translation, len(items))
		for i, w := range items {
			out[i] = Translation{Roman: w.Roman, Devanagari: w.Devanagari}
		}
		return out, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &obj); err == nil {
		if raw, ok := obj["translations"]; ok {
			var items []wire
			if err := json.Unmarshal(raw, &items); err == nil {
				return convert(items)
			}
		}

		// Single-object response for a single-text request.
		if expectedCount == 1 {
			var single wire
			if err := json.Unmarshal([]byte(content), &single); err == nil && single.Roman != "" {
				return convert([]wire{single})
			}
		}

		// Some models pick their own key; take the first array value.
		for _, raw := range obj {
			var items []wire
			if err := json.Unmarshal(raw, &items); err == nil && len(items) > 0 {
				return convert(items)
			}
		}
	}

	var items []wire
	if err := json.Unmarshal([]byte(content), &items); err == nil {
		return convert(items)
	}

	return nil, &inglish.ProviderError{
		Message:   "invalid response format",
		Retryable: false,
	}
}

func isRetryableError(err error) bool {
	errStr := strings.ToLower(err.Error())
	retryablePatterns := []string{
		"rate limit",
		"timeout",
		"connection refused",
		"temporary",
		"503",
		"502",
		"429",
	}
	for _, pattern := range retryablePatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// Verify OpenAIProvider implements Provider
var _ Provider = (*OpenAIProvider)(nil)
