// Package tokencount counts prompt tokens before a generation call.
//
// It uses tiktoken-go, a Go port of OpenAI's official tokenizer, so that
// recorded prompt sizes track what the provider actually bills. When a model
// has no known encoding the counter falls back to cl100k_base, and when even
// that fails to a character-based estimate.
package tokencount

import (
	"log/slog"
	"math"
	"strings"
	"sync"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// Counter provides thread-safe token counting for generation models.
type Counter struct {
	encodingCache map[string]*tiktoken.Tiktoken
	mu            sync.RWMutex
}

// NewCounter creates a new token counter instance.
func NewCounter() *Counter {
	return &Counter{
		encodingCache: make(map[string]*tiktoken.Tiktoken),
	}
}

// getEncodingForModel returns the tiktoken encoding for a model, caching
// encodings across calls.
func (c *Counter) getEncodingForModel(model string) (*tiktoken.Tiktoken, error) {
	normalized := normalizeModelName(model)

	c.mu.RLock()
	if enc, ok := c.encodingCache[normalized]; ok {
		c.mu.RUnlock()
		return enc, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if enc, ok := c.encodingCache[normalized]; ok {
		return enc, nil
	}

	enc, err := tiktoken.EncodingForModel(normalized)
	if err != nil {
		// cl100k_base covers GPT-4, GPT-3.5-turbo and most modern models.
		slog.Debug("falling back to cl100k_base encoding",
			slog.String("model", model),
			slog.String("normalized", normalized),
			slog.Any("error", err))
		enc, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return nil, err
		}
	}

	c.encodingCache[normalized] = enc
	return enc, nil
}

// normalizeModelName converts model IDs to tiktoken-compatible names.
// Provider-prefixed IDs like "openai/gpt-4o" or "meta-llama/llama-3-8b:free"
// are reduced to their model family.
func normalizeModelName(model string) string {
	model = strings.ToLower(model)
	if strings.Contains(model, "/") {
		parts := strings.Split(model, "/")
		model = parts[len(parts)-1]
	}
	model = strings.TrimSuffix(model, ":free")

	switch {
	case strings.Contains(model, "gpt-3.5"):
		return "gpt-3.5-turbo"
	default:
		// GPT-4 tokenization is a close enough proxy for the rest.
		return "gpt-4"
	}
}

// CountTokens counts the tokens in text for a given model.
func (c *Counter) CountTokens(text, model string) (int, error) {
	enc, err := c.getEncodingForModel(model)
	if err != nil {
		return 0, err
	}
	return len(enc.Encode(text, nil, nil)), nil
}

// CountPromptTokens counts tokens for the full generation prompt, including
// the per-message overhead of OpenAI-compatible chat APIs.
func (c *Counter) CountPromptTokens(systemPrompt, userPrompt, model string) (int, error) {
	enc, err := c.getEncodingForModel(model)
	if err != nil {
		return 0, err
	}

	// 3 tokens per message plus 1 for the role, per the OpenAI cookbook.
	const tokensPerMessage = 3
	const tokensPerRole = 1

	n := 0
	n += tokensPerMessage + tokensPerRole
	n += len(enc.Encode("system", nil, nil))
	n += len(enc.Encode(systemPrompt, nil, nil))
	n += tokensPerMessage + tokensPerRole
	n += len(enc.Encode("user", nil, nil))
	n += len(enc.Encode(userPrompt, nil, nil))
	// Every reply is primed with <|start|>assistant<|message|>.
	n += 3
	return n, nil
}

// Estimate approximates the token count without a tokenizer, at roughly 3.5
// characters per token. Used when encoding setup fails.
func Estimate(text string) int {
	if text == "" {
		return 0
	}
	return int(math.Ceil(float64(len(text)) / 3.5))
}

// CountOrEstimate counts tokens, degrading to Estimate on tokenizer failure.
func (c *Counter) CountOrEstimate(text, model string) int {
	n, err := c.CountTokens(text, model)
	if err != nil {
		slog.Warn("token count failed, using estimate",
			slog.String("model", model),
			slog.Any("error", err))
		return Estimate(text)
	}
	return n
}
