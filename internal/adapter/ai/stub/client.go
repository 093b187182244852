// Package stub provides a deterministic question generator for local runs
// and tests. It derives questions from the submitted text so responses vary
// with input without calling a provider.
package stub

import (
	"fmt"
	"strings"
	"time"

	"github.com/fairyhunter13/ai-interview-coach/internal/domain"
)

// Client is a fast, deterministic generator for local/testing.
type Client struct{}

func New() *Client { return &Client{} }

// Generate produces a fixed-shape question set seeded from the inputs.
func (c *Client) Generate(ctx domain.Context, jobDescription, resumeSummary string) (domain.GeneratedQuestions, error) {
	// Simulate a tiny bit of processing latency to resemble real work
	select {
	case <-time.After(50 * time.Millisecond):
	case <-ctx.Done():
		return domain.GeneratedQuestions{}, ctx.Err()
	}

	title := firstLine(jobDescription)
	questions := []domain.Question{
		{
			Question: fmt.Sprintf("What attracted you to this %s role, and how does your background prepare you for it?", title),
			Answer:   "Walk through the overlap between the posting's core responsibilities and your recent work, naming one concrete project per responsibility.",
			Category: "motivation",
		},
		{
			Question: "Describe a technically difficult problem you solved recently. What made it hard and what was the outcome?",
			Answer:   "Use the STAR structure: the situation, your specific task, the actions you took, and a measurable result.",
			Category: "technical",
		},
		{
			Question: "Tell me about a time you disagreed with a teammate on an important decision.",
			Answer:   "Show that you argued from evidence, sought the other perspective, and committed to the outcome once decided.",
			Category: "behavioral",
		},
	}
	if strings.TrimSpace(resumeSummary) != "" {
		questions = append(questions, domain.Question{
			Question: "Your summary mentions specific achievements. Pick one and explain your individual contribution to it.",
			Answer:   "Quantify the impact and separate what you did personally from what the team delivered.",
			Category: "experience",
		})
	}
	return domain.GeneratedQuestions{Questions: questions, Model: "stub"}, nil
}

func firstLine(text string) string {
	line := text
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if len(line) > 60 {
		line = line[:60]
	}
	if line == "" {
		return "advertised"
	}
	return line
}
