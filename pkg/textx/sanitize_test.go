package textx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize_ControlChars(t *testing.T) {
	t.Parallel()
	got := Sanitize("he\x00llo\nwo\x7frld!")
	assert.Equal(t, "hello\nworld!", got)
}

func TestSanitize_StripsScriptBlocksIncludingBody(t *testing.T) {
	t.Parallel()
	got := Sanitize(`before <script type="text/javascript">alert("x")</script> after`)
	assert.Equal(t, "before after", got)
}

func TestSanitize_StripsHTMLTagsKeepingContent(t *testing.T) {
	t.Parallel()
	got := Sanitize("<b>Senior</b> <i>Engineer</i>")
	assert.Equal(t, "Senior Engineer", got)
}

func TestSanitize_CollapsesRepeatsBeforeWhitespace(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "aaa", Sanitize("aaaaaaa"))
	// Repeated spaces are dampened first, then collapsed to one.
	assert.Equal(t, "a b", Sanitize("a        b"))
}

func TestSanitize_NormalizesWhitespace(t *testing.T) {
	t.Parallel()
	got := Sanitize("line1\r\nline2\rline3\tend")
	assert.Equal(t, "line1\nline2\nline3    end", got)
	assert.Equal(t, "a\n\nb", Sanitize("a\n\n\n\n\nb"))
}

func TestSanitize_Idempotent(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"",
		"plain text",
		"<div>html</div> with\t\ttabs   and  spaces",
		"aaaaaa\n\n\n\nbbbb\r\ncc\x01cc",
		strings.Repeat("x", 500) + "\r\r\r\r",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once), "input %q", in)
	}
}

func TestSanitizeJobDescription_Placeholders(t *testing.T) {
	t.Parallel()
	in := "Job Description: Great role. Apply now at https://jobs.example.com/42 or mail hr@example.com or call 555-123-4567"
	got := SanitizeJobDescription(in)
	assert.NotContains(t, got, "Job Description:")
	assert.NotContains(t, got, "Apply now")
	assert.Contains(t, got, "[URL]")
	assert.Contains(t, got, "[EMAIL]")
	assert.Contains(t, got, "[PHONE]")
}

func TestSanitizeJobDescription_FormattingRuns(t *testing.T) {
	t.Parallel()
	// Sanitize first caps runs at three characters; the formatting pass then
	// removes what remains.
	got := SanitizeJobDescription("Requirements\n------\nGo experience ****")
	assert.NotContains(t, got, "---")
	assert.NotContains(t, got, "***")
}

func TestDeepSanitize(t *testing.T) {
	t.Parallel()
	in := map[string]any{
		"<b>key</b>": "<i>value</i>",
		"nested": map[string]any{
			"list": []any{"a\x00b", 42, true},
		},
	}
	out, ok := DeepSanitize(in).(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "value", out["key"])
	nested := out["nested"].(map[string]any)
	list := nested["list"].([]any)
	assert.Equal(t, "ab", list[0])
	assert.Equal(t, 42, list[1])
	assert.Equal(t, true, list[2])
	// No aliasing with the input.
	nested["list"].([]any)[0] = "mutated"
	assert.Equal(t, "a\x00b", in["nested"].(map[string]any)["list"].([]any)[0])
}

func TestReductionSuspicious(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("<tag>", 50)
	assert.True(t, ReductionSuspicious(long, Sanitize(long)))
	assert.False(t, ReductionSuspicious("short", ""))
	assert.False(t, ReductionSuspicious(strings.Repeat("a", 200), strings.Repeat("a", 150)))
}

func TestRepeatRun(t *testing.T) {
	t.Parallel()
	assert.False(t, RepeatRun(strings.Repeat("a", 50), 50))
	assert.True(t, RepeatRun(strings.Repeat("a", 51), 50))
	assert.False(t, RepeatRun("abcabc", 2))
}
