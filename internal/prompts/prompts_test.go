package prompts

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/codeagent/internal/apperr"
)

// -- Dispatch --

func TestResolve_KnownTokens(t *testing.T) {
	tests := []struct {
		token string
		kind  TaskKind
		want  Template
	}{
		{"generate", Generate, GenerateTemplate},
		{"explain", Explain, ExplainTemplate},
		{"ask", Ask, AskTemplate},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			tmpl, err := Resolve(tt.token)
			require.NoError(t, err)
			require.NotNil(t, tmpl)
			assert.Equal(t, tt.want("probe"), tmpl("probe"))

			kind, err := ParseTaskKind(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.token, kind.String())
		})
	}
}

func TestResolve_UnknownTokens(t *testing.T) {
	for _, token := range []string{"unknown", "summarize", "", "Generate", " ask"} {
		t.Run(token, func(t *testing.T) {
			tmpl, err := Resolve(token)
			assert.Nil(t, tmpl)
			require.Error(t, err)
			assert.Equal(t, apperr.UnknownTaskKind, apperr.KindOf(err))
		})
	}
}

func TestKinds(t *testing.T) {
	assert.Equal(t, []TaskKind{Generate, Explain, Ask}, Kinds())
	for _, k := range Kinds() {
		assert.NotEmpty(t, k.Description())
		assert.Equal(t, strings.ToUpper(k.String()[:1])+k.String()[1:], k.Title())
	}
}

// -- Templates --

func TestPrepare_DeterministicAndEmbedsPrompt(t *testing.T) {
	raw := "write a function that adds two numbers"

	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			first, err := Prepare(kind, raw)
			require.NoError(t, err)
			second, err := Prepare(kind, raw)
			require.NoError(t, err)

			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("Prepare is not deterministic (-first +second):\n%s", diff)
			}
			assert.Contains(t, first, raw)
		})
	}
}

func TestPrepare_PromptKeptVerbatim(t *testing.T) {
	// Format verbs in user input must not be interpreted.
	raw := "why does fmt.Printf(\"%d%%\", x) print 5%?\n  keep   spacing"
	for _, kind := range Kinds() {
		out, err := Prepare(kind, raw)
		require.NoError(t, err)
		assert.Contains(t, out, raw)
	}
}

func TestPrepare_InvalidKind(t *testing.T) {
	_, err := Prepare(TaskKind(42), "anything")
	require.Error(t, err)
	assert.Equal(t, apperr.UnknownTaskKind, apperr.KindOf(err))
}

func TestTemplates_Scaffolds(t *testing.T) {
	gen := GenerateTemplate("a queue")
	assert.True(t, strings.HasPrefix(gen, "Generate code based on the following request."))
	assert.Contains(t, gen, "Request: a queue")
	assert.Contains(t, gen, "Best practices")
	assert.Contains(t, gen, "assume Python")

	exp := ExplainTemplate("closures")
	assert.Contains(t, exp, "Request: closures")
	assert.Contains(t, exp, "Examples if helpful")
	assert.Contains(t, exp, "best practices demonstrated")

	ask := AskTemplate("what is a goroutine?")
	assert.Contains(t, ask, "Question: what is a goroutine?")
	assert.Contains(t, ask, "Relevant examples")
	assert.Contains(t, ask, "Best practices or recommendations")
}
