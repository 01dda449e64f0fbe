// File: internal/prompts/prompts.go
package prompts

import (
	"github.com/xkilldash9x/codeagent/internal/apperr"
)

// TaskKind selects which instruction scaffold wraps the user's prompt.
type TaskKind int

const (
	Generate TaskKind = iota + 1
	Explain
	Ask
)

// Template turns a raw user prompt into the text sent to the model.
type Template func(raw string) string

// Kinds returns every registered task kind in display order.
func Kinds() []TaskKind {
	return []TaskKind{Generate, Explain, Ask}
}

// String returns the token used on the command line.
func (k TaskKind) String() string {
	switch k {
	case Generate:
		return "generate"
	case Explain:
		return "explain"
	case Ask:
		return "ask"
	}
	return "unknown"
}

// Title returns the capitalized name used in result headers.
func (k TaskKind) Title() string {
	switch k {
	case Generate:
		return "Generate"
	case Explain:
		return "Explain"
	case Ask:
		return "Ask"
	}
	return "Unknown"
}

// Description is the one-line help text for the kind's subcommand.
func (k TaskKind) Description() string {
	switch k {
	case Generate:
		return "Generate code based on a prompt"
	case Explain:
		return "Explain code or concepts"
	case Ask:
		return "Ask general questions"
	}
	return ""
}

// ParseTaskKind maps a command token onto a TaskKind. Matching is exact; anything
// outside the fixed set is an UnknownTaskKind error, never a fallback.
func ParseTaskKind(token string) (TaskKind, error) {
	switch token {
	case "generate":
		return Generate, nil
	case "explain":
		return Explain, nil
	case "ask":
		return Ask, nil
	}
	return 0, apperr.Newf(apperr.UnknownTaskKind, "Unknown subcommand: %q", token)
}

// Resolve returns the template registered for token.
func Resolve(token string) (Template, error) {
	kind, err := ParseTaskKind(token)
	if err != nil {
		return nil, err
	}
	return kind.Template(), nil
}

// Template returns the scaffold function for the kind, or nil for an invalid kind.
func (k TaskKind) Template() Template {
	switch k {
	case Generate:
		return GenerateTemplate
	case Explain:
		return ExplainTemplate
	case Ask:
		return AskTemplate
	}
	return nil
}

// Prepare builds the final instruction text for kind around raw.
func Prepare(kind TaskKind, raw string) (string, error) {
	tmpl := kind.Template()
	if tmpl == nil {
		return "", apperr.Newf(apperr.UnknownTaskKind, "Unknown subcommand: %q", kind.String())
	}
	return tmpl(raw), nil
}
