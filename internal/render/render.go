// File: internal/render/render.go
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// Style selects the border color of a panel.
type Style int

const (
	StyleResult Style = iota
	StyleError
)

const defaultWrap = 100

// Renderer prints titled panels to a terminal. In plain mode it emits
// "=== title ===" framing with no ANSI styling.
type Renderer struct {
	out           io.Writer
	plain         bool
	width         int
	markdownStyle string
	lg            *lipgloss.Renderer
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPlain disables all styling.
func WithPlain(plain bool) Option {
	return func(r *Renderer) { r.plain = plain }
}

// WithWidth sets the word wrap width for rendered markdown.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
	}
}

// WithMarkdownStyle selects a glamour standard style ("dark", "light", "notty",
// ...). The default detects the terminal background.
func WithMarkdownStyle(style string) Option {
	return func(r *Renderer) { r.markdownStyle = style }
}

// IsTerminal reports whether out is attached to a terminal. Pipes, files and
// in-memory buffers are not.
func IsTerminal(out io.Writer) bool {
	f, ok := out.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(f.Fd())
}

// New creates a Renderer writing to out.
func New(out io.Writer, opts ...Option) *Renderer {
	r := &Renderer{out: out, width: defaultWrap}
	for _, opt := range opts {
		opt(r)
	}
	r.lg = lipgloss.NewRenderer(out)
	return r
}

// Result prints a model response. Responses with unfenced code are fenced with
// the detected language so the markdown renderer highlights them.
func (r *Renderer) Result(title, content string) error {
	if r.plain {
		return r.plainPanel(title, content)
	}

	body, err := r.markdown(prepareMarkdown(content))
	if err != nil {
		// Fall back to the raw text.
		body = content
	}
	return r.panel(title, strings.Trim(body, "\n"), StyleResult)
}

// Error prints an error message in a red panel.
func (r *Renderer) Error(title, message string) error {
	if r.plain {
		return r.plainPanel(title, message)
	}
	return r.panel(title, message, StyleError)
}

func (r *Renderer) panel(title, body string, style Style) error {
	color := lipgloss.Color("12")
	if style == StyleError {
		color = lipgloss.Color("9")
	}

	titleStyle := r.lg.NewStyle().Bold(true).Foreground(color)
	box := r.lg.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1)

	_, err := fmt.Fprintln(r.out, lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		box.Render(body),
	))
	return err
}

func (r *Renderer) plainPanel(title, body string) error {
	_, err := fmt.Fprintf(r.out, "=== %s ===\n%s\n%s\n", title, body, strings.Repeat("=", len(title)+8))
	return err
}

func (r *Renderer) markdown(md string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(r.width)}
	if r.markdownStyle == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(r.markdownStyle))
	}

	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return tr.Render(md)
}

// prepareMarkdown wraps code that the model returned without a fence.
func prepareMarkdown(content string) string {
	if strings.Contains(content, "```") || !ContainsCode(content) {
		return content
	}
	return fmt.Sprintf("```%s\n%s\n```", DetectLanguage(content), content)
}
