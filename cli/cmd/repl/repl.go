// Package repl implements an interactive evaluator for predicate
// expressions over a set of loaded subject documents.
package repl

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/sift/lang"
	"github.com/ardnew/sift/log"
)

const evalPrompt = "➜ "

func helpMessage() string {
	return `
: Commands (prefix with ':'):

  :help          Print this cruft
  :bind VALUE    Append an embedded value for '@' placeholders
  :values        List bound values in placeholder order
  :clear         Clear screen
  :quit          Exit REPL

Usage:
  Type an expression to evaluate it against every loaded subject
  Completions appear automatically as you type
  Press Tab / Shift-Tab to cycle through candidates
  Press Enter to accept the current candidate
  Use Up/Down arrows for history navigation
  Press Ctrl+C on empty line or Ctrl+D to exit
`
}

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// formatCommand formats the input echo line with prompt and input styled.
func formatCommand(input string) string {
	return promptStyle.Render(evalPrompt) + inputStyle.Render(input)
}

// model is the Bubble Tea model for the REPL.
type model struct {
	ctxFunc      func() context.Context
	input        textinput.Model
	subjects     []any
	values       []any
	parseValue   func(string) (any, error)
	logger       log.Logger
	history      *History
	historyIdx   int
	matches      fuzzy.Matches // current fuzzy match results
	wordStart    int           // byte offset of current word start
	wordEnd      int           // byte offset of current word end
	suggIdx      int           // selected candidate index
	tabActive    bool          // whether user is tab-cycling
	preTabText   string        // input text before tab-cycling began
	preTabCursor int           // cursor position before tab-cycling began
	width        int           // terminal width for ellipsization
	quitting     bool
}

// Run starts the REPL over the given subjects. Bound values entered with
// :bind are interpreted by parseValue, and cacheDir locates the persistent
// input history.
func Run(
	ctx context.Context,
	subjects []any,
	parseValue func(string) (any, error),
	cacheDir string,
	logger log.Logger,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	logger.TraceContext(
		ctx,
		"repl start",
		slog.String("cache_dir", cacheDir),
		slog.Int("subject_count", len(subjects)),
	)

	if len(subjects) == 0 {
		return ErrNoSubjects
	}

	history := NewHistory(filepath.Join(cacheDir, baseHistory))
	if err := history.Load(); err != nil {
		fmt.Printf("Warning: could not load history: %v\n", err)
	}

	m := newModel(ctx, subjects, parseValue, history, logger)

	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err = p.Run()

	return err
}

const defaultWidth = 80

func newModel(
	ctx context.Context,
	subjects []any,
	parseValue func(string) (any, error),
	history *History,
	logger log.Logger,
) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(evalPrompt)
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = defaultWidth

	return model{
		ctxFunc:    func() context.Context { return ctx },
		input:      ti,
		subjects:   subjects,
		parseValue: parseValue,
		logger:     logger,
		history:    history,
		historyIdx: history.Len(),
		width:      defaultWidth,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(evalPrompt) - 2

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Input line.
	b.WriteString(m.input.View())
	b.WriteString("\n")

	input := m.input.Value()

	switch {
	case m.historyIdx < m.history.Len():
		// Show history position indicator
		hint := fmt.Sprintf("%d/%d", m.historyIdx+1, m.history.Len())
		b.WriteString(hintStyle.Render(hint))
		b.WriteString("\n")

	case strings.TrimSpace(input) == "":
		b.WriteString(hintStyle.Render(
			"Type an expression or :help for commands",
		))
		b.WriteString("\n")

	case len(m.matches) > 0:
		b.WriteString(renderCandidateBar(
			m.matches, m.suggIdx, m.tabActive, m.width,
		))
		b.WriteString("\n")

	default:
		b.WriteString("\n")
	}

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.tabActive = false
		m.historyIdx = m.history.Len()
		m.refreshMatches()

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		if !m.tabActive || len(m.matches) == 0 {
			return m.executeInput()
		}
		// Lock in the current tab candidate without executing.
		m.tabActive = false
		m.refreshMatches()

		return m, nil

	case tea.KeyTab:
		return m.cycleCandidate(1), nil

	case tea.KeyShiftTab:
		return m.cycleCandidate(-1), nil

	case tea.KeyUp:
		return m.historyPrev(), nil

	case tea.KeyDown:
		return m.historyNext(), nil
	}

	m.tabActive = false

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	m.historyIdx = m.history.Len()
	m.refreshMatches()

	return m, cmd
}

// refreshMatches recomputes the completion candidates for the word under
// the cursor.
func (m *model) refreshMatches() {
	input := m.input.Value()
	word, start, end := wordBounds(input, m.input.Position())

	m.wordStart, m.wordEnd = start, end
	m.matches = matchWord(word, candidates(input))
	m.suggIdx = 0
}

// cycleCandidate advances the selected completion candidate by delta and
// applies it to the input, preserving the pre-cycling text so the cycle can
// wrap around to the original word.
func (m model) cycleCandidate(delta int) model {
	if len(m.matches) == 0 {
		return m
	}

	if !m.tabActive {
		m.tabActive = true
		m.preTabText = m.input.Value()
		m.preTabCursor = m.input.Position()
		m.suggIdx = 0
	} else {
		m.suggIdx = (m.suggIdx + delta + len(m.matches)) % len(m.matches)
	}

	candidate := m.matches[m.suggIdx].Str
	text := m.preTabText[:m.wordStart] + candidate + m.preTabText[m.wordEnd:]

	m.input.SetValue(text)
	m.input.SetCursor(m.wordStart + len(candidate))

	return m
}

// historyPrev recalls the previous history entry.
func (m model) historyPrev() model {
	if m.historyIdx == 0 {
		return m
	}

	m.historyIdx--

	entry, err := m.history.At(m.historyIdx)
	if err != nil {
		return m
	}

	m.tabActive = false
	m.input.SetValue(entry)
	m.input.CursorEnd()

	return m
}

// historyNext recalls the next history entry, clearing the input past the
// newest one.
func (m model) historyNext() model {
	if m.historyIdx >= m.history.Len() {
		return m
	}

	m.historyIdx++

	if m.historyIdx == m.history.Len() {
		m.input.SetValue("")

		return m
	}

	entry, err := m.history.At(m.historyIdx)
	if err != nil {
		return m
	}

	m.tabActive = false
	m.input.SetValue(entry)
	m.input.CursorEnd()

	return m
}

// executeInput runs the current line as a control command or an expression
// evaluation.
func (m model) executeInput() (model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())

	m.input.SetValue("")
	m.tabActive = false
	m.matches = nil

	if line == "" {
		return m, nil
	}

	_, _ = m.history.Write(line)
	m.historyIdx = m.history.Len()

	echo := tea.Println(formatCommand(line))

	if cmd, ok := strings.CutPrefix(line, ":"); ok {
		next, out := m.runCommand(cmd)

		return next, tea.Sequence(echo, out)
	}

	return m, tea.Sequence(echo, m.evaluate(line))
}

// runCommand dispatches one control command.
func (m model) runCommand(line string) (model, tea.Cmd) {
	name, rest, _ := strings.Cut(line, " ")

	switch name {
	case "help":
		return m, tea.Println(hintStyle.Render(helpMessage()))

	case "bind":
		value, err := m.parseValue(strings.TrimSpace(rest))
		if err != nil {
			return m, tea.Println(errorStyle.Render("error: " + err.Error()))
		}

		m.values = append(m.values, value)

		return m, tea.Println(resultStyle.Render(fmt.Sprintf(
			"bound @%d = %v", len(m.values)-1, value,
		)))

	case "values":
		if len(m.values) == 0 {
			return m, tea.Println(hintStyle.Render("no bound values"))
		}

		var b strings.Builder

		for i, v := range m.values {
			fmt.Fprintf(&b, "@%d = %v\n", i, v)
		}

		return m, tea.Println(strings.TrimRight(b.String(), "\n"))

	case "clear":
		return m, tea.ClearScreen

	case "quit":
		m.quitting = true

		return m, tea.Quit
	}

	return m, tea.Println(errorStyle.Render("unknown command: " + name))
}

// evaluate compiles the expression and applies it to every subject.
func (m model) evaluate(source string) tea.Cmd {
	ctx := m.ctxFunc()

	pred, err := lang.Compile(ctx, source,
		lang.WithValues(m.values...),
		lang.WithLogger(m.logger),
	)
	if err != nil {
		return tea.Println(errorStyle.Render("error: " + err.Error()))
	}

	var matched int

	for _, subject := range m.subjects {
		if pred(subject) {
			matched++
		}
	}

	m.logger.TraceContext(ctx, "repl evaluate",
		slog.String("source", source),
		slog.Int("matched", matched),
		slog.Int("subjects", len(m.subjects)),
	)

	verdict := fmt.Sprintf("%d of %d subjects satisfied", matched,
		len(m.subjects))

	if matched == 0 {
		return tea.Println(hintStyle.Render(verdict))
	}

	return tea.Println(resultStyle.Render(verdict))
}

// renderCandidateBar renders the horizontal completion candidate bar,
// truncated to the terminal width.
func renderCandidateBar(
	matches fuzzy.Matches, selected int, active bool, width int,
) string {
	var b strings.Builder

	for i, match := range matches {
		if b.Len() > 0 {
			b.WriteString("  ")
		}

		if active && i == selected {
			b.WriteString(selectedStyle.Render(match.Str))
		} else {
			b.WriteString(suggestionStyle.Render(match.Str))
		}

		if lipgloss.Width(b.String()) > width {
			break
		}
	}

	return b.String()
}
