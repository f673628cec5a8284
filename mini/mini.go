// Package mini implements the interactive prompt: a read-eval-print loop over a single stack.
package mini

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/anisan-cli/lifo/color"
	"github.com/anisan-cli/lifo/icon"
	"github.com/anisan-cli/lifo/key"
	"github.com/anisan-cli/lifo/log"
	"github.com/anisan-cli/lifo/script"
	"github.com/anisan-cli/lifo/stack"
	"github.com/anisan-cli/lifo/style"
	"github.com/anisan-cli/lifo/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// AskFunc reads one line of input after showing prompt.
type AskFunc func(prompt string) (string, error)

type Options struct {
	// Ask defaults to a survey input prompt.
	Ask AskFunc
	// Out defaults to os.Stdout.
	Out io.Writer
}

var quitWords = []string{"quit", "exit"}

const helpWord = "help"

var lenStyle = style.Combine(style.Italic, style.Fg(color.Gray))

// minValueWidth keeps room for the truncation marker on narrow terminals.
const minValueWidth = 3

type mini struct {
	out     io.Writer
	ask     AskFunc
	stack   *stack.Stack[string]
	width   int
	showLen bool
	ops     int
}

func newMini(options *Options) *mini {
	m := &mini{
		out:     options.Out,
		ask:     options.Ask,
		stack:   stack.New[string](),
		showLen: viper.GetBool(key.MiniShowLen),
	}

	if m.out == nil {
		m.out = os.Stdout
	}

	if m.ask == nil {
		m.ask = surveyAsk
	}

	if w, _, err := util.TerminalSize(); err == nil {
		m.width = w
	}

	return m
}

// Run loops until the user quits, interrupts or input ends.
func Run(options *Options) error {
	m := newMini(options)
	prompt := viper.GetString(key.MiniPrompt)

	for {
		line, err := m.ask(prompt)
		if err != nil {
			if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
				m.close()
				return nil
			}
			return err
		}

		if !m.handle(line) {
			m.close()
			return nil
		}
	}
}

func (m *mini) close() {
	log.Infof("mini: session closed after %s, %s left", util.Quantify(m.ops, "operation", "operations"), util.Quantify(m.stack.Len(), "item", "items"))
}

// handle evaluates a single line and reports whether the loop should continue.
func (m *mini) handle(line string) bool {
	word := strings.ToLower(strings.TrimSpace(line))

	switch {
	case lo.Contains(quitWords, word):
		return false
	case word == helpWord:
		m.println(style.Faint("operations: " + strings.Join(script.Keywords(), ", ") + "; " + strings.Join(quitWords, " or ") + " to leave"))
		return true
	}

	op, err := script.Parse(line)
	if err != nil {
		log.Warnf("mini: %v", err)
		m.println(fmt.Sprintf("%s %s", style.Fg(color.Red)(icon.Get(icon.Fail)), err))
		return true
	}

	if op.IsAbsent() {
		return true
	}

	r := script.Exec(m.stack, op.MustGet())
	m.ops++
	log.Debugf("mini: %s -> %s (len %d)", r.Op, r, r.Len)

	m.println(m.render(r))
	return true
}

func (m *mini) render(r script.Result) string {
	var suffix string
	if m.showLen {
		suffix = " " + lenStyle("("+util.Quantify(r.Len, "item", "items")+")")
	}

	v, ok := r.Value.Get()
	if !ok {
		return style.Fg(color.Gray)(icon.Get(icon.Absent)+" "+script.Absent) + suffix
	}

	prefix := opIcon(r.Op.Kind) + " "
	value := util.Truncate(v, m.valueWidth(lipgloss.Width(prefix)+lipgloss.Width(suffix)))
	return prefix + style.Fg(color.Yellow)(value) + suffix
}

// valueWidth is the number of cells left for a value once decorations take used cells.
// Zero disables truncation.
func (m *mini) valueWidth(used int) int {
	if m.width <= 0 {
		return 0
	}
	return m.width - util.Min(used, m.width-minValueWidth)
}

func opIcon(k script.Kind) string {
	switch k {
	case script.Push:
		return style.Fg(color.Green)(icon.Get(icon.Push))
	case script.Pop:
		return style.Fg(color.Purple)(icon.Get(icon.Pop))
	case script.Peek:
		return style.Fg(color.Cyan)(icon.Get(icon.Peek))
	default:
		return style.Fg(color.Blue)(icon.Get(icon.Success))
	}
}

func (m *mini) println(s string) {
	_, _ = fmt.Fprintln(m.out, s)
}

func surveyAsk(prompt string) (string, error) {
	var response string
	input := &survey.Input{
		Message: strings.TrimSpace(prompt),
		Suggest: func(toComplete string) []string {
			return lo.Filter(script.Keywords(), func(k string, _ int) bool {
				return strings.HasPrefix(k, strings.ToLower(toComplete))
			})
		},
	}

	err := survey.AskOne(input, &response)
	return response, err
}
