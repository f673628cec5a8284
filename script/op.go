// Package script parses and replays line-oriented stack operations.
//
// One operation per line:
//
//	push <value>
//	pop
//	peek
//	len
//	empty
//
// Blank lines and lines starting with '#' are ignored. Keywords are case-insensitive.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Kind enumerates the supported stack operations.
type Kind int

const (
	Push Kind = iota
	Pop
	Peek
	Len
	Empty
)

var keywords = map[Kind]string{
	Push:  "push",
	Pop:   "pop",
	Peek:  "peek",
	Len:   "len",
	Empty: "empty",
}

// Keywords returns the operation keywords in declaration order.
func Keywords() []string {
	return lo.Map([]Kind{Push, Pop, Peek, Len, Empty}, func(k Kind, _ int) string {
		return k.String()
	})
}

func (k Kind) String() string {
	if s, ok := keywords[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Op is a single parsed operation. Arg is only set for Push.
type Op struct {
	Kind Kind
	Arg  string
}

func (o Op) String() string {
	if o.Kind == Push {
		return o.Kind.String() + " " + o.Arg
	}
	return o.Kind.String()
}

var (
	ErrUnknownOp     = errors.New("unknown operation")
	ErrMissingArg    = errors.New("missing argument")
	ErrUnexpectedArg = errors.New("unexpected argument")
)

const commentPrefix = "#"

// Parse reads a single line. Blank lines and comments yield mo.None.
func Parse(line string) (mo.Option[Op], error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, commentPrefix) {
		return mo.None[Op](), nil
	}

	word, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		word, rest = line[:i], strings.TrimSpace(line[i:])
	}
	word = strings.ToLower(word)

	kind, ok := lo.FindKey(keywords, word)
	if !ok {
		return mo.None[Op](), errUnknownOp(word)
	}

	switch {
	case kind == Push && rest == "":
		return mo.None[Op](), fmt.Errorf("%s: %w", word, ErrMissingArg)
	case kind != Push && rest != "":
		return mo.None[Op](), fmt.Errorf("%s %q: %w", word, rest, ErrUnexpectedArg)
	}

	return mo.Some(Op{Kind: kind, Arg: rest}), nil
}

// ParseAll parses every line of r. Errors carry the 1-based line number.
func ParseAll(r io.Reader) ([]Op, error) {
	var (
		ops     []Op
		scanner = bufio.NewScanner(r)
		lineNo  int
	)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)

	for scanner.Scan() {
		lineNo++
		op, err := Parse(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		if op.IsPresent() {
			ops = append(ops, op.MustGet())
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}

	return ops, nil
}

// Suggest returns the keyword closest to word by edit distance.
func Suggest(word string) string {
	return lo.MinBy(Keywords(), func(a, b string) bool {
		return levenshtein.Distance(word, a) < levenshtein.Distance(word, b)
	})
}

func errUnknownOp(word string) error {
	return fmt.Errorf("%w %q, did you mean %q?", ErrUnknownOp, word, Suggest(word))
}
