// Package inline provides the application's non-interactive, scriptable execution mode.
package inline

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/anisan-cli/lifo/log"
	"github.com/anisan-cli/lifo/script"
	"github.com/anisan-cli/lifo/stack"
)

// Options configures a single inline run.
type Options struct {
	// In supplies the script. Required.
	In io.Reader
	// Out receives the results; defaults to os.Stdout.
	Out  io.Writer
	Json bool
}

// Run parses the whole script before executing it against a fresh stack,
// so a malformed line aborts without any operation being applied.
func Run(options *Options) error {
	if options.In == nil {
		return errors.New("inline: no input")
	}
	if options.Out == nil {
		options.Out = os.Stdout
	}

	ops, err := script.ParseAll(options.In)
	if err != nil {
		return err
	}

	s := stack.New[string]()
	results := script.Run(s, ops)
	for _, r := range results {
		log.Debugf("inline: %s -> %s (len %d)", r.Op, r, r.Len)
	}

	log.WithFields(log.Fields{
		"ops": len(ops),
		"len": s.Len(),
	}).Info("inline script executed")

	if options.Json {
		return writeJson(options.Out, results, s)
	}

	for _, r := range results {
		if _, err := fmt.Fprintln(options.Out, r); err != nil {
			return err
		}
	}

	return nil
}
