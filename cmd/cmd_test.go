package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/anisan-cli/lifo/config"
	"github.com/anisan-cli/lifo/constant"
	"github.com/anisan-cli/lifo/filesystem"
	"github.com/anisan-cli/lifo/inline"
	"github.com/anisan-cli/lifo/key"
	"github.com/anisan-cli/lifo/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	lo.Must0(config.Setup())
}

// resetFlags restores scalar flags to their defaults between executions of the shared command tree.
func resetFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		if strings.HasSuffix(f.Value.Type(), "Slice") {
			return
		}
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(args ...string) string {
	var buf bytes.Buffer
	resetFlags(rootCmd)
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	lo.Must0(rootCmd.Execute())
	return buf.String()
}

type exitCode int

// executeFailing runs args expecting handleErr to stop the command.
func executeFailing(args ...string) (code int, stderr string) {
	var buf bytes.Buffer
	errOut, exit = &buf, func(code int) { panic(exitCode(code)) }
	defer func() {
		errOut, exit = os.Stderr, os.Exit
		if c, ok := recover().(exitCode); ok {
			code = int(c)
		}
		stderr = buf.String()
	}()

	execute(args...)
	return 0, buf.String()
}

func TestVersion(t *testing.T) {
	Convey("version", t, func() {
		Convey("Should print the bare version with --short", func() {
			So(execute("version", "--short"), ShouldEqual, constant.Version+"\n")
		})

		Convey("Should print build metadata", func() {
			out := execute("version")
			So(out, ShouldContainSubstring, constant.Lifo)
			So(out, ShouldContainSubstring, constant.Version)
		})
	})
}

func TestInline(t *testing.T) {
	Convey("inline", t, func() {
		Convey("Should read a script file", func() {
			lo.Must0(filesystem.API().WriteFile("/ops.txt", []byte("push 1\npush 2\npop\npeek\n"), 0o644))
			So(execute("inline", "/ops.txt"), ShouldEqual, "1\n2\n2\n1\n")
		})

		Convey("Should read standard input through the run alias", func() {
			filesystem.SetStdin(strings.NewReader("pop\nempty\n"))
			So(execute("run"), ShouldEqual, "<absent>\ntrue\n")
		})

		Convey("Should emit JSON", func() {
			filesystem.SetStdin(strings.NewReader("push x\nlen\n"))
			var output inline.Output
			So(json.Unmarshal([]byte(execute("inline", "--json", "-")), &output), ShouldBeNil)
			So(output.Ops, ShouldEqual, 2)
			So(output.Len, ShouldEqual, 1)
		})

		Convey("Should write to the output file", func() {
			filesystem.SetStdin(strings.NewReader("push kept\n"))
			So(execute("inline", "-o", "/out.txt"), ShouldBeEmpty)
			So(string(lo.Must(filesystem.API().ReadFile("/out.txt"))), ShouldEqual, "kept\n")
		})

		Convey("Should fail on a missing script file", func() {
			code, stderr := executeFailing("inline", "/missing.txt")
			So(code, ShouldEqual, 1)
			So(stderr, ShouldContainSubstring, "missing.txt")
		})

		Convey("Should fail on a malformed script without output", func() {
			filesystem.SetStdin(strings.NewReader("push 1\npsh 2\n"))
			code, stderr := executeFailing("inline", "-o", "/partial.txt")
			So(code, ShouldEqual, 1)
			So(stderr, ShouldContainSubstring, "line 2:")
			So(stderr, ShouldContainSubstring, `did you mean "push"`)
			So(string(lo.Must(filesystem.API().ReadFile("/partial.txt"))), ShouldBeEmpty)
		})

		Convey("Should print the output schema", func() {
			So(execute("inline", "schema"), ShouldContainSubstring, `"results"`)
		})
	})
}

func TestConfig(t *testing.T) {
	Convey("config", t, func() {
		Convey("get should print the effective value", func() {
			So(execute("config", "get", key.LogsLevel), ShouldEqual, "info\n")
		})

		Convey("set should persist the value", func() {
			out := execute("config", "set", key.MiniShowLen, "false")
			So(out, ShouldContainSubstring, key.MiniShowLen)
			So(viper.GetBool(key.MiniShowLen), ShouldBeFalse)
			So(lo.Must(filesystem.API().Exists(where.ConfigFile())), ShouldBeTrue)

			execute("config", "reset", "--key", key.MiniShowLen)
			So(viper.GetBool(key.MiniShowLen), ShouldBeTrue)
		})

		Convey("info should list fields as JSON", func() {
			var fields []map[string]any
			So(json.Unmarshal([]byte(execute("config", "info", "--json")), &fields), ShouldBeNil)
			So(fields, ShouldHaveLength, len(config.Default))
		})
	})
}

func TestWhereAndEnv(t *testing.T) {
	Convey("where and env", t, func() {
		Convey("where --logs should print only the logs path", func() {
			So(execute("where", "--logs"), ShouldEqual, where.Logs()+"\n")
		})

		Convey("env should list every variable", func() {
			out := execute("env")
			So(out, ShouldContainSubstring, "LIFO_MINI_PROMPT")
			So(out, ShouldContainSubstring, where.EnvConfigPath)
		})
	})
}

func TestClear(t *testing.T) {
	Convey("clear --logs should remove the logs directory", t, func() {
		lo.Must0(filesystem.API().WriteFile(where.Logs()+"/old.log", []byte("x"), 0o644))
		So(execute("clear", "--logs"), ShouldContainSubstring, "cleared")
		So(lo.Must(filesystem.API().Exists(where.Logs()+"/old.log")), ShouldBeFalse)
	})
}
