package cmd

import (
	"encoding/json"
	"io"

	"github.com/anisan-cli/lifo/filesystem"
	"github.com/anisan-cli/lifo/inline"
	"github.com/anisan-cli/lifo/key"
	"github.com/anisan-cli/lifo/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	lo.Must0(viper.BindPFlag(key.InlineJson, inlineCmd.Flags().Lookup("json")))

	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")
}

// inlineCmd replays a script of stack operations without interaction.
var inlineCmd = &cobra.Command{
	Use:     "inline [file]",
	Aliases: []string{"run"},
	Short:   "Execute a script of stack operations in non-interactive mode",
	Long: `Read one operation per line from a file, or from standard input when the file is omitted or "-".

Operations:
  push <value> - push the rest of the line
  pop          - remove and print the top element
  peek         - print the top element
  len          - print the number of elements
  empty        - print whether the stack is empty

Blank lines and lines starting with # are ignored. Pop and peek print <absent> on an empty stack.`,
	Example: "  printf 'push a\\npush b\\npop\\n' | lifo inline --json",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		in, err := filesystem.Open(lo.FirstOr(args, filesystem.Stdin))
		handleErr(err)
		defer util.Ignore(in.Close)

		var out io.Writer = cmd.OutOrStdout()
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			f, err := filesystem.API().Create(output)
			handleErr(err)
			defer util.Ignore(f.Close)
			out = f
		}

		handleErr(inline.Run(&inline.Options{
			In:   in,
			Out:  out,
			Json: viper.GetBool(key.InlineJson),
		}))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd prints the JSON schema of the inline output document.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for structured inline mode output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(inline.Schema()))
	},
}
