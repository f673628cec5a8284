package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/anisan-cli/lifo/color"
	"github.com/anisan-cli/lifo/config"
	"github.com/anisan-cli/lifo/constant"
	"github.com/anisan-cli/lifo/style"
	"github.com/anisan-cli/lifo/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Display only environment variables that are currently defined")
	envCmd.Flags().BoolP("unset-only", "u", false, "Display only environment variables that are currently undefined")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envNames lists every supported environment variable, sorted.
func envNames() []string {
	names := lo.Map(config.EnvExposed, func(k string, _ int) string {
		return strings.ToUpper(constant.Lifo + "_" + config.EnvKeyReplacer.Replace(k))
	})
	names = append(names, where.EnvConfigPath)
	slices.Sort(names)
	return names
}

// envCmd displays the current process values for all supported environment variables.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display the supported environment variables",
	Long:  `Display the supported environment variables and their current process values.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			setOnly   = lo.Must(cmd.Flags().GetBool("set-only"))
			unsetOnly = lo.Must(cmd.Flags().GetBool("unset-only"))
			out       = cmd.OutOrStdout()
		)

		for _, env := range envNames() {
			value, present := os.LookupEnv(env)

			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			fmt.Fprint(out, style.New().Bold(true).Foreground(color.Purple).Render(env))
			fmt.Fprint(out, "=")

			if present {
				fmt.Fprintln(out, style.Fg(color.Green)(value))
			} else {
				fmt.Fprintln(out, style.Fg(color.Red)("unset"))
			}
		}
	},
}
