// Package cmd implements the command-line interface for lifo.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/anisan-cli/lifo/color"
	"github.com/anisan-cli/lifo/constant"
	"github.com/anisan-cli/lifo/icon"
	"github.com/anisan-cli/lifo/key"
	"github.com/anisan-cli/lifo/log"
	"github.com/anisan-cli/lifo/mini"
	"github.com/anisan-cli/lifo/style"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))
}

var (
	exit             = os.Exit
	errOut io.Writer = os.Stderr
)

// rootCmd starts the interactive prompt when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   constant.Lifo,
	Short: "Push, pop and peek a last-in-first-out stack from the terminal",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Push, pop and peek a last-in-first-out stack from the terminal"),
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(mini.Run(&mini.Options{Out: cmd.OutOrStdout()}))
	},
}

// Execute wires colored help output and runs the command tree.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		log.Errorf("execute: %v", err)
		exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(errOut, "%s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), strings.Trim(err.Error(), " \n"))
		exit(1)
	}
}
