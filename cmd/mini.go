package cmd

import (
	"github.com/anisan-cli/lifo/key"
	"github.com/anisan-cli/lifo/mini"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(miniCmd)

	miniCmd.Flags().StringP("prompt", "p", "", "Prompt string shown before every operation")
	lo.Must0(viper.BindPFlag(key.MiniPrompt, miniCmd.Flags().Lookup("prompt")))

	miniCmd.Flags().BoolP("show-len", "l", true, "Show the stack length after every operation")
	lo.Must0(viper.BindPFlag(key.MiniShowLen, miniCmd.Flags().Lookup("show-len")))
}

// miniCmd launches the interactive prompt explicitly, allowing its settings to be overridden.
var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Launch the interactive stack prompt",
	Long:  `Read operations one at a time and print each result. Type help for the list of operations and quit to leave.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(mini.Run(&mini.Options{Out: cmd.OutOrStdout()}))
	},
}
