package cmd

import (
	"fmt"

	"github.com/anisan-cli/lifo/filesystem"
	"github.com/anisan-cli/lifo/icon"
	"github.com/anisan-cli/lifo/util"
	"github.com/anisan-cli/lifo/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// clearTarget is an application artifact that can be removed.
type clearTarget struct {
	name     string
	argLong  string
	argShort string
	location func() string
}

var clearTargets = []clearTarget{
	{"logs directory", "logs", "l", where.Logs},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		clearCmd.Flags().BoolP(target.argLong, target.argShort, false, "clear "+target.name)
	}
}

// clearCmd removes application artifacts from disk.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove application artifacts such as logs",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			erase := util.PrintErasable(fmt.Sprintf("Clearing %s...", target.name))
			path := target.location()
			if lo.Must(filesystem.API().Exists(path)) {
				handleErr(util.Delete(path))
			}
			erase()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
