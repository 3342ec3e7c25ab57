package cmd

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/gucli/gucli/internal/registry"
)

var addCmd = &cobra.Command{
	Use:   "add <command>",
	Short: "Append a command to the registry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		shellName, _ := cmd.Flags().GetString("shell")
		icon, _ := cmd.Flags().GetString("icon")
		sn, _ := cmd.Flags().GetBool("sn")

		invocation := strings.TrimSpace(args[0])
		if invocation == "" {
			return fmt.Errorf("command cannot be empty")
		}
		shell := registry.Shell(shellName)
		if !shell.Valid() {
			return fmt.Errorf("unknown shell %q, expected sh, bash, zsh, or fish", shellName)
		}
		if utf8.RuneCountInString(icon) > registry.MaxIconRunes {
			return fmt.Errorf("icon exceeds %d characters", registry.MaxIconRunes)
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		set, err := a.loadSet()
		if err != nil {
			return err
		}
		for _, spec := range set {
			if spec.Invocation == invocation {
				return fmt.Errorf("command %q already registered at index %d", invocation, spec.ID)
			}
		}

		set = append(set, registry.CommandSpec{
			ID:              len(set),
			Shell:           shell,
			Invocation:      invocation,
			Icon:            icon,
			NotifyOnSuccess: sn,
		})
		if err := a.store.Save(set); err != nil {
			return err
		}
		fmt.Printf("added %q at index %d\n", invocation, len(set)-1)
		return nil
	},
}

func init() {
	addCmd.Flags().String("shell", string(registry.DefaultShell), "Interpreter: sh, bash, zsh, or fish")
	addCmd.Flags().String("icon", "", "Icon shown next to the command (max 8 glyphs)")
	addCmd.Flags().Bool("sn", true, "Send a desktop notification on success too")
	rootCmd.AddCommand(addCmd)
}
