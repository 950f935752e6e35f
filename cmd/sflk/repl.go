package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/anima-libera/sflk"
)

const (
	promptMain  = "==> "
	historyFile = ".sflk_history"
)

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "interactively parse lines and inspect their trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl()
		},
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}

func runRepl() error {
	rl := liner.NewLiner()
	defer rl.Close()
	rl.SetCtrlCAborts(true)

	if f, err := os.Open(historyPath()); err == nil {
		rl.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyPath()); err == nil {
			rl.WriteHistory(f)
			f.Close()
		}
	}()

	sflk.EnableColor = true
	fmt.Printf("SFLK %s tree inspector. Ctrl+C cancels input, Ctrl+D exits.\n", sflk.Version)
	for {
		input, err := rl.Prompt(promptMain)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err == io.EOF {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		rl.AppendHistory(input)

		scu := sflk.SourceUnitFromString(input, "<repl>")
		prog, err := sflk.Parse(scu)
		if err != nil {
			fmt.Fprintln(os.Stderr, sflk.WrapErrorWithSource(err))
			continue
		}
		fmt.Println(prog.Tree().Render())
		if prog.IsInvalid() {
			fmt.Fprintln(os.Stderr, "program contains invalid syntax; not lowering")
			continue
		}
		fmt.Println(sflk.BlockTree(prog.Lower()).Render())
	}
}
