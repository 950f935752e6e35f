// Command sflk inspects SFLK source: raw tokens, the parsed tree, and the
// lowered program. It never executes anything.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anima-libera/sflk"
)

var colorFlag bool

func main() {
	root := &cobra.Command{
		Use:           "sflk",
		Short:         "SFLK front end: tokenize, parse and lower SFLK source",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&colorFlag, "color", false, "colorize tree output")
	root.AddCommand(tokensCmd(), treeCmd(), lowerCmd(), replCmd(), versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "print the raw token stream of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scu, err := sflk.SourceUnitFromFile(args[0])
			if err != nil {
				return err
			}
			rh := sflk.NewReadingHead(scu)
			for {
				tok, loc, err := rh.ReadToken()
				if err != nil {
					return sflk.WrapErrorWithSource(err)
				}
				if tok.IsVoid() {
					return nil
				}
				fmt.Printf("line %d byte %d..%d\t%s\t%q\n",
					loc.LineStart, loc.ByteStart, loc.ByteStart+loc.ByteLength,
					tok.Kind, tok.Raw)
			}
		},
	}
}

func treeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <file>",
		Short: "parse a source file and print its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := parseFile(args[0])
			if err != nil {
				return err
			}
			fmt.Println(prog.Tree().Render())
			return nil
		},
	}
}

func lowerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lower <file>",
		Short: "parse a source file and print its lowered program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := parseFile(args[0])
			if err != nil {
				return err
			}
			if prog.IsInvalid() {
				return fmt.Errorf("%s: program contains invalid syntax; refusing to lower", args[0])
			}
			fmt.Println(sflk.BlockTree(prog.Lower()).Render())
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the front end version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(sflk.Version)
		},
	}
}

func parseFile(path string) (*sflk.Program, error) {
	scu, err := sflk.SourceUnitFromFile(path)
	if err != nil {
		return nil, err
	}
	sflk.EnableColor = colorFlag
	prog, err := sflk.Parse(scu)
	if err != nil {
		return nil, sflk.WrapErrorWithSource(err)
	}
	return prog, nil
}
