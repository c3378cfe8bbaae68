// Command grammar matches shell arguments against a declarative grammar file.
//
//	grammar FILE [ARGS...]   print the parsed 'key' = 'value' pairs, or help
//	grammar check FILE       validate a grammar file
//
// Shell scripts can use it as a getopt replacement: the exit code is 0 when
// ARGS matched (or help was requested), 2 on a usage error and 78 when FILE
// itself is broken.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dzonerzy/go-grammar/grammar"
	grammario "github.com/dzonerzy/go-grammar/io"
)

func main() {
	os.Exit(run(os.Args[1:], grammario.New()))
}

func run(args []string, io *grammario.IOManager) int {
	codes := grammar.NewExitCodeManager()
	log := grammario.NewLogger(io)
	exit := codes.Code(grammar.Success)

	root := &cobra.Command{
		Use:   "grammar FILE [ARGS...]",
		Short: "Match arguments against a declarative grammar",
		Long: "Loads the grammar declared in FILE (.yaml, .yml, .json or .toml), matches ARGS\n" +
			"against it and prints the result one 'key' = 'value' pair per line.",
		Args:               cobra.MinimumNArgs(1),
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "-h" || args[0] == "--help" {
				return cmd.Help()
			}
			syntax, err := grammar.LoadFile(args[0])
			if err != nil {
				return err
			}

			argv := append([]string{executableName(args[0])}, args[1:]...)
			result, code, ok := grammar.Process(syntax, argv,
				grammar.WithIO(io), grammar.WithLogger(log), grammar.WithExitCodes(codes))
			exit = code
			if ok {
				fmt.Fprint(io.Out(), result.String())
			}
			return nil
		},
	}

	root.CompletionOptions.DisableDefaultCmd = true
	root.AddCommand(&cobra.Command{
		Use:   "check FILE",
		Short: "Validate a grammar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			syntax, err := grammar.LoadFile(args[0])
			if err != nil {
				return err
			}
			log.Success("%s: %s %s, %d command(s)", args[0],
				syntax.ProgramName, syntax.ProgramVersion, len(syntax.Commands))
			return nil
		},
	})

	// cobra falls back to os.Args on nil
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetIn(io.In())
	root.SetOut(io.Out())
	root.SetErr(io.Err())

	if err := root.Execute(); err != nil {
		log.Error("%v", err)
		return codes.ErrorCode(err)
	}
	return exit
}

// executableName is the name help shows for the tool described by file.
func executableName(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
