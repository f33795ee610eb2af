// Package cli implements the tcalc command line interface.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package cli

import (
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tcalc"
	"github.com/npillmayer/tcalc/interpreter"
	"github.com/npillmayer/tcalc/tcalc/ui/termui"
	"github.com/spf13/cobra"
)

// tracer traces with key 'tcalc.cli'
func tracer() tracing.Trace {
	return tracing.Select("tcalc.cli")
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tcalc [program ...]",
	Short: "A terminal calculator with session variables",
	Long: `Welcome to tcalc V0.1 (experimental)

tcalc interprets lines of assignment statements of the form

    name = expression;

where expressions are 32-bit integer arithmetic (+, -, * and
parentheses) or double-quoted text, and may refer to previously
assigned variables. After each interpreted line the current variable
table is printed.

If run without arguments, tcalc prompts for input in a terminal REPL.
Program lines given as arguments are interpreted in batch-mode instead.

`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by tcalc.main().
func Execute() {
	if rootCmd.Execute() != nil {
		tcalc.Exit(2)
	}
}

func init() {
	rootCmd.Run = runTcalcCmd
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	rootCmd.PersistentFlags().BoolP("interactive", "i", false, "Force run in interactive mode")
	rootCmd.PersistentFlags().String("logfile", "stderr", "URL of log output location")
}

func runTcalcCmd(cmd *cobra.Command, args []string) {
	interactive, _ := cmd.Flags().GetBool("interactive")
	if len(args) > 0 && !interactive {
		tcalc.Exit(runBatch(args))
	}
	runRepl(args)
}

// runBatch interprets each argument as one program line and prints the
// resulting variable table. The exit code tells whether any statement
// was rejected.
func runBatch(lines []string) int {
	tracer().Infof("tcalc batch interpreter called")
	intp := interpreter.NewInterpreter(nil)
	failed := 0
	for _, line := range lines {
		failed += intp.InterpretLine(line)
	}
	var formatter termui.DefaultFormatter
	if _, err := formatter.Format(intp.Dump(), rootCmd.OutOrStdout()); err != nil {
		tracer().Errorf("cannot render variable table: %v", err)
		return 1
	}
	if failed > 0 {
		return 1
	}
	return 0
}

func runRepl(args []string) {
	tracer().Infof("tcalc interpreter called")
	fcmd := &calcCmdIntpr{}
	fcmd.BaseREPL = termui.NewBaseREPL("tcalc", "0.1 experimental")
	fcmd.Interpreter = fcmd
	fcmd.Helper = func(w io.Writer) {
		io.WriteString(w, `
tcalc will interpret lines of the following form:

  name = expression; [ name = expression; ... ]  : assign variables
  exit                                           : quit application

An expression is integer arithmetic over literals, variables, '+',
'-', '*' and parentheses, or a double-quoted text literal. After each
line the session's variable table is printed.

`)
	}
	stdout, stderr := fcmd.Outputs()
	fcmd.intp = interpreter.NewInterpreter(stderr)
	fcmd.stdout = stdout
	for _, line := range args { // with -i, arguments pre-load the session
		fcmd.InterpretCommand(line)
	}
	fcmd.Prompt(true)
}

// calcCmdIntpr is the REPL command interpreter for calculator statements.
type calcCmdIntpr struct {
	*termui.BaseREPL
	intp   *interpreter.Interpreter
	stdout io.Writer
}

// InterpretCommand interprets one line of calculator statements and
// prints the variable table afterwards.
//
// Interface termui.REPLCommandInterpreter.
func (fcmd *calcCmdIntpr) InterpretCommand(line string) {
	if strings.EqualFold(strings.TrimSpace(line), "exit") {
		println("> goodbye!")
		tcalc.Exit(0)
	}
	fcmd.intp.InterpretLine(line)
	var formatter termui.DefaultFormatter
	if _, err := formatter.Format(fcmd.intp.Dump(), fcmd.stdout); err != nil {
		tracer().Errorf("cannot render variable table: %v", err)
	}
}
