package interpreter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/tcalc"
	"github.com/npillmayer/tcalc/grammar"
)

// Interpreter interprets tcalc program lines against a session-scoped
// variable table.
type Interpreter struct {
	Table *VarTable // session variables, created empty, lives as long as the interpreter
	diag  io.Writer // sink for diagnostics, one line per rejected statement
}

// NewInterpreter creates an interpreter with an empty variable table.
// Diagnostics go to diag, or to stderr if diag is nil.
func NewInterpreter(diag io.Writer) *Interpreter {
	if diag == nil {
		diag = os.Stderr
	}
	return &Interpreter{
		Table: NewVarTable(),
		diag:  diag,
	}
}

// InterpretLine processes one line of input: it checks the terminating
// semicolon, splits the line into assignment statements and executes them
// in order. Rejected statements are reported and skipped; the session is
// never aborted. It returns the number of rejected statements.
func (intp *Interpreter) InterpretLine(line string) int {
	line = strings.TrimSpace(line)
	if line == "" {
		return 0
	}
	if !strings.HasSuffix(line, ";") {
		intp.errorf("program must end with a semicolon ;")
		return 1
	}
	failed := 0
	for _, stmt := range strings.Split(line, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if err := intp.assign(stmt); err != nil {
			intp.errorf("%v", err)
			failed++
		}
	}
	return failed
}

// assign executes a single `name = expression` statement. On success the
// variable table is updated; on failure it is left untouched.
func (intp *Interpreter) assign(stmt string) error {
	name, expr, found := strings.Cut(stmt, "=")
	if !found {
		return fmt.Errorf("invalid assignment format, use `name = value;`")
	}
	name = strings.TrimSpace(name)
	if !isValidIdentifier(name) {
		return fmt.Errorf("invalid identifier '%s'", name)
	}
	value, err := grammar.Evaluate(strings.TrimSpace(expr), intp.Table)
	if err != nil {
		return err
	}
	intp.Table.Set(name, value)
	return nil
}

// errorf produces exactly one diagnostic line.
func (intp *Interpreter) errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	tracer().Debugf("statement rejected: %s", msg)
	fmt.Fprintf(intp.diag, "error: %s\n", msg)
}

// Dump returns the variable table as a renderable table, sorted by name,
// with numerics printed bare and texts quoted. It returns nil for an
// empty session.
func (intp *Interpreter) Dump() table.Writer {
	if intp.Table.Len() == 0 {
		return nil
	}
	dump := table.NewWriter()
	dump.AppendHeader(table.Row{"variable", "value"})
	intp.Table.Each(func(name string, value tcalc.Value) {
		dump.AppendRow(table.Row{name, value.Self().String()})
	})
	return dump
}

// isValidIdentifier checks an assignment target: a leading letter or
// underscore, followed by letters, digits or underscores.
func isValidIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		head := r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if i == 0 && !head {
			return false
		}
		if i > 0 && !head && !(r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}
