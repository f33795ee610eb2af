// Package termui provides objects and methods for interactive UI in terminal windows.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package termui

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/schuko/tracing"
)

// trace traces with key 'tcalc.cli'.
func trace() tracing.Trace {
	return tracing.Select("tcalc.cli")
}

// Formatter renders interpreter output items for the terminal.
type Formatter interface {
	Format(interface{}, io.Writer) (bool, error)
}

// DefaultFormatter understands plain strings and go-pretty tables, which
// is what a calculator session produces (diagnostic text and variable
// table dumps).
type DefaultFormatter struct{}

func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	switch t := item.(type) {
	case nil:
		w.Write([]byte("▶ (no variables)\n"))
		return true, nil
	case string:
		w.Write([]byte("▶ "))
		if _, err := w.Write([]byte(t)); err != nil {
			return false, err
		}
		w.Write([]byte{'\n'})
		return true, nil
	case table.Writer:
		if t == nil {
			w.Write([]byte("▶ (no variables)\n"))
		} else {
			w.Write([]byte(t.Render()))
			w.Write([]byte{'\n'})
		}
		return true, nil
	default:
		w.Write([]byte("▶ "))
		w.Write([]byte(fmt.Sprintf("object of type %T\n", t)))
		return true, nil
	}
}
