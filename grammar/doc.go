/*
Package grammar implements the tcalc expression language.

An expression is either a text literal enclosed in double quotes, or
integer arithmetic over literals, named variables and the operators
'+', '-' and '*', with the usual precedence and parentheses for
grouping. Expressions are evaluated in a single pass directly from the
character sequence; there is no token stream and no syntax tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tcalc.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("tcalc.grammar")
}
