/*
Package interpreter drives a tcalc session.

A session holds a variable table and consumes input line by line. Each
line is a sequence of assignment statements, terminated by semicolons:

   a = 2; b = a * 3; s = "some text";

Statements are independent: a rejected statement produces exactly one
diagnostic and leaves the variable table untouched, and the session
continues with the next statement. Expressions on the right-hand side
are evaluated by package grammar against the current table.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package interpreter

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'tcalc.runtime'
func tracer() tracing.Trace {
	return tracing.Select("tcalc.runtime")
}
