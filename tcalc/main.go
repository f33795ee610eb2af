// Package tcalc is a terminal calculator with session variables.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/npillmayer/tcalc"
	"github.com/npillmayer/tcalc/tcalc/cli"
)

func main() {
	var stop context.CancelFunc
	tcalc.SignalContext, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli.Execute()
}
