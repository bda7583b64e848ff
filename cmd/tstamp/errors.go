package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/hlop3z/tstamp/internal/alerr"
	"github.com/hlop3z/tstamp/internal/cli"
)

// Process exit codes.
const (
	exitOK         = 0
	exitConversion = 1 // The input could not be turned into a timestamp
	exitUsage      = 2 // The command line itself was malformed
)

const usageLine = "tstamp [FLAGS] [OPTIONS] [input]"

// exitCode maps an error returned by the command to a process exit code.
// Errors without a code come from cobra's own argument checks and count as
// usage errors.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case alerr.IsUsage(err):
		return exitUsage
	case alerr.HasCode(err):
		return exitConversion
	default:
		return exitUsage
	}
}

// reportError prints err to w and returns the exit code for it.
//
// Conversion failures use the single-line form
//
//	Could not parse input: invalid integer "abc": invalid syntax
//
// while usage errors get a full diagnostic followed by a usage reminder.
// Internal errors print their diagnostic with the captured stack and ask for
// a bug report.
func reportError(w io.Writer, err error) int {
	defer cli.Use(cli.DetectConfig(w))()
	code := exitCode(err)

	var ae *alerr.Error
	if alerr.IsConversion(err) && errors.As(err, &ae) {
		fmt.Fprintln(w, "Could not parse input: "+ae.Detail())
		return code
	}

	fmt.Fprint(w, cli.FormatError(err))
	switch {
	case alerr.IsInternal(err):
		fmt.Fprint(w, cli.FormatNote("this is a bug in tstamp, please report it"))
	case code == exitUsage:
		fmt.Fprintln(w)
		fmt.Fprintln(w, cli.Header("USAGE:"))
		fmt.Fprintln(w, "    "+usageLine)
		fmt.Fprintln(w)
		fmt.Fprint(w, cli.FormatHelp("for more information, try '"+cli.Highlight("--help")+"'"))
	}
	return code
}
