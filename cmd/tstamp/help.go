package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/hlop3z/tstamp/internal/cli"
)

// HelpEntry is one row of the help screen.
type HelpEntry struct {
	Name string
	Desc string
}

// HelpSection groups help rows under a title.
type HelpSection struct {
	Title   string
	Entries []HelpEntry
}

// helpSections is the data behind the root help screen.
var helpSections = []HelpSection{
	{
		Title: "FLAGS",
		Entries: []HelpEntry{
			{"-m, --millis", "Unix-time in ms"},
			{"-n, --nanos", "Unix-time in ns"},
			{"    --rfc2822", "Uses RFC 2822 as output format. Example: 'Wed, 28 Jul 2021 18:30:05 +0000'"},
			{"    --rfc3339", "Uses RFC 3339 as output format. Example: '2021-07-28T18:30:05.12+00:00'"},
			{"    --debug", "Log argument resolution to stderr"},
			{"-h, --help", "Prints help information"},
			{"-V, --version", "Prints version information"},
		},
	},
	{
		Title: "OPTIONS",
		Entries: []HelpEntry{
			{"-f, --from <from>", "Specifies the input format, unless this is set to 'now' (default value) [possible values: now, secs, millis, nanos, s, m, n]"},
			{"    --from-secs[=<value>]", "Read the input as Unix seconds ('now' or no value for the current time)"},
			{"    --from-millis <value>", "Read the input as Unix milliseconds"},
			{"    --from-nanos <value>", "Read the input as Unix nanoseconds"},
		},
	},
	{
		Title: "ARGS",
		Entries: []HelpEntry{
			{"<input>", "Unix timestamp to convert; required unless --from is 'now'"},
		},
	},
	{
		Title: "COMMANDS",
		Entries: []HelpEntry{
			{"completion", "Generate shell completion scripts (bash, zsh, fish, powershell)"},
		},
	},
	{
		Title: "EXAMPLES",
		Entries: []HelpEntry{
			{"tstamp -m", "Current time in Unix milliseconds"},
			{"tstamp -f secs 1627497005 --rfc2822", "Wed, 28 Jul 2021 18:30:05 +0000"},
			{"tstamp -f millis 1627497005123 --rfc3339", "2021-07-28T18:30:05.123+00:00"},
			{"tstamp -f secs -- -86400", "Negative values follow `--`"},
		},
	},
}

// renderHelp writes the root help screen to w.
func renderHelp(w io.Writer) {
	cfg := cli.DetectConfig(w)
	defer cli.Use(cfg)()

	fmt.Fprintln(w, cli.Header("tstamp")+" "+version)
	fmt.Fprintln(w, "Converts Unix timestamps to human-readable dates and back")
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.Header("USAGE:"))
	fmt.Fprintln(w, "    "+usageLine)

	for _, section := range helpSections {
		width := 0
		for _, e := range section.Entries {
			width = max(width, len(e.Name))
		}

		fmt.Fprintln(w)
		fmt.Fprintln(w, cli.Header(section.Title+":"))
		indent := strings.Repeat(" ", 4+width+4)
		for _, e := range section.Entries {
			pad := strings.Repeat(" ", width-len(e.Name))
			lines := cli.Wrap(e.Desc, cfg.Width-len(indent))
			fmt.Fprintf(w, "    %s%s    %s\n", cli.Highlight(e.Name), pad, cli.Dim(lines[0]))
			for _, line := range lines[1:] {
				fmt.Fprintln(w, indent+cli.Dim(line))
			}
		}
	}
}
