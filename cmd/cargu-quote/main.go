// Command cargu-quote prints a Windows command line that splits back into the
// given --arg values.
//
//	$ cargu-quote --arg 'c:\Program Files\x.exe' --arg 'a "b"'
//	"c:\Program Files\x.exe" "a \"b\""
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"github.com/0x53A/cargu"
	carguslog "github.com/0x53A/cargu/slog"
)

type quoteCmd struct {
	carguslog.LogOptions
	Arg  string     `cargu:"alias=-a,help='a token to quote, repeatable'"`
	Help cargu.Flag `cargu:"alias=-h,help=show usage help"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	r, err := cargu.Parse(quoteCmd{}, args)
	if err != nil {
		fmt.Fprintln(stderr, color.RedString("error: %s", err))
		return 2
	}
	if r.Contains("Help") {
		writeUsage(stdout)
		return 0
	}

	opts := carguslog.LogOptions{}
	opts.Load(r)
	logger := slog.New(opts.Handler(stderr, nil))

	tokens, err := cargu.All[string](r, "Arg")
	if err != nil {
		fmt.Fprintln(stderr, color.RedString("error: %s", err))
		return 1
	}
	line, err := cargu.Join(cargu.StyleWindows, tokens)
	if err != nil {
		fmt.Fprintln(stderr, color.RedString("error: %s", err))
		return 1
	}
	logger.Debug("quoted", "tokens", len(tokens))
	fmt.Fprintln(stdout, line)
	return 0
}

func writeUsage(w io.Writer) {
	fmt.Fprintln(w, "USAGE:\n    cargu-quote [OPTIONS]\n\nOPTIONS:")
	for _, f := range cargu.SchemaFor(quoteCmd{}).Fields() {
		fmt.Fprintf(w, "    %v  %s\n", f.Tokens(), f.Help())
	}
}
