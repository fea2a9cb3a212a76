/*
Package cargu maps command line arguments to and from a declarative template
of named, typed fields.

Example

		package main

		import (
			"fmt"
			"os"

			"github.com/0x53A/cargu"
		)

		type Copy struct {
			Count int          `cargu:"unique,help=number of copies"`
			File  string       `cargu:"mandatory,alias=-f"`
			Force cargu.Flag
		}

		func main() {
			r, err := cargu.Parse(Copy{}, os.Args[1:])
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %s\n", err)
				os.Exit(1)
			}
			file, _ := cargu.First[string](r, "File")
			fmt.Println(file, r.Contains("Force"))

			line, _ := cargu.NewBuilder(Copy{}).
				Bind("Count", 10).
				Bind("File", "y.pdf").
				BindFlag("Force").
				Build()
			fmt.Println(line) // --count 10 --file y.pdf --force
		}

Templates

A template is a struct type; each exported field becomes one field keyed by
its Go name. Its canonical token is "--" followed by the kebab-cased name
unless a token tag overrides it. Tags look like `cargu:"key1,key2=value"`:

		struct Template {
			F1 string `cargu:"-"`                // skipped
			F2 string `cargu:"mandatory"`        // must appear at least once ("required" also works)
			F3 string `cargu:"unique"`           // must appear at most once
			F4 string `cargu:"once"`             // mandatory and unique
			F5 string `cargu:"token=/f5"`        // custom canonical token
			F6 string `cargu:"alias=-6,alias=-s"` // alias tokens
			F7 string `cargu:"help='free text, kept on the descriptor'"`
		}

Types that implement Provider declare their fields with FieldSpec values
instead, and NewSchema builds a schema from FieldSpec values directly.

Schemas are built once per template type and cached by the Registry. Building
never fails: a field with an unknown tag, an unsupported type or a tuple arity
outside 1..7 records the defect and only fails parses and bindings that use
it.

Values

Fields of type Flag take no value. TupleN fields and fixed-length arrays
consume one token per element. Every other field consumes one token decoded
by its codec: strings, bools, integers, floats (always with '.' as the decimal
separator), time.Duration, and any type implementing
encoding.TextUnmarshaler. A Registry's Codec hook adds more.

Command lines

Builder output is quoted for the Windows C runtime argv rules (see
EscapeWindows). Parse never unquotes: it expects tokens already split by the
operating system.
*/
package cargu
