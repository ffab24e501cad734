/*
Command smscount reports how many SMS segments a text will occupy.

Usage

The text is taken from the command line arguments, joined by blanks, or,
if there are none, read from standard input.

   smscount [-v] [-split] [-nongsm] [text …]

Flag -split prints the parts a carrier would send, flag -nongsm lists the
characters which prevent the text from being sent in GSM 7-bit encoding.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"strings"
	"text/template"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/smscount"
	"github.com/npillmayer/smscount/gsm7"
	"github.com/npillmayer/smscount/segment"
)

var logger = log.New(os.Stderr, "smscount: ", log.LstdFlags)

type options struct {
	verbose bool // trace at debug level
	split   bool // print parts
	nongsm  bool // print non-GSM characters
}

func main() {
	var opts options
	flag.BoolVar(&opts.verbose, "v", false, "verbose output")
	flag.BoolVar(&opts.split, "split", false, "print the parts of the message")
	flag.BoolVar(&opts.nongsm, "nongsm", false, "list characters outside of GSM 03.38")
	flag.Parse()
	setupTracing(opts.verbose)
	if err := run(opts, flag.Args(), os.Stdin, os.Stdout); err != nil {
		logger.Fatal(err)
	}
}

var report = template.Must(template.New("report").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(
	`encoding:    {{.Result.Encoding}}
length:      {{.Result.Length}}
messages:    {{.Result.Messages}}
per message: {{.Result.PerMessage}}
remaining:   {{.Result.Remaining}}
{{if .NonGSM}}non-GSM:    {{range .NonGSM}} {{printf "%q" .}}{{end}}
{{end}}{{range $i, $p := .Parts}}part {{inc $i}}: {{printf "%q" $p}}
{{end}}`))

// setupTracing installs a log-backed core tracer. The default core tracer
// discards everything.
func setupTracing(verbose bool) {
	gtrace.CoreTracer = gologadapter.New()
	if verbose {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	} else {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
}

type reportData struct {
	Result smscount.Result
	NonGSM []rune
	Parts  []string
}

func run(opts options, args []string, stdin io.Reader, stdout io.Writer) error {
	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return err
		}
		text = string(data)
		if strings.HasSuffix(text, "\r\n") {
			text = strings.TrimSuffix(text, "\r\n")
		} else {
			text = strings.TrimSuffix(text, "\n")
		}
	}
	res, err := smscount.Analyze(text)
	if err != nil {
		return err
	}
	data := reportData{Result: res}
	if opts.nongsm {
		data.NonGSM = gsm7.UniqueNonGSM(text)
	}
	if opts.split {
		if data.Parts, err = segment.Split(text); err != nil {
			return err
		}
	}
	if opts.verbose {
		logger.Printf("%s", res)
	}
	return report.Execute(stdout, data)
}
