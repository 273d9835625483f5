package main

import (
	"flag"
	"io"

	"github.com/pkg/errors"
	"github.com/woozymasta/lzw"
)

// logPrefix is prepended to every log line.
const logPrefix = "[lzw]"

// stdio is the path that selects stdin or stdout.
const stdio = "-"

// errUsage is returned for malformed command lines.
var errUsage = errors.New("usage: lzw [-d] [-table N] [-max-input N] [-v] input output")

// configuration holds the parsed command line.
type configuration struct {
	Decompress   bool
	Verbose      bool
	MaxTableSize int
	MaxInputSize int
	Input        string
	Output       string
}

func parseFlags(args []string, stderr io.Writer) (*configuration, error) {
	config := &configuration{}

	fs := flag.NewFlagSet("lzw", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&config.Decompress, "d", false, "Decompress input instead of compressing it")
	fs.BoolVar(&config.Verbose, "v", false, "Log sizes after each run")
	fs.IntVar(&config.MaxTableSize, "table", lzw.DefaultMaxTableSize, "The maximum number of dictionary entries used when compressing")
	fs.IntVar(&config.MaxInputSize, "max-input", 0, "The maximum number of compressed bytes read when decompressing (0 = no limit)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() != 2 {
		return nil, errUsage
	}

	config.Input = fs.Arg(0)
	config.Output = fs.Arg(1)
	return config, nil
}
