package main

import (
	"bytes"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/woozymasta/lzw"
)

// run executes one compression or decompression described by args.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	config, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	in, closeInput, err := openInput(config.Input, stdin)
	if err != nil {
		return err
	}
	defer closeInput()

	var out bytes.Buffer
	if config.Decompress {
		data, err := lzw.DecompressFromReader(in, &lzw.DecompressOptions{MaxInputSize: config.MaxInputSize})
		if err != nil {
			return errors.Wrapf(err, "decompress %s", config.Input)
		}
		out.Write(data)
	} else {
		src, err := io.ReadAll(in)
		if err != nil {
			return errors.Wrapf(err, "read %s", config.Input)
		}
		if err := lzw.CompressTo(&out, src, &lzw.CompressOptions{MaxTableSize: config.MaxTableSize}); err != nil {
			return errors.Wrapf(err, "compress %s", config.Input)
		}
	}

	if err := writeOutput(config.Output, stdout, out.Bytes()); err != nil {
		return err
	}

	if config.Verbose {
		logger := log.New(stderr, logPrefix+" ", 0)
		logger.Printf("%s -> %s: wrote %d bytes", config.Input, config.Output, out.Len())
	}

	return nil
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == stdio {
		return stdin, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open %s", path)
	}

	return f, func() { _ = f.Close() }, nil
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == stdio {
		_, err := stdout.Write(data)
		return errors.Wrap(err, "write stdout")
	}

	return errors.Wrapf(os.WriteFile(path, data, 0o644), "write %s", path)
}
