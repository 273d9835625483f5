package lzw

import (
	"io"

	"github.com/pkg/errors"
)

// DecompressFromReader reads the full stream then calls Decompress. No decoding logic of its own.
// opts may be nil. If opts.MaxInputSize > 0 and more bytes are available, returns ErrInputTooLarge.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	if opts.MaxInputSize > 0 {
		r = io.LimitReader(r, int64(opts.MaxInputSize)+1)
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read packed stream")
	}

	if opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, errors.WithStack(ErrInputTooLarge)
	}

	return Decompress(src)
}
