// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzw

/*
Package lzw implements an adaptive-dictionary (LZW) compressor and decompressor
that packs variable-width codes into a dense bit stream.

Both sides start from the 256 single-byte patterns (codes 0–255) and learn new
patterns from the data, assigning codes sequentially from 256. Codes start 9 bits
wide and grow by one bit each time the entry count reaches 2^width. Codes are
written back to back without alignment: each code most significant bit first,
filling every byte from its least significant bit. The final byte is zero-padded.
There is no header, length prefix or checksum; decompression consumes the whole
stream.

# Compress

Options may be nil (encoder dictionary capped at DefaultMaxTableSize entries):

	out, err := lzw.Compress(data, nil)
	out, err := lzw.Compress(data, &lzw.CompressOptions{MaxTableSize: 4096})

To an io.Writer, in one call or streamed:

	err := lzw.CompressTo(w, data, nil)

	zw, err := lzw.NewWriter(w, nil)
	_, err = zw.Write(chunk)
	err = zw.Close() // emits the last code and the padded byte

# Decompress

	out, err := lzw.Decompress(compressed)
	out, err := lzw.DecompressFromReader(r, &lzw.DecompressOptions{MaxInputSize: 1 << 20})

# Table cap

MaxTableSize bounds only the encoder dictionary. The decoder keeps learning
entries and widening codes after the encoder has stopped, so once a stream
outgrows the cap the two sides fall out of step and decoding produces wrong
data from that point on. Keep
MaxTableSize large enough for the data, or compress in smaller pieces.
*/
package lzw
