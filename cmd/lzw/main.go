// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzw

// Command lzw compresses and decompresses files with package lzw.
//
//	lzw [-table N] input output     compress
//	lzw -d [-max-input N] input output
//
// Use "-" for stdin or stdout.
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix(logPrefix + " ")

	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("%v", err)
	}
}
