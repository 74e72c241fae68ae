package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BertoldVdb/mlo-tools/mlo"
)

type HeaderCmd struct {
	Filename string `arg name:"file" help:"MLO container to dump."`
	Length   int    `optional help:"Number of bytes to dump." type:"uint" default:"64"`
}

func (h *HeaderCmd) Run(c *Context) error {
	f, err := os.Open(h.Filename)
	if err != nil {
		return &mlo.FileOpenError{Path: h.Filename, Err: err}
	}
	defer f.Close()

	buf := make([]byte, h.Length)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return err
	}
	buf = buf[:n]

	fmt.Fprint(c.out, hexdump(0, buf, headerMark(buf)))
	return nil
}

// headerMark highlights the marker if present, otherwise the bare
// descriptor words.
func headerMark(buf []byte) []bool {
	mark := make([]bool, len(buf))

	lo, hi := 0, mlo.DescriptorSize
	end := mlo.MarkerOffset + len(mlo.Marker)
	if len(buf) >= end && bytes.Equal(buf[mlo.MarkerOffset:end], []byte(mlo.Marker)) {
		lo, hi = mlo.MarkerOffset, end
	}

	for i := lo; i < hi && i < len(mark); i++ {
		mark[i] = true
	}
	return mark
}
