package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const hexdumpWidth = 16

// hexdump formats data as offset, hex and ASCII columns. Bytes with mark
// set are printed in red.
func hexdump(offset int, data []byte, mark []bool) string {
	var result strings.Builder
	red := color.New(color.FgRed)

	for len(data) > 0 {
		l := len(data)
		if l > hexdumpWidth {
			l = hexdumpWidth
		}
		work := data[:l]
		data = data[l:]
		var workMark []bool
		if mark != nil {
			workMark = mark[:l]
			mark = mark[l:]
		}

		var workHex, workASCII strings.Builder
		for i := 0; i < hexdumpWidth; i++ {
			if i >= len(work) {
				workHex.WriteString("   ")
				workASCII.WriteString(" ")
			} else {
				m := work[i]
				hl := workMark != nil && workMark[i]

				c := m
				if c < 32 || c > 126 {
					c = '.'
				}

				if hl {
					workHex.WriteString(red.Sprintf("%02x ", m))
					workASCII.WriteString(red.Sprintf("%c", c))
				} else {
					fmt.Fprintf(&workHex, "%02x ", m)
					workASCII.WriteByte(c)
				}
			}
			if i%8 == 7 {
				workHex.WriteString(" ")
			}
		}

		fmt.Fprintf(&result, "%08x  %s|%s|\n", offset, workHex.String(), workASCII.String())
		offset += l
	}

	return result.String()
}
