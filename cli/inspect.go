package main

import (
	"fmt"
	"io"

	"github.com/BertoldVdb/mlo-tools/mlo"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/zeebo/blake3"
)

type InspectCmd struct {
	Filename string `arg name:"file" help:"MLO container to inspect."`

	Output  string `optional help:"File to write the extracted payload to." default:"dump.bin"`
	Preview int    `optional help:"Hexdump this many payload bytes." type:"uint" default:"0"`
	Digest  bool   `optional help:"Print the BLAKE3 digest of the payload."`
}

func (i *InspectCmd) Run(c *Context) error {
	config := c.config
	config.ArtifactPath = i.Output

	res, err := mlo.New(config).ParseFile(i.Filename)
	if err != nil {
		return err
	}

	i.report(c.out, res)
	return nil
}

func (i *InspectCmd) report(w io.Writer, res *mlo.Result) {
	header := color.New(color.FgYellow)
	if res.HasHeader {
		header = color.New(color.FgGreen)
	}
	fmt.Fprintf(w, "Is %s header: %s\n", mlo.Marker, header.Sprint(res.HasHeader))
	fmt.Fprintf(w, "Layout: %s (descriptor at 0x%x)\n", res.Layout, res.Descriptor.Offset)

	size := res.Descriptor.ImageSize
	if size >= 0 {
		fmt.Fprintf(w, "Image size: 0x%x/%d (%s)\n", size, size, humanize.Bytes(uint64(size)))
	} else {
		fmt.Fprintf(w, "Image size: 0x%x/%d\n", uint32(size), size)
	}
	fmt.Fprintf(w, "Load address: 0x%08x\n", res.Descriptor.LoadAddr())

	if res.ArtifactPath == "" {
		return
	}
	fmt.Fprintf(w, "Payload written to %s\n", res.ArtifactPath)

	if i.Digest {
		fmt.Fprintf(w, "Payload BLAKE3: %x\n", blake3.Sum256(res.Payload))
	}

	if n := i.Preview; n > 0 {
		if n > len(res.Payload) {
			n = len(res.Payload)
		}
		fmt.Fprint(w, hexdump(int(res.Descriptor.PayloadOffset()), res.Payload[:n], nil))
	}
}
