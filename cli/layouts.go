package main

import (
	"fmt"

	"github.com/BertoldVdb/mlo-tools/mlo"
)

type ListLayoutsCmd struct {
}

func (l *ListLayoutsCmd) Run(c *Context) error {
	fmt.Fprintf(c.out, "Layout     | Descriptor | Extracts\n")

	for _, m := range mlo.LayoutList() {
		extracts := "no"
		if m.ExtractsPayload() {
			extracts = "yes"
		}
		fmt.Fprintf(c.out, "%-11s|     0x%04x | %s\n", m, m.DescriptorOffset(), extracts)
	}
	return nil
}
