package main

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/alecthomas/kong"
)

// intMapper parses integers, with a 0x prefix when base is 0.
type intMapper struct {
	base     int
	unsigned bool
}

func (h intMapper) Decode(ctx *kong.DecodeContext, target reflect.Value) error {
	var value string
	err := ctx.Scan.PopValueInto("int", &value)
	if err != nil {
		return err
	}
	i, err := strconv.ParseInt(value, h.base, 64)
	if err != nil {
		return err
	}
	if h.unsigned && i < 0 {
		return fmt.Errorf("expected a non-negative value but got %d", i)
	}
	target.SetInt(i)
	return nil
}
