package mlo

import (
	"errors"
	"fmt"
)

var (
	ErrorFileOpen      = errors.New("Could not open container")
	ErrorSeek          = errors.New("Offset is not reachable")
	ErrorRead          = errors.New("Container is truncated")
	ErrorWrite         = errors.New("Could not write artifact")
	ErrorNegativeSize  = errors.New("Image size is negative")
	ErrorUnknownLayout = errors.New("Unsupported container layout")
)

type FileOpenError struct {
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("open %s: %v", e.Path, e.Err)
}

func (e *FileOpenError) Unwrap() []error { return []error{ErrorFileOpen, e.Err} }

// SeekError is returned when the source can not be positioned at Offset,
// which usually means the container ends before it.
type SeekError struct {
	Offset int64
	Size   int64
}

func (e *SeekError) Error() string {
	return fmt.Sprintf("seek to 0x%x: source is only 0x%x bytes", e.Offset, e.Size)
}

func (e *SeekError) Unwrap() error { return ErrorSeek }

// ReadError is returned when fewer than Want bytes of field What are
// available at Offset.
type ReadError struct {
	What   string
	Offset int64
	Want   int64
	Got    int64
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s at 0x%x: want %d bytes, got %d", e.What, e.Offset, e.Want, e.Got)
}

func (e *ReadError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrorRead}
	}
	return []error{ErrorRead, e.Err}
}

type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() []error { return []error{ErrorWrite, e.Err} }

// SizeError reports an image size that can not be used as a byte count.
type SizeError struct {
	Size   int32
	Offset int64
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("image size at 0x%x is %d", e.Offset, e.Size)
}

func (e *SizeError) Unwrap() error { return ErrorNegativeSize }
