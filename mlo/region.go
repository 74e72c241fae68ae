package mlo

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// region is a sized view over a container source. Unlike a plain
// io.Seeker it refuses offsets past the end of the source.
type region struct {
	src    io.ReadSeeker
	length int64
	pos    int64
}

func regionWrap(src io.ReadSeeker) (*region, error) {
	length, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: can't determine source size: %v", ErrorSeek, err)
	}

	return &region{
		src:    src,
		length: length,
		pos:    length,
	}, nil
}

func (r *region) GetLength() int64 {
	return r.length
}

func (r *region) Remaining() int64 {
	return r.length - r.pos
}

func (r *region) Seek(offset int64) error {
	if offset < 0 || offset > r.length {
		return &SeekError{Offset: offset, Size: r.length}
	}

	if _, err := r.src.Seek(offset, io.SeekStart); err != nil {
		return &SeekError{Offset: offset, Size: r.length}
	}
	r.pos = offset
	return nil
}

// Read fills buf completely or fails with a ReadError naming what.
func (r *region) Read(what string, buf []byte) error {
	start := r.pos

	total := 0
	for total < len(buf) {
		n, err := r.src.Read(buf[total:])
		total += n
		r.pos += int64(n)

		if total == len(buf) {
			break
		}
		if err != nil || n == 0 {
			if errors.Is(err, io.EOF) {
				err = nil
			}
			return &ReadError{
				What:   what,
				Offset: start,
				Want:   int64(len(buf)),
				Got:    int64(total),
				Err:    err,
			}
		}
	}

	return nil
}

func (r *region) ReadInt32(what string) (int32, error) {
	var buf [4]byte
	if err := r.Read(what, buf[:]); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(buf[:])), nil
}
