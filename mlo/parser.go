package mlo

import (
	"bytes"
	"io"
	"os"
)

type LogFunc func(level int, format string, param ...interface{})

type Config struct {
	// ArtifactPath is where the payload of an extended container is
	// written. Defaults to DefaultArtifactPath.
	ArtifactPath string

	// WriteArtifact replaces the default file writer.
	WriteArtifact func(path string, data []byte) error

	LogFunc LogFunc
}

type Descriptor struct {
	Offset      int64
	ImageSize   int32
	LoadAddress int32
}

// LoadAddr returns the load address as the 32 bit address it encodes.
func (d Descriptor) LoadAddr() uint32 {
	return uint32(d.LoadAddress)
}

func (d Descriptor) PayloadOffset() int64 {
	return d.Offset + DescriptorSize
}

type Result struct {
	HasHeader  bool
	Layout     Layout
	Descriptor Descriptor

	// Payload and ArtifactPath are only set for layouts that extract.
	Payload      []byte
	ArtifactPath string
}

type Parser struct {
	config Config
}

func New(config Config) *Parser {
	if config.ArtifactPath == "" {
		config.ArtifactPath = DefaultArtifactPath
	}
	if config.WriteArtifact == nil {
		config.WriteArtifact = writeArtifactFile
	}

	return &Parser{config: config}
}

func (p *Parser) log(level int, format string, param ...interface{}) {
	if p.config.LogFunc != nil {
		p.config.LogFunc(level, format, param...)
	}
}

func DetectHeader(src io.ReadSeeker) (bool, error) {
	r, err := regionWrap(src)
	if err != nil {
		return false, err
	}
	return detectHeader(r)
}

func DetectLayout(src io.ReadSeeker) (Layout, error) {
	hasHeader, err := DetectHeader(src)
	if err != nil {
		return LayoutBare, err
	}
	return layoutForHeader(hasHeader), nil
}

func ReadDescriptor(src io.ReadSeeker, layout Layout) (Descriptor, error) {
	r, err := regionWrap(src)
	if err != nil {
		return Descriptor{}, err
	}
	return readDescriptor(r, layout)
}

// ReadPayload reads the ImageSize bytes following desc. The source must
// be the one desc was read from.
func ReadPayload(src io.ReadSeeker, desc Descriptor) ([]byte, error) {
	r, err := regionWrap(src)
	if err != nil {
		return nil, err
	}
	if err := r.Seek(desc.PayloadOffset()); err != nil {
		return nil, err
	}
	return readPayload(r, desc)
}

func ReadDescriptorAndPayload(src io.ReadSeeker, layout Layout, config Config) (Descriptor, []byte, error) {
	r, err := regionWrap(src)
	if err != nil {
		return Descriptor{}, nil, err
	}
	return New(config).readDescriptorAndPayload(r, layout)
}

func detectHeader(r *region) (bool, error) {
	if err := r.Seek(MarkerOffset); err != nil {
		return false, err
	}

	var marker [len(Marker)]byte
	if err := r.Read("marker", marker[:]); err != nil {
		return false, err
	}

	return bytes.Equal(marker[:], []byte(Marker)), nil
}

func readDescriptor(r *region, layout Layout) (Descriptor, error) {
	info, err := layout.info()
	if err != nil {
		return Descriptor{}, err
	}

	if err := r.Seek(info.descriptorOffset); err != nil {
		return Descriptor{}, err
	}

	desc := Descriptor{Offset: info.descriptorOffset}
	if desc.ImageSize, err = r.ReadInt32("image_size"); err != nil {
		return Descriptor{}, err
	}
	if desc.LoadAddress, err = r.ReadInt32("load_address"); err != nil {
		return Descriptor{}, err
	}

	return desc, nil
}

// readPayload expects r to be positioned right after the descriptor.
func readPayload(r *region, desc Descriptor) ([]byte, error) {
	if desc.ImageSize < 0 {
		return nil, &SizeError{Size: desc.ImageSize, Offset: desc.Offset}
	}

	size := int64(desc.ImageSize)
	if remaining := r.Remaining(); size > remaining {
		/* Refuse before allocating, the size may be garbage */
		return nil, &ReadError{
			What:   "payload",
			Offset: desc.PayloadOffset(),
			Want:   size,
			Got:    remaining,
		}
	}

	payload := make([]byte, size)
	if err := r.Read("payload", payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (p *Parser) readDescriptorAndPayload(r *region, layout Layout) (Descriptor, []byte, error) {
	desc, err := readDescriptor(r, layout)
	if err != nil {
		return Descriptor{}, nil, err
	}

	p.log(2, "Descriptor at 0x%x: image size 0x%x, load address 0x%08x",
		desc.Offset, desc.ImageSize, desc.LoadAddr())

	if !layout.ExtractsPayload() {
		return desc, nil, nil
	}

	payload, err := readPayload(r, desc)
	if err != nil {
		return Descriptor{}, nil, err
	}

	if err := p.config.WriteArtifact(p.config.ArtifactPath, payload); err != nil {
		return Descriptor{}, nil, &WriteError{Path: p.config.ArtifactPath, Err: err}
	}
	p.log(1, "Wrote %d bytes to %s", len(payload), p.config.ArtifactPath)

	return desc, payload, nil
}

// Parse inspects a single container.
func (p *Parser) Parse(src io.ReadSeeker) (*Result, error) {
	r, err := regionWrap(src)
	if err != nil {
		return nil, err
	}
	p.log(3, "Source is 0x%x bytes", r.GetLength())

	hasHeader, err := detectHeader(r)
	if err != nil {
		return nil, err
	}

	layout := layoutForHeader(hasHeader)
	p.log(1, "Detected %s layout", layout)

	desc, payload, err := p.readDescriptorAndPayload(r, layout)
	if err != nil {
		return nil, err
	}

	res := &Result{
		HasHeader:  hasHeader,
		Layout:     layout,
		Descriptor: desc,
		Payload:    payload,
	}
	if layout.ExtractsPayload() {
		res.ArtifactPath = p.config.ArtifactPath
	}
	return res, nil
}

func (p *Parser) ParseFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileOpenError{Path: path, Err: err}
	}
	defer f.Close()

	return p.Parse(f)
}

func writeArtifactFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}
