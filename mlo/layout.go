package mlo

const (
	// Marker identifies a container that starts with a settings header.
	Marker       = "CHSETTINGS"
	MarkerOffset = 0x14

	// DescriptorSize covers image_size and load_address.
	DescriptorSize = 8

	DefaultArtifactPath = "dump.bin"
)

type Layout int

const (
	LayoutBare Layout = iota
	LayoutExtended
)

type layoutInfo struct {
	name             string
	descriptorOffset int64
	extractPayload   bool
}

var layouts = map[Layout]layoutInfo{
	LayoutBare: {
		name:             "bare",
		descriptorOffset: 0x0,
	},
	LayoutExtended: {
		name:             "extended",
		descriptorOffset: 0x200, /* Settings header is skipped */
		extractPayload:   true,
	},
}

func LayoutList() []Layout {
	return []Layout{LayoutBare, LayoutExtended}
}

func layoutForHeader(hasHeader bool) Layout {
	if hasHeader {
		return LayoutExtended
	}
	return LayoutBare
}

func (l Layout) info() (layoutInfo, error) {
	info, ok := layouts[l]
	if !ok {
		return layoutInfo{}, ErrorUnknownLayout
	}
	return info, nil
}

func (l Layout) String() string {
	info, err := l.info()
	if err != nil {
		return "unknown"
	}
	return info.name
}

func (l Layout) DescriptorOffset() int64 {
	info, _ := l.info()
	return info.descriptorOffset
}

// ExtractsPayload reports whether the payload of this layout is written
// to an artifact.
func (l Layout) ExtractsPayload() bool {
	info, _ := l.info()
	return info.extractPayload
}

func (l Layout) HasHeader() bool {
	return l == LayoutExtended
}
