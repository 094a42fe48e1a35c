package format

type (
	// CompressionType is the compression scheme declared for one encoded peak
	// array, as stored in the container file. The set of values is closed; a
	// descriptor never carries anything outside it.
	CompressionType uint8

	// Stage is a single decode transformation. A declared CompressionType may
	// expand to more than one stage (numpress variants are always applied
	// before zlib on the write side, so zlib must be undone first on read).
	Stage uint8

	// StageSet is a bit set of Stage values.
	StageSet uint8

	// Precision is the declared binary width and interpretation of each stored
	// value before any compression was applied.
	Precision uint8
)

const (
	// CompressionNone is the zero value; an unset compression field means the
	// encoded bytes are raw fixed-width values.
	CompressionNone            CompressionType = 0x0 // no compression
	CompressionZlib            CompressionType = 0x1 // zlib stream compression
	CompressionNumpressLinear  CompressionType = 0x2 // numpress linear prediction
	CompressionNumpressPic     CompressionType = 0x3 // numpress positive integer
	CompressionNumpressSlof    CompressionType = 0x4 // numpress short logged float
	CompressionNumpressLinZlib CompressionType = 0x5 // numpress linear, then zlib
	CompressionNumpressPicZlib CompressionType = 0x6 // numpress positive integer, then zlib
	CompressionNumpressSlfZlib CompressionType = 0x7 // numpress short logged float, then zlib
)

const (
	StageNone           Stage = 1 << iota // pass-through
	StageZlib                             // inflate a zlib stream
	StageNumpressLinear                   // numpress linear prediction decode
	StageNumpressPic                      // numpress positive integer decode
	StageNumpressSlof                     // numpress short logged float decode
)

const (
	PrecisionUnspecified Precision = 0x0
	PrecisionFloat32     Precision = 0x1
	PrecisionInt32       Precision = 0x2
	PrecisionFloat64     Precision = 0x3
	PrecisionInt64       Precision = 0x4
)

// Stages resolves the declared compression type into the set of decode stages
// that must run, in the fixed order zlib-then-numpress.
//
// Unknown values resolve to StageNone, matching the historical treatment of a
// missing compression attribute.
//
// CompressionNumpressSlfZlib resolves to the empty set: existing readers never
// expanded this combination, so decoding such a descriptor falls through to
// precision unpacking (and fails there when no bit width is declared). Kept
// for compatibility with data written for those readers.
func (c CompressionType) Stages() StageSet {
	switch c {
	case CompressionZlib:
		return StageSet(StageZlib)
	case CompressionNumpressLinear:
		return StageSet(StageNumpressLinear)
	case CompressionNumpressPic:
		return StageSet(StageNumpressPic)
	case CompressionNumpressSlof:
		return StageSet(StageNumpressSlof)
	case CompressionNumpressLinZlib:
		return StageSet(StageNumpressLinear | StageZlib)
	case CompressionNumpressPicZlib:
		return StageSet(StageNumpressPic | StageZlib)
	case CompressionNumpressSlfZlib:
		return StageSet(0)
	default:
		return StageSet(StageNone)
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZlib:
		return "Zlib"
	case CompressionNumpressLinear:
		return "NumpressLinear"
	case CompressionNumpressPic:
		return "NumpressPic"
	case CompressionNumpressSlof:
		return "NumpressSlof"
	case CompressionNumpressLinZlib:
		return "NumpressLinear+Zlib"
	case CompressionNumpressPicZlib:
		return "NumpressPic+Zlib"
	case CompressionNumpressSlfZlib:
		return "NumpressSlof+Zlib"
	default:
		return "Unknown"
	}
}

// Has reports whether the set contains the given stage.
func (s StageSet) Has(stage Stage) bool {
	return s&StageSet(stage) != 0
}

// With returns a copy of the set with the given stage added.
func (s StageSet) With(stage Stage) StageSet {
	return s | StageSet(stage)
}

// Numpress returns the numpress stage contained in the set, if any. The three
// numpress stages are mutually exclusive; a valid set holds at most one.
func (s StageSet) Numpress() (Stage, bool) {
	switch {
	case s.Has(StageNumpressLinear):
		return StageNumpressLinear, true
	case s.Has(StageNumpressPic):
		return StageNumpressPic, true
	case s.Has(StageNumpressSlof):
		return StageNumpressSlof, true
	default:
		return 0, false
	}
}

func (s Stage) String() string {
	switch s {
	case StageNone:
		return "None"
	case StageZlib:
		return "Zlib"
	case StageNumpressLinear:
		return "NumpressLinear"
	case StageNumpressPic:
		return "NumpressPic"
	case StageNumpressSlof:
		return "NumpressSlof"
	default:
		return "Unknown"
	}
}

// BitWidth returns the stored width in bits: 32, 64, or 0 when the precision
// is unspecified or invalid.
func (p Precision) BitWidth() int {
	switch p {
	case PrecisionFloat32, PrecisionInt32:
		return 32
	case PrecisionFloat64, PrecisionInt64:
		return 64
	default:
		return 0
	}
}

func (p Precision) String() string {
	switch p {
	case PrecisionUnspecified:
		return "Unspecified"
	case PrecisionFloat32:
		return "Float32"
	case PrecisionInt32:
		return "Int32"
	case PrecisionFloat64:
		return "Float64"
	case PrecisionInt64:
		return "Int64"
	default:
		return "Unknown"
	}
}
