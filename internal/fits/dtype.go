package fits

import (
	"github.com/astrogo/fitsio"
)

// Display names for the HDU variants, matching astropy's class names so
// reports stay comparable across tools.
const (
	KindPrimary    = "PrimaryHDU"
	KindImage      = "ImageHDU"
	KindBinTable   = "BinTableHDU"
	KindASCIITable = "TableHDU"
)

// hduKind maps an HDU's library type to its display name. The first HDU of
// a file is always the primary array.
func hduKind(index int, typ fitsio.HDUType) string {
	switch typ {
	case fitsio.ASCII_TBL:
		return KindASCIITable
	case fitsio.BINARY_TBL:
		return KindBinTable
	default:
		if index == 0 {
			return KindPrimary
		}
		return KindImage
	}
}

// recordType is the element type reported for table data.
const recordType = "record"

// dataTypeName maps BITPIX to the numpy-compatible element type name.
// BZERO offsets that signal unsigned (or signed byte) storage promote the
// type the same way astropy does.
func dataTypeName(bitpix int, bzero float64, hasBZero bool) string {
	if hasBZero {
		switch {
		case bitpix == 8 && bzero == -128:
			return "int8"
		case bitpix == 16 && bzero == 32768:
			return "uint16"
		case bitpix == 32 && bzero == 2147483648:
			return "uint32"
		case bitpix == 64 && bzero == 9223372036854775808:
			return "uint64"
		}
	}

	switch bitpix {
	case 8:
		return "uint8"
	case 16:
		return "int16"
	case 32:
		return "int32"
	case 64:
		return "int64"
	case -32:
		return "float32"
	case -64:
		return "float64"
	default:
		return "unknown"
	}
}

// imageShape converts the NAXISn axis lengths into a row-major shape.
// A zero-length or degenerate axis list means the HDU has no data.
func imageShape(axes []int) []int {
	if len(axes) == 0 {
		return nil
	}
	shape := make([]int, len(axes))
	for i, n := range axes {
		if n <= 0 {
			return nil
		}
		shape[len(axes)-1-i] = n
	}
	return shape
}
