package fits

import (
	"os"

	"github.com/astrogo/fitsio"
)

// Normalize opens the named FITS file and produces a report describing every
// HDU in file order. It never fails past its own boundary: any error while
// opening or iterating yields the error-shaped report instead. The file
// handle is released on every exit path before Normalize returns.
func Normalize(filename string) Report {
	f, err := os.Open(filename)
	if err != nil {
		return ErrorReport(err)
	}
	defer f.Close()

	fit, err := fitsio.Open(f)
	if err != nil {
		return ErrorReport(err)
	}
	defer fit.Close()

	hdus := fit.HDUs()
	descs := make([]Descriptor, 0, len(hdus))
	for i, hdu := range hdus {
		descs = append(descs, describe(i, hdu))
	}
	return Report{HDUs: descs}
}

// describe builds the descriptor for the HDU at position index.
func describe(index int, hdu fitsio.HDU) Descriptor {
	hdr := hdu.Header()

	h := NewHeader()
	for _, card := range headerCards(hdr) {
		switch card.Name {
		case "", "END":
			continue
		case "COMMENT", "HISTORY":
			// Commentary cards carry their text in the comment field.
			h.Set(card.Name, StringValue(card.Comment))
		default:
			h.Set(card.Name, ValueOf(card.Value))
		}
	}

	d := Descriptor{
		Index:  index,
		Type:   hduKind(index, hdu.Type()),
		Header: h,
	}

	switch t := hdu.(type) {
	case *fitsio.Table:
		d.DataShape = []int{int(t.NumRows())}
		d.DataType = strPtr(recordType)
	default:
		if shape := imageShape(hdr.Axes()); shape != nil {
			d.DataShape = shape
			d.DataType = strPtr(imageTypeName(h, hdr.Bitpix()))
		}
	}
	return d
}

// headerCards returns every card of hdr in file order, duplicates and
// commentary cards included. The fitsio Header exposes its cards only
// through Keys/Get (which collapse duplicates and hide commentary) and a
// panicking positional accessor, so the scan runs until the accessor
// rejects the index.
func headerCards(hdr *fitsio.Header) []fitsio.Card {
	var cards []fitsio.Card
	func() {
		defer func() {
			_ = recover()
		}()
		for i := 0; ; i++ {
			cards = append(cards, *hdr.Card(i))
		}
	}()
	return cards
}

// imageTypeName derives the element type name for an image HDU from its
// BITPIX value and the normalized BZERO entry. Reading BZERO from the
// normalized header means a repeated card resolves to its last value, like
// every other keyword.
func imageTypeName(h Header, bitpix int) string {
	var (
		bzero    float64
		hasBZero bool
	)
	if v, ok := h.Get("BZERO"); ok {
		switch n := v.Native().(type) {
		case int64:
			bzero, hasBZero = float64(n), true
		case float64:
			bzero, hasBZero = n, true
		}
	}
	return dataTypeName(bitpix, bzero, hasBZero)
}

func strPtr(s string) *string {
	return &s
}
