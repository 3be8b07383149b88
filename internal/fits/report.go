package fits

import (
	"bytes"
	"encoding/json"
)

// Header is an insertion-ordered mapping from keyword to normalized value.
// Duplicate keys collapse to one entry: the first occurrence keeps its
// position, the last occurrence supplies the value. The empty keyword is
// never stored.
type Header struct {
	keys   []string
	values map[string]Value
}

// NewHeader returns an empty header.
func NewHeader() Header {
	return Header{values: make(map[string]Value)}
}

// Set stores a value under key, overwriting any earlier occurrence while
// preserving its original position. Empty keys are dropped.
func (h *Header) Set(key string, v Value) {
	if key == "" {
		return
	}
	if h.values == nil {
		h.values = make(map[string]Value)
	}
	if _, ok := h.values[key]; !ok {
		h.keys = append(h.keys, key)
	}
	h.values[key] = v
}

// Get returns the value stored under key.
func (h Header) Get(key string) (Value, bool) {
	v, ok := h.values[key]
	return v, ok
}

// Keys returns the keywords in insertion order.
func (h Header) Keys() []string {
	out := make([]string, len(h.keys))
	copy(out, h.keys)
	return out
}

// Len returns the number of entries.
func (h Header) Len() int {
	return len(h.keys)
}

// MarshalJSON renders the header as a JSON object with keys in insertion
// order. encoding/json sorts map keys, so the object is built by hand.
func (h Header) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range h.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(h.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Descriptor describes one HDU of a FITS file.
type Descriptor struct {
	// Index is the zero-based position of the HDU in the file.
	Index int `json:"index"`

	// Type is the display name of the HDU variant (PrimaryHDU, ImageHDU,
	// BinTableHDU, TableHDU).
	Type string `json:"type"`

	// Header holds the normalized keyword/value pairs.
	Header Header `json:"header"`

	// DataShape lists the data dimensions in row-major order, or null when
	// the HDU carries no data.
	DataShape []int `json:"data_shape"`

	// DataType names the element type of the data, or null when the HDU
	// carries no data.
	DataType *string `json:"data_type"`
}

// Report is the result of normalizing one FITS file: either an ordered list
// of HDU descriptors or a single error message, never both.
type Report struct {
	// HDUs holds the per-HDU descriptors on success.
	HDUs []Descriptor

	// Err holds the failure message; when non-empty the report marshals as
	// a single-key error object and HDUs is ignored.
	Err string
}

// ErrorReport builds the error-shaped report for err.
func ErrorReport(err error) Report {
	return Report{Err: err.Error()}
}

// IsError reports whether the report carries a failure instead of HDUs.
func (r Report) IsError() bool {
	return r.Err != ""
}

// MarshalJSON renders the report as either an array of descriptors or a
// `{"error": msg}` object.
func (r Report) MarshalJSON() ([]byte, error) {
	if r.Err != "" {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{Error: r.Err})
	}
	if r.HDUs == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.HDUs)
}

// Indent is the indentation unit for pretty-printed reports.
const Indent = "  "

// RenderJSON returns the report as pretty-printed JSON with two-space
// indentation, the wire format of the CLI.
func (r Report) RenderJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", Indent)
}
