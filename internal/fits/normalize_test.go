package fits_test

import (
	"encoding/json"
	"testing"

	"github.com/astrogo/fitsio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitsmeta/cli/internal/fits"
	"github.com/fitsmeta/cli/internal/testutil"
)

func TestNormalizeSingleImage(t *testing.T) {
	path := testutil.WriteFITS(t, t.TempDir(), "light.fits", testutil.ImageSpec{
		Bitpix: -32,
		Axes:   []int{100, 100},
		Cards: []fitsio.Card{
			{Name: "OBJECT", Value: "M42", Comment: "target name"},
			{Name: "EXPTIME", Value: 600, Comment: "exposure time in seconds"},
		},
	})

	rep := fits.Normalize(path)
	require.False(t, rep.IsError(), "unexpected error report: %s", rep.Err)
	require.Len(t, rep.HDUs, 1)

	d := rep.HDUs[0]
	assert.Equal(t, 0, d.Index)
	assert.Equal(t, "PrimaryHDU", d.Type)
	assert.Equal(t, []int{100, 100}, d.DataShape)
	require.NotNil(t, d.DataType)
	assert.Equal(t, "float32", *d.DataType)

	obj, ok := d.Header.Get("OBJECT")
	require.True(t, ok)
	assert.Equal(t, "M42", obj.Native())

	exp, ok := d.Header.Get("EXPTIME")
	require.True(t, ok)
	assert.Equal(t, fits.KindInteger, exp.Kind())
}

func TestNormalizeMultiHDU(t *testing.T) {
	path := testutil.WriteFITS(t, t.TempDir(), "multi.fits",
		testutil.ImageSpec{Bitpix: 8, Axes: nil},
		testutil.ImageSpec{Bitpix: 16, Axes: []int{3, 4}},
	)

	rep := fits.Normalize(path)
	require.False(t, rep.IsError(), "unexpected error report: %s", rep.Err)
	require.Len(t, rep.HDUs, 2)

	for i, d := range rep.HDUs {
		assert.Equal(t, i, d.Index)
	}

	primary := rep.HDUs[0]
	assert.Equal(t, "PrimaryHDU", primary.Type)
	assert.Nil(t, primary.DataShape)
	assert.Nil(t, primary.DataType)

	ext := rep.HDUs[1]
	assert.Equal(t, "ImageHDU", ext.Type)
	assert.Equal(t, []int{4, 3}, ext.DataShape)
	require.NotNil(t, ext.DataType)
	assert.Equal(t, "int16", *ext.DataType)
}

func TestNormalizeBZeroPromotion(t *testing.T) {
	path := testutil.WriteFITS(t, t.TempDir(), "unsigned.fits", testutil.ImageSpec{
		Bitpix: 16,
		Axes:   []int{8, 8},
		Cards: []fitsio.Card{
			{Name: "BZERO", Value: 32768, Comment: "offset data range to that of unsigned short"},
			{Name: "BSCALE", Value: 1, Comment: "default scaling factor"},
		},
	})

	rep := fits.Normalize(path)
	require.False(t, rep.IsError(), "unexpected error report: %s", rep.Err)
	require.Len(t, rep.HDUs, 1)
	require.NotNil(t, rep.HDUs[0].DataType)
	assert.Equal(t, "uint16", *rep.HDUs[0].DataType)
}

func TestNormalizeDuplicateKeywordLastValueWins(t *testing.T) {
	path := testutil.WriteFITS(t, t.TempDir(), "dup.fits", testutil.ImageSpec{
		Bitpix: 16,
		Axes:   []int{4, 4},
		Cards: []fitsio.Card{
			{Name: "EXPTIME", Value: 30, Comment: "exposure time in seconds"},
			{Name: "EXPTIME", Value: 600, Comment: "exposure time in seconds"},
			{Name: "OBJECT", Value: "M42", Comment: "target name"},
		},
	})

	rep := fits.Normalize(path)
	require.False(t, rep.IsError(), "unexpected error report: %s", rep.Err)
	require.Len(t, rep.HDUs, 1)

	hdr := rep.HDUs[0].Header
	exp, ok := hdr.Get("EXPTIME")
	require.True(t, ok)
	assert.Equal(t, int64(600), exp.Native())

	// The collapsed key keeps the first occurrence's position
	keys := hdr.Keys()
	expIdx, objIdx := -1, -1
	for i, k := range keys {
		switch k {
		case "EXPTIME":
			require.Equal(t, -1, expIdx, "EXPTIME listed twice")
			expIdx = i
		case "OBJECT":
			objIdx = i
		}
	}
	require.NotEqual(t, -1, expIdx)
	require.NotEqual(t, -1, objIdx)
	assert.Less(t, expIdx, objIdx)
}

func TestNormalizeCommentaryCards(t *testing.T) {
	path := testutil.WriteFITS(t, t.TempDir(), "commentary.fits", testutil.ImageSpec{
		Bitpix: 16,
		Axes:   []int{4, 4},
		Cards: []fitsio.Card{
			{Name: "COMMENT", Comment: "first calibration pass"},
			{Name: "COMMENT", Comment: "second calibration pass"},
			{Name: "HISTORY", Comment: "bias subtracted"},
		},
	})

	rep := fits.Normalize(path)
	require.False(t, rep.IsError(), "unexpected error report: %s", rep.Err)
	require.Len(t, rep.HDUs, 1)

	hdr := rep.HDUs[0].Header

	comment, ok := hdr.Get("COMMENT")
	require.True(t, ok, "COMMENT card missing from report")
	assert.Equal(t, fits.KindString, comment.Kind())
	assert.Equal(t, "second calibration pass", comment.Native())

	history, ok := hdr.Get("HISTORY")
	require.True(t, ok, "HISTORY card missing from report")
	assert.Equal(t, "bias subtracted", history.Native())

	out, err := json.Marshal(hdr)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"COMMENT":"second calibration pass"`)
}

func TestNormalizeHeaderHasNoEmptyKeys(t *testing.T) {
	path := testutil.WriteFITS(t, t.TempDir(), "keys.fits", testutil.ImageSpec{
		Bitpix: -64,
		Axes:   []int{16, 16},
	})

	rep := fits.Normalize(path)
	require.False(t, rep.IsError())
	for _, d := range rep.HDUs {
		for _, key := range d.Header.Keys() {
			assert.NotEmpty(t, key)
		}
	}
}

func TestNormalizeMissingFile(t *testing.T) {
	rep := fits.Normalize("missing.fits")
	require.True(t, rep.IsError())
	assert.NotEmpty(t, rep.Err)

	out, err := json.Marshal(rep)
	require.NoError(t, err)

	var obj map[string]string
	require.NoError(t, json.Unmarshal(out, &obj))
	require.Len(t, obj, 1)
	assert.NotEmpty(t, obj["error"])
}

func TestNormalizeNotAFITSFile(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "plain.txt", "this is not a FITS file\n")

	rep := fits.Normalize(path)
	require.True(t, rep.IsError())
	assert.Empty(t, rep.HDUs)
}

func TestNormalizeIsDeterministic(t *testing.T) {
	path := testutil.WriteFITS(t, t.TempDir(), "stable.fits", testutil.ImageSpec{
		Bitpix: 32,
		Axes:   []int{5, 7},
		Cards: []fitsio.Card{
			{Name: "INSTRUME", Value: "testcam", Comment: ""},
		},
	})

	first, err := fits.Normalize(path).RenderJSON()
	require.NoError(t, err)
	second, err := fits.Normalize(path).RenderJSON()
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestNormalizeReportRoundTrips(t *testing.T) {
	path := testutil.WriteFITS(t, t.TempDir(), "roundtrip.fits", testutil.ImageSpec{
		Bitpix: -32,
		Axes:   []int{10, 20},
	})

	out, err := fits.Normalize(path).RenderJSON()
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded, 1)

	d := decoded[0]
	assert.Equal(t, float64(0), d["index"])
	assert.Equal(t, "PrimaryHDU", d["type"])
	assert.Equal(t, []interface{}{float64(20), float64(10)}, d["data_shape"])
	assert.Equal(t, "float32", d["data_type"])

	hdr, ok := d["header"].(map[string]interface{})
	require.True(t, ok)
	_, hasEmpty := hdr[""]
	assert.False(t, hasEmpty)
}
