package catalog_test

import (
	"encoding/json"
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcardin/value-classes/modules/catalog"
)

func TestNewBarcode(t *testing.T) {
	t.Run("accepts the 1-6-6 digit grouping", func(t *testing.T) {
		code, err := catalog.NewBarcode("8-000137-001620")

		require.NoError(t, err)
		assert.Equal(t, "8-000137-001620", code.String())
		assert.False(t, code.IsZero())
	})

	t.Run("projection returns the input unchanged", func(t *testing.T) {
		inputs := []string{"0-000000-000000", "9-999999-999999", "8-000137-001620"}
		for _, raw := range inputs {
			code, err := catalog.NewBarcode(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, code.String())
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		inputs := []string{
			"",
			"not-a-code",
			"I am a bar-code ;)",
			"12-0001370-001620", // too many digits in first and second group
			"8-00137-001620",    // five digits in second group
			"8-000137-0016200",  // seven digits in third group
			"8-000137-00162",    // five digits in third group
			"88-000137-001620",  // two digits in first group
			"8-000137-001620 ",  // trailing whitespace is not tolerated
			" 8-000137-001620",  // leading whitespace is not tolerated
			"8_000137_001620",   // wrong separator
			"8-00013a-001620",   // non-digit
			"٨-٠٠٠١٣٧-٠٠١٦٢٠",   // non-ASCII digits
		}
		for _, raw := range inputs {
			code, err := catalog.NewBarcode(raw)

			require.Error(t, err, "input %q should be rejected", raw)
			assert.ErrorIs(t, err, catalog.ErrInvalidBarcode)
			assert.True(t, code.IsZero())
		}
	})

	t.Run("error carries the rejected input verbatim", func(t *testing.T) {
		_, err := catalog.NewBarcode("not-a-code")

		require.Error(t, err)
		assert.Equal(t, "the given code not-a-code has not the right format", err.Error())

		var invalidErr *catalog.InvalidBarcodeError
		require.ErrorAs(t, err, &invalidErr)
		assert.Equal(t, "not-a-code", invalidErr.Input)
	})
}

func TestMustBarcode(t *testing.T) {
	assert.NotPanics(t, func() { catalog.MustBarcode("8-000137-001620") })
	assert.Panics(t, func() { catalog.MustBarcode("not-a-code") })
}

func TestBarcodeEquality(t *testing.T) {
	b1 := catalog.MustBarcode("8-000137-001620")
	b2 := catalog.MustBarcode("8-000137-001620")
	b3 := catalog.MustBarcode("1-234567-890123")

	assert.True(t, b1 == b2, "barcodes built from equal text must be equal")
	assert.False(t, b1 == b3, "barcodes built from different text must differ")
}

func TestBarcodeFromDescriptionRevalidates(t *testing.T) {
	// The only path from description text to a barcode goes through
	// NewBarcode, which re-validates.
	desc := catalog.NewDescription("Still water 1l")
	_, err := catalog.NewBarcode(desc.String())
	assert.ErrorIs(t, err, catalog.ErrInvalidBarcode)

	looksLikeCode := catalog.NewDescription("8-000137-001620")
	code, err := catalog.NewBarcode(looksLikeCode.String())
	require.NoError(t, err)
	assert.Equal(t, "8-000137-001620", code.String())
}

func TestBarcodeJSON(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		code := catalog.MustBarcode("8-000137-001620")

		data, err := json.Marshal(code)
		require.NoError(t, err)
		assert.Equal(t, `"8-000137-001620"`, string(data))

		var decoded catalog.Barcode
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, code, decoded)
	})

	t.Run("decoding validates", func(t *testing.T) {
		var decoded catalog.Barcode
		err := json.Unmarshal([]byte(`"not-a-code"`), &decoded)

		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrInvalidBarcode)
	})
}

func TestBarcodeScan(t *testing.T) {
	t.Run("accepts valid text from storage", func(t *testing.T) {
		var code catalog.Barcode
		require.NoError(t, code.Scan("8-000137-001620"))
		assert.Equal(t, "8-000137-001620", code.String())

		var fromBytes catalog.Barcode
		require.NoError(t, fromBytes.Scan([]byte("8-000137-001620")))
		assert.Equal(t, code, fromBytes)
	})

	t.Run("rejects corrupted rows", func(t *testing.T) {
		var code catalog.Barcode
		err := code.Scan("corrupted")
		assert.ErrorIs(t, err, catalog.ErrInvalidBarcode)
	})

	t.Run("rejects unsupported source types", func(t *testing.T) {
		var code catalog.Barcode
		assert.Error(t, code.Scan(42))
	})

	t.Run("value returns the wrapped text", func(t *testing.T) {
		code := catalog.MustBarcode("8-000137-001620")
		v, err := code.Value()
		require.NoError(t, err)
		assert.Equal(t, "8-000137-001620", v)
	})
}

func TestBarcodeRepresentation(t *testing.T) {
	t.Run("wrapper is exactly the size of a string", func(t *testing.T) {
		assert.Equal(t, unsafe.Sizeof(""), unsafe.Sizeof(catalog.Barcode{}))
		assert.Equal(t, unsafe.Sizeof(""), unsafe.Sizeof(catalog.Description{}))
	})

	t.Run("construction does not allocate", func(t *testing.T) {
		raw := "8-000137-001620"
		allocs := testing.AllocsPerRun(1000, func() {
			code, err := catalog.NewBarcode(raw)
			if err != nil || code.IsZero() {
				t.Fatal("unexpected validation failure")
			}
		})
		assert.Zero(t, allocs, "wrapping a validated string must be free")
	})
}

func TestBarcodeAsMapKey(t *testing.T) {
	// Comparability makes barcodes usable as map keys directly.
	m := map[catalog.Barcode]int{
		catalog.MustBarcode("8-000137-001620"): 1,
	}
	assert.Equal(t, 1, m[catalog.MustBarcode("8-000137-001620")])
}

func TestInvalidBarcodeErrorUnwrap(t *testing.T) {
	err := &catalog.InvalidBarcodeError{Input: "x"}
	assert.True(t, errors.Is(err, catalog.ErrInvalidBarcode))
}
