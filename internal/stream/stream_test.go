package stream

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	cases := []struct {
		name  string
		want  Compression
		inner string
	}{
		{"grid.complex", CompressionNone, "grid.complex"},
		{"grid.complex.zst", CompressionZSTD, "grid.complex"},
		{"pairs.csv.ZSTD", CompressionZSTD, "pairs.csv"},
		{"pairs.csv.lz4", CompressionLZ4, "pairs.csv"},
		{"noext", CompressionNone, "noext"},
	}
	for _, tc := range cases {
		c, inner := Detect(tc.name)
		assert.Equal(t, tc.want, c, tc.name)
		assert.Equal(t, tc.inner, inner, tc.name)
	}
}

func TestStream_RoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("0 1 2 3 4 5 6 7 8 9\n"), 512)
	for _, name := range []string{"x.txt", "x.txt.zst", "x.txt.lz4"} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			w, inner, err := NewWriter(&buf, name)
			require.NoError(t, err)
			assert.Equal(t, "x.txt", inner)
			_, err = w.Write(payload)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			c, _ := Detect(name)
			if c != CompressionNone {
				assert.Less(t, buf.Len(), len(payload), "repetitive payload should shrink")
			}

			r, _, err := NewReader(&buf, name)
			require.NoError(t, err)
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.NoError(t, r.Close())
			assert.Equal(t, payload, got)
		})
	}
}

func TestCompression_String(t *testing.T) {
	assert.Equal(t, "zst", CompressionZSTD.String())
	assert.Equal(t, "lz4", CompressionLZ4.String())
	assert.Equal(t, "none", CompressionNone.String())
	assert.Equal(t, "compression(9)", Compression(9).String())
}
