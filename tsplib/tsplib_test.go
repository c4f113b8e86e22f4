package tsplib_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspkit/store"
	"github.com/katalvlaran/tspkit/tsp"
	"github.com/katalvlaran/tspkit/tsplib"
)

const squareNoName = `DIMENSION: 4
NODE_COORD_SECTION
1 0 0
2 0 1
3 1 1
4 1 0
EOF
`

func TestLoad_TestdataSquare(t *testing.T) {
	in, err := tsplib.Load("testdata/square.tsp")
	require.NoError(t, err)
	require.Equal(t, "Square", in.Name())
	require.Equal(t, 4, in.Len())
	require.Equal(t, tsp.Point{ID: 2, X: 1, Y: 1}, in.Point(2))
	require.InDelta(t, 4.0, tsp.TourLength(in, tsp.IdentityTour(4)), 1e-12)
}

func TestDecode_Header(t *testing.T) {
	h, in, err := tsplib.Decode(strings.NewReader("NAME: berlin52\nTYPE : TSP\nCOMMENT : 52 locations in Berlin (Groetschel)\nEDGE_WEIGHT_TYPE : euc_2d\nNODE_COORD_SECTION\n1 565.0 575.0\n2 25.0 185.0\n"))
	require.NoError(t, err)
	require.Equal(t, tsplib.Header{
		Name:           "berlin52",
		Type:           "TSP",
		Comment:        "52 locations in Berlin (Groetschel)",
		EdgeWeightType: "EUC_2D",
	}, h)
	// Input without the EOF marker ends at end of stream.
	require.Equal(t, 2, in.Len())
}

func TestParse_StopsAtEOF(t *testing.T) {
	in, err := tsplib.Parse(strings.NewReader("NODE_COORD_SECTION\n1 0 0\n2 3 4\nEOF\ntrailing garbage\n"))
	require.NoError(t, err)
	require.Equal(t, 2, in.Len())
	require.Empty(t, in.Name())
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"no section":        "NAME : x\nDIMENSION : 2\n",
		"empty section":     "NODE_COORD_SECTION\nEOF\n",
		"short line":        "NODE_COORD_SECTION\n1 0\nEOF\n",
		"non numeric":       "NODE_COORD_SECTION\n1 0 north\nEOF\n",
		"dimension":         "DIMENSION : 3\nNODE_COORD_SECTION\n1 0 0\n2 1 1\nEOF\n",
		"bad dimension":     "DIMENSION : many\nNODE_COORD_SECTION\n1 0 0\nEOF\n",
		"malformed header":  "NAME x\nNODE_COORD_SECTION\n1 0 0\nEOF\n",
		"unsupported edges": "EDGE_WEIGHT_TYPE : GEO\nNODE_COORD_SECTION\n1 0 0\nEOF\n",
		"non finite":        "NODE_COORD_SECTION\n1 NaN 0\nEOF\n",
	}
	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := tsplib.Parse(strings.NewReader(text))
			require.ErrorIs(t, err, tsp.ErrInvalidInstance)
		})
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	in, err := tsp.FromCoords("roundtrip", [][2]float64{{33665568.0, -84411070.0}, {0.1, 1e-7}, {-3.25, 12}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tsplib.Write(&buf, in, "three points"))

	h, back, err := tsplib.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, "three points", h.Comment)
	require.Equal(t, 3, h.Dimension)
	require.Equal(t, in.Name(), back.Name())
	require.Equal(t, in.Points(), back.Points())
}

func TestLoad_Compressed(t *testing.T) {
	src, err := tsplib.Load("testdata/square.tsp")
	require.NoError(t, err)
	dir := t.TempDir()

	for _, name := range []string{"Square.tsp.gz", "square.tsp.zst", "square.tsp.lz4", "square.tsp"} {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(dir, name)
			writeCompressed(t, p, src)

			in, err := tsplib.Load(p)
			require.NoError(t, err)
			require.Equal(t, src.Points(), in.Points())
		})
	}
}

func TestLoad_NameFromStem(t *testing.T) {
	p := filepath.Join(t.TempDir(), "Atlanta.tsp.gz")
	f, err := os.Create(p)
	require.NoError(t, err)
	w, err := tsplib.NewWriter(tsplib.CodecGzip, f)
	require.NoError(t, err)
	_, err = w.Write([]byte(squareNoName))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	in, err := tsplib.Load(p)
	require.NoError(t, err)
	require.Equal(t, "atlanta", in.Name())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := tsplib.Load(filepath.Join(t.TempDir(), "absent.tsp"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFrom_Store(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	require.NoError(t, s.Put(ctx, "inputs/UKansasState.tsp", []byte(squareNoName)))

	in, err := tsplib.LoadFrom(ctx, s, "inputs/UKansasState.tsp")
	require.NoError(t, err)
	require.Equal(t, "ukansasstate", in.Name())
	require.Equal(t, 4, in.Len())

	_, err = tsplib.LoadFrom(ctx, s, "inputs/absent.tsp")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestStemAndCodec(t *testing.T) {
	require.Equal(t, "atlanta", tsplib.Stem("Atlanta.tsp"))
	require.Equal(t, "berlin", tsplib.Stem("Berlin.tsp.ZST"))
	require.Equal(t, "plain", tsplib.Stem("plain"))
	require.Equal(t, tsplib.CodecLZ4, tsplib.CodecFor("x.tsp.lz4"))
	require.Equal(t, tsplib.CodecNone, tsplib.CodecFor("x.tsp"))
	require.True(t, tsplib.IsInstance("inputs/Atlanta.TSP.gz"))
	require.False(t, tsplib.IsInstance("output/LS/atlanta_LS_30_7.sol"))
}

func writeCompressed(t *testing.T, p string, in *tsp.Instance) {
	t.Helper()
	f, err := os.Create(p)
	require.NoError(t, err)
	defer f.Close()

	w, err := tsplib.NewWriter(tsplib.CodecFor(p), f)
	require.NoError(t, err)
	require.NoError(t, tsplib.Write(w, in, ""))
	require.NoError(t, w.Close())
}
