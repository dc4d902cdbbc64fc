package meshcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// どの次数でも5点で、始点と終点が一致する
func Test_Polygon_Closed(t *testing.T) {
	polygons := map[string]func() (Polygon, error){
		"ms3":   func() (Polygon, error) { return Ms3ToPolygon("54401377", DefaultNdigits) },
		"ms4":   func() (Polygon, error) { return Ms4ToPolygon("544013772", DefaultNdigits) },
		"ms5":   func() (Polygon, error) { return Ms5ToPolygon("5440137723", DefaultNdigits) },
		"jma5k": func() (Polygon, error) { return MsJma5kToPolygon("54401325", DefaultNdigits) },
	}

	for name, f := range polygons {
		p, err := f()
		require.NoError(t, err, name)

		assert.Len(t, p, 5, name)
		assert.Equal(t, p[0], p[4], name)
	}
}

func Test_Ms3ToPolygon(t *testing.T) {
	cell, err := Ms3ToCoord("54401377", DefaultNdigits)
	require.NoError(t, err)
	p, err := Ms3ToPolygon("54401377", DefaultNdigits)
	require.NoError(t, err)

	// 南西, 北西, 北東, 南東, 南西
	assert.Equal(t, Polygon{cell.SW, cell.NW, cell.NE, cell.SE, cell.SW}, p)
}

func Test_Polygon_Error(t *testing.T) {
	p, err := Ms4ToPolygon("5440z3774", DefaultNdigits)
	assert.ErrorIs(t, err, ErrInvalidDigit)
	assert.Equal(t, Polygon{}, p)

	_, err = Ms3ToPolygon("?", DefaultNdigits)
	assert.ErrorIs(t, err, ErrInvalidDigit)
	_, err = Ms5ToPolygon("?", DefaultNdigits)
	assert.ErrorIs(t, err, ErrInvalidDigit)
	_, err = MsJma5kToPolygon("?", DefaultNdigits)
	assert.ErrorIs(t, err, ErrInvalidDigit)
}
