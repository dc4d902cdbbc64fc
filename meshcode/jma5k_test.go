package meshcode

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Ms3ToMsJma5k(t *testing.T) {
	// IY = 54*80+1*10+7 = 4337 -> 4332 (6の倍数), ix3 = 7 -> 5
	jma, err := Ms3ToMsJma5k("54401377")
	require.NoError(t, err)
	assert.Equal(t, "54401325", jma)

	jma, err = Ms3ToMsJma5k(54401377)
	require.NoError(t, err)
	assert.Equal(t, "54401325", jma)

	// 1次メッシュをまたぐ場合
	// IY = 53*80 = 4240 -> 4236 = 52*80+7*10+6
	jma, err = Ms3ToMsJma5k("53000000")
	require.NoError(t, err)
	assert.Equal(t, "52007060", jma)

	_, err = Ms3ToMsJma5k("54y01377")
	assert.ErrorIs(t, err, ErrInvalidDigit)
}

// 変換後のコードを再度変換しても変わらない
func Test_Ms3ToMsJma5k_Idempotent(t *testing.T) {
	for iy2 := 0; iy2 < 8; iy2++ {
		for iy3 := 0; iy3 < 10; iy3++ {
			for ix3 := 0; ix3 < 10; ix3++ {
				code := fmt.Sprintf("5440%d3%d%d", iy2, iy3, ix3)

				once, err := Ms3ToMsJma5k(code)
				require.NoError(t, err)
				twice, err := Ms3ToMsJma5k(once)
				require.NoError(t, err)

				assert.Len(t, once, 8, code)
				assert.Equal(t, once, twice, code)
			}
		}
	}
}

// 3次メッシュの南西端は変換後のコードが表す5km格子の中にある
func Test_Ms3ToMsJma5k_Contains(t *testing.T) {
	for iy3 := 0; iy3 < 10; iy3++ {
		for ix3 := 0; ix3 < 10; ix3++ {
			code := fmt.Sprintf("544013%d%d", iy3, ix3)

			jma, err := Ms3ToMsJma5k(code)
			require.NoError(t, err)

			ms3, err := Ms3ToCoord(code, DefaultNdigits)
			require.NoError(t, err)
			origin, err := Ms3ToCoord(jma, DefaultNdigits)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, ms3.SW.Lon, origin.SW.Lon-1e-9, code)
			assert.GreaterOrEqual(t, ms3.SW.Lat, origin.SW.Lat-1e-9, code)
			assert.Less(t, ms3.SW.Lon, origin.SW.Lon+msJma5kDx-1e-9, code)
			assert.Less(t, ms3.SW.Lat, origin.SW.Lat+msJma5kDy-1e-9, code)
		}
	}
}

// 気象庁5kmメッシュの格子は、コードを3次メッシュとみなした南西端から
// 1格子分北東にずれた位置になる
func Test_MsJma5kToCoord(t *testing.T) {
	cell, err := MsJma5kToCoord("54401325", DefaultNdigits)
	require.NoError(t, err)

	assert.InDelta(t, 140.5, cell.SW.Lon, 1e-9)
	assert.InDelta(t, 36.15, cell.SW.Lat, 1e-9)
	assert.InDelta(t, 140.5625, cell.NE.Lon, 1e-9)
	assert.InDelta(t, 36.2, cell.NE.Lat, 1e-9)
	assert.Equal(t, Coord{cell.SW.Lon, cell.NE.Lat}, cell.NW)
	assert.Equal(t, Coord{cell.NE.Lon, cell.SW.Lat}, cell.SE)

	ms3, err := Ms3ToCoord("54401325", DefaultNdigits)
	require.NoError(t, err)
	assert.InDelta(t, ms3.SW.Lon+0.0625, cell.SW.Lon, 1e-9)
	assert.InDelta(t, ms3.SW.Lat+0.05, cell.SW.Lat, 1e-9)
}
