package meshcode

import (
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"
)

// Coord は経度緯度（10進法）
type Coord struct {
	Lon float64 `json:"lon" yaml:"lon"`
	Lat float64 `json:"lat" yaml:"lat"`
}

// Cell は格子の四隅の座標
type Cell struct {
	SW Coord `json:"sw" yaml:"sw"` // 南西端
	NW Coord `json:"nw" yaml:"nw"` // 北西端
	NE Coord `json:"ne" yaml:"ne"` // 北東端
	SE Coord `json:"se" yaml:"se"` // 南東端
}

// Corners は南西, 北西, 北東, 南東の順に四隅を返す。
func (c Cell) Corners() [4]Coord {
	return [4]Coord{c.SW, c.NW, c.NE, c.SE}
}

// Polygon は南西端から始まり南西端で閉じる5点のリング
type Polygon [5]Coord

// Polygon は格子を閉じたリングにする。
func (c Cell) Polygon() Polygon {
	return Polygon{c.SW, c.NW, c.NE, c.SE, c.SW}
}

// 南西端 (lon, lat) と格子幅 dx, dy から四隅を求め、
// 各値を小数点以下 ndigits 桁に丸める。
func newCell(lon, lat, dx, dy float64, ndigits int) Cell {
	x1 := round(lon, ndigits)
	x2 := round(lon+dx, ndigits)
	y1 := round(lat, ndigits)
	y2 := round(lat+dy, ndigits)

	return Cell{
		SW: Coord{x1, y1},
		NW: Coord{x1, y2},
		NE: Coord{x2, y2},
		SE: Coord{x2, y1},
	}
}

// x を小数点以下 ndigits 桁に丸める。
// 2進数で表された値そのものを丸め、ちょうど中間の場合のみ偶数側に寄せる。
// ndigits が負の場合は10^-ndigits の位で丸める。
func round(x float64, ndigits int) float64 {
	if ndigits < 0 {
		return scalar.RoundEven(x, ndigits)
	}
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', ndigits, 64), 64)
	if err != nil {
		// FormatFloat の出力は常に解釈できる
		panic(err)
	}
	return v
}
