package meshcode

import (
	"fmt"
	"math"
)

// LatLonToMs3 は緯度 lat, 経度 lon（10進法）を含む3次メッシュコードを返す。
//
// 範囲の確認は行わない。
// 経度200度以上は1次メッシュの経度が100で剰余をとられ、別の格子のコードになる。
// 南緯の地点は先頭に '-' を含むコードとなり、他の関数に渡すと ErrInvalidDigit になる。
func LatLonToMs3(lat float64, lon float64) string {
	lt := lat * 3.0 / 2.0
	lg := lon
	y1 := math.Floor(lt)
	x1 := math.Floor(lg)

	lt = (lt - y1) * 8.0
	lg = (lg - x1) * 8.0
	y2 := math.Floor(lt)
	x2 := math.Floor(lg)

	lt = (lt - y2) * 10.0
	lg = (lg - x2) * 10.0
	y3 := math.Floor(lt)
	x3 := math.Floor(lg)

	return fmt.Sprintf("%02d%02d%01d%01d%01d%01d",
		int(y1)%100, int(x1)%100,
		int(y2), int(x2),
		int(y3), int(x3))
}

// LatLonToMsJma5k は緯度 lat, 経度 lon（10進法）を含む気象庁5kmメッシュコードを返す。
// 南緯の地点はメッシュコードに数字以外が含まれるためエラーとなる。
func LatLonToMsJma5k(lat float64, lon float64) (string, error) {
	return Ms3ToMsJma5k(LatLonToMs3(lat, lon))
}
