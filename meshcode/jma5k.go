package meshcode

//--------------------------------------
// 気象庁5kmメッシュ
//
// 気象庁データの5km相当格子は緯度間隔0.05度, 経度間隔0.0625度であり、
// 3次メッシュを緯度方向に6倍, 経度方向に5倍した格子で定義される。
// 5km相当格子の南西端の3次メッシュコード値が気象庁5kmメッシュコード値になる。
//--------------------------------------

// 気象庁5kmメッシュの格子幅(deg)
const (
	msJma5kDx = 0.0625
	msJma5kDy = 0.05
)

// 5km格子を構成する3次メッシュの数
const (
	jma5kRows = 6 // 緯度方向
	jma5kCols = 5 // 経度方向
)

// Ms3ToMsJma5k は3次メッシュコードを気象庁5kmメッシュコードに変換する。
// 8桁未満の場合は右側をゼロ埋めする。戻り値は常に8桁。
func Ms3ToMsJma5k[C Code](code C) (string, error) {
	s := normalize(code, ms3Digits)
	idx, err := decodeMs3(s)
	if err != nil {
		return "", err
	}

	// JMA5kmメッシュ南西端の3次メッシュコードを求める
	nyms3 := idx.row() / jma5kRows * jma5kRows
	idx.iy1 = nyms3 / 80
	idx.iy2 = nyms3 % 80 / 10
	idx.iy3 = nyms3 % 80 % 10
	idx.ix3 = idx.ix3 / jma5kCols * jma5kCols

	jma := idx.String()
	logger.Debugf("3次メッシュ %s => 気象庁5kmメッシュ %s", s[:ms3Digits], jma)
	return jma, nil
}

// MsJma5kToCoord は気象庁5kmメッシュコードから対応する格子の座標を求める。
// 8桁未満の場合は右側をゼロ埋めする。
//
// 返す格子は、コードを3次メッシュとみなした南西端から
// 5km格子1つ分だけ北東にずらした位置を南西端とする。
func MsJma5kToCoord[C Code](code C, ndigits int) (Cell, error) {
	s := normalize(code, msJma5kDigits)

	sw, err := ms3SouthWest(s, ndigits)
	if err != nil {
		return Cell{}, err
	}

	lon := sw.Lon + msJma5kDx
	lat := sw.Lat + msJma5kDy

	return newCell(lon, lat, msJma5kDx, msJma5kDy, ndigits), nil
}
