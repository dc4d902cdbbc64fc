package meshcode

// 3次メッシュ（基準地域メッシュ）の格子幅(deg)
const (
	ms3Dx = 45. / 3600
	ms3Dy = 30. / 3600
)

// 4次メッシュ（2分の1地域メッシュ）の格子幅(deg)
const (
	ms4Dx = 22.5 / 3600
	ms4Dy = 15. / 3600
)

// 5次メッシュ（4分の1地域メッシュ）の格子幅(deg)
const (
	ms5Dx = 11.25 / 3600
	ms5Dy = 7.5 / 3600
)

// メッシュ原点の経度
const originLon = 100.

// Ms3ToCoord は3次メッシュコードから対応する格子の座標を求める。
//
// Args:
//
//	code: 3次メッシュコード。8桁未満の場合は右側をゼロ埋めする。
//	ndigits: 出力する小数の桁数。通常は DefaultNdigits。
//
// Returns:
//
//	Cell: 格子の南西端, 北西端, 北東端, 南東端の経度緯度
func Ms3ToCoord[C Code](code C, ndigits int) (Cell, error) {
	return ms3ToCoord(normalize(code, ms3Digits), ndigits)
}

func ms3ToCoord(code string, ndigits int) (Cell, error) {
	idx, err := decodeMs3(code)
	if err != nil {
		return Cell{}, err
	}

	lon := float64(idx.col())*ms3Dx + originLon
	lat := float64(idx.row()) * ms3Dy

	return newCell(lon, lat, ms3Dx, ms3Dy, ndigits), nil
}

// 先頭8桁を3次メッシュとみなした場合の南西端。
// 丸め誤差が累積しないよう1桁多く残す。
func ms3SouthWest(code string, ndigits int) (Coord, error) {
	c, err := ms3ToCoord(code[:ms3Digits], ndigits+1)
	if err != nil {
		return Coord{}, err
	}
	return c.SW, nil
}

// Ms4ToCoord は4次メッシュ（2分の1地域メッシュ）コードから対応する格子の座標を求める。
// 9桁未満の場合は右側をゼロ埋めする。
//
// 9桁目は 1=南西, 2=南東, 3=北西, 4=北東 の区画を表す。
func Ms4ToCoord[C Code](code C, ndigits int) (Cell, error) {
	s := normalize(code, ms4Digits)

	sw, err := ms3SouthWest(s, ndigits)
	if err != nil {
		return Cell{}, err
	}

	i4, err := atoi(s, 8, 9)
	if err != nil {
		return Cell{}, err
	}

	lon := sw.Lon + float64(floorMod(i4-1, 2))*ms4Dx
	lat := sw.Lat + float64(floorDiv(i4-1, 2))*ms4Dy

	return newCell(lon, lat, ms4Dx, ms4Dy, ndigits), nil
}

// Ms5ToCoord は5次メッシュ（4分の1地域メッシュ）コードから対応する格子の座標を求める。
// 10桁未満の場合は右側をゼロ埋めする。
//
// 9桁目と10桁目はそれぞれ5次メッシュ格子2つ分のずれとして加算する。
// 10桁目を9桁目の区画の中で入れ子に解釈しない点に注意。
func Ms5ToCoord[C Code](code C, ndigits int) (Cell, error) {
	s := normalize(code, ms5Digits)

	sw, err := ms3SouthWest(s, ndigits)
	if err != nil {
		return Cell{}, err
	}

	i4, err := atoi(s, 8, 9)
	if err != nil {
		return Cell{}, err
	}
	i5, err := atoi(s, 9, 10)
	if err != nil {
		return Cell{}, err
	}

	lon := sw.Lon + float64(floorMod(i4-1, 2))*2*ms5Dx + float64(floorMod(i5-1, 2))*ms5Dx*2
	lat := sw.Lat + float64(floorDiv(i4-1, 2))*2*ms5Dy + float64(floorDiv(i5-1, 2))*ms5Dy*2

	return newCell(lon, lat, ms5Dx, ms5Dy, ndigits), nil
}

// Ms3ToCenter は3次メッシュコードから格子中心の経度緯度を求める。丸めは行わない。
func Ms3ToCenter[C Code](code C) (Coord, error) {
	idx, err := decodeMs3(normalize(code, ms3Digits))
	if err != nil {
		return Coord{}, err
	}

	// 南西方向の座標からメッシュ中心を算出
	return Coord{
		Lon: float64(idx.col())*ms3Dx + originLon + ms3Dx/2,
		Lat: float64(idx.row())*ms3Dy + ms3Dy/2,
	}, nil
}
