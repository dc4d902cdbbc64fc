package meshcode

// Ms3ToPolygon は3次メッシュコードに対応する格子のポリゴンを返す。
func Ms3ToPolygon[C Code](code C, ndigits int) (Polygon, error) {
	return toPolygon(Ms3ToCoord(code, ndigits))
}

// Ms4ToPolygon は4次メッシュ（2分の1地域メッシュ）コードに対応する格子のポリゴンを返す。
func Ms4ToPolygon[C Code](code C, ndigits int) (Polygon, error) {
	return toPolygon(Ms4ToCoord(code, ndigits))
}

// Ms5ToPolygon は5次メッシュ（4分の1地域メッシュ）コードに対応する格子のポリゴンを返す。
func Ms5ToPolygon[C Code](code C, ndigits int) (Polygon, error) {
	return toPolygon(Ms5ToCoord(code, ndigits))
}

// MsJma5kToPolygon は気象庁5kmメッシュコードに対応する格子のポリゴンを返す。
func MsJma5kToPolygon[C Code](code C, ndigits int) (Polygon, error) {
	return toPolygon(MsJma5kToCoord(code, ndigits))
}

func toPolygon(c Cell, err error) (Polygon, error) {
	if err != nil {
		return Polygon{}, err
	}
	return c.Polygon(), nil
}
