package meshcode

import (
	geojson "github.com/paulmach/go.geojson"
)

// Feature はポリゴンを GeoJSON の Polygon Feature にする。座標は [経度, 緯度] の順。
func (p Polygon) Feature() *geojson.Feature {
	ring := make([][]float64, 0, len(p))
	for _, c := range p {
		ring = append(ring, []float64{c.Lon, c.Lat})
	}
	return geojson.NewPolygonFeature([][][]float64{ring})
}

// PolygonFeature は次数 level のメッシュコードに対応する格子を
// GeoJSON Feature として返す。properties に meshcode と level を持つ。
func PolygonFeature(level Level, code string, ndigits int) (*geojson.Feature, error) {
	p, err := ToPolygon(level, code, ndigits)
	if err != nil {
		return nil, err
	}

	f := p.Feature()
	f.SetProperty("meshcode", normalize(code, level.Digits()))
	f.SetProperty("level", level.String())
	return f, nil
}

// FeatureCollection は複数のメッシュコードの格子をまとめる。
// 変換できないコードがあった場合はその時点でエラーを返す。
func FeatureCollection(level Level, codes []string, ndigits int) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()
	for _, code := range codes {
		f, err := PolygonFeature(level, code, ndigits)
		if err != nil {
			return nil, err
		}
		fc.AddFeature(f)
	}
	return fc, nil
}
