// Package meshcode は標準地域メッシュコードおよび気象庁5kmメッシュコードを扱う。
//
// メッシュコードから格子の四隅の経度緯度・ポリゴンを求める関数と、
// 3次メッシュコードを気象庁5kmメッシュコードに変換する関数を提供する。
// すべての関数は状態を持たないため、複数のゴルーチンから同時に呼び出してよい。
//
// ref: 『統計に用いる標準地域メッシュおよび標準地域メッシュコード』
package meshcode
