package meshcode

import (
	"errors"
	"fmt"
	"strings"
)

// 出力する小数の桁数の既定値
const DefaultNdigits = 6

// メッシュコードの桁数
const (
	ms3Digits     = 8
	ms4Digits     = 9
	ms5Digits     = 10
	msJma5kDigits = 8
)

// ErrInvalidDigit はメッシュコードの読み取り位置に数字以外の文字があることを表す。
var ErrInvalidDigit = errors.New("meshcode: 数字以外の文字が含まれています")

// Code はメッシュコードとして受け付ける型。文字列または整数で指定する。
type Code interface {
	~string | ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// メッシュコードを10進文字列にし、width桁未満の場合は右側をゼロ埋めする。
// width桁を超える部分は切り捨てず、そのまま残す。
func normalize[C Code](code C, width int) string {
	s := fmt.Sprint(code)
	if len(s) < width {
		s += strings.Repeat("0", width-len(s))
	}
	return s
}

// code[from:to] を10進整数として読む
func atoi(code string, from, to int) (int, error) {
	n := 0
	for i := from; i < to; i++ {
		c := code[i]
		if c < '0' || c > '9' {
			logger.Debugf("メッシュコード読み取り失敗: %q (%d文字目)", code, i+1)
			return 0, fmt.Errorf("%q の%d文字目 %q: %w", code, i+1, c, ErrInvalidDigit)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

// 3次メッシュコードの各桁
//
//	iy1(2桁) ix1(2桁) iy2 ix2 iy3 ix3
type ms3Index struct {
	iy1, ix1 int // 1次メッシュ
	iy2, ix2 int // 2次メッシュ
	iy3, ix3 int // 3次メッシュ
}

// 先頭8桁を3次メッシュの添字に分解する
func decodeMs3(code string) (ms3Index, error) {
	var idx ms3Index
	spans := [...]struct {
		dst      *int
		from, to int
	}{
		{&idx.iy1, 0, 2},
		{&idx.ix1, 2, 4},
		{&idx.iy2, 4, 5},
		{&idx.ix2, 5, 6},
		{&idx.iy3, 6, 7},
		{&idx.ix3, 7, 8},
	}
	for _, s := range spans {
		v, err := atoi(code, s.from, s.to)
		if err != nil {
			return ms3Index{}, err
		}
		*s.dst = v
	}
	return idx, nil
}

// 南から数えた3次メッシュの行番号
func (idx ms3Index) row() int {
	return idx.iy1*80 + idx.iy2*10 + idx.iy3
}

// 経度100度から数えた3次メッシュの列番号
func (idx ms3Index) col() int {
	return idx.ix1*80 + idx.ix2*10 + idx.ix3
}

func (idx ms3Index) String() string {
	return fmt.Sprintf("%02d%02d%01d%01d%01d%01d", idx.iy1, idx.ix1, idx.iy2, idx.ix2, idx.iy3, idx.ix3)
}

// 負の数に対しても切り捨てとなる除算と剰余
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
