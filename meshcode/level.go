package meshcode

import (
	"errors"
	"fmt"
)

// ErrUnknownLevel は未知のメッシュ次数が指定されたことを表す。
var ErrUnknownLevel = errors.New("meshcode: 未知のメッシュ次数です")

// Level はメッシュの種類
type Level int

const (
	Level3     Level = iota + 3 // 3次メッシュ（基準地域メッシュ）
	Level4                      // 4次メッシュ（2分の1地域メッシュ）
	Level5                      // 5次メッシュ（4分の1地域メッシュ）
	LevelJma5k                  // 気象庁5kmメッシュ
)

var levelNames = map[Level]string{
	Level3:     "ms3",
	Level4:     "ms4",
	Level5:     "ms5",
	LevelJma5k: "jma5k",
}

// String は "ms3" などの名前を返す。
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Digits はメッシュコードの桁数を返す。未知の次数の場合は0。
func (l Level) Digits() int {
	switch l {
	case Level3:
		return ms3Digits
	case Level4:
		return ms4Digits
	case Level5:
		return ms5Digits
	case LevelJma5k:
		return msJma5kDigits
	}
	return 0
}

// MarshalText は次数を名前で書き出す。未知の次数の場合は ErrUnknownLevel を返す。
func (l Level) MarshalText() ([]byte, error) {
	name, ok := levelNames[l]
	if !ok {
		return nil, fmt.Errorf("%d: %w", int(l), ErrUnknownLevel)
	}
	return []byte(name), nil
}

// UnmarshalText は "ms3", "ms4", "ms5", "jma5k" のいずれかを読み取る。
func (l *Level) UnmarshalText(text []byte) error {
	for level, name := range levelNames {
		if name == string(text) {
			*l = level
			return nil
		}
	}
	return fmt.Errorf("%q: %w", text, ErrUnknownLevel)
}

// ToCoord は次数 level のメッシュコードから対応する格子の座標を求める。
func ToCoord(level Level, code string, ndigits int) (Cell, error) {
	switch level {
	case Level3:
		return Ms3ToCoord(code, ndigits)
	case Level4:
		return Ms4ToCoord(code, ndigits)
	case Level5:
		return Ms5ToCoord(code, ndigits)
	case LevelJma5k:
		return MsJma5kToCoord(code, ndigits)
	}
	return Cell{}, fmt.Errorf("%v: %w", level, ErrUnknownLevel)
}

// ToPolygon は次数 level のメッシュコードに対応する格子のポリゴンを返す。
func ToPolygon(level Level, code string, ndigits int) (Polygon, error) {
	return toPolygon(ToCoord(level, code, ndigits))
}
