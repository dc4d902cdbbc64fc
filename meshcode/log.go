package meshcode

import (
	"github.com/hhkbp2/go-logging"
)

var logger = logging.GetLogger("meshcode")

// SetLogLevel はパッケージのログレベルを設定する。
// DEBUG, INFO, WARN, ERROR, CRITICAL 以外の指定は無視する。
func SetLogLevel(level string) {
	switch level {
	case "DEBUG":
		logger.SetLevel(logging.LevelDebug)
	case "INFO":
		logger.SetLevel(logging.LevelInfo)
	case "WARN":
		logger.SetLevel(logging.LevelWarn)
	case "ERROR":
		logger.SetLevel(logging.LevelError)
	case "CRITICAL":
		logger.SetLevel(logging.LevelCritical)
	}
}
