package global

import (
	"fmt"
	"runtime"

	dumpx "github.com/gookit/goutil/dump"
	"go.uber.org/zap"
)

// Logger 全局日志器，由 cmd 在配置加载后初始化
var Logger *zap.Logger

func Log() *zap.Logger {
	return Logger
}

// LogSync 刷新日志缓冲，进程退出前调用
func LogSync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

func Dump(a ...any) {
	_, file, line, ok := runtime.Caller(1)
	if ok {
		fmt.Printf("\033[32m%s:%d:\033[0m\n", file, line)
	}
	dumpx.P(a...)
}
