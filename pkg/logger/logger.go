// Package logger 提供全局结构化日志记录器
package logger

import (
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Log 全局日志记录器
	// 未调用 Init 之前是一个不输出任何内容的记录器，测试和嵌入使用时保持安静
	Log = zap.NewNop()

	customTimeFormat string
	onceInit         sync.Once
)

// customTimeEncoder 按自定义格式编码时间
func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format(customTimeFormat))
}

// Init 初始化全局日志记录器
//
// lvl: Debug(-1), Info(0), Warn(1), Error(2), DPanic(3), Panic(4), Fatal(5)
// timeFormat: 时间格式，例如 2006-01-02T15:04:05Z07:00，为空时使用 ISO8601
//
// 只有第一次调用生效
func Init(lvl int, timeFormat string) error {
	if lvl < int(zapcore.DebugLevel) || lvl > int(zapcore.FatalLevel) {
		return fmt.Errorf("invalid log level %d", lvl)
	}

	onceInit.Do(func() {
		globalLevel := zapcore.Level(lvl)

		highPriority := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return l >= zapcore.ErrorLevel
		})
		lowPriority := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return l >= globalLevel && l < zapcore.ErrorLevel
		})

		consoleInfos := zapcore.Lock(zapcore.AddSync(os.Stdout))
		consoleErrors := zapcore.Lock(zapcore.AddSync(os.Stderr))

		ecfg := zap.NewDevelopmentEncoderConfig()
		if len(timeFormat) > 0 {
			customTimeFormat = timeFormat
			ecfg.EncodeTime = customTimeEncoder
		} else {
			ecfg.EncodeTime = zapcore.ISO8601TimeEncoder
		}
		consoleEncoder := zapcore.NewConsoleEncoder(ecfg)

		core := zapcore.NewTee(
			zapcore.NewCore(consoleEncoder, consoleErrors, highPriority),
			zapcore.NewCore(consoleEncoder, consoleInfos, lowPriority),
		)

		Log = zap.New(core)
		zap.RedirectStdLog(Log)
	})

	return nil
}

// Named 返回带有名称前缀的子记录器，例如 logger.Named("match")
// 每次调用都基于当前的 Log，因此在 Init 之后调用才会真正输出
func Named(name string) *zap.Logger {
	return Log.Named(name)
}
