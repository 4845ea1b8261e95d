package logger

// LoggingConfig defines the configuration for diagnostics logging.
// LoggingConfig 定义诊断日志配置。
type LoggingConfig struct {
	// Level: 日志级别（debug, info, warn, error）
	Level string
	// Path: 日志文件路径，为空时输出到 stderr
	Path string
	// MaxSize: 轮转前的最大大小（MB）
	MaxSize int
	// MaxBackups: 保留的旧文件最大数量
	MaxBackups int
	// MaxAge: 保留旧文件的最大天数
	MaxAge int
	// Compress: 是否压缩旧文件
	Compress bool
}
