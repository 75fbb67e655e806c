package querybuilder

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type LogLevel int

const (
	LogLevelDev LogLevel = iota
	LogLevelProd
)

type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type zapLogger struct {
	l *zap.SugaredLogger
}

// NewLogger returns a zap backed Logger configured for the given level.
func NewLogger(env LogLevel) (Logger, error) {
	if env == LogLevelDev {
		l, err := zap.NewDevelopmentConfig().Build()
		if err != nil {
			return nil, err
		}
		return &zapLogger{l.Sugar()}, nil
	} else if env == LogLevelProd {
		l, err := zap.NewProductionConfig().Build()
		if err != nil {
			return nil, err
		}
		return &zapLogger{l.Sugar()}, nil
	} else {
		return nil, fmt.Errorf("log level should be either LogLevelDev or LogLevelProd")
	}
}

func (z *zapLogger) Debugf(format string, args ...any) {
	format = fmt.Sprintf("[DEBUG] %s", format)
	z.l.Debugf(format, args...)
}
func (z *zapLogger) Warnf(format string, args ...any) {
	format = fmt.Sprintf("[WARNF] %s", format)
	z.l.Warnf(format, args...)

}
func (z *zapLogger) Errorf(format string, args ...any) {
	format = fmt.Sprintf("[ERROR] %s", format)
	z.l.Errorf(format, args...)
}

func (z *zapLogger) Infof(format string, args ...any) {
	format = fmt.Sprintf("[INFO] %s", format)
	z.l.Infof(format, args...)
}

var (
	loggerMu sync.RWMutex
	logger   Logger = &zapLogger{zap.NewNop().Sugar()}
)

// SetLogger replaces the package logger. A nil logger silences logging.
func SetLogger(l Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if l == nil {
		l = &zapLogger{zap.NewNop().Sugar()}
	}
	logger = l
}

func getLogger() Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// Render returns the SQL text of s and logs it at debug level.
func Render(s Statement) string {
	sql := s.String()
	getLogger().Debugf("rendered %s statement: %s", statementKind(s), sql)
	return sql
}

func statementKind(s Statement) ClauseType {
	cs := s.clauses()
	if len(cs) == 0 {
		return ""
	}
	return cs[0].typ
}
