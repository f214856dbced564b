package logutil

import (
	"fmt"
	"github.com/gostonefire/tablemap/crt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"os"
	"strings"
)

// syncer - Destination of every logger built by New, replaced in tests
var syncer zapcore.WriteSyncer = zapcore.Lock(os.Stderr)

// New - Returns a zap logger writing to standard error
//   - level is one of debug, info, warn or error
//   - format is either console or json, an empty format gives console
//
// It returns:
//   - logger is the built logger
//   - err is of type crt.InvalidConfiguration if level or format is not recognized
func New(level, format string) (logger *zap.Logger, err error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		err = crt.InvalidConfiguration{Msg: fmt.Sprintf("unknown log level %q", level)}
		return
	}

	encoder, err := getEncoder(format)
	if err != nil {
		return
	}

	core := zapcore.NewCore(encoder, syncer, zap.NewAtomicLevelAt(lvl))
	logger = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	return
}

// getEncoder - Returns the encoder for a format name
func getEncoder(format string) (encoder zapcore.Encoder, err error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	switch strings.ToLower(format) {
	case "", "console":
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		err = crt.InvalidConfiguration{Msg: fmt.Sprintf("unknown log format %q", format)}
	}

	return
}
