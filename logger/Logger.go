package logger

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = &Logger{}

type Fields = logrus.Fields

type Logger struct {
	console bool
	output  io.Writer
}

// Settings mirror the keys of logger.properties.
type Settings struct {
	Filename   string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Compress   bool
	Level      string
	Console    bool
}

func DefaultSettings() Settings {
	return Settings{
		Filename:   "logs/pingpong.log",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Level:      "Info",
	}
}

// ReadSettings loads logger.properties from dir. A missing file yields the
// defaults.
func ReadSettings(dir string) (Settings, error) {
	s := DefaultSettings()

	v := viper.New()
	v.SetConfigName("logger")
	v.SetConfigType("properties")
	v.AddConfigPath(dir)
	v.SetDefault("logFilename", s.Filename)
	v.SetDefault("maxSize", s.MaxSize)
	v.SetDefault("maxBackups", s.MaxBackups)
	v.SetDefault("maxAge", s.MaxAge)
	v.SetDefault("compress", s.Compress)
	v.SetDefault("level", s.Level)
	v.SetDefault("console", s.Console)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return s, fmt.Errorf("read logger properties: %w", err)
		}
	}

	s.Filename = cast.ToString(v.Get("logFilename"))
	s.MaxSize = cast.ToInt(v.Get("maxSize"))
	s.MaxBackups = cast.ToInt(v.Get("maxBackups"))
	s.MaxAge = cast.ToInt(v.Get("maxAge"))
	s.Compress = cast.ToBool(v.Get("compress"))
	s.Level = cast.ToString(v.Get("level"))
	s.Console = cast.ToBool(v.Get("console"))
	return s, nil
}

// Init reads logger.properties from dir and routes logrus into a rotating
// file.
func (l *Logger) Init(dir string) error {
	s, err := ReadSettings(dir)
	if err != nil {
		return err
	}
	l.Configure(s)
	return nil
}

func (l *Logger) Configure(s Settings) {
	l.ConfigureOutput(s, &lumberjack.Logger{
		Filename:   s.Filename,
		MaxSize:    s.MaxSize,
		MaxBackups: s.MaxBackups,
		MaxAge:     s.MaxAge,
		Compress:   s.Compress,
	})
}

// ConfigureOutput is Configure with an explicit writer in place of the
// rotating file.
func (l *Logger) ConfigureOutput(s Settings, w io.Writer) {
	l.console = s.Console
	l.output = w

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(w)
	logrus.SetLevel(ParseLevel(s.Level))
}

// Close releases the rotating file, if one is open.
func (l *Logger) Close() error {
	if c, ok := l.output.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func ParseLevel(level string) logrus.Level {
	switch cast.ToString(level) {

	case "Trace":
		return logrus.TraceLevel

	case "Info":
		return logrus.InfoLevel

	case "Warn":
		return logrus.WarnLevel

	case "Error":
		return logrus.ErrorLevel

	case "Fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

// With returns an entry carrying fields, e.g. the match ID.
func (l *Logger) With(fields Fields) *logrus.Entry {
	return logrus.WithFields(fields)
}

func (l *Logger) Info(message string) {
	logrus.Info(message)
	l.echo("Info:", message)
}

func (l *Logger) Error(message string) {
	logrus.Error(message)
	l.echo("Error:", message)
}

func (l *Logger) Debug(message string) {
	logrus.Debug(message)
	l.echo("Debug:", message)
}

func (l *Logger) Warn(message string) {
	logrus.Warn(message)
	l.echo("Warn:", message)
}

func (l *Logger) echo(prefix, message string) {
	if l.console {
		fmt.Println(prefix, message)
	}
}
