package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// New создаёт JSON-логгер сервиса
func New(logLevel string) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
	})

	log.SetOutput(os.Stdout)
	log.SetLevel(parseLevel(logLevel))
	return log
}

// NewConsole создаёт текстовый логгер для CLI; вывод не смешивается с отчётом в stdout
func NewConsole(logLevel string, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.TimeOnly,
	})
	log.SetOutput(out)
	log.SetLevel(parseLevel(logLevel))
	return log
}

func parseLevel(logLevel string) logrus.Level {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	return level
}
