package ports

import "io"

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)
	// SetOutput redirects subsequent log records to w.
	SetOutput(w io.Writer)
	// SetDebug enables or disables debug level records.
	SetDebug(enable bool)
}
