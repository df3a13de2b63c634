package ports

import "go.trai.ch/lnms-install/internal/core/domain"

// DebugSection is one titled group of key/value lines in the debug dump.
type DebugSection struct {
	Title  string
	Fields []domain.Field
}

// Reporter prints resolved records and diagnostic dumps.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Report prints the record's summary lines.
	Report(record domain.Record) error
	// Debug prints the DEBUG INFO block made of the given sections.
	Debug(sections []DebugSection) error
}
