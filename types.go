package njson

import (
	"github.com/viant/tagly/format/text"
)

// Mode controls compatibility vs strict behavior.
type Mode int

const (
	ModeCompat Mode = iota
	ModeStrict
)

// UnknownFieldPolicy controls unknown key handling.
type UnknownFieldPolicy int

const (
	IgnoreUnknown UnknownFieldPolicy = iota
	ErrorOnUnknown
)

// Option mutates runtime options.
type Option interface{ apply(*Options) }

// Options defines runtime decode behavior.
type Options struct {
	Mode               Mode
	UnknownFieldPolicy UnknownFieldPolicy

	CaseFormat   text.CaseFormat
	TimeLayout   string
	scannerHooks ScannerHooks

	setUnknownFieldPolicy bool
	setCaseFormat         bool
}
