package njson

import (
	"time"

	"github.com/viant/tagly/format/text"
)

type optionFn func(*Options)

func (o optionFn) apply(opts *Options) { o(opts) }

func WithMode(mode Mode) Option {
	return optionFn(func(o *Options) { o.Mode = mode })
}

func WithUnknownFieldPolicy(policy UnknownFieldPolicy) Option {
	return optionFn(func(o *Options) {
		o.UnknownFieldPolicy = policy
		o.setUnknownFieldPolicy = true
	})
}

// WithCaseFormat matches wire names written in the given case format
// against field identifiers, e.g. "user_name" against UserName.
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return optionFn(func(o *Options) {
		o.CaseFormat = caseFormat
		o.setCaseFormat = true
	})
}

func WithTimeLayout(layout string) Option {
	return optionFn(func(o *Options) { o.TimeLayout = layout })
}

func WithScannerHooks(hooks ScannerHooks) Option {
	return optionFn(func(o *Options) { o.scannerHooks = hooks })
}

func defaultOptions() Options {
	return Options{
		Mode:               ModeCompat,
		UnknownFieldPolicy: IgnoreUnknown,
		CaseFormat:         text.CaseFormatUndefined,
		TimeLayout:         time.RFC3339,
		scannerHooks:       scalarScannerHooks{},
	}
}

func resolveOptions(opts []Option) Options {
	result := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(&result)
	}
	if result.Mode == ModeStrict && !result.setUnknownFieldPolicy {
		result.UnknownFieldPolicy = ErrorOnUnknown
	}
	if result.TimeLayout == "" {
		result.TimeLayout = time.RFC3339
	}
	if result.scannerHooks == nil {
		result.scannerHooks = scalarScannerHooks{}
	}
	return result
}

// caseKey discriminates plan cache entries per configured case format.
func (o *Options) caseKey() string {
	if !o.setCaseFormat || o.CaseFormat == text.CaseFormatUndefined {
		return ""
	}
	return string(o.CaseFormat)
}

// compileName converts a field identifier into its wire-name alias for
// the configured case format, or returns nil when no format is set.
func (o *Options) compileName() func(string) string {
	if !o.setCaseFormat || o.CaseFormat == text.CaseFormatUndefined {
		return nil
	}
	caseFormat := o.CaseFormat
	return func(field string) string {
		if field == "ID" {
			switch caseFormat {
			case text.CaseFormatLower, text.CaseFormatLowerCamel, text.CaseFormatLowerUnderscore:
				return "id"
			}
		}
		src := text.DetectCaseFormat(field)
		if !src.IsDefined() {
			src = text.CaseFormatUpperCamel
		}
		return src.Format(field, caseFormat)
	}
}
