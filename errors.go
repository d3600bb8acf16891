package tagger

import "fmt"

// ConfigurationError reports a caller mistake that is detectable without
// running any data through the tagger: an unknown tag name passed to
// Dictionary.Add/Remove without the force flag, or a feature-index map whose
// size disagrees with the coefficient vector handed to TrigramFeatureScore.
// A malformed rule-table text line is not reported this way: package dictres
// skips it and returns a Diagnostic.
type ConfigurationError struct {
	msg string
}

func (e *ConfigurationError) Error() string { return e.msg }

// NewConfigurationError builds a *ConfigurationError from a format string,
// for callers outside this package (e.g. package corpus, package trainer)
// that need to report the same kind of caller mistake.
func NewConfigurationError(format string, args ...any) error {
	return &ConfigurationError{msg: fmt.Sprintf(format, args...)}
}

func newConfigurationError(format string, args ...any) error {
	return NewConfigurationError(format, args...)
}

// InputError reports malformed input data, such as a corpus morph-annotation
// naming more than two morphemes for a single eojeol word.
type InputError struct {
	msg string
}

func (e *InputError) Error() string { return e.msg }

// NewInputError builds an *InputError from a format string, for callers
// outside this package (package corpus parses corpus morph-annotations and
// needs to report the same kind of malformed-input error).
func NewInputError(format string, args ...any) error {
	return &InputError{msg: fmt.Sprintf(format, args...)}
}

// StateError reports use of a component before it has been brought into a
// usable state, such as encoding a trigram before a FeatureEncoder has had a
// feature-index map installed.
type StateError struct {
	msg string
}

func (e *StateError) Error() string { return e.msg }

func newStateError(format string, args ...any) error {
	return &StateError{msg: fmt.Sprintf(format, args...)}
}
