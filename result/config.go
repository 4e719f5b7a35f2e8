package result

import (
	"os"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/tychoish/emt"
	"github.com/tychoish/grip"
	"github.com/tychoish/grip/message"
	"gopkg.in/yaml.v3"
)

// ClassifierConfig holds the parts of classification that vary between
// server versions and deployments.
type ClassifierConfig struct {
	// DuplicateKeyCodes are server codes that identify a unique index
	// violation.
	DuplicateKeyCodes []int `yaml:"duplicate_key_codes"`
	// DuplicateKeyPatterns are regular expressions matched against the
	// error message of replies whose code is not a duplicate key code.
	DuplicateKeyPatterns []string `yaml:"duplicate_key_patterns"`
	// WriteFailureFields name reply fields that mark a write-specific
	// failure when present and not empty.
	WriteFailureFields []string `yaml:"write_failure_fields"`
}

// DefaultClassifierConfig returns the configuration used by
// DefaultClassifier.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		DuplicateKeyCodes:    []int{11000, 11001, 12582},
		DuplicateKeyPatterns: []string{`\bE1100[01]\b`, `duplicate key`},
		WriteFailureFields:   []string{"err", "writeErrors", "writeConcernError", "wtimeout"},
	}
}

// Validate reports every problem with the configuration.
func (conf ClassifierConfig) Validate() error {
	catcher := emt.NewBasicCatcher()

	for _, code := range conf.DuplicateKeyCodes {
		catcher.ErrorfWhen(code == UnspecifiedErrorCode,
			"code %d is reserved for replies without a code", code)
	}

	for _, pattern := range conf.DuplicateKeyPatterns {
		if _, err := regexp.Compile(pattern); err != nil {
			catcher.Add(errors.Wrapf(err, "invalid duplicate key pattern %q", pattern))
		}
	}

	for idx, field := range conf.WriteFailureFields {
		catcher.ErrorfWhen(strings.TrimSpace(field) == "",
			"write failure field %d is empty", idx)
		catcher.ErrorfWhen(field == "ok",
			"the ok field cannot be a write failure marker")
	}

	return catcher.Resolve()
}

// ParseClassifierConfig reads a YAML configuration. Keys missing from
// the input keep their default values.
func ParseClassifierConfig(data []byte) (ClassifierConfig, error) {
	conf := DefaultClassifierConfig()
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return ClassifierConfig{}, errors.Wrap(err, "problem parsing classifier config")
	}

	if err := conf.Validate(); err != nil {
		return ClassifierConfig{}, errors.Wrap(err, "invalid classifier config")
	}

	return conf, nil
}

// LoadClassifierConfig reads a YAML configuration file.
func LoadClassifierConfig(path string) (ClassifierConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ClassifierConfig{}, errors.Wrapf(err, "problem reading classifier config %q", path)
	}

	conf, err := ParseClassifierConfig(data)
	if err != nil {
		grip.Warning(message.WrapError(err, message.Fields{
			"message": "classifier config not applied",
			"path":    path,
		}))
		return ClassifierConfig{}, errors.Wrapf(err, "in file %q", path)
	}

	return conf, nil
}
