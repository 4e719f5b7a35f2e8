package result

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifierConfig(t *testing.T) {
	t.Run("DefaultIsValid", func(t *testing.T) {
		conf := DefaultClassifierConfig()
		assert.NoError(t, conf.Validate())
		assert.ElementsMatch(t, []int{11000, 11001, 12582}, conf.DuplicateKeyCodes)
		assert.Contains(t, conf.WriteFailureFields, "writeConcernError")
	})
	t.Run("DefaultsAreIndependent", func(t *testing.T) {
		a := DefaultClassifierConfig()
		a.DuplicateKeyCodes[0] = 1
		assert.Equal(t, 11000, DefaultClassifierConfig().DuplicateKeyCodes[0])
	})
	t.Run("Validate", func(t *testing.T) {
		for _, tc := range []struct {
			name   string
			modify func(*ClassifierConfig)
		}{
			{"UnspecifiedCode", func(c *ClassifierConfig) { c.DuplicateKeyCodes = append(c.DuplicateKeyCodes, UnspecifiedErrorCode) }},
			{"BadPattern", func(c *ClassifierConfig) { c.DuplicateKeyPatterns = []string{"E1100[0"} }},
			{"EmptyField", func(c *ClassifierConfig) { c.WriteFailureFields = []string{"err", " "} }},
			{"OkField", func(c *ClassifierConfig) { c.WriteFailureFields = []string{"ok"} }},
		} {
			t.Run(tc.name, func(t *testing.T) {
				conf := DefaultClassifierConfig()
				tc.modify(&conf)
				assert.Error(t, conf.Validate())
			})
		}
		t.Run("EmptyIsValid", func(t *testing.T) {
			assert.NoError(t, ClassifierConfig{}.Validate())
		})
	})
	t.Run("Parse", func(t *testing.T) {
		t.Run("PartialKeepsDefaults", func(t *testing.T) {
			conf, err := ParseClassifierConfig([]byte("duplicate_key_codes: [11000, 4242]\n"))
			require.NoError(t, err)
			assert.Equal(t, []int{11000, 4242}, conf.DuplicateKeyCodes)
			assert.Equal(t, DefaultClassifierConfig().WriteFailureFields, conf.WriteFailureFields)
			assert.Equal(t, DefaultClassifierConfig().DuplicateKeyPatterns, conf.DuplicateKeyPatterns)
		})
		t.Run("EmptyDocument", func(t *testing.T) {
			conf, err := ParseClassifierConfig(nil)
			require.NoError(t, err)
			assert.Equal(t, DefaultClassifierConfig(), conf)
		})
		t.Run("AllFields", func(t *testing.T) {
			conf, err := ParseClassifierConfig([]byte(`
duplicate_key_codes: [1]
duplicate_key_patterns:
  - 'dup'
write_failure_fields:
  - writeConcernError
`))
			require.NoError(t, err)
			assert.Equal(t, ClassifierConfig{
				DuplicateKeyCodes:    []int{1},
				DuplicateKeyPatterns: []string{"dup"},
				WriteFailureFields:   []string{"writeConcernError"},
			}, conf)
		})
		t.Run("Malformed", func(t *testing.T) {
			_, err := ParseClassifierConfig([]byte("duplicate_key_codes: {nope"))
			assert.Error(t, err)
		})
		t.Run("Invalid", func(t *testing.T) {
			_, err := ParseClassifierConfig([]byte("duplicate_key_codes: [-5]"))
			assert.Error(t, err)
		})
	})
	t.Run("Load", func(t *testing.T) {
		dir := t.TempDir()

		t.Run("Missing", func(t *testing.T) {
			_, err := LoadClassifierConfig(filepath.Join(dir, "missing.yaml"))
			assert.Error(t, err)
		})
		t.Run("Valid", func(t *testing.T) {
			path := filepath.Join(dir, "classifier.yaml")
			require.NoError(t, os.WriteFile(path, []byte("write_failure_fields: [err, wtimeout]\n"), 0600))

			conf, err := LoadClassifierConfig(path)
			require.NoError(t, err)
			assert.Equal(t, []string{"err", "wtimeout"}, conf.WriteFailureFields)

			c, err := NewClassifier(conf)
			require.NoError(t, err)
			assert.NotNil(t, c)
		})
		t.Run("Invalid", func(t *testing.T) {
			path := filepath.Join(dir, "invalid.yaml")
			require.NoError(t, os.WriteFile(path, []byte("write_failure_fields: [ok]\n"), 0600))

			_, err := LoadClassifierConfig(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), path)
		})
	})
}
