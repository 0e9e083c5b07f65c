package main

import (
	"fmt"
	"reflect"

	"github.com/Cyclone1070/pathprompt/internal/prompt"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// QuestionSpec is the declarative form of a question, as read from a question file.
type QuestionSpec struct {
	Name          string   `mapstructure:"name"`
	Message       string   `mapstructure:"message"`
	Cwd           string   `mapstructure:"cwd"`
	Default       []string `mapstructure:"default"`
	Multi         bool     `mapstructure:"multi"`
	DirectoryOnly bool     `mapstructure:"directory_only"`
	Validate      []string `mapstructure:"validate"`
	Filter        string   `mapstructure:"filter"`
	// When names an earlier question; this one is asked only if that answer is non-empty.
	When string `mapstructure:"when"`
}

// check verifies the fields every question needs.
func (s QuestionSpec) check() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// parseQuestions decodes a YAML (or JSON) list of questions.
// A single string default and a single validator name are accepted as one-element lists.
func parseQuestions(data []byte) ([]QuestionSpec, error) {
	var raw []map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid question file: %w", err)
	}

	specs := make([]QuestionSpec, 0, len(raw))
	seen := make(map[string]bool)
	for i, r := range raw {
		var spec QuestionSpec
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &spec,
			WeaklyTypedInput: true,
			ErrorUnused:      true,
		})
		if err != nil {
			return nil, err
		}
		if err := decoder.Decode(r); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		if err := spec.check(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		if seen[spec.Name] {
			return nil, fmt.Errorf("question %d: duplicate name %q", i+1, spec.Name)
		}
		if spec.When != "" && !seen[spec.When] {
			return nil, fmt.Errorf("question %d: when %q does not name an earlier question", i+1, spec.When)
		}
		seen[spec.Name] = true
		specs = append(specs, spec)
	}
	return specs, nil
}

// toQuestion resolves built-in validator and filter names.
func (s QuestionSpec) toQuestion(fs prompt.StatFS) (prompt.Question, error) {
	q := prompt.Question{
		Name:          s.Name,
		Message:       s.Message,
		Cwd:           s.Cwd,
		Default:       s.Default,
		Multi:         s.Multi,
		DirectoryOnly: s.DirectoryOnly,
	}
	if q.Message == "" {
		q.Message = s.Name
	}

	// builtins need the resolved cwd
	q, err := q.Normalize()
	if err != nil {
		return q, err
	}

	if len(s.Validate) > 0 {
		validators := make([]prompt.Validator, 0, len(s.Validate))
		for _, name := range s.Validate {
			v, err := prompt.BuiltinValidator(name, q.Cwd, fs)
			if err != nil {
				return q, fmt.Errorf("question %q: %w", s.Name, err)
			}
			validators = append(validators, v)
		}
		q.Validate = prompt.ChainValidators(validators...)
	}

	if s.Filter != "" {
		f, err := prompt.BuiltinFilter(s.Filter, q.Cwd)
		if err != nil {
			return q, fmt.Errorf("question %q: %w", s.Name, err)
		}
		q.Filter = f
	}

	if s.When != "" {
		dep := s.When
		q.When = func(a prompt.Answers) bool {
			v, ok := a[dep]
			if !ok || v == nil {
				return false
			}
			rv := reflect.ValueOf(v)
			switch rv.Kind() {
			case reflect.String, reflect.Slice, reflect.Map:
				return rv.Len() > 0
			}
			return true
		}
	}

	return q, nil
}
