/*
Package scenario runs scripted sequences of list and iterator operations.

A scenario is a YAML document naming the operations to perform on a fresh
linkedlist.List, optionally with the expected result of each step.
*/
package scenario

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Operations understood by a step.
const (
	OpAdd         = "add"
	OpAddAt       = "add_at"
	OpRemove      = "remove"
	OpRemoveAt    = "remove_at"
	OpGet         = "get"
	OpSet         = "set"
	OpContains    = "contains"
	OpClear       = "clear"
	OpIsEmpty     = "is_empty"
	OpSize        = "size"
	OpPrint       = "print"
	OpIterInit    = "iter_init"
	OpIterHasNext = "iter_has_next"
	OpIterNext    = "iter_next"
	OpIterRemove  = "iter_remove"
	OpIterAdd     = "iter_add"
	OpIterSet     = "iter_set"
)

type operand int

const (
	needIndex operand = 1 << iota
	needValue
)

var operands = map[string]operand{
	OpAdd:         needValue,
	OpAddAt:       needIndex | needValue,
	OpRemove:      needValue,
	OpRemoveAt:    needIndex,
	OpGet:         needIndex,
	OpSet:         needIndex | needValue,
	OpContains:    needValue,
	OpClear:       0,
	OpIsEmpty:     0,
	OpSize:        0,
	OpPrint:       0,
	OpIterInit:    0,
	OpIterHasNext: 0,
	OpIterNext:    0,
	OpIterRemove:  0,
	OpIterAdd:     needValue,
	OpIterSet:     needValue,
}

// ErrInvalid indicates a malformed scenario.
var ErrInvalid = errors.New("invalid scenario")

//go:embed default.yaml
var defaultScenario []byte

// Scenario is a named sequence of steps.
type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is a single operation.
type Step struct {
	Op    string `yaml:"op"`
	Index *int   `yaml:"index,omitempty"`
	Value *int   `yaml:"value,omitempty"`

	// Want is the expected output of the operation, an int or a bool.
	Want interface{} `yaml:"want,omitempty"`
	// Expect is the expected list contents after the operation.
	Expect *[]int `yaml:"expect,omitempty"`
}

func (s Step) String() string {
	var b strings.Builder

	b.WriteString(s.Op)
	if s.Index != nil {
		fmt.Fprintf(&b, " index=%d", *s.Index)
	}
	if s.Value != nil {
		fmt.Fprintf(&b, " value=%d", *s.Value)
	}

	return b.String()
}

// Parse decodes and validates a scenario.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Default returns the built-in demonstration scenario.
func Default() *Scenario {
	s, err := Parse(defaultScenario)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Scenario) validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("%w: no steps", ErrInvalid)
	}

	for i, step := range s.Steps {
		need, ok := operands[step.Op]
		if !ok {
			return fmt.Errorf("%w: step %d: unknown op %q", ErrInvalid, i, step.Op)
		}
		if need&needIndex != 0 && step.Index == nil {
			return fmt.Errorf("%w: step %d: %s requires index", ErrInvalid, i, step.Op)
		}
		if need&needValue != 0 && step.Value == nil {
			return fmt.Errorf("%w: step %d: %s requires value", ErrInvalid, i, step.Op)
		}
		switch step.Want.(type) {
		case nil, int, bool:
		default:
			return fmt.Errorf("%w: step %d: want must be an int or a bool", ErrInvalid, i)
		}
	}

	return nil
}
