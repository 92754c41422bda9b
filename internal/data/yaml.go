package data

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/elemental/internal/value"
)

const notApplicable = "n/a"

// qualified decodes one table cell. An absent key leaves the cell unset,
// which converts to Unknown.
type qualified[T any] struct {
	Value T
	Q     value.Qualifier
	set   bool
}

// UnmarshalYAML accepts a bare scalar or sequence (Neutral), the literal
// n/a, or a {value, q} mapping.
func (c *qualified[T]) UnmarshalYAML(node *yaml.Node) error {
	c.set = true

	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!str" && node.Value == notApplicable {
			c.Q = value.NotApplicable
			return nil
		}
		c.Q = value.Neutral
		return node.Decode(&c.Value)

	case yaml.SequenceNode:
		c.Q = value.Neutral
		return node.Decode(&c.Value)

	case yaml.MappingNode:
		var cell struct {
			Value yaml.Node `yaml:"value"`
			Q     string    `yaml:"q"`
		}
		if err := node.Decode(&cell); err != nil {
			return err
		}

		c.Q = value.Neutral
		if cell.Q != "" {
			q, err := value.ParseQualifier(cell.Q)
			if err != nil {
				return fmt.Errorf("line %d: %w", node.Line, err)
			}
			c.Q = q
		}
		if !c.Q.HasValue() {
			return nil
		}
		if cell.Value.Kind == 0 {
			return fmt.Errorf("line %d: qualified value without a value", node.Line)
		}
		return cell.Value.Decode(&c.Value)

	default:
		return fmt.Errorf("line %d: unexpected %s", node.Line, node.Tag)
	}
}

// defined reports whether the cell carries a usable value.
func (c qualified[T]) defined() bool {
	return c.set && c.Q.HasValue()
}

func (c qualified[T]) qualifier() value.Qualifier {
	if !c.set {
		return value.Unknown
	}
	return c.Q
}

// event decodes a discovery cell: ancient, undiscovered, a bare year or a
// {year, place, q} mapping.
type event struct {
	Year  int
	Place string
	Q     value.Qualifier
	set   bool
}

func (e *event) UnmarshalYAML(node *yaml.Node) error {
	e.set = true

	switch node.Kind {
	case yaml.ScalarNode:
		switch node.Value {
		case "ancient":
			e.Q = value.NotApplicable
			return nil
		case "undiscovered":
			e.Q = value.Unknown
			return nil
		}
		e.Q = value.Neutral
		if err := node.Decode(&e.Year); err != nil {
			return fmt.Errorf("line %d: discovery must be a year, ancient or undiscovered", node.Line)
		}
		return nil

	case yaml.MappingNode:
		var cell struct {
			Year  int    `yaml:"year"`
			Place string `yaml:"place"`
			Q     string `yaml:"q"`
		}
		if err := node.Decode(&cell); err != nil {
			return err
		}
		e.Year, e.Place, e.Q = cell.Year, cell.Place, value.Neutral
		if cell.Q != "" {
			q, err := value.ParseQualifier(cell.Q)
			if err != nil {
				return fmt.Errorf("line %d: %w", node.Line, err)
			}
			e.Q = q
		}
		return nil

	default:
		return fmt.Errorf("line %d: unexpected %s", node.Line, node.Tag)
	}
}

func (e event) value() value.Event {
	if !e.set || !e.Q.HasValue() {
		q := value.Unknown
		if e.set {
			q = e.Q
		}
		return value.UndefinedEvent(q)
	}
	return value.NewEvent(e.Year, e.Place, e.Q)
}
