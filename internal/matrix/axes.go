package matrix

import (
	"fmt"

	"github.com/vk/buildgridgo/internal/config"
)

// AxisSet holds the declared configuration axes in declaration order.
// Declaration order is canonical: it drives both cartesian expansion order
// and the axis-value portion of the composed feature string.
type AxisSet struct {
	names  []string
	values map[string][]string
}

// NewAxisSet builds an AxisSet from the configuration's axis declarations.
func NewAxisSet(axes []*config.Axis) (*AxisSet, error) {
	s := &AxisSet{values: make(map[string][]string, len(axes))}
	for _, axis := range axes {
		if axis.Name == "" {
			return nil, fmt.Errorf("axis declared with an empty name")
		}
		if _, exists := s.values[axis.Name]; exists {
			return nil, fmt.Errorf("axis %q declared more than once", axis.Name)
		}
		if len(axis.Values) == 0 {
			return nil, fmt.Errorf("axis %q declares no values", axis.Name)
		}
		s.names = append(s.names, axis.Name)
		s.values[axis.Name] = append([]string(nil), axis.Values...)
	}
	return s, nil
}

// Names returns the axis names in declaration order.
func (s *AxisSet) Names() []string {
	return s.names
}

// Has reports whether the named axis is declared.
func (s *AxisSet) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}

// Values returns the ordered allowed values for the named axis.
func (s *AxisSet) Values(name string) ([]string, error) {
	vals, ok := s.values[name]
	if !ok {
		return nil, &UnknownAxisError{Axis: name}
	}
	return vals, nil
}
