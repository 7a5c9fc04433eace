package hcl

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// stringMap converts an HCL object or map value into a flat Go string map.
// Null values (absent optional attributes) become nil. Every element must be
// convertible to a string.
func stringMap(val cty.Value) (map[string]string, error) {
	if val.IsNull() {
		return nil, nil
	}
	ty := val.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("expected an object of strings, got %s", ty.FriendlyName())
	}

	out := make(map[string]string)
	for key, elem := range val.AsValueMap() {
		converted, err := convert.Convert(elem, cty.String)
		if err != nil {
			return nil, fmt.Errorf("value for %q is not a string: %w", key, err)
		}
		if converted.IsNull() {
			return nil, fmt.Errorf("value for %q is null", key)
		}
		out[key] = converted.AsString()
	}
	return out, nil
}
