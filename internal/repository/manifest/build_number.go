package manifest

import (
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// BuildNumber is a build identifier decoded from a YAML string or number.
// Numbers keep their literal text, so 0045 stays "0045" and 2147483648 stays "2147483648".
type BuildNumber string

// errInvalidBuildNumber is returned for values that cannot be a build identifier.
var errInvalidBuildNumber = errors.New("invalid build number")

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *BuildNumber) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w: expected a scalar", node.Line, errInvalidBuildNumber)
	}

	switch node.ShortTag() {
	case "!!str", "!!int":
		*b = BuildNumber(node.Value)

		return nil
	case "!!float":
		var value float64
		if err := node.Decode(&value); err != nil {
			return fmt.Errorf("line %d: %w: %w", node.Line, errInvalidBuildNumber, err)
		}

		if math.IsInf(value, 0) || math.IsNaN(value) {
			return fmt.Errorf("line %d: %w: %q is not finite", node.Line, errInvalidBuildNumber, node.Value)
		}

		*b = BuildNumber(node.Value)

		return nil
	default:
		return fmt.Errorf("line %d: %w: unexpected %s", node.Line, errInvalidBuildNumber, node.ShortTag())
	}
}
