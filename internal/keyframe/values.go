package keyframe

import (
	"fmt"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Value is one animatable property value. The set of implementations is
// closed: Scalar, Vec3 and Color. The evaluator dispatches on the concrete
// type, so a property whose stored type does not match its expected kind
// falls back instead of being shape-sniffed at runtime.
type Value interface {
	isValue()
}

// Scalar is a single numeric property value (opacity, volume, intensity...).
type Scalar float64

// Vec3 is a three-component property value (position, rotation, scale).
type Vec3 struct {
	X, Y, Z float64
}

// Color is an RGB property value with channels in [0, 1].
type Color struct {
	R, G, B float64
}

func (Scalar) isValue() {}
func (Vec3) isValue()   {}
func (Color) isValue()  {}

// Component returns the vector component for axis 0 (X), 1 (Y) or 2 (Z).
func (v Vec3) Component(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// WithComponent returns a copy of v with the given axis replaced.
func (v Vec3) WithComponent(axis int, val float64) Vec3 {
	switch axis {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	default:
		v.Z = val
	}
	return v
}

// Hex formats the color as a lowercase "#rrggbb" string.
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// Blend interpolates per RGB channel towards d.
func (c Color) Blend(d Color, t float64) Color {
	m := colorful.Color{R: c.R, G: c.G, B: c.B}.
		BlendRgb(colorful.Color{R: d.R, G: d.G, B: d.B}, t)
	return Color{R: m.R, G: m.G, B: m.B}
}

// ParseColor accepts "#rgb"/"#rrggbb" hex notation or a CSS color name.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		if len(s) == 4 {
			// Expand shorthand "#abc" to "#aabbcc".
			s = fmt.Sprintf("#%c%c%c%c%c%c", s[1], s[1], s[2], s[2], s[3], s[3])
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return Color{R: c.R, G: c.G, B: c.B}, nil
	}
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return Color{
			R: float64(named.R) / 255,
			G: float64(named.G) / 255,
			B: float64(named.B) / 255,
		}, nil
	}
	return Color{}, fmt.Errorf("unknown color %q", s)
}

// Values is the sparse property map of a keyframe or of an object's base
// state: property name -> value, holding only the properties explicitly set.
type Values map[string]Value

// Clone returns a shallow copy. Value implementations carry no references,
// so a shallow copy is a full copy.
func (vs Values) Clone() Values {
	if vs == nil {
		return nil
	}
	out := make(Values, len(vs))
	for k, v := range vs {
		out[k] = v
	}
	return out
}

// Merge overwrites entries of vs with those of other, property-wise.
func (vs Values) Merge(other Values) {
	for k, v := range other {
		vs[k] = v
	}
}

// MarshalYAML emits scalars as numbers, vectors as [x, y, z] sequences and
// colors as hex strings, with property names sorted for stable output.
func (vs Values) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	keys := make([]string, 0, len(vs))
	for k := range vs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		keyNode := &yaml.Node{}
		keyNode.SetString(k)
		valNode, err := encodeValue(vs[k])
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", k, err)
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// UnmarshalYAML decides each entry's concrete type from the YAML shape:
// number -> Scalar, 3-element sequence -> Vec3, string -> Color.
func (vs *Values) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("values: expected a mapping, got %s", nodeKindName(node.Kind))
	}
	out := make(Values, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		v, err := decodeValue(node.Content[i+1])
		if err != nil {
			return fmt.Errorf("property %q: %w", key, err)
		}
		out[key] = v
	}
	*vs = out
	return nil
}

func encodeValue(v Value) (*yaml.Node, error) {
	n := &yaml.Node{}
	switch val := v.(type) {
	case Scalar:
		if err := n.Encode(float64(val)); err != nil {
			return nil, err
		}
	case Vec3:
		if err := n.Encode([3]float64{val.X, val.Y, val.Z}); err != nil {
			return nil, err
		}
		n.Style = yaml.FlowStyle
	case Color:
		n.SetString(val.Hex())
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
	return n, nil
}

func decodeValue(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.SequenceNode:
		var comps []float64
		if err := n.Decode(&comps); err != nil {
			return nil, fmt.Errorf("invalid vector: %w", err)
		}
		if len(comps) != 3 {
			return nil, fmt.Errorf("vector must have 3 components, got %d", len(comps))
		}
		return Vec3{X: comps[0], Y: comps[1], Z: comps[2]}, nil
	case yaml.ScalarNode:
		var f float64
		if err := n.Decode(&f); err == nil {
			return Scalar(f), nil
		}
		var s string
		if err := n.Decode(&s); err != nil {
			return nil, fmt.Errorf("invalid scalar: %w", err)
		}
		return ParseColor(s)
	default:
		return nil, fmt.Errorf("unsupported value shape %s", nodeKindName(n.Kind))
	}
}

func nodeKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
