package keyframe

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Clipboard schema: a single keyframe is encoded as
//
//	{ time: number, name?: string, easing?: string, values: { ... } }
//
// and a track as an ascending-ordered sequence of such keyframes. Decoding
// is all-or-nothing: any malformed element rejects the whole paste and
// leaves the caller's state untouched.

// EncodeKeyframe serializes one keyframe to clipboard text.
func EncodeKeyframe(kf Keyframe) (string, error) {
	data, err := yaml.Marshal(kf)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// EncodeTrack serializes a whole track to clipboard text.
func EncodeTrack(tr Track) (string, error) {
	data, err := yaml.Marshal(tr)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeKeyframe parses clipboard text holding a single keyframe.
func DecodeKeyframe(text string) (Keyframe, error) {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(text), &node); err != nil {
		return Keyframe{}, fmt.Errorf("clipboard: %w", err)
	}
	root := documentRoot(&node)
	if root == nil {
		return Keyframe{}, fmt.Errorf("clipboard: empty content")
	}
	return decodeKeyframeNode(root)
}

// DecodeTrack parses clipboard text holding a keyframe sequence. The
// decoded track must already be ordered ascending by time with consecutive
// keyframes at least Epsilon apart, so an accepted track satisfies the same
// invariant Upsert maintains.
func DecodeTrack(text string) (Track, error) {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(text), &node); err != nil {
		return nil, fmt.Errorf("clipboard: %w", err)
	}
	root := documentRoot(&node)
	if root == nil {
		return nil, fmt.Errorf("clipboard: empty content")
	}
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("clipboard: expected a keyframe sequence, got %s", nodeKindName(root.Kind))
	}
	tr := make(Track, 0, len(root.Content))
	for i, elem := range root.Content {
		kf, err := decodeKeyframeNode(elem)
		if err != nil {
			return nil, fmt.Errorf("clipboard: keyframe %d: %w", i, err)
		}
		tr = append(tr, kf)
	}
	for i := 1; i < len(tr); i++ {
		if tr[i].Time-tr[i-1].Time < Epsilon {
			return nil, fmt.Errorf("clipboard: keyframes %d and %d are closer than the minimum spacing of %gs", i-1, i, Epsilon)
		}
	}
	return tr, nil
}

// decodeKeyframeNode validates the required shape field by field: time must
// be present and numeric, values present and a mapping, name/easing absent
// or strings. Unknown fields are rejected.
func decodeKeyframeNode(n *yaml.Node) (Keyframe, error) {
	if n.Kind != yaml.MappingNode {
		return Keyframe{}, fmt.Errorf("expected a mapping, got %s", nodeKindName(n.Kind))
	}

	var kf Keyframe
	haveTime, haveValues := false, false

	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i].Value, n.Content[i+1]
		switch key {
		case "time":
			if err := val.Decode(&kf.Time); err != nil {
				return Keyframe{}, fmt.Errorf("time must be a number")
			}
			haveTime = true
		case "name":
			if val.Kind != yaml.ScalarNode || val.Tag != "!!str" {
				return Keyframe{}, fmt.Errorf("name must be a string")
			}
			kf.Name = val.Value
		case "easing":
			if val.Kind != yaml.ScalarNode || val.Tag != "!!str" {
				return Keyframe{}, fmt.Errorf("easing must be a string")
			}
			kf.Easing = val.Value
		case "values":
			if err := val.Decode(&kf.Values); err != nil {
				return Keyframe{}, err
			}
			haveValues = true
		default:
			return Keyframe{}, fmt.Errorf("unexpected field %q", key)
		}
	}

	if !haveTime {
		return Keyframe{}, fmt.Errorf("missing numeric time")
	}
	if !haveValues {
		return Keyframe{}, fmt.Errorf("missing values map")
	}
	return kf, nil
}

func documentRoot(n *yaml.Node) *yaml.Node {
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return nil
		}
		return n.Content[0]
	}
	return n
}
