package htx

import "fmt"

// Props carries the named values passed to an element. Values are
// validated against the element's schema when the element is built, not
// when the map is.
type Props map[string]any

// clone returns a shallow copy so callers can keep mutating their map.
func (p Props) clone() Props {
	if p == nil {
		return nil
	}
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Merge combines prop maps left to right, later values winning. Each part
// may be a Props, a plain map[string]any, or nil. Spread expressions in
// markup compile into Merge calls so written attributes and spread maps
// keep their source order.
func Merge(parts ...any) Props {
	out := make(Props)
	for _, part := range parts {
		switch m := part.(type) {
		case nil:
		case Props:
			for k, v := range m {
				out[k] = v
			}
		case map[string]any:
			for k, v := range m {
				out[k] = v
			}
		default:
			panic(fmt.Sprintf("htx: cannot spread %T into props", part))
		}
	}
	return out
}
