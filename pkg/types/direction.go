package types

// Direction tells which side of a transfer is the source
type Direction int

const (
	// Push mirrors the local directory onto the node
	Push Direction = iota
	// Pull mirrors the node's directory onto the local host
	Pull
)

// String returns the lowercase direction name
func (d Direction) String() string {
	switch d {
	case Push:
		return "push"
	case Pull:
		return "pull"
	default:
		return "unknown"
	}
}
