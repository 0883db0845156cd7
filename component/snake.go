package component

import (
	"github.com/byrax15/snake-gl/core"
)

// Role tags the category an entity belongs to for queries and rendering
type Role uint8

const (
	RoleNone Role = iota
	RoleHead
	RoleTail
	RoleApple
)

// String returns the lower-case role name used in logs and the spectator feed
func (r Role) String() string {
	switch r {
	case RoleHead:
		return "head"
	case RoleTail:
		return "tail"
	case RoleApple:
		return "apple"
	default:
		return "none"
	}
}

// HeadComponent marks the unique leading segment and owns the tail chain
// Chain is ordered head→tail: Chain[0] is adjacent to the head, the last element is the tip
type HeadComponent struct {
	Chain []core.Entity
}

// TailComponent marks a following segment
type TailComponent struct {
	Head core.Entity // Owning head entity
}

// MarshalText encodes the role by name
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
