package component

import (
	"github.com/byrax15/snake-gl/core"
)

// RenderComponent holds the color an entity is drawn with
type RenderComponent struct {
	Color core.Color
}
