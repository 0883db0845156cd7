package visual

import "github.com/byrax15/snake-gl/core"

// Entity render colors
var (
	GridColor  = core.Color{R: .7, G: .7, B: .7, A: 1}
	TailColor  = core.Color{R: .5, G: .7, B: .5, A: 1}
	HeadColor  = core.Color{R: .3, G: .5, B: .3, A: 1}
	AppleColor = core.Color{R: 1, G: 0, B: 0, A: 1}
)

// UI colors
var (
	StatusColor = core.Color{R: .9, G: .9, B: .9, A: 1}
	PausedColor = core.Color{R: 1, G: .8, B: .2, A: 1}
)
