package component

// AppleComponent marks a consumable apple, it carries a position and color but no velocity
type AppleComponent struct{}
