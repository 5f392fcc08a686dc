package wiz

import "fmt"

// FaceDirection is one of the eight directions a character sprite can face.
type FaceDirection string

const (
	FaceUp        FaceDirection = "up"
	FaceUpRight   FaceDirection = "upright"
	FaceRight     FaceDirection = "right"
	FaceDownRight FaceDirection = "downright"
	FaceDown      FaceDirection = "down"
	FaceDownLeft  FaceDirection = "downleft"
	FaceLeft      FaceDirection = "left"
	FaceUpLeft    FaceDirection = "upleft"
)

var faceDirections = map[FaceDirection]bool{
	FaceUp: true, FaceUpRight: true, FaceRight: true, FaceDownRight: true,
	FaceDown: true, FaceDownLeft: true, FaceLeft: true, FaceUpLeft: true,
}

// EntityDef describes an on-map entity: which sprite sheet it comes from and
// how it initially presents. Plain data; wiz performs no entity simulation.
//
// Source, FrameWidth, and FrameHeight are required. FaceDirection defaults
// to FaceDown and Alpha to false.
type EntityDef struct {
	Source      string `json:"source"`
	Alpha       bool   `json:"alpha,omitempty"`
	FrameWidth  int    `json:"framewidth"`
	FrameHeight int    `json:"frameheight"`

	FaceDirection FaceDirection `json:"face_direction,omitempty"`
	Frame         int           `json:"frame,omitempty"`
	MovementSpeed float64       `json:"movement_speed,omitempty"`
}

// Validate checks required fields and fills documented defaults in place.
func (e *EntityDef) Validate() error {
	if e.Source == "" {
		return fmt.Errorf("entity requires a source image")
	}
	if e.FrameWidth < 1 || e.FrameHeight < 1 {
		return fmt.Errorf("entity requires positive frame dimensions, got %dx%d",
			e.FrameWidth, e.FrameHeight)
	}
	if e.FaceDirection == "" {
		e.FaceDirection = FaceDown
	}
	if !faceDirections[e.FaceDirection] {
		return fmt.Errorf("entity has unknown face direction %q", e.FaceDirection)
	}
	if e.MovementSpeed < 0 {
		return fmt.Errorf("entity has negative movement speed %v", e.MovementSpeed)
	}
	return nil
}

// Trigger bundles the callbacks fired when a character's zone is entered,
// left, or used. Any callback may be nil.
type Trigger struct {
	OnEnter func(c *CharacterDef)
	OnExit  func(c *CharacterDef)
	OnUse   func(c *CharacterDef)
}

// CharacterDef describes a named character placed on a map: its entity
// definition, starting state and position, and an optional trigger. Plain
// data; controllers and animation playback live outside wiz.
type CharacterDef struct {
	Name     string    `json:"name"`
	Entity   EntityDef `json:"entity"`
	State    string    `json:"state,omitempty"`
	Position Vec2      `json:"position"`

	// MovementSpeed overrides the entity's speed when non-nil.
	MovementSpeed *float64 `json:"movement_speed,omitempty"`

	Trigger *Trigger `json:"-"`
}

// Validate checks the character and its embedded entity.
func (c *CharacterDef) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("character requires a name")
	}
	if err := c.Entity.Validate(); err != nil {
		return fmt.Errorf("character %q: %w", c.Name, err)
	}
	if c.MovementSpeed != nil && *c.MovementSpeed < 0 {
		return fmt.Errorf("character %q has negative movement speed %v", c.Name, *c.MovementSpeed)
	}
	return nil
}

// EffectiveMovementSpeed returns the character override when present, falling
// back to the entity's speed.
func (c *CharacterDef) EffectiveMovementSpeed() float64 {
	if c.MovementSpeed != nil {
		return *c.MovementSpeed
	}
	return c.Entity.MovementSpeed
}
