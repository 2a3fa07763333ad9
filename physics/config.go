package physics

// Terrain is the static ground: a flat run, a slope up to a raised
// platform, and walls at both ends. Y values are the top surfaces.
type Terrain struct {
	FlatY         float64 `yaml:"flat_y"`
	SlopeStartX   float64 `yaml:"slope_start_x"`
	SlopeEndX     float64 `yaml:"slope_end_x"`
	SlopeTopY     float64 `yaml:"slope_top_y"`
	PlatformX     float64 `yaml:"platform_x"`
	PlatformY     float64 `yaml:"platform_y"`
	PlatformWidth float64 `yaml:"platform_width"`
	WallHeight    float64 `yaml:"wall_height"`
	Thickness     float64 `yaml:"thickness"`
	Friction      float64 `yaml:"friction"`
}

// End returns the x of the right wall
func (t Terrain) End() float64 {
	return t.PlatformX + t.PlatformWidth
}

// BoxConfig is the optional pushable crate in front of the vehicle
type BoxConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Density  float64 `yaml:"density"`
	Friction float64 `yaml:"friction"`
	// Distance ahead of the vehicle start
	OffsetX float64 `yaml:"offset_x"`
}

// Config holds the physics world settings
type Config struct {
	Gravity    float64 `yaml:"gravity"`
	Substeps   int     `yaml:"substeps"`
	Iterations int     `yaml:"iterations"`
	// DriveTorque caps the torque that holds a driven body at the angular
	// velocity it was set to. Zero only sets ω and lets contacts bleed it.
	DriveTorque float64   `yaml:"drive_torque"`
	Terrain     Terrain   `yaml:"terrain"`
	Box         BoxConfig `yaml:"box"`
}

// DefaultConfig returns the prototype level
func DefaultConfig() Config {
	return Config{
		Gravity:     1000,
		Substeps:    4,
		Iterations:  10,
		DriveTorque: 150000,
		Terrain: Terrain{
			FlatY:         870,
			SlopeStartX:   1200,
			SlopeEndX:     1600,
			SlopeTopY:     720,
			PlatformX:     1600,
			PlatformY:     720,
			PlatformWidth: 600,
			WallHeight:    400,
			Thickness:     4,
			Friction:      1,
		},
		Box: BoxConfig{
			Enabled:  true,
			Width:    60,
			Height:   60,
			Density:  0.003,
			Friction: 0.8,
			OffsetX:  200,
		},
	}
}
