package vehicle

// DriveMode selects which wheels the drive law spins
type DriveMode int

const (
	DriveBoth DriveMode = iota
	DriveRear
)

func (m DriveMode) String() string {
	switch m {
	case DriveBoth:
		return "both"
	case DriveRear:
		return "rear"
	}
	return "unknown"
}

// AxleConfig is the compliance of a wheel-to-chassis link, in host units
type AxleConfig struct {
	RestLength float64 `yaml:"rest_length"`
	Stiffness  float64 `yaml:"stiffness"`
	Damping    float64 `yaml:"damping"`
}

// Config holds the vehicle geometry and drive tuning
type Config struct {
	ChassisWidth   float64 `yaml:"chassis_width"`
	ChassisHeight  float64 `yaml:"chassis_height"`
	ChassisDensity float64 `yaml:"chassis_density"`

	WheelRadius   float64 `yaml:"wheel_radius"`
	WheelDensity  float64 `yaml:"wheel_density"`
	WheelFriction float64 `yaml:"wheel_friction"`

	// Wheel centre offsets from the chassis centre
	RearOffset  Vec `yaml:"rear_offset"`
	FrontOffset Vec `yaml:"front_offset"`

	Axle  AxleConfig `yaml:"axle"`
	Group uint       `yaml:"group"`

	// Spawn position: X in world units, height above the ground line
	StartX      float64 `yaml:"start_x"`
	SpawnHeight float64 `yaml:"spawn_height"`

	// Ramped-velocity drive law, angular speeds in rad/s, steps per tick
	Drive                 DriveMode `yaml:"-"`
	MaxSpeed              float64   `yaml:"max_speed"`
	Acceleration          float64   `yaml:"acceleration"`
	MaxSpeedBackwards     float64   `yaml:"max_speed_backwards"`
	AccelerationBackwards float64   `yaml:"acceleration_backwards"`
	// Forward from a standstill or from rolling backwards jumps straight to
	// LaunchSpeed. Zero disables the launch.
	LaunchSpeed  float64 `yaml:"launch_speed"`
	AutoThrottle bool    `yaml:"auto_throttle"`
}

// DefaultConfig returns the prototype vehicle
func DefaultConfig() Config {
	return Config{
		ChassisWidth:   120,
		ChassisHeight:  60,
		ChassisDensity: 0.002,

		WheelRadius:   15,
		WheelDensity:  0.001,
		WheelFriction: 0.9,

		RearOffset:  Vec{X: -38, Y: 25},
		FrontOffset: Vec{X: 38, Y: 25},

		Axle: AxleConfig{
			RestLength: 0,
			Stiffness:  3000,
			Damping:    60,
		},
		Group: 1,

		StartX:      200,
		SpawnHeight: 100,

		Drive:                 DriveBoth,
		MaxSpeed:              12,
		Acceleration:          0.15,
		MaxSpeedBackwards:     6,
		AccelerationBackwards: 0.1,
		LaunchSpeed:           1.2,
		AutoThrottle:          true,
	}
}

// SpawnPoint returns the chassis spawn position above a ground line at groundY
func (c Config) SpawnPoint(groundY float64) Vec {
	return Vec{X: c.StartX, Y: groundY - c.SpawnHeight}
}
