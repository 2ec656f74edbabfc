// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Motor     MotorConfig     `yaml:"motor"`
	Camera    CameraConfig    `yaml:"camera"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Audio     AudioConfig     `yaml:"audio"`
	UI        UIConfig        `yaml:"ui"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOVDegrees float32 `yaml:"fov_degrees"`
	ShowGround bool    `yaml:"show_ground"`
	ShowBounds bool    `yaml:"show_bounds"`
}

// MotorConfig holds the simulated machine parameters.
type MotorConfig struct {
	RPM           float64 `yaml:"rpm"`
	LineFrequency float64 `yaml:"line_frequency"`
	PolePairs     int     `yaml:"pole_pairs"`
	// FixedStep advances simulated time by a constant per frame; 0 uses wall-clock delta.
	FixedStep     float64 `yaml:"fixed_step"`
	FanCoupled    bool    `yaml:"fan_coupled"`
	CutStartDeg   float64 `yaml:"cut_start_deg"`
	CutEndDeg     float64 `yaml:"cut_end_deg"`
	Segments      int     `yaml:"segments"`
	WaveFrequency float64 `yaml:"wave_frequency"`
}

// CameraConfig holds orbit camera limits and sensitivity.
type CameraConfig struct {
	Radius          float32 `yaml:"radius"`
	MinRadius       float32 `yaml:"min_radius"`
	MaxRadius       float32 `yaml:"max_radius"`
	Polar           float32 `yaml:"polar"`
	Azimuth         float32 `yaml:"azimuth"`
	DragSensitivity float32 `yaml:"drag_sensitivity"`
	ZoomStep        float32 `yaml:"zoom_step"`
}

// TelemetryConfig controls the mock sensor series.
type TelemetryConfig struct {
	Samples int    `yaml:"samples"`
	Seed    uint64 `yaml:"seed"`
}

// AudioConfig holds motor hum settings.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// UIConfig holds dashboard settings.
type UIConfig struct {
	PanelWidth    int     `yaml:"panel_width"`
	TextScale     float32 `yaml:"text_scale"`
	ScreenshotDir string  `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the compiled-in values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1440,
			Height:     860,
			Fullscreen: false,
			VSync:      true,
			FOVDegrees: 45,
			ShowGround: true,
			ShowBounds: true,
		},
		Motor: MotorConfig{
			RPM:           1740,
			LineFrequency: 60,
			PolePairs:     2,
			FixedStep:     0.016,
			FanCoupled:    true,
			CutStartDeg:   -10,
			CutEndDeg:     100,
			Segments:      64,
			WaveFrequency: 1.5,
		},
		Camera: CameraConfig{
			Radius:          7.5,
			MinRadius:       3,
			MaxRadius:       16,
			Polar:           1.15,
			Azimuth:         0.75,
			DragSensitivity: 0.008,
			ZoomStep:        0.6,
		},
		Telemetry: TelemetryConfig{
			Samples: 60,
			Seed:    1740,
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.4,
		},
		UI: UIConfig{
			PanelWidth:    420,
			TextScale:     1,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
