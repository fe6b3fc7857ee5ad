package core

// FieldConfig describes the sampling of a square sky cutout.
type FieldConfig struct {
	// Size is the cutout side length in pixels.
	Size int
	// PixelScale is the physical size of one pixel (for example arcmin/pixel).
	PixelScale float64
}

// FieldOption mutates a FieldConfig.
type FieldOption func(*FieldConfig)

// DefaultFieldConfig returns the cutout geometry used when nothing is specified.
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		Size:       64,
		PixelScale: 1,
	}
}

// WithSize sets the cutout side length.
func WithSize(size int) FieldOption {
	return func(cfg *FieldConfig) {
		if size > 0 {
			cfg.Size = size
		}
	}
}

// WithPixelScale sets the physical size of one pixel.
func WithPixelScale(scale float64) FieldOption {
	return func(cfg *FieldConfig) {
		if scale > 0 {
			cfg.PixelScale = scale
		}
	}
}

// ApplyFieldOptions applies zero or more options to the default config.
func ApplyFieldOptions(opts ...FieldOption) FieldConfig {
	cfg := DefaultFieldConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// ToPhysical converts a distance in pixels to physical units.
func (cfg FieldConfig) ToPhysical(pixels float64) float64 {
	return pixels * cfg.PixelScale
}

// ToPixels converts a physical distance to pixels.
func (cfg FieldConfig) ToPixels(physical float64) float64 {
	return physical / cfg.PixelScale
}
