package simulation

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Config carries every run parameter the simulation consumes. It is built
// once and handed to NewFlock; there is no ambient package-level state.
type Config struct {
	// World dimensions
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	// Population
	NumBoids int `json:"numBoids"`

	// Rendering geometry of a single boid (never read by the force model)
	BoidHeight float64 `json:"boidHeight"`
	BoidWidth  float64 `json:"boidWidth"`

	// Physics / behavior
	MaxVelocity         float64 `json:"maxVelocity"`
	SeparationIntensity float64 `json:"separationIntensity"`
	SeparationWeight    float64 `json:"separationWeight"`
	AlignmentWeight     float64 `json:"alignmentWeight"`
	CohesionWeight      float64 `json:"cohesionWeight"`

	// Independent per-rule search radii
	SeparationRadius float64 `json:"separationRadius"`
	AlignmentRadius  float64 `json:"alignmentRadius"`
	CohesionRadius   float64 `json:"cohesionRadius"`

	// Seed for the population RNG. Zero means seed from the clock.
	Seed uint64 `json:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		WorldWidth:          800,
		WorldHeight:         600,
		NumBoids:            50,
		BoidHeight:          10,
		BoidWidth:           3,
		MaxVelocity:         2.0,
		SeparationIntensity: 3.0,
		SeparationWeight:    0.5,
		AlignmentWeight:     0.03,
		CohesionWeight:      0.001,
		SeparationRadius:    60,
		AlignmentRadius:     80,
		CohesionRadius:      80,
	}
}

// Validate checks the constraints the schema enforces for file-based configs,
// so programmatically built configs get the same guarantees.
func (c *Config) Validate() error {
	positives := []struct {
		name  string
		value float64
	}{
		{"worldWidth", c.WorldWidth},
		{"worldHeight", c.WorldHeight},
		{"boidHeight", c.BoidHeight},
		{"boidWidth", c.BoidWidth},
		{"maxVelocity", c.MaxVelocity},
		{"separationRadius", c.SeparationRadius},
		{"alignmentRadius", c.AlignmentRadius},
		{"cohesionRadius", c.CohesionRadius},
	}
	for _, p := range positives {
		if p.value <= 0 {
			return fmt.Errorf("config: %s must be > 0, got %v", p.name, p.value)
		}
	}
	if c.NumBoids <= 0 {
		return fmt.Errorf("config: numBoids must be > 0, got %d", c.NumBoids)
	}
	return nil
}

// LoadConfig loads configuration from a JSON file and validates it against
// the schema before unmarshalling.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Unknown fields fall back to the defaults, so a partial config file
	// only overrides what it names.
	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
