// Package registry maps model ids to constructors so the CLI, the
// classifier output and saved problems all build models the same way.
package registry

import (
	"fmt"
	"math"
	"sort"

	"physlab/internal/kinematics"
)

type factory func(p map[string]float64) (kinematics.Model, error)

type entry struct {
	defaults map[string]float64
	build    factory
}

var models = map[string]entry{
	"freefall": {
		defaults: map[string]float64{"height": 20, "gravity": 9.81, "mass": 1},
		build: func(p map[string]float64) (kinematics.Model, error) {
			return kinematics.NewFreeFall(p["height"], p["gravity"], p["mass"])
		},
	},
	"throw": {
		defaults: map[string]float64{"speed": 20, "height": 0, "gravity": 9.81, "mass": 1},
		build: func(p map[string]float64) (kinematics.Model, error) {
			return kinematics.NewThrow(p["speed"], p["height"], p["gravity"], p["mass"])
		},
	},
	"projectile": {
		defaults: map[string]float64{"speed": 25, "angle": math.Pi / 4, "height": 0, "gravity": 9.81, "mass": 1},
		build: func(p map[string]float64) (kinematics.Model, error) {
			return kinematics.NewProjectile(p["speed"], p["angle"], p["height"], p["gravity"], p["mass"])
		},
	},
	"incline": {
		defaults: map[string]float64{"length": 10, "angle": math.Pi / 6, "friction": 0, "gravity": 9.81, "mass": 2},
		build: func(p map[string]float64) (kinematics.Model, error) {
			return kinematics.NewIncline(p["length"], p["angle"], p["friction"], p["gravity"], p["mass"])
		},
	},
	"pulley": {
		defaults: map[string]float64{"mass1": 3, "mass2": 5, "height": 5, "gravity": 9.81},
		build: func(p map[string]float64) (kinematics.Model, error) {
			return kinematics.NewPulley(p["mass1"], p["mass2"], p["height"], p["gravity"])
		},
	},
	"spring": {
		defaults: map[string]float64{"mass": 1, "stiffness": 10, "amplitude": 0.5},
		build: func(p map[string]float64) (kinematics.Model, error) {
			return kinematics.NewSpring(p["mass"], p["stiffness"], p["amplitude"])
		},
	},
	"pendulum": {
		defaults: map[string]float64{"length": 1, "angle": 0.3, "gravity": 9.81, "mass": 1},
		build: func(p map[string]float64) (kinematics.Model, error) {
			return kinematics.NewPendulum(p["length"], p["angle"], p["gravity"], p["mass"])
		},
	},
	"circular": {
		defaults: map[string]float64{"radius": 2, "omega": 1.5, "alpha": 0, "mass": 1},
		build: func(p map[string]float64) (kinematics.Model, error) {
			return kinematics.NewCircular(p["radius"], p["omega"], p["alpha"], p["mass"])
		},
	},
}

// Build constructs a model from its id and a parameter map. Missing keys
// fall back to the model's defaults; unknown keys are rejected.
func Build(id string, params map[string]float64) (kinematics.Model, error) {
	e, ok := models[id]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s", id)
	}
	merged := make(map[string]float64, len(e.defaults))
	for k, v := range e.defaults {
		merged[k] = v
	}
	for k, v := range params {
		if _, ok := merged[k]; !ok {
			return nil, fmt.Errorf("model %s has no parameter %q", id, k)
		}
		merged[k] = v
	}
	return e.build(merged)
}

// Defaults returns a copy of the model's default parameters.
func Defaults(id string) (map[string]float64, error) {
	e, ok := models[id]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s", id)
	}
	out := make(map[string]float64, len(e.defaults))
	for k, v := range e.defaults {
		out[k] = v
	}
	return out, nil
}

// IDs lists registered model ids, sorted.
func IDs() []string {
	out := make([]string, 0, len(models))
	for id := range models {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
