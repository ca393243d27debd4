// Package classify defines the boundary to the problem-text classifier and
// ships a small keyword-based reference implementation so the CLI works
// offline. The simulation core only ever trusts the numeric validity of the
// resulting configuration, which the kinematics constructors enforce.
package classify

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"physlab/internal/kinematics"
	"physlab/internal/registry"
)

// Analysis is the classifier output contract: a model selector, an initial
// parameter set and the adjustable-parameter metadata for UI sliders.
type Analysis struct {
	ModelID    string
	Parameters map[string]float64
	Adjustable []kinematics.ParamSpec
}

// Classifier turns free-form problem text into an Analysis.
type Classifier interface {
	Classify(text string) (Analysis, error)
}

// Keyword is the reference classifier: model choice by keyword, parameters
// by unit-suffixed number extraction, everything else from model defaults.
type Keyword struct{}

var modelCues = []struct {
	id   string
	cues []string
}{
	{"pulley", []string{"pulley", "atwood", "two masses", "connected by a rope"}},
	{"projectile", []string{"projectile", "launched at an angle", "cannon", "kicked"}},
	{"incline", []string{"incline", "inclined plane", "ramp", "slope", "slides down"}},
	{"pendulum", []string{"pendulum", "swings"}},
	{"spring", []string{"spring", "oscillat", "shm", "harmonic"}},
	{"circular", []string{"circular", "circle", "rotat", "revolv", "centripetal"}},
	{"throw", []string{"thrown", "throws", "tossed", "upward", "straight up"}},
	{"freefall", []string{"fall", "falls", "dropped", "drops", "drop"}},
}

var numberUnit = regexp.MustCompile(`(-?\d+(?:\.\d+)?)\s*(m/s²|m/s\^2|m/s2|m/s|kg|n/m|rad/s|rad|°|deg(?:rees)?|m\b)`)

func (Keyword) Classify(text string) (Analysis, error) {
	lower := strings.ToLower(text)

	modelID := ""
	for _, c := range modelCues {
		for _, cue := range c.cues {
			if strings.Contains(lower, cue) {
				modelID = c.id
				break
			}
		}
		if modelID != "" {
			break
		}
	}
	if modelID == "" {
		return Analysis{}, fmt.Errorf("could not recognize a physics model in %q", text)
	}

	params, err := registry.Defaults(modelID)
	if err != nil {
		return Analysis{}, err
	}
	applyExtracted(modelID, lower, params)

	model, err := registry.Build(modelID, params)
	if err != nil {
		return Analysis{}, fmt.Errorf("classified as %s but parameters are invalid: %w", modelID, err)
	}

	return Analysis{
		ModelID:    modelID,
		Parameters: model.Params(),
		Adjustable: model.Specs(),
	}, nil
}

// applyExtracted maps unit-tagged numbers onto the model's parameter slots.
// Bare masses for the pulley fill mass1 then mass2 in text order.
func applyExtracted(modelID, text string, params map[string]float64) {
	massSeen := 0
	for _, m := range numberUnit.FindAllStringSubmatch(text, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		switch m[2] {
		case "m/s":
			if _, ok := params["speed"]; ok {
				params["speed"] = v
			}
		case "m/s²", "m/s^2", "m/s2":
			params["gravity"] = v
		case "kg":
			switch modelID {
			case "pulley":
				if massSeen == 0 {
					params["mass1"] = v
				} else if massSeen == 1 {
					params["mass2"] = v
				}
				massSeen++
			default:
				if _, ok := params["mass"]; ok {
					params["mass"] = v
				}
			}
		case "n/m":
			if _, ok := params["stiffness"]; ok {
				params["stiffness"] = v
			}
		case "rad":
			if _, ok := params["angle"]; ok {
				params["angle"] = v
			}
		case "rad/s":
			if _, ok := params["omega"]; ok {
				params["omega"] = v
			}
		case "°", "deg", "degrees":
			if _, ok := params["angle"]; ok {
				params["angle"] = v * math.Pi / 180
			}
		case "m":
			for _, key := range lengthKey(modelID) {
				if _, ok := params[key]; ok {
					params[key] = v
					break
				}
			}
		}
	}
}

func lengthKey(modelID string) []string {
	switch modelID {
	case "incline":
		return []string{"length"}
	case "pendulum":
		return []string{"length"}
	case "spring":
		return []string{"amplitude"}
	case "circular":
		return []string{"radius"}
	default:
		return []string{"height"}
	}
}
