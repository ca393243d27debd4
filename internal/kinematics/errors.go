package kinematics

import (
	"errors"
	"fmt"
)

// ErrConfig is the sentinel for all construction-time rejections.
var ErrConfig = errors.New("kinematics: invalid configuration")

// ConfigError names the offending parameter and the constraint it violated.
// It is the only error kind that escapes this package; degenerate
// configurations never survive to Evaluate.
type ConfigError struct {
	Param      string
	Value      float64
	Constraint string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s must be %s, got %g", e.Param, e.Constraint, e.Value)
}

func (e *ConfigError) Unwrap() error { return ErrConfig }

func configErr(param string, value float64, constraint string) error {
	return &ConfigError{Param: param, Value: value, Constraint: constraint}
}
