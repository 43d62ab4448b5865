package config

import (
	"fmt"
	"os"
)

// Environment variables that override the file configuration.
const (
	EnvForceScalar = "RVV_FORCE_SCALAR"
	EnvForceVector = "RVV_FORCE_VECTOR"
	EnvVectorBits  = "RVV_VECTOR_BITS"
)

// ApplyEnv overrides c with the RVV_FORCE_SCALAR, RVV_FORCE_VECTOR and
// RVV_VECTOR_BITS environment variables when they are set.
func ApplyEnv(c Config) (Config, error) {
	return applyEnv(c, os.LookupEnv)
}

// FromEnv returns the configuration described by the environment alone.
func FromEnv() (Config, error) {
	return ApplyEnv(Config{})
}

func applyEnv(c Config, lookup func(string) (string, bool)) (Config, error) {
	var err error
	if c.ForceScalar, err = envBool(lookup, EnvForceScalar, c.ForceScalar); err != nil {
		return c, err
	}
	if c.ForceVector, err = envBool(lookup, EnvForceVector, c.ForceVector); err != nil {
		return c, err
	}

	if v, ok := lookup(EnvVectorBits); ok && v != "" {
		bits, err := ParseVectorBits(v)
		if err != nil {
			return c, fmt.Errorf("%s: %w", EnvVectorBits, err)
		}
		c.VectorBits = bits
	}

	return c, nil
}

func envBool(lookup func(string) (string, bool), key string, cur bool) (bool, error) {
	v, ok := lookup(key)
	if !ok {
		return cur, nil
	}
	switch v {
	case "1", "y", "true":
		return true, nil
	case "0", "n", "false", "":
		return false, nil
	default:
		return cur, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, v)
	}
}
