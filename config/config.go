// Package config reads the Kconfig-style sdkconfig file that configures the
// kernel engine and its cross-compilation flags.
//
// An sdkconfig file holds one KEY=value entry per line. Strings are quoted,
// booleans are y/n, and a disabled boolean may also be written as the comment
// "# CONFIG_X is not set". Other comments and blank lines are ignored.
//
//	CONFIG_TOOLCHAIN_RISCV64=y
//	CONFIG_RVV_VECTOR_BITS=256
//	CONFIG_EXTRA_CXXFLAGS="-O3"
//	# CONFIG_RVV_FORCE_SCALAR is not set
//
// The same file drives two consumers: CompileFlags derives the C++ compiler
// flags for the RISC-V toolchain, and the rvv package reads ForceScalar,
// ForceVector and VectorBits to configure kernel dispatch.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Recognized sdkconfig keys.
const (
	KeyToolchainRISCV64 = "CONFIG_TOOLCHAIN_RISCV64"
	KeyExtraCXXFlags    = "CONFIG_EXTRA_CXXFLAGS"
	KeyVectorBits       = "CONFIG_RVV_VECTOR_BITS"
	KeyArch             = "CONFIG_RVV_ARCH"
	KeyForceScalar      = "CONFIG_RVV_FORCE_SCALAR"
	KeyForceVector      = "CONFIG_RVV_FORCE_VECTOR"
)

const (
	// DefaultArch is the -march value for the XuanTie C906 vector unit (RVV 0.7.1).
	DefaultArch = "rv64gcv0p7"

	// DefaultVectorBits is the VLEN of the C906 core.
	DefaultVectorBits = 128

	minVectorBits = 64
	maxVectorBits = 4096
)

var (
	// ErrInvalidValue reports a malformed line or a value of the wrong type.
	ErrInvalidValue = errors.New("config: invalid value")

	// ErrInvalidVectorBits reports a vector width that is not a power of two
	// between 64 and 4096.
	ErrInvalidVectorBits = errors.New("config: invalid vector width")
)

// Config is the parsed sdkconfig.
type Config struct {
	// ToolchainRISCV64 selects the RISC-V cross toolchain flags.
	ToolchainRISCV64 bool

	// ExtraCXXFlags is appended verbatim to the compiler flags.
	ExtraCXXFlags string

	// Arch is the -march value; empty means DefaultArch.
	Arch string

	// VectorBits is the configured VLEN; zero means not configured.
	VectorBits int

	// ForceScalar disables the vector kernels.
	ForceScalar bool

	// ForceVector selects the RVV kernels even when the running kernel does
	// not report the V extension. Linux only reports ratified V 1.0, so
	// pre-ratification units such as the C906 (RVV 0.7.1) need it.
	// ForceScalar takes precedence.
	ForceVector bool

	// Values holds every entry of the file, including unrecognized keys.
	Values map[string]string
}

// Load reads and parses the sdkconfig file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse reads sdkconfig entries from r.
func Parse(r io.Reader) (Config, error) {
	cfg := Config{Values: make(map[string]string)}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			if key, ok := notSet(line); ok {
				if err := cfg.set(key, "n"); err != nil {
					return Config{}, fmt.Errorf("line %d: %w", lineNo, err)
				}
			}
			continue
		}

		key, raw, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return Config{}, fmt.Errorf("line %d: %w: %q", lineNo, ErrInvalidValue, line)
		}

		value, err := unquote(strings.TrimSpace(raw))
		if err != nil {
			return Config{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := cfg.set(key, value); err != nil {
			return Config{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// notSet recognizes "# CONFIG_X is not set".
func notSet(line string) (string, bool) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "#"))
	key, ok := strings.CutSuffix(rest, " is not set")
	if !ok || !strings.HasPrefix(key, "CONFIG_") || strings.ContainsAny(key, " \t") {
		return "", false
	}
	return key, true
}

func unquote(raw string) (string, error) {
	if !strings.HasPrefix(raw, `"`) {
		return raw, nil
	}
	s, err := strconv.Unquote(raw)
	if err != nil {
		return "", fmt.Errorf("%w: bad string %s", ErrInvalidValue, raw)
	}
	return s, nil
}

func (c *Config) set(key, value string) error {
	switch key {
	case KeyToolchainRISCV64:
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		c.ToolchainRISCV64 = b
	case KeyForceScalar:
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		c.ForceScalar = b
	case KeyForceVector:
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		c.ForceVector = b
	case KeyExtraCXXFlags:
		c.ExtraCXXFlags = value
	case KeyArch:
		c.Arch = value
	case KeyVectorBits:
		bits, err := ParseVectorBits(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		c.VectorBits = bits
	}

	if c.Values == nil {
		c.Values = make(map[string]string)
	}
	c.Values[key] = value
	return nil
}

func parseBool(key, value string) (bool, error) {
	switch value {
	case "y":
		return true, nil
	case "n", "":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s=%q, want y or n", ErrInvalidValue, key, value)
	}
}

// ParseVectorBits parses a vector register width in bits.
func ParseVectorBits(s string) (int, error) {
	bits, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidVectorBits, s)
	}
	if bits < minVectorBits || bits > maxVectorBits || bits&(bits-1) != 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidVectorBits, bits)
	}
	return bits, nil
}

// ArchOrDefault returns Arch, or DefaultArch when unset.
func (c Config) ArchOrDefault() string {
	if c.Arch == "" {
		return DefaultArch
	}
	return c.Arch
}

// VectorBitsOrDefault returns VectorBits, or DefaultVectorBits when unset.
func (c Config) VectorBitsOrDefault() int {
	if c.VectorBits == 0 {
		return DefaultVectorBits
	}
	return c.VectorBits
}
