package config

import (
	"fmt"
	"io"
	"strings"
)

// CompileFlags returns the C++ compiler flags for the configuration:
// -std=c++17, the RISC-V vector target flags when the RISC-V toolchain is
// selected, then the extra flags.
func (c Config) CompileFlags() []string {
	flags := []string{"-std=c++17"}

	if c.ToolchainRISCV64 {
		flags = append(flags,
			"-march="+c.ArchOrDefault(),
			fmt.Sprintf("-mrvv-vector-bits=%d", c.VectorBitsOrDefault()),
		)
	}

	if extra := strings.TrimSpace(c.ExtraCXXFlags); extra != "" {
		flags = append(flags, extra)
	}

	return flags
}

// WriteFlags writes the space-joined compile flags (compile_flags.txt content) to w.
func WriteFlags(w io.Writer, c Config) error {
	_, err := io.WriteString(w, strings.Join(c.CompileFlags(), " "))
	return err
}

// Definitions returns the preprocessor definitions (compile_definitions.txt
// entries) for the dispatch settings, one NAME or NAME=value per entry.
// The RVV_VECTOR_BITS entry is emitted only for the RISC-V toolchain.
func (c Config) Definitions() []string {
	var defs []string

	if c.ToolchainRISCV64 {
		defs = append(defs, fmt.Sprintf("RVV_VECTOR_BITS=%d", c.VectorBitsOrDefault()))
	}
	if c.ForceScalar {
		defs = append(defs, "RVV_FORCE_SCALAR")
	}
	if c.ForceVector {
		defs = append(defs, "RVV_FORCE_VECTOR")
	}

	return defs
}

// WriteDefinitions writes the preprocessor definitions to w, each followed
// by a newline. A configuration without definitions writes nothing.
func WriteDefinitions(w io.Writer, c Config) error {
	for _, d := range c.Definitions() {
		if _, err := io.WriteString(w, d+"\n"); err != nil {
			return err
		}
	}
	return nil
}
