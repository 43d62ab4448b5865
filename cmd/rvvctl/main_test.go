package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-rvv/config"
	"github.com/cwbudde/algo-rvv/rvv"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvForceScalar, "")
	t.Setenv(config.EnvVectorBits, "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInfo(t *testing.T) {
	out, err := execute(t, "--vector-bits", "256", "info")
	require.NoError(t, err)

	assert.Contains(t, out, "Architecture")
	assert.Contains(t, out, "generic")
	assert.Contains(t, out, "dot")
	assert.Contains(t, out, "int16>int32>int64")
}

func TestInfoScalar(t *testing.T) {
	out, err := execute(t, "--scalar", "info")
	require.NoError(t, err)

	assert.Regexp(t, `Kernel\s+generic`, out)
	assert.Regexp(t, `Vector\s+false`, out)
	assert.NotContains(t, out, "VLEN")
}

func TestInfoForceVector(t *testing.T) {
	out, err := execute(t, "--force-vector", "--vector-bits", "512", "info")
	require.NoError(t, err)

	assert.Regexp(t, `Kernel\s+rvv`, out)
	assert.Regexp(t, `Vector\s+true`, out)
	assert.Regexp(t, `VLEN \[bits\]\s+512`, out)
	assert.Contains(t, out, "Chunk float32")
}

func TestFlags(t *testing.T) {
	dir := t.TempDir()
	sdk := filepath.Join(dir, "sdkconfig")
	require.NoError(t, os.WriteFile(sdk, []byte("CONFIG_TOOLCHAIN_RISCV64=y\nCONFIG_EXTRA_CXXFLAGS=\"-O3\"\n"), 0o600))

	out, err := execute(t, "--config", sdk, "flags")
	require.NoError(t, err)
	assert.Equal(t, "-std=c++17 -march=rv64gcv0p7 -mrvv-vector-bits=128 -O3\n", out)

	dst := filepath.Join(dir, "compile_flags.txt")
	_, err = execute(t, "--config", sdk, "flags", "--out", dst)
	require.NoError(t, err)

	written, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "-std=c++17 -march=rv64gcv0p7 -mrvv-vector-bits=128 -O3", string(written))
}

func TestFlagsDefinitions(t *testing.T) {
	dir := t.TempDir()
	sdk := filepath.Join(dir, "sdkconfig")
	require.NoError(t, os.WriteFile(sdk, []byte("CONFIG_TOOLCHAIN_RISCV64=y\nCONFIG_RVV_FORCE_VECTOR=y\n"), 0o600))

	defs := filepath.Join(dir, "compile_definitions.txt")
	out, err := execute(t, "--config", sdk, "flags", "--definitions", defs)
	require.NoError(t, err)
	assert.Equal(t, "-std=c++17 -march=rv64gcv0p7 -mrvv-vector-bits=128\n", out)

	written, err := os.ReadFile(defs)
	require.NoError(t, err)
	assert.Equal(t, "RVV_VECTOR_BITS=128\nRVV_FORCE_VECTOR\n", string(written))
}

func TestFlagsBadConfig(t *testing.T) {
	sdk := filepath.Join(t.TempDir(), "sdkconfig")
	require.NoError(t, os.WriteFile(sdk, []byte("CONFIG_RVV_VECTOR_BITS=100\n"), 0o600))

	_, err := execute(t, "--config", sdk, "flags")
	require.ErrorIs(t, err, config.ErrInvalidVectorBits)
}

func TestVerify(t *testing.T) {
	for _, bits := range []string{"64", "128", "512"} {
		t.Run(bits, func(t *testing.T) {
			out, err := execute(t, "--vector-bits", bits, "verify", "--n", "300", "--seed", "3")
			require.NoError(t, err, out)
			assert.NotContains(t, out, "MISMATCH")
			assert.Contains(t, out, "dot_i8")
		})
	}
}

func TestVerifyRejectsBadLength(t *testing.T) {
	_, err := execute(t, "verify", "--n", "0")
	require.Error(t, err)
}

func TestRunVerifyCountsMismatch(t *testing.T) {
	vec, err := rvv.New(rvv.WithCapability(rvv.Capability{Vector: true, Level: "RVV", VectorBits: 128, Kernel: "rvv"}))
	require.NoError(t, err)

	flip := false
	cases := []verifyCase{{
		op: "flaky",
		run: func(*rvv.Engine) (outcome, error) {
			flip = !flip
			if flip {
				return outcome{i64: 1}, nil
			}
			return outcome{i64: 2}, nil
		},
	}}

	var out bytes.Buffer
	failed, err := runVerify(&out, rvv.Scalar(), vec, cases)
	require.NoError(t, err)
	assert.Equal(t, 1, failed)
	assert.Contains(t, out.String(), "MISMATCH")
}

func TestBench(t *testing.T) {
	out, err := execute(t, "bench", "--n", "257", "--iters", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, out, "dot_i8")
	assert.Contains(t, out, "Speedup")
}
