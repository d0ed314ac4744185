package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/ucum/internal/measurement"
	"github.com/banshee-data/ucum/internal/testutil"
	"github.com/banshee-data/ucum/internal/ucum"
	"github.com/banshee-data/ucum/internal/version"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(args, &out)
	return out.String(), err
}

func TestRun_Convert(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"prefixed length", []string{"convert", "1", "km", "m"}, "1000 m\n"},
		{"boiling point", []string{"convert", "100", "Cel", "[degF]"}, "212 [degF]\n"},
		{"absolute zero", []string{"convert", "0", "K", "Cel"}, "-273.15 Cel\n"},
		{"default speed unit", []string{"convert", "36", "km/h"}, "10 m/s\n"},
		{"speed names", []string{"-precision", "4", "convert", "10", "mps", "kph"}, "36 km/h\n"},
		{"fraction input", []string{"convert", "1/4", "[ft_i]", "[in_i]"}, "3 [in_i]\n"},
		{"precision flag", []string{"-precision", "2", "convert", "1", "[in_i]", "cm"}, "2.54 cm\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runCLI(t, tt.args...)
			testutil.AssertNoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRun_Parse(t *testing.T) {
	got, err := runCLI(t, "-precision", "4", "parse", "km/h")
	require.NoError(t, err)

	assert.Contains(t, got, "unit:")
	assert.Contains(t, got, "km/h")
	assert.Contains(t, got, "L.T-1")
	assert.Contains(t, got, "0.2778")
	assert.Contains(t, got, "special:    false")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		target error
	}{
		{"no command", nil, errUsage},
		{"unknown command", []string{"frobnicate"}, errUsage},
		{"bad flag", []string{"-nope", "parse", "m"}, errUsage},
		{"parse arity", []string{"parse"}, errUsage},
		{"convert arity", []string{"convert", "1"}, errUsage},
		{"record arity", []string{"record", "x", "1"}, errUsage},
		{"unknown unit", []string{"parse", "furlongs"}, ucum.ErrParse},
		{"incompatible", []string{"convert", "1", "m", "s"}, measurement.ErrIncompatibleUnits},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			testutil.AssertError(t, err)
			if !errors.Is(err, tt.target) {
				t.Errorf("run(%v) error = %v, want %v", tt.args, err, tt.target)
			}
		})
	}
}

func TestRun_BadValue(t *testing.T) {
	_, err := runCLI(t, "convert", "abc", "m", "cm")
	assert.Error(t, err)
}

func TestRun_Version(t *testing.T) {
	got, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version.String()+"\n", got)
}

func TestRun_Help(t *testing.T) {
	got, err := runCLI(t, "help")
	require.NoError(t, err)
	assert.Contains(t, got, "Usage: ucum")
}

func TestRun_RecordAndList(t *testing.T) {
	db := filepath.Join(t.TempDir(), "cli.db")

	id, err := runCLI(t, "-db", db, "record", "car", "10", "m/s")
	require.NoError(t, err)
	require.NotEmpty(t, strings.TrimSpace(id))

	_, err = runCLI(t, "-db", db, "record", "bag", "2", "kg")
	require.NoError(t, err)

	all, err := runCLI(t, "-db", db, "list")
	require.NoError(t, err)
	assert.Contains(t, all, strings.TrimSpace(id))
	assert.Contains(t, all, "10 m/s")
	assert.Contains(t, all, "2 kg")

	inKmh, err := runCLI(t, "-db", db, "list", "kmph")
	require.NoError(t, err)
	assert.Contains(t, inKmh, "36 km/h")
	assert.NotContains(t, inKmh, "bag")
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "ucum.json")
	cfgJSON := `{
  "database_path": "` + filepath.ToSlash(filepath.Join(dir, "cfg.db")) + `",
  "precision": 3,
  "display_unit": "km/h",
  "speed_unit": "mph"
}`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgJSON), 0o644))

	_, err := runCLI(t, "-config", cfgPath, "record", "bike", "5", "m/s")
	require.NoError(t, err)

	listed, err := runCLI(t, "-config", cfgPath, "list")
	require.NoError(t, err)
	assert.Contains(t, listed, "18 km/h")

	// speed_unit becomes the default convert target
	got, err := runCLI(t, "-config", cfgPath, "convert", "1609.344", "m")
	assert.Error(t, err, "length is not a speed")
	assert.True(t, errors.Is(err, measurement.ErrIncompatibleUnits))
	assert.Empty(t, got)

	got, err = runCLI(t, "-config", cfgPath, "convert", "1609.344", "m/h")
	require.NoError(t, err)
	assert.Equal(t, "1 [mi_i]/h\n", got)
}

func TestRun_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"precision": 500}`), 0o644))

	_, err := runCLI(t, "-config", path, "version")
	assert.Error(t, err)
}

func TestResolveUnit(t *testing.T) {
	mph, err := resolveUnit("mph")
	require.NoError(t, err)
	assert.Equal(t, "[mi_i]/h", mph.String())

	// without the speed name, "mph" would read as milliphot
	raw, err := ucum.Parse("mph")
	require.NoError(t, err)
	assert.False(t, raw.IsCompatibleWith(mph))
}
