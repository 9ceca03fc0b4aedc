package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches the working directory for one test and restores it after.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Equal(t, DefaultBasicSalaryIndex, cfg.Salary.BasicSalaryIndex)
	assert.Equal(t, DefaultAllowancesIndex, cfg.Salary.AllowancesIndex)
}

func TestLoad_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PAY_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "logging:\n  level: warn\n  output: console\n  file_path: logs/combiner.log\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_InvalidLevel(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PAY_LOGGING_LEVEL", "loud")

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_EqualSalaryColumnsRejected(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PAY_SALARY_BASIC_SALARY_INDEX", "6")

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, DefaultSalaryLayout(), cfg.Salary)
}

func TestSalaryLayout_MinFields(t *testing.T) {
	tests := []struct {
		name   string
		layout SalaryLayout
		want   int
	}{
		{name: "default layout", layout: DefaultSalaryLayout(), want: 7},
		{name: "basic above allowances", layout: SalaryLayout{BasicSalaryIndex: 9, AllowancesIndex: 2}, want: 10},
		{name: "low columns", layout: SalaryLayout{BasicSalaryIndex: 0, AllowancesIndex: 1}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.layout.MinFields())
		})
	}
}
