package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testVar = "MINESBOT_TEST_VAR"

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"", 42},
		{"100", 100},
		{"-10", -10},
		{"0", 0},
		{"not-a-number", 42},
		{"42.5", 42},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(testVar, tt.value)
			assert.Equal(t, tt.want, getEnvAsInt(testVar, 42))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{"", time.Minute},
		{"3h", 3 * time.Hour},
		{"90s", 90 * time.Second},
		{"0s", 0},
		{"10", time.Minute},
		{"soon", time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(testVar, tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration(testVar, time.Minute))
		})
	}
}

func TestGetEnvAsBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", true},
		{"false", false},
		{"0", false},
		{"TRUE", true},
		{"nope", true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(testVar, tt.value)
			assert.Equal(t, tt.want, getEnvAsBool(testVar, true))
		})
	}
}

func TestGetEnvAsList(t *testing.T) {
	t.Setenv(testVar, " 10.0.0.1 ,,10.0.0.2, ")
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, getEnvAsList(testVar))

	t.Setenv(testVar, "")
	assert.Nil(t, getEnvAsList(testVar))
}

func TestGetEnv_EmptyMeansDefault(t *testing.T) {
	t.Setenv(testVar, "")
	assert.Equal(t, "fallback", getEnv(testVar, "fallback"))

	t.Setenv(testVar, "set")
	assert.Equal(t, "set", getEnv(testVar, "fallback"))
}
