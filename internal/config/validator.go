package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env schema version the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists the variables that must always be set
var RequiredEnvVars = []string{
	EnvSchemaVersion,
	EnvAPIKey,
}

// databaseEnvSets are the accepted ways to point at PostgreSQL. One complete
// set is enough.
var databaseEnvSets = [][]string{
	{EnvDatabaseURL},
	{EnvNeonDatabaseURL},
	{EnvDBUser, EnvDBPassword, EnvDBHost, EnvDBPort, EnvDBName},
}

// ValidateEnv checks the schema version, the required variables and that
// some database location is configured
func ValidateEnv() error {
	schemaVersion := os.Getenv(EnvSchemaVersion)
	if schemaVersion == "" {
		return fmt.Errorf("%s is not set - please update your .env file to include this field (expected: %s)", EnvSchemaVersion, ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("%s mismatch: expected %s, got %s - your .env file may be outdated", EnvSchemaVersion, ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if !hasDatabaseEnv() {
		return fmt.Errorf("no database configured: set %s, %s or all of DB_USER, DB_PASSWORD, DB_HOST, DB_PORT, DB_NAME", EnvDatabaseURL, EnvNeonDatabaseURL)
	}

	return nil
}

func hasDatabaseEnv() bool {
	for _, set := range databaseEnvSets {
		complete := true
		for _, key := range set {
			if os.Getenv(key) == "" {
				complete = false
				break
			}
		}
		if complete {
			return true
		}
	}
	return false
}

// ValidateEnvWithWarnings runs ValidateEnv and reports non-fatal issues such
// as example values left in place
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv(EnvDBPassword) == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if os.Getenv(EnvAPIKey) == "generate_with_openssl_rand_hex_32" {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if strings.EqualFold(os.Getenv(EnvDevMode), "true") && os.Getenv(EnvEnvironment) == "prod" {
		warnings = append(warnings, "DEV_MODE is enabled in prod - mining cooldowns are bypassed")
	}

	return warnings, nil
}
