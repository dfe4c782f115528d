package config

import (
	"os"
	"strconv"
	"strings"
)

// Fallback values used when the corresponding environment variable is unset.
// The DB and JWT defaults are insecure on purpose: they make local
// development work out of the box and are expected to be overridden in any
// real deployment.
const (
	DefaultPort       = "3000"
	DefaultDBHost     = "localhost"
	DefaultDBUser     = "root"
	DefaultDBPassword = ""
	DefaultDBName     = "portfolio"
	DefaultJWTSecret  = "your_jwt_secret"
)

// New snapshots the process environment into a plain map so the rest of the
// app never reaches for os.Getenv directly.
func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok && val != "" {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}
