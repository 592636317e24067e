package loader

import (
	"os"
	"strings"
)

// EnvLoader loads configuration from environment variables.
//
// Only mapped variables are read; values are kept as strings since every
// scriptlsp setting is a string.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "SCRIPTLSP_")
	mapping map[string]string // Env var -> config path
}

// NewEnvLoader creates a loader for the given settings. Each setting path
// such as "editor.language_id" is read from PREFIX_EDITOR_LANGUAGE_ID.
func NewEnvLoader(prefix string, paths ...string) *EnvLoader {
	l := &EnvLoader{
		prefix:  prefix,
		mapping: make(map[string]string, len(paths)),
	}
	for _, path := range paths {
		l.mapping[l.PathToEnv(path)] = path
	}
	return l
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	l.mapping[envVar] = configPath
}

// Load reads environment variables and returns a configuration map.
// Note: Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for env, path := range l.mapping {
		if val, ok := os.LookupEnv(env); ok {
			setByPath(config, path, val)
		}
	}

	if len(config) == 0 {
		return nil, nil
	}
	return config, nil
}

// PathToEnv converts editor.language_id to SCRIPTLSP_EDITOR_LANGUAGE_ID.
func (l *EnvLoader) PathToEnv(path string) string {
	return l.prefix + strings.ToUpper(strings.ReplaceAll(path, ".", "_"))
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	for i := 0; i < len(parts)-1; i++ {
		part := parts[i]
		if next, ok := current[part].(map[string]any); ok {
			current = next
		} else {
			next := make(map[string]any)
			current[part] = next
			current = next
		}
	}

	current[parts[len(parts)-1]] = value
}
