package testutils

import "os"

// SavedEnv captures the previous state of an environment variable.
type SavedEnv struct {
	Key   string
	Had   bool
	Value string
}

// SetEnv sets an environment variable and returns its previous state.
func SetEnv(key, value string) SavedEnv {
	prev, had := os.LookupEnv(key)
	_ = os.Setenv(key, value)
	return SavedEnv{Key: key, Had: had, Value: prev}
}

// RestoreEnv restores environment variables to a previously saved state.
func RestoreEnv(envs []SavedEnv) {
	for _, env := range envs {
		if env.Had {
			_ = os.Setenv(env.Key, env.Value)
		} else {
			_ = os.Unsetenv(env.Key)
		}
	}
}

// SetTestEnv applies the environment shared by package TestMain functions:
// debug mode, no Redis, no AMQP, local storage under uploadDir.
func SetTestEnv(uploadDir string) []SavedEnv {
	return []SavedEnv{
		SetEnv("ART_ATLAS_SERVER_MODE", "debug"),
		SetEnv("ART_ATLAS_REDIS_ENABLED", "false"),
		SetEnv("ART_ATLAS_EVENTS_AMQP_ENABLED", "false"),
		SetEnv("ART_ATLAS_UPLOAD_STORAGE", "local"),
		SetEnv("ART_ATLAS_UPLOAD_PATH", uploadDir),
		SetEnv("ART_ATLAS_SESSION_TTL_HOURS", "24"),
	}
}
