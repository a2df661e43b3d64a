package env

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// Variables read by the island demo.
const (
	// SceneConfig overrides the scene file path.
	SceneConfig = "ISLAND_SCENE_CONFIG"
	// TraceDir turns tracing on and sets where trace files go.
	TraceDir = "ISLAND_TRACE_DIR"
	// Seed overrides the fish spawn seed.
	Seed = "ISLAND_SEED"
)

// Load reads KEY=VALUE lines from path (e.g. ".env") into the environment.
// Variables already set in the process win over the file. Empty lines, lines
// starting with # and an optional leading "export " are handled. A missing
// file is not an error.
func Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(key); set {
			continue
		}
		_ = os.Setenv(key, value)
	}
	return scanner.Err()
}

func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimPrefix(line, "export ")
	key, value, found := strings.Cut(line, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return "", "", false
	}
	value = strings.TrimSpace(value)
	if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' || value[0] == '\'' && value[len(value)-1] == '\'') {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}

// String returns the variable key or def when unset or empty.
func String(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Int64 returns the variable key parsed as an integer, or def.
func Int64(key string, def int64) int64 {
	v, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return def
	}
	return v
}
