// Package config loads the application configuration from a config.toml next
// to the executable, with environment overrides for deployment settings.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig is the full application configuration.
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
	Cache  CacheConfig  `toml:"cache"`
	Upload UploadConfig `toml:"upload"`
	Remote RemoteConfig `toml:"remote"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig locates the workbook and the drawings.
type DataConfig struct {
	DataDir   string `toml:"data_dir"`
	ExcelFile string `toml:"excel_file"`
	PlanosDir string `toml:"planos_dir"`
}

// CacheConfig governs dataset freshness.
type CacheConfig struct {
	TTLMinutes int `toml:"ttl_minutes"`
}

// UploadConfig bounds the upload endpoint.
type UploadConfig struct {
	MaxSizeMB int `toml:"max_size_mb"`
}

// RemoteConfig points at a blob-hosted workbook. When BlobURL is empty the
// local excel file is the source.
type RemoteConfig struct {
	BlobURL        string `toml:"blob_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20280,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir:   "data",
			ExcelFile: "PROYECTO_DESGLOSE_TORRES.xlsx",
			PlanosDir: "planos",
		},
		Cache: CacheConfig{
			TTLMinutes: 5,
		},
		Upload: UploadConfig{
			MaxSizeMB: 10,
		},
		Remote: RemoteConfig{
			TimeoutSeconds: 30,
		},
	}
}

// GetExeDir returns the directory of the running executable.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigInfo carries load-time metadata the CLI needs to resolve flag
// precedence.
type LoadConfigInfo struct {
	// PortSpecified is true when config.toml explicitly sets server.port;
	// an explicit file value wins over the --port flag.
	PortSpecified bool
}

// LoadConfig reads config.toml from the executable's directory, falling back
// to defaults when the file is absent, then applies environment overrides.
func LoadConfig() (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo()
	return config, err
}

// LoadConfigWithInfo is LoadConfig plus metadata about the loaded file.
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	data, err := os.ReadFile(filepath.Join(exeDir, "config.toml"))
	if err == nil {
		info.PortSpecified = isPortSpecifiedInToml(data)
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, info, err
		}
	} else if !os.IsNotExist(err) {
		return nil, info, err
	}

	applyEnvOverrides(config)
	return config, info, nil
}

// isPortSpecifiedInToml reports whether the raw toml carries an explicit
// server.port key, which a zero-value unmarshal cannot distinguish from an
// absent one.
func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

func applyEnvOverrides(config *AppConfig) {
	if v := os.Getenv("DESGLOSE_BLOB_URL"); v != "" {
		config.Remote.BlobURL = v
	}
	if v := os.Getenv("DESGLOSE_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			config.Server.Port = port
		}
	}
}

// EnsureDataDir creates the data and planos directories next to the
// executable and returns the data directory path.
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := resolveDir(exeDir, config.Data.DataDir)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	if err := os.MkdirAll(resolveDir(exeDir, config.Data.PlanosDir), 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

// ExcelPath returns the absolute path of the local workbook.
func ExcelPath(config *AppConfig) string {
	exeDir, _ := GetExeDir()
	if exeDir == "" {
		exeDir = "."
	}
	return filepath.Join(resolveDir(exeDir, config.Data.DataDir), config.Data.ExcelFile)
}

// PlanosPath returns the absolute path of the drawings directory.
func PlanosPath(config *AppConfig) string {
	exeDir, _ := GetExeDir()
	if exeDir == "" {
		exeDir = "."
	}
	return resolveDir(exeDir, config.Data.PlanosDir)
}

func resolveDir(exeDir, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(exeDir, dir)
}
