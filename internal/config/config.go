package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	WorkbookPath string
	OutputPath   string
	DBPath       string
	ExportDir    string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		WorkbookPath: getEnv("EXCEL_PATH", ""),
		OutputPath:   getEnv("OUTPUT_PATH", filepath.Join(cwd, "data", "products-data.json")),
		DBPath:       getEnv("DB_PATH", filepath.Join(cwd, "data", "app.db")),
		ExportDir:    getEnv("EXPORT_DIR", filepath.Join(cwd, "out")),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
