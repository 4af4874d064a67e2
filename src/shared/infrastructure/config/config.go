package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config reúne la configuración del servicio, tomada de variables de
// entorno con defaults para desarrollo local
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	MigrationsPath string

	PrometheusEnabled bool
	SeedSampleData    bool

	// POS
	QuietWindow time.Duration // Ventana de silencio del debounce de taps
	Currency    string

	// Eventos (vacío = deshabilitado)
	KafkaBrokers []string
	KafkaTopic   string
}

// Load lee la configuración desde el entorno
func Load() *Config {
	quietWindowMS, err := strconv.Atoi(getEnv("POS_QUIET_WINDOW_MS", "1500"))
	if err != nil || quietWindowMS <= 0 {
		quietWindowMS = 1500
	}

	var brokers []string
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}

	return &Config{
		Port: getEnv("PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "palengke_db"),

		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),

		PrometheusEnabled: getEnv("PROMETHEUS_ENABLED", "true") == "true",
		SeedSampleData:    getEnv("SEED_SAMPLE_DATA", "false") == "true",

		QuietWindow: time.Duration(quietWindowMS) * time.Millisecond,
		Currency:    getEnv("CURRENCY", "PHP"),

		KafkaBrokers: brokers,
		KafkaTopic:   getEnv("KAFKA_TOPIC", "pos-sales"),
	}
}

// PostgresDSN arma el string de conexión a la base
func (c *Config) PostgresDSN() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort + "/" + c.DBName + "?sslmode=disable"
}

// getEnv obtiene una variable de entorno o devuelve un valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
