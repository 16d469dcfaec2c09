package cmd

import "fmt"

// Config carries the environment-driven settings of the application.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// DefectRateThreshold is the quality gate limit as a fraction,
	// e.g. 0.30 for 30 percent.
	DefectRateThreshold float64

	// EnableEquipmentSimulator turns on synthetic telemetry for deployments
	// without a plant data connection.
	EnableEquipmentSimulator bool
}

// DBConnectionString builds the postgres DSN from the database settings.
func (c Config) DBConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
