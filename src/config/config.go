package config

import (
	"fmt"
	"os"
	"strconv"
)

// DatabaseConfig holds the PostgreSQL connection details
type DatabaseConfig struct {
	host     string
	port     int32
	user     string
	password string
	dbName   string
}

func (d *DatabaseConfig) GetHost() string     { return d.host }
func (d *DatabaseConfig) GetPort() int32      { return d.port }
func (d *DatabaseConfig) GetUser() string     { return d.user }
func (d *DatabaseConfig) GetPassword() string { return d.password }
func (d *DatabaseConfig) GetDBName() string   { return d.dbName }

// GlobalConfig holds all configuration for the dashboard gateway
type GlobalConfig struct {
	logLevel       string
	host           string
	port           string
	backendAPIAddr string
	sessionFile    string
	rabbitHost     string
	rabbitPort     int32
	rabbitUser     string
	rabbitPass     string
	database       DatabaseConfig
}

// NewConfig reads the gateway configuration from the environment. Every
// deployment-critical variable is required; a missing one is a startup error.
func NewConfig() (*GlobalConfig, error) {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		return nil, fmt.Errorf("LOG_LEVEL environment variable is required")
	}

	host := os.Getenv("HOST")
	if host == "" {
		return nil, fmt.Errorf("HOST environment variable is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		return nil, fmt.Errorf("PORT environment variable is required")
	}

	// The calling backend that owns call history, tools and agent config
	backendAddr := os.Getenv("BACKEND_API_ADDR")
	if backendAddr == "" {
		return nil, fmt.Errorf("BACKEND_API_ADDR environment variable is required")
	}

	sessionFile := os.Getenv("SESSION_FILE")
	if sessionFile == "" {
		return nil, fmt.Errorf("SESSION_FILE environment variable is required")
	}

	rabbitHost := os.Getenv("RABBITMQ_HOST")
	if rabbitHost == "" {
		return nil, fmt.Errorf("RABBITMQ_HOST environment variable is required")
	}

	rabbitPortStr := os.Getenv("RABBITMQ_PORT")
	if rabbitPortStr == "" {
		return nil, fmt.Errorf("RABBITMQ_PORT environment variable is required")
	}
	rabbitPort, err := strconv.ParseInt(rabbitPortStr, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("RABBITMQ_PORT must be a valid integer: %w", err)
	}

	rabbitUser := os.Getenv("RABBITMQ_USER")
	if rabbitUser == "" {
		return nil, fmt.Errorf("RABBITMQ_USER environment variable is required")
	}

	rabbitPass := os.Getenv("RABBITMQ_PASS")
	if rabbitPass == "" {
		return nil, fmt.Errorf("RABBITMQ_PASS environment variable is required")
	}

	database, err := newDatabaseConfig()
	if err != nil {
		return nil, err
	}

	return &GlobalConfig{
		logLevel:       logLevel,
		host:           host,
		port:           port,
		backendAPIAddr: backendAddr,
		sessionFile:    sessionFile,
		rabbitHost:     rabbitHost,
		rabbitPort:     int32(rabbitPort),
		rabbitUser:     rabbitUser,
		rabbitPass:     rabbitPass,
		database:       *database,
	}, nil
}

func newDatabaseConfig() (*DatabaseConfig, error) {
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		return nil, fmt.Errorf("DB_HOST environment variable is required")
	}

	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		return nil, fmt.Errorf("DB_PORT environment variable is required")
	}
	dbPort, err := strconv.ParseInt(dbPortStr, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("DB_PORT must be a valid integer: %w", err)
	}

	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		return nil, fmt.Errorf("DB_USER environment variable is required")
	}

	dbPassword := os.Getenv("DB_PASSWORD")
	if dbPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD environment variable is required")
	}

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		return nil, fmt.Errorf("DB_NAME environment variable is required")
	}

	return &DatabaseConfig{
		host:     dbHost,
		port:     int32(dbPort),
		user:     dbUser,
		password: dbPassword,
		dbName:   dbName,
	}, nil
}

func (c *GlobalConfig) GetLogLevel() string       { return c.logLevel }
func (c *GlobalConfig) GetHost() string           { return c.host }
func (c *GlobalConfig) GetPort() string           { return c.port }
func (c *GlobalConfig) GetBackendAPIAddr() string { return c.backendAPIAddr }
func (c *GlobalConfig) GetSessionFile() string    { return c.sessionFile }
func (c *GlobalConfig) GetRabbitMQHost() string   { return c.rabbitHost }
func (c *GlobalConfig) GetRabbitMQPort() int32    { return c.rabbitPort }
func (c *GlobalConfig) GetRabbitMQUser() string   { return c.rabbitUser }
func (c *GlobalConfig) GetRabbitMQPass() string   { return c.rabbitPass }

// GetRabbitMQURL builds the AMQP dial URL from the configured parts.
func (c *GlobalConfig) GetRabbitMQURL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/", c.rabbitUser, c.rabbitPass, c.rabbitHost, c.rabbitPort)
}

// GetDatabaseConfig returns the PostgreSQL connection details.
func (c *GlobalConfig) GetDatabaseConfig() *DatabaseConfig {
	return &c.database
}
