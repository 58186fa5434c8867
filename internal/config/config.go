package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StorageDynamoDB = "dynamodb"
)

const (
	defaultPort                 = "8080"
	defaultLocalStatePath       = "./foampro-local.db"
	defaultCrewSyncInterval     = 45 * time.Second
	defaultDiscrepancyTolerance = 0.05

	defaultOpenCellYield   = 16000
	defaultClosedCellYield = 6600
	defaultOpenCellCost    = 2000
	defaultClosedCellCost  = 2600
	defaultLaborRate       = 85
)

// Tables holds the DynamoDB table names used when STORAGE_DRIVER=dynamodb.
type Tables struct {
	Estimates      string
	Customers      string
	Warehouse      string
	Equipment      string
	PurchaseOrders string
	UsageLog       string
	Payments       string
}

// Estimator holds the default yields and unit costs applied to new calculations.
type Estimator struct {
	OpenCellYield   float64
	ClosedCellYield float64
	OpenCellCost    float64
	ClosedCellCost  float64
	LaborRate       float64
}

// Config holds application configuration sourced from environment variables.
type Config struct {
	Port          string
	LogLevel      string
	LogFormat     string
	StorageDriver string
	Tables        Tables

	LocalStatePath string

	ScriptBackendURL string
	EmailServiceURL  string
	SpreadsheetID    string
	DriveFolderID    string
	CompanyName      string
	CrewPin          string

	MercadoPagoAccessToken     string
	MercadoPagoTestPayerEmail  string
	MercadoPagoTestPayerUserID string
	PaymentGatewayMock         bool

	CrewSyncInterval     time.Duration
	DiscrepancyTolerance float64
	Estimator            Estimator
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: production injects real environment variables.
	_ = godotenv.Load()

	cfg := Config{
		Port:          getenvDefault("PORT", defaultPort),
		LogLevel:      getenvDefault("LOG_LEVEL", "info"),
		LogFormat:     getenvDefault("LOG_FORMAT", "text"),
		StorageDriver: strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageMemory)),
		Tables: Tables{
			Estimates:      getenvDefault("ESTIMATES_TABLE", "estimates"),
			Customers:      getenvDefault("CUSTOMERS_TABLE", "customers"),
			Warehouse:      getenvDefault("WAREHOUSE_TABLE", "warehouse_items"),
			Equipment:      getenvDefault("EQUIPMENT_TABLE", "equipment"),
			PurchaseOrders: getenvDefault("PURCHASE_ORDERS_TABLE", "purchase_orders"),
			UsageLog:       getenvDefault("USAGE_LOG_TABLE", "material_usage_log"),
			Payments:       getenvDefault("PAYMENTS_TABLE", "payments"),
		},
		LocalStatePath:         getenvDefault("LOCAL_STATE_PATH", defaultLocalStatePath),
		ScriptBackendURL:       strings.TrimSpace(os.Getenv("SCRIPT_BACKEND_URL")),
		EmailServiceURL:        strings.TrimSpace(os.Getenv("EMAIL_SERVICE_URL")),
		SpreadsheetID:          os.Getenv("SPREADSHEET_ID"),
		DriveFolderID:          os.Getenv("DRIVE_FOLDER_ID"),
		CompanyName:            getenvDefault("COMPANY_NAME", "RFE Foam"),
		CrewPin:                strings.TrimSpace(os.Getenv("CREW_PIN")),
		MercadoPagoAccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		PaymentGatewayMock:     isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || isTruthy(os.Getenv("MERCADOPAGO_MOCK")),
		CrewSyncInterval:       getenvDuration("CREW_SYNC_INTERVAL", defaultCrewSyncInterval),
		DiscrepancyTolerance:   getenvFloat("DISCREPANCY_TOLERANCE", defaultDiscrepancyTolerance),
		Estimator: Estimator{
			OpenCellYield:   getenvFloat("OPEN_CELL_YIELD", defaultOpenCellYield),
			ClosedCellYield: getenvFloat("CLOSED_CELL_YIELD", defaultClosedCellYield),
			OpenCellCost:    getenvFloat("OPEN_CELL_COST", defaultOpenCellCost),
			ClosedCellCost:  getenvFloat("CLOSED_CELL_COST", defaultClosedCellCost),
			LaborRate:       getenvFloat("LABOR_RATE", defaultLaborRate),
		},
	}

	cfg.MercadoPagoTestPayerEmail = strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	cfg.MercadoPagoTestPayerUserID = strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))

	if cfg.StorageDriver != StorageMemory && cfg.StorageDriver != StorageDynamoDB {
		slog.Warn("unknown STORAGE_DRIVER, falling back to memory", "driver", cfg.StorageDriver)
		cfg.StorageDriver = StorageMemory
	}
	// Yields divide board-feet; they must stay positive.
	if cfg.Estimator.OpenCellYield <= 0 {
		slog.Warn("OPEN_CELL_YIELD must be positive, using default")
		cfg.Estimator.OpenCellYield = defaultOpenCellYield
	}
	if cfg.Estimator.ClosedCellYield <= 0 {
		slog.Warn("CLOSED_CELL_YIELD must be positive, using default")
		cfg.Estimator.ClosedCellYield = defaultClosedCellYield
	}
	if cfg.ScriptBackendURL == "" {
		slog.Warn("SCRIPT_BACKEND_URL is not set; crew sync and photo uploads are disabled")
	}
	if cfg.EmailServiceURL == "" {
		slog.Warn("EMAIL_SERVICE_URL is not set; document and welcome emails are disabled")
	}

	return cfg
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		slog.Warn("invalid numeric env value, using default", "key", key, "value", raw)
		return def
	}
	return v
}

func getenvDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		slog.Warn("invalid duration env value, using default", "key", key, "value", raw)
		return def
	}
	return v
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
