package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("OPEN_CELL_YIELD", "")
	t.Setenv("CREW_SYNC_INTERVAL", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("Port=%q, want 8080", cfg.Port)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Fatalf("StorageDriver=%q, want memory", cfg.StorageDriver)
	}
	if cfg.Estimator.OpenCellYield != 16000 {
		t.Fatalf("OpenCellYield=%v, want 16000", cfg.Estimator.OpenCellYield)
	}
	if cfg.CrewSyncInterval != 45*time.Second {
		t.Fatalf("CrewSyncInterval=%v, want 45s", cfg.CrewSyncInterval)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "DynamoDB")
	t.Setenv("CLOSED_CELL_YIELD", "5000")
	t.Setenv("DISCREPANCY_TOLERANCE", "0.12")
	t.Setenv("CREW_SYNC_INTERVAL", "10s")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "yes")

	cfg := Load()

	if cfg.StorageDriver != StorageDynamoDB {
		t.Fatalf("StorageDriver=%q, want dynamodb", cfg.StorageDriver)
	}
	if cfg.Estimator.ClosedCellYield != 5000 {
		t.Fatalf("ClosedCellYield=%v, want 5000", cfg.Estimator.ClosedCellYield)
	}
	if cfg.DiscrepancyTolerance != 0.12 {
		t.Fatalf("DiscrepancyTolerance=%v, want 0.12", cfg.DiscrepancyTolerance)
	}
	if cfg.CrewSyncInterval != 10*time.Second {
		t.Fatalf("CrewSyncInterval=%v, want 10s", cfg.CrewSyncInterval)
	}
	if !cfg.PaymentGatewayMock {
		t.Fatalf("expected payment gateway mock enabled")
	}
}

func TestLoad_RejectsNonPositiveYield(t *testing.T) {
	t.Setenv("OPEN_CELL_YIELD", "0")
	t.Setenv("STORAGE_DRIVER", "postgres")

	cfg := Load()

	if cfg.Estimator.OpenCellYield != 16000 {
		t.Fatalf("OpenCellYield=%v, want default", cfg.Estimator.OpenCellYield)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Fatalf("StorageDriver=%q, want memory fallback", cfg.StorageDriver)
	}
}
