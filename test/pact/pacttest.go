//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "wastewise-api"
	ConsumerName = "collector-portal"

	StateOrdersBaseline = "orders baseline"
	StateOrderExists    = "order 6f1c2a54-8d3e-4b7a-9c11-2f0d5e8a7b31 exists"
	StateOrderMissing   = "no order 0b9e4d6c-1a2f-4e3b-8c7d-5a6b7c8d9e0f"
)

const (
	ExistingOrderID = "6f1c2a54-8d3e-4b7a-9c11-2f0d5e8a7b31"
	MissingOrderID  = "0b9e4d6c-1a2f-4e3b-8c7d-5a6b7c8d9e0f"

	ExampleCompany          = "Green Loop Recyclers"
	ExampleDistributorName  = "Nimal Perera"
	ExampleDistributorEmail = "nimal@greenloop.lk"
	ExampleScheduledDate    = "2099-01-15T00:00:00Z"
	ExampleQuantity         = 12.5
)

// ExampleOrderTypes lists the waste categories used across interactions.
func ExampleOrderTypes() []string {
	return []string{"plastic", "paper"}
}

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the pact file written by the collector portal consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
