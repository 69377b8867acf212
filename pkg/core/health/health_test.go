package health

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	sslog "github.com/msto63/smallstring/foundation/core/log"
	"github.com/msto63/smallstring/pkg/bufpool"
)

func TestCheckFunc(t *testing.T) {
	fn := CheckFunc(func(ctx context.Context) CheckResult {
		return CheckResult{Status: StatusHealthy}
	})

	if fn.Name() != "unknown" {
		t.Errorf("Name() = %v, want unknown", fn.Name())
	}
	if result := fn.Check(context.Background()); result.Status != StatusHealthy {
		t.Errorf("Status = %v, want healthy", result.Status)
	}
}

func TestRegistry_OverallStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		want     Status
	}{
		{"all healthy", []Status{StatusHealthy, StatusHealthy}, StatusHealthy},
		{"one degraded", []Status{StatusHealthy, StatusDegraded}, StatusDegraded},
		{"unhealthy wins", []Status{StatusDegraded, StatusUnhealthy, StatusHealthy}, StatusUnhealthy},
		{"missing status", []Status{StatusHealthy, ""}, StatusDegraded},
		{"no checks", nil, StatusHealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewRegistry("smallstring", "0.2.0")
			for i, status := range tt.statuses {
				status := status
				registry.RegisterFunc(string(rune('a'+i)), func(ctx context.Context) CheckResult {
					return CheckResult{Status: status}
				})
			}

			report := registry.Check(context.Background())
			if report.Status != tt.want {
				t.Errorf("Status = %v, want %v", report.Status, tt.want)
			}
			if report.Healthy() != (tt.want != StatusUnhealthy) {
				t.Errorf("Healthy() = %v for %v", report.Healthy(), report.Status)
			}
		})
	}
}

func TestRegistry_ReportIsSortedAndNamed(t *testing.T) {
	registry := NewRegistry("smallstring", "0.2.0")
	for _, name := range []string{"roundtrip", "config", "pool"} {
		registry.RegisterFunc(name, func(ctx context.Context) CheckResult {
			return CheckResult{Status: StatusHealthy}
		})
	}
	registry.Unregister("config")

	report := registry.Check(context.Background())
	if len(report.Checks) != 2 {
		t.Fatalf("Checks count = %v, want 2", len(report.Checks))
	}
	if report.Checks[0].Name != "pool" || report.Checks[1].Name != "roundtrip" {
		t.Errorf("check order = %s, %s", report.Checks[0].Name, report.Checks[1].Name)
	}
	if report.Checks[0].Timestamp.IsZero() {
		t.Error("Timestamp not set")
	}
	if report.Service != "smallstring" || report.Version != "0.2.0" {
		t.Errorf("report = %s", report)
	}
}

func TestRegistry_ConcurrentChecks(t *testing.T) {
	registry := NewRegistry("smallstring", "0.2.0")

	var counter int32
	for i := 0; i < 5; i++ {
		registry.RegisterFunc("check"+string(rune('A'+i)), func(ctx context.Context) CheckResult {
			atomic.AddInt32(&counter, 1)
			time.Sleep(10 * time.Millisecond)
			return CheckResult{Status: StatusHealthy}
		})
	}

	start := time.Now()
	report := registry.CheckWithTimeout(5 * time.Second)
	duration := time.Since(start)

	if atomic.LoadInt32(&counter) != 5 {
		t.Errorf("Counter = %v, want 5", counter)
	}
	if duration > 100*time.Millisecond {
		t.Errorf("Duration = %v, expected concurrent execution", duration)
	}
	if len(report.Checks) != 5 {
		t.Errorf("Checks count = %v, want 5", len(report.Checks))
	}
}

func TestAlwaysHealthy(t *testing.T) {
	checker := AlwaysHealthy("config")
	if checker.Name() != "config" {
		t.Errorf("Name() = %v, want config", checker.Name())
	}
	if result := checker.Check(context.Background()); result.Status != StatusHealthy {
		t.Errorf("Status = %v, want healthy", result.Status)
	}
}

func TestPoolCheck(t *testing.T) {
	pool := bufpool.New(bufpool.Config{MinClass: 32, MaxClass: 1024, Logger: sslog.NewNop()})
	check := PoolCheck("pool", pool, 1)

	result := check.Check(context.Background())
	if result.Status != StatusHealthy {
		t.Errorf("empty pool status = %v (%s)", result.Status, result.Message)
	}

	a, b := pool.Get(10), pool.Get(10)
	result = check.Check(context.Background())
	if result.Status != StatusDegraded {
		t.Errorf("two live buffers status = %v, want degraded", result.Status)
	}
	if result.Details["live"] != int64(2) {
		t.Errorf("Details[live] = %v", result.Details["live"])
	}

	if err := a.Release(); err != nil {
		t.Fatal(err)
	}
	if err := b.Release(); err != nil {
		t.Fatal(err)
	}
	_ = b.Release()

	result = check.Check(context.Background())
	if result.Status != StatusUnhealthy {
		t.Errorf("double release status = %v, want unhealthy", result.Status)
	}
	if result.Message != "1 buffers released twice" {
		t.Errorf("Message = %q", result.Message)
	}
}

func TestPoolCheck_NoLimit(t *testing.T) {
	pool := bufpool.New(bufpool.Config{MinClass: 32, MaxClass: 1024, Logger: sslog.NewNop()})
	buf := pool.Get(100)
	defer buf.Release()

	if result := PoolCheck("pool", pool, -1).Check(context.Background()); result.Status != StatusHealthy {
		t.Errorf("Status = %v, want healthy", result.Status)
	}
}
