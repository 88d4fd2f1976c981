package bnctx

import (
	"testing"
)

func TestContextMetrics(t *testing.T) {
	c, _ := newTestContext()
	defer c.Release()

	// Test initial state
	if c.Utilization() != 0 {
		t.Errorf("Initial Utilization = %f, want 0", c.Utilization())
	}
	m := c.Metrics()
	if m != (ContextMetrics{}) {
		t.Errorf("Initial Metrics = %+v, want zero", m)
	}

	c.Begin()
	c.Get()
	c.Get()
	c.Begin()
	c.Get()
	c.Get()
	c.End()

	m = c.Metrics()
	if m.Used != 2 {
		t.Errorf("Metrics.Used = %d, want 2", m.Used)
	}
	if m.PeakUsed != 4 {
		t.Errorf("Metrics.PeakUsed = %d, want 4", m.PeakUsed)
	}
	if m.PoolSize != 4 {
		t.Errorf("Metrics.PoolSize = %d, want 4", m.PoolSize)
	}
	if m.Depth != 1 {
		t.Errorf("Metrics.Depth = %d, want 1", m.Depth)
	}
	if m.MarkerCapacity != DefaultMarkerCap {
		t.Errorf("Metrics.MarkerCapacity = %d, want %d", m.MarkerCapacity, DefaultMarkerCap)
	}
	if m.Failed {
		t.Error("Metrics.Failed = true, want false")
	}
	if m.Utilization != 0.5 {
		t.Errorf("Metrics.Utilization = %f, want 0.5", m.Utilization)
	}
	c.End()

	if c.Utilization() != 0 {
		t.Errorf("Utilization after End = %f, want 0", c.Utilization())
	}
	if c.Metrics().PeakUsed != 4 {
		t.Errorf("PeakUsed after End = %d, want 4", c.Metrics().PeakUsed)
	}
}

func TestContextMetricsAfterFailure(t *testing.T) {
	c, _ := newTestContext(WithConfig(Config{MarkerInitialCap: 1, MaxTemporaries: 1}))
	defer c.Release()

	c.Begin()
	c.Get()
	c.Get()

	m := c.Metrics()
	if !m.Failed {
		t.Error("Metrics.Failed = false, want true")
	}
	if m.PoolSize != 1 || m.Used != 1 {
		t.Errorf("Metrics pool/used = %d/%d, want 1/1", m.PoolSize, m.Used)
	}
}

func TestContextMetricsAfterRelease(t *testing.T) {
	c, _ := newTestContext()
	c.Begin()
	c.Get()
	c.End()

	c.Release()

	if c.PoolSize() != 0 {
		t.Errorf("PoolSize after Release = %d, want 0", c.PoolSize())
	}
	if c.Used() != 0 {
		t.Errorf("Used after Release = %d, want 0", c.Used())
	}
	if c.Metrics().MarkerCapacity != 0 {
		t.Errorf("MarkerCapacity after Release = %d, want 0", c.Metrics().MarkerCapacity)
	}
}
