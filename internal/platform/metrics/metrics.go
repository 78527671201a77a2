package metrics

import (
	"sync/atomic"
	"time"
)

type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	rateLimited     uint64
	totalDurationMs uint64

	rendered       uint64
	renderFailures uint64
	renderedBytes  uint64
	renderMicros   uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	if status == 429 {
		atomic.AddUint64(&c.rateLimited, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

// RecordRender counts one payslip render attempt.
func (c *Collector) RecordRender(size int, duration time.Duration, err error) {
	if err != nil {
		atomic.AddUint64(&c.renderFailures, 1)
		return
	}
	atomic.AddUint64(&c.rendered, 1)
	atomic.AddUint64(&c.renderedBytes, uint64(size))
	atomic.AddUint64(&c.renderMicros, uint64(duration.Microseconds()))
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	limited := atomic.LoadUint64(&c.rateLimited)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	rendered := atomic.LoadUint64(&c.rendered)
	failures := atomic.LoadUint64(&c.renderFailures)
	renderedBytes := atomic.LoadUint64(&c.renderedBytes)
	renderMicros := atomic.LoadUint64(&c.renderMicros)

	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	avgRender := float64(0)
	if rendered > 0 {
		avgRender = float64(renderMicros) / float64(rendered) / 1000
	}
	return map[string]any{
		"requestsTotal":       total,
		"errorsTotal":         errs,
		"rateLimitedTotal":    limited,
		"avgDurationMs":       avg,
		"totalDurationMs":     totalMs,
		"payslipsRendered":    rendered,
		"payslipRenderFailed": failures,
		"payslipBytesTotal":   renderedBytes,
		"avgPayslipRenderMs":  avgRender,
	}
}
