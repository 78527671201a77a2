package metrics

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCollectorRecordsRequests(t *testing.T) {
	c := New()
	c.Record(http.StatusOK, 10*time.Millisecond)
	c.Record(http.StatusInternalServerError, 30*time.Millisecond)
	c.Record(http.StatusTooManyRequests, 0)

	snap := c.Snapshot()
	assert.Equal(t, uint64(3), snap["requestsTotal"])
	assert.Equal(t, uint64(1), snap["errorsTotal"])
	assert.Equal(t, uint64(1), snap["rateLimitedTotal"])
	assert.Equal(t, uint64(40), snap["totalDurationMs"])
}

func TestCollectorRecordsRenders(t *testing.T) {
	c := New()
	c.RecordRender(1200, 2*time.Millisecond, nil)
	c.RecordRender(800, 4*time.Millisecond, nil)
	c.RecordRender(0, time.Millisecond, errors.New("boom"))

	snap := c.Snapshot()
	assert.Equal(t, uint64(2), snap["payslipsRendered"])
	assert.Equal(t, uint64(1), snap["payslipRenderFailed"])
	assert.Equal(t, uint64(2000), snap["payslipBytesTotal"])
	assert.InDelta(t, 3.0, snap["avgPayslipRenderMs"], 0.001)
}
