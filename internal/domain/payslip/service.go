package payslip

import (
	"context"
	"time"

	"go.uber.org/zap"

	"idms/internal/platform/metrics"
)

type Service struct {
	renderer *Renderer
	logger   *zap.Logger
	metrics  *metrics.Collector
}

func NewService(renderer *Renderer, logger *zap.Logger, collector *metrics.Collector) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{renderer: renderer, logger: logger, metrics: collector}
}

// Generate renders rec. A cancelled context aborts before any drawing
// starts; once started the render runs to completion.
func (s *Service) Generate(ctx context.Context, rec Record) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	start := time.Now()
	content, err := s.renderer.Render(rec)
	elapsed := time.Since(start)
	if s.metrics != nil {
		s.metrics.RecordRender(len(content), elapsed, err)
	}
	if err != nil {
		s.logger.Warn("payslip render failed", zap.Error(err), zap.String("month", rec.Month))
		return Document{}, err
	}

	doc := Document{Filename: Filename(rec), Content: content}
	s.logger.Debug("payslip rendered",
		zap.String("filename", doc.Filename),
		zap.Int("bytes", len(content)),
		zap.Duration("elapsed", elapsed),
	)
	return doc, nil
}
