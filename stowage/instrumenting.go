package stowage

import (
	"time"

	"github.com/go-kit/kit/metrics"

	"github.com/Qalifah/harbor/ship"
)

type instrumentingService struct {
	requestCount   metrics.Counter
	requestLatency metrics.Histogram
	rejected       metrics.Counter
	Service
}

// NewInstrumentingService returns an instance of an instrumenting Service.
// rejected counts the operations that failed.
func NewInstrumentingService(counter, rejected metrics.Counter, latency metrics.Histogram, s Service) Service {
	return &instrumentingService{
		requestCount:   counter,
		requestLatency: latency,
		rejected:       rejected,
		Service:        s,
	}
}

func (s *instrumentingService) observe(method string, begin time.Time, err error) {
	s.requestCount.With("method", method).Add(1)
	s.requestLatency.With("method", method).Observe(time.Since(begin).Seconds())
	if err != nil {
		s.rejected.Add(1)
	}
}

func (s *instrumentingService) StowContainer(id ship.ID, serial string) (err error) {
	defer func(begin time.Time) { s.observe("stow", begin, err) }(time.Now())
	return s.Service.StowContainer(id, serial)
}

func (s *instrumentingService) StowContainers(id ship.ID, serials []string) (err error) {
	defer func(begin time.Time) { s.observe("stow_batch", begin, err) }(time.Now())
	return s.Service.StowContainers(id, serials)
}

func (s *instrumentingService) RemoveContainer(id ship.ID, serial string) (err error) {
	defer func(begin time.Time) { s.observe("remove", begin, err) }(time.Now())
	return s.Service.RemoveContainer(id, serial)
}
