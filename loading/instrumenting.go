package loading

import (
	"time"

	"github.com/go-kit/kit/metrics"

	"github.com/Qalifah/harbor/cargo"
	"github.com/Qalifah/harbor/container"
)

type instrumentingService struct {
	requestCount   metrics.Counter
	requestLatency metrics.Histogram
	loadedWeight   metrics.Counter
	Service
}

// NewInstrumentingService returns an instance of an instrumenting Service.
// loadedWeight accumulates the weight of every successful load.
func NewInstrumentingService(counter, loadedWeight metrics.Counter, latency metrics.Histogram, s Service) Service {
	return &instrumentingService{
		requestCount:   counter,
		requestLatency: latency,
		loadedWeight:   loadedWeight,
		Service:        s,
	}
}

func (s *instrumentingService) observe(method string, begin time.Time) {
	s.requestCount.With("method", method).Add(1)
	s.requestLatency.With("method", method).Observe(time.Since(begin).Seconds())
}

func (s *instrumentingService) NewContainer(spec container.Spec) (string, error) {
	defer s.observe("new_container", time.Now())
	return s.Service.NewContainer(spec)
}

func (s *instrumentingService) LoadCargo(serial string, c cargo.Cargo) error {
	defer s.observe("load", time.Now())
	err := s.Service.LoadCargo(serial, c)
	if err == nil {
		s.loadedWeight.Add(float64(c.Weight()))
	}
	return err
}

func (s *instrumentingService) UnloadCargo(serial string) error {
	defer s.observe("unload", time.Now())
	return s.Service.UnloadCargo(serial)
}

func (s *instrumentingService) ReportHazard(serial string) (string, error) {
	defer s.observe("report_hazard", time.Now())
	return s.Service.ReportHazard(serial)
}
