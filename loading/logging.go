package loading

import (
	"time"

	"github.com/go-kit/kit/log"

	"github.com/Qalifah/harbor/cargo"
	"github.com/Qalifah/harbor/container"
)

type loggingService struct {
	logger log.Logger
	Service
}

// NewLoggingService returns a new instance of a logging Service.
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{logger, s}
}

func (s *loggingService) NewContainer(spec container.Spec) (serial string, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "new_container",
			"type", spec.Type,
			"max_capacity", spec.MaxCapacity,
			"serial", serial,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.Service.NewContainer(spec)
}

func (s *loggingService) LoadCargo(serial string, c cargo.Cargo) (err error) {
	defer func(begin time.Time) {
		kv := []interface{}{"method", "load", "serial", serial}
		if c != nil {
			kv = append(kv, "cargo", c.Name(), "weight", c.Weight())
		}
		s.logger.Log(append(kv, "took", time.Since(begin), "err", err)...)
	}(time.Now())
	return s.Service.LoadCargo(serial, c)
}

func (s *loggingService) UnloadCargo(serial string) (err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "unload",
			"serial", serial,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.Service.UnloadCargo(serial)
}

func (s *loggingService) ReportHazard(serial string) (msg string, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "report_hazard",
			"serial", serial,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.Service.ReportHazard(serial)
}

func (s *loggingService) Containers() []Container {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "list_containers",
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.Service.Containers()
}
