package docking

import (
	"time"

	"github.com/go-kit/kit/log"

	"github.com/Qalifah/harbor/ship"
)

type loggingService struct {
	logger log.Logger
	Service
}

// NewLoggingService returns a new instance of a logging Service.
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{logger, s}
}

func (s *loggingService) RegisterShip(spec ship.Spec) (id ship.ID, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "register_ship",
			"name", spec.Name,
			"max_containers", spec.MaxContainers,
			"max_weight", spec.MaxWeight,
			"ship", id,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.Service.RegisterShip(spec)
}

func (s *loggingService) DockShip(id ship.ID) (err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "dock",
			"ship", id,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.Service.DockShip(id)
}

func (s *loggingService) UndockShip(id ship.ID) (err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "undock",
			"ship", id,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.Service.UndockShip(id)
}
