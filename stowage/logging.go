package stowage

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

func (s *loggingService) StowContainer(id ship.ID, serial string) (err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "stow",
			"ship", id,
			"serial", serial,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.Service.StowContainer(id, serial)
}

func (s *loggingService) StowContainers(id ship.ID, serials []string) (err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "stow_batch",
			"ship", id,
			"count", len(serials),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.Service.StowContainers(id, serials)
}

func (s *loggingService) RemoveContainer(id ship.ID, serial string) (err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "remove",
			"ship", id,
			"serial", serial,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.Service.RemoveContainer(id, serial)
}

func (s *loggingService) ShipWeight(id ship.ID) (weight float64, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "ship_weight",
			"ship", id,
			"weight", weight,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.Service.ShipWeight(id)
}
