package stowage

import (
	"context"

	"github.com/go-kit/kit/endpoint"

	"github.com/Qalifah/harbor/endpoints"
	"github.com/Qalifah/harbor/ship"
)

type stowContainerRequest struct {
	ShipID ship.ID
	Serial string
}

type stowContainerResponse struct {
	Err error
}

func (r stowContainerResponse) Failed() error { return r.Err }

func makeStowContainerEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(stowContainerRequest)
		err := s.StowContainer(req.ShipID, req.Serial)
		return stowContainerResponse{Err: err}, nil
	}
}

type stowContainersRequest struct {
	ShipID  ship.ID
	Serials []string
}

type stowContainersResponse struct {
	Err error
}

func (r stowContainersResponse) Failed() error { return r.Err }

func makeStowContainersEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(stowContainersRequest)
		err := s.StowContainers(req.ShipID, req.Serials)
		return stowContainersResponse{Err: err}, nil
	}
}

type removeContainerRequest struct {
	ShipID ship.ID
	Serial string
}

type removeContainerResponse struct {
	Err error
}

func (r removeContainerResponse) Failed() error { return r.Err }

func makeRemoveContainerEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(removeContainerRequest)
		err := s.RemoveContainer(req.ShipID, req.Serial)
		return removeContainerResponse{Err: err}, nil
	}
}

type shipWeightRequest struct {
	ShipID ship.ID
}

type shipWeightResponse struct {
	Weight float64
	Err    error
}

func (r shipWeightResponse) Failed() error { return r.Err }

func makeShipWeightEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(shipWeightRequest)
		w, err := s.ShipWeight(req.ShipID)
		return shipWeightResponse{Weight: w, Err: err}, nil
	}
}

type shipInfoRequest struct {
	ShipID ship.ID
}

type shipInfoResponse struct {
	Info string
	Err  error
}

func (r shipInfoResponse) Failed() error { return r.Err }

func makeShipInfoEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(shipInfoRequest)
		info, err := s.ShipInfo(req.ShipID)
		return shipInfoResponse{Info: info, Err: err}, nil
	}
}

// Set collects all of the endpoints that compose a stowage service.
type Set struct {
	StowContainerEndpoint   endpoint.Endpoint
	StowContainersEndpoint  endpoint.Endpoint
	RemoveContainerEndpoint endpoint.Endpoint
	ShipWeightEndpoint      endpoint.Endpoint
	ShipInfoEndpoint        endpoint.Endpoint
}

// NewSet returns a Set that wraps the provided server, and wires in all of the
// expected endpoint middlewares.
func NewSet(svc Service, opts endpoints.Options) Set {
	return Set{
		StowContainerEndpoint:   endpoints.Middleware("StowContainer", opts)(makeStowContainerEndpoint(svc)),
		StowContainersEndpoint:  endpoints.Middleware("StowContainers", opts)(makeStowContainersEndpoint(svc)),
		RemoveContainerEndpoint: endpoints.Middleware("RemoveContainer", opts)(makeRemoveContainerEndpoint(svc)),
		ShipWeightEndpoint:      endpoints.Middleware("ShipWeight", opts)(makeShipWeightEndpoint(svc)),
		ShipInfoEndpoint:        endpoints.Middleware("ShipInfo", opts)(makeShipInfoEndpoint(svc)),
	}
}

// StowContainer implements the service interface so Set can be used as a service
func (s Set) StowContainer(id ship.ID, serial string) error {
	resp, err := s.StowContainerEndpoint(context.Background(), stowContainerRequest{ShipID: id, Serial: serial})
	if err != nil {
		return err
	}
	response := resp.(stowContainerResponse)
	return response.Err
}

// StowContainers implements the service interface so Set can be used as a service
func (s Set) StowContainers(id ship.ID, serials []string) error {
	resp, err := s.StowContainersEndpoint(context.Background(), stowContainersRequest{ShipID: id, Serials: serials})
	if err != nil {
		return err
	}
	response := resp.(stowContainersResponse)
	return response.Err
}

// RemoveContainer implements the service interface so Set can be used as a service
func (s Set) RemoveContainer(id ship.ID, serial string) error {
	resp, err := s.RemoveContainerEndpoint(context.Background(), removeContainerRequest{ShipID: id, Serial: serial})
	if err != nil {
		return err
	}
	response := resp.(removeContainerResponse)
	return response.Err
}

// ShipWeight implements the service interface so Set can be used as a service
func (s Set) ShipWeight(id ship.ID) (float64, error) {
	resp, err := s.ShipWeightEndpoint(context.Background(), shipWeightRequest{ShipID: id})
	if err != nil {
		return 0, err
	}
	response := resp.(shipWeightResponse)
	return response.Weight, response.Err
}

// ShipInfo implements the service interface so Set can be used as a service
func (s Set) ShipInfo(id ship.ID) (string, error) {
	resp, err := s.ShipInfoEndpoint(context.Background(), shipInfoRequest{ShipID: id})
	if err != nil {
		return "", err
	}
	response := resp.(shipInfoResponse)
	return response.Info, response.Err
}
