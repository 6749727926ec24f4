package docking

import (
	"context"

	"github.com/go-kit/kit/endpoint"

	"github.com/Qalifah/harbor/endpoints"
	"github.com/Qalifah/harbor/ship"
)

type registerShipRequest struct {
	Spec ship.Spec
}

type registerShipResponse struct {
	ID  ship.ID
	Err error
}

func (r registerShipResponse) Failed() error { return r.Err }

func makeRegisterShipEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(registerShipRequest)
		id, err := s.RegisterShip(req.Spec)
		return registerShipResponse{ID: id, Err: err}, nil
	}
}

type dockShipRequest struct {
	ID ship.ID
}

type dockShipResponse struct {
	Err error
}

func (r dockShipResponse) Failed() error { return r.Err }

func makeDockShipEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(dockShipRequest)
		err := s.DockShip(req.ID)
		return dockShipResponse{Err: err}, nil
	}
}

type undockShipRequest struct {
	ID ship.ID
}

type undockShipResponse struct {
	Err error
}

func (r undockShipResponse) Failed() error { return r.Err }

func makeUndockShipEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(undockShipRequest)
		err := s.UndockShip(req.ID)
		return undockShipResponse{Err: err}, nil
	}
}

type listShipsRequest struct{}

type listShipsResponse struct {
	Ships []Ship
}

func makeListShipsEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		_ = request.(listShipsRequest)
		return listShipsResponse{Ships: s.Ships()}, nil
	}
}

// Set collects all of the endpoints that compose a docking service.
type Set struct {
	RegisterShipEndpoint endpoint.Endpoint
	DockShipEndpoint     endpoint.Endpoint
	UndockShipEndpoint   endpoint.Endpoint
	ListShipsEndpoint    endpoint.Endpoint
}

// NewSet returns a Set that wraps the provided server, and wires in all of the
// expected endpoint middlewares.
func NewSet(svc Service, opts endpoints.Options) Set {
	return Set{
		RegisterShipEndpoint: endpoints.Middleware("RegisterShip", opts)(makeRegisterShipEndpoint(svc)),
		DockShipEndpoint:     endpoints.Middleware("DockShip", opts)(makeDockShipEndpoint(svc)),
		UndockShipEndpoint:   endpoints.Middleware("UndockShip", opts)(makeUndockShipEndpoint(svc)),
		ListShipsEndpoint:    endpoints.Middleware("ListShips", opts)(makeListShipsEndpoint(svc)),
	}
}

// RegisterShip implements the service interface so Set can be used as a service
func (s Set) RegisterShip(spec ship.Spec) (ship.ID, error) {
	resp, err := s.RegisterShipEndpoint(context.Background(), registerShipRequest{Spec: spec})
	if err != nil {
		return "", err
	}
	response := resp.(registerShipResponse)
	return response.ID, response.Err
}

// DockShip implements the service interface so Set can be used as a service
func (s Set) DockShip(id ship.ID) error {
	resp, err := s.DockShipEndpoint(context.Background(), dockShipRequest{ID: id})
	if err != nil {
		return err
	}
	response := resp.(dockShipResponse)
	return response.Err
}

// UndockShip implements the service interface so Set can be used as a service
func (s Set) UndockShip(id ship.ID) error {
	resp, err := s.UndockShipEndpoint(context.Background(), undockShipRequest{ID: id})
	if err != nil {
		return err
	}
	response := resp.(undockShipResponse)
	return response.Err
}

// Ships implements the service interface so Set can be used as a service
func (s Set) Ships() []Ship {
	resp, err := s.ListShipsEndpoint(context.Background(), listShipsRequest{})
	if err != nil {
		return []Ship{}
	}
	response := resp.(listShipsResponse)
	return response.Ships
}
