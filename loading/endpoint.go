package loading

import (
	"context"

	"github.com/go-kit/kit/endpoint"

	"github.com/Qalifah/harbor/cargo"
	"github.com/Qalifah/harbor/container"
	"github.com/Qalifah/harbor/endpoints"
)

type newContainerRequest struct {
	Spec container.Spec
}

type newContainerResponse struct {
	Serial string
	Err    error
}

func (r newContainerResponse) Failed() error { return r.Err }

func makeNewContainerEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(newContainerRequest)
		serial, err := s.NewContainer(req.Spec)
		return newContainerResponse{Serial: serial, Err: err}, nil
	}
}

type loadCargoRequest struct {
	Serial string
	Cargo  cargo.Cargo
}

type loadCargoResponse struct {
	Err error
}

func (r loadCargoResponse) Failed() error { return r.Err }

func makeLoadCargoEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(loadCargoRequest)
		err := s.LoadCargo(req.Serial, req.Cargo)
		return loadCargoResponse{Err: err}, nil
	}
}

type unloadCargoRequest struct {
	Serial string
}

type unloadCargoResponse struct {
	Err error
}

func (r unloadCargoResponse) Failed() error { return r.Err }

func makeUnloadCargoEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(unloadCargoRequest)
		err := s.UnloadCargo(req.Serial)
		return unloadCargoResponse{Err: err}, nil
	}
}

type containerWeightRequest struct {
	Serial string
}

type containerWeightResponse struct {
	Weight float64
	Err    error
}

func (r containerWeightResponse) Failed() error { return r.Err }

func makeContainerWeightEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(containerWeightRequest)
		w, err := s.ContainerWeight(req.Serial)
		return containerWeightResponse{Weight: w, Err: err}, nil
	}
}

type reportHazardRequest struct {
	Serial string
}

type reportHazardResponse struct {
	Message string
	Err     error
}

func (r reportHazardResponse) Failed() error { return r.Err }

func makeReportHazardEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(reportHazardRequest)
		msg, err := s.ReportHazard(req.Serial)
		return reportHazardResponse{Message: msg, Err: err}, nil
	}
}

type listContainersRequest struct{}

type listContainersResponse struct {
	Containers []Container
}

func makeListContainersEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		_ = request.(listContainersRequest)
		return listContainersResponse{Containers: s.Containers()}, nil
	}
}

type historyRequest struct {
	Serial string
}

type historyResponse struct {
	History cargo.HandlingHistory
}

func makeHistoryEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(historyRequest)
		return historyResponse{History: s.History(req.Serial)}, nil
	}
}

// Set collects all of the endpoints that compose a loading service.
type Set struct {
	NewContainerEndpoint    endpoint.Endpoint
	LoadCargoEndpoint       endpoint.Endpoint
	UnloadCargoEndpoint     endpoint.Endpoint
	ContainerWeightEndpoint endpoint.Endpoint
	ReportHazardEndpoint    endpoint.Endpoint
	ListContainersEndpoint  endpoint.Endpoint
	HistoryEndpoint         endpoint.Endpoint
}

// NewSet returns a Set that wraps the provided server, and wires in all of the
// expected endpoint middlewares.
func NewSet(svc Service, opts endpoints.Options) Set {
	return Set{
		NewContainerEndpoint:    endpoints.Middleware("NewContainer", opts)(makeNewContainerEndpoint(svc)),
		LoadCargoEndpoint:       endpoints.Middleware("LoadCargo", opts)(makeLoadCargoEndpoint(svc)),
		UnloadCargoEndpoint:     endpoints.Middleware("UnloadCargo", opts)(makeUnloadCargoEndpoint(svc)),
		ContainerWeightEndpoint: endpoints.Middleware("ContainerWeight", opts)(makeContainerWeightEndpoint(svc)),
		ReportHazardEndpoint:    endpoints.Middleware("ReportHazard", opts)(makeReportHazardEndpoint(svc)),
		ListContainersEndpoint:  endpoints.Middleware("ListContainers", opts)(makeListContainersEndpoint(svc)),
		HistoryEndpoint:         endpoints.Middleware("History", opts)(makeHistoryEndpoint(svc)),
	}
}

// NewContainer implements the service interface so Set can be used as a service
func (s Set) NewContainer(spec container.Spec) (string, error) {
	resp, err := s.NewContainerEndpoint(context.Background(), newContainerRequest{Spec: spec})
	if err != nil {
		return "", err
	}
	response := resp.(newContainerResponse)
	return response.Serial, response.Err
}

// LoadCargo implements the service interface so Set can be used as a service
func (s Set) LoadCargo(serial string, c cargo.Cargo) error {
	resp, err := s.LoadCargoEndpoint(context.Background(), loadCargoRequest{Serial: serial, Cargo: c})
	if err != nil {
		return err
	}
	response := resp.(loadCargoResponse)
	return response.Err
}

// UnloadCargo implements the service interface so Set can be used as a service
func (s Set) UnloadCargo(serial string) error {
	resp, err := s.UnloadCargoEndpoint(context.Background(), unloadCargoRequest{Serial: serial})
	if err != nil {
		return err
	}
	response := resp.(unloadCargoResponse)
	return response.Err
}

// ContainerWeight implements the service interface so Set can be used as a service
func (s Set) ContainerWeight(serial string) (float64, error) {
	resp, err := s.ContainerWeightEndpoint(context.Background(), containerWeightRequest{Serial: serial})
	if err != nil {
		return 0, err
	}
	response := resp.(containerWeightResponse)
	return response.Weight, response.Err
}

// ReportHazard implements the service interface so Set can be used as a service
func (s Set) ReportHazard(serial string) (string, error) {
	resp, err := s.ReportHazardEndpoint(context.Background(), reportHazardRequest{Serial: serial})
	if err != nil {
		return "", err
	}
	response := resp.(reportHazardResponse)
	return response.Message, response.Err
}

// Containers implements the service interface so Set can be used as a service
func (s Set) Containers() []Container {
	resp, err := s.ListContainersEndpoint(context.Background(), listContainersRequest{})
	if err != nil {
		return []Container{}
	}
	response := resp.(listContainersResponse)
	return response.Containers
}

// History implements the service interface so Set can be used as a service
func (s Set) History(serial string) cargo.HandlingHistory {
	resp, err := s.HistoryEndpoint(context.Background(), historyRequest{Serial: serial})
	if err != nil {
		return cargo.HandlingHistory{}
	}
	response := resp.(historyResponse)
	return response.History
}
