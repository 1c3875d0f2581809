package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-farol/internal/app"
	"github.com/MKhiriev/go-farol/internal/service"
	"github.com/MKhiriev/go-farol/models"
)

type errorMapping struct {
	status  int
	code    string
	message string
}

var kindMapping = map[service.Kind]errorMapping{
	service.KindNotFound:            {http.StatusNotFound, app.CodeNotFound, app.MsgNotFound},
	service.KindInvalidQuery:        {http.StatusBadRequest, app.CodeInvalidQuery, app.MsgInvalidQuery},
	service.KindValidation:          {http.StatusUnprocessableEntity, app.CodeValidationError, app.MsgInvalidDataProvided},
	service.KindUnauthorized:        {http.StatusUnauthorized, app.CodeUnauthorized, app.MsgUnauthorized},
	service.KindUpstreamUnavailable: {http.StatusServiceUnavailable, app.CodeServiceDependencyUnavailable, app.MsgUpstreamUnavailable},
	service.KindCalculation:         {http.StatusInternalServerError, app.CodeCalculationFailed, app.MsgCalculationFailed},
}

var (
	internalMapping         = errorMapping{http.StatusInternalServerError, app.CodeInternalError, app.MsgInternalServerError}
	routeNotFoundMapping    = errorMapping{http.StatusNotFound, app.CodeNotFound, app.MsgNotFound}
	methodNotAllowedMapping = errorMapping{http.StatusMethodNotAllowed, app.CodeMethodNotAllowed, app.MsgMethodNotAllowed}
)

// describeError maps err to a status code and the error payload without the
// correlation ID. Only domain errors expose their detail; anything
// unrecognised becomes INTERNAL_ERROR with a generic message.
func describeError(err error) (int, models.ErrorResponse) {
	switch {
	case errors.Is(err, ErrRouteNotFound):
		return routeNotFoundMapping.response()
	case errors.Is(err, ErrMethodNotAllowed):
		return methodNotAllowedMapping.response()
	}

	var domainErr *service.DomainError
	if !errors.As(err, &domainErr) {
		return internalMapping.response()
	}

	mapping, ok := kindMapping[domainErr.Kind]
	if !ok {
		return internalMapping.response()
	}

	status, body := mapping.response()
	if domainErr.Detail != "" {
		body.Message = domainErr.Detail
	}
	body.Field = domainErr.Field

	return status, body
}

func (m errorMapping) response() (int, models.ErrorResponse) {
	return m.status, models.ErrorResponse{ErrorCode: m.code, Message: m.message}
}
