package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-farol/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to specify which fields should be validated.
// They are also the names reported in [FieldError.Field], so they match the
// JSON or query parameter names callers send.
const (
	FieldQuery = "query"
	FieldEmail = "email"
	FieldLimit = "limit"
	FieldID    = "id"
)

// Limits on caller input.
const (
	MaxQueryLength = 32 * 1024
	MaxEventsLimit = 500
)

// RequestValidator implements the Validator interface for the request
// models of the HTTP API: WorkItemQueryRequest, TokenRequest and
// WebhookEventsQuery. Plain int64 values are validated as work item ids.
//
// It supports both value and pointer receivers for every model type and
// allows optional field-level scoping via variadic field name arguments.
type RequestValidator struct {
	tags *validator.Validate
}

// NewRequestValidator constructs a new RequestValidator and returns it as
// the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{tags: validator.New()}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of value. Returns [ErrUnsupportedType] for any
// other type, and a *[FieldError] when a rule fails.
func (v *RequestValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch request := value.(type) {
	case models.WorkItemQueryRequest:
		return v.validateWorkItemQuery(ctx, request, fields...)
	case *models.WorkItemQueryRequest:
		return v.validateWorkItemQuery(ctx, *request, fields...)
	case models.TokenRequest:
		return v.validateTokenRequest(ctx, request, fields...)
	case *models.TokenRequest:
		return v.validateTokenRequest(ctx, *request, fields...)
	case models.WebhookEventsQuery:
		return v.validateEventsQuery(ctx, request, fields...)
	case *models.WebhookEventsQuery:
		return v.validateEventsQuery(ctx, *request, fields...)
	case int64:
		if request <= 0 {
			return fieldError(FieldID, ErrInvalidID)
		}
		return nil
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateWorkItemQuery(ctx context.Context, request models.WorkItemQueryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQuery}
	}

	for _, f := range fields {
		switch f {
		case FieldQuery:
			if strings.TrimSpace(request.Query) == "" {
				return fieldError(FieldQuery, ErrEmptyQuery)
			}
			if len(request.Query) > MaxQueryLength {
				return fieldError(FieldQuery, ErrQueryTooLong)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateTokenRequest(ctx context.Context, request models.TokenRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := v.tags.VarCtx(ctx, request.Email, "required,email"); err != nil {
				return fieldError(FieldEmail, ErrInvalidEmail)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateEventsQuery(ctx context.Context, query models.WebhookEventsQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldLimit:
			if query.Limit < 1 || query.Limit > MaxEventsLimit {
				return fieldError(FieldLimit, ErrInvalidLimit)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
