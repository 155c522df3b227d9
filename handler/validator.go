package handler

import (
	"net/http"

	"github.com/dmitrymomot/payloadkit/pkg/payload"
	"github.com/dmitrymomot/payloadkit/pkg/response"
	"github.com/dmitrymomot/payloadkit/pkg/rule"
)

// Validator holds the outcome of validating one request.
// It is created per request and must not be shared.
type Validator struct {
	res  Resource
	req  *http.Request
	body []byte
	rctx rule.Context

	done    bool
	payload payload.Payload
	err     *payload.Error
}

// NewValidator prepares body for validation against res.
func NewValidator(r *http.Request, body []byte, res Resource, rctx rule.Context) *Validator {
	return &Validator{res: res, req: r, body: body, rctx: rctx}
}

// IsValid runs the pipeline on the first call and returns the cached
// outcome afterwards.
func (v *Validator) IsValid() bool {
	if !v.done {
		p, err := payload.Validate(v.body, v.res.Rule, v.res.Steps...)
		if err != nil {
			// Validate only returns *payload.Error.
			v.err, _ = err.(*payload.Error)
			if v.err == nil {
				v.err = &payload.Error{Kind: payload.KindCustom, Detail: err.Error()}
			}
		}
		v.payload = p
		v.done = true
	}
	return v.err == nil
}

// Err returns the validation error, or nil before IsValid or on success.
func (v *Validator) Err() *payload.Error {
	return v.err
}

// Payload returns the validated payload, or nil.
func (v *Validator) Payload() payload.Payload {
	return v.payload
}

// OnValid persists the payload and returns the 201 envelope response.
// Auto-populate values are merged in before the adapter is called.
// Adapter errors are returned unchanged.
func (v *Validator) OnValid() (Response, error) {
	if !v.done {
		return nil, ErrNotValidated
	}
	if v.err != nil {
		return nil, ErrPayloadInvalid
	}

	data, err := v.res.Rule.Populate(v.payload.Map(), v.rctx)
	if err != nil {
		return nil, err
	}

	obj, err := v.res.Store.Create(v.req.Context(), data)
	if err != nil {
		return nil, err
	}

	env, err := response.Format([]any{obj}, v.req.URL.Path, v.res.Rule.ExcludedFields()...)
	if err != nil {
		return nil, err
	}
	return JSON(http.StatusCreated, env), nil
}

// OnInvalid returns the 400 {"error": message} response.
func (v *Validator) OnInvalid() (Response, error) {
	if !v.done {
		return nil, ErrNotValidated
	}
	if v.err == nil {
		return nil, ErrPayloadValid
	}
	return JSON(http.StatusBadRequest, v.err.Mapping()), nil
}
