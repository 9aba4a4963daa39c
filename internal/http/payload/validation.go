package payload

import (
	"fmt"
	"net/http"

	"github.com/jellydator/validation"
)

type DecodeValidator struct{}

// DecodeJSONPayload decodes the request body into object and runs its Validate method when it has one.
func (dv DecodeValidator) DecodeJSONPayload(r *http.Request, object any) error {
	if err := DecodePayload(r, object); err != nil {
		return err
	}
	return dv.validatePayload(object)
}

func (dv DecodeValidator) validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
