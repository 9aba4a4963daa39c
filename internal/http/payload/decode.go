package payload

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const maxBodyBytes = 1 << 16

func DecodePayload(r *http.Request, object any) (err error) {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	decoder := json.NewDecoder(body)
	defer func() {
		errClose := body.Close()
		if err == nil {
			err = errClose
		}
	}()

	decoder.DisallowUnknownFields()

	if err = decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return nil
}
