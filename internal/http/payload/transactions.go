package payload

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/jellydator/validation"
)

const MaxTransactionsLimit = 200

type TransactionsRequest struct {
	Limit int
}

// ParseTransactionsRequest reads ?limit=; a missing limit is zero, meaning the default page.
func ParseTransactionsRequest(values url.Values) (TransactionsRequest, error) {
	raw := values.Get("limit")
	if raw == "" {
		return TransactionsRequest{}, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return TransactionsRequest{}, fmt.Errorf("limit %q is not a number", raw)
	}
	return TransactionsRequest{Limit: limit}, nil
}

func (t TransactionsRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Limit, validation.Min(0), validation.Max(MaxTransactionsLimit)),
	)
}
