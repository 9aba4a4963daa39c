package payload

import (
	"github.com/jellydator/validation"
)

const maxInitDataLength = 4096

// AuthRequest carries the raw Telegram Mini App init data string.
type AuthRequest struct {
	InitData string `json:"initData"`
}

func (a AuthRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.InitData, validation.Required, validation.Length(1, maxInitDataLength)),
	)
}
