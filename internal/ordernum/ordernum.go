package ordernum

import (
	"fmt"
	"strings"

	"github.com/speps/go-hashids/v2"
)

const prefix = "PZA-"

// Codec turns internal order ids into short public order numbers and back.
// The salt keeps numbers non-enumerable without storing a second key.
type Codec struct {
	h *hashids.HashID
}

func New(salt string) (*Codec, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 8
	hd.Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	h, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, err
	}
	return &Codec{h: h}, nil
}

func (c *Codec) Encode(orderID int64) (string, error) {
	encoded, err := c.h.EncodeInt64([]int64{orderID})
	if err != nil {
		return "", err
	}
	return prefix + encoded, nil
}

func (c *Codec) Decode(orderNumber string) (int64, error) {
	encoded, ok := strings.CutPrefix(orderNumber, prefix)
	if !ok {
		return 0, fmt.Errorf("malformed order number %q", orderNumber)
	}
	ids, err := c.h.DecodeInt64WithError(encoded)
	if err != nil {
		return 0, err
	}
	if len(ids) != 1 {
		return 0, fmt.Errorf("malformed order number %q", orderNumber)
	}
	return ids[0], nil
}
