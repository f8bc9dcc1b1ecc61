package pkg

import (
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"
)

func GenerateULIDObject() ulid.ULID {
	entropy := ulid.DefaultEntropy()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
}

func ParseInt(s string) (int, error) {
	return strconv.Atoi(s)
}
