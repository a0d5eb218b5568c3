package postgresadapter

import (
	"context"

	"github.com/google/uuid"
)

type UUIDTokenGenerator struct{}

func (UUIDTokenGenerator) NewToken(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
