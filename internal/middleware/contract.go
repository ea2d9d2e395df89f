//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=middleware_test
package middleware

import (
	"context"

	"github.com/chachabrian/profast-backend/internal/services"
)

type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*services.Identity, error)
}

type ReadinessProbe interface {
	Ready() bool
}
