package ports

import "context"

// HealthChecker verifies one external dependency is reachable.
type HealthChecker interface {
	Name() string
	Healthy(ctx context.Context) error
}
