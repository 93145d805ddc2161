package auth

import (
	"context"
	"errors"
	"log"

	"laminasycortes/internal/domain/entities"
	"laminasycortes/internal/usecase"
)

// Demo account provisioned on startup when DEMO_SEED is enabled. Development
// convenience; a deployment with real accounts leaves DEMO_SEED off.
const (
	DemoUserName     = "Usuario Demo"
	DemoUserEmail    = "demo@laminasycortes.com"
	DemoUserPassword = "demo1234"
)

// EnsureDemoUser logs the demo account in, auto-registering it the first time.
// The decision to register is taken on the typed ErrInvalidCredentials
// outcome, never by inspecting error text.
func EnsureDemoUser(ctx context.Context, authUC usecase.IAuthUseCase) (entities.User, error) {
	user, _, err := authUC.Login(ctx, DemoUserEmail, DemoUserPassword)
	if err == nil {
		log.Printf("[auth] demo user already provisioned email=%s", user.Email)
		return user, nil
	}
	if !errors.Is(err, usecase.ErrInvalidCredentials) {
		return entities.User{}, err
	}

	log.Printf("[auth] demo user missing, registering email=%s", DemoUserEmail)
	user, err = authUC.Register(ctx, DemoUserName, DemoUserEmail, DemoUserPassword)
	if err != nil {
		return entities.User{}, err
	}

	if _, _, err := authUC.Login(ctx, DemoUserEmail, DemoUserPassword); err != nil {
		return entities.User{}, err
	}
	return user, nil
}
