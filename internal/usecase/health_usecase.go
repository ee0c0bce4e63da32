package usecase

import (
	"context"
	"time"
)

// StorePinger checks that the job store answers.
type StorePinger func(ctx context.Context) error

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, error)
}

type healthUsecase struct {
	store string
	ping  StorePinger
}

func NewHealthUsecase(store string, ping StorePinger) HealthUsecase {
	return &healthUsecase{store: store, ping: ping}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, error) {
	status := map[string]string{
		"status": "ok",
		"store":  u.store,
	}
	if u.ping == nil {
		return status, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := u.ping(ctx); err != nil {
		status["status"] = "unavailable"
		return status, err
	}
	return status, nil
}
