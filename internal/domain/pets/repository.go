package pets

import "context"

type Repository interface {
	Create(ctx context.Context, sessionID string, p Pet) error
	GetByID(ctx context.Context, sessionID, id string) (Pet, error)
	List(ctx context.Context, sessionID string) ([]Pet, error)
}
