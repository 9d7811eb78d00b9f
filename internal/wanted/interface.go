package wanted

import (
	"context"

	"rental-marketplace/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	ListOpen(ctx context.Context, sc model.Scope, input ListOpenInput) (ListOutput, error)
	ListMine(ctx context.Context, sc model.Scope) (ListOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Cancel(ctx context.Context, sc model.Scope, id string) (CancelOutput, error)
}
