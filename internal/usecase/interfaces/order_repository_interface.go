package interfaces

import (
	"context"

	"farmacia_xpto/internal/domain/entities"
)

// IOrderRepository is the collaborator contract against the order store.
//
// The payment subsystem only needs to read an order before charging it and to
// flip its status when a payment resolves; everything else about orders is
// owned by the back-office CRUD.

type IOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}
