package accessrequests

import (
	"context"
	"errors"
)

var (
	// ErrDuplicate lo devuelve Create cuando ya existe una entrada para (investor, startup).
	ErrDuplicate = errors.New("access request already exists")
)

type Repository interface {
	Create(ctx context.Context, r Request) error
	Update(ctx context.Context, r Request) error
	GetByID(ctx context.Context, id string) (Request, error)
	GetByPair(ctx context.Context, investorUserID, startupID string) (Request, error)
	ListByStartup(ctx context.Context, startupID string) ([]Request, error)
	ListByInvestor(ctx context.Context, investorUserID string) ([]Request, error)

	// InTx ejecuta fn de forma atómica. El repo que recibe fn está ligado a la transacción
	// y sus lecturas bloquean la fila hasta el commit.
	InTx(ctx context.Context, fn func(ctx context.Context, tx Repository) error) error
}
