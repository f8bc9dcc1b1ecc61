package charity

import (
	"context"
	"errors"
)

// ErrNotFound é o sentinel devolvido por qualquer implementação de
// Repository quando o id não existe no catálogo. Falhas de
// infraestrutura são devolvidas sem este sentinel.
var ErrNotFound = errors.New("charity not found")

// Repository é o ponto de troca entre o catálogo estático embutido e a
// tabela charities no banco; os workflows dependem apenas desta interface.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Charity, error)
	List(ctx context.Context) ([]*Charity, error)
}
