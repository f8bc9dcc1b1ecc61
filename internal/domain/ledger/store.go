package ledger

import (
	"sync"
	"time"

	"Flux/internal/domain/user"
	"Flux/internal/pkg"
)

// Store guarda as transações e o saldo do usuário em memória, pela vida
// do processo. Append e Debit são seções críticas independentes;
// requisições concorrentes nunca corrompem o saldo nem perdem escritas.
//
// O saldo é um total corrente independente, não é derivado da soma do
// ledger. Débitos que passariam do saldo travam em zero em vez de
// falhar; comportamento herdado do produto, não é bug.
type Store struct {
	mu           sync.Mutex
	transactions []*Transaction
	user         user.User
}

func NewStore(seed user.User, history []*Transaction) *Store {
	s := &Store{
		user:         seed,
		transactions: make([]*Transaction, 0, len(history)+16),
	}
	s.transactions = append(s.transactions, history...)
	return s
}

// Append insere no início: a leitura é sempre da mais recente para a
// mais antiga.
func (s *Store) Append(t *Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = append([]*Transaction{t}, s.transactions...)
}

// Debit reduz o saldo e devolve o novo valor, com piso em zero.
func (s *Store) Debit(amount float64, at time.Time) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := pkg.Round2(s.user.Balance - amount)
	if next < 0 {
		next = 0
	}
	s.user.Balance = next
	s.user.UpdatedAt = at
	return next
}

func (s *Store) List() []*Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

func (s *Store) Balance() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.user.Balance
}

// Snapshot devolve uma cópia do perfil do usuário.
func (s *Store) Snapshot() user.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.user
}

// RecordDonation atualiza as estatísticas de doação do perfil.
func (s *Store) RecordDonation(amount float64, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user.TotalDonated = pkg.Round2(s.user.TotalDonated + amount)
	s.user.DonationCount++
	if s.user.FirstDonationDate == nil {
		first := at
		s.user.FirstDonationDate = &first
	}
	s.user.UpdatedAt = at
}
