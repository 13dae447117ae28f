package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-business-card/models"
)

// MemoryCardRepository keeps cards in process memory. It is the default
// backend for local runs and tests. Records are stored and returned by
// value, so callers never share state with the repository.
type MemoryCardRepository struct {
	mu    sync.RWMutex
	cards map[string]models.Card
}

func NewMemoryCardRepository() *MemoryCardRepository {
	return &MemoryCardRepository{cards: make(map[string]models.Card)}
}

func (r *MemoryCardRepository) CreateCard(ctx context.Context, card models.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.cards[card.CardID]; exists {
		return ErrCardAlreadyExists
	}
	r.cards[card.CardID] = card
	return nil
}

func (r *MemoryCardRepository) UpdateCard(ctx context.Context, update models.CardUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	card, ok := r.cards[update.CardID]
	if !ok {
		return ErrCardNotFound
	}
	card.Apply(update)
	r.cards[update.CardID] = card
	return nil
}

func (r *MemoryCardRepository) UpsertCard(ctx context.Context, update models.CardUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	card, ok := r.cards[update.CardID]
	if !ok {
		card = models.Card{CardID: update.CardID}
	}
	card.Apply(update)
	r.cards[update.CardID] = card
	return nil
}

func (r *MemoryCardRepository) GetCard(ctx context.Context, cardID string) (models.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	card, ok := r.cards[cardID]
	if !ok {
		return models.Card{}, ErrCardNotFound
	}
	return card, nil
}

func (r *MemoryCardRepository) DeleteCard(ctx context.Context, cardID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.cards, cardID)
	return nil
}

// MemoryUserRepository keeps accounts in process memory with secondary
// indexes on card_id and phone. All three uniqueness checks run under one
// lock together with the write.
type MemoryUserRepository struct {
	mu       sync.RWMutex
	users    map[string]models.User
	byCardID map[string]string
	byPhone  map[string]string
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users:    make(map[string]models.User),
		byCardID: make(map[string]string),
		byPhone:  make(map[string]string),
	}
}

func (r *MemoryUserRepository) CreateUser(ctx context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Email]; exists {
		return ErrUserAlreadyExists
	}
	if _, exists := r.byCardID[user.CardID]; exists {
		return ErrUserAlreadyExists
	}
	if user.Phone != "" {
		if _, exists := r.byPhone[user.Phone]; exists {
			return ErrUserAlreadyExists
		}
		r.byPhone[user.Phone] = user.Email
	}

	r.users[user.Email] = user
	r.byCardID[user.CardID] = user.Email
	return nil
}

func (r *MemoryUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[email]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}
