package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

var ErrRoundNotFound = errors.New("round not found")

type RoundRepository interface {
	CreateOrUpdate(ctx context.Context, round *entity.Round) error
	GetByID(ctx context.Context, id string) (*entity.Round, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbRound struct {
	client *redis.Client
}

func NewRoundRepository(client *redis.Client) RoundRepository {
	return &dbRound{
		client: client,
	}
}

func roundKey(id string) string {
	return "round:" + id
}

func (that *dbRound) CreateOrUpdate(ctx context.Context, round *entity.Round) error {
	roundJSON, err := json.Marshal(round)
	if err != nil {
		return fmt.Errorf("could not marshal round: %w", err)
	}

	if err = that.client.Set(ctx, roundKey(round.ID), roundJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set round: %w", err)
	}

	return nil
}

func (that *dbRound) GetByID(ctx context.Context, id string) (*entity.Round, error) {
	response, err := that.client.Get(ctx, roundKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return &entity.Round{}, ErrRoundNotFound
	}

	if err != nil {
		return &entity.Round{}, fmt.Errorf("failed to get round by id: %w", err)
	}

	var round entity.Round
	if err = json.Unmarshal([]byte(response), &round); err != nil {
		return &entity.Round{}, fmt.Errorf("failed to unmarshal round: %w", err)
	}

	return &round, nil
}

func (that *dbRound) DeleteByID(ctx context.Context, id string) error {
	if err := that.client.Del(ctx, roundKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete round by ID: %w", err)
	}

	return nil
}
