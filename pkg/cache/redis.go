package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"quiz-builder/internal/models"
)

// QuizCache keeps full quiz records in Redis so repeated fetches of the same
// quiz skip the store. Entries are primed on create, read through on get and
// removed on delete; the cache is advisory and callers log-and-continue on
// any error here.
type QuizCache struct {
	client *redis.Client
	ctx    context.Context
	ttl    time.Duration
}

func NewQuizCache(addr string) *QuizCache {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &QuizCache{
		client: client,
		ctx:    context.Background(),
		ttl:    24 * time.Hour,
	}
}

func quizKey(id uint) string {
	return fmt.Sprintf("quiz:%d", id)
}

func (c *QuizCache) SetQuiz(record *models.QuizRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return c.client.Set(c.ctx, quizKey(record.ID), data, c.ttl).Err()
}

func (c *QuizCache) GetQuiz(id uint) (*models.QuizRecord, error) {
	data, err := c.client.Get(c.ctx, quizKey(id)).Bytes()
	if err != nil {
		return nil, err
	}

	var record models.QuizRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *QuizCache) InvalidateQuiz(id uint) error {
	return c.client.Del(c.ctx, quizKey(id)).Err()
}
