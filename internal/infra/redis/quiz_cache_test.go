package redis

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"quizogram-client/internal/domain"
)

type countingLoader struct {
	loads   atomic.Int64
	quizzes map[int]domain.Quiz
}

func (l *countingLoader) GetQuiz(_ context.Context, quizID int) (domain.Quiz, error) {
	l.loads.Add(1)
	if quiz, ok := l.quizzes[quizID]; ok {
		return quiz, nil
	}
	return domain.Quiz{}, domain.ErrQuizNotFound
}

func sampleQuiz() domain.Quiz {
	return domain.Quiz{
		ID:    1,
		Title: "sample",
		Questions: []domain.Question{
			{ID: 10, Text: "q", Options: []domain.Option{{Text: "a"}, {Text: "b"}}},
		},
	}
}

func newTestCache(t *testing.T, loader QuizLoader, ttl time.Duration) (*QuizCache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewQuizCache(client, loader, ttl), mr
}

func TestQuizCacheStoresDefinition(t *testing.T) {
	loader := &countingLoader{quizzes: map[int]domain.Quiz{1: sampleQuiz()}}
	cache, mr := newTestCache(t, loader, time.Minute)

	quiz, err := cache.GetQuiz(context.Background(), 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if quiz.Title != "sample" || len(quiz.Questions) != 1 {
		t.Fatalf("unexpected quiz %+v", quiz)
	}
	if !mr.Exists("quizogram:quiz:1:def") {
		t.Fatalf("expected cached definition key")
	}

	if _, err := cache.GetQuiz(context.Background(), 1); err != nil {
		t.Fatalf("second get: %v", err)
	}
	if loads := loader.loads.Load(); loads != 1 {
		t.Fatalf("expected one backing load, got %d", loads)
	}
}

func TestQuizCacheExpiry(t *testing.T) {
	loader := &countingLoader{quizzes: map[int]domain.Quiz{1: sampleQuiz()}}
	cache, mr := newTestCache(t, loader, time.Minute)

	if _, err := cache.GetQuiz(context.Background(), 1); err != nil {
		t.Fatalf("get: %v", err)
	}
	mr.FastForward(2 * time.Minute)
	if _, err := cache.GetQuiz(context.Background(), 1); err != nil {
		t.Fatalf("get after expiry: %v", err)
	}
	if loads := loader.loads.Load(); loads != 2 {
		t.Fatalf("expected reload after expiry, got %d loads", loads)
	}
}

func TestQuizCacheFallsBackWhenRedisDown(t *testing.T) {
	loader := &countingLoader{quizzes: map[int]domain.Quiz{1: sampleQuiz()}}
	cache, mr := newTestCache(t, loader, time.Minute)
	mr.Close()

	quiz, err := cache.GetQuiz(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected loader fallback, got %v", err)
	}
	if quiz.Title != "sample" {
		t.Fatalf("unexpected quiz %+v", quiz)
	}
}

func TestQuizCacheIgnoresCorruptEntries(t *testing.T) {
	loader := &countingLoader{quizzes: map[int]domain.Quiz{1: sampleQuiz()}}
	cache, mr := newTestCache(t, loader, time.Minute)

	if err := mr.Set("quizogram:quiz:1:def", "not-json"); err != nil {
		t.Fatalf("seed corrupt entry: %v", err)
	}
	quiz, err := cache.GetQuiz(context.Background(), 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if quiz.Title != "sample" {
		t.Fatalf("expected loader result, got %+v", quiz)
	}
	if loads := loader.loads.Load(); loads != 1 {
		t.Fatalf("expected corrupt entry to count as a miss, got %d loads", loads)
	}
}
