package memory

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

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

func TestQuizCacheServesFromCache(t *testing.T) {
	loader := &countingLoader{quizzes: map[int]domain.Quiz{1: sampleQuiz()}}
	cache := NewQuizCache(loader, time.Minute)

	for i := 0; i < 3; i++ {
		quiz, err := cache.GetQuiz(context.Background(), 1)
		if err != nil {
			t.Fatalf("get %d: %v", i, err)
		}
		if quiz.Title != "sample" {
			t.Fatalf("unexpected quiz %+v", quiz)
		}
	}
	if loads := loader.loads.Load(); loads != 1 {
		t.Fatalf("expected one backing load, got %d", loads)
	}
}

func TestQuizCacheExpires(t *testing.T) {
	loader := &countingLoader{quizzes: map[int]domain.Quiz{1: sampleQuiz()}}
	cache := NewQuizCache(loader, time.Minute)

	now := time.Now()
	cache.clock = func() time.Time { return now }

	if _, err := cache.GetQuiz(context.Background(), 1); err != nil {
		t.Fatalf("first get: %v", err)
	}
	// jitter adds at most 10%, so 2x TTL is safely past expiry
	now = now.Add(2 * time.Minute)
	if _, err := cache.GetQuiz(context.Background(), 1); err != nil {
		t.Fatalf("second get: %v", err)
	}
	if loads := loader.loads.Load(); loads != 2 {
		t.Fatalf("expected reload after expiry, got %d loads", loads)
	}
}

func TestQuizCacheDoesNotCacheErrors(t *testing.T) {
	loader := &countingLoader{quizzes: map[int]domain.Quiz{}}
	cache := NewQuizCache(loader, time.Minute)

	for i := 0; i < 2; i++ {
		if _, err := cache.GetQuiz(context.Background(), 404); !errors.Is(err, domain.ErrQuizNotFound) {
			t.Fatalf("get %d: expected not found, got %v", i, err)
		}
	}
	if loads := loader.loads.Load(); loads != 2 {
		t.Fatalf("expected errors to pass through uncached, got %d loads", loads)
	}
}

func TestStaticQuizLoader(t *testing.T) {
	loader := NewStaticQuizLoader(map[int]domain.Quiz{1: sampleQuiz()})
	if _, err := loader.GetQuiz(context.Background(), 1); err != nil {
		t.Fatalf("expected hit: %v", err)
	}
	if _, err := loader.GetQuiz(context.Background(), 2); !errors.Is(err, domain.ErrQuizNotFound) {
		t.Fatalf("expected miss, got %v", err)
	}
}
