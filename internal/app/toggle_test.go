package app_test

import (
	"context"
	"errors"
	"testing"

	"quizogram-client/internal/app"
	"quizogram-client/internal/domain"
)

func TestToggleOptimisticActivate(t *testing.T) {
	controller := app.NewToggleController()
	snap := &domain.Snapshot{TargetID: "quiz:1", Active: false, Count: 5}

	var sawActivate bool
	err := controller.Toggle(context.Background(), snap, func(_ context.Context, activate bool) error {
		sawActivate = activate
		return nil
	})
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !sawActivate {
		t.Fatalf("expected activation call")
	}
	if !snap.Active || snap.Count != 6 {
		t.Fatalf("expected {true, 6}, got {%v, %d}", snap.Active, snap.Count)
	}
}

func TestToggleRollbackIsExact(t *testing.T) {
	controller := app.NewToggleController()
	snap := &domain.Snapshot{TargetID: "quiz:1", Active: false, Count: 5}

	var observed domain.Snapshot
	boom := errors.New("service unavailable")
	err := controller.Toggle(context.Background(), snap, func(context.Context, bool) error {
		// The view sees the optimistic state while the call is in flight.
		observed = *snap
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected failure to surface, got %v", err)
	}
	if !observed.Active || observed.Count != 6 {
		t.Fatalf("expected optimistic {true, 6} mid-flight, got {%v, %d}", observed.Active, observed.Count)
	}
	if snap.Active || snap.Count != 5 {
		t.Fatalf("expected exact rollback to {false, 5}, got {%v, %d}", snap.Active, snap.Count)
	}
}

func TestToggleDeactivateDecrements(t *testing.T) {
	controller := app.NewToggleController()
	snap := &domain.Snapshot{TargetID: "user:bob", Active: true, Count: 3}

	err := controller.Toggle(context.Background(), snap, func(_ context.Context, activate bool) error {
		if activate {
			t.Fatalf("expected deactivation call")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if snap.Active || snap.Count != 2 {
		t.Fatalf("expected {false, 2}, got {%v, %d}", snap.Active, snap.Count)
	}
}

func TestToggleSingleFlightPerTarget(t *testing.T) {
	controller := app.NewToggleController()
	snap := &domain.Snapshot{TargetID: "quiz:1", Active: false, Count: 5}

	entered := make(chan struct{})
	release := make(chan struct{})
	calls := 0

	done := make(chan error, 1)
	go func() {
		done <- controller.Toggle(context.Background(), snap, func(context.Context, bool) error {
			calls++
			close(entered)
			<-release
			return nil
		})
	}()

	<-entered
	if err := controller.Toggle(context.Background(), snap, func(context.Context, bool) error {
		calls++
		return nil
	}); !errors.Is(err, domain.ErrToggleInFlight) {
		t.Fatalf("expected in-flight rejection, got %v", err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one network call, got %d", calls)
	}
	if !snap.Active || snap.Count != 6 {
		t.Fatalf("expected committed {true, 6}, got {%v, %d}", snap.Active, snap.Count)
	}
}

func TestToggleDistinctTargetsDoNotBlock(t *testing.T) {
	controller := app.NewToggleController()
	first := &domain.Snapshot{TargetID: "quiz:1", Count: 1}
	second := &domain.Snapshot{TargetID: "quiz:2", Count: 1}

	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- controller.Toggle(context.Background(), first, func(context.Context, bool) error {
			close(entered)
			<-release
			return nil
		})
	}()

	<-entered
	if err := controller.Toggle(context.Background(), second, func(context.Context, bool) error {
		return nil
	}); err != nil {
		t.Fatalf("expected independent target to proceed: %v", err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
}

type fakeSocialAPI struct {
	likes, unlikes     []int
	follows, unfollows []string
}

func (f *fakeSocialAPI) Like(_ context.Context, quizID int) error {
	f.likes = append(f.likes, quizID)
	return nil
}

func (f *fakeSocialAPI) Unlike(_ context.Context, quizID int) error {
	f.unlikes = append(f.unlikes, quizID)
	return nil
}

func (f *fakeSocialAPI) Follow(_ context.Context, username string) error {
	f.follows = append(f.follows, username)
	return nil
}

func (f *fakeSocialAPI) Unfollow(_ context.Context, username string) error {
	f.unfollows = append(f.unfollows, username)
	return nil
}

func TestLikeToggleRoutesToEndpoints(t *testing.T) {
	social := &fakeSocialAPI{}
	controller := app.NewToggleController()
	snap := app.LikeSnapshot(domain.FeedItem{QuizID: 9, LikeCount: 2, IsLikedByMe: false})

	if err := controller.Toggle(context.Background(), snap, app.LikeToggle(social, 9)); err != nil {
		t.Fatalf("like: %v", err)
	}
	if err := controller.Toggle(context.Background(), snap, app.LikeToggle(social, 9)); err != nil {
		t.Fatalf("unlike: %v", err)
	}
	if len(social.likes) != 1 || social.likes[0] != 9 {
		t.Fatalf("expected one like for quiz 9, got %v", social.likes)
	}
	if len(social.unlikes) != 1 || social.unlikes[0] != 9 {
		t.Fatalf("expected one unlike for quiz 9, got %v", social.unlikes)
	}
	if snap.Active || snap.Count != 2 {
		t.Fatalf("expected round trip back to {false, 2}, got {%v, %d}", snap.Active, snap.Count)
	}
}

func TestFollowToggleRoutesToEndpoints(t *testing.T) {
	social := &fakeSocialAPI{}
	controller := app.NewToggleController()
	snap := app.FollowSnapshot("alice", false, 0)

	if err := controller.Toggle(context.Background(), snap, app.FollowToggle(social, "alice")); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if len(social.follows) != 1 || social.follows[0] != "alice" {
		t.Fatalf("expected follow of alice, got %v", social.follows)
	}
	if !snap.Active || snap.Count != 1 {
		t.Fatalf("expected {true, 1}, got {%v, %d}", snap.Active, snap.Count)
	}
}
