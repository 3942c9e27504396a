package app

import (
	"context"
	"strconv"
	"sync"

	"quizogram-client/internal/domain"
)

// ToggleFunc performs the server-side half of a toggle: activate true maps
// to the creation call, false to the removal call.
type ToggleFunc func(ctx context.Context, activate bool) error

// SocialAPI is the slice of the remote service the toggles need.
type SocialAPI interface {
	Like(ctx context.Context, quizID int) error
	Unlike(ctx context.Context, quizID int) error
	Follow(ctx context.Context, username string) error
	Unfollow(ctx context.Context, username string) error
}

// ToggleController flips a counted boolean relation optimistically: the
// snapshot changes before the request is issued, and is restored verbatim
// if the request fails. At most one toggle may be outstanding per target;
// that single-flight rule is what keeps rollback exact.
type ToggleController struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewToggleController() *ToggleController {
	return &ToggleController{inFlight: make(map[string]struct{})}
}

// Toggle applies the flip to snap, runs do, and on any failure restores the
// captured previous state exactly. A second toggle on the same target while
// one is outstanding returns ErrToggleInFlight without touching the
// snapshot or the network.
func (c *ToggleController) Toggle(ctx context.Context, snap *domain.Snapshot, do ToggleFunc) error {
	c.mu.Lock()
	if _, busy := c.inFlight[snap.TargetID]; busy {
		c.mu.Unlock()
		return domain.ErrToggleInFlight
	}
	c.inFlight[snap.TargetID] = struct{}{}

	previous := *snap
	activate := !snap.Active
	snap.Active = activate
	if activate {
		snap.Count++
	} else {
		snap.Count--
	}
	c.mu.Unlock()

	err := do(ctx, activate)

	c.mu.Lock()
	if err != nil {
		*snap = previous
	}
	delete(c.inFlight, snap.TargetID)
	c.mu.Unlock()
	return err
}

// LikeToggle adapts the like endpoints for one quiz to a ToggleFunc.
func LikeToggle(social SocialAPI, quizID int) ToggleFunc {
	return func(ctx context.Context, activate bool) error {
		if activate {
			return social.Like(ctx, quizID)
		}
		return social.Unlike(ctx, quizID)
	}
}

// FollowToggle adapts the follow endpoints for one user to a ToggleFunc.
func FollowToggle(social SocialAPI, username string) ToggleFunc {
	return func(ctx context.Context, activate bool) error {
		if activate {
			return social.Follow(ctx, username)
		}
		return social.Unfollow(ctx, username)
	}
}

// LikeSnapshot builds the local toggle state for a feed card.
func LikeSnapshot(item domain.FeedItem) *domain.Snapshot {
	return &domain.Snapshot{
		TargetID: "quiz:" + strconv.Itoa(item.QuizID),
		Active:   item.IsLikedByMe,
		Count:    item.LikeCount,
	}
}

// FollowSnapshot builds the local toggle state for a followed user.
func FollowSnapshot(username string, following bool, count int) *domain.Snapshot {
	return &domain.Snapshot{
		TargetID: "user:" + username,
		Active:   following,
		Count:    count,
	}
}
