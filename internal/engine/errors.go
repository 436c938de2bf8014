package engine

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrQuestNotFound         = errors.New("quest not found")
	ErrQuestAlreadyCompleted = errors.New("quest is already completed")
	ErrQuestNotCompleted     = errors.New("quest is not completed")
	ErrNoCompletedQuests     = errors.New("no completed quests")

	ErrRewardNotFound         = errors.New("reward not found")
	ErrRewardAlreadyPurchased = errors.New("reward is already purchased")
	ErrRewardNotPurchased     = errors.New("reward is not purchased")

	ErrClassNotFound  = errors.New("class not found")
	ErrParentNotFound = errors.New("parent class not found")
	ErrTipNotFound    = errors.New("tip not found")

	ErrRankIndexOutOfRange = errors.New("rank index out of range")
	ErrNoDeletedData       = errors.New("no deleted data to recover")
)

// InsufficientGoldError is returned when a reward costs more than the player
// holds. The purchase is not made.
type InsufficientGoldError struct {
	Cost int
	Gold int
}

func (e InsufficientGoldError) Error() string {
	return fmt.Sprintf("not enough gold: costs %d, have %d", e.Cost, e.Gold)
}

// RecoveryExpiredError is returned when the deleted-data slot is older than
// the recovery window.
type RecoveryExpiredError struct {
	DeletedAt time.Time
	Window    time.Duration
}

func (e RecoveryExpiredError) Error() string {
	return fmt.Sprintf("deleted data from %s is past the %d-day recovery window",
		e.DeletedAt.Format(time.DateOnly), int(e.Window.Hours()/24))
}
