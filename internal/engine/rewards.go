package engine

import (
	"errors"

	"github.com/levelifeofficial/levelife-922003/internal/game"
)

type RewardInput struct {
	Title       string
	Description string
	Emoji       string
	Image       string
	GoldCost    int
}

type RewardUpdate struct {
	Title       *string
	Description *string
	Emoji       *string
	Image       *string
	GoldCost    *int
}

type PurchaseResult struct {
	RewardID string
	Cost     int
	// Gold is the player's balance afterwards.
	Gold int
}

var errNegativeCost = errors.New("gold cost must not be negative")

func (s *Service) CreateReward(in RewardInput) (game.Reward, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return game.Reward{}, err
	}
	if in.GoldCost < 0 {
		return game.Reward{}, errNegativeCost
	}

	var created game.Reward
	err = s.update(func(st *game.State) error {
		created = game.Reward{
			ID:          s.newID(),
			Title:       title,
			Description: in.Description,
			Emoji:       in.Emoji,
			Image:       in.Image,
			GoldCost:    in.GoldCost,
			CreatedAt:   s.now().UTC(),
		}
		st.Rewards = append(st.Rewards, created)
		return nil
	})
	return created, err
}

// UpdateReward edits a reward. Changing the cost of a purchased reward
// changes what a later return refunds.
func (s *Service) UpdateReward(id string, up RewardUpdate) (game.Reward, error) {
	var title string
	if up.Title != nil {
		t, err := normalizeTitle(*up.Title)
		if err != nil {
			return game.Reward{}, err
		}
		title = t
	}
	if up.GoldCost != nil && *up.GoldCost < 0 {
		return game.Reward{}, errNegativeCost
	}

	var updated game.Reward
	err := s.update(func(st *game.State) error {
		i := st.RewardIndex(id)
		if i < 0 {
			return ErrRewardNotFound
		}
		r := &st.Rewards[i]
		if up.Title != nil {
			r.Title = title
		}
		if up.Description != nil {
			r.Description = *up.Description
		}
		if up.Emoji != nil {
			r.Emoji = *up.Emoji
		}
		if up.Image != nil {
			r.Image = *up.Image
		}
		if up.GoldCost != nil {
			r.GoldCost = *up.GoldCost
		}
		updated = *r
		return nil
	})
	return updated, err
}

// DeleteReward removes a reward whether or not it was purchased. Nothing is
// refunded.
func (s *Service) DeleteReward(id string) error {
	return s.update(func(st *game.State) error {
		i := st.RewardIndex(id)
		if i < 0 {
			return ErrRewardNotFound
		}
		st.Rewards = append(st.Rewards[:i], st.Rewards[i+1:]...)
		return nil
	})
}

// PurchaseReward debits the reward's cost once.
func (s *Service) PurchaseReward(id string) (*PurchaseResult, error) {
	var res *PurchaseResult
	err := s.update(func(st *game.State) error {
		i := st.RewardIndex(id)
		if i < 0 {
			return ErrRewardNotFound
		}
		r := &st.Rewards[i]
		if r.Purchased {
			return ErrRewardAlreadyPurchased
		}
		if st.Player.Gold < r.GoldCost {
			return InsufficientGoldError{Cost: r.GoldCost, Gold: st.Player.Gold}
		}

		now := s.now().UTC()
		st.Player.Gold -= r.GoldCost
		r.Purchased = true
		r.PurchasedAt = &now

		res = &PurchaseResult{RewardID: id, Cost: r.GoldCost, Gold: st.Player.Gold}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// UnpurchaseReward returns a purchased reward for a full refund.
func (s *Service) UnpurchaseReward(id string) (*PurchaseResult, error) {
	var res *PurchaseResult
	err := s.update(func(st *game.State) error {
		i := st.RewardIndex(id)
		if i < 0 {
			return ErrRewardNotFound
		}
		r := &st.Rewards[i]
		if !r.Purchased {
			return ErrRewardNotPurchased
		}

		st.Player.Gold += r.GoldCost
		r.Purchased = false
		r.PurchasedAt = nil

		res = &PurchaseResult{RewardID: id, Cost: r.GoldCost, Gold: st.Player.Gold}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
