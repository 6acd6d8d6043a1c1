package review

import (
	"math"

	"orderflow/internal/domain"
)

type Stat struct {
	Count int     `json:"count"`
	Avg   float64 `json:"avg"`
}

type Summary struct {
	Restaurant Stat `json:"restaurant"`
	Waiter     Stat `json:"waiter"`
	Dish       Stat `json:"dish"`
}

// Aggregate folds rating events into per-target count and mean. Unknown
// target types are skipped so future categories don't break old readers;
// a target with no events reports count 0 and avg 0.
func Aggregate(events []domain.RatingEvent) Summary {
	sums := map[domain.RatingTarget]int{}
	counts := map[domain.RatingTarget]int{}
	for _, event := range events {
		switch event.Target {
		case domain.TargetRestaurant, domain.TargetWaiter, domain.TargetDish:
			sums[event.Target] += event.Rating
			counts[event.Target]++
		}
	}

	stat := func(target domain.RatingTarget) Stat {
		count := counts[target]
		if count == 0 {
			return Stat{}
		}
		avg := float64(sums[target]) / float64(count)
		return Stat{Count: count, Avg: math.Round(avg*100) / 100}
	}

	return Summary{
		Restaurant: stat(domain.TargetRestaurant),
		Waiter:     stat(domain.TargetWaiter),
		Dish:       stat(domain.TargetDish),
	}
}
