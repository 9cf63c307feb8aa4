package store

import (
	"sort"
	"strings"

	"github.com/Rj088/Fitness-companion-app-sub000/models"
)

func (s *Store) CreateFood(f models.Food) models.Food {
	s.mu.Lock()
	defer s.mu.Unlock()

	f.ID = s.nextFoodID
	s.nextFoodID++
	s.foods[f.ID] = f
	return f
}

func (s *Store) GetFood(id int) (models.Food, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.foods[id]
	if !ok {
		return models.Food{}, ErrNotFound
	}
	return f, nil
}

func (s *Store) GetFoods() []models.Food {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Food, 0, len(s.foods))
	for _, f := range s.foods {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// SearchFoods does a case-insensitive substring match on the name only.
func (s *Store) SearchFoods(query string) []models.Food {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	out := make([]models.Food, 0)
	for _, f := range s.foods {
		if strings.Contains(strings.ToLower(f.Name), q) {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
