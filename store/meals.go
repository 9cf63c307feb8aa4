package store

import (
	"sort"
	"time"

	"github.com/Rj088/Fitness-companion-app-sub000/models"
)

func (s *Store) CreateUserMeal(m models.UserMeal) models.UserMeal {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = s.nextMealID
	s.nextMealID++
	s.meals[m.ID] = m
	return m
}

func (s *Store) GetUserMeal(id int) (models.UserMeal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.meals[id]
	if !ok {
		return models.UserMeal{}, ErrNotFound
	}
	return m, nil
}

// GetUserMealsByUser returns the user's meals in insertion order; a non-nil
// date keeps only same-day matches regardless of time-of-day.
func (s *Store) GetUserMealsByUser(userID int, date *time.Time) []models.UserMeal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.UserMeal, 0)
	for _, m := range s.meals {
		if m.UserID != userID {
			continue
		}
		if date != nil && !sameDay(m.Date, *date) {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// DeleteUserMeal removes the meal if present; a repeat delete returns false.
func (s *Store) DeleteUserMeal(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.meals[id]; !ok {
		return false
	}
	delete(s.meals, id)
	return true
}
