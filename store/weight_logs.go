package store

import (
	"sort"

	"github.com/Rj088/Fitness-companion-app-sub000/models"
)

// CreateWeightLog appends the log and overwrites the owner's current weight
// under the same lock, so the two writes cannot be observed apart.
func (s *Store) CreateWeightLog(wl models.WeightLog) (models.WeightLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[wl.UserID]
	if !ok {
		return models.WeightLog{}, ErrNotFound
	}

	wl.ID = s.nextWeightLogID
	s.nextWeightLogID++
	s.weightLogs[wl.ID] = wl

	u.Weight = wl.Weight
	s.users[u.ID] = u
	return wl, nil
}

// GetWeightLogsByUser returns the user's history sorted ascending by date.
func (s *Store) GetWeightLogsByUser(userID int) []models.WeightLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.WeightLog, 0)
	for _, wl := range s.weightLogs {
		if wl.UserID == userID {
			out = append(out, wl)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID < out[j].ID
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
