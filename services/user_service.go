package services

import (
	"github.com/Rj088/Fitness-companion-app-sub000/models"
	"github.com/Rj088/Fitness-companion-app-sub000/store"
	"github.com/Rj088/Fitness-companion-app-sub000/utils"
)

// UpdateUser applies a partial profile change. A password in the patch is
// re-hashed before it reaches the store.
func UpdateUser(s *store.Store, id int, patch models.UserUpdate) (models.User, error) {
	if patch.Password != nil {
		hashed, err := utils.HashPassword(*patch.Password)
		if err != nil {
			return models.User{}, err
		}
		patch.Password = &hashed
	}
	return s.UpdateUser(id, patch)
}
