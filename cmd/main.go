package main

import (
	"github.com/Rj088/Fitness-companion-app-sub000/config"
	"github.com/Rj088/Fitness-companion-app-sub000/routes"
	"github.com/Rj088/Fitness-companion-app-sub000/store"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	s := store.New()
	s.Seed()

	r := routes.SetupRouter(s)

	logrus.Infof("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("server failed: %v", err)
	}
}
