package main

import (
	"context"

	"trainingcenter/internal/app/config"
	"trainingcenter/internal/pkg"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.Info("App start")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Failed to parse config: %v", err)
	}

	app, err := pkg.NewApp(context.Background(), cfg)
	if err != nil {
		logrus.Fatalf("Failed to init app: %v", err)
	}

	app.RunApp()
	logrus.Info("App terminated")
}
