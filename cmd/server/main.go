package main

import (
	"context"
	"net/http"
	_ "time/tzdata"

	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/o2scale/goodboyholidayhomesverce/internal/app"
	"github.com/o2scale/goodboyholidayhomesverce/internal/config"
	"github.com/o2scale/goodboyholidayhomesverce/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize booking-service:", err)
	}

	c := cron.New()
	_, cronErr := c.AddFunc(cfg.DigestCronSpec, func() {
		if e := application.Digest.RunPendingDigest(context.Background()); e != nil {
			utils.Logger.WithError(e).Error("Pending-booking digest failed")
		}
	})
	if cronErr != nil {
		utils.Logger.WithError(cronErr).Fatal("Failed to schedule pending-booking digest cron")
	}
	c.Start()

	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppURL, "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", config.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(application.Router)); err != nil {
		utils.Logger.Fatal("booking-service failed to start:", err)
	}
}
