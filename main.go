package main

import (
	"context"
	"os"
	"time"

	api "github.com/OvyFlash/telegram-bot-api"
	log "github.com/sirupsen/logrus"

	"github.com/R0Xofficial/MyCatBot/internal/bot"
	"github.com/R0Xofficial/MyCatBot/internal/config"
	"github.com/R0Xofficial/MyCatBot/internal/db/sqlite"
	"github.com/R0Xofficial/MyCatBot/internal/handlers"
	"github.com/R0Xofficial/MyCatBot/internal/infra"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatalln("cant load config")
	}
	log.SetFormatter(&config.CbFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.Level(cfg.LogLevel))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	infra.GoRecoverable(-1, "main", func() {
		botAPI, err := api.NewBotAPI(cfg.TelegramAPIToken)
		if err != nil {
			log.WithError(err).Errorln("cant initialize bot api")
			time.Sleep(1 * time.Second)
			log.Fatalln("exiting")
		}
		if log.Level(cfg.LogLevel) == log.TraceLevel {
			botAPI.Debug = true
		}
		defer botAPI.StopReceivingUpdates()

		dbClient, err := sqlite.NewSQLiteClient(ctx, infra.GetWorkDir(cfg.DotPath), "catbot.db")
		if err != nil {
			log.WithError(err).Fatalln("cant open database")
		}
		defer dbClient.Close()

		service := bot.NewService(botAPI, dbClient, cfg)

		bot.RegisterUpdateHandler("directory", handlers.NewDirectory(service))
		bot.RegisterUpdateHandler("gate", handlers.NewGate(service))
		bot.RegisterUpdateHandler("admin", handlers.NewAdmin(service))
		bot.RegisterUpdateHandler("cat", handlers.NewCat(service))

		if cfg.LogChatID != 0 {
			startup := api.NewMessage(cfg.LogChatID, "Meow! I'm up and listening.")
			if _, err := botAPI.Send(startup); err != nil {
				log.WithError(err).Warnln("cant notify log chat")
			}
		}

		updateConfig := api.NewUpdate(0)
		updateConfig.Timeout = 60
		updateProcessor := bot.NewUpdateProcessor(service)

		updateChan, errorChan := bot.GetUpdatesChans(ctx, botAPI, updateConfig)

		for {
			select {
			case err := <-errorChan:
				log.WithError(err).Fatalln("bot api get updates error")
			case update := <-updateChan:
				if err := updateProcessor.Process(ctx, &update); err != nil {
					log.WithError(err).Errorln("cant process update")
				}
			case <-ctx.Done():
				log.WithError(ctx.Err()).Errorln("no more updates")
				return
			}
		}
	})

	<-infra.MonitorExecutable(ctx)
	log.Errorln("executable file was modified")
	os.Exit(0)
}
