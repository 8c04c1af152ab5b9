package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kuxall/portfolio-data/controller"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio api",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, portfolioService, err := setupServices(context.Background(), *cfg)
		if err != nil {
			return err
		}

		apiController := controller.NewAPIController(*cfg, portfolioService)

		gin.SetMode(gin.ReleaseMode)

		server := &http.Server{
			Addr:    ":" + cfg.API.ListenPort,
			Handler: controller.NewRouter(apiController),
		}

		go func() {
			log.Info("server listening on port " + cfg.API.ListenPort)

			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.WithError(err).Error("error while starting server")
			}
		}()

		// wait for interrupt signal to gracefully shut down the server
		// kill default send syscall.SIGTERM, kill -2 is syscall.SIGINT
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Info("SIGINT, SIGTERM received, will shut down server ...")

		// the server has 15 seconds to finish the requests it is currently handling
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.WithError(err).Error("Server forced to shutdown")
		} else {
			log.Info("Application stopped gracefully !")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
