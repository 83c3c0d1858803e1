package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/jooseppp/soveldaja-kassa-front/configs"
	"github.com/jooseppp/soveldaja-kassa-front/middlewares"
	"github.com/jooseppp/soveldaja-kassa-front/pkg/barapi"
	"github.com/jooseppp/soveldaja-kassa-front/repository"
	"github.com/jooseppp/soveldaja-kassa-front/routes"
	"github.com/jooseppp/soveldaja-kassa-front/services"
)

func main() {
	cfg := configs.LoadConfig()

	// DB holds the little state the terminal keeps across restarts
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	api := barapi.NewClient(cfg.APIBaseURL)
	store := repository.NewSessionRepository(configs.DB())
	cart := services.NewCartService()
	svc := services.NewSessionService(api, store, cart)
	edit := services.NewEditService(api)

	// Re-select the register from the previous run, if it still exists
	svc.Restore(context.Background())

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, cfg, svc, edit)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("terminal gateway running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
