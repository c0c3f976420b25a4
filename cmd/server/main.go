package main

import (
	"context"
	"log"

	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
