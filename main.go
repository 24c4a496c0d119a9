package main

import (
	"eventsphere_backend/startup"
	"eventsphere_backend/startup/config"
)

func main() {
	cfg := config.NewConfig()
	server := startup.NewServer(cfg)
	server.Start()
}
