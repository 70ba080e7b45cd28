package main

import (
	cfg "frameless/src/configuration"
	server "frameless/src/server"
)

func main() {
	config := cfg.ReadProperties()
	server.RunServer(config)
}
