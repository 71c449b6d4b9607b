package main

import (
	"github.com/miles-app/miles-backend/api"
)

var envPath string = "."

func main() {
	server := api.NewServer(envPath)
	server.Start()
}
