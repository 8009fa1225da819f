package main

import "direct-chat-api/config"

func main() {
	config.RunServer()
}
