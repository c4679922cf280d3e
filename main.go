package main

import "study-forum-app/config"

func main() {
	config.RunServer()
}
