package main

import "carelink_backend/internal/app"

func main() {
	app.Run()
}
