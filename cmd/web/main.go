package main

import "github.com/alinamiashalkina/event-creator/internal/app"

func main() {
	app.Run()
}
