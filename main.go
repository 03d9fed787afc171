package main

import (
	"github.com/LeJxrxm/bg3-planner/cmd/app"
)

func main() {
	app.Run()
}
