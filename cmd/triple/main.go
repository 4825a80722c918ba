package main

import (
	"github.com/cashapp/triple/app"
)

var version = "devel"

func main() {
	app.Main(app.Config{Version: version})
}
