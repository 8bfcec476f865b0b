// cmd/dnastat/main.go
package main

import (
	"dnastat/internal/app"
	"dnastat/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
