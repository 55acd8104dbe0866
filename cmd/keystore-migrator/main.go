package main

import "github.com/venafi/keystore-migrator/cmd/keystore-migrator/app"

func main() {
	app.New().Run()
}
