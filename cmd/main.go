// cmd/main.go
package main

import (
	"bank-transfer-api/app"
)

// @title           Bank Transfer API
// @version         1.0
// @description     Exposes account balances and moves funds between accounts.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
func main() {
	app.Run()
}
