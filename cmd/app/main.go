// @title UR Adapter API
// @version 1.0.0
// @description API для управления роботами Universal Robots по TCP, передачи движений в симулятор и отправки событий в Kafka.
// @host localhost:8083
// @BasePath /api/v1
package main

import "github.com/iwtcode/urAdapter/internal/app"

func main() {
	// Создаем и запускаем новый экземпляр приложения fx
	app.New().Run()
}
