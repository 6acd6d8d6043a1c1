package main

import (
	"orderflow/config"
	httpapi "orderflow/internal/api/http"
	"orderflow/internal/menu"
	"orderflow/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewMenuRepository(db)
	qr := menu.DefaultQRGenerator{BaseURL: config.Getenv("PUBLIC_BASE_URL", "http://localhost:8080")}
	service := menu.NewService(repo, qr)

	router := httpapi.NewRouter(httpapi.NewMenuHandler(service))
	httpapi.StartServer(":"+config.Getenv("PORT", "8080"), router)
}
