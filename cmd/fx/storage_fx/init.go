package storage_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"tripsmith/internal/infra"
	"tripsmith/internal/repositories"
)

var Module = fx.Provide(ProvideRepositories)

// ProvideRepositories selects the storage backend. Memory is the default;
// postgres persists across restarts when POSTGRES_URL points somewhere real.
func ProvideRepositories() (repositories.AnswerRepository, repositories.ItineraryRepository) {
	backend := os.Getenv("STORAGE_BACKEND")
	if backend == "" {
		backend = "memory"
	}

	switch strings.ToLower(backend) {
	case "postgres":
		log.Println("Using postgres storage backend")
		db := infra.InitPostgresql()
		return repositories.NewPostgresAnswerRepository(db), repositories.NewPostgresItineraryRepository(db)
	default:
		log.Println("Using in-memory storage backend")
		return repositories.NewMemoryAnswerRepository(), repositories.NewMemoryItineraryRepository()
	}
}
