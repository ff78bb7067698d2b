package main

import (
	"context"
	"fmt"
	"time"

	"github.com/questio/questio-backend/internal/config"
	"github.com/questio/questio-backend/internal/database"
	"github.com/questio/questio-backend/internal/logger"
	"github.com/questio/questio-backend/internal/model"
	"github.com/questio/questio-backend/internal/repository"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	questionRepo := repository.NewQuestionRepository(pool)

	questions := []model.Question{
		{
			Title:     "Soma de dois inteiros",
			Statement: "Leia dois inteiros e imprima a soma.",
			Tags:      []string{"iniciante", "aritmética"},
			Cases: []model.ExpectedCase{
				{Inputs: []string{"2", "3"}, Output: "5"},
				{Inputs: []string{"4", "4"}, Output: "8"},
				{Inputs: []string{"-1", "1"}, Output: "0"},
			},
		},
		{
			Title:     "Par ou ímpar",
			Statement: "Leia um inteiro e imprima PAR ou IMPAR.",
			Tags:      []string{"iniciante", "condicionais"},
			Cases: []model.ExpectedCase{
				{Inputs: []string{"4"}, Output: "PAR"},
				{Inputs: []string{"7"}, Output: "IMPAR"},
			},
		},
		{
			Title:     "Maior de três",
			Statement: "Leia três inteiros e imprima o maior.",
			Tags:      []string{"condicionais"},
			Cases: []model.ExpectedCase{
				{Inputs: []string{"1", "2", "3"}, Output: "3"},
				{Inputs: []string{"9", "2", "3"}, Output: "9"},
				{Inputs: []string{"1", "8", "3"}, Output: "8"},
			},
		},
		{
			Title:     "Fatorial",
			Statement: "Leia um inteiro n e imprima n!.",
			Tags:      []string{"laços", "aritmética"},
			Cases: []model.ExpectedCase{
				{Inputs: []string{"0"}, Output: "1"},
				{Inputs: []string{"5"}, Output: "120"},
			},
		},
	}

	fmt.Printf("=== Seeding %d Questions ===\n", len(questions))

	successCount := 0
	for i := range questions {
		if err := questionRepo.Create(ctx, &questions[i]); err != nil {
			log.Error().Err(err).Str("title", questions[i].Title).Msg("Failed to seed question")
			continue
		}
		fmt.Printf("Created question %q with ID: %s\n", questions[i].Title, questions[i].ID)
		successCount++
	}

	fmt.Printf("Done. %d/%d questions created.\n", successCount, len(questions))
}
