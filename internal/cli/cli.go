package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/vbonduro/foodlog/internal/domain"
)

// mealLogger is the subset of service.MealService that App requires.
type mealLogger interface {
	EstimateNutrition(ctx context.Context, description string) (*domain.Estimate, error)
	LogMeal(ctx context.Context, description string, estimate domain.Estimate) (*domain.Meal, error)
}

// App runs one logging session: read a meal, estimate it, record it.
type App struct {
	prompter  Prompter
	meals     mealLogger
	out       *Printer
	storeName string
}

func New(prompter Prompter, meals mealLogger, w io.Writer, storeName string) *App {
	return &App{
		prompter:  prompter,
		meals:     meals,
		out:       NewPrinter(w),
		storeName: storeName,
	}
}

// Run reports estimation and persist failures to the user and returns nil for
// them. The only returned error is a failure to read input.
func (a *App) Run(ctx context.Context) error {
	a.out.Success("Food Logger Initialized")

	description, err := a.prompter.ReadMeal(ctx)
	if err != nil {
		return fmt.Errorf("failed to read meal: %w", err)
	}
	if description == "" {
		a.out.Info("No input provided. Exiting.")
		return nil
	}

	a.out.Step("🧠 Analyzing nutrition...")
	estimate, err := a.meals.EstimateNutrition(ctx, description)
	if err != nil {
		a.out.Error("Failed to get or parse nutrition data: %v", err)
		return nil
	}
	a.out.Info("📊 Estimated Nutrition: %d kcal, %dg protein, %dg fiber", estimate.Calories, estimate.Protein, estimate.Fiber)

	a.out.Step("📝 Sending data to %s...", a.storeName)
	if _, err := a.meals.LogMeal(ctx, description, *estimate); err != nil {
		a.out.Error("Failed to write to %s. Check your database ID and permissions.", a.storeName)
		a.out.Detail("Details: %v", err)
		return nil
	}

	a.out.Success("Successfully logged your meal to %s!", a.storeName)
	return nil
}
