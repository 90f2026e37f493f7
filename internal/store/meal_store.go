package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/vbonduro/foodlog/internal/domain"
)

// MealStore keeps logged meals in a local SQLite database. It satisfies
// recordstore.RecordStore.
type MealStore struct {
	db *sql.DB
}

func NewMealStore(db *sql.DB) *MealStore {
	return &MealStore{db: db}
}

func (s *MealStore) Create(ctx context.Context, meal *domain.Meal) (string, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO meals (name, calories, protein, fiber, logged_on) VALUES (?, ?, ?, ?, ?)
	`, meal.Name, meal.Calories, meal.Protein, meal.Fiber, meal.Date)
	if err != nil {
		return "", fmt.Errorf("failed to create meal: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("failed to get last insert id: %w", err)
	}

	return strconv.FormatInt(id, 10), nil
}

func (s *MealStore) GetByID(ctx context.Context, id int64) (*domain.Meal, error) {
	meal := &domain.Meal{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, calories, protein, fiber, logged_on, created_at FROM meals WHERE id = ?
	`, id).Scan(&meal.ID, &meal.Name, &meal.Calories, &meal.Protein, &meal.Fiber, &meal.Date, &meal.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get meal: %w", err)
	}

	return meal, nil
}
