package domain

import "time"

// Estimate is a normalized nutrition estimate for one meal.
type Estimate struct {
	Calories int
	Protein  int
	Fiber    int
}

// Meal is the record written to the record store for one logged meal.
type Meal struct {
	ID        int64
	Name      string
	Calories  int
	Protein   int
	Fiber     int
	Date      string
	CreatedAt time.Time
}
