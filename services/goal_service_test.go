package services

import (
	"errors"
	"testing"
)

func TestGoalsDefaultWhenUnset(t *testing.T) {
	db := openTestDB(t)
	goals := NewGoalService(db)

	goal, err := goals.Get(42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if goal.Calories != 2000 || goal.Protein != 50 {
		t.Errorf("expected defaults, got %+v", goal)
	}
	if goal.Sugar != nil || goal.Fiber != nil {
		t.Errorf("expected unset optional targets, got %+v", goal)
	}
}

func TestGoalsUpsertInPlace(t *testing.T) {
	db := openTestDB(t)
	goals := NewGoalService(db)

	first, err := goals.Upsert(1, GoalInput{Calories: 2200, Protein: 120, Carbs: 275, Fat: 70})
	if err != nil {
		t.Fatalf("failed to create goals: %v", err)
	}
	second, err := goals.Upsert(1, GoalInput{Calories: 1800, Protein: 100, Carbs: 200, Fat: 60})
	if err != nil {
		t.Fatalf("failed to update goals: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("expected in-place update, got new row %d vs %d", second.ID, first.ID)
	}
	if second.Calories != 1800 {
		t.Errorf("expected updated calories 1800, got %v", second.Calories)
	}

	var count int64
	db.Model(first).Where("user_id = ?", 1).Count(&count)
	if count != 1 {
		t.Errorf("expected exactly one goal row, got %d", count)
	}
}

func TestGoalsValidation(t *testing.T) {
	db := openTestDB(t)
	goals := NewGoalService(db)

	var ve *ValidationError
	_, err := goals.Upsert(1, GoalInput{Calories: 0, Protein: 100, Carbs: 200, Fat: 60})
	if !errors.As(err, &ve) {
		t.Errorf("expected ValidationError for zero calories, got %v", err)
	}

	neg := -5.0
	_, err = goals.Upsert(1, GoalInput{Calories: 2000, Protein: 100, Carbs: 200, Fat: 60, Sugar: &neg})
	if !errors.As(err, &ve) {
		t.Errorf("expected ValidationError for negative sugar, got %v", err)
	}
}
