package services

import (
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/durcevicjuraj/calorie-tracker-web/models"
)

const dateLayout = "2006-01-02"

// Placeholder display names for entries logged without one.
const (
	manualEntryName = "Quick add"
	adHocEntryName  = "Custom meal"
)

type ConsumptionService struct {
	db    *gorm.DB
	meals *MealService
	hub   *RealtimeHub // nil outside the server process
}

func NewConsumptionService(db *gorm.DB, meals *MealService, hub *RealtimeHub) *ConsumptionService {
	return &ConsumptionService{db: db, meals: meals, hub: hub}
}

func validateDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return validationf("date must be in YYYY-MM-DD form, got %q", date)
	}
	return nil
}

// LogMeal snapshots the meal's stored totals times the serving quantity.
// The snapshot is written once; later edits to the meal never touch it.
func (s *ConsumptionService) LogMeal(userID, mealID uint, quantity float64, date, notes string) (*models.ConsumptionLog, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, validationf("quantity must be positive, got %v", quantity)
	}

	meal, err := s.meals.GetMeal(userID, mealID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrSourceNotFound
		}
		return nil, err
	}

	entry := &models.ConsumptionLog{
		UserID:    userID,
		MealID:    &mealID,
		Name:      meal.Name,
		Quantity:  quantity,
		Date:      date,
		Nutrients: scaleNutrients(meal.Nutrients, quantity),
		Notes:     notes,
	}
	return s.create(entry)
}

// LogAdHoc logs a one-off combination of foods without requiring a saved
// meal. With saveAsMeal the combination is persisted as a reusable meal
// first and the entry references it ("save and log").
func (s *ConsumptionService) LogAdHoc(userID uint, name string, items []MealItemInput, saveAsMeal bool, date, notes string) (*models.ConsumptionLog, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyComposition
	}
	if name == "" {
		name = adHocEntryName
	}

	if saveAsMeal {
		meal, err := s.meals.AddMeal(userID, MealInput{Name: name, Items: items})
		if err != nil {
			return nil, err
		}
		return s.LogMeal(userID, meal.ID, 1, date, notes)
	}

	totals, err := s.meals.Compute(items)
	if err != nil {
		return nil, err
	}
	entry := &models.ConsumptionLog{
		UserID:    userID,
		Name:      name,
		Quantity:  1,
		Date:      date,
		Nutrients: totals,
		Notes:     notes,
	}
	return s.create(entry)
}

// LogManual records caller-supplied nutrient values with no composition
// logic involved.
func (s *ConsumptionService) LogManual(userID uint, name string, n models.Nutrients, date, notes string) (*models.ConsumptionLog, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"calories", n.Calories},
		{"protein", n.Protein},
		{"carbs", n.Carbs},
		{"fat", n.Fat},
	} {
		if f.value < 0 {
			return nil, validationf("%s must not be negative, got %v", f.name, f.value)
		}
	}
	if n.Sugar != nil && *n.Sugar < 0 {
		return nil, validationf("sugar must not be negative, got %v", *n.Sugar)
	}
	if n.Fiber != nil && *n.Fiber < 0 {
		return nil, validationf("fiber must not be negative, got %v", *n.Fiber)
	}
	if name == "" {
		name = manualEntryName
	}

	entry := &models.ConsumptionLog{
		UserID:    userID,
		Name:      name,
		Quantity:  1,
		Date:      date,
		Nutrients: n,
		Notes:     notes,
	}
	return s.create(entry)
}

func (s *ConsumptionService) create(entry *models.ConsumptionLog) (*models.ConsumptionLog, error) {
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}
	s.notify(entry.UserID, entry.Date)
	return entry, nil
}

func (s *ConsumptionService) List(userID uint, from, to string) ([]models.ConsumptionLog, error) {
	if err := validateDate(from); err != nil {
		return nil, err
	}
	if err := validateDate(to); err != nil {
		return nil, err
	}
	var out []models.ConsumptionLog
	err := s.db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date DESC, created_at DESC").
		Find(&out).Error
	return out, err
}

func (s *ConsumptionService) Delete(userID, id uint) error {
	var entry models.ConsumptionLog
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.db.Delete(&entry).Error; err != nil {
		return err
	}
	s.notify(userID, entry.Date)
	return nil
}

// notify tells connected clients that a date's log changed so they can
// refetch the day.
func (s *ConsumptionService) notify(userID uint, date string) {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(userID, map[string]any{
		"kind": "log.updated",
		"date": date,
	})
	slog.Debug("broadcast log update", "user_id", userID, "date", date)
}
