package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/durcevicjuraj/calorie-tracker-web/models"
)

const (
	// RetentionDays bounds how far back reconciliation looks and how long
	// aggregate rows are kept before the purge removes them.
	RetentionDays = 90

	// EditableWindowDays is the trailing window during which a day's
	// consumed totals may still be corrected by hand. A snapshot dated
	// exactly EditableWindowDays before today is still editable.
	EditableWindowDays = 7
)

type HistoryService struct {
	db    *gorm.DB
	goals *GoalService
	now   func() time.Time
}

func NewHistoryService(db *gorm.DB, goals *GoalService) *HistoryService {
	return &HistoryService{db: db, goals: goals, now: time.Now}
}

// Reconcile materializes a daily history row for every date carrying log
// entries within the retention horizon, then purges rows that aged out.
// It runs on access, not on a schedule: a date's goals get frozen at
// whatever moment the user first views history after logging.
//
// A failure on one date does not stop the others; per-date errors are
// joined into the return value.
func (s *HistoryService) Reconcile(userID uint) error {
	horizon := s.now().AddDate(0, 0, -RetentionDays).Format(dateLayout)

	var dates []string
	if err := s.db.Model(&models.ConsumptionLog{}).
		Distinct("date").
		Where("user_id = ? AND date >= ?", userID, horizon).
		Pluck("date", &dates).Error; err != nil {
		return err
	}

	goal, err := s.goals.Get(userID)
	if err != nil {
		return err
	}

	var errs []error
	for _, date := range dates {
		if err := s.materialize(userID, date, goal); err != nil {
			slog.Error("materialize failed", "user_id", userID, "date", date, "err", err)
			errs = append(errs, fmt.Errorf("date %s: %w", date, err))
		}
	}

	// Expiry is unconditional: aged-out rows are removed for good, not
	// soft-deleted.
	if err := s.db.Unscoped().
		Where("user_id = ? AND date < ?", userID, horizon).
		Delete(&models.DailyHistory{}).Error; err != nil {
		errs = append(errs, fmt.Errorf("purge: %w", err))
	}

	return errors.Join(errs...)
}

type consumedTotals struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Sugar    float64
	Fiber    float64
}

// materialize sums the date's log entries and upserts the aggregate row in
// a single conditional write. On first insert the current goals are frozen
// onto the row; on conflict only the consumed columns and updated_at are
// touched, so two concurrent reconciliations cannot clobber frozen goals
// and the loser of the race just rewrites identical sums.
func (s *HistoryService) materialize(userID uint, date string, goal *models.DailyGoal) error {
	var t consumedTotals
	if err := s.db.Model(&models.ConsumptionLog{}).
		Select(
			"COALESCE(SUM(calories), 0) AS calories, " +
				"COALESCE(SUM(protein), 0) AS protein, " +
				"COALESCE(SUM(carbs), 0) AS carbs, " +
				"COALESCE(SUM(fat), 0) AS fat, " +
				"COALESCE(SUM(sugar), 0) AS sugar, " +
				"COALESCE(SUM(fiber), 0) AS fiber").
		Where("user_id = ? AND date = ?", userID, date).
		Scan(&t).Error; err != nil {
		return err
	}

	row := models.DailyHistory{
		UserID:       userID,
		Date:         date,
		CaloriesGoal: goal.Calories,
		ProteinGoal:  goal.Protein,
		CarbsGoal:    goal.Carbs,
		FatGoal:      goal.Fat,
		SugarGoal:    goal.Sugar,
		FiberGoal:    goal.Fiber,
		Calories:     t.Calories,
		Protein:      t.Protein,
		Carbs:        t.Carbs,
		Fat:          t.Fat,
		Sugar:        t.Sugar,
		Fiber:        t.Fiber,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"calories", "protein", "carbs", "fat", "sugar", "fiber", "updated_at",
		}),
	}).Create(&row).Error
}

func (s *HistoryService) List(userID uint) ([]models.DailyHistory, error) {
	var out []models.DailyHistory
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&out).Error
	return out, err
}

type ConsumedInput struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Sugar    float64 `json:"sugar"`
	Fiber    float64 `json:"fiber"`
}

// UpdateConsumed overwrites a materialized day's consumed totals with a
// manual correction. Only allowed inside the editable window; the goal
// columns stay frozen either way.
func (s *HistoryService) UpdateConsumed(userID uint, date string, in ConsumedInput) (*models.DailyHistory, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"calories", in.Calories},
		{"protein", in.Protein},
		{"carbs", in.Carbs},
		{"fat", in.Fat},
		{"sugar", in.Sugar},
		{"fiber", in.Fiber},
	} {
		if f.value < 0 {
			return nil, validationf("%s must not be negative, got %v", f.name, f.value)
		}
	}

	cutoff := s.now().AddDate(0, 0, -EditableWindowDays).Format(dateLayout)
	if date < cutoff {
		return nil, ErrForbidden
	}

	var row models.DailyHistory
	if err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	row.Calories = in.Calories
	row.Protein = in.Protein
	row.Carbs = in.Carbs
	row.Fat = in.Fat
	row.Sugar = in.Sugar
	row.Fiber = in.Fiber
	if err := s.db.Save(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
