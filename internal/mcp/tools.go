// ABOUTME: MCP tool implementations over the willow store.
// ABOUTME: Habit, task, log, supplement, pet, and protocol operations.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/willow/internal/insights"
	"github.com/harperreed/willow/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_habit",
		Description: "Create a new habit to track",
	}, s.handleAddHabit)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_habits",
		Description: "List habits with streaks and today's completion state",
	}, s.handleListHabits)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "toggle_habit",
		Description: "Toggle a habit's completion for a date (defaults to today)",
	}, s.handleToggleHabit)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_task",
		Description: "Schedule a timeline task on a date and time slot",
	}, s.handleAddTask)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "complete_task",
		Description: "Mark a timeline task completed (or not)",
	}, s.handleCompleteTask)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_meal",
		Description: "Log a meal (grants the companion experience)",
	}, s.handleLogMeal)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_symptom",
		Description: "Log a symptom with optional 1-5 severity",
	}, s.handleLogSymptom)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "take_supplement",
		Description: "Record taking one dose of a supplement",
	}, s.handleTakeSupplement)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "restock_forecast",
		Description: "Days of supply remaining per supplement, most urgent first",
	}, s.handleRestockForecast)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "pet_status",
		Description: "Get the companion's level, xp, and mood",
	}, s.handlePetStatus)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "join_protocol",
		Description: "Join a protocol from the catalog by id",
	}, s.handleJoinProtocol)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "progress_stats",
		Description: "Global streak, weekly consistency, and active-day count",
	}, s.handleProgressStats)
}

// Tool input/output types

type addHabitInput struct {
	Title string `json:"title" jsonschema:"description=Habit title,required"`
	Color string `json:"color,omitempty" jsonschema:"description=Color tag"`
	Icon  string `json:"icon,omitempty" jsonschema:"description=Icon name"`
}

type habitOutput struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type listHabitsInput struct{}

type habitListEntry struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Streak        int    `json:"streak"`
	DoneToday     bool   `json:"done_today"`
	TotalComplete int    `json:"total_completions"`
}

type listHabitsOutput struct {
	Habits []habitListEntry `json:"habits"`
}

type toggleHabitInput struct {
	ID   string `json:"id" jsonschema:"description=Habit ID or prefix,required"`
	Date string `json:"date,omitempty" jsonschema:"description=Day (YYYY-MM-DD), defaults to today"`
}

type toggleHabitOutput struct {
	Completed bool   `json:"completed"`
	XP        int    `json:"xp"`
	Level     int    `json:"level"`
	Message   string `json:"message"`
}

type addTaskInput struct {
	Title string `json:"title" jsonschema:"description=Task title,required"`
	Date  string `json:"date,omitempty" jsonschema:"description=Day (YYYY-MM-DD), defaults to today"`
	Time  string `json:"time,omitempty" jsonschema:"description=Slot (HH:mm), defaults to 09:00"`
	Type  string `json:"type,omitempty" jsonschema:"description=Task type (habit, todo, medication, meal, event)"`
}

type taskOutput struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type completeTaskInput struct {
	ID   string `json:"id" jsonschema:"description=Task ID or prefix,required"`
	Undo bool   `json:"undo,omitempty" jsonschema:"description=Un-complete instead"`
}

type logMealInput struct {
	Label    string `json:"label" jsonschema:"description=What was eaten,required"`
	MealType string `json:"meal_type,omitempty" jsonschema:"description=breakfast, lunch, dinner, or snack"`
	Notes    string `json:"notes,omitempty" jsonschema:"description=Optional notes"`
}

type logSymptomInput struct {
	Label    string `json:"label" jsonschema:"description=Symptom name,required"`
	Severity int    `json:"severity,omitempty" jsonschema:"description=Severity 1-5"`
	Notes    string `json:"notes,omitempty" jsonschema:"description=Optional notes"`
}

type takeSupplementInput struct {
	Supplement string `json:"supplement" jsonschema:"description=Supplement ID, prefix, or name,required"`
}

type takeSupplementOutput struct {
	Name      string `json:"name"`
	StockLeft int    `json:"stock_left"`
	DaysLeft  int    `json:"days_left"`
	Message   string `json:"message"`
}

type restockForecastInput struct{}

type restockEntry struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Stock    int    `json:"stock"`
	DaysLeft int    `json:"days_left"`
	LowStock bool   `json:"low_stock"`
	Critical bool   `json:"critical"`
}

type restockForecastOutput struct {
	Supplements []restockEntry `json:"supplements"`
}

type petStatusInput struct{}

type petStatusOutput struct {
	Name     string `json:"name"`
	Species  string `json:"species"`
	Level    int    `json:"level"`
	XP       int    `json:"xp"`
	Progress int    `json:"level_progress"`
	Mood     string `json:"mood"`
}

type joinProtocolInput struct {
	ID string `json:"id" jsonschema:"description=Protocol id from the catalog,required"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type progressStatsInput struct{}

type progressStatsOutput struct {
	Streak      int `json:"streak"`
	Consistency int `json:"consistency_pct"`
	ActiveDays  int `json:"active_days"`
}

// Tool handlers

func (s *Server) handleAddHabit(ctx context.Context, req *mcp.CallToolRequest, input addHabitInput) (*mcp.CallToolResult, habitOutput, error) {
	if input.Title == "" {
		return nil, habitOutput{}, fmt.Errorf("habit title must not be empty")
	}

	h := models.NewHabit(input.Title, input.Color, input.Icon)
	if err := s.store.AddHabit(h); err != nil {
		return nil, habitOutput{}, fmt.Errorf("failed to add habit: %w", err)
	}

	return nil, habitOutput{
		ID:      h.ID.String(),
		Title:   h.Title,
		Message: fmt.Sprintf("Added habit %q", h.Title),
	}, nil
}

func (s *Server) handleListHabits(ctx context.Context, req *mcp.CallToolRequest, input listHabitsInput) (*mcp.CallToolResult, listHabitsOutput, error) {
	doc := s.store.Snapshot()
	today := models.Today()

	out := listHabitsOutput{}
	for _, h := range doc.Habits {
		out.Habits = append(out.Habits, habitListEntry{
			ID:            h.ID.String(),
			Title:         h.Title,
			Streak:        h.Streak,
			DoneToday:     h.CompletedOn(today),
			TotalComplete: len(h.CompletedDates),
		})
	}
	return nil, out, nil
}

func (s *Server) handleToggleHabit(ctx context.Context, req *mcp.CallToolRequest, input toggleHabitInput) (*mcp.CallToolResult, toggleHabitOutput, error) {
	h, err := findHabit(s.store.Snapshot(), input.ID)
	if err != nil {
		return nil, toggleHabitOutput{}, err
	}

	date := input.Date
	if date == "" {
		date = models.Today()
	} else if _, err := time.Parse(models.DayFormat, date); err != nil {
		return nil, toggleHabitOutput{}, fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", date)
	}

	if err := s.store.ToggleHabit(h.ID, date); err != nil {
		return nil, toggleHabitOutput{}, fmt.Errorf("failed to toggle habit: %w", err)
	}

	pet := s.store.Pet()
	completed := !h.CompletedOn(date)
	verb := "completed"
	if !completed {
		verb = "un-completed"
	}
	return nil, toggleHabitOutput{
		Completed: completed,
		XP:        pet.XP,
		Level:     pet.Level,
		Message:   fmt.Sprintf("%s %s for %s", h.Title, verb, date),
	}, nil
}

func (s *Server) handleAddTask(ctx context.Context, req *mcp.CallToolRequest, input addTaskInput) (*mcp.CallToolResult, taskOutput, error) {
	if input.Title == "" {
		return nil, taskOutput{}, fmt.Errorf("task title must not be empty")
	}

	date := input.Date
	if date == "" {
		date = models.Today()
	}
	clock := input.Time
	if clock == "" {
		clock = "09:00"
	}
	taskType := models.TaskTodo
	if input.Type != "" {
		if !models.IsValidTaskType(input.Type) {
			return nil, taskOutput{}, fmt.Errorf("unknown task type: %s", input.Type)
		}
		taskType = models.TaskType(input.Type)
	}

	t := models.NewTimelineTask(input.Title, taskType, date, clock)
	if err := s.store.AddTimelineTask(t); err != nil {
		return nil, taskOutput{}, fmt.Errorf("failed to add task: %w", err)
	}

	return nil, taskOutput{
		ID:      t.ID.String(),
		Title:   t.Title,
		Message: fmt.Sprintf("Scheduled %q at %s on %s", t.Title, t.Time, t.Date),
	}, nil
}

func (s *Server) handleCompleteTask(ctx context.Context, req *mcp.CallToolRequest, input completeTaskInput) (*mcp.CallToolResult, simpleOutput, error) {
	t, err := findTask(s.store.Snapshot(), input.ID)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	updated := *t
	updated.Completed = !input.Undo
	if err := s.store.UpdateTimelineTask(&updated); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to update task: %w", err)
	}

	verb := "Completed"
	if input.Undo {
		verb = "Reopened"
	}
	return nil, simpleOutput{Message: fmt.Sprintf("%s %q", verb, t.Title)}, nil
}

func (s *Server) handleLogMeal(ctx context.Context, req *mcp.CallToolRequest, input logMealInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.Label == "" {
		return nil, simpleOutput{}, fmt.Errorf("meal label must not be empty")
	}

	l := models.NewHealthLog(models.LogFood, input.Label)
	if input.MealType != "" {
		if !models.IsValidMealType(input.MealType) {
			return nil, simpleOutput{}, fmt.Errorf("unknown meal type: %s", input.MealType)
		}
		l.WithMealType(models.MealType(input.MealType))
	}
	if input.Notes != "" {
		l.WithNotes(input.Notes)
	}

	if err := s.store.AddHealthLog(l); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log meal: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Logged meal %q", input.Label)}, nil
}

func (s *Server) handleLogSymptom(ctx context.Context, req *mcp.CallToolRequest, input logSymptomInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.Label == "" {
		return nil, simpleOutput{}, fmt.Errorf("symptom label must not be empty")
	}

	l := models.NewHealthLog(models.LogSymptom, input.Label)
	if input.Severity != 0 {
		if !models.IsValidSeverity(input.Severity) {
			return nil, simpleOutput{}, fmt.Errorf("severity must be 1-5, got %d", input.Severity)
		}
		l.WithSeverity(input.Severity)
	}
	if input.Notes != "" {
		l.WithNotes(input.Notes)
	}

	if err := s.store.AddHealthLog(l); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log symptom: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Logged symptom %q", input.Label)}, nil
}

func (s *Server) handleTakeSupplement(ctx context.Context, req *mcp.CallToolRequest, input takeSupplementInput) (*mcp.CallToolResult, takeSupplementOutput, error) {
	supp, err := findSupplement(s.store.Snapshot(), input.Supplement)
	if err != nil {
		return nil, takeSupplementOutput{}, err
	}

	if err := s.store.TakeSupplement(supp.ID); err != nil {
		return nil, takeSupplementOutput{}, fmt.Errorf("failed to take supplement: %w", err)
	}

	after, err := findSupplement(s.store.Snapshot(), supp.ID.String())
	if err != nil {
		return nil, takeSupplementOutput{}, err
	}
	return nil, takeSupplementOutput{
		Name:      after.Name,
		StockLeft: after.Stock,
		DaysLeft:  after.DaysRemaining(),
		Message:   fmt.Sprintf("Took %s, %d pills left", after.Name, after.Stock),
	}, nil
}

func (s *Server) handleRestockForecast(ctx context.Context, req *mcp.CallToolRequest, input restockForecastInput) (*mcp.CallToolResult, restockForecastOutput, error) {
	doc := s.store.Snapshot()

	out := restockForecastOutput{}
	for _, supp := range insights.RankRestock(doc.Supplements) {
		out.Supplements = append(out.Supplements, restockEntry{
			Name:     supp.Name,
			Category: string(supp.Category),
			Stock:    supp.Stock,
			DaysLeft: supp.DaysRemaining(),
			LowStock: supp.LowStock(),
			Critical: supp.Critical(),
		})
	}
	return nil, out, nil
}

func (s *Server) handlePetStatus(ctx context.Context, req *mcp.CallToolRequest, input petStatusInput) (*mcp.CallToolResult, petStatusOutput, error) {
	pet := s.store.Pet()
	return nil, petStatusOutput{
		Name:     pet.Name,
		Species:  string(pet.Species),
		Level:    pet.Level,
		XP:       pet.XP,
		Progress: pet.LevelProgress(),
		Mood:     string(pet.Mood),
	}, nil
}

func (s *Server) handleJoinProtocol(ctx context.Context, req *mcp.CallToolRequest, input joinProtocolInput) (*mcp.CallToolResult, simpleOutput, error) {
	if s.store.Joined(input.ID) {
		return nil, simpleOutput{Message: "Already joined"}, nil
	}
	if err := s.store.JoinProtocol(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to join protocol: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Joined protocol %s", input.ID)}, nil
}

func (s *Server) handleProgressStats(ctx context.Context, req *mcp.CallToolRequest, input progressStatsInput) (*mcp.CallToolResult, progressStatsOutput, error) {
	doc := s.store.Snapshot()
	now := time.Now()
	return nil, progressStatsOutput{
		Streak:      insights.Streak(doc.Habits, now),
		Consistency: insights.Consistency(doc.Habits, now),
		ActiveDays:  insights.ActiveDays(doc.Habits),
	}, nil
}
