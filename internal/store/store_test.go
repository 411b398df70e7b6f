// ABOUTME: Tests for the state store's mutation and persistence pipeline.
// ABOUTME: Covers xp rules, toggle idempotence, stock floors, and reopening.
package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/willow/internal/models"
	"github.com/harperreed/willow/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	backend, err := storage.OpenFile(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open file backend: %v", err)
	}
	s, err := Open(backend)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewStoreSeedsDefaults(t *testing.T) {
	s := newTestStore(t)

	pet := s.Pet()
	if pet.Name != "Luna" {
		t.Errorf("pet name = %s, want Luna", pet.Name)
	}
	if pet.Level != 1 || pet.XP != 0 {
		t.Errorf("pet level/xp = %d/%d, want 1/0", pet.Level, pet.XP)
	}
	if pet.Mood != models.MoodHappy {
		t.Errorf("pet mood = %s, want happy", pet.Mood)
	}

	doc := s.Snapshot()
	if len(doc.Protocols) != 2 {
		t.Fatalf("seeded protocols = %d, want 2", len(doc.Protocols))
	}
	if doc.Protocols[0].ID != "p1" || doc.Protocols[0].Title != "7-Day Keto Kickstart" {
		t.Errorf("first protocol = %s %q", doc.Protocols[0].ID, doc.Protocols[0].Title)
	}
	if doc.Protocols[1].ID != "p2" || doc.Protocols[1].Title != "Morning Mobility Routine" {
		t.Errorf("second protocol = %s %q", doc.Protocols[1].ID, doc.Protocols[1].Title)
	}
}

func TestToggleHabitGrantsAndRevokesXP(t *testing.T) {
	s := newTestStore(t)
	h := models.NewHabit("Run", "#4caf50", "")
	if err := s.AddHabit(h); err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}

	today := models.Today()
	if err := s.ToggleHabit(h.ID, today); err != nil {
		t.Fatalf("ToggleHabit() error = %v", err)
	}
	if got := s.Pet().XP; got != 10 {
		t.Errorf("xp after complete = %d, want 10", got)
	}

	doc := s.Snapshot()
	if !doc.Habits[0].CompletedOn(today) {
		t.Error("habit should be completed today")
	}
	if doc.Habits[0].Streak != 1 {
		t.Errorf("streak = %d, want 1", doc.Habits[0].Streak)
	}

	// Toggling again undoes the completion and the xp.
	if err := s.ToggleHabit(h.ID, today); err != nil {
		t.Fatalf("ToggleHabit() error = %v", err)
	}
	if got := s.Pet().XP; got != 0 {
		t.Errorf("xp after undo = %d, want 0", got)
	}
	if s.Snapshot().Habits[0].CompletedOn(today) {
		t.Error("habit should be uncompleted after second toggle")
	}
}

func TestToggleHabitUnknownIDIsNoop(t *testing.T) {
	s := newTestStore(t)

	if err := s.ToggleHabit(uuid.New(), models.Today()); err != nil {
		t.Fatalf("ToggleHabit() error = %v", err)
	}
	if got := s.Pet().XP; got != 0 {
		t.Errorf("xp = %d, want 0 for unknown habit", got)
	}
}

func TestXPClampsAtZero(t *testing.T) {
	s := newTestStore(t)

	// A task that arrives already completed grants nothing on add, so
	// un-completing it revokes into the floor.
	task := models.NewTimelineTask("Stretch", models.TaskTodo, models.Today(), "09:00")
	task.Completed = true
	if err := s.AddTimelineTask(task); err != nil {
		t.Fatalf("AddTimelineTask() error = %v", err)
	}

	upd := *task
	upd.Completed = false
	if err := s.UpdateTimelineTask(&upd); err != nil {
		t.Fatalf("UpdateTimelineTask() error = %v", err)
	}

	pet := s.Pet()
	if pet.XP != 0 {
		t.Errorf("xp = %d, want 0 (clamped)", pet.XP)
	}
	if pet.Level != 1 {
		t.Errorf("level = %d, want 1", pet.Level)
	}
}

func TestLevelUpSetsExcitedMood(t *testing.T) {
	s := newTestStore(t)
	h := models.NewHabit("Run", "#4caf50", "")
	if err := s.AddHabit(h); err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}

	// Ten completions on distinct days cross the 100 xp boundary.
	for i := 0; i < 10; i++ {
		date := time.Now().AddDate(0, 0, -i).Format(models.DayFormat)
		if err := s.ToggleHabit(h.ID, date); err != nil {
			t.Fatalf("ToggleHabit() error = %v", err)
		}
	}

	pet := s.Pet()
	if pet.XP != 100 {
		t.Errorf("xp = %d, want 100", pet.XP)
	}
	if pet.Level != 2 {
		t.Errorf("level = %d, want 2", pet.Level)
	}
	if pet.Mood != models.MoodExcited {
		t.Errorf("mood = %s, want excited after level-up", pet.Mood)
	}
	if got := models.LevelForXP(pet.XP); got != pet.Level {
		t.Errorf("level %d does not derive from xp %d", pet.Level, pet.XP)
	}
}

func TestTaskCompletionXP(t *testing.T) {
	s := newTestStore(t)
	task := models.NewTimelineTask("Stretch", models.TaskTodo, models.Today(), "09:00")
	if err := s.AddTimelineTask(task); err != nil {
		t.Fatalf("AddTimelineTask() error = %v", err)
	}
	if got := s.Pet().XP; got != 0 {
		t.Errorf("xp after add = %d, want 0", got)
	}

	done := *task
	done.Completed = true
	if err := s.UpdateTimelineTask(&done); err != nil {
		t.Fatalf("UpdateTimelineTask() error = %v", err)
	}
	if got := s.Pet().XP; got != 10 {
		t.Errorf("xp after complete = %d, want 10", got)
	}

	// Re-saving without a completion flip grants nothing.
	renamed := done
	renamed.Title = "Stretch more"
	if err := s.UpdateTimelineTask(&renamed); err != nil {
		t.Fatalf("UpdateTimelineTask() error = %v", err)
	}
	if got := s.Pet().XP; got != 10 {
		t.Errorf("xp after rename = %d, want 10", got)
	}

	// Deleting a completed task keeps the xp.
	if err := s.DeleteTimelineTask(task.ID); err != nil {
		t.Fatalf("DeleteTimelineTask() error = %v", err)
	}
	if got := s.Pet().XP; got != 10 {
		t.Errorf("xp after delete = %d, want 10", got)
	}
}

func TestUpdateUnknownTaskNoXP(t *testing.T) {
	s := newTestStore(t)

	task := models.NewTimelineTask("Ghost", models.TaskTodo, models.Today(), "09:00")
	task.Completed = true
	if err := s.UpdateTimelineTask(task); err != nil {
		t.Fatalf("UpdateTimelineTask() error = %v", err)
	}

	if got := s.Pet().XP; got != 0 {
		t.Errorf("xp = %d, want 0 for unknown task", got)
	}
	if got := len(s.Snapshot().Timeline); got != 0 {
		t.Errorf("timeline length = %d, want 0", got)
	}
}

func TestFoodLogGrantsXP(t *testing.T) {
	s := newTestStore(t)

	if err := s.AddHealthLog(models.NewHealthLog(models.LogFood, "Oatmeal")); err != nil {
		t.Fatalf("AddHealthLog() error = %v", err)
	}
	if got := s.Pet().XP; got != 10 {
		t.Errorf("xp after food log = %d, want 10", got)
	}

	if err := s.AddHealthLog(models.NewHealthLog(models.LogSymptom, "Headache")); err != nil {
		t.Fatalf("AddHealthLog() error = %v", err)
	}
	if got := s.Pet().XP; got != 10 {
		t.Errorf("xp after symptom log = %d, want 10 (no grant)", got)
	}

	// Deleting the food log does not revoke the grant.
	doc := s.Snapshot()
	if err := s.DeleteHealthLog(doc.HealthLogs[0].ID); err != nil {
		t.Fatalf("DeleteHealthLog() error = %v", err)
	}
	if got := s.Pet().XP; got != 10 {
		t.Errorf("xp after delete = %d, want 10", got)
	}
}

func TestTakeSupplement(t *testing.T) {
	s := newTestStore(t)
	supp := models.NewSupplement("Vitamin D", "2000 IU", 2, 1)
	if err := s.AddSupplement(supp); err != nil {
		t.Fatalf("AddSupplement() error = %v", err)
	}

	if err := s.TakeSupplement(supp.ID); err != nil {
		t.Fatalf("TakeSupplement() error = %v", err)
	}

	doc := s.Snapshot()
	if doc.Supplements[0].Stock != 1 {
		t.Errorf("stock = %d, want 1", doc.Supplements[0].Stock)
	}
	if got := doc.Pet.XP; got != 10 {
		t.Errorf("xp = %d, want 10", got)
	}
	if len(doc.HealthLogs) != 1 {
		t.Fatalf("logs = %d, want 1", len(doc.HealthLogs))
	}
	log := doc.HealthLogs[0]
	if log.Type != models.LogSupplement {
		t.Errorf("log type = %s, want supplement", log.Type)
	}
	if log.Label != "Took Vitamin D" {
		t.Errorf("log label = %q, want %q", log.Label, "Took Vitamin D")
	}
	if log.SupplementID == nil || *log.SupplementID != supp.ID {
		t.Error("log should reference the supplement")
	}
}

func TestTakeSupplementStockFloor(t *testing.T) {
	s := newTestStore(t)
	supp := models.NewSupplement("Zinc", "15 mg", 1, 1)
	if err := s.AddSupplement(supp); err != nil {
		t.Fatalf("AddSupplement() error = %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := s.TakeSupplement(supp.ID); err != nil {
			t.Fatalf("TakeSupplement() error = %v", err)
		}
	}

	doc := s.Snapshot()
	if doc.Supplements[0].Stock != 0 {
		t.Errorf("stock = %d, want 0 (floored)", doc.Supplements[0].Stock)
	}
	// xp is granted per take even at zero stock.
	if got := doc.Pet.XP; got != 30 {
		t.Errorf("xp = %d, want 30", got)
	}
	if len(doc.HealthLogs) != 3 {
		t.Errorf("logs = %d, want 3", len(doc.HealthLogs))
	}
}

func TestTakeSupplementUnknownID(t *testing.T) {
	s := newTestStore(t)
	id := uuid.New()

	if err := s.TakeSupplement(id); err != nil {
		t.Fatalf("TakeSupplement() error = %v", err)
	}

	doc := s.Snapshot()
	if got := doc.Pet.XP; got != 10 {
		t.Errorf("xp = %d, want 10 (granted regardless)", got)
	}
	if len(doc.HealthLogs) != 1 {
		t.Fatalf("logs = %d, want 1", len(doc.HealthLogs))
	}
	if doc.HealthLogs[0].Label != "Supplement" {
		t.Errorf("label = %q, want fallback %q", doc.HealthLogs[0].Label, "Supplement")
	}
	if doc.HealthLogs[0].SupplementID == nil || *doc.HealthLogs[0].SupplementID != id {
		t.Error("log should keep the requested id even when unknown")
	}
}

func TestJoinProtocolExactlyOnce(t *testing.T) {
	s := newTestStore(t)

	if err := s.JoinProtocol("p1"); err != nil {
		t.Fatalf("JoinProtocol() error = %v", err)
	}
	if !s.Joined("p1") {
		t.Error("p1 should be joined")
	}

	doc := s.Snapshot()
	if len(doc.Timeline) != 1 {
		t.Fatalf("timeline length = %d, want 1 kickoff task", len(doc.Timeline))
	}
	task := doc.Timeline[0]
	if task.Title != "Start 7-Day Keto Kickstart" {
		t.Errorf("kickoff title = %q", task.Title)
	}
	if task.Time != "08:00" || task.Date != models.Today() {
		t.Errorf("kickoff slot = %s %s, want today 08:00", task.Date, task.Time)
	}
	if task.Type != models.TaskEvent {
		t.Errorf("kickoff type = %s, want event", task.Type)
	}

	// Joining again adds nothing.
	if err := s.JoinProtocol("p1"); err != nil {
		t.Fatalf("JoinProtocol() error = %v", err)
	}
	doc = s.Snapshot()
	if len(doc.Timeline) != 1 {
		t.Errorf("timeline length = %d after rejoin, want 1", len(doc.Timeline))
	}
	if len(doc.JoinedProtocols) != 1 {
		t.Errorf("joined set size = %d, want 1", len(doc.JoinedProtocols))
	}
}

func TestJoinUnknownProtocol(t *testing.T) {
	s := newTestStore(t)

	if err := s.JoinProtocol("nope"); err != nil {
		t.Fatalf("JoinProtocol() error = %v", err)
	}
	if !s.Joined("nope") {
		t.Error("unknown id still lands in the joined set")
	}
	if got := len(s.Snapshot().Timeline); got != 0 {
		t.Errorf("timeline length = %d, want 0 (no kickoff for unknown)", got)
	}
}

func TestFriendActivityFeedCap(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < models.ActivityFeedCap+5; i++ {
		if err := s.TriggerFriendActivity(); err != nil {
			t.Fatalf("TriggerFriendActivity() error = %v", err)
		}
	}

	doc := s.Snapshot()
	if got := len(doc.FriendActivity); got != models.ActivityFeedCap {
		t.Errorf("feed length = %d, want %d", got, models.ActivityFeedCap)
	}
	for _, a := range doc.FriendActivity {
		if a.FriendName == "" || a.Action == "" {
			t.Error("feed entry missing name or action")
		}
	}
}

func TestPingFriends(t *testing.T) {
	s := newTestStore(t)

	if got := s.PingFriends("hi"); got != 0 {
		t.Errorf("ping with no friends = %d, want 0", got)
	}

	if err := s.AddFriend(models.NewFriend("Sarah")); err != nil {
		t.Fatalf("AddFriend() error = %v", err)
	}
	if err := s.AddFriend(models.NewFriend("Mike")); err != nil {
		t.Fatalf("AddFriend() error = %v", err)
	}

	if got := s.PingFriends("hydrate!"); got != 2 {
		t.Errorf("ping = %d, want 2", got)
	}
}

func TestDeleteHabitKeepsLinkedTasks(t *testing.T) {
	s := newTestStore(t)
	h := models.NewHabit("Run", "#4caf50", "")
	if err := s.AddHabit(h); err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}
	task := models.NewTimelineTask("Run", models.TaskHabit, models.Today(), "07:00").
		WithLinkedHabit(h.ID)
	if err := s.AddTimelineTask(task); err != nil {
		t.Fatalf("AddTimelineTask() error = %v", err)
	}

	if err := s.DeleteHabit(h.ID); err != nil {
		t.Fatalf("DeleteHabit() error = %v", err)
	}

	doc := s.Snapshot()
	if len(doc.Habits) != 0 {
		t.Errorf("habits = %d, want 0", len(doc.Habits))
	}
	if len(doc.Timeline) != 1 {
		t.Fatalf("timeline = %d, want 1 (task survives)", len(doc.Timeline))
	}
	if doc.Timeline[0].LinkedHabitID == nil {
		t.Error("dangling habit reference should be preserved")
	}
}

func TestUpdatePetCosmetics(t *testing.T) {
	s := newTestStore(t)

	name := "Sprout"
	species := models.SpeciesDragon
	if err := s.UpdatePet(PetUpdate{Name: &name, Species: &species}); err != nil {
		t.Fatalf("UpdatePet() error = %v", err)
	}

	pet := s.Pet()
	if pet.Name != "Sprout" {
		t.Errorf("name = %s, want Sprout", pet.Name)
	}
	if pet.Species != models.SpeciesDragon {
		t.Errorf("species = %s, want dragon", pet.Species)
	}
	if pet.Level != 1 || pet.XP != 0 {
		t.Errorf("level/xp changed by cosmetic update: %d/%d", pet.Level, pet.XP)
	}
}

func TestSnapshotIsIsolated(t *testing.T) {
	s := newTestStore(t)
	h := models.NewHabit("Run", "#4caf50", "")
	if err := s.AddHabit(h); err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}

	doc := s.Snapshot()
	doc.Habits[0].Title = "mutated"
	doc.Pet.XP = 9999

	if got := s.Snapshot().Habits[0].Title; got != "Run" {
		t.Errorf("store title = %q, snapshot mutation leaked", got)
	}
	if got := s.Pet().XP; got != 0 {
		t.Errorf("store xp = %d, snapshot mutation leaked", got)
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	backend, err := storage.OpenFile(dir)
	if err != nil {
		t.Fatalf("failed to open backend: %v", err)
	}
	s, err := Open(backend)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	h := models.NewHabit("Run", "#4caf50", "")
	if err := s.AddHabit(h); err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}
	if err := s.ToggleHabit(h.ID, models.Today()); err != nil {
		t.Fatalf("ToggleHabit() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	backend2, err := storage.OpenFile(dir)
	if err != nil {
		t.Fatalf("failed to reopen backend: %v", err)
	}
	s2, err := Open(backend2)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	defer s2.Close()

	doc := s2.Snapshot()
	if len(doc.Habits) != 1 || doc.Habits[0].Title != "Run" {
		t.Fatal("habit did not survive reopen")
	}
	if !doc.Habits[0].CompletedOn(models.Today()) {
		t.Error("completion did not survive reopen")
	}
	if doc.Pet.XP != 10 {
		t.Errorf("xp = %d after reopen, want 10", doc.Pet.XP)
	}
}

func TestReplaceSwapsDocument(t *testing.T) {
	s := newTestStore(t)

	doc := NewDocument()
	doc.Habits = append(doc.Habits, models.NewHabit("Imported", "#fff", ""))
	if err := s.Replace(doc); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	got := s.Snapshot()
	if len(got.Habits) != 1 || got.Habits[0].Title != "Imported" {
		t.Error("replace should swap in the imported document")
	}
}

func TestUpdateUnknownEntitiesAreNoops(t *testing.T) {
	s := newTestStore(t)

	if err := s.UpdateHabit(models.NewHabit("Ghost", "", "")); err != nil {
		t.Fatalf("UpdateHabit() error = %v", err)
	}
	if err := s.UpdateSupplement(models.NewSupplement("Ghost", "1mg", 1, 1)); err != nil {
		t.Fatalf("UpdateSupplement() error = %v", err)
	}
	if err := s.UpdateHealthLog(models.NewHealthLog(models.LogSymptom, "Ghost")); err != nil {
		t.Fatalf("UpdateHealthLog() error = %v", err)
	}
	if err := s.UpdateMealPlan(models.NewMealPlan("Ghost", models.MealDinner, nil)); err != nil {
		t.Fatalf("UpdateMealPlan() error = %v", err)
	}

	doc := s.Snapshot()
	if len(doc.Habits)+len(doc.Supplements)+len(doc.HealthLogs)+len(doc.MealPlans) != 0 {
		t.Error("updates with unknown ids should not insert")
	}
}

func TestUpdateSupplementReplacesFields(t *testing.T) {
	s := newTestStore(t)

	supp := models.NewSupplement("Vitamin D", "2000 IU", 30, 1)
	if err := s.AddSupplement(supp); err != nil {
		t.Fatalf("AddSupplement() error = %v", err)
	}

	upd := *supp
	upd.Stock = 90
	upd.Dosage = "4000 IU"
	if err := s.UpdateSupplement(&upd); err != nil {
		t.Fatalf("UpdateSupplement() error = %v", err)
	}

	got := s.Snapshot().Supplements[0]
	if got.Stock != 90 || got.Dosage != "4000 IU" {
		t.Errorf("supplement = stock %d dosage %q, want 90 / 4000 IU", got.Stock, got.Dosage)
	}
	if got := s.Pet().XP; got != 0 {
		t.Errorf("xp = %d, restock should not grant xp", got)
	}
}

func TestUpdateHealthLogKeepsXP(t *testing.T) {
	s := newTestStore(t)

	l := models.NewHealthLog(models.LogFood, "Oatmeal")
	if err := s.AddHealthLog(l); err != nil {
		t.Fatalf("AddHealthLog() error = %v", err)
	}

	upd := *l
	upd.Label = "Oatmeal with berries"
	if err := s.UpdateHealthLog(&upd); err != nil {
		t.Fatalf("UpdateHealthLog() error = %v", err)
	}

	if got := s.Snapshot().HealthLogs[0].Label; got != "Oatmeal with berries" {
		t.Errorf("label = %q", got)
	}
	if got := s.Pet().XP; got != 10 {
		t.Errorf("xp = %d, want 10 (edit grants nothing extra)", got)
	}
}

func TestUpdateMealPlanReplacesFields(t *testing.T) {
	s := newTestStore(t)

	p := models.NewMealPlan("Keto dinner", models.MealDinner, []int{1, 3})
	if err := s.AddMealPlan(p); err != nil {
		t.Fatalf("AddMealPlan() error = %v", err)
	}

	upd := *p
	upd.SelectedDays = []int{1, 3, 5}
	if err := s.UpdateMealPlan(&upd); err != nil {
		t.Fatalf("UpdateMealPlan() error = %v", err)
	}

	if got := len(s.Snapshot().MealPlans[0].SelectedDays); got != 3 {
		t.Errorf("days = %d, want 3", got)
	}
}

func TestUpdateHabitPreservesOthers(t *testing.T) {
	s := newTestStore(t)

	a := models.NewHabit("Run", "#4caf50", "")
	b := models.NewHabit("Read", "#2196f3", "")
	if err := s.AddHabit(a); err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}
	if err := s.AddHabit(b); err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}

	upd := *a
	upd.Title = "Morning run"
	if err := s.UpdateHabit(&upd); err != nil {
		t.Fatalf("UpdateHabit() error = %v", err)
	}

	doc := s.Snapshot()
	if doc.Habits[0].Title != "Morning run" {
		t.Errorf("habit 0 = %q, want Morning run", doc.Habits[0].Title)
	}
	if doc.Habits[1].Title != "Read" {
		t.Errorf("habit 1 = %q, want Read", doc.Habits[1].Title)
	}
}
