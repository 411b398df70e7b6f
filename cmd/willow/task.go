// ABOUTME: CLI commands for the daily timeline.
// ABOUTME: Supports add, list, done, and rm subcommands.
package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/harperreed/willow/internal/models"
	"github.com/spf13/cobra"
)

var (
	taskType     string
	taskDate     string
	taskTime     string
	taskHabit    string
	taskListDate string
	taskListAll  bool
)

var taskCmd = &cobra.Command{
	Use:     "task",
	Aliases: []string{"t"},
	Short:   "Manage timeline tasks",
	Long: `Schedule one-off tasks on the daily timeline.

Each task is one occurrence on one date and time slot. Completing a task
grants +10 XP; un-completing takes it back.

TASK TYPES:

  habit, todo, medication, meal, event

EXAMPLES:

  willow task add "Dentist" --type event --date 2026-09-02 --time 14:30
  willow task add "Take vitamins" --type medication
  willow task list                      # Today's timeline
  willow task list --all                # Everything
  willow task done abc12345             # Toggle completion
  willow task rm abc12345`,
}

var taskAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a timeline task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidTaskType(taskType) {
			return fmt.Errorf("unknown task type: %s\nValid types: habit, todo, medication, meal, event", taskType)
		}

		date := taskDate
		if date == "" {
			date = models.Today()
		}

		t := models.NewTimelineTask(args[0], models.TaskType(taskType), date, taskTime)

		if taskHabit != "" {
			h, err := resolveHabit(appStore.Snapshot(), taskHabit)
			if err != nil {
				return err
			}
			t.WithLinkedHabit(h.ID)
		}

		if err := appStore.AddTimelineTask(t); err != nil {
			return fmt.Errorf("failed to add task: %w", err)
		}

		color.Green("✓ Added task %q", t.Title)
		fmt.Printf("  %s %s %s\n",
			color.New(color.Faint).Sprint(t.ID.String()[:8]),
			t.Date, t.Time)
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List timeline tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := appStore.Snapshot()

		date := taskListDate
		if date == "" {
			date = models.Today()
		}

		var tasks []*models.TimelineTask
		for _, t := range doc.Timeline {
			if taskListAll || t.Date == date {
				tasks = append(tasks, t)
			}
		}
		if len(tasks) == 0 {
			fmt.Println("No tasks found.")
			return nil
		}

		sort.SliceStable(tasks, func(i, j int) bool {
			if tasks[i].Date != tasks[j].Date {
				return tasks[i].Date < tasks[j].Date
			}
			return tasks[i].Time < tasks[j].Time
		})

		faint := color.New(color.Faint)
		for _, t := range tasks {
			mark := " "
			if t.Completed {
				mark = color.GreenString("✓")
			}
			fmt.Printf("%s %s %s %s %s %s\n",
				faint.Sprint(t.ID.String()[:8]),
				mark,
				faint.Sprint(t.Date),
				t.Time,
				padRight(t.Title, 28),
				faint.Sprint(string(t.Type)))
		}
		return nil
	},
}

var taskDoneCmd = &cobra.Command{
	Use:     "done <id>",
	Aliases: []string{"toggle"},
	Short:   "Toggle task completion",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := resolveTask(appStore.Snapshot(), args[0])
		if err != nil {
			return err
		}

		t.Completed = !t.Completed
		if err := appStore.UpdateTimelineTask(t); err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}

		if t.Completed {
			color.Green("✓ %s completed", t.Title)
		} else {
			color.Yellow("✗ %s unmarked", t.Title)
		}
		return nil
	},
}

var taskRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete", "del"},
	Short:   "Delete a timeline task",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := resolveTask(appStore.Snapshot(), args[0])
		if err != nil {
			return err
		}
		if err := appStore.DeleteTimelineTask(t.ID); err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}
		color.Yellow("✗ Deleted task %q", t.Title)
		return nil
	},
}

func init() {
	taskAddCmd.Flags().StringVarP(&taskType, "type", "t", "todo", "task type")
	taskAddCmd.Flags().StringVar(&taskDate, "date", "", "day (YYYY-MM-DD, default today)")
	taskAddCmd.Flags().StringVar(&taskTime, "time", "09:00", "time slot (HH:mm)")
	taskAddCmd.Flags().StringVar(&taskHabit, "habit", "", "link to a habit by ID prefix")
	taskListCmd.Flags().StringVar(&taskListDate, "date", "", "day to list (default today)")
	taskListCmd.Flags().BoolVar(&taskListAll, "all", false, "list all dates")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskRmCmd)
	rootCmd.AddCommand(taskCmd)
}
