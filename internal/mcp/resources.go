// ABOUTME: MCP resource implementations for the willow store.
// ABOUTME: Provides willow://today, willow://pet, and willow://summary.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/harperreed/willow/internal/insights"
	"github.com/harperreed/willow/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// willow://today - Today's schedule, habits, and logs
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "willow://today",
		Name:        "Today",
		Description: "Today's timeline tasks, habit completion state, and health logs",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// willow://pet - Companion state
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "willow://pet",
		Name:        "Companion",
		Description: "The companion pet's level, xp, and mood",
		MIMEType:    "application/json",
	}, s.handlePetResource)

	// willow://summary - Dashboard with streaks, stock, and cost projections
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "willow://summary",
		Name:        "Wellness Summary",
		Description: "Streaks, consistency, supplement forecasts, and cost projections",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

func resourceResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	doc := s.store.Snapshot()
	today := models.Today()

	var tasks []*models.TimelineTask
	for _, t := range doc.Timeline {
		if t.Date == today {
			tasks = append(tasks, t)
		}
	}
	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Time < tasks[j].Time })

	var logs []*models.HealthLog
	for _, l := range doc.HealthLogs {
		if l.Day() == today {
			logs = append(logs, l)
		}
	}

	habits := make([]map[string]any, 0, len(doc.Habits))
	for _, h := range doc.Habits {
		habits = append(habits, map[string]any{
			"id":         h.ID.String(),
			"title":      h.Title,
			"done_today": h.CompletedOn(today),
			"streak":     h.Streak,
		})
	}

	result := map[string]any{
		"date":            today,
		"tasks":           tasks,
		"habits":          habits,
		"logs":            logs,
		"completed_today": insights.CompletedOn(doc.Habits, today),
		"total_habits":    len(doc.Habits),
	}
	return resourceResult("willow://today", result)
}

func (s *Server) handlePetResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	pet := s.store.Pet()
	result := map[string]any{
		"name":           pet.Name,
		"species":        pet.Species,
		"level":          pet.Level,
		"xp":             pet.XP,
		"level_progress": pet.LevelProgress(),
		"mood":           pet.Mood,
	}
	return resourceResult("willow://pet", result)
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	doc := s.store.Snapshot()
	now := time.Now()

	var restock []map[string]any
	for _, supp := range insights.RankRestock(doc.Supplements) {
		restock = append(restock, map[string]any{
			"name":      supp.Name,
			"category":  supp.Category,
			"days_left": supp.DaysRemaining(),
			"low_stock": supp.LowStock(),
			"critical":  supp.Critical(),
		})
	}

	result := map[string]any{
		"generated_at": now.Format(time.RFC3339),
		"habits": map[string]any{
			"streak":          insights.Streak(doc.Habits, now),
			"consistency_pct": insights.Consistency(doc.Habits, now),
			"active_days":     insights.ActiveDays(doc.Habits),
			"count":           len(doc.Habits),
		},
		"supplements": map[string]any{
			"restock":      restock,
			"monthly_cost": insights.ProjectedCost(doc.Supplements, insights.CostMonthly, nil),
		},
		"pet": map[string]any{
			"level": doc.Pet.Level,
			"xp":    doc.Pet.XP,
			"mood":  doc.Pet.Mood,
		},
	}
	return resourceResult("willow://summary", result)
}
