// ABOUTME: MCP server setup for the willow state store.
// ABOUTME: Exposes store mutations as tools and snapshots as resources.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/harperreed/willow/internal/models"
	"github.com/harperreed/willow/internal/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with store access.
type Server struct {
	mcpServer *mcp.Server
	store     *store.Store
}

// NewServer creates a new MCP server over the given store.
func NewServer(st *store.Store) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "willow",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		store:     st,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// findHabit resolves a habit by full id or id prefix in a snapshot.
func findHabit(doc *store.Document, idOrPrefix string) (*models.Habit, error) {
	var match *models.Habit
	for _, h := range doc.Habits {
		if strings.HasPrefix(h.ID.String(), idOrPrefix) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous prefix %s: matches multiple habits", idOrPrefix)
			}
			match = h
		}
	}
	if match == nil {
		return nil, fmt.Errorf("habit not found: %s", idOrPrefix)
	}
	return match, nil
}

// findTask resolves a timeline task by full id or id prefix in a snapshot.
func findTask(doc *store.Document, idOrPrefix string) (*models.TimelineTask, error) {
	var match *models.TimelineTask
	for _, t := range doc.Timeline {
		if strings.HasPrefix(t.ID.String(), idOrPrefix) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous prefix %s: matches multiple tasks", idOrPrefix)
			}
			match = t
		}
	}
	if match == nil {
		return nil, fmt.Errorf("task not found: %s", idOrPrefix)
	}
	return match, nil
}

// findSupplement resolves a supplement by full id, id prefix, or exact name.
func findSupplement(doc *store.Document, idOrName string) (*models.Supplement, error) {
	var match *models.Supplement
	for _, supp := range doc.Supplements {
		if strings.HasPrefix(supp.ID.String(), idOrName) || strings.EqualFold(supp.Name, idOrName) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous reference %s: matches multiple supplements", idOrName)
			}
			match = supp
		}
	}
	if match == nil {
		return nil, fmt.Errorf("supplement not found: %s", idOrName)
	}
	return match, nil
}
