package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/rescuemap/internal/feedback"
	"github.com/dmitrijs2005/rescuemap/internal/models"
	"github.com/dmitrijs2005/rescuemap/internal/rescue"
)

func formatTime(t time.Time) string {
	return t.Format("Jan 2, 3:04 PM")
}

// Home renders the landing view for a logged-in user.
func (a *App) Home(ctx context.Context) error {
	state := a.sessions.State()
	if state.User != nil {
		fmt.Printf("Hello, %s.\n", state.User.Name)
	}
	fmt.Println("RescueMap — flood rescue coordination")
	fmt.Println("Commands: map [all|high|low], resolve <id>, contact, feedback, logout")
	return nil
}

// Map renders the rescue-location view: reloads the working set from the
// remote API with the current (or newly given) priority filter and lists
// the result.
func (a *App) Map(ctx context.Context, args []string) error {
	if len(args) > 0 {
		f, ok := models.ParsePriorityFilter(args[0])
		if !ok {
			fmt.Println("Usage: map [all|high|low]")
			return nil
		}
		a.filter = f
	}

	fmt.Println("Loading rescue locations...")
	locations, err := a.rescue.Load(ctx, a.filter)
	if err != nil {
		if errors.Is(err, rescue.ErrStaleLoad) {
			return nil
		}
		a.log.Error(ctx, "loading locations failed", "error", err)
		fmt.Println("Could not load rescue locations, please try again.")
		return nil
	}

	if len(locations) == 0 {
		fmt.Printf("No active rescue locations (filter: %s).\n", a.filter)
		return nil
	}

	fmt.Printf("Showing %d active rescue location(s) (filter: %s)\n", len(locations), a.filter)
	for _, loc := range locations {
		marker := " "
		if loc.IsNew {
			marker = "*"
		}
		fmt.Printf("%s [%s] %-4s  %s\n", marker, loc.ID, loc.Priority, loc.Message)
		fmt.Printf("       %s (%.4f, %.4f), reported %s\n",
			loc.Address, loc.Latitude, loc.Longitude, formatTime(loc.CreatedAt))
	}
	return nil
}

// Resolve marks one location as handled. The removal is confirmed by the
// remote API before the list changes; on failure the list stays as it was.
func (a *App) Resolve(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: resolve <id>")
		return nil
	}
	id := args[0]

	if err := a.rescue.Resolve(ctx, id); err != nil {
		a.log.Error(ctx, "resolve failed", "id", id, "error", err)
		fmt.Println("Could not mark the location as resolved, please try again.")
		return nil
	}

	fmt.Printf("Location %s marked as resolved and removed from the map.\n", id)
	return nil
}

// Contact renders the feedback form. The name defaults to the logged-in
// user's name when the field is left empty.
func (a *App) Contact(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Your name", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		if state := a.sessions.State(); state.User != nil {
			name = state.User.Name
		}
	}

	message, err := GetMultiline(a.reader, "Your message", os.Stdout)
	if err != nil {
		return err
	}

	entry, err := a.feedback.Submit(ctx, name, message)
	if err != nil {
		switch {
		case errors.Is(err, feedback.ErrEmptyName):
			fmt.Println("Name is required.")
		case errors.Is(err, feedback.ErrEmptyMessage):
			fmt.Println("Message is required.")
		default:
			a.log.Error(ctx, "feedback submit failed", "error", err)
			fmt.Println("Something went wrong, please try again.")
		}
		return nil
	}

	fmt.Printf("Thank you for your feedback, %s!\n", entry.Name)
	return nil
}

// Feedback lists the collected feedback entries, newest first.
func (a *App) Feedback(ctx context.Context) error {
	entries := a.feedback.List()
	if len(entries) == 0 {
		fmt.Println("No feedback yet.")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%s — %s\n", e.Name, formatTime(e.Timestamp))
		fmt.Printf("    %s\n", e.Message)
	}
	return nil
}
