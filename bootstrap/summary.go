package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kbukum/ssekit/component"
)

// Summary tracks and displays the application startup summary.
type Summary struct {
	serviceName     string
	version         string
	startupDuration time.Duration
}

// NewSummary creates a startup summary tracker.
func NewSummary(serviceName, version string) *Summary {
	return &Summary{serviceName: serviceName, version: version}
}

// SetStartupDuration records the total startup time.
func (s *Summary) SetStartupDuration(d time.Duration) {
	s.startupDuration = d
}

// Display prints the startup summary: infrastructure self-descriptions from
// Describable components, then live health from the registry.
func (s *Summary) Display(registry *component.Registry) {
	fmt.Printf("\n🚀 %s v%s started in %.2fs\n\n",
		s.serviceName, s.version, s.startupDuration.Seconds())

	if registry == nil {
		return
	}

	components := registry.All()
	var described []component.Description
	for _, c := range components {
		if d, ok := c.(component.Describable); ok {
			desc := d.Describe()
			if desc.Name == "" {
				desc.Name = c.Name()
			}
			described = append(described, desc)
		}
	}

	if len(described) > 0 {
		fmt.Printf("📊 Infrastructure\n")
		for i, d := range described {
			prefix := "├──"
			if i == len(described)-1 {
				prefix = "└──"
			}
			details := d.Details
			if d.Port > 0 {
				details = fmt.Sprintf("%s (:%d)", details, d.Port)
			}
			fmt.Printf("   %s %s: %s\n", prefix, d.Name, details)
		}
		fmt.Printf("\n")
	}

	health := registry.HealthAll(context.Background())
	if len(health) > 0 {
		fmt.Printf("🏥 Health Check\n")
		for i, h := range health {
			prefix := "├──"
			if i == len(health)-1 {
				prefix = "└──"
			}
			msg := ""
			if h.Message != "" {
				msg = fmt.Sprintf(" — %s", h.Message)
			}
			fmt.Printf("   %s %s %s: %s%s\n", prefix, healthIcon(h.Status), h.Name,
				strings.ToLower(string(h.Status)), msg)
		}
		fmt.Printf("\n")
	}
}

func healthIcon(status component.HealthStatus) string {
	switch status {
	case component.StatusHealthy:
		return "✅"
	case component.StatusDegraded:
		return "⚠️"
	case component.StatusUnhealthy:
		return "❌"
	default:
		return "❓"
	}
}
