package project

import (
	"fmt"
	"houseprojects/domain"
	"houseprojects/event"
	"strings"
)

// mergeUpdating applies u to p and reports the properties whose value changed.
func mergeUpdating(p *domain.Project, u *domain.ProjectUpdating) event.UpdatedProperties {
	var changes event.UpdatedProperties
	record := func(name string, old, new interface{}) {
		o, n := display(old), display(new)
		if o != n {
			changes = append(changes, event.UpdatedProperty{PropertyName: name, OldValue: o, NewValue: n})
		}
	}

	if u.Description != nil {
		record("description", p.Description, *u.Description)
		p.Description = *u.Description
	}
	if u.Group != nil {
		record("group", p.Group, *u.Group)
		p.Group = *u.Group
	}
	if u.Subgroup != nil {
		next := domain.OptionalString(*u.Subgroup)
		record("subgroup", p.Subgroup, next)
		p.Subgroup = next
	}
	if u.NameID != nil {
		record("nameId", p.NameID, *u.NameID)
		p.NameID = *u.NameID
	}
	if u.DueDate != nil {
		record("dueDate", p.DueDate, *u.DueDate)
		p.DueDate = *u.DueDate
	}
	if u.Priority != nil {
		next := u.Priority.OrDefault()
		record("priority", p.Priority, next)
		p.Priority = next
	}
	if u.ProgressPercent != nil {
		next := domain.ClampProgress(*u.ProgressPercent)
		record("progressPercent", p.ProgressPercent, next)
		p.ProgressPercent = next
	}
	if u.EstimatedHours != nil {
		record("estimatedHours", p.EstimatedHours, u.EstimatedHours)
		p.EstimatedHours = u.EstimatedHours
	}
	if u.Budget != nil {
		record("budget", p.Budget, u.Budget)
		p.Budget = u.Budget
	}
	if u.Tags != nil {
		next := cleanTags(u.Tags)
		record("tags", strings.Join(p.Tags, ","), strings.Join(next, ","))
		p.Tags = next
	}
	if u.WeatherDependent != nil {
		record("weatherDependent", p.WeatherDependent, *u.WeatherDependent)
		p.WeatherDependent = *u.WeatherDependent
	}
	if u.Season != nil {
		next := domain.OptionalString(*u.Season)
		record("season", p.Season, next)
		p.Season = next
	}
	return changes
}

func display(v interface{}) string {
	switch val := v.(type) {
	case *string:
		if val == nil {
			return ""
		}
		return *val
	case *float64:
		if val == nil {
			return ""
		}
		return fmt.Sprint(*val)
	default:
		return fmt.Sprint(val)
	}
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

// cleanTags trims tags and drops blank ones, never returning nil.
func cleanTags(tags []string) []string {
	cleaned := []string{}
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	return cleaned
}
