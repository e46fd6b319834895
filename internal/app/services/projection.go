package services

import (
	"sort"
	"strings"

	"github.com/khanhle/schoolhealth/internal/app/models"
	"github.com/khanhle/schoolhealth/internal/app/models/dto"
)

// FilterAll is the sentinel category value that disables a filter
const FilterAll = "all"

// matchesSearch reports whether any field contains the needle,
// case-insensitively. An empty needle matches everything.
func matchesSearch(needle string, fields ...string) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// FilterStudents narrows a roster by free-text search over name and student
// code. Filtering never mutates the input slice.
func FilterStudents(students []*models.Student, search string) []*models.Student {
	if strings.TrimSpace(search) == "" {
		return students
	}
	filtered := make([]*models.Student, 0, len(students))
	for _, s := range students {
		if matchesSearch(search, s.FullName, s.StudentCode) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// FilterUsers narrows an account list by free-text search over name, email
// and phone, and by role. The "all" role disables the role filter.
func FilterUsers(users []*models.User, search, role string) []*models.User {
	filtered := make([]*models.User, 0, len(users))
	for _, u := range users {
		if role != "" && role != FilterAll && string(u.RoleType) != role {
			continue
		}
		if !matchesSearch(search, u.FullName, u.Email, u.Phone) {
			continue
		}
		filtered = append(filtered, u)
	}
	return filtered
}

// FilterEventSummaries narrows an event list by free-text search over title,
// location and staff name, and by event type. The "all" type disables the
// type filter.
func FilterEventSummaries(events []dto.EventSummary, search, eventType string) []dto.EventSummary {
	filtered := make([]dto.EventSummary, 0, len(events))
	for _, e := range events {
		if eventType != "" && eventType != FilterAll && string(e.Event.EventType) != eventType {
			continue
		}
		if !matchesSearch(search, e.Event.Title, e.Event.Location, e.Event.StaffName) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

// GroupClassesByGrade groups classes under their grade level, ordered by
// grade ascending and class name within each grade.
func GroupClassesByGrade(classes []models.Class) []dto.GradeGroup {
	byGrade := make(map[int][]models.Class)
	for _, c := range classes {
		byGrade[c.GradeLevel] = append(byGrade[c.GradeLevel], c)
	}

	grades := make([]int, 0, len(byGrade))
	for g := range byGrade {
		grades = append(grades, g)
	}
	sort.Ints(grades)

	groups := make([]dto.GradeGroup, 0, len(grades))
	for _, g := range grades {
		cs := byGrade[g]
		sort.Slice(cs, func(i, j int) bool { return cs[i].Name < cs[j].Name })
		groups = append(groups, dto.GradeGroup{GradeLevel: g, Classes: cs})
	}
	return groups
}
