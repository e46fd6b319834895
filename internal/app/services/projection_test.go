package services

import (
	"testing"

	"github.com/khanhle/schoolhealth/internal/app/models"
	"github.com/khanhle/schoolhealth/internal/app/models/dto"
)

func TestFilterStudents(t *testing.T) {
	roster := []*models.Student{
		{FullName: "Nguyễn Văn An", StudentCode: "HS000001"},
		{FullName: "Trần Thị Bình", StudentCode: "HS000002"},
		{FullName: "Lê Minh Chi", StudentCode: "HS000003"},
	}

	tests := []struct {
		name      string
		search    string
		wantCodes []string
	}{
		{name: "empty search returns all", search: "", wantCodes: []string{"HS000001", "HS000002", "HS000003"}},
		{name: "whitespace search returns all", search: "   ", wantCodes: []string{"HS000001", "HS000002", "HS000003"}},
		{name: "case-insensitive name match", search: "an", wantCodes: []string{"HS000001"}},
		{name: "match by student code", search: "hs000003", wantCodes: []string{"HS000003"}},
		{name: "no match", search: "xyz", wantCodes: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterStudents(roster, tt.search)
			if len(got) != len(tt.wantCodes) {
				t.Fatalf("got %d students, want %d", len(got), len(tt.wantCodes))
			}
			for i, s := range got {
				if s.StudentCode != tt.wantCodes[i] {
					t.Errorf("student[%d] = %q, want %q", i, s.StudentCode, tt.wantCodes[i])
				}
			}
		})
	}
}

func TestFilterStudentsDoesNotMutateInput(t *testing.T) {
	roster := []*models.Student{
		{FullName: "Nguyễn Văn An", StudentCode: "HS000001"},
		{FullName: "Trần Thị Bình", StudentCode: "HS000002"},
	}
	_ = FilterStudents(roster, "bình")
	if len(roster) != 2 {
		t.Fatalf("input slice changed length: %d", len(roster))
	}
}

func TestFilterUsers(t *testing.T) {
	users := []*models.User{
		{FullName: "Phạm Quang Dũng", Email: "dung@school.edu.vn", Phone: "0901234567", RoleType: models.RoleStaff},
		{FullName: "Hoàng Thu Hà", Email: "ha.parent@gmail.com", Phone: "0912345678", RoleType: models.RoleParent},
		{FullName: "Vũ Đức Long", Email: "long.parent@gmail.com", Phone: "0923456789", RoleType: models.RoleParent},
	}

	tests := []struct {
		name       string
		search     string
		role       string
		wantEmails []string
	}{
		{name: "no filters", search: "", role: "", wantEmails: []string{"dung@school.edu.vn", "ha.parent@gmail.com", "long.parent@gmail.com"}},
		{name: "all role bypasses role filter", search: "", role: FilterAll, wantEmails: []string{"dung@school.edu.vn", "ha.parent@gmail.com", "long.parent@gmail.com"}},
		{name: "role filter", search: "", role: string(models.RoleParent), wantEmails: []string{"ha.parent@gmail.com", "long.parent@gmail.com"}},
		{name: "search by email fragment", search: "parent", role: "", wantEmails: []string{"ha.parent@gmail.com", "long.parent@gmail.com"}},
		{name: "search by phone", search: "0901", role: "", wantEmails: []string{"dung@school.edu.vn"}},
		{name: "search and role combined", search: "long", role: string(models.RoleParent), wantEmails: []string{"long.parent@gmail.com"}},
		{name: "role excludes search matches", search: "dũng", role: string(models.RoleParent), wantEmails: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterUsers(users, tt.search, tt.role)
			if len(got) != len(tt.wantEmails) {
				t.Fatalf("got %d users, want %d", len(got), len(tt.wantEmails))
			}
			for i, u := range got {
				if u.Email != tt.wantEmails[i] {
					t.Errorf("user[%d] = %q, want %q", i, u.Email, tt.wantEmails[i])
				}
			}
		})
	}
}

func TestFilterEventSummaries(t *testing.T) {
	events := []dto.EventSummary{
		{Event: models.HealthEvent{Title: "Annual periodic examination", Location: "Medical room", StaffName: "Nguyen Thi Lan", EventType: models.EventPeriodic}},
		{Event: models.HealthEvent{Title: "Flu vaccination round 1", Location: "Gymnasium", StaffName: "Tran Van Hung", EventType: models.EventVaccination}},
		{Event: models.HealthEvent{Title: "Dental check grade 6", Location: "Medical room", StaffName: "Nguyen Thi Lan", EventType: models.EventDental}},
	}

	tests := []struct {
		name       string
		search     string
		eventType  string
		wantTitles []string
	}{
		{name: "no filters", search: "", eventType: "", wantTitles: []string{"Annual periodic examination", "Flu vaccination round 1", "Dental check grade 6"}},
		{name: "all type bypasses type filter", search: "", eventType: FilterAll, wantTitles: []string{"Annual periodic examination", "Flu vaccination round 1", "Dental check grade 6"}},
		{name: "type filter", search: "", eventType: string(models.EventVaccination), wantTitles: []string{"Flu vaccination round 1"}},
		{name: "search by location", search: "medical", eventType: "", wantTitles: []string{"Annual periodic examination", "Dental check grade 6"}},
		{name: "search by staff name", search: "hung", eventType: "", wantTitles: []string{"Flu vaccination round 1"}},
		{name: "search and type combined", search: "lan", eventType: string(models.EventDental), wantTitles: []string{"Dental check grade 6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterEventSummaries(events, tt.search, tt.eventType)
			if len(got) != len(tt.wantTitles) {
				t.Fatalf("got %d events, want %d", len(got), len(tt.wantTitles))
			}
			for i, e := range got {
				if e.Event.Title != tt.wantTitles[i] {
					t.Errorf("event[%d] = %q, want %q", i, e.Event.Title, tt.wantTitles[i])
				}
			}
		})
	}
}

func TestGroupClassesByGrade(t *testing.T) {
	classes := []models.Class{
		{ID: 1, Name: "7A2", GradeLevel: 7},
		{ID: 2, Name: "6A1", GradeLevel: 6},
		{ID: 3, Name: "7A1", GradeLevel: 7},
		{ID: 4, Name: "6A2", GradeLevel: 6},
	}

	groups := GroupClassesByGrade(classes)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}

	if groups[0].GradeLevel != 6 || groups[1].GradeLevel != 7 {
		t.Errorf("grades = [%d %d], want ascending [6 7]", groups[0].GradeLevel, groups[1].GradeLevel)
	}

	wantNames := map[int][]string{0: {"6A1", "6A2"}, 1: {"7A1", "7A2"}}
	for gi, names := range wantNames {
		if len(groups[gi].Classes) != len(names) {
			t.Fatalf("group %d has %d classes, want %d", gi, len(groups[gi].Classes), len(names))
		}
		for ci, name := range names {
			if groups[gi].Classes[ci].Name != name {
				t.Errorf("group %d class %d = %q, want %q", gi, ci, groups[gi].Classes[ci].Name, name)
			}
		}
	}
}

func TestGroupClassesByGradeEmpty(t *testing.T) {
	groups := GroupClassesByGrade(nil)
	if len(groups) != 0 {
		t.Fatalf("got %d groups, want 0", len(groups))
	}
}
