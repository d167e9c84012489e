package defense

import "testing"

func TestStudentName(t *testing.T) {
	cases := []struct {
		first, middle, last string
		want                string
	}{
		{"Maria", "S", "Reyes", "Maria S Reyes"},
		{"Maria", "", "Reyes", "Maria Reyes"},
		{"", "", "Reyes", "Reyes"},
		{"", "", "", ""},
	}
	for _, tc := range cases {
		req := DefenseRequest{FirstName: tc.first, MiddleName: tc.middle, LastName: tc.last}
		if got := req.StudentName(); got != tc.want {
			t.Errorf("StudentName(%q, %q, %q) = %q, want %q", tc.first, tc.middle, tc.last, got, tc.want)
		}
	}
}

func TestPanelistNames(t *testing.T) {
	req := DefenseRequest{Panelist1Name: "Dr. C", Panelist3Name: "Dr. E"}
	names := req.PanelistNames()
	if names[0] != "Dr. C" || names[1] != "" || names[2] != "Dr. E" || names[3] != "" {
		t.Fatalf("PanelistNames() = %v", names)
	}
}
