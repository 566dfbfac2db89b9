package cli

import "testing"

func TestPlanName(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		filename string
		want     string
	}{
		{
			name:     "explicit name wins",
			explicit: "My Plan",
			filename: "whatever.txt",
			want:     "my-plan",
		},
		{
			name:     "derived from file stem",
			explicit: "",
			filename: "summer-reading.txt",
			want:     "summer-reading",
		},
		{
			name:     "derived name is normalized",
			explicit: "",
			filename: "Summer Reading List.txt",
			want:     "summer-reading-list",
		},
		{
			name:     "directory part is ignored",
			explicit: "",
			filename: "/home/me/plans/novels.plan",
			want:     "novels",
		},
		{
			name:     "no extension",
			explicit: "",
			filename: "novels",
			want:     "novels",
		},
		{
			name:     "unusable filename yields empty name",
			explicit: "",
			filename: "....",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := planName(tt.explicit, tt.filename)
			if got != tt.want {
				t.Errorf("planName(%q, %q) = %q, want %q", tt.explicit, tt.filename, got, tt.want)
			}
		})
	}
}
