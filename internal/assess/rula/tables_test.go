package rula

import "testing"

func TestTableSpotValues(t *testing.T) {
	// Published values from McAtamney & Corlett (1993).
	if got := tableA[0][0][0][0]; got != 1 {
		t.Errorf("table A (1,1,1,1) = %d, want 1", got)
	}
	if got := tableA[5][2][3][1]; got != 9 {
		t.Errorf("table A (6,3,4,2) = %d, want 9", got)
	}
	if got := tableB[0][0][0]; got != 1 {
		t.Errorf("table B (1,1,1) = %d, want 1", got)
	}
	if got := tableB[5][5][1]; got != 9 {
		t.Errorf("table B (6,6,2) = %d, want 9", got)
	}
	if got := tableC[0][0]; got != 1 {
		t.Errorf("table C (1,1) = %d, want 1", got)
	}
	if got := tableC[7][6]; got != 7 {
		t.Errorf("table C (8,7) = %d, want 7", got)
	}
}

func TestActionLevelFor(t *testing.T) {
	cases := []struct {
		score int
		want  int
	}{
		{1, 1}, {2, 1},
		{3, 2}, {4, 2},
		{5, 3}, {6, 3},
		{7, 4},
	}
	for _, tc := range cases {
		if got := ActionLevelFor(tc.score); got.Level != tc.want {
			t.Errorf("ActionLevelFor(%d).Level = %d, want %d", tc.score, got.Level, tc.want)
		}
	}
}
