package model

import "testing"

func TestLevelFor_Thresholds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		points int
		want   Level
	}{
		{0, LevelNovice},
		{99, LevelNovice},
		{100, LevelExpert},
		{199, LevelExpert},
		{200, LevelGuru},
		{1000, LevelGuru},
	}
	for _, c := range cases {
		if got := LevelFor(c.points); got != c.want {
			t.Fatalf("LevelFor(%d)=%s, want %s", c.points, got, c.want)
		}
	}
}

func TestLevelFor_MonotonicOnIncrease(t *testing.T) {
	t.Parallel()

	rank := map[Level]int{LevelNovice: 0, LevelExpert: 1, LevelGuru: 2}
	prev := LevelFor(0)
	for p := 1; p <= 300; p++ {
		cur := LevelFor(p)
		if rank[cur] < rank[prev] {
			t.Fatalf("level regressed at %d points: %s -> %s", p, prev, cur)
		}
		prev = cur
	}
}

func TestSubmissionStatus_Valid(t *testing.T) {
	t.Parallel()

	for _, s := range []SubmissionStatus{StatusCompleted, StatusPending, StatusRejected} {
		if !s.Valid() {
			t.Fatalf("%q should be valid", s)
		}
	}
	if SubmissionStatus("approved").Valid() {
		t.Fatalf("unknown status accepted")
	}
	if SubmissionStatus("").Valid() {
		t.Fatalf("empty status accepted")
	}
}
