package organizer

import (
	"sort"
	"time"
)

// Move describes one completed rename.
type Move struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	// Dir is the directory the file was moved into.
	Dir string `json:"dir"`
	// Resolved is the slash-separated path relative to the output directory.
	Resolved string `json:"resolved"`
	Category string `json:"category"`
}

// Summary aggregates the outcome of a run.
type Summary struct {
	InputDir    string         `json:"input_dir"`
	OutputDir   string         `json:"output_dir"`
	Candidates  int            `json:"candidates"`
	Moved       int            `json:"moved"`
	Skipped     int            `json:"skipped"`
	Ignored     int            `json:"ignored"`
	ByCategory  map[string]int `json:"by_category"`
	Moves       []Move         `json:"moves"`
	MoveLogPath string         `json:"move_log,omitempty"`
	Duration    time.Duration  `json:"duration_ns"`
}

// CategoryCount is one row of Summary.Categories.
type CategoryCount struct {
	Category string
	Files    int
}

// Categories returns per-category move counts sorted by category name.
func (s Summary) Categories() []CategoryCount {
	out := make([]CategoryCount, 0, len(s.ByCategory))
	for category, files := range s.ByCategory {
		out = append(out, CategoryCount{Category: category, Files: files})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

func (s *Summary) record(m Move) {
	if s.ByCategory == nil {
		s.ByCategory = make(map[string]int)
	}
	s.Moved++
	s.ByCategory[m.Category]++
	s.Moves = append(s.Moves, m)
}

// Observer receives progress events. Calls happen on the sorting goroutine.
type Observer interface {
	// OnStart reports how many entries will be considered for moving.
	OnStart(total int)
	// OnMove reports a completed move.
	OnMove(m Move)
	// OnSkip reports a candidate that needed no move.
	OnSkip(path string)
	// OnFinish is always called once, with the final or partial summary.
	OnFinish(s Summary, err error)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) OnStart(int)             {}
func (NopObserver) OnMove(Move)             {}
func (NopObserver) OnSkip(string)           {}
func (NopObserver) OnFinish(Summary, error) {}
