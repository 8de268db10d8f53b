package model

import "time"

// TaskType categorizes what kind of work a task is.
type TaskType string

const (
	TaskTypeWork      TaskType = "work"
	TaskTypeStudy     TaskType = "study"
	TaskTypePersonal  TaskType = "personal"
	TaskTypeHousehold TaskType = "household"
	TaskTypeCreative  TaskType = "creative"
	TaskTypeExercise  TaskType = "exercise"
	TaskTypeSocial    TaskType = "social"
)

// MentalLoad is the heuristic cognitive-effort category of a task.
// It drives the default scheduling hour (see scheduler.Suggest).
type MentalLoad string

const (
	MentalLoadLow    MentalLoad = "low"
	MentalLoadMedium MentalLoad = "medium"
	MentalLoadHigh   MentalLoad = "high"
)

// Valid reports whether the value is one of the known task types.
func (t TaskType) Valid() bool {
	switch t {
	case TaskTypeWork, TaskTypeStudy, TaskTypePersonal, TaskTypeHousehold,
		TaskTypeCreative, TaskTypeExercise, TaskTypeSocial:
		return true
	}
	return false
}

// Valid reports whether the value is one of the known mental loads.
func (m MentalLoad) Valid() bool {
	switch m {
	case MentalLoadLow, MentalLoadMedium, MentalLoadHigh:
		return true
	}
	return false
}

// TaskData holds the structured attributes the analyzer extracts from a
// free-text task description. It is a value object and carries no identity
// until scheduled.
type TaskData struct {
	Description       string     `json:"description"`
	Type              TaskType   `json:"task_type"`
	EstimatedDuration int        `json:"estimated_duration"` // minutes, positive
	MentalLoad        MentalLoad `json:"mental_load"`
	Deadline          *time.Time `json:"deadline,omitempty"`
	Priority          float64    `json:"priority"` // 0.0 .. 1.0
	Reasoning         string     `json:"reasoning"`
}

// ScheduledTask is the committed unit: a task bound to a booked slot.
// It is created only at session confirmation time and owned by the
// schedule store afterwards.
type ScheduledTask struct {
	ID        string    `json:"id"`
	Task      TaskData  `json:"task"`
	Slot      TimeSlot  `json:"slot"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}
