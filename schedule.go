package huelib

// Schedule executes an action at a configured local time.
type Schedule struct {
	ID          string `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Action      Action `json:"command"`
	// Time of the scheduled event in the bridge's time pattern format,
	// e.g. "W124/T06:30:00" or "2023-08-01T06:00:00".
	LocalTime string `json:"localtime"`
	// UTC time the timer was started. Only present for timers.
	StartTime  *Time          `json:"starttime,omitempty"`
	Status     ScheduleStatus `json:"status"`
	AutoDelete *bool          `json:"autodelete,omitempty"`
}

func (s Schedule) withID(id string) Schedule {
	s.ID = id
	return s
}

// ScheduleStatus is the activation state of a schedule.
type ScheduleStatus string

const (
	ScheduleEnabled  ScheduleStatus = "enabled"
	ScheduleDisabled ScheduleStatus = "disabled"
)

// ScheduleCreator creates a new schedule. The bridge assigns the
// identifier.
type ScheduleCreator struct {
	Name        *string         `json:"name,omitempty"`
	Description *string         `json:"description,omitempty"`
	Action      Action          `json:"command"`
	LocalTime   string          `json:"localtime"`
	Status      *ScheduleStatus `json:"status,omitempty"`
	AutoDelete  *bool           `json:"autodelete,omitempty"`
	Recycle     *bool           `json:"recycle,omitempty"`
}

// ScheduleModifier changes attributes of a schedule.
type ScheduleModifier struct {
	Name        *string         `json:"name,omitempty"`
	Description *string         `json:"description,omitempty"`
	Action      *Action         `json:"command,omitempty"`
	LocalTime   *string         `json:"localtime,omitempty"`
	Status      *ScheduleStatus `json:"status,omitempty"`
	AutoDelete  *bool           `json:"autodelete,omitempty"`
}

// CreateSchedule creates a new schedule and returns its identifier.
func (b *Bridge) CreateSchedule(creator ScheduleCreator) (string, error) {
	return createResource(b, "schedules", creator)
}

// GetSchedule returns the schedule with the given identifier.
func (b *Bridge) GetSchedule(id string) (Schedule, error) {
	return getResource[Schedule](b, "schedules", id)
}

// GetAllSchedules returns all schedules, in unspecified order.
func (b *Bridge) GetAllSchedules() ([]Schedule, error) {
	return getAllResources[Schedule](b, "schedules")
}

// SetSchedule modifies a schedule and returns the per-field outcomes.
func (b *Bridge) SetSchedule(id string, modifier ScheduleModifier) ([]Outcome, error) {
	return setResource(b, "schedules/"+id, modifier)
}

// DeleteSchedule deletes a schedule from the bridge.
func (b *Bridge) DeleteSchedule(id string) error {
	return deleteResource(b, "schedules/"+id)
}
