// Package report implements the in-memory reporting pipeline over a loaded
// transaction table: greeting selection, per-card aggregation, top-5
// selection, the trailing-window category report and free-text search.
//
// All functions are pure: they never mutate their input and recompute every
// result from the full table on each call.
package report

// Greeting bands. Lower bounds are inclusive, upper bounds exclusive.
const (
	greetingNight     = "Доброй ночи"
	greetingMorning   = "Доброе утро"
	greetingAfternoon = "Добрый день"
	greetingEvening   = "Добрый вечер"
)

// Greeting maps an hour of day in [0,23] to the greeting for that time band:
// [0,6) night, [6,12) morning, [12,18) afternoon, [18,24) evening.
func Greeting(hour int) string {
	switch {
	case hour < 6:
		return greetingNight
	case hour < 12:
		return greetingMorning
	case hour < 18:
		return greetingAfternoon
	default:
		return greetingEvening
	}
}
