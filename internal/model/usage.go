package model

// UsageData is the daily usage counter returned to clients so the
// frontend can decide when to show its upgrade prompt
type UsageData struct {
	Count     int64 `json:"count"`
	Limit     int64 `json:"limit"`
	Remaining int64 `json:"remaining"`
}
