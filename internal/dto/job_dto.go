package dto

type AutoRenewSweepResponse struct {
	Scanned  int `json:"scanned"`
	Advanced int `json:"advanced"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

type ReminderRunResponse struct {
	Scanned int `json:"scanned"`
	Queued  int `json:"queued"`
}
