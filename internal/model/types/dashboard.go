package types

type DashboardStats struct {
	Runs       int `json:"runs"`
	Items      int `json:"items"`
	Characters int `json:"characters"`
	Quests     int `json:"quests"`
	Merchants  int `json:"merchants"`
	Pois       int `json:"pois"`
	Npcs       int `json:"npcs"`
}
