package entity

// Stats holds the administrator dashboard counters.
type Stats struct {
	Products int64 `json:"products"`
	Users    int64 `json:"users"`
	Ads      int64 `json:"ads"`
	Shops    int64 `json:"shops"`
}
