package model

import (
	"time"
)

// AccountCache is the persisted snapshot of one account's server and host data.
// The record is replaced wholesale on a full refresh and appended to by the
// single-server insertion path.
type AccountCache struct {
	ID              int64           `json:"id"`
	AccountNumber   string          `json:"account_number"`
	Region          string          `json:"region"`
	Token           string          `json:"token"`
	Servers         []ServerSummary `json:"servers"`
	HostServers     []string        `json:"host_servers"`
	CacheExpiration time.Time       `json:"cache_expiration"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ServerSummary is one virtual server inside an AccountCache. HostID is the
// reconciliation key: two summaries with the same HostID share a physical host.
type ServerSummary struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	State   string    `json:"state"`
	Created time.Time `json:"created"`
	Flavor  string    `json:"flavor"`
	HostID  string    `json:"host_id"`
	Private []string  `json:"private"`
	Public  []string  `json:"public"`
}
