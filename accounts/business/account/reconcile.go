package account

import (
	"encore.app/accounts/model"
	"encore.app/accounts/upstream"
)

// buildServerSummary flattens one raw compute record into the cached shape.
// Addresses keep the provider's payload order.
func buildServerSummary(raw upstream.Server) model.ServerSummary {
	summary := model.ServerSummary{
		ID:      raw.ID,
		Name:    raw.Name,
		State:   raw.VMState,
		Created: raw.Created,
		Flavor:  raw.Flavor.ID,
		HostID:  raw.HostID,
	}
	for _, addr := range raw.Addresses.Private {
		summary.Private = append(summary.Private, addr.Addr)
	}
	for _, addr := range raw.Addresses.Public {
		summary.Public = append(summary.Public, addr.Addr)
	}
	return summary
}

// reconcileServers maps every raw record to a summary (fetch order preserved)
// and collects the distinct host identifiers in first-seen order. The returned
// host list always equals the set of HostID values across the summaries.
func reconcileServers(raw []upstream.Server) ([]model.ServerSummary, []string) {
	servers := make([]model.ServerSummary, 0, len(raw))
	hostServers := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for _, record := range raw {
		summary := buildServerSummary(record)
		servers = append(servers, summary)
		if _, ok := seen[summary.HostID]; !ok {
			seen[summary.HostID] = struct{}{}
			hostServers = append(hostServers, summary.HostID)
		}
	}
	return servers, hostServers
}

// sharesHost is the co-tenancy predicate: true iff two or more cached servers
// sit on the given host.
func sharesHost(servers []model.ServerSummary, hostID string) bool {
	count := 0
	for _, server := range servers {
		if server.HostID == hostID {
			count++
			if count > 1 {
				return true
			}
		}
	}
	return false
}
