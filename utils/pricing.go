package utils

// BookingTotal sums the billed amount for a booking. Each billed service
// costs its per-booking override when one exists, otherwise its catalog
// price. A service missing from both maps (deleted from the catalog after
// booking, no override) contributes 0.
func BookingTotal(serviceIDs []string, overrides, catalog map[string]float64) float64 {
	var total float64
	for _, id := range serviceIDs {
		if price, ok := overrides[id]; ok {
			total += price
			continue
		}
		total += catalog[id]
	}
	return total
}
