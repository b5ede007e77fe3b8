package domain

import "cmp"

// SortOrders returns a new slice sorted ascending by key; the input is not
// mutated. Equal-key orders keep their relative input order: the three-way
// partition filters them in source order and the recursion never reorders
// within a partition.
func SortOrders[K cmp.Ordered](orders []Order, key func(Order) K) []Order {
	if len(orders) <= 1 {
		out := make([]Order, len(orders))
		copy(out, orders)
		return out
	}
	pivot := key(orders[len(orders)/2])
	var less, equal, greater []Order
	for _, o := range orders {
		switch k := key(o); {
		case k < pivot:
			less = append(less, o)
		case k > pivot:
			greater = append(greater, o)
		default:
			equal = append(equal, o)
		}
	}
	out := SortOrders(less, key)
	out = append(out, equal...)
	return append(out, SortOrders(greater, key)...)
}
