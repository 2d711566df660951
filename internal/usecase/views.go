package usecase

import "github.com/avoandes/avomarket/internal/domain/model"

// StatusBuckets partitions orders into the dashboard tabs. Buckets preserve
// the original order sequence.
type StatusBuckets struct {
	Pending        []model.Order
	Accepted       []model.Order
	OutForDelivery []model.Order
	Delivered      []model.Order
}

// BucketByStatus derives the per-status partition. It holds no state and is
// recomputed on every query.
func BucketByStatus(orders []model.Order) StatusBuckets {
	var buckets StatusBuckets
	for _, order := range orders {
		switch order.Status {
		case model.OrderStatusPending:
			buckets.Pending = append(buckets.Pending, order)
		case model.OrderStatusAccepted:
			buckets.Accepted = append(buckets.Accepted, order)
		case model.OrderStatusOutForDelivery:
			buckets.OutForDelivery = append(buckets.OutForDelivery, order)
		case model.OrderStatusDelivered:
			buckets.Delivered = append(buckets.Delivered, order)
		}
	}
	return buckets
}

// InProgress counts the combined "in progress" tab: accepted and
// out-for-delivery stay distinct statuses but share one dashboard bucket.
func (b StatusBuckets) InProgress() int {
	return len(b.Accepted) + len(b.OutForDelivery)
}
