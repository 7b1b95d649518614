package redisx

import "time"

const (
	// Cached product list (full JSON array): products:all
	KeyProductList = "products:all"

	// Cached delivery flag record: delivery:status
	KeyDeliveryStatus = "delivery:status"
)

var (
	TTLProductList    = 30 * time.Second
	TTLDeliveryStatus = 5 * time.Minute
)
