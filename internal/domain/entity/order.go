// Package entity contains the core business objects of the project.
package entity

import "time"

// Order is a purchase request for a single product variant.
//
// ProductName and Price are snapshots taken at order time so that later
// edits or deletion of the source product never alter historical records.
type Order struct {
	ID           string        `json:"id"`           // Short random token, generated at creation.
	UserID       string        `json:"userId"`       // The customer who placed the order.
	ProductID    string        `json:"productId"`    // The ordered product.
	ProductName  LocalizedText `json:"productName"`  // Snapshot of the product name at order time.
	Price        int           `json:"price"`        // Snapshot of the price at order time, in whole birr.
	CustomerName string        `json:"customerName"` // Recipient full name.
	Phone        string        `json:"phone"`        // Contact phone number.
	Address      string        `json:"address"`      // Free-text delivery address.
	Size         string        `json:"size"`         // Chosen size, copied from the product variant.
	Color        string        `json:"color"`        // Chosen color, copied from the product variant.
	Status       OrderStatus   `json:"status"`       // Lifecycle state, Pending at creation.
	CreatedAt    time.Time     `json:"createdAt"`    // Timestamp of when the order was placed.
}
