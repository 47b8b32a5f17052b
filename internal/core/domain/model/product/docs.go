// Package product provides the Product aggregate for the catalog. Products
// carry the live unit price and the available stock; order lines capture the
// price at order time, so later price changes never affect placed orders.
package product
