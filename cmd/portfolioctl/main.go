// Package main provides portfolioctl, a maintenance CLI for the portfolio
// data documents and API.
//
// Usage:
//
//	portfolioctl validate --data-dir ./data
//	portfolioctl catalog --api http://localhost:5001 --category web
package main

func main() {
	Execute()
}
