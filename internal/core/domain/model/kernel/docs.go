// Package kernel contains the shared value objects of the domain model:
// the typed numeric entity identifiers and their per-kind allocation seeds.
//
// Every externally visible identifier in the system is a strictly increasing
// integer drawn from a per-kind sequence. The kinds do not overlap: each kind
// starts at its own seed (users 10001, items 20001, requests 30001, orders
// 40001, procurements 50001, reviews 60001, messages 70001, alerts 90001), so
// an identifier below its kind's seed is invalid by construction.
package kernel
