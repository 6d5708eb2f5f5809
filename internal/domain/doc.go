// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/member). This root
// package holds the sentinel errors and the error types that carry validation
// messages and storage failures across layers.
package domain
