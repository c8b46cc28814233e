// Package services implements the stages of the place-order pipeline as
// domain services: validation, pricing, shipping classification, and
// customer acknowledgment. Each stage consumes the previous stage's output
// by value and produces the next representation; the stages are composed
// by the place-order command handler.
package services
