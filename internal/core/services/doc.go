// Package services implements the driving port interfaces.
// Services contain the core business logic: assembling translator chains
// from rule sources and streaming text through them.
package services
