// Package tester validates scanned API keys against their issuing
// services, one key at a time with fixed pacing and bounded retry on
// rate limiting. Each provider has exactly one checker; dispatch is a
// closed switch over the service enum.
package tester
