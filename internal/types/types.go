package types

import (
	"strings"
	"time"
)

// Service identifies a supported API key provider.
type Service string

const (
	ServiceOpenAI      Service = "OpenAI"
	ServiceGroq        Service = "Groq"
	ServiceGitHub      Service = "GitHub"
	ServiceStripe      Service = "Stripe"
	ServiceGoogle      Service = "Google/Firebase"
	ServiceAWS         Service = "AWS"
	ServiceAnthropic   Service = "Anthropic"
	ServiceHuggingFace Service = "Hugging Face"
)

// Services lists every supported provider in detection order.
func Services() []Service {
	return []Service{
		ServiceOpenAI,
		ServiceGroq,
		ServiceGitHub,
		ServiceStripe,
		ServiceGoogle,
		ServiceAWS,
		ServiceAnthropic,
		ServiceHuggingFace,
	}
}

// Status is the validation state of a key.
type Status string

const (
	StatusValid       Status = "VALID"
	StatusInvalid     Status = "INVALID"
	StatusExpired     Status = "EXPIRED"
	StatusRateLimited Status = "RATE_LIMITED"
	StatusError       Status = "ERROR"
)

// KeyMatch is a single candidate secret found during a scan.
// RawValue is never rendered or logged directly; display goes through
// MaskedValue.
type KeyMatch struct {
	Service     Service `json:"service"`
	MaskedValue string  `json:"maskedValue"`
	RawValue    string  `json:"-"`
	FilePath    string  `json:"filePath"` // relative to scan root, forward slashes
	Line        int     `json:"line"`     // 1-indexed
	Column      int     `json:"column"`   // 1-indexed
}

// ValidationResult is the outcome of testing one key. Details always
// carries a "testedAt" timestamp, even on failure.
type ValidationResult struct {
	Status  Status         `json:"status"`
	Details map[string]any `json:"details"`
	Error   string         `json:"error,omitempty"`
}

// KeyResult pairs a scanned key with its validation outcome.
type KeyResult struct {
	KeyMatch
	ValidationResult
}

// StoredKey is a persisted key record: a KeyMatch plus the latest
// validation fields. Status and LastTested stay null until the key is
// first tested.
type StoredKey struct {
	Service    Service        `json:"service"`
	Key        string         `json:"key"` // masked form
	FullKey    string         `json:"fullKey"`
	Status     *Status        `json:"status"`
	FilePath   string         `json:"filePath"`
	LineNumber int            `json:"lineNumber"`
	Column     int            `json:"column"`
	LastTested *time.Time     `json:"lastTested"`
	QuotaInfo  map[string]any `json:"quotaInfo"`
	LastError  string         `json:"lastError,omitempty"`
}

// Project is a previously scanned directory. The ID is assigned on first
// scan of a path and survives rescans; everything else is replaced.
type Project struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Path       string      `json:"path"` // absolute, canonicalized
	ScannedAt  time.Time   `json:"scannedAt"`
	TotalFiles int         `json:"totalFiles"`
	Repo       *RepoInfo   `json:"repo,omitempty"`
	Keys       []StoredKey `json:"keys"`
}

// RepoInfo is best-effort git metadata captured when a project is saved.
type RepoInfo struct {
	Remote string `json:"remote,omitempty"`
	Branch string `json:"branch,omitempty"`
	Commit string `json:"commit,omitempty"`
}

// Database is the whole persisted store.
type Database struct {
	Version    string    `json:"version"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	Projects   []Project `json:"projects"`
	BannedKeys []string  `json:"bannedKeys"`
}

// Mask returns the display-safe form of a secret: first 4 and last 4
// characters with the middle elided. Values of 8 characters or fewer are
// fully masked.
func Mask(s string) string {
	if len(s) <= 8 {
		return strings.Repeat("*", len(s))
	}
	return s[:4] + "..." + s[len(s)-4:]
}

// NewStoredKey converts a scan match into its persisted form with no
// validation state yet.
func NewStoredKey(m KeyMatch) StoredKey {
	return StoredKey{
		Service:    m.Service,
		Key:        m.MaskedValue,
		FullKey:    m.RawValue,
		FilePath:   m.FilePath,
		LineNumber: m.Line,
		Column:     m.Column,
	}
}
