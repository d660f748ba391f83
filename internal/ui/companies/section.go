// Package companies holds the load, empty and retry states of the company
// logos section.
package companies

import (
	"errors"
	"fmt"
	"net"

	"github.com/bartal/portfolio/internal/apiclient"
	"github.com/bartal/portfolio/internal/companies/domain"
)

// MaxRetries caps manual retries.
const MaxRetries = 3

const (
	msgTimeout  = "Request timed out. Please check your connection."
	msgNotFound = "Company data not found."
	msgServer   = "Server error. Please try again later."
	msgOffline  = "No internet connection. Please check your network."
	msgDefault  = "Failed to load company logos"

	// GaveUpMessage replaces the retry control once retries are exhausted.
	GaveUpMessage = "Maximum retry attempts reached. Please refresh the page or try again later."
)

type Phase int

const (
	Loading Phase = iota
	Ready
	Empty
	Failed
	GaveUp
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Empty:
		return "empty"
	case Failed:
		return "failed"
	case GaveUp:
		return "gave_up"
	}
	return "unknown"
}

// State is the section state. Companies is never nil.
type State struct {
	Phase     Phase
	Companies []domain.Company
	Message   string
	Retries   int
}

// Start is the state right after mount, with the first fetch in flight.
func Start() State {
	return State{Phase: Loading, Companies: []domain.Company{}}
}

// Loaded applies a fetch result. Errors and empty lists both count against
// the retry cap; a non-empty list resets it.
func Loaded(s State, companies []domain.Company, err error) State {
	switch {
	case err != nil:
		s.Phase = Failed
		s.Message = Message(err)
		s.Companies = []domain.Company{}
	case len(companies) == 0:
		s.Phase = Empty
		s.Message = ""
		s.Companies = []domain.Company{}
	default:
		s.Phase = Ready
		s.Message = ""
		s.Companies = companies
		s.Retries = 0
		return s
	}
	if s.Retries >= MaxRetries {
		s.Phase = GaveUp
		s.Message = GaveUpMessage
	}
	return s
}

// Retry starts another fetch if allowed. ok reports whether the caller
// should fetch again.
func Retry(s State) (next State, ok bool) {
	if !s.CanRetry() {
		return s, false
	}
	s.Retries++
	s.Phase = Loading
	return s, true
}

// CanRetry reports whether the retry control is shown.
func (s State) CanRetry() bool {
	return (s.Phase == Failed || s.Phase == Empty) && s.Retries < MaxRetries
}

// AttemptLabel is shown next to the retry control after the first retry.
func (s State) AttemptLabel() string {
	if s.Retries > 0 && s.Retries < MaxRetries && s.CanRetry() {
		return fmt.Sprintf("Attempt %d of %d", s.Retries+1, MaxRetries)
	}
	return ""
}

// Message maps a fetch error to the text shown to the visitor.
func Message(err error) string {
	var se *apiclient.StatusError
	switch {
	case err == nil:
		return ""
	case apiclient.IsTimeout(err):
		return msgTimeout
	case errors.As(err, &se) && se.Code == 404:
		return msgNotFound
	case errors.As(err, &se) && se.Code >= 500:
		return msgServer
	case offline(err):
		return msgOffline
	}
	return msgDefault
}

func offline(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}
