package datacheck

import (
	"context"
	"sync"
	"time"

	companydomain "github.com/bartal/portfolio/internal/companies/domain"
	"github.com/bartal/portfolio/internal/logging"
	projectdomain "github.com/bartal/portfolio/internal/projects/domain"
)

// Source reads both documents.
type Source interface {
	Projects(ctx context.Context) ([]projectdomain.Project, error)
	Companies(ctx context.Context) ([]companydomain.Company, error)
}

const (
	StateUnknown = "unknown"
	StateOK      = "ok"
	StateInvalid = "invalid"
	StateError   = "error"
)

// Status is the outcome of the last check.
type Status struct {
	State     string    `json:"state"`
	CheckedAt time.Time `json:"checked_at,omitempty"`
	Projects  int       `json:"projects"`
	Companies int       `json:"companies"`
	Issues    []Issue   `json:"issues,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// Checker runs checks against a Source and remembers the last Status.
type Checker struct {
	source Source
	now    func() time.Time

	mu   sync.RWMutex
	last Status
}

func NewChecker(source Source) *Checker {
	return &Checker{
		source: source,
		now:    time.Now,
		last:   Status{State: StateUnknown},
	}
}

// Run reads and validates both documents and stores the result.
func (c *Checker) Run(ctx context.Context) Status {
	st := Status{State: StateOK, CheckedAt: c.now().UTC()}
	logger := logging.NewLogger(ctx)

	projects, err := c.source.Projects(ctx)
	if err != nil {
		st.State, st.Error = StateError, err.Error()
		logger.LogError("datacheck_projects", err)
		return c.store(st)
	}
	companies, err := c.source.Companies(ctx)
	if err != nil {
		st.State, st.Error = StateError, err.Error()
		logger.LogError("datacheck_companies", err)
		return c.store(st)
	}

	st.Projects, st.Companies = len(projects), len(companies)
	st.Issues = append(ValidateProjects(projects), ValidateCompanies(companies)...)
	if len(st.Issues) > 0 {
		st.State = StateInvalid
		for _, is := range st.Issues {
			logger.LogWarn("datacheck", is.String())
		}
	} else {
		logger.LogDebugf("datacheck", "projects=%d companies=%d", st.Projects, st.Companies)
	}
	return c.store(st)
}

func (c *Checker) store(st Status) Status {
	c.mu.Lock()
	c.last = st
	c.mu.Unlock()
	return st
}

// Last returns the most recent Status.
func (c *Checker) Last() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.last
}
