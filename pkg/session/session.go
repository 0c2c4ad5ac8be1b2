// Package session is the single access point to the persisted session
// blob. Call sites consume the provider's accessors; nothing else reads
// the storage path. Initialized once at login, torn down once at logout.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/peopledesk/peopledesk/pkg/authz"
)

// Employee is the authenticated user as the backend issued it at login.
// Type is the integer role discriminator (1=Admin … 5=Manager).
type Employee struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Email   string     `json:"email,omitempty"`
	Type    authz.Role `json:"type"`
	JobRole string     `json:"jobRole,omitempty"`
}

type blob struct {
	Employee *Employee `json:"employee"`
	Token    string    `json:"token,omitempty"`
}

// Provider owns the session lifecycle. All accessors are safe for
// concurrent use.
type Provider struct {
	path string
	log  *logrus.Logger

	mu       sync.RWMutex
	employee *Employee
	token    string
}

func NewProvider(path string, log *logrus.Logger) *Provider {
	return &Provider{path: path, log: log}
}

// Load restores a persisted session. A missing file is a logged-out state;
// a malformed blob degrades to the same safe default instead of erroring.
func (p *Provider) Load() {
	raw, err := os.ReadFile(p.path)
	if err != nil {
		if !os.IsNotExist(err) && p.log != nil {
			p.log.WithError(err).Warn("session: reading blob")
		}
		return
	}

	var b blob
	if err := json.Unmarshal(raw, &b); err != nil {
		if p.log != nil {
			p.log.WithError(err).Warn("session: malformed blob, starting logged out")
		}
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.employee = b.Employee
	p.token = b.Token
}

// Login is the one initialization point of the session.
func (p *Provider) Login(employee Employee, token string) error {
	p.mu.Lock()
	p.employee = &employee
	p.token = token
	p.mu.Unlock()
	return p.persist()
}

// Logout is the one teardown point of the session.
func (p *Provider) Logout() error {
	p.mu.Lock()
	p.employee = nil
	p.token = ""
	p.mu.Unlock()

	if err := os.Remove(p.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (p *Provider) persist() error {
	p.mu.RLock()
	b := blob{Employee: p.employee, Token: p.token}
	p.mu.RUnlock()

	raw, err := json.Marshal(b)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(p.path, raw, 0o600)
}

func (p *Provider) CurrentUser() (Employee, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.employee == nil {
		return Employee{}, false
	}
	return *p.employee, true
}

// CurrentEmployeeID returns "" when logged out.
func (p *Provider) CurrentEmployeeID() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.employee == nil {
		return ""
	}
	return p.employee.ID
}

// Role returns the session role, or 0 when logged out.
func (p *Provider) Role() authz.Role {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.employee == nil {
		return 0
	}
	return p.employee.Type
}

func (p *Provider) Token() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.token
}
