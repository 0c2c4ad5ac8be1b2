package authz

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/pkg/errors"
)

// casbinModel is a plain role/view allow model. Policies are compiled from
// the capability table at startup; there is no file adapter.
const casbinModel = `
[request_definition]
r = sub, obj

[policy_definition]
p = sub, obj

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj
`

// Service answers "may this role reach this view". One instance is shared
// by the router and the navigation builder.
type Service struct {
	enforcer *casbin.Enforcer
	table    CapabilityTable
}

func NewService(table CapabilityTable) (*Service, error) {
	if table == nil {
		table = DefaultCapabilities()
	}

	m, err := model.NewModelFromString(casbinModel)
	if err != nil {
		return nil, errors.Wrap(err, "authz: parsing model")
	}
	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, errors.Wrap(err, "authz: creating enforcer")
	}
	for role, views := range table {
		for _, view := range views {
			if _, err := enforcer.AddPolicy(role.String(), string(view)); err != nil {
				return nil, errors.Wrapf(err, "authz: adding policy %s/%s", role, view)
			}
		}
	}

	return &Service{enforcer: enforcer, table: table}, nil
}

// Can reports whether the role may reach the view. Unknown roles can reach
// nothing.
func (s *Service) Can(role Role, view View) bool {
	ok, err := s.enforcer.Enforce(role.String(), string(view))
	if err != nil {
		return false
	}
	return ok
}

// Views returns the views the role may reach, for menu construction.
func (s *Service) Views(role Role) []View {
	return s.table.Views(role)
}
