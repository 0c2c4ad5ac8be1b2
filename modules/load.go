package modules

import (
	"slices"

	"github.com/peopledesk/peopledesk/modules/billing"
	"github.com/peopledesk/peopledesk/modules/core"
	"github.com/peopledesk/peopledesk/modules/helpdesk"
	"github.com/peopledesk/peopledesk/modules/hrm"
	"github.com/peopledesk/peopledesk/modules/logging"
	"github.com/peopledesk/peopledesk/modules/workplace"
	"github.com/peopledesk/peopledesk/pkg/application"
)

var (
	BuiltInModules = []application.Module{
		core.NewModule(),
		hrm.NewModule(),
		workplace.NewModule(),
		helpdesk.NewModule(),
		billing.NewModule(),
		logging.NewModule(),
	}

	NavLinks = append(append(append(append(slices.Clip(core.NavItems),
		hrm.NavItems...),
		workplace.NavItems...),
		helpdesk.NavItems...),
		billing.NavItems...)
)

func Load(app *application.Application, mods ...application.Module) error {
	for _, module := range mods {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
