package identity

import (
	"errors"
	"fmt"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

// systemActorID identifies scheduled jobs in history entries.
var systemActorID = kernel.MustUUIDFromString("00000000-0000-4000-8000-000000000001")

// Actor is the authenticated caller of an operation.
type Actor struct {
	id     kernel.UUID
	role   Role
	entity kernel.EntityRef
}

// NewActor binds a user to a role. Station users must carry a StationRef and
// supplier users a SupplierRef; managers and dispatchers carry no entity.
func NewActor(id kernel.UUID, role Role, entity kernel.EntityRef) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}

	switch role {
	case Station:
		if _, ok := entity.(kernel.StationRef); !ok {
			return Actor{}, errs.NewValueIsInvalidErrorWithCause("entity", fmt.Errorf("%s actor needs a station reference", role))
		}
	case Supplier:
		if _, ok := entity.(kernel.SupplierRef); !ok {
			return Actor{}, errs.NewValueIsInvalidErrorWithCause("entity", fmt.Errorf("%s actor needs a supplier reference", role))
		}
	case Manager, Dispatcher:
		entity = nil
	case UnknownRole:
	}

	return Actor{id: id, role: role, entity: entity}, nil
}

// SystemActor is the manager identity used by scheduled jobs.
func SystemActor() Actor {
	return Actor{id: systemActorID, role: Manager}
}

func (a Actor) ID() kernel.UUID { return a.id }

func (a Actor) Role() Role { return a.role }

// Entity is nil for managers and dispatchers.
func (a Actor) Entity() kernel.EntityRef { return a.entity }

// Represents reports whether the actor acts on behalf of ref.
func (a Actor) Represents(ref kernel.EntityRef) bool {
	return kernel.SameEntity(a.entity, ref)
}

func (a Actor) IsSystem() bool {
	return a.id.IsEqual(systemActorID)
}
