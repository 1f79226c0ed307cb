// Package network describes the stations and suppliers that requisitions
// reference. Partners are not owned by the requisition workflow; it only
// checks that both parties exist and are active.
package network

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var (
	ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner constructor")

	codePattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9_-]{1,31}$`)
)

// Partner is a station or a supplier.
type Partner struct {
	ref    kernel.EntityRef
	code   string
	name   string
	active bool

	guard guard.ConstructorGuard
}

// NewPartner registers an active partner. Codes are upper-cased.
func NewPartner(ref kernel.EntityRef, code, name string) (*Partner, error) {
	return RestorePartner(ref, code, name, true)
}

func RestorePartner(ref kernel.EntityRef, code, name string, active bool) (*Partner, error) {
	p := &Partner{active: active, guard: guard.NewConstructorGuard()}

	if err := errors.Join(p.setRef(ref), p.setCode(code), p.setName(name)); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Partner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

func (p *Partner) Ref() kernel.EntityRef { return p.ref }
func (p *Partner) Code() string          { return p.code }
func (p *Partner) Name() string          { return p.name }
func (p *Partner) IsActive() bool        { return p.active }

// EnsureActive fails for partners that no longer take part in requisitions.
func (p *Partner) EnsureActive() error {
	if !p.active {
		return errs.NewValueIsInvalidErrorWithCause(p.ref.Kind().String(),
			fmt.Errorf("%s %s is inactive", p.ref.Kind(), p.code))
	}
	return nil
}

func (p *Partner) Deactivate() { p.active = false }

func (p *Partner) setRef(ref kernel.EntityRef) error {
	if ref == nil {
		return errs.NewValueIsRequiredError("entity")
	}
	if err := ref.ID().Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("entity", err)
	}
	p.ref = ref
	return nil
}

func (p *Partner) setCode(code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !codePattern.MatchString(code) {
		return errs.NewValueIsInvalidErrorWithCause("code",
			fmt.Errorf("%q must be 2-32 letters, digits, '-' or '_'", code))
	}
	p.code = code
	return nil
}

func (p *Partner) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}
