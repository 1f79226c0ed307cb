package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"supplychain/internal/core/domain/model/identity"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/workflow"
	"supplychain/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

const maxReferenceLength = 120

// Transition is one entry of an order's status history.
type Transition struct {
	ID      kernel.UUID
	From    workflow.Status
	To      workflow.Status
	ActorID kernel.UUID
	Role    identity.Role
	Note    string
	At      time.Time
}

// Change is the payload of a status move. Granted quantities are accepted
// when moving to Confirmed or LogisticsProcessed, delivered quantities when
// moving to Received. Both are keyed by product.
type Change struct {
	Reason    string
	Granted   map[kernel.UUID]int64
	Delivered map[kernel.UUID]int64
}

// Order represents a requisition: a transfer request when the provider is a
// station, a purchase order when it is a supplier. It is the aggregate root
// for its lines and status history.
//
// Order follows these invariants:
//   - requester and provider are different entities
//   - at least one line, one line per product
//   - delivered <= granted <= requested on every line
//   - total is recomputed from the lines after every change
//   - status only changes through MoveTo
//
// Version counts persisted changes. MoveTo bumps it, so a repository saving
// the order expects the stored row to be at Version()-1.
type Order struct {
	id        kernel.UUID
	kind      workflow.Kind
	requester kernel.StationRef
	provider  kernel.EntityRef
	reference string
	status    workflow.Status
	total     kernel.Money
	reason    string
	createdBy kernel.UUID
	createdAt time.Time
	updatedAt time.Time
	version   int64
	lines     []Line
	history   []Transition

	isConstructed bool
}

// NewOrder registers a requisition in the Registered status.
//
// The kind follows from the provider: a kernel.StationRef makes a transfer,
// a kernel.SupplierRef a purchase. Whether the creator may register orders
// for the requester is the caller's concern (see workflow.Table.CanCreate).
//
// Example:
//
//	line, _ := order.NewLine(productID, kernel.MustMoney("2.00"), 10)
//	o, err := order.NewOrder(kernel.NewUUID(), requester, source, "REQ-001",
//	    []order.Line{line}, actor.ID(), time.Now())
func NewOrder(
	id kernel.UUID,
	requester kernel.StationRef,
	provider kernel.EntityRef,
	reference string,
	lines []Line,
	createdBy kernel.UUID,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        workflow.Registered,
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParties(requester, provider),
		o.setReference(reference),
		o.setLines(lines),
		o.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	total, err := totalOf(o.lines)
	if err != nil {
		return nil, err
	}
	o.total = total
	return o, nil
}

// RestoreOrder rebuilds an order from storage. Lines are re-validated; the
// total is recomputed rather than trusted.
func RestoreOrder(
	id kernel.UUID,
	requester kernel.StationRef,
	provider kernel.EntityRef,
	reference string,
	status workflow.Status,
	reason string,
	lines []Line,
	history []Transition,
	createdBy kernel.UUID,
	createdAt, updatedAt time.Time,
	version int64,
) (*Order, error) {
	o := &Order{
		reason:        reason,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       version,
		history:       append([]Transition(nil), history...),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParties(requester, provider),
		o.setReference(reference),
		o.setLines(lines),
		o.setCreatedBy(createdBy),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	total, err := totalOf(o.lines)
	if err != nil {
		return nil, err
	}
	o.status = status
	o.total = total
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID              { return o.id }
func (o *Order) Kind() workflow.Kind          { return o.kind }
func (o *Order) Requester() kernel.StationRef { return o.requester }
func (o *Order) Provider() kernel.EntityRef   { return o.provider }
func (o *Order) Reference() string            { return o.reference }
func (o *Order) Status() workflow.Status      { return o.status }
func (o *Order) Total() kernel.Money          { return o.total }
func (o *Order) Reason() string               { return o.reason }
func (o *Order) CreatedBy() kernel.UUID       { return o.createdBy }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
func (o *Order) UpdatedAt() time.Time         { return o.updatedAt }
func (o *Order) Version() int64               { return o.version }
func (o *Order) Parties() workflow.Parties {
	return workflow.Parties{Requester: o.requester, Provider: o.provider}
}
func (o *Order) History() []Transition  { return append([]Transition(nil), o.history...) }
func (o *Order) Table() *workflow.Table { return workflow.TableFor(o.kind) }
func (o *Order) IsTransfer() bool       { return o.kind == workflow.Transfer }
func (o *Order) Involves(ref kernel.EntityRef) bool {
	return kernel.SameEntity(o.requester, ref) || kernel.SameEntity(o.provider, ref)
}

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	for i, l := range o.lines {
		lines[i] = l.clone()
	}
	return lines
}

// CanBeCancelledBy reports whether actor may withdraw the order. Only
// registered orders can be withdrawn, by the requesting station or a manager.
func (o *Order) CanBeCancelledBy(actor identity.Actor) error {
	if o.status != workflow.Registered {
		return errs.NewOperationIsForbiddenError("cancel order",
			fmt.Errorf("order is %s, only %s orders can be cancelled", o.status, workflow.Registered))
	}
	if !o.Table().CanCreate(actor, o.requester) {
		return errs.NewOperationIsForbiddenError("cancel order",
			fmt.Errorf("%s is not the requester of this order", actor.Role()))
	}
	return nil
}

// MoveTo applies a status move on behalf of actor.
//
// The move is checked against the order's workflow table first: a move off
// the graph fails with an InvalidTransitionError, a move the actor holds no
// grant for fails with a ForbiddenTransitionError. Moving to the current
// status is then a no-op and MoveTo returns false.
//
// Otherwise the change payload is applied: granted quantities on the way to
// Confirmed or LogisticsProcessed, delivered quantities (defaulting to the
// billable quantity) on the way to Received, and a mandatory reason on the
// way to Rejected. Any payload the target does not accept is rejected. On
// success the total is recomputed, a history entry is appended, the version
// is bumped and MoveTo returns true. On failure the order is left unchanged.
func (o *Order) MoveTo(to workflow.Status, actor identity.Actor, change Change, now time.Time) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}
	if err := o.Table().Check(o.status, to, actor, o.Parties()); err != nil {
		return false, err
	}
	if to == o.status {
		return false, nil
	}

	lines := o.Lines()
	reason := strings.TrimSpace(change.Reason)

	if len(change.Granted) > 0 {
		if to != workflow.Confirmed && to != workflow.LogisticsProcessed {
			return false, errs.NewValueIsInvalidErrorWithCause("granted",
				fmt.Errorf("granted quantities are not accepted when moving to %s", to))
		}
		if err := applyQuantities(lines, change.Granted, "granted", (*Line).grant); err != nil {
			return false, err
		}
	}

	if len(change.Delivered) > 0 && to != workflow.Received {
		return false, errs.NewValueIsInvalidErrorWithCause("delivered",
			fmt.Errorf("delivered quantities are not accepted when moving to %s", to))
	}
	if to == workflow.Received {
		if err := deliverAll(lines, change.Delivered); err != nil {
			return false, err
		}
	}

	total, err := totalOf(lines)
	if err != nil {
		return false, err
	}

	if to == workflow.Rejected {
		if reason == "" {
			return false, errs.NewValueIsRequiredError("reason")
		}
		o.reason = reason
	}

	o.history = append(o.history, Transition{
		ID:      kernel.NewUUID(),
		From:    o.status,
		To:      to,
		ActorID: actor.ID(),
		Role:    actor.Role(),
		Note:    reason,
		At:      now.UTC(),
	})
	o.lines = lines
	o.status = to
	o.updatedAt = now.UTC()
	o.version++
	o.total = total
	return true, nil
}

func applyQuantities(lines []Line, quantities map[kernel.UUID]int64, param string, apply func(*Line, int64) error) error {
	var errList []error
	matched := 0
	for i := range lines {
		q, ok := quantities[lines[i].productID]
		if !ok {
			continue
		}
		matched++
		errList = append(errList, apply(&lines[i], q))
	}
	if matched != len(quantities) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(param,
			errors.New("quantities reference products that are not on the order")))
	}
	return errors.Join(errList...)
}

func deliverAll(lines []Line, delivered map[kernel.UUID]int64) error {
	quantities := make(map[kernel.UUID]int64, len(lines))
	for _, l := range lines {
		quantities[l.productID] = l.Billable()
	}
	for productID, q := range delivered {
		quantities[productID] = q
	}
	if len(quantities) != len(lines) {
		return errs.NewValueIsInvalidErrorWithCause("delivered",
			errors.New("quantities reference products that are not on the order"))
	}
	return applyQuantities(lines, quantities, "delivered", (*Line).deliver)
}

// totalOf sums the line subtotals and rejects a total that cannot be stored.
func totalOf(lines []Line) (kernel.Money, error) {
	total := kernel.ZeroMoney()
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	if err := total.Validate(); err != nil {
		return kernel.Money{}, errs.NewValueIsOutOfRangeErrorWithCause("totalAmount", total.String(), 0,
			"999999999999.99", err)
	}
	return total, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParties(requester kernel.StationRef, provider kernel.EntityRef) error {
	if err := requester.ID().Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("requester", err)
	}

	switch p := provider.(type) {
	case kernel.StationRef:
		if err := p.ID().Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("provider", err)
		}
		if kernel.SameEntity(requester, p) {
			return errs.NewValueIsInvalidErrorWithCause("provider",
				errors.New("source station must differ from the requesting station"))
		}
		o.kind = workflow.Transfer
	case kernel.SupplierRef:
		if err := p.ID().Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("provider", err)
		}
		o.kind = workflow.Purchase
	default:
		return errs.NewValueIsRequiredError("provider")
	}

	o.requester = requester
	o.provider = provider
	return nil
}

func (o *Order) setReference(reference string) error {
	reference = strings.TrimSpace(reference)
	if len(reference) > maxReferenceLength {
		return errs.NewValueIsOutOfRangeError("reference length", len(reference), 0, maxReferenceLength)
	}
	o.reference = reference
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	seen := make(map[kernel.UUID]struct{}, len(lines))
	copied := make([]Line, 0, len(lines))
	for _, l := range lines {
		if err := l.productID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("productId", err)
		}
		if _, dup := seen[l.productID]; dup {
			return errs.NewValueIsInvalidErrorWithCause("lines",
				fmt.Errorf("product %s appears more than once", l.productID))
		}
		seen[l.productID] = struct{}{}
		copied = append(copied, l.clone())
	}
	o.lines = copied
	return nil
}

func (o *Order) setCreatedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("createdBy", err)
	}
	o.createdBy = id
	return nil
}
