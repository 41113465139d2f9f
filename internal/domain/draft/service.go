package draft

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/splus/splus-api/internal/domain/addon"
	"github.com/splus/splus-api/internal/domain/booking"
	"github.com/splus/splus-api/internal/domain/equipment"
	"github.com/splus/splus-api/internal/domain/promotion"
	"github.com/splus/splus-api/internal/pkg/logger"
	"github.com/splus/splus-api/internal/pricing"
)

// StudioRates resolves the hourly rate of a bookable studio.
type StudioRates interface {
	Rate(ctx context.Context, token, studioID string) (pricing.StudioRate, error)
}

// Catalog provides the latest fetched offers.
type Catalog interface {
	EnsureFresh(ctx context.Context)
	Equipment(id string) (equipment.Equipment, bool)
	Service(id string) (addon.Addon, bool)
	Lookup(kind pricing.LineKind, refID string) (float64, bool)
}

// Promotions prices a code against an order value.
type Promotions interface {
	Apply(ctx context.Context, token, code string, orderValue float64) (*promotion.ApplyResult, error)
}

// Bookings creates the final booking.
type Bookings interface {
	Create(ctx context.Context, token string, req *booking.CreateRequest) (*booking.Booking, error)
}

// Service owns the booking draft lifecycle.
type Service struct {
	store      Store
	studios    StudioRates
	catalog    Catalog
	promotions Promotions
	bookings   Bookings
	now        func() time.Time
}

// NewService creates a new draft service.
func NewService(store Store, studios StudioRates, catalog Catalog, promotions Promotions, bookings Bookings) *Service {
	return &Service{
		store:      store,
		studios:    studios,
		catalog:    catalog,
		promotions: promotions,
		bookings:   bookings,
		now:        time.Now,
	}
}

// Create starts a draft for ownerID.
func (s *Service) Create(ctx context.Context, token, ownerID string, req *CreateRequest) (*View, error) {
	now := s.now()
	d := &Draft{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Lines:     []Line{},
		CreatedAt: now,
	}

	if req != nil && req.StudioID == "" && (req.StartTime != nil || req.EndTime != nil) {
		return nil, ErrPartialSchedule
	}
	if req != nil && req.StudioID != "" {
		if err := s.schedule(ctx, token, d, &ScheduleRequest{
			StudioID:  req.StudioID,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
		}); err != nil {
			return nil, err
		}
	}

	if err := s.save(ctx, d); err != nil {
		return nil, err
	}
	logger.LogDebug(ctx, "Draft created", "draft_id", d.ID, "owner_id", ownerID)
	return s.quote(ctx, token, d)
}

// Get returns the draft with a freshly computed breakdown.
func (s *Service) Get(ctx context.Context, token, ownerID, id string) (*View, error) {
	d, err := s.load(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return s.quote(ctx, token, d)
}

// SetSchedule sets the studio and time range.
func (s *Service) SetSchedule(ctx context.Context, token, ownerID, id string, req *ScheduleRequest) (*View, error) {
	d, err := s.load(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := s.schedule(ctx, token, d, req); err != nil {
		return nil, err
	}
	if err := s.save(ctx, d); err != nil {
		return nil, err
	}
	return s.quote(ctx, token, d)
}

// SetLine adds a line or replaces the quantity of an existing one.
// The unit price is captured from the catalogue at this point.
func (s *Service) SetLine(ctx context.Context, token, ownerID, id string, req *LineRequest) (*View, error) {
	d, err := s.load(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	line, err := s.resolveLine(ctx, req)
	if err != nil {
		return nil, err
	}
	d.SetLine(line)

	if err := s.save(ctx, d); err != nil {
		return nil, err
	}
	return s.quote(ctx, token, d)
}

// RemoveLine toggles a line off. Removing an absent line is a no-op.
func (s *Service) RemoveLine(ctx context.Context, token, ownerID, id string, kind pricing.LineKind, refID string) (*View, error) {
	d, err := s.load(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if d.RemoveLine(kind, refID) {
		if err := s.save(ctx, d); err != nil {
			return nil, err
		}
	}
	return s.quote(ctx, token, d)
}

// ApplyPromotion replaces any applied promotion with code. On failure the
// draft is left without a promotion and the error carries the backend message.
func (s *Service) ApplyPromotion(ctx context.Context, token, ownerID, id, code string) (*View, error) {
	d, err := s.load(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	hadPromotion := d.AppliedPromotion != nil
	d.ClearPromotion()
	fail := func(cause error) (*View, error) {
		if hadPromotion {
			if err := s.save(ctx, d); err != nil {
				return nil, err
			}
		}
		return nil, cause
	}

	b, err := s.breakdown(ctx, token, d)
	if err != nil {
		return fail(err)
	}

	result, err := s.promotions.Apply(ctx, token, code, b.Subtotal)
	if err != nil {
		return fail(err)
	}

	amount, estimated := result.Discount(b.Subtotal)
	d.AppliedPromotion = &AppliedPromotion{
		PromotionID:    result.ID(),
		Code:           result.Code,
		DiscountAmount: amount,
		OrderValue:     b.Subtotal,
		Estimated:      estimated,
	}
	if err := s.save(ctx, d); err != nil {
		return nil, err
	}

	logger.LogInfo(ctx, "Promotion applied",
		"draft_id", d.ID,
		"code", result.Code,
		"discount", amount,
		"estimated", estimated,
	)
	return s.quote(ctx, token, d)
}

// RemovePromotion clears the applied promotion. It never calls the backend
// and succeeds when nothing is applied.
func (s *Service) RemovePromotion(ctx context.Context, token, ownerID, id string) (*View, error) {
	d, err := s.load(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if d.AppliedPromotion != nil {
		d.ClearPromotion()
		if err := s.save(ctx, d); err != nil {
			return nil, err
		}
	}
	return s.view(d, s.snapshotRate(d)), nil
}

// Submit creates the booking at the backend and discards the draft.
// A failed submission keeps the draft so the user can retry.
func (s *Service) Submit(ctx context.Context, token, ownerID, id string, req *SubmitRequest) (*booking.Booking, error) {
	d, err := s.load(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if !d.HasSchedule() {
		return nil, ErrIncompleteDraft
	}

	view, err := s.quote(ctx, token, d)
	if err != nil {
		return nil, err
	}

	created, err := s.bookings.Create(ctx, token, BookingRequest(view, s.catalog.Lookup, req))
	if err != nil {
		return nil, err
	}

	if err := s.store.Delete(ctx, d.ID); err != nil {
		logger.LogWarn(ctx, "Failed to discard submitted draft", "draft_id", d.ID, "error", err.Error())
	}
	return created, nil
}

// Discard abandons the draft.
func (s *Service) Discard(ctx context.Context, ownerID, id string) error {
	if _, err := s.load(ctx, ownerID, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

// BookingRequest converts a priced draft into the backend booking payload.
func BookingRequest(v *View, lookup pricing.PriceLookup, req *SubmitRequest) *booking.CreateRequest {
	out := &booking.CreateRequest{
		StudioID:       v.StudioID,
		StartTime:      *v.StartTime,
		EndTime:        *v.EndTime,
		Subtotal:       v.Breakdown.Subtotal,
		DiscountAmount: v.Breakdown.DiscountAmount,
		FinalAmount:    v.Breakdown.FinalTotal,
	}
	if req != nil {
		out.Notes = req.Notes
	}
	if p := v.AppliedPromotion; p != nil {
		out.PromotionID = p.PromotionID
		out.PromoCode = p.Code
	}
	for _, l := range v.Lines {
		item := booking.ItemRequest{
			ID:       l.RefID,
			Quantity: l.Quantity,
			Price:    pricing.ResolvePrice(l.PricingLine(), lookup),
		}
		switch l.Kind {
		case pricing.KindEquipment:
			out.Equipment = append(out.Equipment, item)
		case pricing.KindService:
			out.Services = append(out.Services, item)
		}
	}
	return out
}

func (s *Service) load(ctx context.Context, ownerID, id string) (*Draft, error) {
	d, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.OwnerID != ownerID {
		return nil, ErrDraftNotFound
	}
	return d, nil
}

func (s *Service) save(ctx context.Context, d *Draft) error {
	d.Revision++
	d.UpdatedAt = s.now()
	return s.store.Save(ctx, d)
}

func (s *Service) schedule(ctx context.Context, token string, d *Draft, req *ScheduleRequest) error {
	if req.StartTime == nil || req.EndTime == nil || !req.EndTime.After(*req.StartTime) {
		return ErrInvalidTimeRange
	}
	if req.StartTime.Before(s.now()) {
		return ErrStartInPast
	}
	rate, err := s.studios.Rate(ctx, token, req.StudioID)
	if err != nil {
		return err
	}

	start, end := req.StartTime.UTC(), req.EndTime.UTC()
	d.StudioID = req.StudioID
	d.Rate = &rate
	d.StartTime = &start
	d.EndTime = &end
	return nil
}

func (s *Service) resolveLine(ctx context.Context, req *LineRequest) (Line, error) {
	s.catalog.EnsureFresh(ctx)

	line := Line{
		Kind:     pricing.LineKind(req.Kind),
		RefID:    req.RefID,
		Quantity: req.Quantity,
	}
	switch line.Kind {
	case pricing.KindEquipment:
		e, ok := s.catalog.Equipment(req.RefID)
		if !ok {
			return Line{}, ErrOfferNotFound
		}
		if !e.Available() {
			return Line{}, ErrOfferUnavailable
		}
		line.Name, line.UnitPrice = e.Name, e.PricePerHour
	case pricing.KindService:
		a, ok := s.catalog.Service(req.RefID)
		if !ok {
			return Line{}, ErrOfferNotFound
		}
		if !a.Active() {
			return Line{}, ErrOfferUnavailable
		}
		line.Name, line.UnitPrice = a.Name, a.PricePerUse
	default:
		return Line{}, fmt.Errorf("%w: unknown kind %q", ErrOfferNotFound, req.Kind)
	}
	return line, nil
}

// breakdown prices d with the live studio rate, falling back to the rate
// captured at scheduling when the backend cannot serve it.
func (s *Service) breakdown(ctx context.Context, token string, d *Draft) (pricing.Breakdown, error) {
	var rate pricing.StudioRate
	if d.StudioID != "" {
		live, err := s.studios.Rate(ctx, token, d.StudioID)
		switch {
		case err == nil:
			rate = live
		case d.Rate != nil:
			logger.LogWarn(ctx, "Studio rate unavailable, using snapshot",
				"draft_id", d.ID, "studio_id", d.StudioID, "error", err.Error())
			rate = *d.Rate
		default:
			return pricing.Breakdown{}, err
		}
	}
	s.catalog.EnsureFresh(ctx)
	return pricing.Compute(d.PricingInput(rate, s.catalog.Lookup)), nil
}

func (s *Service) quote(ctx context.Context, token string, d *Draft) (*View, error) {
	b, err := s.breakdown(ctx, token, d)
	if err != nil {
		return nil, err
	}
	return s.priced(d, b), nil
}

// view prices d from local state only.
func (s *Service) view(d *Draft, rate pricing.StudioRate) *View {
	return s.priced(d, pricing.Compute(d.PricingInput(rate, s.catalog.Lookup)))
}

func (s *Service) priced(d *Draft, b pricing.Breakdown) *View {
	v := &View{Draft: d, Breakdown: b}
	if p := d.AppliedPromotion; p != nil && p.OrderValue != b.Subtotal {
		v.PromotionStale = true
	}
	return v
}

func (s *Service) snapshotRate(d *Draft) pricing.StudioRate {
	if d.Rate == nil {
		return pricing.StudioRate{StudioID: d.StudioID}
	}
	return *d.Rate
}
