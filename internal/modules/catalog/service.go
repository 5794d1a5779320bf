package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"travelnest/internal/domain"
	"travelnest/internal/pkg/validator"
	"travelnest/internal/pricing"
)

// Actor is the principal performing a catalog operation, resolved once by
// the auth middleware and passed in explicitly.
type Actor struct {
	ID   int64
	Role domain.UserRole
}

func (a Actor) isAdmin() bool { return a.Role == domain.RoleAdmin }

func (a Actor) canManage(ownerID *int64) bool {
	if a.isAdmin() {
		return true
	}
	return a.Role == domain.RoleCompany && ownerID != nil && *ownerID == a.ID
}

type Service struct {
	destinations DestinationRepository
	packages     PackageRepository
	offers       OfferRepository
}

func NewService(destinations DestinationRepository, packages PackageRepository, offers OfferRepository) *Service {
	return &Service{
		destinations: destinations,
		packages:     packages,
		offers:       offers,
	}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func destinationView(d domain.Destination) DestinationView {
	return DestinationView{
		Destination:     d,
		EffectivePrice:  pricing.EffectivePrice(d.BasePrice, d.DiscountPrice),
		DiscountPercent: pricing.DiscountPercent(d.BasePrice, d.DiscountPrice),
		LegacyCategory:  domain.IsLegacyCategory(d.Category),
	}
}

func packageView(p domain.Package) PackageView {
	return PackageView{
		Package:         p,
		EffectivePrice:  pricing.EffectivePrice(p.BasePrice, p.DiscountPrice),
		DiscountPercent: pricing.DiscountPercent(p.BasePrice, p.DiscountPrice),
		LegacyCategory:  domain.IsLegacyCategory(p.Category),
	}
}

func offerView(o domain.Offer) OfferView {
	return OfferView{
		Offer:           o,
		EffectivePrice:  pricing.EffectivePrice(o.BasePrice, o.DiscountPrice),
		DiscountPercent: pricing.DiscountPercent(o.BasePrice, o.DiscountPrice),
		LegacyCategory:  domain.IsLegacyCategory(o.Category),
	}
}

/* ---------- DESTINATIONS ---------- */

func (s *Service) ListDestinations(ctx context.Context, q ListQuery) ([]DestinationView, int64, error) {
	f, err := q.filters()
	if err != nil {
		return nil, 0, err
	}
	items, total, err := s.destinations.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	out := make([]DestinationView, 0, len(items))
	for _, d := range items {
		out = append(out, destinationView(d))
	}
	return out, total, nil
}

func (s *Service) GetDestination(ctx context.Context, id int64) (*DestinationView, error) {
	d, err := s.destinations.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	v := destinationView(*d)
	return &v, nil
}

func (s *Service) CreateDestination(ctx context.Context, actor Actor, in ItemInput) (*DestinationView, error) {
	if actor.Role != domain.RoleCompany && !actor.isAdmin() {
		return nil, ErrForbidden
	}

	item := domain.CatalogItem{IsActive: true}
	if errs := applyItemInput(&item, in, ModeCreate, domain.KindDestination, actor.isAdmin()); errs != nil {
		return nil, errs
	}
	if actor.Role == domain.RoleCompany {
		item.OwnerID = &actor.ID
	}

	d := &domain.Destination{CatalogItem: item}
	if err := s.destinations.Create(ctx, d); err != nil {
		return nil, err
	}
	v := destinationView(*d)
	return &v, nil
}

func (s *Service) UpdateDestination(ctx context.Context, actor Actor, id int64, in ItemInput) (*DestinationView, error) {
	d, err := s.destinations.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if !actor.canManage(d.OwnerID) {
		return nil, ErrForbidden
	}

	item := d.CatalogItem
	if errs := applyItemInput(&item, in, ModeUpdate, domain.KindDestination, actor.isAdmin()); errs != nil {
		return nil, errs
	}
	d.CatalogItem = item

	if err := s.destinations.Update(ctx, d); err != nil {
		return nil, err
	}
	v := destinationView(*d)
	return &v, nil
}

func (s *Service) DeleteDestination(ctx context.Context, actor Actor, id int64) error {
	d, err := s.destinations.GetByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	if !actor.canManage(d.OwnerID) {
		return ErrForbidden
	}
	// Image blob cleanup belongs to the storage collaborator; only the
	// reference goes away with the row.
	return s.destinations.Delete(ctx, id)
}

func (s *Service) ToggleDestinationActive(ctx context.Context, actor Actor, id int64) (*DestinationView, error) {
	d, err := s.destinations.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if !actor.canManage(d.OwnerID) {
		return nil, ErrForbidden
	}
	if err := s.destinations.SetActive(ctx, id, !d.IsActive); err != nil {
		return nil, err
	}
	d.IsActive = !d.IsActive
	v := destinationView(*d)
	return &v, nil
}

func (s *Service) ToggleDestinationFeatured(ctx context.Context, actor Actor, id int64) (*DestinationView, error) {
	d, err := s.destinations.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if !actor.canManage(d.OwnerID) {
		return nil, ErrForbidden
	}
	if err := s.destinations.SetFeatured(ctx, id, !d.IsFeatured); err != nil {
		return nil, err
	}
	d.IsFeatured = !d.IsFeatured
	v := destinationView(*d)
	return &v, nil
}

/* ---------- PACKAGES ---------- */

func (s *Service) ListPackages(ctx context.Context, q ListQuery) ([]PackageView, int64, error) {
	f, err := q.filters()
	if err != nil {
		return nil, 0, err
	}
	items, total, err := s.packages.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	out := make([]PackageView, 0, len(items))
	for _, p := range items {
		out = append(out, packageView(p))
	}
	return out, total, nil
}

func (s *Service) GetPackage(ctx context.Context, id int64) (*PackageView, error) {
	p, err := s.packages.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	v := packageView(*p)
	return &v, nil
}

func (s *Service) CreatePackage(ctx context.Context, actor Actor, in ItemInput) (*PackageView, error) {
	if actor.Role != domain.RoleCompany && !actor.isAdmin() {
		return nil, ErrForbidden
	}

	item := domain.CatalogItem{IsActive: true}
	errs := applyItemInput(&item, in, ModeCreate, domain.KindPackage, actor.isAdmin())
	days := 0
	if in.Days != nil {
		if *in.Days < 1 {
			if errs == nil {
				errs = make(validator.Errors)
			}
			errs["days"] = "must be at least 1"
		} else {
			days = *in.Days
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	if actor.Role == domain.RoleCompany {
		item.OwnerID = &actor.ID
	}

	p := &domain.Package{CatalogItem: item, Days: days}
	if err := s.packages.Create(ctx, p); err != nil {
		return nil, err
	}
	v := packageView(*p)
	return &v, nil
}

func (s *Service) UpdatePackage(ctx context.Context, actor Actor, id int64, in ItemInput) (*PackageView, error) {
	p, err := s.packages.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if !actor.canManage(p.OwnerID) {
		return nil, ErrForbidden
	}

	item := p.CatalogItem
	errs := applyItemInput(&item, in, ModeUpdate, domain.KindPackage, actor.isAdmin())
	if in.Days != nil {
		if *in.Days < 1 {
			if errs == nil {
				errs = make(validator.Errors)
			}
			errs["days"] = "must be at least 1"
		} else {
			p.Days = *in.Days
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	p.CatalogItem = item

	if err := s.packages.Update(ctx, p); err != nil {
		return nil, err
	}
	v := packageView(*p)
	return &v, nil
}

func (s *Service) DeletePackage(ctx context.Context, actor Actor, id int64) error {
	p, err := s.packages.GetByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	if !actor.canManage(p.OwnerID) {
		return ErrForbidden
	}
	return s.packages.Delete(ctx, id)
}

func (s *Service) TogglePackageActive(ctx context.Context, actor Actor, id int64) (*PackageView, error) {
	p, err := s.packages.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if !actor.canManage(p.OwnerID) {
		return nil, ErrForbidden
	}
	if err := s.packages.SetActive(ctx, id, !p.IsActive); err != nil {
		return nil, err
	}
	p.IsActive = !p.IsActive
	v := packageView(*p)
	return &v, nil
}

func (s *Service) TogglePackageFeatured(ctx context.Context, actor Actor, id int64) (*PackageView, error) {
	p, err := s.packages.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if !actor.canManage(p.OwnerID) {
		return nil, ErrForbidden
	}
	if err := s.packages.SetFeatured(ctx, id, !p.IsFeatured); err != nil {
		return nil, err
	}
	p.IsFeatured = !p.IsFeatured
	v := packageView(*p)
	return &v, nil
}

/* ---------- OFFERS ---------- */

func (s *Service) ListOffers(ctx context.Context, q ListQuery) ([]OfferView, int64, error) {
	f, err := q.filters()
	if err != nil {
		return nil, 0, err
	}
	items, total, err := s.offers.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	out := make([]OfferView, 0, len(items))
	for _, o := range items {
		out = append(out, offerView(o))
	}
	return out, total, nil
}

func (s *Service) GetOffer(ctx context.Context, id int64) (*OfferView, error) {
	o, err := s.offers.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	v := offerView(*o)
	return &v, nil
}

func (s *Service) CreateOffer(ctx context.Context, actor Actor, in ItemInput) (*OfferView, error) {
	if actor.Role != domain.RoleCompany && !actor.isAdmin() {
		return nil, ErrForbidden
	}

	item := domain.CatalogItem{IsActive: true}
	if errs := applyItemInput(&item, in, ModeCreate, domain.KindOffer, actor.isAdmin()); errs != nil {
		return nil, errs
	}
	if actor.Role == domain.RoleCompany {
		item.OwnerID = &actor.ID
	}

	o := &domain.Offer{CatalogItem: item}
	if err := s.offers.Create(ctx, o); err != nil {
		return nil, err
	}
	v := offerView(*o)
	return &v, nil
}

func (s *Service) UpdateOffer(ctx context.Context, actor Actor, id int64, in ItemInput) (*OfferView, error) {
	o, err := s.offers.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if !actor.canManage(o.OwnerID) {
		return nil, ErrForbidden
	}

	item := o.CatalogItem
	if errs := applyItemInput(&item, in, ModeUpdate, domain.KindOffer, actor.isAdmin()); errs != nil {
		return nil, errs
	}
	o.CatalogItem = item

	if err := s.offers.Update(ctx, o); err != nil {
		return nil, err
	}
	v := offerView(*o)
	return &v, nil
}

func (s *Service) DeleteOffer(ctx context.Context, actor Actor, id int64) error {
	o, err := s.offers.GetByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	if !actor.canManage(o.OwnerID) {
		return ErrForbidden
	}
	return s.offers.Delete(ctx, id)
}

func (s *Service) ToggleOfferActive(ctx context.Context, actor Actor, id int64) (*OfferView, error) {
	o, err := s.offers.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if !actor.canManage(o.OwnerID) {
		return nil, ErrForbidden
	}
	if err := s.offers.SetActive(ctx, id, !o.IsActive); err != nil {
		return nil, err
	}
	o.IsActive = !o.IsActive
	v := offerView(*o)
	return &v, nil
}

func (s *Service) ToggleOfferFeatured(ctx context.Context, actor Actor, id int64) (*OfferView, error) {
	o, err := s.offers.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if !actor.canManage(o.OwnerID) {
		return nil, ErrForbidden
	}
	if err := s.offers.SetFeatured(ctx, id, !o.IsFeatured); err != nil {
		return nil, err
	}
	o.IsFeatured = !o.IsFeatured
	v := offerView(*o)
	return &v, nil
}
