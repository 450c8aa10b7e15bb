package application

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/petcare-br/service-shelter/internal/domain"
	adoptionDomain "github.com/petcare-br/service-shelter/internal/domain/adoption"
	careDomain "github.com/petcare-br/service-shelter/internal/domain/care"
	petDomain "github.com/petcare-br/service-shelter/internal/domain/pet"
	tutorDomain "github.com/petcare-br/service-shelter/internal/domain/tutor"
	"github.com/petcare-br/service-shelter/internal/events"
	"github.com/petcare-br/service-shelter/internal/repository"
)

// In-memory repository fakes. They keep aggregates in maps and mimic the
// (nil, nil) absence contracts of the gorm implementations.

type fakePetRepo struct {
	mu   sync.Mutex
	pets map[uuid.UUID]*petDomain.Pet
}

func newFakePetRepo() *fakePetRepo {
	return &fakePetRepo{pets: map[uuid.UUID]*petDomain.Pet{}}
}

func (r *fakePetRepo) FindByID(_ context.Context, id uuid.UUID) (*petDomain.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pets[id]
	if !ok {
		return nil, domain.NewNotFoundError("Pet", id.String())
	}
	return clonePet(p), nil
}

func (r *fakePetRepo) FindAll(_ context.Context) ([]*petDomain.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*petDomain.Pet, 0, len(r.pets))
	for _, p := range r.pets {
		out = append(out, clonePet(p))
	}
	return out, nil
}

func (r *fakePetRepo) FindByStatus(_ context.Context, status petDomain.Status) ([]*petDomain.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*petDomain.Pet
	for _, p := range r.pets {
		if p.Status() == status {
			out = append(out, clonePet(p))
		}
	}
	return out, nil
}

func (r *fakePetRepo) FindByTutorID(_ context.Context, tutorID uuid.UUID) ([]*petDomain.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*petDomain.Pet
	for _, p := range r.pets {
		if p.TutorID() != nil && *p.TutorID() == tutorID {
			out = append(out, clonePet(p))
		}
	}
	return out, nil
}

func (r *fakePetRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.pets[id]
	return ok, nil
}

func (r *fakePetRepo) ExistsByTutorID(_ context.Context, tutorID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.pets {
		if p.TutorID() != nil && *p.TutorID() == tutorID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePetRepo) Save(_ context.Context, p *petDomain.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pets[p.ID()] = clonePet(p)
	return nil
}

func (r *fakePetRepo) Update(_ context.Context, p *petDomain.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pets[p.ID()]; !ok {
		return domain.NewNotFoundError("Pet", p.ID().String())
	}
	r.pets[p.ID()] = clonePet(p)
	return nil
}

func (r *fakePetRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pets, id)
	return nil
}

func clonePet(p *petDomain.Pet) *petDomain.Pet {
	var tutorID *uuid.UUID
	if p.TutorID() != nil {
		id := *p.TutorID()
		tutorID = &id
	}
	return petDomain.Reconstruct(
		p.ID(), p.Nome(), p.Especie(), p.Raca(), p.Idade(),
		p.Status(), p.DataEntrada(), tutorID, p.CreatedAt(), p.UpdatedAt(),
	)
}

type fakeTutorRepo struct {
	mu      sync.Mutex
	tutores map[uuid.UUID]*tutorDomain.Tutor
}

func newFakeTutorRepo() *fakeTutorRepo {
	return &fakeTutorRepo{tutores: map[uuid.UUID]*tutorDomain.Tutor{}}
}

func (r *fakeTutorRepo) FindByID(_ context.Context, id uuid.UUID) (*tutorDomain.Tutor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tutores[id]
	if !ok {
		return nil, domain.NewNotFoundError("Tutor", id.String())
	}
	return t, nil
}

func (r *fakeTutorRepo) FindAll(_ context.Context) ([]*tutorDomain.Tutor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*tutorDomain.Tutor, 0, len(r.tutores))
	for _, t := range r.tutores {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTutorRepo) FindByEmail(_ context.Context, email string) (*tutorDomain.Tutor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	normalized := tutorDomain.NormalizeEmail(email)
	for _, t := range r.tutores {
		if t.Email() == normalized {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeTutorRepo) Save(_ context.Context, t *tutorDomain.Tutor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tutores[t.ID()] = t
	return nil
}

func (r *fakeTutorRepo) Update(_ context.Context, t *tutorDomain.Tutor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tutores[t.ID()]; !ok {
		return domain.NewNotFoundError("Tutor", t.ID().String())
	}
	r.tutores[t.ID()] = t
	return nil
}

func (r *fakeTutorRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tutores, id)
	return nil
}

type fakeAdoptionRepo struct {
	mu      sync.Mutex
	adocoes map[uuid.UUID]*adoptionDomain.Adoption
}

func newFakeAdoptionRepo() *fakeAdoptionRepo {
	return &fakeAdoptionRepo{adocoes: map[uuid.UUID]*adoptionDomain.Adoption{}}
}

func (r *fakeAdoptionRepo) FindByPetID(_ context.Context, petID uuid.UUID) ([]*adoptionDomain.Adoption, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*adoptionDomain.Adoption
	for _, a := range r.adocoes {
		if a.PetID() == petID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAdoptionRepo) FindByTutorID(_ context.Context, tutorID uuid.UUID) ([]*adoptionDomain.Adoption, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*adoptionDomain.Adoption
	for _, a := range r.adocoes {
		if a.TutorID() == tutorID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAdoptionRepo) FindActiveByPetID(_ context.Context, petID uuid.UUID) (*adoptionDomain.Adoption, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.adocoes {
		if a.PetID() == petID && a.IsActive() {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAdoptionRepo) ExistsActiveByPetID(ctx context.Context, petID uuid.UUID) (bool, error) {
	a, err := r.FindActiveByPetID(ctx, petID)
	return a != nil, err
}

func (r *fakeAdoptionRepo) Save(_ context.Context, a *adoptionDomain.Adoption) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adocoes[a.ID()] = a
	return nil
}

func (r *fakeAdoptionRepo) Update(_ context.Context, a *adoptionDomain.Adoption) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.adocoes[a.ID()]; !ok {
		return domain.NewNotFoundError("Adoção", a.ID().String())
	}
	r.adocoes[a.ID()] = a
	return nil
}

func (r *fakeAdoptionRepo) DeleteByPetID(_ context.Context, petID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, a := range r.adocoes {
		if a.PetID() == petID {
			delete(r.adocoes, id)
		}
	}
	return nil
}

type fakeCareRepo struct {
	mu       sync.Mutex
	cuidados map[uuid.UUID]*careDomain.Care
}

func newFakeCareRepo() *fakeCareRepo {
	return &fakeCareRepo{cuidados: map[uuid.UUID]*careDomain.Care{}}
}

func (r *fakeCareRepo) FindByID(_ context.Context, id uuid.UUID) (*careDomain.Care, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cuidados[id]
	if !ok {
		return nil, domain.NewNotFoundError("Cuidado", id.String())
	}
	return c, nil
}

func (r *fakeCareRepo) FindAll(_ context.Context) ([]*careDomain.Care, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*careDomain.Care, 0, len(r.cuidados))
	for _, c := range r.cuidados {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCareRepo) FindByPetID(_ context.Context, petID uuid.UUID) ([]*careDomain.Care, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*careDomain.Care
	for _, c := range r.cuidados {
		if c.PetID() == petID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCareRepo) FindByTipo(_ context.Context, tipo careDomain.CareType) ([]*careDomain.Care, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*careDomain.Care
	for _, c := range r.cuidados {
		if c.Tipo() == tipo {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCareRepo) FindByPetIDAndTipo(_ context.Context, petID uuid.UUID, tipo careDomain.CareType) ([]*careDomain.Care, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*careDomain.Care
	for _, c := range r.cuidados {
		if c.PetID() == petID && c.Tipo() == tipo {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCareRepo) Save(_ context.Context, c *careDomain.Care) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cuidados[c.ID()] = c
	return nil
}

func (r *fakeCareRepo) Update(_ context.Context, c *careDomain.Care) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cuidados[c.ID()]; !ok {
		return domain.NewNotFoundError("Cuidado", c.ID().String())
	}
	r.cuidados[c.ID()] = c
	return nil
}

func (r *fakeCareRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.cuidados, id)
	return nil
}

func (r *fakeCareRepo) DeleteByPetID(_ context.Context, petID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, c := range r.cuidados {
		if c.PetID() == petID {
			delete(r.cuidados, id)
		}
	}
	return nil
}

// fakeUnitOfWork runs the callback against the same repositories with no
// transactional boundary. Good enough for service-level behavior tests.
type fakeUnitOfWork struct {
	repos repository.Repositories
}

func (u *fakeUnitOfWork) Do(_ context.Context, fn func(repos repository.Repositories) error) error {
	return fn(u.repos)
}

// capturePublisher records every published event.
type capturePublisher struct {
	mu     sync.Mutex
	events []events.CloudEvent
}

func (p *capturePublisher) PublishEvent(_ context.Context, _ string, event events.CloudEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *capturePublisher) Published() []events.CloudEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.CloudEvent, len(p.events))
	copy(out, p.events)
	return out
}
