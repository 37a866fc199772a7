package usecase_test

import (
	"context"

	"github.com/jstringer1212/plant-review-api/internal/domain"
	"github.com/jstringer1212/plant-review-api/internal/domain/entity"
	"github.com/jstringer1212/plant-review-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Replican el contrato de los
// adaptadores postgres (nil, nil cuando no existe; errores centinela del
// dominio en conflictos) para que los casos de uso se prueben sin DB.

// ── PlantRepository ──────────────────────────────────────────────────────────

type fakePlantRepo struct {
	plants map[string]*entity.Plant
}

func newFakePlantRepo(plants ...*entity.Plant) *fakePlantRepo {
	r := &fakePlantRepo{plants: make(map[string]*entity.Plant)}
	for _, p := range plants {
		r.plants[p.ID] = p
	}
	return r
}

func (r *fakePlantRepo) Create(p *entity.Plant) error {
	for _, existing := range r.plants {
		if existing.CName == p.CName {
			return domain.ErrCommonNameTaken
		}
		if existing.SName == p.SName {
			return domain.ErrScientificNameTaken
		}
	}
	r.plants[p.ID] = p
	return nil
}

func (r *fakePlantRepo) GetByID(id string) (*entity.Plant, error) {
	return r.plants[id], nil
}

func (r *fakePlantRepo) GetByIDWithRating(id string) (*repository.PlantWithRating, error) {
	p := r.plants[id]
	if p == nil {
		return nil, nil
	}
	return &repository.PlantWithRating{Plant: p}, nil
}

func (r *fakePlantRepo) Update(p *entity.Plant) error {
	r.plants[p.ID] = p
	return nil
}

func (r *fakePlantRepo) List(limit, offset int) ([]*repository.PlantWithRating, error) {
	out := make([]*repository.PlantWithRating, 0, len(r.plants))
	for _, p := range r.plants {
		out = append(out, &repository.PlantWithRating{Plant: p})
	}
	return out, nil
}

func (r *fakePlantRepo) Delete(id string) error {
	delete(r.plants, id)
	return nil
}

// ── ReviewRepository ─────────────────────────────────────────────────────────

type fakeReviewRepo struct {
	reviews map[string]*entity.Review
}

func newFakeReviewRepo(reviews ...*entity.Review) *fakeReviewRepo {
	r := &fakeReviewRepo{reviews: make(map[string]*entity.Review)}
	for _, rv := range reviews {
		r.reviews[rv.ID] = rv
	}
	return r
}

func (r *fakeReviewRepo) Create(rv *entity.Review) error {
	r.reviews[rv.ID] = rv
	return nil
}

func (r *fakeReviewRepo) GetByID(id string) (*entity.Review, error) {
	return r.reviews[id], nil
}

func (r *fakeReviewRepo) Update(rv *entity.Review) error {
	r.reviews[rv.ID] = rv
	return nil
}

func (r *fakeReviewRepo) List(limit, offset int) ([]*entity.Review, error) {
	out := make([]*entity.Review, 0, len(r.reviews))
	for _, rv := range r.reviews {
		out = append(out, rv)
	}
	return out, nil
}

func (r *fakeReviewRepo) ListByPlant(plantID string, limit, offset int) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, rv := range r.reviews {
		if rv.PlantID == plantID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) Delete(id string) error {
	delete(r.reviews, id)
	return nil
}

// ── CommentRepository ────────────────────────────────────────────────────────

type fakeCommentRepo struct {
	comments map[string]*entity.Comment
}

func newFakeCommentRepo(comments ...*entity.Comment) *fakeCommentRepo {
	r := &fakeCommentRepo{comments: make(map[string]*entity.Comment)}
	for _, cm := range comments {
		r.comments[cm.ID] = cm
	}
	return r
}

func (r *fakeCommentRepo) Create(cm *entity.Comment) error {
	r.comments[cm.ID] = cm
	return nil
}

func (r *fakeCommentRepo) GetByID(id string) (*entity.Comment, error) {
	return r.comments[id], nil
}

func (r *fakeCommentRepo) Update(cm *entity.Comment) error {
	r.comments[cm.ID] = cm
	return nil
}

func (r *fakeCommentRepo) List(limit, offset int) ([]*entity.Comment, error) {
	out := make([]*entity.Comment, 0, len(r.comments))
	for _, cm := range r.comments {
		out = append(out, cm)
	}
	return out, nil
}

func (r *fakeCommentRepo) ListByReview(reviewID string, limit, offset int) ([]*entity.Comment, error) {
	var out []*entity.Comment
	for _, cm := range r.comments {
		if cm.ReviewID == reviewID {
			out = append(out, cm)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) Delete(id string) error {
	delete(r.comments, id)
	return nil
}

func (r *fakeCommentRepo) DeleteByReview(reviewID string) error {
	for id, cm := range r.comments {
		if cm.ReviewID == reviewID {
			delete(r.comments, id)
		}
	}
	return nil
}

// ── FavoriteRepository ───────────────────────────────────────────────────────

type fakeFavoriteRepo struct {
	favs map[string]*entity.Favorite // clave userID+"/"+plantID
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favs: make(map[string]*entity.Favorite)}
}

func favKey(userID, plantID string) string { return userID + "/" + plantID }

// Add replica el INSERT ... ON CONFLICT DO NOTHING del adaptador.
func (r *fakeFavoriteRepo) Add(f *entity.Favorite) error {
	k := favKey(f.UserID, f.PlantID)
	if _, ok := r.favs[k]; ok {
		return domain.ErrAlreadyFavorited
	}
	r.favs[k] = f
	return nil
}

// Remove replica el DELETE condicional del adaptador.
func (r *fakeFavoriteRepo) Remove(userID, plantID string) error {
	k := favKey(userID, plantID)
	if _, ok := r.favs[k]; !ok {
		return domain.ErrFavoriteNotFound
	}
	delete(r.favs, k)
	return nil
}

func (r *fakeFavoriteRepo) ListByUser(userID string) ([]*entity.Favorite, error) {
	var out []*entity.Favorite
	for _, f := range r.favs {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFavoriteRepo) List(limit, offset int) ([]*entity.Favorite, error) {
	out := make([]*entity.Favorite, 0, len(r.favs))
	for _, f := range r.favs {
		out = append(out, f)
	}
	return out, nil
}

// ── UserRepository ───────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

// ── TxRunner ─────────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta el callback sobre los mismos fakes, sin transacción real.
type fakeTxRunner struct {
	reviewRepo  repository.ReviewRepository
	commentRepo repository.CommentRepository
	calls       int
}

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(repository.ReviewRepository, repository.CommentRepository) error) error {
	tr.calls++
	return fn(tr.reviewRepo, tr.commentRepo)
}
