package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"serving_u/internal/domain/entities"
	"serving_u/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCatalogItemNotFound   = errors.New("catalog item not found")
	ErrInvalidCatalogItemID  = errors.New("invalid catalog item id")
	ErrMissingCatalogFields  = errors.New("missing required catalog item fields")
	ErrInvalidCatalogPrice   = errors.New("catalog item price must be positive")
	ErrMissingItemImage      = errors.New("at least one image is required")
	ErrNoCatalogItemIDs      = errors.New("no catalog item ids supplied")
	ErrImageStorageNotConfig = errors.New("image storage not configured")
)

const (
	laundryImageFolder    = "laundry-items"
	unstitchedImageFolder = "uploads"
)

// CreateLaundryItemInput carries the admin's new laundry service. Exactly one
// of Image (a multipart file) or ImageURL (already hosted) must be supplied.
type CreateLaundryItemInput struct {
	Name     string
	Category string
	Price    float64
	Unit     string
	Image    io.Reader
	ImageURL string
}

// UpdateLaundryItemInput mirrors the create input; the image is optional.
type UpdateLaundryItemInput struct {
	Name     string
	Category string
	Price    float64
	Unit     string
	Image    io.Reader
	ImageURL string
}

// ILaundryItemUseCase is the admin catalog surface for laundry services.

type ILaundryItemUseCase interface {
	Create(ctx context.Context, in CreateLaundryItemInput) (entities.LaundryItem, error)
	List(ctx context.Context) ([]entities.LaundryItem, error)
	Update(ctx context.Context, id string, in UpdateLaundryItemInput) (entities.LaundryItem, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) error
}

type LaundryItemUseCase struct {
	repo    interfaces.ILaundryItemRepository
	storage interfaces.IImageStorage
}

var _ ILaundryItemUseCase = (*LaundryItemUseCase)(nil)

func NewLaundryItemUseCase(repo interfaces.ILaundryItemRepository, storage interfaces.IImageStorage) *LaundryItemUseCase {
	return &LaundryItemUseCase{repo: repo, storage: storage}
}

func (u *LaundryItemUseCase) Create(ctx context.Context, in CreateLaundryItemInput) (entities.LaundryItem, error) {
	if anyBlank(in.Name, in.Category, in.Unit) {
		return entities.LaundryItem{}, ErrMissingCatalogFields
	}
	if in.Price <= 0 {
		return entities.LaundryItem{}, ErrInvalidCatalogPrice
	}
	imageURL, err := u.resolveImage(ctx, in.Image, in.ImageURL)
	if err != nil {
		return entities.LaundryItem{}, err
	}
	if imageURL == "" {
		return entities.LaundryItem{}, ErrMissingItemImage
	}

	it := entities.LaundryItem{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(in.Name),
		Category: strings.TrimSpace(in.Category),
		Price:    in.Price,
		Unit:     strings.TrimSpace(in.Unit),
		Image:    imageURL,
	}
	created, err := u.repo.Create(ctx, it)
	if err != nil {
		return entities.LaundryItem{}, err
	}
	log.Printf("[catalog][usecase] laundry item created item_id=%s name=%s", created.ID, created.Name)
	return created, nil
}

func (u *LaundryItemUseCase) List(ctx context.Context) ([]entities.LaundryItem, error) {
	return u.repo.List(ctx)
}

func (u *LaundryItemUseCase) Update(ctx context.Context, id string, in UpdateLaundryItemInput) (entities.LaundryItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LaundryItem{}, ErrInvalidCatalogItemID
	}
	if anyBlank(in.Name, in.Category, in.Unit) {
		return entities.LaundryItem{}, ErrMissingCatalogFields
	}
	if in.Price <= 0 {
		return entities.LaundryItem{}, ErrInvalidCatalogPrice
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.LaundryItem{}, err
	}
	if existing.ID == "" {
		return entities.LaundryItem{}, ErrCatalogItemNotFound
	}

	imageURL, err := u.resolveImage(ctx, in.Image, in.ImageURL)
	if err != nil {
		return entities.LaundryItem{}, err
	}
	if imageURL == "" {
		imageURL = existing.Image
	}

	existing.Name = strings.TrimSpace(in.Name)
	existing.Category = strings.TrimSpace(in.Category)
	existing.Price = in.Price
	existing.Unit = strings.TrimSpace(in.Unit)
	existing.Image = imageURL
	return u.repo.Update(ctx, existing)
}

func (u *LaundryItemUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCatalogItemID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCatalogItemNotFound
	}
	return nil
}

func (u *LaundryItemUseCase) DeleteMany(ctx context.Context, ids []string) error {
	ids = cleanIDs(ids)
	if len(ids) == 0 {
		return ErrNoCatalogItemIDs
	}
	return u.repo.DeleteMany(ctx, ids)
}

func (u *LaundryItemUseCase) resolveImage(ctx context.Context, file io.Reader, url string) (string, error) {
	if file == nil {
		return strings.TrimSpace(url), nil
	}
	if u.storage == nil {
		return "", ErrImageStorageNotConfig
	}
	return u.storage.Upload(ctx, file, laundryImageFolder)
}

// CreateUnstitchedItemInput carries the admin's new garment listing. Images
// may come as uploads, hosted URLs, or a mix; at least one is required and at
// most five are kept.
type CreateUnstitchedItemInput struct {
	Name        string
	Category    string
	Price       float64
	Description string
	Sizes       []string
	Images      []io.Reader
	ImageURLs   []string
}

// UpdateUnstitchedItemInput replaces the listing fields. When ImageURLs is
// non-nil it becomes the authoritative carousel (dropped URLs are removed);
// new uploads append to it.
type UpdateUnstitchedItemInput struct {
	Name        string
	Category    string
	Price       float64
	Description string
	Sizes       []string
	Images      []io.Reader
	ImageURLs   []string
}

// IUnstitchedItemUseCase is the admin catalog surface for garments.

type IUnstitchedItemUseCase interface {
	Create(ctx context.Context, in CreateUnstitchedItemInput) (entities.UnstitchedItem, error)
	List(ctx context.Context) ([]entities.UnstitchedItem, error)
	Update(ctx context.Context, id string, in UpdateUnstitchedItemInput) (entities.UnstitchedItem, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) error
}

type UnstitchedItemUseCase struct {
	repo    interfaces.IUnstitchedItemRepository
	storage interfaces.IImageStorage
}

var _ IUnstitchedItemUseCase = (*UnstitchedItemUseCase)(nil)

func NewUnstitchedItemUseCase(repo interfaces.IUnstitchedItemRepository, storage interfaces.IImageStorage) *UnstitchedItemUseCase {
	return &UnstitchedItemUseCase{repo: repo, storage: storage}
}

func (u *UnstitchedItemUseCase) Create(ctx context.Context, in CreateUnstitchedItemInput) (entities.UnstitchedItem, error) {
	if strings.TrimSpace(in.Name) == "" {
		return entities.UnstitchedItem{}, ErrMissingCatalogFields
	}
	if in.Price <= 0 {
		return entities.UnstitchedItem{}, ErrInvalidCatalogPrice
	}

	images, err := u.collectImages(ctx, in.Images, in.ImageURLs, nil)
	if err != nil {
		return entities.UnstitchedItem{}, err
	}
	if len(images) == 0 {
		return entities.UnstitchedItem{}, ErrMissingItemImage
	}

	it := entities.UnstitchedItem{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Category:    strings.TrimSpace(in.Category),
		Price:       in.Price,
		Description: strings.TrimSpace(in.Description),
		Sizes:       cleanIDs(in.Sizes),
		Images:      images,
	}
	if it.Sizes == nil {
		it.Sizes = []string{}
	}
	created, err := u.repo.Create(ctx, it)
	if err != nil {
		return entities.UnstitchedItem{}, err
	}
	log.Printf("[catalog][usecase] unstitched item created item_id=%s name=%s images=%d", created.ID, created.Name, len(created.Images))
	return created, nil
}

func (u *UnstitchedItemUseCase) List(ctx context.Context) ([]entities.UnstitchedItem, error) {
	return u.repo.List(ctx)
}

func (u *UnstitchedItemUseCase) Update(ctx context.Context, id string, in UpdateUnstitchedItemInput) (entities.UnstitchedItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.UnstitchedItem{}, ErrInvalidCatalogItemID
	}
	if strings.TrimSpace(in.Name) == "" {
		return entities.UnstitchedItem{}, ErrMissingCatalogFields
	}
	if in.Price <= 0 {
		return entities.UnstitchedItem{}, ErrInvalidCatalogPrice
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.UnstitchedItem{}, err
	}
	if existing.ID == "" {
		return entities.UnstitchedItem{}, ErrCatalogItemNotFound
	}

	base := existing.Images
	if in.ImageURLs != nil {
		base = nil
	}
	images, err := u.collectImages(ctx, in.Images, in.ImageURLs, base)
	if err != nil {
		return entities.UnstitchedItem{}, err
	}
	if len(images) == 0 {
		return entities.UnstitchedItem{}, ErrMissingItemImage
	}

	existing.Name = strings.TrimSpace(in.Name)
	existing.Category = strings.TrimSpace(in.Category)
	existing.Price = in.Price
	existing.Description = strings.TrimSpace(in.Description)
	if in.Sizes != nil {
		existing.Sizes = cleanIDs(in.Sizes)
		if existing.Sizes == nil {
			existing.Sizes = []string{}
		}
	}
	existing.Images = images
	return u.repo.Update(ctx, existing)
}

func (u *UnstitchedItemUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCatalogItemID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCatalogItemNotFound
	}
	return nil
}

func (u *UnstitchedItemUseCase) DeleteMany(ctx context.Context, ids []string) error {
	ids = cleanIDs(ids)
	if len(ids) == 0 {
		return ErrNoCatalogItemIDs
	}
	return u.repo.DeleteMany(ctx, ids)
}

// collectImages merges kept URLs, caller-supplied URLs and fresh uploads in
// that order, capped at the carousel limit.
func (u *UnstitchedItemUseCase) collectImages(ctx context.Context, files []io.Reader, urls, keep []string) ([]string, error) {
	images := append([]string{}, keep...)
	images = append(images, cleanIDs(urls)...)
	for _, f := range files {
		if f == nil {
			continue
		}
		if u.storage == nil {
			return nil, ErrImageStorageNotConfig
		}
		url, err := u.storage.Upload(ctx, f, unstitchedImageFolder)
		if err != nil {
			return nil, err
		}
		images = append(images, url)
	}
	if len(images) > entities.MaxItemImages {
		images = images[:entities.MaxItemImages]
	}
	if len(images) == 0 {
		return nil, nil
	}
	return images, nil
}

func anyBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

func cleanIDs(values []string) []string {
	var out []string
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}
