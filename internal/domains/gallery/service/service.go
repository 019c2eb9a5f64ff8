package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"cmp"
	"context"
	"fmt"

	"villa/config"
	"villa/infras/otel"
	"villa/infras/s3"
	"villa/internal/domains/gallery/model"
	"villa/internal/domains/gallery/model/dto"
	"villa/internal/domains/gallery/repository"
	"villa/shared"
	"villa/shared/cache"
	"villa/shared/constant"
	"villa/shared/failure"
	"villa/shared/thumbnail"
	"villa/shared/validator"

	"github.com/gabriel-vasile/mimetype"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	cacheListGallery    = "gallery:list"
	cacheVisibleGallery = "gallery:visible"

	thumbnailSuffix = "_thumb"
)

type Gallery interface {
	List(ctx context.Context, req dto.ListQuery) (dto.ListResponse, error)
	Lightbox(ctx context.Context, req dto.LightboxQuery) (dto.LightboxResponse, error)
	Slideshow(ctx context.Context) (dto.SlideshowResponse, error)
	Upload(ctx context.Context, req dto.UploadRequest) (dto.ItemResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Gallery
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Gallery, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Gallery {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) List(ctx context.Context, req dto.ListQuery) (res dto.ListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheListGallery, req.QueryParams, req.Category)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for gallery items")

		return res, nil
	}

	filter := repository.Filter{Category: req.Category}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count gallery items")

		return res, fmt.Errorf("failed to count gallery items: %w", err)
	}

	filter.Limit = req.Limit
	filter.Offset = req.Offset()

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list gallery items")

		return res, fmt.Errorf("failed to list gallery items: %w", err)
	}

	res.FromModels(items, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save gallery items to cache")
		}
	}()

	return res, nil
}

// Lightbox moves through the items visible under the current filter and wraps
// around at both ends.
func (s *serviceImpl) Lightbox(ctx context.Context, req dto.LightboxQuery) (res dto.LightboxResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Lightbox")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	items, err := s.visible(ctx, req.Category)
	if err != nil {
		return res, err
	}

	if len(items) == 0 {
		return res, failure.NotFound("no gallery items to show") //nolint:wrapcheck
	}

	res.FromModels(items, model.Step(req.Index, req.Step, len(items)))

	return res, nil
}

func (s *serviceImpl) Slideshow(ctx context.Context) (res dto.SlideshowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Slideshow")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	items, err := s.visible(ctx, model.CategoryHero)
	if err != nil {
		return res, err
	}

	res.FromModels(items, s.cfg.Gallery.SlideshowIntervalMs)

	return res, nil
}

func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadRequest) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = validator.ValidateVar(req.Image, fmt.Sprintf("maxfilesize=%g", s.cfg.Gallery.MaxImageMB)); err != nil {
		return res, err //nolint:wrapcheck
	}

	thumb, err := thumbnail.Generate(req.Image, s.cfg.Gallery.ThumbnailWidth, s.cfg.Gallery.ThumbnailHeight)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate thumbnail")

		return res, failure.BadRequestFromString("image could not be decoded") //nolint:wrapcheck
	}

	id := dto.NewItemID()
	detected := mimetype.Detect(req.Image)

	var imageURL, thumbnailURL string

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		imageURL, err = s.s3.UploadFile(groupCtx, model.EntityName, id+detected.Extension(), detected.String(), req.Image)

		return err //nolint:wrapcheck
	})
	group.Go(func() (err error) {
		thumbnailURL, err = s.s3.UploadFile(groupCtx, model.EntityName, id+thumbnailSuffix+thumbnail.Extension, thumbnail.ContentType, thumb)

		return err //nolint:wrapcheck
	})

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to upload gallery image")

		if cleanupErr := s.removeObjects(context.WithoutCancel(ctx), imageURL, thumbnailURL); cleanupErr != nil {
			log.Error().Err(cleanupErr).Msg("failed to remove partially uploaded gallery image")
		}

		return res, fmt.Errorf("failed to upload gallery image: %w", err)
	}

	item := req.ToModel(id, imageURL, thumbnailURL)

	if err = s.repo.Insert(ctx, item); err != nil {
		if cleanupErr := s.removeObjects(context.WithoutCancel(ctx), imageURL, thumbnailURL); cleanupErr != nil {
			err = multierror.Append(err, cleanupErr)
		}

		log.Error().Err(err).Str("id", id).Msg("failed to save gallery item")

		return res, fmt.Errorf("failed to save gallery item: %w", err)
	}

	s.invalidate(ctx)

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	item, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get gallery item")

		return fmt.Errorf("failed to get gallery item: %w", err)
	}

	if item.ID == constant.Empty {
		return failure.NotFound("gallery item not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete gallery item")

		return fmt.Errorf("failed to delete gallery item: %w", err)
	}

	s.invalidate(ctx)

	// The row is gone, so leftover objects are only logged.
	if err := s.removeObjects(ctx, item.ImageURL, item.ThumbnailURL); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete gallery images from S3")
	}

	return nil
}

func (s *serviceImpl) visible(ctx context.Context, category string) (items []model.Item, err error) {
	cacheKey := shared.BuildCacheKey(cacheVisibleGallery, cmp.Or(category, model.CategoryAll))

	if err = s.cache.Get(ctx, cacheKey, &items); err == nil {
		return items, nil
	}

	items, err = s.repo.List(ctx, repository.Filter{Category: category})
	if err != nil {
		log.Error().Err(err).Msg("failed to list gallery items")

		return nil, fmt.Errorf("failed to list gallery items: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, items, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save visible gallery items to cache")
		}
	}()

	return items, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheListGallery)
		shared.InvalidateCaches(c, s.cache, cacheVisibleGallery)
	}()
}

// removeObjects deletes every object behind urls and reports all failures together.
func (s *serviceImpl) removeObjects(ctx context.Context, urls ...string) error {
	var result *multierror.Error

	for _, url := range urls {
		if url == constant.Empty {
			continue
		}

		objectKey := s.s3.GetObjectKeyFromURL(url)
		if objectKey == constant.Empty {
			log.Warn().Str("url", url).Msg("failed to extract object key from URL")

			continue
		}

		if err := s.s3.DeleteFile(ctx, objectKey); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}
