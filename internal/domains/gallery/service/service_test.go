package service_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"strings"
	"testing"
	"time"

	"villa/config"
	"villa/infras/otel/mocks"
	s3Mocks "villa/infras/s3/mocks"
	galleryMocks "villa/internal/domains/gallery/mocks"
	"villa/internal/domains/gallery/model"
	"villa/internal/domains/gallery/model/dto"
	"villa/internal/domains/gallery/repository"
	"villa/internal/domains/gallery/service"
	cacheMocks "villa/shared/cache/mocks"
	gDto "villa/shared/dto"
	"villa/shared/failure"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const cdn = "https://cdn.example.com/"

var errCacheMiss = errors.New("cache miss")

type fixture struct {
	repo  *galleryMocks.MockGallery
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
	svc   service.Gallery
	cfg   *config.Config
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Gallery.SlideshowIntervalMs = 4500
	cfg.Gallery.MaxImageMB = 5
	cfg.Gallery.ThumbnailWidth = 48
	cfg.Gallery.ThumbnailHeight = 36

	f := fixture{
		repo:  galleryMocks.NewMockGallery(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
		cfg:   cfg,
	}
	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel(), f.s3)

	return f
}

func items() []model.Item {
	return []model.Item{
		{ID: "1", Title: "Pool at dusk", Category: "pool", Caption: "Evening swim", Position: 1},
		{ID: "2", Title: "Mango grove", Category: "garden", Position: 2},
		{ID: "3", Title: "Veranda", Category: "hero", Caption: "Morning tea", Position: 3},
	}
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 96, 72))
	for x := range 96 {
		for y := range 72 {
			img.Set(x, y, color.RGBA{R: 30, G: 120, B: 60, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func uploadedURL(_ context.Context, directory, fileName, _ string, _ []byte) (string, error) {
	return cdn + directory + "/" + fileName, nil
}

func objectKey(url string) string {
	return strings.TrimPrefix(url, cdn)
}

func TestGalleryService_List(t *testing.T) {
	req := dto.ListQuery{Category: "pool", QueryParams: gDto.QueryParams{Page: 2, Limit: 2}}

	t.Run("cache hit", func(t *testing.T) {
		f := newFixture(t)

		cached := dto.ListResponse{TotalData: 1, TotalPage: 1, Items: []dto.ItemResponse{{ID: "cached"}}}

		f.cache.EXPECT().
			Get(gomock.Any(), "gallery:list:pool:p2_l2", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*dto.ListResponse) = cached

				return nil
			})

		res, err := f.svc.List(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, cached, res)
	})

	t.Run("cache miss reads one page", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		f.repo.EXPECT().Count(gomock.Any(), repository.Filter{Category: "pool"}).Return(3, nil)
		f.repo.EXPECT().
			List(gomock.Any(), repository.Filter{Category: "pool", Limit: 2, Offset: 2}).
			Return(items()[:1], nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).Return(nil).AnyTimes()

		res, err := f.svc.List(context.Background(), req)

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, 3, res.TotalData)
		assert.Equal(t, 2, res.TotalPage)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "Evening swim", res.Items[0].Caption)
	})

	t.Run("count error", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))

		_, err := f.svc.List(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestGalleryService_Lightbox(t *testing.T) {
	tests := []struct {
		name        string
		req         dto.LightboxQuery
		wantIndex   int
		wantCounter string
		wantCaption string
	}{
		{
			name:        "next from first",
			req:         dto.LightboxQuery{Index: 0, Step: 1},
			wantIndex:   1,
			wantCounter: "2 / 3",
			wantCaption: "Mango grove",
		},
		{
			name:        "previous from first wraps to last",
			req:         dto.LightboxQuery{Index: 0, Step: -1},
			wantIndex:   2,
			wantCounter: "3 / 3",
			wantCaption: "Morning tea",
		},
		{
			name:        "next from last wraps to first",
			req:         dto.LightboxQuery{Index: 2, Step: 1},
			wantIndex:   0,
			wantCounter: "1 / 3",
			wantCaption: "Evening swim",
		},
		{
			name:        "open without moving",
			req:         dto.LightboxQuery{Index: 1},
			wantIndex:   1,
			wantCounter: "2 / 3",
			wantCaption: "Mango grove",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.cache.EXPECT().Get(gomock.Any(), "gallery:visible:all", gomock.Any()).Return(errCacheMiss)
			f.repo.EXPECT().List(gomock.Any(), repository.Filter{}).Return(items(), nil)
			f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

			res, err := f.svc.Lightbox(context.Background(), tt.req)

			time.Sleep(10 * time.Millisecond)

			require.NoError(t, err)
			assert.Equal(t, tt.wantIndex, res.Index)
			assert.Equal(t, 3, res.Total)
			assert.Equal(t, tt.wantCounter, res.Counter)
			assert.Equal(t, tt.wantCaption, res.Item.Caption)
		})
	}
}

func TestGalleryService_Lightbox_Errors(t *testing.T) {
	t.Run("negative index", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Lightbox(context.Background(), dto.LightboxQuery{Index: -1})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("empty category", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "gallery:visible:pool", gomock.Any()).Return(errCacheMiss)
		f.repo.EXPECT().List(gomock.Any(), repository.Filter{Category: "pool"}).Return(nil, nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		_, err := f.svc.Lightbox(context.Background(), dto.LightboxQuery{Category: "pool"})

		time.Sleep(10 * time.Millisecond)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestGalleryService_Slideshow(t *testing.T) {
	f := newFixture(t)

	hero := items()[2:]

	f.cache.EXPECT().
		Get(gomock.Any(), "gallery:visible:hero", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*value.(*[]model.Item) = hero

			return nil
		})

	res, err := f.svc.Slideshow(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4500, res.IntervalMs)
	require.Len(t, res.Slides, 1)
	assert.Equal(t, "Veranda", res.Slides[0].Title)
}

func TestGalleryService_Upload(t *testing.T) {
	req := func(t *testing.T) dto.UploadRequest {
		return dto.UploadRequest{
			Title:    "  Garden path ",
			Category: "Garden",
			Position: 4,
			Image:    pngBytes(t),
		}
	}

	t.Run("stores image and thumbnail", func(t *testing.T) {
		f := newFixture(t)

		var names []string

		f.s3.EXPECT().
			UploadFile(gomock.Any(), model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(uploadedURL).
			Times(2)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item model.Item) error {
				names = append(names, objectKey(item.ImageURL), objectKey(item.ThumbnailURL))

				return nil
			})
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := f.svc.Upload(context.Background(), req(t))

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, "Garden path", res.Title)
		assert.Equal(t, "garden", res.Category)
		assert.Equal(t, "Garden path", res.Caption)
		assert.Equal(t, 4, res.Position)
		require.Len(t, names, 2)
		assert.Equal(t, "gallery/"+res.ID+".png", names[0])
		assert.Equal(t, "gallery/"+res.ID+"_thumb.jpg", names[1])
	})

	t.Run("rejects non image bytes", func(t *testing.T) {
		f := newFixture(t)

		r := req(t)
		r.Image = []byte("just some text")

		_, err := f.svc.Upload(context.Background(), r)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, "mimetypes", failure.GetReason(err))
	})

	t.Run("rejects oversized image", func(t *testing.T) {
		f := newFixture(t)
		f.cfg.Gallery.MaxImageMB = 0.00001

		_, err := f.svc.Upload(context.Background(), req(t))

		assert.Equal(t, "maxfilesize", failure.GetReason(err))
	})

	t.Run("missing title", func(t *testing.T) {
		f := newFixture(t)

		r := req(t)
		r.Title = ""

		_, err := f.svc.Upload(context.Background(), r)

		assert.Equal(t, "required", failure.GetReason(err))
	})

	t.Run("failed thumbnail upload removes the original", func(t *testing.T) {
		f := newFixture(t)

		f.s3.EXPECT().
			UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, directory, fileName, contentType string, data []byte) (string, error) {
				if strings.HasSuffix(fileName, "_thumb.jpg") {
					return "", errors.New("bucket unavailable")
				}

				return uploadedURL(ctx, directory, fileName, contentType, data)
			}).
			Times(2)
		f.s3.EXPECT().GetObjectKeyFromURL(gomock.Any()).DoAndReturn(objectKey)
		f.s3.EXPECT().DeleteFile(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.Upload(context.Background(), req(t))

		assert.ErrorContains(t, err, "bucket unavailable")
	})

	t.Run("insert failure reports cleanup errors too", func(t *testing.T) {
		f := newFixture(t)

		f.s3.EXPECT().
			UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(uploadedURL).
			Times(2)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
		f.s3.EXPECT().GetObjectKeyFromURL(gomock.Any()).DoAndReturn(objectKey).Times(2)
		f.s3.EXPECT().
			DeleteFile(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key string) error {
				if strings.HasSuffix(key, "_thumb.jpg") {
					return errors.New("delete denied")
				}

				return nil
			}).
			Times(2)

		_, err := f.svc.Upload(context.Background(), req(t))

		var merr *multierror.Error
		require.ErrorAs(t, err, &merr)
		assert.Len(t, merr.Errors, 2)
		assert.ErrorContains(t, err, "database error")
		assert.ErrorContains(t, err, "delete denied")
	})
}

func TestGalleryService_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), "missing").Return(model.Item{}, nil)

		err := f.svc.Delete(context.Background(), "missing")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("removes row and objects", func(t *testing.T) {
		f := newFixture(t)

		item := items()[0]
		item.ImageURL = cdn + "gallery/1.png"
		item.ThumbnailURL = cdn + "gallery/1_thumb.jpg"

		f.repo.EXPECT().Get(gomock.Any(), "1").Return(item, nil)
		f.repo.EXPECT().Delete(gomock.Any(), "1").Return(nil)
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		f.s3.EXPECT().GetObjectKeyFromURL(gomock.Any()).DoAndReturn(objectKey).Times(2)
		f.s3.EXPECT().DeleteFile(gomock.Any(), "gallery/1.png").Return(nil)
		f.s3.EXPECT().DeleteFile(gomock.Any(), "gallery/1_thumb.jpg").Return(errors.New("delete denied"))

		err := f.svc.Delete(context.Background(), "1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), "1").Return(items()[0], nil)
		f.repo.EXPECT().Delete(gomock.Any(), "1").Return(errors.New("database error"))

		err := f.svc.Delete(context.Background(), "1")

		assert.Error(t, err)
	})
}
