package dto

import (
	"net/http"
	"strconv"
	"strings"

	"villa/internal/domains/gallery/model"
	"villa/shared"
	"villa/shared/constant"
	gDto "villa/shared/dto"
	"villa/shared/timezone"

	"github.com/google/uuid"
)

type ListQuery struct {
	Category string
	gDto.QueryParams
}

func (q *ListQuery) FromRequest(r *http.Request) error {
	q.Category = model.NormalizeCategory(r.URL.Query().Get(constant.RequestParamCategory))

	return q.QueryParams.FromRequest(r, true) //nolint:wrapcheck
}

type LightboxQuery struct {
	Category string `json:"category"`
	Index    int    `json:"index"    validate:"gte=0"`
	Step     int    `json:"step"`
}

// FromRequest reads the query. Values that are not integers are left as 0.
func (q *LightboxQuery) FromRequest(r *http.Request) {
	query := r.URL.Query()

	q.Category = model.NormalizeCategory(query.Get(constant.RequestParamCategory))
	q.Index, _ = strconv.Atoi(strings.TrimSpace(query.Get(constant.RequestParamIndex)))
	q.Step, _ = strconv.Atoi(strings.TrimSpace(query.Get(constant.RequestParamStep)))
}

type UploadRequest struct {
	Title    string `json:"title"    validate:"required,max=100"`
	Category string `json:"category" validate:"required,max=50"`
	Caption  string `json:"caption"  validate:"max=300"`
	Position int    `json:"position" validate:"gte=0"`
	Image    []byte `json:"-"        validate:"required,mimetypes=image/png image/jpeg"`
}

func (r *UploadRequest) ToModel(id, imageURL, thumbnailURL string) model.Item {
	return model.Item{
		ID:           id,
		Title:        strings.TrimSpace(r.Title),
		Category:     model.NormalizeCategory(r.Category),
		Caption:      strings.TrimSpace(r.Caption),
		ImageURL:     imageURL,
		ThumbnailURL: thumbnailURL,
		Position:     r.Position,
		CreatedAt:    timezone.Now(),
	}
}

// NewItemID is separate from ToModel because object names are derived from it
// before the row exists.
func NewItemID() string {
	return uuid.NewString()
}

type ItemResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Category     string `json:"category"`
	Caption      string `json:"caption"`
	ImageURL     string `json:"image_url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Position     int    `json:"position"`
}

func (r *ItemResponse) FromModel(item model.Item) {
	r.ID = item.ID
	r.Title = item.Title
	r.Category = item.Category
	r.Caption = item.DisplayCaption()
	r.ImageURL = item.ImageURL
	r.ThumbnailURL = item.ThumbnailURL
	r.Position = item.Position
}

type ListResponse struct {
	Items     []ItemResponse `json:"items"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *ListResponse) FromModels(items []model.Item, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Items = make([]ItemResponse, len(items))
	for i, item := range items {
		r.Items[i].FromModel(item)
	}
}

type LightboxResponse struct {
	Index   int          `json:"index"`
	Total   int          `json:"total"`
	Counter string       `json:"counter"`
	Item    ItemResponse `json:"item"`
}

func (r *LightboxResponse) FromModels(items []model.Item, index int) {
	r.Index = index
	r.Total = len(items)
	r.Counter = model.Counter(index, len(items))
	r.Item.FromModel(items[index])
}

type SlideshowResponse struct {
	IntervalMs int            `json:"interval_ms"`
	Slides     []ItemResponse `json:"slides"`
}

func (r *SlideshowResponse) FromModels(items []model.Item, intervalMs int) {
	r.IntervalMs = intervalMs

	r.Slides = make([]ItemResponse, len(items))
	for i, item := range items {
		r.Slides[i].FromModel(item)
	}
}

