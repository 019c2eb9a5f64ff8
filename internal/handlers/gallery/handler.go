package gallery

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"villa/infras/otel"
	"villa/internal/domains/gallery/model"
	"villa/internal/domains/gallery/model/dto"
	"villa/internal/domains/gallery/service"
	"villa/shared/constant"
	"villa/shared/failure"
	"villa/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Gallery
	otel    otel.Otel
}

func New(service service.Gallery, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/gallery", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.ListItems)
		routerGroup.Get("/lightbox", handler.Lightbox)
		routerGroup.Get("/slideshow", handler.Slideshow)
		routerGroup.Post("/", handler.UploadItem)
		routerGroup.Delete("/{id}", handler.DeleteItem)
	})
}

// ListItems returns the gallery filtered by category.
// @Summary List gallery items
// @Tags Gallery
// @Produce json
// @Param category query string false "Category, empty or all returns everything"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Data[dto.ListResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/gallery [get]
func (handler *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListItems")
	defer scope.End()

	query := dto.ListQuery{}
	if err := query.FromRequest(r); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.List(ctx, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list gallery items")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Lightbox opens an item and optionally steps to its neighbour.
// @Summary Lightbox navigation
// @Tags Gallery
// @Produce json
// @Param category query string false "Active filter"
// @Param index query int false "Current index"
// @Param step query int false "-1 previous, 1 next"
// @Success 200 {object} response.Data[dto.LightboxResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/gallery/lightbox [get]
func (handler *Handler) Lightbox(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Lightbox")
	defer scope.End()

	query := dto.LightboxQuery{}
	query.FromRequest(r)

	res, err := handler.service.Lightbox(ctx, query)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Slideshow
// @Summary Hero slides and their interval
// @Tags Gallery
// @Produce json
// @Success 200 {object} response.Data[dto.SlideshowResponse]
// @Failure 500 {object} response.Error
// @Router /v1/gallery/slideshow [get]
func (handler *Handler) Slideshow(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Slideshow")
	defer scope.End()

	res, err := handler.service.Slideshow(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load slideshow")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UploadItem stores an image with its thumbnail and adds it to the gallery.
// @Summary Upload a gallery image
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PNG or JPEG image"
// @Param title formData string true "Title"
// @Param category formData string true "Category"
// @Param caption formData string false "Caption"
// @Param position formData int false "Sort position"
// @Success 201 {object} response.Data[dto.ItemResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/gallery [post]
func (handler *Handler) UploadItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadItem")
	defer scope.End()

	req, err := uploadRequest(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read upload form")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Upload(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload gallery item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Gallery item uploaded " + res.ID)

	response.WithJSON(w, http.StatusCreated, res)
}

// DeleteItem
// @Summary Delete a gallery item and its images
// @Tags Gallery
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/gallery/{id} [delete]
func (handler *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete gallery item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Gallery item deleted " + id)

	response.WithMessage(w, http.StatusOK, "Gallery item deleted successfully")
}

func uploadRequest(r *http.Request) (req dto.UploadRequest, err error) {
	if err = r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return req, failure.BadRequest(fmt.Errorf("failed to parse multipart form: %w", err)) //nolint:wrapcheck
	}

	file, _, err := r.FormFile(constant.FormFile)
	if err != nil {
		return req, failure.BadRequest(fmt.Errorf("failed to get file from form: %w", err)) //nolint:wrapcheck
	}
	defer file.Close()

	req.Image, err = io.ReadAll(file)
	if err != nil {
		return req, failure.BadRequest(fmt.Errorf("failed to read uploaded file: %w", err)) //nolint:wrapcheck
	}

	req.Title = r.FormValue(model.FieldTitle)
	req.Category = r.FormValue(model.FieldCategory)
	req.Caption = r.FormValue(model.FieldCaption)

	if position := strings.TrimSpace(r.FormValue(model.FieldPosition)); position != constant.Empty {
		req.Position, err = strconv.Atoi(position)
		if err != nil {
			return req, failure.BadRequestFromString("position must be a number") //nolint:wrapcheck
		}
	}

	return req, nil
}
