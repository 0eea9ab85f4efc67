package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"travelfit/internal/delivery/api/middleware"
	"travelfit/internal/delivery/api/response"
	"travelfit/internal/domain/entity"
	"travelfit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// photoFormFields are the multipart fields image files are read from.
var photoFormFields = []string{"files", "file"}

// PhotoHandlerParams holds dependencies for PhotoHandler, injected by Fx.
type PhotoHandlerParams struct {
	fx.In

	PhotoUC usecase.PhotoUsecase
	Logger  *slog.Logger
}

// PhotoHandler holds dependencies for gym photo gallery handlers
type PhotoHandler struct {
	photoUC usecase.PhotoUsecase
	logger  *slog.Logger
}

// NewPhotoHandler is the constructor for PhotoHandler
func NewPhotoHandler(params PhotoHandlerParams) *PhotoHandler {
	return &PhotoHandler{
		photoUC: params.PhotoUC,
		logger:  params.Logger,
	}
}

// UploadPhotos handles a multipart upload of one or more gym photos.
// Files are stored in order; the first failure stops the upload and earlier files stay stored.
func (h *PhotoHandler) UploadPhotos(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	gymID, err := uuid.Parse(c.Param("gymId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid gym ID")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Expected a multipart form")
	}

	var files []*multipart.FileHeader
	for _, field := range photoFormFields {
		files = append(files, form.File[field]...)
	}
	if len(files) == 0 {
		return response.BadRequest(c, "VALIDATION_ERROR", "At least one photo is required")
	}

	photos := make([]*entity.GymPhoto, 0, len(files))
	for _, file := range files {
		upload, err := readUpload(file)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Failed to read uploaded photo")
		}

		photo, err := h.photoUC.AddPhoto(c.Request().Context(), identity, gymID, upload)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		photos = append(photos, photo)
	}

	return response.Success(c, http.StatusCreated, toPhotoResponses(photos))
}

// ListPhotos handles listing a gym's photos
func (h *PhotoHandler) ListPhotos(c echo.Context) error {
	gymID, err := uuid.Parse(c.Param("gymId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid gym ID")
	}

	photos, err := h.photoUC.ListPhotos(c.Request().Context(), gymID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPhotoResponses(photos))
}

// DeletePhoto handles removing a gym photo
func (h *PhotoHandler) DeletePhoto(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	gymID, err := uuid.Parse(c.Param("gymId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid gym ID")
	}

	photoID, err := uuid.Parse(c.Param("photoId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid photo ID")
	}

	if err := h.photoUC.DeletePhoto(c.Request().Context(), identity, gymID, photoID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Photo deleted successfully"})
}

// readUpload loads a multipart file into memory. The content type falls back to sniffing
// when the client did not declare one.
func readUpload(file *multipart.FileHeader) (*usecase.PhotoUpload, error) {
	src, err := file.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, errors.Wrap(err, "read uploaded file")
	}

	contentType := file.Header.Get(echo.HeaderContentType)
	if contentType == "" || contentType == echo.MIMEOctetStream {
		contentType = http.DetectContentType(data)
	}

	return &usecase.PhotoUpload{
		Filename:    file.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
