package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"travelfit/internal/domain/entity"
	domainerrors "travelfit/internal/domain/errors"
	mockusecase "travelfit/internal/mocks/usecase"
	"travelfit/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type formFile struct {
	field       string
	filename    string
	contentType string
	data        []byte
}

func multipartBody(t *testing.T, files ...formFile) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, f := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.filename+`"`)
		if f.contentType != "" {
			header.Set("Content-Type", f.contentType)
		}
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return buf.String(), writer.FormDataContentType()
}

func newPhotoHandlerForTest(t *testing.T) (*PhotoHandler, *mockusecase.MockPhotoUsecase) {
	photoUC := mockusecase.NewMockPhotoUsecase(t)

	return NewPhotoHandler(PhotoHandlerParams{PhotoUC: photoUC, Logger: testLogger}), photoUC
}

func TestPhotoHandler_UploadPhotos(t *testing.T) {
	t.Run("stores every file in order", func(t *testing.T) {
		h, photoUC := newPhotoHandlerForTest(t)
		gymID := uuid.New()
		actor := staffIdentity(gymID)

		first := &entity.GymPhoto{ID: uuid.New(), GymID: gymID, URL: "https://cdn.example.com/a.png"}
		second := &entity.GymPhoto{ID: uuid.New(), GymID: gymID, URL: "https://cdn.example.com/b.png"}

		photoUC.EXPECT().
			AddPhoto(mock.Anything, actor, gymID, mock.MatchedBy(func(u *usecase.PhotoUpload) bool {
				return u.Filename == "a.png" && u.ContentType == "image/png"
			})).
			Return(first, nil).Once()
		photoUC.EXPECT().
			AddPhoto(mock.Anything, actor, gymID, mock.MatchedBy(func(u *usecase.PhotoUpload) bool {
				// No declared type: sniffed from the content.
				return u.Filename == "b.png" && u.ContentType == "image/png" && bytes.Equal(u.Data, pngHeader)
			})).
			Return(second, nil).Once()

		body, contentType := multipartBody(t,
			formFile{field: "files", filename: "a.png", contentType: "image/png", data: pngHeader},
			formFile{field: "files", filename: "b.png", data: pngHeader},
		)

		c, rec := newTestContext(testRequest{
			method:      http.MethodPost,
			target:      "/gyms/" + gymID.String() + "/photos",
			identity:    actor,
			params:      map[string]string{"gymId": gymID.String()},
			body:        body,
			contentType: contentType,
		})

		require.NoError(t, h.UploadPhotos(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		photos := decodeData[[]PhotoResponse](t, rec)
		require.Len(t, photos, 2)
		assert.Equal(t, first.ID, photos[0].ID)
		assert.Equal(t, second.URL, photos[1].PhotoURL)
	})

	t.Run("no files", func(t *testing.T) {
		h, _ := newPhotoHandlerForTest(t)
		gymID := uuid.New()
		body, contentType := multipartBody(t)

		c, rec := newTestContext(testRequest{
			method:      http.MethodPost,
			target:      "/gyms/" + gymID.String() + "/photos",
			identity:    adminIdentity(),
			params:      map[string]string{"gymId": gymID.String()},
			body:        body,
			contentType: contentType,
		})

		require.NoError(t, h.UploadPhotos(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not an image", func(t *testing.T) {
		h, photoUC := newPhotoHandlerForTest(t)
		gymID := uuid.New()
		photoUC.EXPECT().AddPhoto(mock.Anything, mock.Anything, gymID, mock.Anything).
			Return(nil, domainerrors.ErrValidationFailed.WithDetails("photo must be an image"))

		body, contentType := multipartBody(t,
			formFile{field: "file", filename: "notes.txt", contentType: "text/plain", data: []byte("hello")},
		)

		c, rec := newTestContext(testRequest{
			method:      http.MethodPost,
			target:      "/gyms/" + gymID.String() + "/photos",
			identity:    adminIdentity(),
			params:      map[string]string{"gymId": gymID.String()},
			body:        body,
			contentType: contentType,
		})

		require.NoError(t, h.UploadPhotos(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "photo must be an image")
	})
}

func TestPhotoHandler_ListPhotos(t *testing.T) {
	h, photoUC := newPhotoHandlerForTest(t)
	gymID := uuid.New()
	photo := &entity.GymPhoto{ID: uuid.New(), GymID: gymID, URL: "https://cdn.example.com/a.png"}
	photoUC.EXPECT().ListPhotos(mock.Anything, gymID).Return([]*entity.GymPhoto{photo}, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodGet,
		target: "/gyms/" + gymID.String() + "/photos",
		params: map[string]string{"gymId": gymID.String()},
	})

	require.NoError(t, h.ListPhotos(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []PhotoResponse{{ID: photo.ID, PhotoURL: photo.URL}}, decodeData[[]PhotoResponse](t, rec))
}

func TestPhotoHandler_DeletePhoto(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		h, photoUC := newPhotoHandlerForTest(t)
		gymID, photoID := uuid.New(), uuid.New()
		actor := staffIdentity(gymID)
		photoUC.EXPECT().DeletePhoto(mock.Anything, actor, gymID, photoID).Return(nil)

		c, rec := newTestContext(testRequest{
			method:   http.MethodDelete,
			target:   "/gyms/" + gymID.String() + "/photos/" + photoID.String(),
			identity: actor,
			params:   map[string]string{"gymId": gymID.String(), "photoId": photoID.String()},
		})

		require.NoError(t, h.DeletePhoto(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed photo id", func(t *testing.T) {
		h, _ := newPhotoHandlerForTest(t)
		gymID := uuid.New()

		c, rec := newTestContext(testRequest{
			method:   http.MethodDelete,
			target:   "/gyms/" + gymID.String() + "/photos/abc",
			identity: adminIdentity(),
			params:   map[string]string{"gymId": gymID.String(), "photoId": "abc"},
		})

		require.NoError(t, h.DeletePhoto(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decodeErrorCode(t, rec))
	})
}
