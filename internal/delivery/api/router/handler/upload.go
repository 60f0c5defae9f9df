package handler

import (
	"io"
	"mime"
	"strings"

	"washapp/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// uploadFormField is the multipart field carrying an image.
const uploadFormField = "image"

// readUpload accepts either a multipart form with an "image" file or a raw image body.
// The returned closer must be closed once the upload has been consumed.
func readUpload(c echo.Context) (*usecase.UploadInput, io.Closer, error) {
	mediaType, _, _ := mime.ParseMediaType(c.Request().Header.Get(echo.HeaderContentType))

	if !strings.HasPrefix(mediaType, "multipart/") {
		return &usecase.UploadInput{ContentType: mediaType, Body: c.Request().Body}, io.NopCloser(nil), nil
	}

	fileHeader, err := c.FormFile(uploadFormField)
	if err != nil {
		return nil, nil, errors.Wrap(err, "missing image file")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open image file")
	}

	contentType, _, _ := mime.ParseMediaType(fileHeader.Header.Get(echo.HeaderContentType))

	return &usecase.UploadInput{ContentType: contentType, Body: file}, file, nil
}
