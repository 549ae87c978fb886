package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/diazeddy/dataset-api/internal/usecase"
)

// DatasetHandler exposes dataset upload, listing, retrieval and deletion.
// All of its routes sit behind the bearer guard.
type DatasetHandler struct {
	uc *usecase.DatasetUsecase
}

func NewDatasetHandler(uc *usecase.DatasetUsecase) *DatasetHandler {
	return &DatasetHandler{uc: uc}
}

// Upload accepts a multipart CSV file. The content type of the file part
// is checked before the body is read; anything that is not text/csv is
// rejected up front.
func (h *DatasetHandler) Upload(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{
			Code:    http.StatusBadRequest,
			Message: "Missing file in request.",
		})
	}

	if file.Header.Get("Content-Type") != "text/csv" {
		return c.JSON(http.StatusBadRequest, MessageResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid file type. Only CSV files are allowed.",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, MessageResponse{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
	}
	defer src.Close()

	if err := h.uc.Upload(c.Request().Context(), file.Filename, file.Size, src); err != nil {
		return c.JSON(http.StatusInternalServerError, MessageResponse{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Code:    http.StatusOK,
		Message: "Upload successfully",
	})
}

// List returns metadata for every stored dataset.
func (h *DatasetHandler) List(c echo.Context) error {
	datasets, err := h.uc.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, MessageResponse{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
	}

	response := make([]DatasetMetaResponse, 0, len(datasets))
	for _, d := range datasets {
		response = append(response, DatasetMetaResponse{
			ID:         d.ID.Hex(),
			Filename:   d.Filename,
			Size:       d.Size,
			UploadDate: d.UploadDate,
		})
	}
	return c.JSON(http.StatusOK, response)
}

// Get returns the stored content of one dataset. Missing documents,
// malformed ids and store failures all surface as 500, matching the
// service's outward contract.
func (h *DatasetHandler) Get(c echo.Context) error {
	content, err := h.uc.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, MessageResponse{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, DatasetContentResponse{Content: content})
}

// Delete removes one dataset. Deleting an absent id still reports
// success.
func (h *DatasetHandler) Delete(c echo.Context) error {
	if err := h.uc.DeleteByID(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, MessageResponse{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Code:    http.StatusOK,
		Message: "Dataset deleted successfully",
	})
}
