package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	request "serving_u/internal/adapter/http/dto/request"
	"serving_u/internal/usecase"
	"serving_u/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCatalogPayload = pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid catalog payload", http.StatusBadRequest)
)

// LaundryItemHandler handles the admin laundry catalog. Writes arrive as
// multipart forms carrying either an image file or an already-hosted URL.

type LaundryItemHandler struct {
	usecase usecase.ILaundryItemUseCase
}

func NewLaundryItemHandler(uc usecase.ILaundryItemUseCase) *LaundryItemHandler {
	return &LaundryItemHandler{usecase: uc}
}

func (h *LaundryItemHandler) List(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *LaundryItemHandler) Create(c *gin.Context) {
	price, ok := formPrice(c)
	if !ok {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}
	file, closeFile, err := formImage(c, "image")
	if err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}
	defer closeFile()

	item, err := h.usecase.Create(c.Request.Context(), usecase.CreateLaundryItemInput{
		Name:     c.PostForm("name"),
		Category: c.PostForm("category"),
		Price:    price,
		Unit:     c.PostForm("unit"),
		Image:    file,
		ImageURL: c.PostForm("image"),
	})
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *LaundryItemHandler) Update(c *gin.Context) {
	price, ok := formPrice(c)
	if !ok {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}
	file, closeFile, err := formImage(c, "image")
	if err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}
	defer closeFile()

	item, err := h.usecase.Update(c.Request.Context(), c.Param("id"), usecase.UpdateLaundryItemInput{
		Name:     c.PostForm("name"),
		Category: c.PostForm("category"),
		Price:    price,
		Unit:     c.PostForm("unit"),
		Image:    file,
		ImageURL: c.PostForm("image"),
	})
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *LaundryItemHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}

func (h *LaundryItemHandler) BulkDelete(c *gin.Context) {
	var payload request.BulkDeleteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}
	if err := h.usecase.DeleteMany(c.Request.Context(), payload.IDs); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Items deleted"})
}

// UnstitchedItemHandler handles the admin garment catalog. Up to five carousel
// images arrive as a mix of uploaded files and hosted URLs.

type UnstitchedItemHandler struct {
	usecase usecase.IUnstitchedItemUseCase
}

func NewUnstitchedItemHandler(uc usecase.IUnstitchedItemUseCase) *UnstitchedItemHandler {
	return &UnstitchedItemHandler{usecase: uc}
}

func (h *UnstitchedItemHandler) List(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *UnstitchedItemHandler) Create(c *gin.Context) {
	price, ok := formPrice(c)
	if !ok {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}
	files, closeFiles, err := formImages(c, "images")
	if err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}
	defer closeFiles()

	urls, _ := c.GetPostFormArray("imageUrls")
	item, err := h.usecase.Create(c.Request.Context(), usecase.CreateUnstitchedItemInput{
		Name:        c.PostForm("name"),
		Category:    c.PostForm("category"),
		Price:       price,
		Description: c.PostForm("description"),
		Sizes:       request.ParseSizes(c.PostForm("sizes")),
		Images:      files,
		ImageURLs:   urls,
	})
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *UnstitchedItemHandler) Update(c *gin.Context) {
	price, ok := formPrice(c)
	if !ok {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}
	files, closeFiles, err := formImages(c, "images")
	if err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}
	defer closeFiles()

	// An absent imageUrls key keeps the stored carousel; a present (possibly
	// empty) key replaces it.
	var urls []string
	if supplied, ok := c.GetPostFormArray("imageUrls"); ok {
		urls = append([]string{}, supplied...)
	}

	var sizes []string
	if raw, sizesSupplied := c.GetPostForm("sizes"); sizesSupplied {
		sizes = request.ParseSizes(raw)
		if sizes == nil {
			sizes = []string{}
		}
	}

	item, err := h.usecase.Update(c.Request.Context(), c.Param("id"), usecase.UpdateUnstitchedItemInput{
		Name:        c.PostForm("name"),
		Category:    c.PostForm("category"),
		Price:       price,
		Description: c.PostForm("description"),
		Sizes:       sizes,
		Images:      files,
		ImageURLs:   urls,
	})
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *UnstitchedItemHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}

func (h *UnstitchedItemHandler) BulkDelete(c *gin.Context) {
	var payload request.BulkDeleteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}
	if err := h.usecase.DeleteMany(c.Request.Context(), payload.IDs); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Items deleted"})
}

func formPrice(c *gin.Context) (float64, bool) {
	raw := c.PostForm("price")
	if raw == "" {
		return 0, true
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return price, true
}

// formImage opens the named upload when present. The caller always invokes the
// returned close func; it is a no-op when no file was uploaded.
func formImage(c *gin.Context, field string) (io.Reader, func(), error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, func() {}, nil
		}
		return nil, func() {}, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, err
	}
	return f, func() { f.Close() }, nil
}

func formImages(c *gin.Context, field string) ([]io.Reader, func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, func() {}, nil
		}
		return nil, func() {}, err
	}

	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}
	var readers []io.Reader
	for _, fh := range form.File[field] {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		opened = append(opened, f)
		readers = append(readers, f)
	}
	return readers, closeAll, nil
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCatalogItemID),
		errors.Is(err, usecase.ErrMissingCatalogFields),
		errors.Is(err, usecase.ErrInvalidCatalogPrice),
		errors.Is(err, usecase.ErrMissingItemImage),
		errors.Is(err, usecase.ErrNoCatalogItemIDs):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCatalogItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Catalog item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrImageStorageNotConfig):
		return pkg.NewDomainErrorSimple("STORAGE_UNAVAILABLE", "Image storage not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
