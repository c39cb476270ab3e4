package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"esencia-shop/models"
	"esencia-shop/repositories"
	"esencia-shop/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PerfumeController struct {
	repo *repositories.PerfumeRepository
}

func NewPerfumeController(repo *repositories.PerfumeRepository) *PerfumeController {
	return &PerfumeController{repo: repo}
}

func splitNotes(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	notes := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			notes = append(notes, trimmed)
		}
	}
	return notes
}

func perfumeCacheKey(page, limit int) string {
	return fmt.Sprintf("esencia:perfumes:p%d_l%d", page, limit)
}

func invalidatePerfumeCache() {
	if models.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := models.RedisClient.Scan(ctx, 0, "esencia:perfumes:*", 0).Iterator()
	for iter.Next(ctx) {
		models.RedisClient.Del(ctx, iter.Val())
	}
}

// @Summary Get categories
// @Description Get the fixed perfume category enumeration
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *PerfumeController) GetCategories(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "message": "Categories retrieved", "data": models.Categories})
}

// @Summary Get brands
// @Description Get the distinct brands in the active catalog
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /perfumes/brands [get]
func (ctrl *PerfumeController) GetBrands(c *gin.Context) {
	brands, err := ctrl.repo.GetBrands(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve brands"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Brands retrieved", "data": brands})
}

// @Summary Get perfumes
// @Description Get the catalog with filters and pagination
// @Tags Catalog
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Param category query string false "Category" Enums(Árabe, Diseñador, Nicho)
// @Param search query string false "Search by name or brand"
// @Param brand query []string false "Filter by brand"
// @Param stock query string false "Stock filter" Enums(stock, pedido)
// @Param min_price query int false "Minimum price"
// @Param max_price query int false "Maximum price"
// @Success 200 {object} models.PaginationResponse
// @Router /perfumes [get]
func (ctrl *PerfumeController) GetPerfumes(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 12
	}
	if limit > 100 {
		limit = 100
	}

	minPrice, _ := strconv.Atoi(c.Query("min_price"))
	maxPrice, _ := strconv.Atoi(c.Query("max_price"))

	filter := models.PerfumeFilter{
		Category: strings.TrimSpace(c.Query("category")),
		Search:   strings.TrimSpace(c.Query("search")),
		Brands:   c.QueryArray("brand"),
		Stock:    strings.TrimSpace(c.Query("stock")),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Page:     page,
		Limit:    limit,
	}

	unfiltered := filter.Category == "" && filter.Search == "" && len(filter.Brands) == 0 &&
		filter.Stock == "" && filter.MinPrice == 0 && filter.MaxPrice == 0

	ctx := c.Request.Context()
	cacheKey := perfumeCacheKey(page, limit)

	if unfiltered && models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	perfumes, total, err := ctrl.repo.GetPerfumes(ctx, filter)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve perfumes"})
		return
	}

	response := models.PaginationResponse{
		Success: true,
		Message: "Perfumes retrieved",
		Data:    perfumes,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}

	if unfiltered && models.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		models.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(200, response)
}

// @Summary Get perfume by ID
// @Description Get one perfume with its full detail
// @Tags Catalog
// @Produce json
// @Param id path string true "Perfume ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /perfumes/{id} [get]
func (ctrl *PerfumeController) GetPerfumeByID(c *gin.Context) {
	perfume, err := ctrl.repo.GetPerfumeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Perfume not found"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Perfume retrieved", "data": perfume})
}

// @Summary Create perfume
// @Description Create a perfume (Admin). Accepts an optional image file.
// @Tags Admin - Catalog
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Name"
// @Param brand formData string true "Brand"
// @Param category formData string true "Category"
// @Param price formData int true "Price"
// @Param image formData file false "Image"
// @Success 201 {object} models.Response
// @Router /admin/perfumes [post]
func (ctrl *PerfumeController) CreatePerfume(c *gin.Context) {
	var req models.CreatePerfumeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if !models.IsValidCategory(req.Category) {
		c.JSON(400, gin.H{"success": false, "message": "Invalid category"})
		return
	}

	perfume := &models.Perfume{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Brand:         req.Brand,
		Category:      req.Category,
		Price:         req.Price,
		ImageURL:      req.ImageURL,
		InStock:       req.InStock,
		Description:   req.Description,
		Volume:        req.Volume,
		Concentration: req.Concentration,
		IsActive:      true,
		Notes: models.PerfumeNotes{
			Top:   splitNotes(req.NotesTop),
			Heart: splitNotes(req.NotesHeart),
			Base:  splitNotes(req.NotesBase),
		},
	}

	if file, err := c.FormFile("image"); err == nil {
		url, publicID, uploadErr := ctrl.uploadImage(c, file)
		if uploadErr != nil {
			c.JSON(400, gin.H{"success": false, "message": uploadErr.Error()})
			return
		}
		perfume.ImageURL = url
		perfume.CloudinaryID = publicID
	}

	if err := ctrl.repo.CreatePerfume(c.Request.Context(), perfume); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create perfume"})
		return
	}

	invalidatePerfumeCache()
	c.JSON(201, gin.H{"success": true, "message": "Perfume created", "data": perfume})
}

// @Summary Update perfume
// @Description Update a perfume (Admin)
// @Tags Admin - Catalog
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Perfume ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/perfumes/{id} [patch]
func (ctrl *PerfumeController) UpdatePerfume(c *gin.Context) {
	perfume, err := ctrl.repo.GetPerfumeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Perfume not found"})
		return
	}

	var req models.UpdatePerfumeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if req.Name != "" {
		perfume.Name = req.Name
	}
	if req.Brand != "" {
		perfume.Brand = req.Brand
	}
	if req.Category != "" {
		if !models.IsValidCategory(req.Category) {
			c.JSON(400, gin.H{"success": false, "message": "Invalid category"})
			return
		}
		perfume.Category = req.Category
	}
	if req.Price != nil && *req.Price >= 0 {
		perfume.Price = *req.Price
	}
	if req.Description != "" {
		perfume.Description = req.Description
	}
	if req.Volume != "" {
		perfume.Volume = req.Volume
	}
	if req.Concentration != "" {
		perfume.Concentration = req.Concentration
	}
	if req.InStock != nil {
		perfume.InStock = *req.InStock
	}
	if req.ImageURL != "" {
		perfume.ImageURL = req.ImageURL
	}
	if req.NotesTop != "" {
		perfume.Notes.Top = splitNotes(req.NotesTop)
	}
	if req.NotesHeart != "" {
		perfume.Notes.Heart = splitNotes(req.NotesHeart)
	}
	if req.NotesBase != "" {
		perfume.Notes.Base = splitNotes(req.NotesBase)
	}

	if file, err := c.FormFile("image"); err == nil {
		url, publicID, uploadErr := ctrl.uploadImage(c, file)
		if uploadErr != nil {
			c.JSON(400, gin.H{"success": false, "message": uploadErr.Error()})
			return
		}
		if perfume.CloudinaryID != "" {
			if cld, cldErr := models.NewCloudinaryService(); cldErr == nil {
				cld.DeleteImage(c.Request.Context(), perfume.CloudinaryID)
			}
		}
		perfume.ImageURL = url
		perfume.CloudinaryID = publicID
	}

	if err := ctrl.repo.UpdatePerfume(c.Request.Context(), perfume); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update perfume"})
		return
	}

	invalidatePerfumeCache()
	c.JSON(200, gin.H{"success": true, "message": "Perfume updated", "data": perfume})
}

// @Summary Delete perfume
// @Description Deactivate a perfume (Admin, soft delete)
// @Tags Admin - Catalog
// @Security BearerAuth
// @Produce json
// @Param id path string true "Perfume ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/perfumes/{id} [delete]
func (ctrl *PerfumeController) DeletePerfume(c *gin.Context) {
	if _, err := ctrl.repo.GetPerfumeByID(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Perfume not found"})
		return
	}

	if err := ctrl.repo.DeletePerfume(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete perfume"})
		return
	}

	invalidatePerfumeCache()
	c.JSON(200, gin.H{"success": true, "message": "Perfume deleted"})
}

// uploadImage pushes the file to Cloudinary, falling back to local disk
// when Cloudinary is not configured.
func (ctrl *PerfumeController) uploadImage(c *gin.Context, fileHeader *multipart.FileHeader) (string, string, error) {
	cld, err := models.NewCloudinaryService()
	if err == nil {
		if err := cld.ValidateImageFile(fileHeader); err != nil {
			return "", "", err
		}
		src, openErr := fileHeader.Open()
		if openErr != nil {
			return "", "", openErr
		}
		defer src.Close()
		url, publicID, uploadErr := cld.UploadImage(c.Request.Context(), src, fileHeader.Filename, "perfumes")
		if uploadErr == nil {
			return url, publicID, nil
		}
	}

	path, err := utils.UploadFile(c, fileHeader, "perfumes")
	if err != nil {
		return "", "", err
	}
	return path, "", nil
}
