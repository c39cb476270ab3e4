package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"esencia-shop/models"
)

type PerfumeRepository struct{}

func NewPerfumeRepository() *PerfumeRepository {
	return &PerfumeRepository{}
}

const perfumeColumns = `id, name, brand, category, price, COALESCE(image_url, ''), in_stock,
	COALESCE(description, ''), COALESCE(notes_top, '{}'), COALESCE(notes_heart, '{}'), COALESCE(notes_base, '{}'),
	COALESCE(volume, ''), COALESCE(concentration, ''), COALESCE(cloudinary_id, ''), is_active, created_at, updated_at`

func scanPerfume(row interface{ Scan(...interface{}) error }) (*models.Perfume, error) {
	var p models.Perfume
	err := row.Scan(
		&p.ID, &p.Name, &p.Brand, &p.Category, &p.Price, &p.ImageURL, &p.InStock,
		&p.Description, &p.Notes.Top, &p.Notes.Heart, &p.Notes.Base,
		&p.Volume, &p.Concentration, &p.CloudinaryID, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PerfumeRepository) GetPerfumes(ctx context.Context, filter models.PerfumeFilter) ([]models.Perfume, int, error) {
	where := []string{"is_active = true"}
	args := []interface{}{}
	argIndex := 1

	if filter.Category != "" && filter.Category != "Todos" {
		where = append(where, fmt.Sprintf("category = $%d", argIndex))
		args = append(args, filter.Category)
		argIndex++
	}

	if filter.Search != "" {
		where = append(where, fmt.Sprintf("(LOWER(name) LIKE LOWER($%d) OR LOWER(brand) LIKE LOWER($%d))", argIndex, argIndex))
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}

	if len(filter.Brands) > 0 {
		where = append(where, fmt.Sprintf("brand = ANY($%d)", argIndex))
		args = append(args, filter.Brands)
		argIndex++
	}

	switch filter.Stock {
	case "stock":
		where = append(where, "in_stock = true")
	case "pedido":
		where = append(where, "in_stock = false")
	}

	if filter.MinPrice > 0 {
		where = append(where, fmt.Sprintf("price >= $%d", argIndex))
		args = append(args, filter.MinPrice)
		argIndex++
	}

	if filter.MaxPrice > 0 {
		where = append(where, fmt.Sprintf("price <= $%d", argIndex))
		args = append(args, filter.MaxPrice)
		argIndex++
	}

	whereClause := " WHERE " + strings.Join(where, " AND ")

	var total int
	countQuery := "SELECT COUNT(*) FROM perfumes" + whereClause
	if err := models.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + perfumeColumns + " FROM perfumes" + whereClause +
		fmt.Sprintf(" ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := models.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	perfumes := []models.Perfume{}
	for rows.Next() {
		p, err := scanPerfume(rows)
		if err != nil {
			return nil, 0, err
		}
		perfumes = append(perfumes, *p)
	}
	return perfumes, total, rows.Err()
}

func (r *PerfumeRepository) GetPerfumeByID(ctx context.Context, id string) (*models.Perfume, error) {
	query := "SELECT " + perfumeColumns + " FROM perfumes WHERE id = $1 AND is_active = true"
	return scanPerfume(models.DB.QueryRow(ctx, query, id))
}

func (r *PerfumeRepository) GetBrands(ctx context.Context) ([]string, error) {
	rows, err := models.DB.Query(ctx,
		"SELECT DISTINCT brand FROM perfumes WHERE is_active = true ORDER BY brand")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	brands := []string{}
	for rows.Next() {
		var brand string
		if err := rows.Scan(&brand); err != nil {
			return nil, err
		}
		brands = append(brands, brand)
	}
	return brands, rows.Err()
}

func (r *PerfumeRepository) CreatePerfume(ctx context.Context, p *models.Perfume) error {
	now := time.Now()
	return models.DB.QueryRow(ctx, `
		INSERT INTO perfumes (id, name, brand, category, price, image_url, in_stock,
			description, notes_top, notes_heart, notes_base, volume, concentration, cloudinary_id,
			is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, true, $15, $15)
		RETURNING created_at, updated_at`,
		p.ID, p.Name, p.Brand, p.Category, p.Price, p.ImageURL, p.InStock,
		p.Description, p.Notes.Top, p.Notes.Heart, p.Notes.Base, p.Volume, p.Concentration, p.CloudinaryID,
		now,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *PerfumeRepository) UpdatePerfume(ctx context.Context, p *models.Perfume) error {
	_, err := models.DB.Exec(ctx, `
		UPDATE perfumes SET name=$1, brand=$2, category=$3, price=$4, image_url=$5, in_stock=$6,
			description=$7, notes_top=$8, notes_heart=$9, notes_base=$10, volume=$11, concentration=$12,
			cloudinary_id=$13, updated_at=$14
		WHERE id=$15`,
		p.Name, p.Brand, p.Category, p.Price, p.ImageURL, p.InStock,
		p.Description, p.Notes.Top, p.Notes.Heart, p.Notes.Base, p.Volume, p.Concentration,
		p.CloudinaryID, time.Now(), p.ID,
	)
	return err
}

func (r *PerfumeRepository) DeletePerfume(ctx context.Context, id string) error {
	_, err := models.DB.Exec(ctx,
		"UPDATE perfumes SET is_active = false, updated_at = $1 WHERE id = $2", time.Now(), id)
	return err
}
